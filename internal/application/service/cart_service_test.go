package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	"github.com/santhoshsharuk/billing-api/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testProduct(id uint, name string, price int64) *entity.Product {
	return &entity.Product{
		ID:    id,
		Name:  name,
		Price: decimal.NewFromInt(price),
	}
}

func TestAddToCart_IncrementsExistingLine(t *testing.T) {
	svc := NewCartService(&fakeInvoiceRepo{})
	cartID := svc.CreateCart()

	require.NoError(t, svc.AddToCart(cartID, testProduct(1, "Tea", 10)))
	require.NoError(t, svc.AddToCart(cartID, testProduct(1, "Tea", 10)))

	lines, err := svc.Lines(cartID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, 2, lines[0].Qty)

	subtotal, err := svc.Subtotal(cartID)
	require.NoError(t, err)
	assert.True(t, subtotal.Equal(decimal.NewFromInt(20)), "subtotal = %s", subtotal)
}

func TestAddToCart_SnapshotsPrice(t *testing.T) {
	svc := NewCartService(&fakeInvoiceRepo{})
	cartID := svc.CreateCart()

	product := testProduct(1, "Tea", 10)
	require.NoError(t, svc.AddToCart(cartID, product))

	// A later catalog edit must not touch the line.
	product.Price = decimal.NewFromInt(99)
	product.Name = "Chai"

	lines, err := svc.Lines(cartID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, "Tea", lines[0].Name)
	assert.True(t, lines[0].Price.Equal(decimal.NewFromInt(10)))
}

func TestUpdateQuantity_ZeroRemovesLine(t *testing.T) {
	svc := NewCartService(&fakeInvoiceRepo{})
	cartID := svc.CreateCart()

	require.NoError(t, svc.AddToCart(cartID, testProduct(1, "Tea", 10)))
	require.NoError(t, svc.AddToCart(cartID, testProduct(2, "Coffee", 15)))

	require.NoError(t, svc.UpdateQuantity(cartID, 1, 0))

	lines, err := svc.Lines(cartID)
	require.NoError(t, err)
	require.Len(t, lines, 1)
	assert.Equal(t, uint(2), lines[0].ProductID)
}

func TestUpdateQuantity_MissingLine(t *testing.T) {
	svc := NewCartService(&fakeInvoiceRepo{})
	cartID := svc.CreateCart()

	err := svc.UpdateQuantity(cartID, 42, 3)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestTotal_GSTApplied(t *testing.T) {
	svc := NewCartService(&fakeInvoiceRepo{})
	cartID := svc.CreateCart()
	require.NoError(t, svc.AddToCart(cartID, testProduct(1, "Tea", 100)))

	withGST, err := svc.Total(cartID, &entity.StoreSettings{GSTEnabled: true})
	require.NoError(t, err)
	assert.True(t, withGST.Equal(decimal.NewFromInt(118)), "total = %s", withGST)

	withoutGST, err := svc.Total(cartID, &entity.StoreSettings{GSTEnabled: false})
	require.NoError(t, err)
	assert.True(t, withoutGST.Equal(decimal.NewFromInt(100)), "total = %s", withoutGST)
}

func TestCommit_EmptyCartRejectedBeforePersistence(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := NewCartService(repo)
	cartID := svc.CreateCart()

	_, err := svc.Commit(context.Background(), cartID, &entity.StoreSettings{})
	require.ErrorIs(t, err, apperror.ErrEmptyCart)
	assert.Empty(t, repo.invoices)

	// The cart session survives the rejection.
	_, err = svc.Lines(cartID)
	assert.NoError(t, err)
}

func TestCommit_PersistsPreTaxTotalAndClearsCart(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := NewCartService(repo)
	svc.now = func() time.Time {
		return time.Date(2025, 3, 14, 12, 30, 0, 0, time.UTC)
	}
	cartID := svc.CreateCart()
	require.NoError(t, svc.AddToCart(cartID, testProduct(1, "Tea", 100)))

	settings := &entity.StoreSettings{
		StoreName:  "My Store",
		UPIID:      "store@upi",
		GSTEnabled: true,
	}
	result, err := svc.Commit(context.Background(), cartID, settings)
	require.NoError(t, err)
	require.NotNil(t, result.Invoice)

	// Stored total is the pre-tax subtotal; GST shows up only in the
	// payment amount.
	assert.True(t, result.Invoice.Total.Equal(decimal.NewFromInt(100)))
	assert.Equal(t, "2025-03-14", result.Invoice.Date)
	assert.Contains(t, result.PaymentURI, "pa=store%40upi")
	assert.Contains(t, result.PaymentURI, "am=118.00")
	assert.False(t, result.Degraded)
	assert.NotEmpty(t, result.QRCode)

	require.Len(t, repo.invoices, 1)
	require.Len(t, repo.invoices[0].Items, 1)
	assert.Equal(t, "Tea", repo.invoices[0].Items[0].Name)

	// The cart session is gone after a successful commit.
	_, err = svc.Lines(cartID)
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}

func TestCommit_QRFailureDegradesResult(t *testing.T) {
	repo := &fakeInvoiceRepo{}
	svc := NewCartService(repo)
	svc.qrEncode = func(string) (string, error) {
		return "", errors.New("encoder out of memory")
	}
	cartID := svc.CreateCart()
	require.NoError(t, svc.AddToCart(cartID, testProduct(1, "Tea", 100)))

	result, err := svc.Commit(context.Background(), cartID, &entity.StoreSettings{UPIID: "store@upi"})
	require.NoError(t, err)

	assert.True(t, result.Degraded)
	assert.Empty(t, result.QRCode)
	assert.Contains(t, result.Reason, "QR generation failed")
	assert.NotEmpty(t, result.PaymentURI)

	// The sale is still recorded.
	assert.Len(t, repo.invoices, 1)
}

func TestCommit_StorageFailureKeepsCart(t *testing.T) {
	repo := &fakeInvoiceRepo{createErr: errors.New("disk full")}
	svc := NewCartService(repo)
	cartID := svc.CreateCart()
	require.NoError(t, svc.AddToCart(cartID, testProduct(1, "Tea", 100)))

	_, err := svc.Commit(context.Background(), cartID, &entity.StoreSettings{})
	require.Error(t, err)
	assert.Equal(t, 500, apperror.GetAppError(err).Code)

	// Cart untouched for retry.
	lines, err := svc.Lines(cartID)
	require.NoError(t, err)
	assert.Len(t, lines, 1)
}

func TestCommit_UnknownCart(t *testing.T) {
	svc := NewCartService(&fakeInvoiceRepo{})

	_, err := svc.Commit(context.Background(), "no-such-cart", &entity.StoreSettings{})
	require.Error(t, err)
	assert.Equal(t, 404, apperror.GetAppError(err).Code)
}
