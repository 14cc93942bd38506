package service

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	"github.com/santhoshsharuk/billing-api/internal/domain/repository"
	"github.com/santhoshsharuk/billing-api/pkg/apperror"
	"github.com/santhoshsharuk/billing-api/pkg/qrcode"
	"github.com/santhoshsharuk/billing-api/pkg/upi"
	"github.com/shopspring/decimal"
)

// GST multiplier applied at display/payment time when GST is enabled.
// The 18% rate is fixed, not configurable.
var gstMultiplier = decimal.NewFromFloat(1.18)

// CartLine is one product snapshot inside a cart. Name and price are
// copied when the product is added; later product edits do not change the
// line.
type CartLine struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Price     decimal.Decimal `json:"price"`
	Qty       int             `json:"qty"`
}

// CommitResult is the explicit outcome of committing a cart. Degraded
// means the invoice was persisted but the payment QR could not be
// generated; the receipt is shown without it.
type CommitResult struct {
	Invoice    *entity.Invoice `json:"invoice"`
	PaymentURI string          `json:"payment_uri"`
	QRCode     string          `json:"qr_code,omitempty"` // PNG data URI
	Degraded   bool            `json:"degraded"`
	Reason     string          `json:"reason,omitempty"`
}

// CartService holds transient cart sessions and turns a cart into a
// committed invoice. Carts live in memory only; an abandoned cart is lost
// on restart, which is acceptable for a single-operator till.
type CartService struct {
	mu          sync.Mutex
	carts       map[string][]CartLine
	invoiceRepo repository.InvoiceRepository

	// qrEncode is swappable so failure paths are testable.
	qrEncode func(string) (string, error)
	now      func() time.Time
}

// NewCartService creates a new cart service
func NewCartService(invoiceRepo repository.InvoiceRepository) *CartService {
	return &CartService{
		carts:       make(map[string][]CartLine),
		invoiceRepo: invoiceRepo,
		qrEncode:    qrcode.DataURI,
		now:         time.Now,
	}
}

// CreateCart starts a new cart session and returns its id.
func (s *CartService) CreateCart() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := uuid.New().String()
	s.carts[id] = []CartLine{}
	return id
}

// Lines returns a copy of the cart's lines in insertion order.
func (s *CartService) Lines(cartID string) ([]CartLine, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, ok := s.carts[cartID]
	if !ok {
		return nil, apperror.NewNotFoundError("Cart")
	}
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out, nil
}

// AddToCart adds one unit of the product to the cart. If the cart already
// holds a line for this product id the quantity is incremented; otherwise
// a new line is appended with the product's id/name/price snapshotted at
// this instant. Stock levels are not checked.
func (s *CartService) AddToCart(cartID string, product *entity.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, ok := s.carts[cartID]
	if !ok {
		return apperror.NewNotFoundError("Cart")
	}

	for i := range lines {
		if lines[i].ProductID == product.ID {
			lines[i].Qty++
			return nil
		}
	}

	s.carts[cartID] = append(lines, CartLine{
		ProductID: product.ID,
		Name:      product.Name,
		Price:     product.Price,
		Qty:       1,
	})
	return nil
}

// UpdateQuantity sets the quantity of the product's line. A quantity of
// zero or less removes the line entirely. No upper bound is enforced.
func (s *CartService) UpdateQuantity(cartID string, productID uint, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, ok := s.carts[cartID]
	if !ok {
		return apperror.NewNotFoundError("Cart")
	}

	for i := range lines {
		if lines[i].ProductID != productID {
			continue
		}
		if qty <= 0 {
			s.carts[cartID] = append(lines[:i], lines[i+1:]...)
		} else {
			lines[i].Qty = qty
		}
		return nil
	}
	return apperror.NewNotFoundError("Cart line")
}

// Subtotal returns sum(price * qty) over all cart lines, computed fresh on
// every call.
func (s *CartService) Subtotal(cartID string) (decimal.Decimal, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines, ok := s.carts[cartID]
	if !ok {
		return decimal.Zero, apperror.NewNotFoundError("Cart")
	}
	return subtotalOf(lines), nil
}

// Total returns the amount payable: subtotal * 1.18 when GST is enabled,
// the plain subtotal otherwise, rounded to two decimal places.
func (s *CartService) Total(cartID string, settings *entity.StoreSettings) (decimal.Decimal, error) {
	sub, err := s.Subtotal(cartID)
	if err != nil {
		return decimal.Zero, err
	}
	return totalWithGST(sub, settings), nil
}

func subtotalOf(lines []CartLine) decimal.Decimal {
	sum := decimal.Zero
	for _, line := range lines {
		sum = sum.Add(line.Price.Mul(decimal.NewFromInt(int64(line.Qty))))
	}
	return sum
}

func totalWithGST(subtotal decimal.Decimal, settings *entity.StoreSettings) decimal.Decimal {
	if settings != nil && settings.GSTEnabled {
		return subtotal.Mul(gstMultiplier).Round(2)
	}
	return subtotal.Round(2)
}

// Commit turns the cart into a persisted invoice and a UPI payment code.
//
// The stored invoice total is always the pre-tax subtotal; the
// tax-inclusive amount appears only in the payment URI. On a persistence
// failure the cart is left untouched for retry. On a QR failure the
// invoice is still committed and the result is marked degraded.
func (s *CartService) Commit(ctx context.Context, cartID string, settings *entity.StoreSettings) (*CommitResult, error) {
	s.mu.Lock()
	lines, ok := s.carts[cartID]
	if !ok {
		s.mu.Unlock()
		return nil, apperror.NewNotFoundError("Cart")
	}
	if len(lines) == 0 {
		s.mu.Unlock()
		return nil, apperror.ErrEmptyCart
	}
	snapshot := make([]CartLine, len(lines))
	copy(snapshot, lines)
	s.mu.Unlock()

	now := s.now()
	invoice := &entity.Invoice{
		Date:      now.Format("2006-01-02"),
		Total:     subtotalOf(snapshot),
		CreatedAt: now,
	}
	for _, line := range snapshot {
		invoice.Items = append(invoice.Items, entity.LineItem{
			ProductID: line.ProductID,
			Name:      line.Name,
			Price:     line.Price,
			Qty:       line.Qty,
		})
	}

	if err := s.invoiceRepo.Create(ctx, invoice); err != nil {
		return nil, apperror.NewStorageError("invoice commit", err)
	}

	payable := totalWithGST(invoice.Total, settings)
	var payeeID, payeeName string
	if settings != nil {
		payeeID = settings.UPIID
		payeeName = settings.StoreName
	}
	link := upi.PayLink(payeeID, payeeName, payable)

	result := &CommitResult{
		Invoice:    invoice,
		PaymentURI: link,
	}
	if code, err := s.qrEncode(link); err != nil {
		// A missing QR code is degraded-but-acceptable; the sale is
		// already recorded.
		log.Printf("QR generation failed for invoice %d: %v", invoice.ID, err)
		result.Degraded = true
		result.Reason = "QR generation failed: " + err.Error()
	} else {
		result.QRCode = code
	}

	s.mu.Lock()
	delete(s.carts, cartID)
	s.mu.Unlock()

	return result, nil
}
