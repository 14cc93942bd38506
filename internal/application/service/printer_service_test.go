package service

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	"github.com/santhoshsharuk/billing-api/pkg/printer"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingPrinter captures what would go to the transport.
type recordingPrinter struct {
	data [][]byte
	err  error
}

func (p *recordingPrinter) Print(data []byte) error {
	if p.err != nil {
		return p.err
	}
	p.data = append(p.data, data)
	return nil
}

func (p *recordingPrinter) Close() error { return nil }

func (p *recordingPrinter) IsConnected() bool { return p.err == nil }

func testInvoice() *entity.Invoice {
	return &entity.Invoice{
		ID:        7,
		Date:      "2025-03-14",
		Total:     decimal.NewFromInt(100),
		CreatedAt: time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC),
		Items: []entity.LineItem{
			{ProductID: 1, Name: "Tea", Price: decimal.NewFromInt(10), Qty: 2},
			{ProductID: 2, Name: "Masala Dosa Special", Price: decimal.NewFromInt(80), Qty: 1},
		},
	}
}

func TestBuildReceipt_GSTFromSettings(t *testing.T) {
	invoice := testInvoice()

	receipt := BuildReceipt(invoice, &entity.StoreSettings{
		StoreName:  "Sharuk Stores",
		GSTEnabled: true,
	})

	assert.Equal(t, "Sharuk Stores", receipt.Header.StoreName)
	assert.Equal(t, "7", receipt.InvoiceNo)
	assert.True(t, receipt.SubTotal.Equal(decimal.NewFromInt(100)))
	assert.True(t, receipt.GST.Equal(decimal.NewFromInt(18)))
	assert.True(t, receipt.Total.Equal(decimal.NewFromInt(118)))
	require.Len(t, receipt.Items, 2)
}

func TestBuildReceipt_DefaultsWithoutSettings(t *testing.T) {
	receipt := BuildReceipt(testInvoice(), nil)

	assert.Equal(t, "Receipt", receipt.Header.StoreName)
	assert.True(t, receipt.GST.IsZero())
	assert.True(t, receipt.Total.Equal(decimal.NewFromInt(100)))
}

func TestItemRow_ColumnLayout(t *testing.T) {
	row := itemRow(entity.ReceiptItem{
		Name:      "Masala Dosa Special",
		Qty:       2,
		UnitPrice: decimal.NewFromInt(80),
		Total:     decimal.NewFromInt(160),
	})

	// 10 + 4 + 8 + 8 columns, long names truncated.
	assert.Len(t, row, 30)
	assert.Equal(t, "Masala Dos", row[:10])
	assert.Equal(t, "   2", row[10:14])
	assert.Equal(t, "   80.00", row[14:22])
	assert.Equal(t, "  160.00", row[22:30])
}

func TestFormatReceiptText_Layout(t *testing.T) {
	receipt := BuildReceipt(testInvoice(), &entity.StoreSettings{
		StoreName:  "Sharuk Stores",
		Phone:      "9876543210",
		GSTEnabled: true,
	})

	text := FormatReceiptText(receipt)

	assert.Contains(t, text, "Sharuk Stores")
	assert.Contains(t, text, "Invoice #7")
	assert.Contains(t, text, "GST (18%): 18.00")
	assert.Contains(t, text, "Total: 118.00")
	// Plain text carries no ESC/POS control bytes.
	assert.NotContains(t, text, "\x1b")
	for _, line := range strings.Split(text, "\n") {
		assert.LessOrEqual(t, len(line), receiptWidth)
	}
}

func TestPrintInvoiceReceipt_PrintsOnWorkingTransport(t *testing.T) {
	repo := &fakeInvoiceRepo{invoices: []entity.Invoice{*testInvoice()}}
	transport := &recordingPrinter{}
	svc := NewPrinterService(transport, repo, NewSettingsService(newFakeSettingsRepo()), "usb", t.TempDir())

	receipt, result, err := svc.PrintInvoiceReceipt(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.True(t, result.Printed)
	assert.False(t, result.FallbackUsed)
	require.Len(t, transport.data, 1)
	// ESC @ initializes the job, GS V cuts it.
	assert.Equal(t, []byte{0x1b, '@'}, transport.data[0][:2])
	assert.Contains(t, string(transport.data[0]), string([]byte{0x1d, 'V', 0x01}))
}

func TestPrintInvoiceReceipt_SpoolsOnTransportFailure(t *testing.T) {
	repo := &fakeInvoiceRepo{invoices: []entity.Invoice{*testInvoice()}}
	spoolDir := t.TempDir()
	svc := NewPrinterService(printer.NewNullPrinter(), repo, NewSettingsService(newFakeSettingsRepo()), "none", spoolDir)

	receipt, result, err := svc.PrintInvoiceReceipt(context.Background(), 7)
	require.NoError(t, err)
	require.NotNil(t, receipt)

	assert.False(t, result.Printed)
	assert.True(t, result.FallbackUsed)
	assert.Contains(t, result.Reason, "no device selected")
	require.NotEmpty(t, result.SpoolPath)
	assert.Equal(t, spoolDir, filepath.Dir(result.SpoolPath))

	spooled, err := os.ReadFile(result.SpoolPath)
	require.NoError(t, err)
	assert.Contains(t, string(spooled), "Invoice #7")
}

func TestPrintInvoiceReceipt_MissingInvoice(t *testing.T) {
	svc := NewPrinterService(&recordingPrinter{}, &fakeInvoiceRepo{}, NewSettingsService(newFakeSettingsRepo()), "usb", t.TempDir())

	_, _, err := svc.PrintInvoiceReceipt(context.Background(), 99)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestTestPrint_UsesNormalPath(t *testing.T) {
	transport := &recordingPrinter{}
	svc := NewPrinterService(transport, &fakeInvoiceRepo{}, NewSettingsService(newFakeSettingsRepo()), "usb", t.TempDir())

	receipt, result := svc.TestPrint()

	assert.Equal(t, "PRINTER TEST", receipt.Header.StoreName)
	assert.True(t, result.Printed)
	assert.Len(t, transport.data, 1)
}

func TestGetStatus(t *testing.T) {
	svc := NewPrinterService(printer.NewNullPrinter(), &fakeInvoiceRepo{}, NewSettingsService(newFakeSettingsRepo()), "none", t.TempDir())

	status := svc.GetStatus()
	assert.False(t, status.Configured)
	assert.False(t, status.Connected)
	assert.Equal(t, "none", status.Type)
}
