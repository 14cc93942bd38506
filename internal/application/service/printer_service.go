package service

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	"github.com/santhoshsharuk/billing-api/internal/domain/repository"
	"github.com/santhoshsharuk/billing-api/pkg/apperror"
	"github.com/santhoshsharuk/billing-api/pkg/printer"
	"github.com/shopspring/decimal"
)

// Receipt column widths, fixed for 58mm paper. Column widths are
// constants, not derived from paper width or locale.
const (
	receiptWidth   = 32
	itemNameWidth  = 10
	itemQtyWidth   = 4
	itemPriceWidth = 8
	itemTotalWidth = 8
)

var gstRate = decimal.NewFromFloat(0.18)

// PrintResult reports how a print job ended: printed on hardware, spooled
// as plain text after a transport failure, or failed outright.
type PrintResult struct {
	Printed      bool   `json:"printed"`
	FallbackUsed bool   `json:"fallback_used"`
	SpoolPath    string `json:"spool_path,omitempty"`
	Reason       string `json:"reason,omitempty"`
}

// PrinterService renders committed invoices into fixed-width receipts and
// sends them to the thermal printer, falling back to a plain-text spool
// file whenever the transport fails. The fallback is always attempted so
// the user is guaranteed some form of output.
type PrinterService struct {
	printer      printer.Printer
	invoiceRepo  repository.InvoiceRepository
	settingsServ *SettingsService
	printerType  string
	spoolDir     string
}

// NewPrinterService creates a new printer service.
func NewPrinterService(
	p printer.Printer,
	invoiceRepo repository.InvoiceRepository,
	settingsServ *SettingsService,
	printerType, spoolDir string,
) *PrinterService {
	return &PrinterService{
		printer:      p,
		invoiceRepo:  invoiceRepo,
		settingsServ: settingsServ,
		printerType:  printerType,
		spoolDir:     spoolDir,
	}
}

// PrinterStatus returns the current printer status information.
type PrinterStatus struct {
	Configured bool   `json:"configured"`
	Connected  bool   `json:"connected"`
	Type       string `json:"type"`
}

// GetStatus returns printer connection status.
func (s *PrinterService) GetStatus() *PrinterStatus {
	return &PrinterStatus{
		Configured: s.printerType != "none" && s.printerType != "",
		Connected:  s.printer.IsConnected(),
		Type:       s.printerType,
	}
}

// TestPrint sends a test receipt through the normal print path, fallback
// included.
func (s *PrinterService) TestPrint() (*entity.Receipt, *PrintResult) {
	ten := decimal.NewFromInt(10)
	five := decimal.NewFromInt(5)
	receipt := &entity.Receipt{
		Header: entity.ReceiptHeader{
			StoreName: "PRINTER TEST",
			Address:   "Test Address",
			Phone:     "0000000000",
		},
		InvoiceNo: "TEST-001",
		Date:      time.Now().Format("2006-01-02 15:04"),
		Items: []entity.ReceiptItem{
			{Name: "Test Item 1", Qty: 1, UnitPrice: ten, Total: ten},
			{Name: "Test Item 2", Qty: 2, UnitPrice: five, Total: ten},
		},
		SubTotal: decimal.NewFromInt(20),
		GST:      decimal.Zero,
		Total:    decimal.NewFromInt(20),
	}

	return receipt, s.print(receipt)
}

// PrintInvoiceReceipt fetches an invoice, renders its receipt with the
// current store settings, and prints it.
func (s *PrinterService) PrintInvoiceReceipt(ctx context.Context, invoiceID uint) (*entity.Receipt, *PrintResult, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, invoiceID)
	if err != nil {
		return nil, nil, apperror.NewStorageError("invoice read", err)
	}
	if invoice == nil {
		return nil, nil, apperror.NewNotFoundError("Invoice")
	}

	settings, err := s.settingsServ.GetSettings(ctx)
	if err != nil {
		return nil, nil, err
	}

	receipt := BuildReceipt(invoice, settings)
	return receipt, s.print(receipt), nil
}

// print sends the ESC/POS rendering to the configured transport and, on
// any failure, spools the plain-text rendering instead.
func (s *PrinterService) print(receipt *entity.Receipt) *PrintResult {
	data := FormatReceipt(receipt)
	if err := s.printer.Print(data); err != nil {
		log.Printf("Printer error (invoice %s): %v; falling back to spool", receipt.InvoiceNo, err)
		return s.spool(receipt, err)
	}
	return &PrintResult{Printed: true}
}

func (s *PrinterService) spool(receipt *entity.Receipt, cause error) *PrintResult {
	result := &PrintResult{FallbackUsed: true, Reason: cause.Error()}

	if err := os.MkdirAll(s.spoolDir, 0o755); err != nil {
		result.FallbackUsed = false
		result.Reason = fmt.Sprintf("%v; spool failed: %v", cause, err)
		return result
	}

	name := fmt.Sprintf("receipt-%s-%d.txt", receipt.InvoiceNo, time.Now().UnixNano())
	path := filepath.Join(s.spoolDir, name)
	if err := os.WriteFile(path, []byte(FormatReceiptText(receipt)), 0o644); err != nil {
		result.FallbackUsed = false
		result.Reason = fmt.Sprintf("%v; spool failed: %v", cause, err)
		return result
	}

	result.SpoolPath = path
	return result
}

// BuildReceipt composes the printable receipt for an invoice with the
// store header and GST line derived from the current settings.
func BuildReceipt(invoice *entity.Invoice, settings *entity.StoreSettings) *entity.Receipt {
	receipt := &entity.Receipt{
		InvoiceNo: fmt.Sprintf("%d", invoice.ID),
		Date:      invoice.Date,
		SubTotal:  invoice.Total,
		GST:       decimal.Zero,
		Total:     invoice.Total,
	}
	if settings != nil {
		receipt.Header = entity.ReceiptHeader{
			StoreName: settings.StoreName,
			Address:   settings.Address,
			Phone:     settings.Phone,
		}
		if settings.GSTEnabled {
			receipt.GST = invoice.Total.Mul(gstRate).Round(2)
			receipt.Total = invoice.Total.Add(receipt.GST)
		}
	}
	if receipt.Header.StoreName == "" {
		receipt.Header.StoreName = "Receipt"
	}

	for _, item := range invoice.Items {
		receipt.Items = append(receipt.Items, entity.ReceiptItem{
			Name:      item.Name,
			Qty:       item.Qty,
			UnitPrice: item.Price,
			Total:     item.LineTotal(),
		})
	}
	return receipt
}

// FormatReceipt converts a Receipt into ESC/POS bytes.
func FormatReceipt(r *entity.Receipt) []byte {
	doc := printer.NewDocument(receiptWidth)

	// Header
	doc.SetAlign(printer.AlignCenter).
		SetMode(printer.ModeBold).
		Text(r.Header.StoreName).
		SetMode(printer.ModeNormal)

	if r.Header.Address != "" {
		doc.Text(r.Header.Address)
	}
	if r.Header.Phone != "" {
		doc.TextF("Phone: %s", r.Header.Phone)
	}
	doc.LineFeed()

	// Invoice info
	doc.SetAlign(printer.AlignLeft).
		TextF("Invoice #%s", r.InvoiceNo).
		TextF("Date: %s", r.Date).
		LineFeed()

	// Items
	doc.Separator('-').
		Text(itemHeaderRow()).
		Separator('-')
	for _, item := range r.Items {
		doc.Text(itemRow(item))
	}
	doc.Separator('-')

	// Totals
	doc.SetAlign(printer.AlignRight).
		TextF("Subtotal: %s", r.SubTotal.StringFixed(2))
	if r.GST.IsPositive() {
		doc.TextF("GST (18%%): %s", r.GST.StringFixed(2))
	}
	doc.SetMode(printer.ModeBold).
		TextF("Total: %s", r.Total.StringFixed(2)).
		SetMode(printer.ModeNormal).
		LineFeed()

	// Footer
	doc.SetAlign(printer.AlignCenter).
		Text("Thank you for your business!").
		Separator('-').
		FeedLines(2).
		Cut()

	return doc.Bytes()
}

// FormatReceiptText renders the same receipt layout without control
// sequences, for the spool fallback.
func FormatReceiptText(r *entity.Receipt) string {
	var b strings.Builder
	rule := strings.Repeat("-", receiptWidth) + "\n"

	b.WriteString(center(r.Header.StoreName) + "\n")
	if r.Header.Address != "" {
		b.WriteString(center(r.Header.Address) + "\n")
	}
	if r.Header.Phone != "" {
		b.WriteString(center("Phone: "+r.Header.Phone) + "\n")
	}
	b.WriteString("\n")
	b.WriteString("Invoice #" + r.InvoiceNo + "\n")
	b.WriteString("Date: " + r.Date + "\n\n")

	b.WriteString(rule)
	b.WriteString(itemHeaderRow() + "\n")
	b.WriteString(rule)
	for _, item := range r.Items {
		b.WriteString(itemRow(item) + "\n")
	}
	b.WriteString(rule)

	b.WriteString(rightAlign("Subtotal: "+r.SubTotal.StringFixed(2)) + "\n")
	if r.GST.IsPositive() {
		b.WriteString(rightAlign("GST (18%): "+r.GST.StringFixed(2)) + "\n")
	}
	b.WriteString(rightAlign("Total: "+r.Total.StringFixed(2)) + "\n\n")

	b.WriteString(center("Thank you for your business!") + "\n")
	b.WriteString(rule)
	return b.String()
}

// itemHeaderRow and itemRow lay out the fixed 10/4/8/8 columns.
func itemHeaderRow() string {
	return padRight("Item", itemNameWidth) +
		padLeft("Qty", itemQtyWidth) +
		padLeft("Price", itemPriceWidth) +
		padLeft("Total", itemTotalWidth)
}

func itemRow(item entity.ReceiptItem) string {
	name := item.Name
	if len(name) > itemNameWidth {
		name = name[:itemNameWidth]
	}
	return padRight(name, itemNameWidth) +
		padLeft(fmt.Sprintf("%d", item.Qty), itemQtyWidth) +
		padLeft(item.UnitPrice.StringFixed(2), itemPriceWidth) +
		padLeft(item.Total.StringFixed(2), itemTotalWidth)
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func padLeft(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat(" ", width-len(s)) + s
}

func center(s string) string {
	if len(s) >= receiptWidth {
		return s
	}
	return strings.Repeat(" ", (receiptWidth-len(s))/2) + s
}

func rightAlign(s string) string {
	return padLeft(s, receiptWidth)
}
