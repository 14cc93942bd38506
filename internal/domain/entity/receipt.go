package entity

import "github.com/shopspring/decimal"

// ReceiptHeader holds the store header printed at the top of a receipt.
type ReceiptHeader struct {
	StoreName string `json:"store_name"`
	Address   string `json:"address,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// ReceiptItem represents a single line item on a receipt.
type ReceiptItem struct {
	Name      string          `json:"name"`
	Qty       int             `json:"qty"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Total     decimal.Decimal `json:"total"`
}

// Receipt is a value object representing a printable receipt.
// It is NOT a database entity — it is composed from invoice and settings
// data at print time.
type Receipt struct {
	Header    ReceiptHeader   `json:"header"`
	InvoiceNo string          `json:"invoice_no"`
	Date      string          `json:"date"`
	Items     []ReceiptItem   `json:"items"`
	SubTotal  decimal.Decimal `json:"sub_total"`
	GST       decimal.Decimal `json:"gst"` // zero when GST is disabled
	Total     decimal.Decimal `json:"total"`
}
