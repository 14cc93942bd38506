package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Invoice represents a committed sale. Invoices are immutable in the normal
// cart workflow; update/delete exist for manual corrections only.
//
// Total is always the pre-tax subtotal. GST is a presentation-time
// adjustment (receipt, UPI amount) and is never persisted.
type Invoice struct {
	ID        uint            `gorm:"primaryKey" json:"id"`
	Date      string          `gorm:"size:10;not null;index" json:"date"` // YYYY-MM-DD
	Status    string          `gorm:"size:20" json:"status,omitempty"`    // optional; "pending"/"unpaid" count as unpaid
	Total     decimal.Decimal `gorm:"type:numeric;not null" json:"total"`
	CreatedAt time.Time       `json:"created_at"`

	Items []LineItem `gorm:"foreignKey:InvoiceID;constraint:OnDelete:CASCADE" json:"items"`
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// LineItem is a priced, quantity-bearing snapshot of one product within a
// single invoice. Name and price are copied at sale time; later product
// edits or deletes never change a committed line item.
type LineItem struct {
	ID        uint            `gorm:"primaryKey" json:"-"`
	InvoiceID uint            `gorm:"index;not null" json:"-"`
	ProductID uint            `gorm:"not null" json:"product_id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Price     decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Qty       int             `gorm:"not null" json:"qty"`
}

// TableName returns the table name for the LineItem model
func (LineItem) TableName() string {
	return "line_items"
}

// LineTotal returns price multiplied by quantity.
func (li LineItem) LineTotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Qty)))
}
