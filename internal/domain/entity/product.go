package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog.
//
// Deleting a category does not cascade here: a product keeps its dangling
// CategoryID and reads resolve it to "Uncategorized".
type Product struct {
	ID         uint            `gorm:"primaryKey" json:"id"`
	Name       string          `gorm:"size:255;not null" json:"name"`
	Price      decimal.Decimal `gorm:"type:numeric;not null" json:"price"`
	Stock      int             `gorm:"default:0" json:"stock"`
	CategoryID *uint           `gorm:"index" json:"category_id,omitempty"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`

	Category *Category `gorm:"foreignKey:CategoryID" json:"category,omitempty"`
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}
