package request

import "github.com/shopspring/decimal"

// LoginRequest is the operator login payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CategoryRequest creates or renames a category
type CategoryRequest struct {
	Name string `json:"name" binding:"required"`
}

// ProductRequest creates or updates a product
type ProductRequest struct {
	Name       string          `json:"name" binding:"required"`
	Price      decimal.Decimal `json:"price"`
	Stock      int             `json:"stock"`
	CategoryID *uint           `json:"category_id"`
}

// CustomerRequest creates or updates a customer
type CustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email"`
}

// SettingsRequest writes the whole store settings snapshot
type SettingsRequest struct {
	StoreName  string `json:"storeName"`
	Address    string `json:"address"`
	Phone      string `json:"phone"`
	UPIID      string `json:"upiId"`
	GSTEnabled bool   `json:"gstEnabled"`
	Logo       string `json:"logo"`
}

// CartItemRequest adds one product to a cart
type CartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
}

// CartQuantityRequest sets a cart line's quantity; zero or less removes
// the line
type CartQuantityRequest struct {
	Qty int `json:"qty"`
}

// InvoiceStatusRequest updates the optional invoice status field
type InvoiceStatusRequest struct {
	Status string `json:"status"`
}

// PrintReceiptRequest prints the receipt of a committed invoice
type PrintReceiptRequest struct {
	InvoiceID uint `json:"invoice_id" binding:"required"`
}
