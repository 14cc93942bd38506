package repository

import (
	"context"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
)

// InvoiceRepository defines the interface for invoice data access.
// All reads return invoices with their line items loaded.
type InvoiceRepository interface {
	Create(ctx context.Context, invoice *entity.Invoice) error
	GetByID(ctx context.Context, id uint) (*entity.Invoice, error)
	GetAll(ctx context.Context) ([]entity.Invoice, error)
	// GetByDate returns all invoices whose date field equals the given
	// YYYY-MM-DD string.
	GetByDate(ctx context.Context, date string) ([]entity.Invoice, error)
	Update(ctx context.Context, invoice *entity.Invoice) error
	Delete(ctx context.Context, id uint) error
}
