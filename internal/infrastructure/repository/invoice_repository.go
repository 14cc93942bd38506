package repository

import (
	"context"
	"errors"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	domainRepo "github.com/santhoshsharuk/billing-api/internal/domain/repository"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

// Create inserts the invoice and its line items in one transaction.
func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice) error {
	return r.db.WithContext(ctx).Create(invoice).Error
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uint) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).Preload("Items").First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) GetAll(ctx context.Context) ([]entity.Invoice, error) {
	invoices := []entity.Invoice{}
	err := r.db.WithContext(ctx).Preload("Items").Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) GetByDate(ctx context.Context, date string) ([]entity.Invoice, error) {
	invoices := []entity.Invoice{}
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("date = ?", date).
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) Update(ctx context.Context, invoice *entity.Invoice) error {
	if invoice.ID == 0 {
		return gorm.ErrMissingWhereClause
	}
	return r.db.WithContext(ctx).Save(invoice).Error
}

func (r *invoiceRepository) Delete(ctx context.Context, id uint) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Delete(&entity.LineItem{}, "invoice_id = ?", id).Error; err != nil {
			return err
		}
		return tx.Delete(&entity.Invoice{}, "id = ?", id).Error
	})
}
