package service

import (
	"context"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	"github.com/santhoshsharuk/billing-api/internal/domain/repository"
	"github.com/santhoshsharuk/billing-api/pkg/apperror"
)

// InvoiceService handles invoice reads and manual corrections. Invoices
// are created through the cart engine, not here.
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(invoiceRepo repository.InvoiceRepository) *InvoiceService {
	return &InvoiceService{invoiceRepo: invoiceRepo}
}

// GetInvoices lists all invoices, or those of one date when date is a
// non-empty YYYY-MM-DD string.
func (s *InvoiceService) GetInvoices(ctx context.Context, date string) ([]entity.Invoice, error) {
	var (
		invoices []entity.Invoice
		err      error
	)
	if date != "" {
		invoices, err = s.invoiceRepo.GetByDate(ctx, date)
	} else {
		invoices, err = s.invoiceRepo.GetAll(ctx)
	}
	if err != nil {
		return nil, apperror.NewStorageError("invoice read", err)
	}
	return invoices, nil
}

func (s *InvoiceService) GetInvoice(ctx context.Context, id uint) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, apperror.NewStorageError("invoice read", err)
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// UpdateStatus sets the optional status field ("pending", "unpaid", or
// empty for paid).
func (s *InvoiceService) UpdateStatus(ctx context.Context, id uint, status string) (*entity.Invoice, error) {
	invoice, err := s.GetInvoice(ctx, id)
	if err != nil {
		return nil, err
	}
	invoice.Status = status
	if err := s.invoiceRepo.Update(ctx, invoice); err != nil {
		return nil, apperror.NewStorageError("invoice update", err)
	}
	return invoice, nil
}

func (s *InvoiceService) DeleteInvoice(ctx context.Context, id uint) error {
	if err := s.invoiceRepo.Delete(ctx, id); err != nil {
		return apperror.NewStorageError("invoice delete", err)
	}
	return nil
}
