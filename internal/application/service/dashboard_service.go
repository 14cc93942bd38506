package service

import (
	"context"
	"sort"
	"time"

	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	"github.com/santhoshsharuk/billing-api/internal/domain/repository"
	"github.com/santhoshsharuk/billing-api/pkg/apperror"
	"github.com/shopspring/decimal"
)

// DashboardService provides the daily-aggregate summary for the landing
// view. Aggregates are computed from a full-collection snapshot; a write
// racing the read may or may not be reflected, which is fine under the
// single-writer assumption.
type DashboardService struct {
	invoiceRepo repository.InvoiceRepository
	now         func() time.Time
}

// NewDashboardService creates a new dashboard service
func NewDashboardService(invoiceRepo repository.InvoiceRepository) *DashboardService {
	return &DashboardService{
		invoiceRepo: invoiceRepo,
		now:         time.Now,
	}
}

// DashboardStats represents dashboard statistics
type DashboardStats struct {
	TodaySales      decimal.Decimal  `json:"today_sales"`
	TotalInvoices   int              `json:"total_invoices"`
	PendingInvoices int              `json:"pending_invoices"`
	RecentInvoices  []entity.Invoice `json:"recent_invoices"`
}

// GetStats returns today's sales total, overall and pending invoice
// counts, and the five most recently created invoices.
func (s *DashboardService) GetStats(ctx context.Context) (*DashboardStats, error) {
	invoices, err := s.invoiceRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("dashboard read", err)
	}

	today := s.now().Format("2006-01-02")
	stats := &DashboardStats{
		TodaySales:    decimal.Zero,
		TotalInvoices: len(invoices),
	}

	for _, inv := range invoices {
		if inv.Date == today {
			stats.TodaySales = stats.TodaySales.Add(inv.Total)
		}
		if inv.Status == "pending" || inv.Status == "unpaid" {
			stats.PendingInvoices++
		}
	}

	// Most recent first, by creation timestamp, falling back to the date
	// field for records without one.
	sort.Slice(invoices, func(i, j int) bool {
		return creationTime(&invoices[i]).After(creationTime(&invoices[j]))
	})
	if len(invoices) > 5 {
		invoices = invoices[:5]
	}
	stats.RecentInvoices = invoices

	return stats, nil
}

func creationTime(inv *entity.Invoice) time.Time {
	if !inv.CreatedAt.IsZero() {
		return inv.CreatedAt
	}
	t, err := time.Parse("2006-01-02", inv.Date)
	if err != nil {
		return time.Time{}
	}
	return t
}
