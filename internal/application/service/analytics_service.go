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

// TimeRange selects the reporting window.
type TimeRange string

const (
	RangeToday TimeRange = "today"
	RangeWeek  TimeRange = "week"
	RangeMonth TimeRange = "month"
	RangeYear  TimeRange = "year"
)

// ParseTimeRange validates a range string, defaulting empty to week.
func ParseTimeRange(s string) (TimeRange, error) {
	switch TimeRange(s) {
	case RangeToday, RangeWeek, RangeMonth, RangeYear:
		return TimeRange(s), nil
	case "":
		return RangeWeek, nil
	default:
		return "", apperror.NewBadRequestError("Invalid range (use today, week, month, or year)")
	}
}

// SalesPoint is one slot of the gap-free sales series.
type SalesPoint struct {
	Label  string          `json:"label"`
	Amount decimal.Decimal `json:"amount"`
}

// ProductPerformance aggregates one product's sales inside the window.
type ProductPerformance struct {
	ProductID uint            `json:"product_id"`
	Name      string          `json:"name"`
	Quantity  int             `json:"quantity"`
	Revenue   decimal.Decimal `json:"revenue"`
	Orders    int             `json:"orders"`
}

// CategorySales aggregates revenue per category. Attribution uses the
// product's category at report time, not at sale time: reassigning a
// product moves its historical revenue to the new category.
type CategorySales struct {
	CategoryID uint            `json:"category_id,omitempty"`
	Name       string          `json:"name"`
	Revenue    decimal.Decimal `json:"revenue"`
	Quantity   int             `json:"quantity"`
}

// Report is the aggregate structure returned for one time range.
type Report struct {
	TimeRange          TimeRange            `json:"time_range"`
	TotalSales         decimal.Decimal      `json:"total_sales"`
	TotalInvoices      int                  `json:"total_invoices"`
	AverageOrderValue  decimal.Decimal      `json:"average_order_value"`
	SalesSeries        []SalesPoint         `json:"sales_series"`
	ProductPerformance []ProductPerformance `json:"product_performance"`
	TopProducts        []ProductPerformance `json:"top_products"`
	CategoryBreakdown  []CategorySales      `json:"category_breakdown"`
}

// Period summarizes one comparison period.
type Period struct {
	Total        decimal.Decimal `json:"total"`
	InvoiceCount int             `json:"invoice_count"`
}

// Comparison contrasts the selected window with the preceding one of
// equal length.
type Comparison struct {
	CurrentPeriod     Period  `json:"current_period"`
	PreviousPeriod    Period  `json:"previous_period"`
	GrowthRate        float64 `json:"growth_rate"`
	InvoiceGrowthRate float64 `json:"invoice_growth_rate"`
}

// AnalyticsService computes read-only derived reporting over the full
// invoice/product/category snapshot.
type AnalyticsService struct {
	invoiceRepo  repository.InvoiceRepository
	productRepo  repository.ProductRepository
	categoryRepo repository.CategoryRepository
	now          func() time.Time
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	categoryRepo repository.CategoryRepository,
) *AnalyticsService {
	return &AnalyticsService{
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		categoryRepo: categoryRepo,
		now:          time.Now,
	}
}

// GetReport computes the full aggregate for the given range.
func (s *AnalyticsService) GetReport(ctx context.Context, rng TimeRange) (*Report, error) {
	invoices, err := s.invoiceRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("analytics read", err)
	}
	products, err := s.productRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("analytics read", err)
	}
	categories, err := s.categoryRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("analytics read", err)
	}

	now := s.now()
	start := windowStart(rng, now)
	filtered := filterSince(invoices, start)

	report := &Report{
		TimeRange:         rng,
		TotalSales:        decimal.Zero,
		TotalInvoices:     len(filtered),
		AverageOrderValue: decimal.Zero,
	}
	for _, inv := range filtered {
		report.TotalSales = report.TotalSales.Add(inv.Total)
	}
	if len(filtered) > 0 {
		report.AverageOrderValue = report.TotalSales.
			Div(decimal.NewFromInt(int64(len(filtered)))).Round(2)
	}

	report.SalesSeries = salesSeries(filtered, rng, now)
	report.ProductPerformance = productPerformance(filtered)
	if len(report.ProductPerformance) > 5 {
		report.TopProducts = report.ProductPerformance[:5]
	} else {
		report.TopProducts = report.ProductPerformance
	}
	report.CategoryBreakdown = categoryBreakdown(filtered, products, categories)

	return report, nil
}

// GetComparison contrasts the selected window with the previous period of
// equal length. Growth rates are percentages rounded to one decimal; a
// zero previous period reports zero growth.
func (s *AnalyticsService) GetComparison(ctx context.Context, rng TimeRange) (*Comparison, error) {
	invoices, err := s.invoiceRepo.GetAll(ctx)
	if err != nil {
		return nil, apperror.NewStorageError("analytics read", err)
	}

	now := s.now()
	currentStart := windowStart(rng, now)
	previousStart := currentStart.Add(-now.Sub(currentStart))

	cmp := &Comparison{
		CurrentPeriod:  Period{Total: decimal.Zero},
		PreviousPeriod: Period{Total: decimal.Zero},
	}
	for _, inv := range invoices {
		created := creationTime(&inv)
		switch {
		case !created.Before(currentStart):
			cmp.CurrentPeriod.Total = cmp.CurrentPeriod.Total.Add(inv.Total)
			cmp.CurrentPeriod.InvoiceCount++
		case !created.Before(previousStart):
			cmp.PreviousPeriod.Total = cmp.PreviousPeriod.Total.Add(inv.Total)
			cmp.PreviousPeriod.InvoiceCount++
		}
	}

	cmp.GrowthRate = growthRate(cmp.CurrentPeriod.Total, cmp.PreviousPeriod.Total)
	if cmp.PreviousPeriod.InvoiceCount > 0 {
		delta := float64(cmp.CurrentPeriod.InvoiceCount - cmp.PreviousPeriod.InvoiceCount)
		cmp.InvoiceGrowthRate = roundOne(delta / float64(cmp.PreviousPeriod.InvoiceCount) * 100)
	}

	return cmp, nil
}

// windowStart returns the calendar-relative start of the range: start of
// today, or now minus 7 days / 1 month / 1 year. Not a rolling-hours
// window.
func windowStart(rng TimeRange, now time.Time) time.Time {
	switch rng {
	case RangeToday:
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	case RangeMonth:
		return now.AddDate(0, -1, 0)
	case RangeYear:
		return now.AddDate(-1, 0, 0)
	default: // week
		return now.AddDate(0, 0, -7)
	}
}

func filterSince(invoices []entity.Invoice, start time.Time) []entity.Invoice {
	filtered := []entity.Invoice{}
	for _, inv := range invoices {
		if !creationTime(&inv).Before(start) {
			filtered = append(filtered, inv)
		}
	}
	return filtered
}

// salesSeries buckets the filtered invoices into pre-initialized time
// slots: 24 hourly for today, 7/30 daily for week/month, 12 monthly for
// year. Empty buckets stay present with a zero amount so the series is
// gap-free for charting.
func salesSeries(invoices []entity.Invoice, rng TimeRange, now time.Time) []SalesPoint {
	var (
		points []SalesPoint
		layout string
	)

	switch rng {
	case RangeToday:
		layout = "15:00"
		for hour := 0; hour < 24; hour++ {
			slot := time.Date(now.Year(), now.Month(), now.Day(), hour, 0, 0, 0, now.Location())
			points = append(points, SalesPoint{Label: slot.Format(layout), Amount: decimal.Zero})
		}
	case RangeYear:
		layout = "Jan"
		for month := time.January; month <= time.December; month++ {
			slot := time.Date(now.Year(), month, 1, 0, 0, 0, 0, now.Location())
			points = append(points, SalesPoint{Label: slot.Format(layout), Amount: decimal.Zero})
		}
	default:
		layout = "02 Jan"
		days := 7
		if rng == RangeMonth {
			days = 30
		}
		for i := days - 1; i >= 0; i-- {
			slot := now.AddDate(0, 0, -i)
			points = append(points, SalesPoint{Label: slot.Format(layout), Amount: decimal.Zero})
		}
	}

	index := make(map[string]int, len(points))
	for i, p := range points {
		index[p.Label] = i
	}

	for _, inv := range invoices {
		label := creationTime(&inv).Format(layout)
		if i, ok := index[label]; ok {
			points[i].Amount = points[i].Amount.Add(inv.Total)
		}
	}
	return points
}

func productPerformance(invoices []entity.Invoice) []ProductPerformance {
	stats := make(map[uint]*ProductPerformance)
	var order []uint

	for _, inv := range invoices {
		for _, item := range inv.Items {
			perf, ok := stats[item.ProductID]
			if !ok {
				perf = &ProductPerformance{
					ProductID: item.ProductID,
					Name:      item.Name,
					Revenue:   decimal.Zero,
				}
				stats[item.ProductID] = perf
				order = append(order, item.ProductID)
			}
			perf.Quantity += item.Qty
			perf.Revenue = perf.Revenue.Add(item.LineTotal())
			perf.Orders++
		}
	}

	ranked := make([]ProductPerformance, 0, len(order))
	for _, id := range order {
		ranked = append(ranked, *stats[id])
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Revenue.GreaterThan(ranked[j].Revenue)
	})
	return ranked
}

func categoryBreakdown(invoices []entity.Invoice, products []entity.Product, categories []entity.Category) []CategorySales {
	categoryNames := make(map[uint]string, len(categories))
	for _, c := range categories {
		categoryNames[c.ID] = c.Name
	}
	productCategory := make(map[uint]*uint, len(products))
	for i := range products {
		productCategory[products[i].ID] = products[i].CategoryID
	}

	stats := make(map[uint]*CategorySales)
	var order []uint

	for _, inv := range invoices {
		for _, item := range inv.Items {
			// Resolve via the current catalog; deleted products and
			// dangling category ids land in "Uncategorized" (id 0).
			var categoryID uint
			if catID, ok := productCategory[item.ProductID]; ok && catID != nil {
				if _, known := categoryNames[*catID]; known {
					categoryID = *catID
				}
			}

			sales, ok := stats[categoryID]
			if !ok {
				name := "Uncategorized"
				if categoryID != 0 {
					name = categoryNames[categoryID]
				}
				sales = &CategorySales{CategoryID: categoryID, Name: name, Revenue: decimal.Zero}
				stats[categoryID] = sales
				order = append(order, categoryID)
			}
			sales.Revenue = sales.Revenue.Add(item.LineTotal())
			sales.Quantity += item.Qty
		}
	}

	breakdown := make([]CategorySales, 0, len(order))
	for _, id := range order {
		breakdown = append(breakdown, *stats[id])
	}
	return breakdown
}

func growthRate(current, previous decimal.Decimal) float64 {
	if !previous.IsPositive() {
		return 0
	}
	rate, _ := current.Sub(previous).Div(previous).Mul(decimal.NewFromInt(100)).Round(1).Float64()
	return rate
}

func roundOne(v float64) float64 {
	d := decimal.NewFromFloat(v).Round(1)
	f, _ := d.Float64()
	return f
}
