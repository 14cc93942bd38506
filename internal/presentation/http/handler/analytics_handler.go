package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/santhoshsharuk/billing-api/internal/application/service"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/response"
)

// AnalyticsHandler serves sales analytics reports
type AnalyticsHandler struct {
	analyticsService *service.AnalyticsService
}

// NewAnalyticsHandler creates a new analytics handler
func NewAnalyticsHandler(analyticsService *service.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{analyticsService: analyticsService}
}

// Report returns the sales report for the requested time range
func (h *AnalyticsHandler) Report(c *gin.Context) {
	rng, err := service.ParseTimeRange(c.Query("range"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	report, err := h.analyticsService.GetReport(c.Request.Context(), rng)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Analytics report retrieved successfully", report)
}

// Comparison returns the current window against the preceding one
func (h *AnalyticsHandler) Comparison(c *gin.Context) {
	rng, err := service.ParseTimeRange(c.Query("range"))
	if err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	comparison, err := h.analyticsService.GetComparison(c.Request.Context(), rng)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Sales comparison retrieved successfully", comparison)
}
