package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/santhoshsharuk/billing-api/internal/application/service"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/request"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/response"
)

// InvoiceHandler handles invoice history HTTP requests
type InvoiceHandler struct {
	invoiceService *service.InvoiceService
}

// NewInvoiceHandler creates a new invoice handler
func NewInvoiceHandler(invoiceService *service.InvoiceService) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService}
}

// List returns invoices, optionally filtered to one business date
func (h *InvoiceHandler) List(c *gin.Context) {
	date := c.Query("date")

	invoices, err := h.invoiceService.GetInvoices(c.Request.Context(), date)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoices retrieved successfully", invoices)
}

// Get returns one invoice with its line items
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	invoice, err := h.invoiceService.GetInvoice(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice retrieved successfully", invoice)
}

// UpdateStatus sets the invoice's payment status
func (h *InvoiceHandler) UpdateStatus(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req request.InvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	invoice, err := h.invoiceService.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice status updated successfully", invoice)
}

// Delete removes an invoice and its line items
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.DeleteInvoice(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Invoice deleted successfully", nil)
}
