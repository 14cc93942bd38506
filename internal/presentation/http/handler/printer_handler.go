package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/santhoshsharuk/billing-api/internal/application/service"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/request"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/response"
)

// PrinterHandler handles receipt printing HTTP requests
type PrinterHandler struct {
	printerService *service.PrinterService
}

// NewPrinterHandler creates a new printer handler
func NewPrinterHandler(printerService *service.PrinterService) *PrinterHandler {
	return &PrinterHandler{printerService: printerService}
}

// Status reports the configured transport and its connection state
func (h *PrinterHandler) Status(c *gin.Context) {
	response.OK(c, "Printer status retrieved successfully", h.printerService.GetStatus())
}

// Test prints a sample receipt to verify the transport
func (h *PrinterHandler) Test(c *gin.Context) {
	receipt, result := h.printerService.TestPrint()

	message := "Test receipt printed successfully"
	if result.FallbackUsed {
		message = "Printer unavailable, test receipt spooled"
	}

	response.OK(c, message, gin.H{"receipt": receipt, "result": result})
}

// Print renders a committed invoice's receipt and sends it to the
// printer, spooling a plain-text copy when the transport fails.
func (h *PrinterHandler) Print(c *gin.Context) {
	var req request.PrintReceiptRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	receipt, result, err := h.printerService.PrintInvoiceReceipt(c.Request.Context(), req.InvoiceID)
	if err != nil {
		response.Error(c, err)
		return
	}

	message := "Receipt printed successfully"
	if result.FallbackUsed {
		message = "Printer unavailable, receipt spooled"
	}

	response.OK(c, message, gin.H{"receipt": receipt, "result": result})
}
