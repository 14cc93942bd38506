package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/santhoshsharuk/billing-api/internal/application/service"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/request"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/response"
)

// CustomerHandler handles customer-related HTTP requests
type CustomerHandler struct {
	customerService *service.CustomerService
}

// NewCustomerHandler creates a new customer handler
func NewCustomerHandler(customerService *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{customerService: customerService}
}

// List returns all customers
func (h *CustomerHandler) List(c *gin.Context) {
	customers, err := h.customerService.GetCustomers(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customers retrieved successfully", customers)
}

// Create adds a new customer
func (h *CustomerHandler) Create(c *gin.Context) {
	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.CreateCustomer(c.Request.Context(), req.Name, req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Customer created successfully", customer)
}

// Update replaces a customer's details
func (h *CustomerHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	var req request.CustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	customer, err := h.customerService.UpdateCustomer(c.Request.Context(), id, req.Name, req.Email)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer updated successfully", customer)
}

// Delete removes a customer
func (h *CustomerHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid customer ID")
		return
	}

	if err := h.customerService.DeleteCustomer(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Customer deleted successfully", nil)
}
