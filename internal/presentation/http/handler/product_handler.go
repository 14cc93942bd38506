package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/santhoshsharuk/billing-api/internal/application/service"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/request"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/response"
)

// ProductHandler handles product catalog HTTP requests
type ProductHandler struct {
	productService *service.ProductService
}

// NewProductHandler creates a new product handler
func NewProductHandler(productService *service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService}
}

// List returns products, optionally filtered by category
func (h *ProductHandler) List(c *gin.Context) {
	var categoryID *uint
	if raw := c.Query("category_id"); raw != "" {
		id, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			response.BadRequest(c, "Invalid category_id filter")
			return
		}
		v := uint(id)
		categoryID = &v
	}

	products, err := h.productService.GetProducts(c.Request.Context(), categoryID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Products retrieved successfully", products)
}

// Get returns a single product by ID
func (h *ProductHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product retrieved successfully", product)
}

// Create adds a new product to the catalog
func (h *ProductHandler) Create(c *gin.Context) {
	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.CreateProduct(c.Request.Context(), &service.ProductInput{
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Product created successfully", product)
}

// Update replaces a product's fields
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.UpdateProduct(c.Request.Context(), id, &service.ProductInput{
		Name:       req.Name,
		Price:      req.Price,
		Stock:      req.Stock,
		CategoryID: req.CategoryID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product updated successfully", product)
}

// Delete removes a product from the catalog
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	if err := h.productService.DeleteProduct(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Product deleted successfully", nil)
}
