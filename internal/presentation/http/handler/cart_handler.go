package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/santhoshsharuk/billing-api/internal/application/service"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/request"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/response"
)

// CartHandler handles the billing cart workflow
type CartHandler struct {
	cartService     *service.CartService
	productService  *service.ProductService
	settingsService *service.SettingsService
}

// NewCartHandler creates a new cart handler
func NewCartHandler(
	cartService *service.CartService,
	productService *service.ProductService,
	settingsService *service.SettingsService,
) *CartHandler {
	return &CartHandler{
		cartService:     cartService,
		productService:  productService,
		settingsService: settingsService,
	}
}

// Create opens a new empty cart session
func (h *CartHandler) Create(c *gin.Context) {
	cartID := h.cartService.CreateCart()

	response.Created(c, "Cart created successfully", gin.H{"cart_id": cartID})
}

// Get returns the cart's lines with its running subtotal and payable total
func (h *CartHandler) Get(c *gin.Context) {
	cartID := c.Param("id")

	lines, err := h.cartService.Lines(cartID)
	if err != nil {
		response.Error(c, err)
		return
	}

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	subtotal, err := h.cartService.Subtotal(cartID)
	if err != nil {
		response.Error(c, err)
		return
	}
	total, err := h.cartService.Total(cartID, settings)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart retrieved successfully", gin.H{
		"cart_id":  cartID,
		"items":    lines,
		"subtotal": subtotal,
		"total":    total,
	})
}

// AddItem adds one unit of a product to the cart
func (h *CartHandler) AddItem(c *gin.Context) {
	cartID := c.Param("id")

	var req request.CartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	product, err := h.productService.GetProduct(c.Request.Context(), req.ProductID)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.cartService.AddToCart(cartID, product); err != nil {
		response.Error(c, err)
		return
	}

	lines, err := h.cartService.Lines(cartID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Item added to cart", gin.H{"cart_id": cartID, "items": lines})
}

// UpdateQuantity sets a line's quantity; zero or less removes the line
func (h *CartHandler) UpdateQuantity(c *gin.Context) {
	cartID := c.Param("id")

	productID, ok := parseIDParam(c, "productId")
	if !ok {
		response.BadRequest(c, "Invalid product ID")
		return
	}

	var req request.CartQuantityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	if err := h.cartService.UpdateQuantity(cartID, productID, req.Qty); err != nil {
		response.Error(c, err)
		return
	}

	lines, err := h.cartService.Lines(cartID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Cart updated successfully", gin.H{"cart_id": cartID, "items": lines})
}

// Commit turns the cart into a persisted invoice with a UPI payment QR
func (h *CartHandler) Commit(c *gin.Context) {
	cartID := c.Param("id")

	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	result, err := h.cartService.Commit(c.Request.Context(), cartID, settings)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Invoice created successfully", result)
}
