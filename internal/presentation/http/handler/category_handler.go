package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/santhoshsharuk/billing-api/internal/application/service"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/request"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/response"
)

// CategoryHandler handles category-related HTTP requests
type CategoryHandler struct {
	categoryService *service.CategoryService
}

// NewCategoryHandler creates a new category handler
func NewCategoryHandler(categoryService *service.CategoryService) *CategoryHandler {
	return &CategoryHandler{categoryService: categoryService}
}

// List returns all categories
func (h *CategoryHandler) List(c *gin.Context) {
	categories, err := h.categoryService.GetCategories(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Categories retrieved successfully", categories)
}

// Create adds a new category
func (h *CategoryHandler) Create(c *gin.Context) {
	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.categoryService.CreateCategory(c.Request.Context(), req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, "Category created successfully", category)
}

// Update renames an existing category
func (h *CategoryHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	var req request.CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.categoryService.UpdateCategory(c.Request.Context(), id, req.Name)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category updated successfully", category)
}

// Delete removes a category; products keep their dangling reference
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c, "id")
	if !ok {
		response.BadRequest(c, "Invalid category ID")
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Category deleted successfully", nil)
}
