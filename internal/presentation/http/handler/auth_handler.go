package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/santhoshsharuk/billing-api/internal/application/service"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/request"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/response"
)

// AuthHandler handles operator authentication requests
type AuthHandler struct {
	authService *service.AuthService
}

// NewAuthHandler creates a new auth handler
func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login authenticates the store operator and issues a token
func (h *AuthHandler) Login(c *gin.Context) {
	var req request.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	result, err := h.authService.Login(req.Username, req.Password)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Login successful", result)
}
