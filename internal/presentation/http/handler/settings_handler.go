package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/santhoshsharuk/billing-api/internal/application/service"
	"github.com/santhoshsharuk/billing-api/internal/domain/entity"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/request"
	"github.com/santhoshsharuk/billing-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles store settings HTTP requests
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get returns the store settings snapshot
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.GetSettings(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings retrieved successfully", settings)
}

// Update replaces the whole store settings snapshot
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.SettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings := &entity.StoreSettings{
		StoreName:  req.StoreName,
		Address:    req.Address,
		Phone:      req.Phone,
		UPIID:      req.UPIID,
		GSTEnabled: req.GSTEnabled,
		Logo:       req.Logo,
	}

	if err := h.settingsService.UpdateSettings(c.Request.Context(), settings); err != nil {
		response.Error(c, err)
		return
	}

	response.OK(c, "Settings updated successfully", settings)
}
