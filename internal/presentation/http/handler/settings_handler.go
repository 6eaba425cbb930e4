package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/newgenpools/site-api/internal/application/service"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/request"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/response"
)

// SettingsHandler handles the site settings singleton
type SettingsHandler struct {
	settingsService *service.SettingsService
}

// NewSettingsHandler creates a new settings handler
func NewSettingsHandler(settingsService *service.SettingsService) *SettingsHandler {
	return &SettingsHandler{settingsService: settingsService}
}

// Get handles retrieving the settings, creating defaults on first access
func (h *SettingsHandler) Get(c *gin.Context) {
	settings, err := h.settingsService.Get(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings retrieved successfully", gin.H{
		"settings": settings,
		"theme":    service.ResolveTheme(settings),
	})
}

// Update handles patching the settings
func (h *SettingsHandler) Update(c *gin.Context) {
	var req request.SettingsRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, 422, err.Error())
		return
	}

	settings, err := h.settingsService.Update(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Settings updated successfully", gin.H{
		"settings": settings,
		"theme":    service.ResolveTheme(settings),
	})
}
