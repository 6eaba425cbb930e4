package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/newgenpools/site-api/internal/application/service"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/response"
)

// DashboardHandler handles the admin dashboard summary
type DashboardHandler struct {
	dashboardService *service.DashboardService
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(dashboardService *service.DashboardService) *DashboardHandler {
	return &DashboardHandler{dashboardService: dashboardService}
}

// Stats handles GET /admin/api/dashboard
func (h *DashboardHandler) Stats(c *gin.Context) {
	stats, err := h.dashboardService.GetStats(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Dashboard retrieved successfully", stats)
}
