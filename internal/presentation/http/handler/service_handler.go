package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/newgenpools/site-api/internal/application/service"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/request"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/response"
)

// ServiceHandler handles service-catalog HTTP requests
type ServiceHandler struct {
	catalogService *service.ServiceCatalogService
}

// NewServiceHandler creates a new service handler
func NewServiceHandler(catalogService *service.ServiceCatalogService) *ServiceHandler {
	return &ServiceHandler{catalogService: catalogService}
}

// List handles listing services for the admin screen
func (h *ServiceHandler) List(c *gin.Context) {
	result, err := h.catalogService.ListServices(c.Request.Context(), pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Services retrieved successfully", result)
}

// Get handles retrieving one service
func (h *ServiceHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	svc, err := h.catalogService.GetService(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Service retrieved successfully", svc)
}

// Create handles creating a service
func (h *ServiceHandler) Create(c *gin.Context) {
	var req request.ServiceRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, 422, err.Error())
		return
	}

	svc, err := h.catalogService.CreateService(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Service created successfully", svc)
}

// Update handles updating a service
func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.ServiceRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, 422, err.Error())
		return
	}

	svc, err := h.catalogService.UpdateService(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Service updated successfully", svc)
}

// Delete handles deleting a service
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.catalogService.DeleteService(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Service deleted successfully", nil)
}
