package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/newgenpools/site-api/internal/application/service"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/request"
	"github.com/newgenpools/site-api/internal/presentation/http/dto/response"
)

// ProjectHandler handles project-related HTTP requests
type ProjectHandler struct {
	projectService *service.ProjectService
}

// NewProjectHandler creates a new project handler
func NewProjectHandler(projectService *service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List handles listing projects for the admin screen
func (h *ProjectHandler) List(c *gin.Context) {
	result, err := h.projectService.ListProjects(c.Request.Context(), pageParams(c))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.SuccessWithPagination(c, 200, "Projects retrieved successfully", result)
}

// Get handles retrieving one project
func (h *ProjectHandler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	project, err := h.projectService.GetProject(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Project retrieved successfully", project)
}

// Create handles creating a project
func (h *ProjectHandler) Create(c *gin.Context) {
	var req request.ProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, 422, err.Error())
		return
	}

	project, err := h.projectService.CreateProject(c.Request.Context(), req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, "Project created successfully", project)
}

// Update handles updating a project
func (h *ProjectHandler) Update(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	var req request.ProjectRequest
	if err := c.ShouldBind(&req); err != nil {
		response.ErrorWithCode(c, 422, err.Error())
		return
	}

	project, err := h.projectService.UpdateProject(c.Request.Context(), id, req.ToInput())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Project updated successfully", project)
}

// Delete handles deleting a project
func (h *ProjectHandler) Delete(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	if err := h.projectService.DeleteProject(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, "Project deleted successfully", nil)
}
