package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ProjectHandler holds the project service.
type ProjectHandler struct {
	projectService services.ProjectService
}

// NewProjectHandler creates a new ProjectHandler.
func NewProjectHandler(ps services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: ps}
}

// CreateProject handles registering a new lab project.
func (h *ProjectHandler) CreateProject(c *gin.Context) {
	var req services.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateProject: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	project, err := h.projectService.CreateProject(req)
	if err != nil {
		utils.LogError(err, "CreateProject: Error from projectService.CreateProject")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create project.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, project)
}

// GetProjects handles listing lab projects with status/search filters.
func (h *ProjectHandler) GetProjects(c *gin.Context) {
	page, pageSize := paginationParams(c)
	status := optionalQuery(c, "status")
	searchTerm := optionalQuery(c, "search")

	projects, totalCount, err := h.projectService.GetProjects(status, searchTerm, page, pageSize)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
			return
		}
		utils.LogError(err, "GetProjects: Error from projectService.GetProjects")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch projects.", "Internal error"))
		return
	}
	respondPage(c, projects, totalCount, page, pageSize)
}

// GetProjectByID handles fetching a single lab project.
func (h *ProjectHandler) GetProjectByID(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	project, err := h.projectService.GetProjectByID(projectID)
	if err != nil {
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Project not found.", err.Error()))
		} else {
			utils.LogError(err, "GetProjectByID: Error from projectService.GetProjectByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch project.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, project)
}

// UpdateProject handles updating a lab project.
func (h *ProjectHandler) UpdateProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.ProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateProject: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	project, err := h.projectService.UpdateProject(projectID, req)
	if err != nil {
		utils.LogError(err, "UpdateProject: Error from projectService.UpdateProject")
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Project not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update project.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, project)
}

// DeleteProject handles deleting a lab project.
func (h *ProjectHandler) DeleteProject(c *gin.Context) {
	projectID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.projectService.DeleteProject(projectID); err != nil {
		utils.LogError(err, "DeleteProject: Error from projectService.DeleteProject")
		if errors.Is(err, services.ErrProjectNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Project not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete project.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Project deleted successfully"})
}
