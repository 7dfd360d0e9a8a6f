package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StartupHandler holds the startup service.
type StartupHandler struct {
	startupService services.StartupService
}

// NewStartupHandler creates a new StartupHandler.
func NewStartupHandler(ss services.StartupService) *StartupHandler {
	return &StartupHandler{startupService: ss}
}

// CreateStartup handles the creation of a new startup profile.
func (h *StartupHandler) CreateStartup(c *gin.Context) {
	var req services.StartupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateStartup: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	startup, err := h.startupService.CreateStartup(req)
	if err != nil {
		utils.LogError(err, "CreateStartup: Error from startupService.CreateStartup")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create startup.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, startup)
}

// GetStartups handles listing startups with category/search filters.
func (h *StartupHandler) GetStartups(c *gin.Context) {
	page, pageSize := paginationParams(c)
	category := optionalQuery(c, "category")
	searchTerm := optionalQuery(c, "search")

	startups, totalCount, err := h.startupService.GetStartups(category, searchTerm, page, pageSize)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
			return
		}
		utils.LogError(err, "GetStartups: Error from startupService.GetStartups")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch startups.", "Internal error"))
		return
	}
	respondPage(c, startups, totalCount, page, pageSize)
}

// GetStartupByID handles fetching a single startup.
func (h *StartupHandler) GetStartupByID(c *gin.Context) {
	startupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	startup, err := h.startupService.GetStartupByID(startupID)
	if err != nil {
		if errors.Is(err, services.ErrStartupNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Startup not found.", err.Error()))
		} else {
			utils.LogError(err, "GetStartupByID: Error from startupService.GetStartupByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch startup.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, startup)
}

// UpdateStartup handles updating a startup profile.
func (h *StartupHandler) UpdateStartup(c *gin.Context) {
	startupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.StartupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateStartup: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	startup, err := h.startupService.UpdateStartup(startupID, req)
	if err != nil {
		utils.LogError(err, "UpdateStartup: Error from startupService.UpdateStartup")
		if errors.Is(err, services.ErrStartupNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Startup not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update startup.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, startup)
}

// DeleteStartup handles deleting a startup profile.
func (h *StartupHandler) DeleteStartup(c *gin.Context) {
	startupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.startupService.DeleteStartup(startupID); err != nil {
		utils.LogError(err, "DeleteStartup: Error from startupService.DeleteStartup")
		if errors.Is(err, services.ErrStartupNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Startup not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete startup.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Startup deleted successfully"})
}

// UploadStartupImage replaces the startup's display image.
func (h *StartupHandler) UploadStartupImage(c *gin.Context) {
	startupID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	upload, ok := readUpload(c, "image")
	if !ok {
		return
	}

	startup, err := h.startupService.SetStartupImage(startupID, *upload)
	if err != nil {
		utils.LogError(err, "UploadStartupImage: Error from startupService.SetStartupImage")
		if errors.Is(err, services.ErrStartupNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Startup not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to upload startup image.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, startup)
}
