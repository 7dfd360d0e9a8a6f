package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// RoadmapHandler holds the roadmap service.
type RoadmapHandler struct {
	roadmapService services.RoadmapService
}

// NewRoadmapHandler creates a new RoadmapHandler.
func NewRoadmapHandler(rs services.RoadmapService) *RoadmapHandler {
	return &RoadmapHandler{roadmapService: rs}
}

// CreateRoadmapItem handles the creation of a new timeline milestone.
func (h *RoadmapHandler) CreateRoadmapItem(c *gin.Context) {
	var req services.RoadmapItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateRoadmapItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.roadmapService.CreateRoadmapItem(req)
	if err != nil {
		utils.LogError(err, "CreateRoadmapItem: Error from roadmapService.CreateRoadmapItem")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create roadmap item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetRoadmapItems lists the timeline. ?sort=desc puts the newest year first.
func (h *RoadmapHandler) GetRoadmapItems(c *gin.Context) {
	yearDescending := c.Query("sort") == "desc"

	items, err := h.roadmapService.GetRoadmapItems(yearDescending)
	if err != nil {
		utils.LogError(err, "GetRoadmapItems: Error from roadmapService.GetRoadmapItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch roadmap items.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, items)
}

// GetRoadmapItemByID handles fetching a single milestone.
func (h *RoadmapHandler) GetRoadmapItemByID(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	item, err := h.roadmapService.GetRoadmapItemByID(itemID)
	if err != nil {
		if errors.Is(err, services.ErrRoadmapItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Roadmap item not found.", err.Error()))
		} else {
			utils.LogError(err, "GetRoadmapItemByID: Error from roadmapService.GetRoadmapItemByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch roadmap item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// UpdateRoadmapItem handles updating a milestone.
func (h *RoadmapHandler) UpdateRoadmapItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.RoadmapItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateRoadmapItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.roadmapService.UpdateRoadmapItem(itemID, req)
	if err != nil {
		utils.LogError(err, "UpdateRoadmapItem: Error from roadmapService.UpdateRoadmapItem")
		if errors.Is(err, services.ErrRoadmapItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Roadmap item not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update roadmap item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// DeleteRoadmapItem handles deleting a milestone.
func (h *RoadmapHandler) DeleteRoadmapItem(c *gin.Context) {
	itemID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.roadmapService.DeleteRoadmapItem(itemID); err != nil {
		utils.LogError(err, "DeleteRoadmapItem: Error from roadmapService.DeleteRoadmapItem")
		if errors.Is(err, services.ErrRoadmapItemNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Roadmap item not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete roadmap item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Roadmap item deleted successfully"})
}

// GetRoadmapYears lists the distinct years on the timeline, newest first.
func (h *RoadmapHandler) GetRoadmapYears(c *gin.Context) {
	years, err := h.roadmapService.GetYears()
	if err != nil {
		utils.LogError(err, "GetRoadmapYears: Error from roadmapService.GetYears")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch roadmap years.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, gin.H{"years": years})
}

// GetRoadmapStats returns the milestone counters for the landing page.
func (h *RoadmapHandler) GetRoadmapStats(c *gin.Context) {
	stats, err := h.roadmapService.GetStats()
	if err != nil {
		utils.LogError(err, "GetRoadmapStats: Error from roadmapService.GetStats")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch roadmap stats.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, stats)
}
