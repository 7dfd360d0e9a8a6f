package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// TenderHandler holds the tender service.
type TenderHandler struct {
	tenderService services.TenderService
}

// NewTenderHandler creates a new TenderHandler.
func NewTenderHandler(ts services.TenderService) *TenderHandler {
	return &TenderHandler{tenderService: ts}
}

// CreateTender handles the creation of a new tender notice.
func (h *TenderHandler) CreateTender(c *gin.Context) {
	var req services.TenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateTender: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	tender, err := h.tenderService.CreateTender(req)
	if err != nil {
		utils.LogError(err, "CreateTender: Error from tenderService.CreateTender")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create tender.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, tender)
}

// GetTenders handles listing tender notices.
func (h *TenderHandler) GetTenders(c *gin.Context) {
	page, pageSize := paginationParams(c)

	tenders, totalCount, err := h.tenderService.GetTenders(page, pageSize)
	if err != nil {
		utils.LogError(err, "GetTenders: Error from tenderService.GetTenders")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch tenders.", "Internal error"))
		return
	}
	respondPage(c, tenders, totalCount, page, pageSize)
}

// GetTenderByID handles fetching a single tender notice.
func (h *TenderHandler) GetTenderByID(c *gin.Context) {
	tenderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	tender, err := h.tenderService.GetTenderByID(tenderID)
	if err != nil {
		if errors.Is(err, services.ErrTenderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Tender not found.", err.Error()))
		} else {
			utils.LogError(err, "GetTenderByID: Error from tenderService.GetTenderByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch tender.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, tender)
}

// UpdateTender handles updating a tender notice.
func (h *TenderHandler) UpdateTender(c *gin.Context) {
	tenderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.TenderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateTender: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	tender, err := h.tenderService.UpdateTender(tenderID, req)
	if err != nil {
		utils.LogError(err, "UpdateTender: Error from tenderService.UpdateTender")
		if errors.Is(err, services.ErrTenderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Tender not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update tender.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, tender)
}

// DeleteTender handles deleting a tender notice.
func (h *TenderHandler) DeleteTender(c *gin.Context) {
	tenderID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.tenderService.DeleteTender(tenderID); err != nil {
		utils.LogError(err, "DeleteTender: Error from tenderService.DeleteTender")
		if errors.Is(err, services.ErrTenderNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Tender not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete tender.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Tender deleted successfully"})
}
