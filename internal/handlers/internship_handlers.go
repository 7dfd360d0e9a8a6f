package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// InternshipHandler holds the internship service.
type InternshipHandler struct {
	internshipService services.InternshipService
}

// NewInternshipHandler creates a new InternshipHandler.
func NewInternshipHandler(is services.InternshipService) *InternshipHandler {
	return &InternshipHandler{internshipService: is}
}

// CreateInternship handles registering a new intern.
func (h *InternshipHandler) CreateInternship(c *gin.Context) {
	var req services.InternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateInternship: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	internship, err := h.internshipService.CreateInternship(req)
	if err != nil {
		utils.LogError(err, "CreateInternship: Error from internshipService.CreateInternship")
		if errors.Is(err, services.ErrInternNoExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Intern number already registered.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create internship.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, internship)
}

// GetInternships handles listing interns with status/search filters.
func (h *InternshipHandler) GetInternships(c *gin.Context) {
	page, pageSize := paginationParams(c)
	status := optionalQuery(c, "status")
	searchTerm := optionalQuery(c, "search")

	internships, totalCount, err := h.internshipService.GetInternships(status, searchTerm, page, pageSize)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
			return
		}
		utils.LogError(err, "GetInternships: Error from internshipService.GetInternships")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch internships.", "Internal error"))
		return
	}
	respondPage(c, internships, totalCount, page, pageSize)
}

// GetInternshipByID handles fetching a single intern record.
func (h *InternshipHandler) GetInternshipByID(c *gin.Context) {
	internshipID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	internship, err := h.internshipService.GetInternshipByID(internshipID)
	if err != nil {
		if errors.Is(err, services.ErrInternshipNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Internship not found.", err.Error()))
		} else {
			utils.LogError(err, "GetInternshipByID: Error from internshipService.GetInternshipByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch internship.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, internship)
}

// GetInternshipByInternNo looks up an intern by the printed ID card number.
func (h *InternshipHandler) GetInternshipByInternNo(c *gin.Context) {
	internNo := c.Param("internNo")
	if utils.IsEmpty(internNo) {
		utils.RespondValidationFailed(c, "intern number is required")
		return
	}

	internship, err := h.internshipService.GetInternshipByInternNo(internNo)
	if err != nil {
		if errors.Is(err, services.ErrInternshipNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Internship not found.", err.Error()))
		} else {
			utils.LogError(err, "GetInternshipByInternNo: Error from internshipService.GetInternshipByInternNo")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch internship.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, internship)
}

// UpdateInternship handles updating an intern record.
func (h *InternshipHandler) UpdateInternship(c *gin.Context) {
	internshipID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.InternshipRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateInternship: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	internship, err := h.internshipService.UpdateInternship(internshipID, req)
	if err != nil {
		utils.LogError(err, "UpdateInternship: Error from internshipService.UpdateInternship")
		if errors.Is(err, services.ErrInternshipNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Internship not found.", err.Error()))
		} else if errors.Is(err, services.ErrInternNoExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Intern number already registered.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update internship.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, internship)
}

// DeleteInternship handles deleting an intern record.
func (h *InternshipHandler) DeleteInternship(c *gin.Context) {
	internshipID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.internshipService.DeleteInternship(internshipID); err != nil {
		utils.LogError(err, "DeleteInternship: Error from internshipService.DeleteInternship")
		if errors.Is(err, services.ErrInternshipNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Internship not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete internship.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Internship deleted successfully"})
}
