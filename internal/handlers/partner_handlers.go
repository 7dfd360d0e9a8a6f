package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PartnerHandler holds the partner service.
type PartnerHandler struct {
	partnerService services.PartnerService
}

// NewPartnerHandler creates a new PartnerHandler.
func NewPartnerHandler(ps services.PartnerService) *PartnerHandler {
	return &PartnerHandler{partnerService: ps}
}

// CreatePartner handles the creation of a new partner.
func (h *PartnerHandler) CreatePartner(c *gin.Context) {
	var req services.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreatePartner: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	partner, err := h.partnerService.CreatePartner(req)
	if err != nil {
		utils.LogError(err, "CreatePartner: Error from partnerService.CreatePartner")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create partner.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, partner)
}

// GetPartners handles listing partners. ?type= filters by partner type and
// ?active=true keeps only partners shown on the public site.
func (h *PartnerHandler) GetPartners(c *gin.Context) {
	page, pageSize := paginationParams(c)
	partnerType := optionalQuery(c, "type")
	activeOnly := c.Query("active") == "true"

	partners, totalCount, err := h.partnerService.GetPartners(partnerType, activeOnly, page, pageSize)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
			return
		}
		utils.LogError(err, "GetPartners: Error from partnerService.GetPartners")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch partners.", "Internal error"))
		return
	}
	respondPage(c, partners, totalCount, page, pageSize)
}

// GetPartnerByID handles fetching a single partner.
func (h *PartnerHandler) GetPartnerByID(c *gin.Context) {
	partnerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	partner, err := h.partnerService.GetPartnerByID(partnerID)
	if err != nil {
		if errors.Is(err, services.ErrPartnerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Partner not found.", err.Error()))
		} else {
			utils.LogError(err, "GetPartnerByID: Error from partnerService.GetPartnerByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch partner.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, partner)
}

// UpdatePartner handles updating a partner.
func (h *PartnerHandler) UpdatePartner(c *gin.Context) {
	partnerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.PartnerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdatePartner: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	partner, err := h.partnerService.UpdatePartner(partnerID, req)
	if err != nil {
		utils.LogError(err, "UpdatePartner: Error from partnerService.UpdatePartner")
		if errors.Is(err, services.ErrPartnerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Partner not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update partner.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, partner)
}

// DeletePartner handles deleting a partner.
func (h *PartnerHandler) DeletePartner(c *gin.Context) {
	partnerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.partnerService.DeletePartner(partnerID); err != nil {
		utils.LogError(err, "DeletePartner: Error from partnerService.DeletePartner")
		if errors.Is(err, services.ErrPartnerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Partner not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete partner.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Partner deleted successfully"})
}

// UploadPartnerImage stores the partner image. The service routes it to the
// logo slot for companies and the photo slot for individuals.
func (h *PartnerHandler) UploadPartnerImage(c *gin.Context) {
	partnerID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	upload, ok := readUpload(c, "image")
	if !ok {
		return
	}

	partner, err := h.partnerService.SetPartnerImage(partnerID, *upload)
	if err != nil {
		utils.LogError(err, "UploadPartnerImage: Error from partnerService.SetPartnerImage")
		if errors.Is(err, services.ErrPartnerNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Partner not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to upload partner image.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, partner)
}
