package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ContactHandler holds the contact info service.
type ContactHandler struct {
	contactService services.ContactService
}

// NewContactHandler creates a new ContactHandler.
func NewContactHandler(cs services.ContactService) *ContactHandler {
	return &ContactHandler{contactService: cs}
}

// GetContactInfo returns the footer contact and social links.
func (h *ContactHandler) GetContactInfo(c *gin.Context) {
	contact, err := h.contactService.GetContact()
	if err != nil {
		if errors.Is(err, services.ErrContactNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Contact info not found.", err.Error()))
		} else {
			utils.LogError(err, "GetContactInfo: Error from contactService.GetContact")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch contact info.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, contact)
}

// UpdateContactInfo replaces the footer contact and social links.
func (h *ContactHandler) UpdateContactInfo(c *gin.Context) {
	var req services.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateContactInfo: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	contact, err := h.contactService.UpdateContact(req)
	if err != nil {
		utils.LogError(err, "UpdateContactInfo: Error from contactService.UpdateContact")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update contact info.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, contact)
}
