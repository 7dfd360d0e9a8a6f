package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// NewsletterHandler holds the newsletter service.
type NewsletterHandler struct {
	newsletterService services.NewsletterService
}

// NewNewsletterHandler creates a new NewsletterHandler.
func NewNewsletterHandler(ns services.NewsletterService) *NewsletterHandler {
	return &NewsletterHandler{newsletterService: ns}
}

// CreateNewsletter handles the creation of a new newsletter issue.
func (h *NewsletterHandler) CreateNewsletter(c *gin.Context) {
	var req services.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateNewsletter: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	newsletter, err := h.newsletterService.CreateNewsletter(req)
	if err != nil {
		utils.LogError(err, "CreateNewsletter: Error from newsletterService.CreateNewsletter")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create newsletter.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, newsletter)
}

// GetNewsletters handles listing newsletter issues, optionally by year.
func (h *NewsletterHandler) GetNewsletters(c *gin.Context) {
	page, pageSize := paginationParams(c)
	year := optionalQuery(c, "year")

	newsletters, totalCount, err := h.newsletterService.GetNewsletters(year, page, pageSize)
	if err != nil {
		utils.LogError(err, "GetNewsletters: Error from newsletterService.GetNewsletters")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch newsletters.", "Internal error"))
		return
	}
	respondPage(c, newsletters, totalCount, page, pageSize)
}

// GetNewsletterByID handles fetching a single newsletter issue.
func (h *NewsletterHandler) GetNewsletterByID(c *gin.Context) {
	newsletterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	newsletter, err := h.newsletterService.GetNewsletterByID(newsletterID)
	if err != nil {
		if errors.Is(err, services.ErrNewsletterNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Newsletter not found.", err.Error()))
		} else {
			utils.LogError(err, "GetNewsletterByID: Error from newsletterService.GetNewsletterByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch newsletter.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, newsletter)
}

// UpdateNewsletter handles updating a newsletter issue.
func (h *NewsletterHandler) UpdateNewsletter(c *gin.Context) {
	newsletterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.NewsletterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateNewsletter: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	newsletter, err := h.newsletterService.UpdateNewsletter(newsletterID, req)
	if err != nil {
		utils.LogError(err, "UpdateNewsletter: Error from newsletterService.UpdateNewsletter")
		if errors.Is(err, services.ErrNewsletterNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Newsletter not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update newsletter.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, newsletter)
}

// DeleteNewsletter handles deleting a newsletter issue.
func (h *NewsletterHandler) DeleteNewsletter(c *gin.Context) {
	newsletterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.newsletterService.DeleteNewsletter(newsletterID); err != nil {
		utils.LogError(err, "DeleteNewsletter: Error from newsletterService.DeleteNewsletter")
		if errors.Is(err, services.ErrNewsletterNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Newsletter not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete newsletter.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Newsletter deleted successfully"})
}

// UploadNewsletterFiles replaces the cover image and/or PDF. Both fields are
// optional multipart parts named cover and pdf; at least one must be given.
func (h *NewsletterHandler) UploadNewsletterFiles(c *gin.Context) {
	newsletterID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var coverUpload, pdfUpload *services.FileUpload
	if _, err := c.FormFile("cover"); err == nil {
		coverUpload, ok = readUpload(c, "cover")
		if !ok {
			return
		}
	}
	if _, err := c.FormFile("pdf"); err == nil {
		pdfUpload, ok = readUpload(c, "pdf")
		if !ok {
			return
		}
	}

	newsletter, err := h.newsletterService.SetNewsletterFiles(newsletterID, coverUpload, pdfUpload)
	if err != nil {
		utils.LogError(err, "UploadNewsletterFiles: Error from newsletterService.SetNewsletterFiles")
		if errors.Is(err, services.ErrNewsletterNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Newsletter not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to upload newsletter files.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, newsletter)
}
