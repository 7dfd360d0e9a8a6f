package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// MediaHandler holds the media service.
type MediaHandler struct {
	mediaService services.MediaService
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(ms services.MediaService) *MediaHandler {
	return &MediaHandler{mediaService: ms}
}

// CreateMedia handles the creation of a new press article.
func (h *MediaHandler) CreateMedia(c *gin.Context) {
	var req services.MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateMedia: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	media, err := h.mediaService.CreateMedia(req)
	if err != nil {
		utils.LogError(err, "CreateMedia: Error from mediaService.CreateMedia")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create media article.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, media)
}

// GetMedia handles listing press articles with category/search filters.
func (h *MediaHandler) GetMedia(c *gin.Context) {
	page, pageSize := paginationParams(c)
	category := optionalQuery(c, "category")
	searchTerm := optionalQuery(c, "search")

	articles, totalCount, err := h.mediaService.GetMedia(category, searchTerm, page, pageSize)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
			return
		}
		utils.LogError(err, "GetMedia: Error from mediaService.GetMedia")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch media articles.", "Internal error"))
		return
	}
	respondPage(c, articles, totalCount, page, pageSize)
}

// GetMediaByID handles fetching a single press article.
func (h *MediaHandler) GetMediaByID(c *gin.Context) {
	mediaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	media, err := h.mediaService.GetMediaByID(mediaID)
	if err != nil {
		if errors.Is(err, services.ErrMediaNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Media article not found.", err.Error()))
		} else {
			utils.LogError(err, "GetMediaByID: Error from mediaService.GetMediaByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch media article.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, media)
}

// UpdateMedia handles updating a press article.
func (h *MediaHandler) UpdateMedia(c *gin.Context) {
	mediaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.MediaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateMedia: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	media, err := h.mediaService.UpdateMedia(mediaID, req)
	if err != nil {
		utils.LogError(err, "UpdateMedia: Error from mediaService.UpdateMedia")
		if errors.Is(err, services.ErrMediaNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Media article not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update media article.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, media)
}

// DeleteMedia handles deleting a press article.
func (h *MediaHandler) DeleteMedia(c *gin.Context) {
	mediaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.mediaService.DeleteMedia(mediaID); err != nil {
		utils.LogError(err, "DeleteMedia: Error from mediaService.DeleteMedia")
		if errors.Is(err, services.ErrMediaNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Media article not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete media article.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Media article deleted successfully"})
}

// UploadMediaImage replaces the article's image.
func (h *MediaHandler) UploadMediaImage(c *gin.Context) {
	mediaID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	upload, ok := readUpload(c, "image")
	if !ok {
		return
	}

	media, err := h.mediaService.SetMediaImage(mediaID, *upload)
	if err != nil {
		utils.LogError(err, "UploadMediaImage: Error from mediaService.SetMediaImage")
		if errors.Is(err, services.ErrMediaNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Media article not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to upload media image.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, media)
}
