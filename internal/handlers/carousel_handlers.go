package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// CarouselHandler holds the carousel service.
type CarouselHandler struct {
	carouselService services.CarouselService
}

// NewCarouselHandler creates a new CarouselHandler.
func NewCarouselHandler(cs services.CarouselService) *CarouselHandler {
	return &CarouselHandler{carouselService: cs}
}

// CreateCarouselImage handles the creation of a new carousel slide.
func (h *CarouselHandler) CreateCarouselImage(c *gin.Context) {
	var req services.CarouselImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateCarouselImage: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	image, err := h.carouselService.CreateCarouselImage(req)
	if err != nil {
		utils.LogError(err, "CreateCarouselImage: Error from carouselService.CreateCarouselImage")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create carousel image.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, image)
}

// GetCarouselImages lists every slide, active or not, for the admin panel.
func (h *CarouselHandler) GetCarouselImages(c *gin.Context) {
	images, err := h.carouselService.GetCarouselImages(false)
	if err != nil {
		utils.LogError(err, "GetCarouselImages: Error from carouselService.GetCarouselImages")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch carousel images.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, images)
}

// GetActiveCarouselImages lists only the slides shown to visitors.
func (h *CarouselHandler) GetActiveCarouselImages(c *gin.Context) {
	images, err := h.carouselService.GetCarouselImages(true)
	if err != nil {
		utils.LogError(err, "GetActiveCarouselImages: Error from carouselService.GetCarouselImages")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch carousel images.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, images)
}

// GetCarouselImageByID handles fetching a single slide.
func (h *CarouselHandler) GetCarouselImageByID(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	image, err := h.carouselService.GetCarouselImageByID(imageID)
	if err != nil {
		if errors.Is(err, services.ErrCarouselImageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Carousel image not found.", err.Error()))
		} else {
			utils.LogError(err, "GetCarouselImageByID: Error from carouselService.GetCarouselImageByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch carousel image.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, image)
}

// UpdateCarouselImage handles updating a slide's text fields.
func (h *CarouselHandler) UpdateCarouselImage(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.CarouselImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateCarouselImage: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	image, err := h.carouselService.UpdateCarouselImage(imageID, req)
	if err != nil {
		utils.LogError(err, "UpdateCarouselImage: Error from carouselService.UpdateCarouselImage")
		if errors.Is(err, services.ErrCarouselImageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Carousel image not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update carousel image.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, image)
}

// DeleteCarouselImage handles deleting a slide.
func (h *CarouselHandler) DeleteCarouselImage(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.carouselService.DeleteCarouselImage(imageID); err != nil {
		utils.LogError(err, "DeleteCarouselImage: Error from carouselService.DeleteCarouselImage")
		if errors.Is(err, services.ErrCarouselImageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Carousel image not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete carousel image.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Carousel image deleted successfully"})
}

// UploadCarouselImageFile replaces the slide's image.
func (h *CarouselHandler) UploadCarouselImageFile(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	upload, ok := readUpload(c, "image")
	if !ok {
		return
	}

	image, err := h.carouselService.SetCarouselImageFile(imageID, *upload)
	if err != nil {
		utils.LogError(err, "UploadCarouselImageFile: Error from carouselService.SetCarouselImageFile")
		if errors.Is(err, services.ErrCarouselImageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Carousel image not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to upload carousel image.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, image)
}

// SetCarouselImageStatus shows or hides a slide without deleting it.
func (h *CarouselHandler) SetCarouselImageStatus(c *gin.Context) {
	imageID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req struct {
		IsActive *bool `json:"is_active" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "SetCarouselImageStatus: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	image, err := h.carouselService.SetCarouselImageActive(imageID, *req.IsActive)
	if err != nil {
		utils.LogError(err, "SetCarouselImageStatus: Error from carouselService.SetCarouselImageActive")
		if errors.Is(err, services.ErrCarouselImageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Carousel image not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update carousel image status.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, image)
}

// ReorderCarouselImages applies a new display order from an ordered id list.
func (h *CarouselHandler) ReorderCarouselImages(c *gin.Context) {
	var req struct {
		ImageIDs []int64 `json:"image_ids" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "ReorderCarouselImages: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	if err := h.carouselService.ReorderCarouselImages(req.ImageIDs); err != nil {
		utils.LogError(err, "ReorderCarouselImages: Error from carouselService.ReorderCarouselImages")
		if errors.Is(err, services.ErrCarouselImageNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Carousel image not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to reorder carousel images.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Carousel images reordered successfully"})
}
