package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// AttachmentHandler serves stored binary files by id.
type AttachmentHandler struct {
	attachmentService services.AttachmentService
}

// NewAttachmentHandler creates a new AttachmentHandler.
func NewAttachmentHandler(as services.AttachmentService) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: as}
}

// GetAttachment streams the blob with its stored content type. Images and
// PDFs render inline; everything else downloads under its original name.
func (h *AttachmentHandler) GetAttachment(c *gin.Context) {
	attachment, err := h.attachmentService.GetAttachment(c.Param("id"))
	if err != nil {
		if errors.Is(err, services.ErrInvalidAttachmentID) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid attachment ID format.", err.Error()))
		} else if errors.Is(err, services.ErrAttachmentNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Attachment not found.", err.Error()))
		} else {
			utils.LogError(err, "GetAttachment: Error from attachmentService.GetAttachment")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch attachment.", "Internal error"))
		}
		return
	}

	if attachment.FileName != nil {
		c.Header("Content-Disposition", `inline; filename="`+*attachment.FileName+`"`)
	}
	c.Data(http.StatusOK, attachment.ContentType, attachment.Data)
}
