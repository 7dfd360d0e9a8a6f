package handlers

import (
	"io"
	"net/http"
	"strconv"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// maxUploadSize caps multipart uploads at 10 MB.
const maxUploadSize = 10 << 20

// parseIDParam parses a numeric path parameter, responding with a 400 on
// failure.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Invalid "+name+" format.", err.Error()))
		return 0, false
	}
	return id, true
}

// paginationParams reads page/page_size query values with sane defaults.
func paginationParams(c *gin.Context) (page, pageSize int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	pageSize, _ = strconv.Atoi(c.DefaultQuery("page_size", "10"))
	if page <= 0 {
		page = 1
	}
	if pageSize <= 0 {
		pageSize = 10
	}
	if pageSize > 100 {
		pageSize = 100
	}
	return page, pageSize
}

// optionalQuery returns a pointer to a query value, nil when absent.
func optionalQuery(c *gin.Context, name string) *string {
	value := c.Query(name)
	if value == "" {
		return nil
	}
	return &value
}

// respondPage writes the standard paginated list envelope.
func respondPage(c *gin.Context, data interface{}, totalCount, page, pageSize int) {
	c.JSON(http.StatusOK, gin.H{
		"data":      data,
		"total":     totalCount,
		"page":      page,
		"page_size": pageSize,
	})
}

// readUpload pulls one multipart file field into memory. The false return
// means a response was already written.
func readUpload(c *gin.Context, field string) (*services.FileUpload, bool) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"Missing file field "+strconv.Quote(field)+".", err.Error()))
		return nil, false
	}
	if fileHeader.Size > maxUploadSize {
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed,
			"File too large.", "uploads are capped at 10 MB"))
		return nil, false
	}

	file, err := fileHeader.Open()
	if err != nil {
		utils.LogError(err, "readUpload: failed to open multipart file")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to read uploaded file.", "Internal error"))
		return nil, false
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		utils.LogError(err, "readUpload: failed to read multipart file")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError,
			"Failed to read uploaded file.", "Internal error"))
		return nil, false
	}

	contentType := fileHeader.Header.Get("Content-Type")
	if contentType == "" {
		contentType = http.DetectContentType(data)
	}

	return &services.FileUpload{
		Data:        data,
		ContentType: contentType,
		FileName:    utils.NewNullString(fileHeader.Filename),
	}, true
}
