package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// StockHandler holds the stock service and the attachment service used for
// item images.
type StockHandler struct {
	stockService      services.StockService
	attachmentService services.AttachmentService
}

// NewStockHandler creates a new StockHandler.
func NewStockHandler(ss services.StockService, as services.AttachmentService) *StockHandler {
	return &StockHandler{stockService: ss, attachmentService: as}
}

// CreateStockItem handles registering a new inventory item.
func (h *StockHandler) CreateStockItem(c *gin.Context) {
	var req services.CreateStockItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateStockItem: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	item, err := h.stockService.CreateItem(req)
	if err != nil {
		utils.LogError(err, "CreateStockItem: Error from stockService.CreateItem")
		if errors.Is(err, services.ErrStockExists) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Stock item already exists.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create stock item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, item)
}

// GetStockItems handles listing inventory items with a category filter.
func (h *StockHandler) GetStockItems(c *gin.Context) {
	page, pageSize := paginationParams(c)
	category := optionalQuery(c, "category")

	items, totalCount, err := h.stockService.GetItems(category, page, pageSize)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
			return
		}
		utils.LogError(err, "GetStockItems: Error from stockService.GetItems")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch stock items.", "Internal error"))
		return
	}
	respondPage(c, items, totalCount, page, pageSize)
}

// GetStockItem handles fetching a single inventory item by its stock key.
func (h *StockHandler) GetStockItem(c *gin.Context) {
	item, err := h.stockService.GetItem(c.Param("stockId"))
	if err != nil {
		if errors.Is(err, services.ErrStockNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Stock item not found.", err.Error()))
		} else {
			utils.LogError(err, "GetStockItem: Error from stockService.GetItem")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch stock item.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, item)
}

// UploadStockImage replaces an item's image. The blob is stored first, then
// the reference is swapped and the previous blob removed.
func (h *StockHandler) UploadStockImage(c *gin.Context) {
	stockID := c.Param("stockId")
	item, err := h.stockService.GetItem(stockID)
	if err != nil {
		if errors.Is(err, services.ErrStockNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Stock item not found.", err.Error()))
		} else {
			utils.LogError(err, "UploadStockImage: Error from stockService.GetItem")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch stock item.", "Internal error"))
		}
		return
	}

	upload, ok := readUpload(c, "image")
	if !ok {
		return
	}

	attachment, err := h.attachmentService.StoreAttachment(*upload)
	if err != nil {
		utils.LogError(err, "UploadStockImage: Error from attachmentService.StoreAttachment")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to store stock image.", "Internal error"))
		return
	}

	imageID := attachment.ID.String()
	if err = h.stockService.SetItemImage(stockID, &imageID); err != nil {
		utils.LogError(err, "UploadStockImage: Error from stockService.SetItemImage")
		if delErr := h.attachmentService.DeleteAttachment(imageID); delErr != nil {
			utils.LogError(delErr, "UploadStockImage: failed to remove stored image after reference failure")
		}
		if errors.Is(err, services.ErrStockNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Stock item not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to set stock image.", "Internal error"))
		}
		return
	}

	if item.ImageID != nil {
		if delErr := h.attachmentService.DeleteAttachment(*item.ImageID); delErr != nil && !errors.Is(delErr, services.ErrAttachmentNotFound) {
			utils.LogError(delErr, "UploadStockImage: failed to remove replaced image")
		}
	}

	item.ImageID = &imageID
	c.JSON(http.StatusOK, item)
}

// DeleteStockItem removes an item together with its full ledger.
func (h *StockHandler) DeleteStockItem(c *gin.Context) {
	stockID := c.Param("stockId")
	item, err := h.stockService.GetItem(stockID)
	if err != nil {
		if errors.Is(err, services.ErrStockNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Stock item not found.", err.Error()))
		} else {
			utils.LogError(err, "DeleteStockItem: Error from stockService.GetItem")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch stock item.", "Internal error"))
		}
		return
	}

	if err := h.stockService.DeleteItem(stockID); err != nil {
		utils.LogError(err, "DeleteStockItem: Error from stockService.DeleteItem")
		if errors.Is(err, services.ErrStockNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Stock item not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete stock item.", "Internal error"))
		}
		return
	}

	if item.ImageID != nil {
		if delErr := h.attachmentService.DeleteAttachment(*item.ImageID); delErr != nil && !errors.Is(delErr, services.ErrAttachmentNotFound) {
			utils.LogError(delErr, "DeleteStockItem: failed to remove item image")
		}
	}
	c.JSON(http.StatusOK, gin.H{"message": "Stock item and its records deleted successfully"})
}

// UpdateStock applies one signed count change and appends the matching
// ledger record atomically.
func (h *StockHandler) UpdateStock(c *gin.Context) {
	var req services.ApplyAdjustmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateStock: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	result, err := h.stockService.ApplyAdjustment(req)
	if err != nil {
		if errors.Is(err, services.ErrStockNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Stock item not found.", err.Error()))
		} else if errors.Is(err, services.ErrInvalidAdjustment) || errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.LogError(err, "UpdateStock: Error from stockService.ApplyAdjustment")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update stock.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, result)
}

// GetUpdateRecords returns the item together with its full adjustment
// history, oldest first.
func (h *StockHandler) GetUpdateRecords(c *gin.Context) {
	ledger, err := h.stockService.GetLedger(c.Param("stockId"))
	if err != nil {
		if errors.Is(err, services.ErrStockNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Stock item not found.", err.Error()))
		} else {
			utils.LogError(err, "GetUpdateRecords: Error from stockService.GetLedger")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch update records.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, ledger)
}

// ReconcileStock checks one item's count against its ledger sum and repairs
// drift.
func (h *StockHandler) ReconcileStock(c *gin.Context) {
	result, err := h.stockService.Reconcile(c.Param("stockId"))
	if err != nil {
		if errors.Is(err, services.ErrStockNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Stock item not found.", err.Error()))
		} else if errors.Is(err, services.ErrConsistency) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConsistency, "Stock ledger is inconsistent.", err.Error()))
		} else {
			utils.LogError(err, "ReconcileStock: Error from stockService.Reconcile")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to reconcile stock.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, result)
}
