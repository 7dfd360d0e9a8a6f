package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EcosystemHandler holds the ecosystem metrics service.
type EcosystemHandler struct {
	ecosystemService services.EcosystemService
}

// NewEcosystemHandler creates a new EcosystemHandler.
func NewEcosystemHandler(es services.EcosystemService) *EcosystemHandler {
	return &EcosystemHandler{ecosystemService: es}
}

// GetEcosystemMetrics returns the landing page counters.
func (h *EcosystemHandler) GetEcosystemMetrics(c *gin.Context) {
	metrics, err := h.ecosystemService.GetMetrics()
	if err != nil {
		utils.LogError(err, "GetEcosystemMetrics: Error from ecosystemService.GetMetrics")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch ecosystem metrics.", "Internal error"))
		return
	}
	c.JSON(http.StatusOK, metrics)
}

// UpdateEcosystemMetrics replaces the landing page counters.
func (h *EcosystemHandler) UpdateEcosystemMetrics(c *gin.Context) {
	var req services.EcosystemMetricsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateEcosystemMetrics: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	metrics, err := h.ecosystemService.UpdateMetrics(req)
	if err != nil {
		utils.LogError(err, "UpdateEcosystemMetrics: Error from ecosystemService.UpdateMetrics")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update ecosystem metrics.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, metrics)
}
