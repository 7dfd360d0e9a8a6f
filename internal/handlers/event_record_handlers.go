package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EventRecordHandler holds the event record service.
type EventRecordHandler struct {
	eventRecordService services.EventRecordService
}

// NewEventRecordHandler creates a new EventRecordHandler.
func NewEventRecordHandler(ers services.EventRecordService) *EventRecordHandler {
	return &EventRecordHandler{eventRecordService: ers}
}

// CreateEventRecord handles recording a new event registration.
func (h *EventRecordHandler) CreateEventRecord(c *gin.Context) {
	var req services.EventRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateEventRecord: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	record, err := h.eventRecordService.CreateEventRecord(req)
	if err != nil {
		utils.LogError(err, "CreateEventRecord: Error from eventRecordService.CreateEventRecord")
		if errors.Is(err, services.ErrDuplicateRegistration) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Registration already exists for this event.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create event record.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, record)
}

// GetEventRecords lists registrations, optionally filtered by event name.
func (h *EventRecordHandler) GetEventRecords(c *gin.Context) {
	page, pageSize := paginationParams(c)
	eventName := optionalQuery(c, "event_name")

	records, totalCount, err := h.eventRecordService.GetEventRecords(eventName, page, pageSize)
	if err != nil {
		utils.LogError(err, "GetEventRecords: Error from eventRecordService.GetEventRecords")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch event records.", "Internal error"))
		return
	}
	respondPage(c, records, totalCount, page, pageSize)
}

// GetEventRecordByID handles fetching a single registration.
func (h *EventRecordHandler) GetEventRecordByID(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	record, err := h.eventRecordService.GetEventRecordByID(recordID)
	if err != nil {
		if errors.Is(err, services.ErrEventRecordNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Event record not found.", err.Error()))
		} else {
			utils.LogError(err, "GetEventRecordByID: Error from eventRecordService.GetEventRecordByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch event record.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, record)
}

// UpdateEventRecord handles correcting a registration.
func (h *EventRecordHandler) UpdateEventRecord(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.EventRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateEventRecord: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	record, err := h.eventRecordService.UpdateEventRecord(recordID, req)
	if err != nil {
		utils.LogError(err, "UpdateEventRecord: Error from eventRecordService.UpdateEventRecord")
		if errors.Is(err, services.ErrEventRecordNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Event record not found.", err.Error()))
		} else if errors.Is(err, services.ErrDuplicateRegistration) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusConflict, utils.ErrCodeConflict, "Registration already exists for this event.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update event record.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, record)
}

// DeleteEventRecord handles deleting a registration.
func (h *EventRecordHandler) DeleteEventRecord(c *gin.Context) {
	recordID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.eventRecordService.DeleteEventRecord(recordID); err != nil {
		utils.LogError(err, "DeleteEventRecord: Error from eventRecordService.DeleteEventRecord")
		if errors.Is(err, services.ErrEventRecordNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Event record not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete event record.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event record deleted successfully"})
}
