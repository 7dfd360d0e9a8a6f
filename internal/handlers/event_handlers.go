package handlers

import (
	"errors"
	"net/http"

	"incubator_backend/internal/services"
	"incubator_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// EventHandler holds the event service.
type EventHandler struct {
	eventService services.EventService
}

// NewEventHandler creates a new EventHandler.
func NewEventHandler(es services.EventService) *EventHandler {
	return &EventHandler{eventService: es}
}

// CreateEvent handles the creation of a new event.
func (h *EventHandler) CreateEvent(c *gin.Context) {
	var req services.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "CreateEvent: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	event, err := h.eventService.CreateEvent(req)
	if err != nil {
		utils.LogError(err, "CreateEvent: Error from eventService.CreateEvent")
		if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to create event.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusCreated, event)
}

// GetEvents handles listing events. ?search= matches title, location and
// description; ?upcoming=true keeps only future dates.
func (h *EventHandler) GetEvents(c *gin.Context) {
	page, pageSize := paginationParams(c)
	searchTerm := optionalQuery(c, "search")
	upcomingOnly := c.Query("upcoming") == "true"

	events, totalCount, err := h.eventService.GetEvents(searchTerm, upcomingOnly, page, pageSize)
	if err != nil {
		utils.LogError(err, "GetEvents: Error from eventService.GetEvents")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch events.", "Internal error"))
		return
	}
	respondPage(c, events, totalCount, page, pageSize)
}

// GetEventByID handles fetching a single event.
func (h *EventHandler) GetEventByID(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	event, err := h.eventService.GetEventByID(eventID)
	if err != nil {
		if errors.Is(err, services.ErrEventNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Event not found.", err.Error()))
		} else {
			utils.LogError(err, "GetEventByID: Error from eventService.GetEventByID")
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to fetch event.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, event)
}

// UpdateEvent handles updating an event.
func (h *EventHandler) UpdateEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	var req services.EventRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError(err, "UpdateEvent: Failed to bind JSON")
		utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Invalid request payload: "+err.Error(), err.Error()))
		return
	}

	event, err := h.eventService.UpdateEvent(eventID, req)
	if err != nil {
		utils.LogError(err, "UpdateEvent: Error from eventService.UpdateEvent")
		if errors.Is(err, services.ErrEventNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Event not found.", err.Error()))
		} else if errors.Is(err, services.ErrValidation) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusBadRequest, utils.ErrCodeValidationFailed, "Validation failed: "+err.Error(), err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to update event.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, event)
}

// DeleteEvent handles deleting an event.
func (h *EventHandler) DeleteEvent(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	if err := h.eventService.DeleteEvent(eventID); err != nil {
		utils.LogError(err, "DeleteEvent: Error from eventService.DeleteEvent")
		if errors.Is(err, services.ErrEventNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Event not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to delete event.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Event deleted successfully"})
}

// UploadEventPoster replaces the event's poster image.
func (h *EventHandler) UploadEventPoster(c *gin.Context) {
	eventID, ok := parseIDParam(c, "id")
	if !ok {
		return
	}

	upload, ok := readUpload(c, "poster")
	if !ok {
		return
	}

	event, err := h.eventService.SetEventPoster(eventID, *upload)
	if err != nil {
		utils.LogError(err, "UploadEventPoster: Error from eventService.SetEventPoster")
		if errors.Is(err, services.ErrEventNotFound) {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusNotFound, utils.ErrCodeNotFound, "Event not found.", err.Error()))
		} else {
			utils.RespondWithError(c, utils.NewAPIError(http.StatusInternalServerError, utils.ErrCodeInternalServerError, "Failed to upload event poster.", "Internal error"))
		}
		return
	}
	c.JSON(http.StatusOK, event)
}
