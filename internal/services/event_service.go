package services

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// --- Custom Service Errors ---
var ErrEventNotFound = errors.New("event not found")

const eventDateLayout = "2006-01-02"

// --- Data Transfer Objects (DTOs) ---

// EventRequest carries create/update fields for an event. Date travels as a
// YYYY-MM-DD string, the shape the frontend calendar sends.
type EventRequest struct {
	Title            string  `json:"title" binding:"required"`
	Date             string  `json:"date" binding:"required"`
	Time             string  `json:"time" binding:"required"`
	Location         string  `json:"location" binding:"required"`
	Description      *string `json:"description"`
	RegistrationLink *string `json:"registration_link"`
}

// Validate applies the event field rules.
func (req *EventRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Date, validation.Required, validation.Date(eventDateLayout)),
		validation.Field(&req.Time, validation.Required),
		validation.Field(&req.Location, validation.Required),
		validation.Field(&req.RegistrationLink, is.URL),
	)
}

// --- EventService Interface ---
type EventService interface {
	CreateEvent(req EventRequest) (*models.Event, error)
	GetEvents(searchTerm *string, upcomingOnly bool, page, pageSize int) ([]models.Event, int, error)
	GetEventByID(eventID int64) (*models.Event, error)
	UpdateEvent(eventID int64, req EventRequest) (*models.Event, error)
	DeleteEvent(eventID int64) error
	SetEventPoster(eventID int64, upload FileUpload) (*models.Event, error)
}

// --- eventService Implementation ---
type eventService struct {
	db             *sql.DB
	eventRepo      repositories.EventRepository
	attachmentRepo repositories.AttachmentRepository
}

// NewEventService creates a new instance of EventService.
func NewEventService(db *sql.DB, eventRepo repositories.EventRepository,
	attachmentRepo repositories.AttachmentRepository) EventService {
	return &eventService{db: db, eventRepo: eventRepo, attachmentRepo: attachmentRepo}
}

func (s *eventService) buildEvent(req EventRequest) (*models.Event, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	date, err := time.Parse(eventDateLayout, req.Date)
	if err != nil {
		return nil, fmt.Errorf("%w: date must be in YYYY-MM-DD form", ErrValidation)
	}
	return &models.Event{
		Title:            req.Title,
		Date:             date,
		Time:             req.Time,
		Location:         req.Location,
		Description:      req.Description,
		RegistrationLink: req.RegistrationLink,
	}, nil
}

func (s *eventService) CreateEvent(req EventRequest) (*models.Event, error) {
	event, err := s.buildEvent(req)
	if err != nil {
		return nil, err
	}
	if err := s.eventRepo.CreateEvent(event); err != nil {
		return nil, fmt.Errorf("failed to create event: %w", err)
	}
	return event, nil
}

func (s *eventService) GetEvents(searchTerm *string, upcomingOnly bool, page, pageSize int) ([]models.Event, int, error) {
	events, totalCount, err := s.eventRepo.GetEvents(searchTerm, upcomingOnly, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get events: %w", err)
	}
	return events, totalCount, nil
}

func (s *eventService) GetEventByID(eventID int64) (*models.Event, error) {
	event, err := s.eventRepo.GetEventByID(eventID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to get event: %w", err)
	}
	return event, nil
}

func (s *eventService) UpdateEvent(eventID int64, req EventRequest) (*models.Event, error) {
	existing, err := s.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}

	event, err := s.buildEvent(req)
	if err != nil {
		return nil, err
	}
	event.ID = eventID
	event.PosterID = existing.PosterID

	if err := s.eventRepo.UpdateEvent(event); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to update event: %w", err)
	}
	return event, nil
}

func (s *eventService) DeleteEvent(eventID int64) error {
	event, err := s.GetEventByID(eventID)
	if err != nil {
		return err
	}

	if err := s.eventRepo.DeleteEvent(eventID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventNotFound
		}
		return fmt.Errorf("failed to delete event: %w", err)
	}

	cleanupAttachment(s.db, s.attachmentRepo, event.PosterID)
	return nil
}

func (s *eventService) SetEventPoster(eventID int64, upload FileUpload) (*models.Event, error) {
	event, err := s.GetEventByID(eventID)
	if err != nil {
		return nil, err
	}

	attachment, err := swapAttachment(s.db, s.attachmentRepo, event.PosterID, upload,
		func(executor repositories.SQLExecutor, newID *string) error {
			return s.eventRepo.SetEventPoster(executor, eventID, newID)
		})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventNotFound
		}
		return nil, fmt.Errorf("failed to set event poster: %w", err)
	}

	posterID := attachment.ID.String()
	event.PosterID = &posterID
	return event, nil
}
