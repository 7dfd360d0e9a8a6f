package services

import (
	"errors"
	"fmt"
	"time"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// --- Custom Service Errors ---
var (
	ErrEventRecordNotFound   = errors.New("event record not found")
	ErrDuplicateRegistration = errors.New("registration already exists for this event")
)

// --- Data Transfer Objects (DTOs) ---

// EventRecordRequest carries create/update fields for an event registration.
// DateOfRegistration is optional and defaults to the current time.
type EventRecordRequest struct {
	Name               string  `json:"name" binding:"required"`
	Email              string  `json:"email" binding:"required"`
	Phone              string  `json:"phone" binding:"required"`
	EventName          string  `json:"event_name" binding:"required"`
	AmountPaid         float64 `json:"amount_paid"`
	DateOfRegistration string  `json:"date_of_registration"`
}

// Validate applies the event registration field rules.
func (req *EventRecordRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Name, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Email, validation.Required, is.Email),
		validation.Field(&req.Phone, validation.Required, validation.Length(1, 30)),
		validation.Field(&req.EventName, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.AmountPaid, validation.Min(0.0)),
	)
}

// --- EventRecordService Interface ---
type EventRecordService interface {
	CreateEventRecord(req EventRecordRequest) (*models.EventRecord, error)
	GetEventRecords(eventName *string, page, pageSize int) ([]models.EventRecord, int, error)
	GetEventRecordByID(recordID int64) (*models.EventRecord, error)
	UpdateEventRecord(recordID int64, req EventRecordRequest) (*models.EventRecord, error)
	DeleteEventRecord(recordID int64) error
}

// --- eventRecordService Implementation ---
type eventRecordService struct {
	eventRecordRepo repositories.EventRecordRepository
}

// NewEventRecordService creates a new instance of EventRecordService.
func NewEventRecordService(eventRecordRepo repositories.EventRecordRepository) EventRecordService {
	return &eventRecordService{eventRecordRepo: eventRecordRepo}
}

func (s *eventRecordService) buildRecord(req EventRecordRequest) (*models.EventRecord, error) {
	registeredAt := time.Now()
	if req.DateOfRegistration != "" {
		parsed, err := time.Parse("2006-01-02", req.DateOfRegistration)
		if err != nil {
			return nil, fmt.Errorf("%w: date_of_registration must be in YYYY-MM-DD form", ErrValidation)
		}
		registeredAt = parsed
	}
	return &models.EventRecord{
		Name:               req.Name,
		Email:              req.Email,
		Phone:              req.Phone,
		EventName:          req.EventName,
		AmountPaid:         req.AmountPaid,
		DateOfRegistration: registeredAt,
	}, nil
}

func (s *eventRecordService) CreateEventRecord(req EventRecordRequest) (*models.EventRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	record, err := s.buildRecord(req)
	if err != nil {
		return nil, err
	}

	if err := s.eventRecordRepo.CreateEventRecord(record); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %q for %q", ErrDuplicateRegistration, record.Email, record.EventName)
		}
		return nil, fmt.Errorf("failed to create event record: %w", err)
	}
	return record, nil
}

func (s *eventRecordService) GetEventRecords(eventName *string, page, pageSize int) ([]models.EventRecord, int, error) {
	records, totalCount, err := s.eventRecordRepo.GetEventRecords(eventName, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get event records: %w", err)
	}
	return records, totalCount, nil
}

func (s *eventRecordService) GetEventRecordByID(recordID int64) (*models.EventRecord, error) {
	record, err := s.eventRecordRepo.GetEventRecordByID(recordID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventRecordNotFound
		}
		return nil, fmt.Errorf("failed to get event record: %w", err)
	}
	return record, nil
}

func (s *eventRecordService) UpdateEventRecord(recordID int64, req EventRecordRequest) (*models.EventRecord, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.GetEventRecordByID(recordID)
	if err != nil {
		return nil, err
	}

	record, err := s.buildRecord(req)
	if err != nil {
		return nil, err
	}
	record.ID = recordID
	if req.DateOfRegistration == "" {
		record.DateOfRegistration = existing.DateOfRegistration
	}

	if err := s.eventRecordRepo.UpdateEventRecord(record); err != nil {
		if errors.Is(err, repositories.ErrDuplicateKey) {
			return nil, fmt.Errorf("%w: %q for %q", ErrDuplicateRegistration, record.Email, record.EventName)
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrEventRecordNotFound
		}
		return nil, fmt.Errorf("failed to update event record: %w", err)
	}
	return record, nil
}

func (s *eventRecordService) DeleteEventRecord(recordID int64) error {
	if err := s.eventRecordRepo.DeleteEventRecord(recordID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrEventRecordNotFound
		}
		return fmt.Errorf("failed to delete event record: %w", err)
	}
	return nil
}
