package services

import (
	"errors"
	"fmt"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"

	validation "github.com/go-ozzo/ozzo-validation"
)

// --- Custom Service Errors ---
var ErrRoadmapItemNotFound = errors.New("roadmap item not found")

// --- Data Transfer Objects (DTOs) ---

// RoadmapItemRequest carries create/update fields for a timeline milestone.
type RoadmapItemRequest struct {
	Year  string `json:"year" binding:"required"`
	Month string `json:"month" binding:"required"`
	Event string `json:"event" binding:"required"`
}

// Validate applies the roadmap milestone field rules.
func (req *RoadmapItemRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Year, validation.Required, validation.Match(yearRegex)),
		validation.Field(&req.Month, validation.Required),
		validation.Field(&req.Event, validation.Required, validation.Length(1, 500)),
	)
}

// --- RoadmapService Interface ---
type RoadmapService interface {
	CreateRoadmapItem(req RoadmapItemRequest) (*models.RoadmapItem, error)
	GetRoadmapItems(yearDescending bool) ([]models.RoadmapItem, error)
	GetRoadmapItemByID(itemID int64) (*models.RoadmapItem, error)
	UpdateRoadmapItem(itemID int64, req RoadmapItemRequest) (*models.RoadmapItem, error)
	DeleteRoadmapItem(itemID int64) error
	GetYears() ([]string, error)
	GetStats() (*models.RoadmapStats, error)
}

// --- roadmapService Implementation ---
type roadmapService struct {
	roadmapRepo repositories.RoadmapRepository
}

// NewRoadmapService creates a new instance of RoadmapService.
func NewRoadmapService(roadmapRepo repositories.RoadmapRepository) RoadmapService {
	return &roadmapService{roadmapRepo: roadmapRepo}
}

func (s *roadmapService) CreateRoadmapItem(req RoadmapItemRequest) (*models.RoadmapItem, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !models.IsValidRoadmapMonth(req.Month) {
		return nil, fmt.Errorf("%w: unknown month %q", ErrValidation, req.Month)
	}

	item := models.RoadmapItem{
		Year:  req.Year,
		Month: req.Month,
		Event: req.Event,
	}
	if err := s.roadmapRepo.CreateRoadmapItem(&item); err != nil {
		return nil, fmt.Errorf("failed to create roadmap item: %w", err)
	}
	return &item, nil
}

func (s *roadmapService) GetRoadmapItems(yearDescending bool) ([]models.RoadmapItem, error) {
	items, err := s.roadmapRepo.GetRoadmapItems(yearDescending)
	if err != nil {
		return nil, fmt.Errorf("failed to get roadmap items: %w", err)
	}
	return items, nil
}

func (s *roadmapService) GetRoadmapItemByID(itemID int64) (*models.RoadmapItem, error) {
	item, err := s.roadmapRepo.GetRoadmapItemByID(itemID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRoadmapItemNotFound
		}
		return nil, fmt.Errorf("failed to get roadmap item: %w", err)
	}
	return item, nil
}

func (s *roadmapService) UpdateRoadmapItem(itemID int64, req RoadmapItemRequest) (*models.RoadmapItem, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !models.IsValidRoadmapMonth(req.Month) {
		return nil, fmt.Errorf("%w: unknown month %q", ErrValidation, req.Month)
	}

	item := models.RoadmapItem{
		ID:    itemID,
		Year:  req.Year,
		Month: req.Month,
		Event: req.Event,
	}
	if err := s.roadmapRepo.UpdateRoadmapItem(&item); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrRoadmapItemNotFound
		}
		return nil, fmt.Errorf("failed to update roadmap item: %w", err)
	}
	return &item, nil
}

func (s *roadmapService) DeleteRoadmapItem(itemID int64) error {
	if err := s.roadmapRepo.DeleteRoadmapItem(itemID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrRoadmapItemNotFound
		}
		return fmt.Errorf("failed to delete roadmap item: %w", err)
	}
	return nil
}

func (s *roadmapService) GetYears() ([]string, error) {
	years, err := s.roadmapRepo.GetYears()
	if err != nil {
		return nil, fmt.Errorf("failed to get roadmap years: %w", err)
	}
	return years, nil
}

func (s *roadmapService) GetStats() (*models.RoadmapStats, error) {
	stats, err := s.roadmapRepo.GetStats()
	if err != nil {
		return nil, fmt.Errorf("failed to get roadmap stats: %w", err)
	}
	return stats, nil
}
