package services

import (
	"database/sql"
	"errors"
	"fmt"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"

	validation "github.com/go-ozzo/ozzo-validation"
)

// --- Custom Service Errors ---
var ErrStartupNotFound = errors.New("startup not found")

// --- Data Transfer Objects (DTOs) ---

// StartupRequest carries create/update fields for a startup profile.
type StartupRequest struct {
	Title        string   `json:"title" binding:"required"`
	Description  string   `json:"description" binding:"required"`
	Category     string   `json:"category" binding:"required"`
	Founded      string   `json:"founded" binding:"required"`
	Revenue      string   `json:"revenue" binding:"required"`
	Sector       string   `json:"sector" binding:"required"`
	Jobs         string   `json:"jobs" binding:"required"`
	Achievements []string `json:"achievements"`
}

// Validate applies the startup field rules.
func (req *StartupRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Description, validation.Required),
		validation.Field(&req.Category, validation.Required, validation.In(
			models.StartupCategoryOngoing,
			models.StartupCategoryGraduated,
		)),
		validation.Field(&req.Founded, validation.Required),
		validation.Field(&req.Revenue, validation.Required),
		validation.Field(&req.Sector, validation.Required),
		validation.Field(&req.Jobs, validation.Required),
	)
}

// --- StartupService Interface ---
type StartupService interface {
	CreateStartup(req StartupRequest) (*models.Startup, error)
	GetStartups(category *string, searchTerm *string, page, pageSize int) ([]models.Startup, int, error)
	GetStartupByID(startupID int64) (*models.Startup, error)
	UpdateStartup(startupID int64, req StartupRequest) (*models.Startup, error)
	DeleteStartup(startupID int64) error
	SetStartupImage(startupID int64, upload FileUpload) (*models.Startup, error)
}

// --- startupService Implementation ---
type startupService struct {
	db             *sql.DB
	startupRepo    repositories.StartupRepository
	attachmentRepo repositories.AttachmentRepository
}

// NewStartupService creates a new instance of StartupService.
func NewStartupService(db *sql.DB, startupRepo repositories.StartupRepository,
	attachmentRepo repositories.AttachmentRepository) StartupService {
	return &startupService{db: db, startupRepo: startupRepo, attachmentRepo: attachmentRepo}
}

func (s *startupService) CreateStartup(req StartupRequest) (*models.Startup, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	startup := models.Startup{
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Founded:      req.Founded,
		Revenue:      req.Revenue,
		Sector:       req.Sector,
		Jobs:         req.Jobs,
		Achievements: req.Achievements,
	}
	if startup.Achievements == nil {
		startup.Achievements = []string{}
	}

	if err := s.startupRepo.CreateStartup(&startup); err != nil {
		return nil, fmt.Errorf("failed to create startup: %w", err)
	}
	return &startup, nil
}

func (s *startupService) GetStartups(category *string, searchTerm *string, page, pageSize int) ([]models.Startup, int, error) {
	if category != nil && *category != "" && !models.IsValidStartupCategory(*category) {
		return nil, 0, fmt.Errorf("%w: unknown startup category %q", ErrValidation, *category)
	}
	startups, totalCount, err := s.startupRepo.GetStartups(category, searchTerm, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get startups: %w", err)
	}
	return startups, totalCount, nil
}

func (s *startupService) GetStartupByID(startupID int64) (*models.Startup, error) {
	startup, err := s.startupRepo.GetStartupByID(startupID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStartupNotFound
		}
		return nil, fmt.Errorf("failed to get startup: %w", err)
	}
	return startup, nil
}

func (s *startupService) UpdateStartup(startupID int64, req StartupRequest) (*models.Startup, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.GetStartupByID(startupID)
	if err != nil {
		return nil, err
	}

	startup := models.Startup{
		ID:           startupID,
		Title:        req.Title,
		Description:  req.Description,
		Category:     req.Category,
		Founded:      req.Founded,
		Revenue:      req.Revenue,
		Sector:       req.Sector,
		Jobs:         req.Jobs,
		Achievements: req.Achievements,
		ImageID:      existing.ImageID,
	}
	if startup.Achievements == nil {
		startup.Achievements = []string{}
	}

	if err := s.startupRepo.UpdateStartup(&startup); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStartupNotFound
		}
		return nil, fmt.Errorf("failed to update startup: %w", err)
	}
	return &startup, nil
}

func (s *startupService) DeleteStartup(startupID int64) error {
	startup, err := s.GetStartupByID(startupID)
	if err != nil {
		return err
	}

	if err := s.startupRepo.DeleteStartup(startupID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrStartupNotFound
		}
		return fmt.Errorf("failed to delete startup: %w", err)
	}

	cleanupAttachment(s.db, s.attachmentRepo, startup.ImageID)
	return nil
}

func (s *startupService) SetStartupImage(startupID int64, upload FileUpload) (*models.Startup, error) {
	startup, err := s.GetStartupByID(startupID)
	if err != nil {
		return nil, err
	}

	attachment, err := swapAttachment(s.db, s.attachmentRepo, startup.ImageID, upload,
		func(executor repositories.SQLExecutor, newID *string) error {
			return s.startupRepo.SetStartupImage(executor, startupID, newID)
		})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrStartupNotFound
		}
		return nil, fmt.Errorf("failed to set startup image: %w", err)
	}

	imageID := attachment.ID.String()
	startup.ImageID = &imageID
	return startup, nil
}
