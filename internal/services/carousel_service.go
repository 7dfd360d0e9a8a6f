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
var ErrCarouselImageNotFound = errors.New("carousel image not found")

// --- Data Transfer Objects (DTOs) ---

// CarouselImageRequest carries create/update fields for a carousel slide.
type CarouselImageRequest struct {
	Title       string  `json:"title" binding:"required"`
	Description *string `json:"description"`
	AltText     *string `json:"alt_text"`
}

// Validate applies the carousel slide field rules.
func (req *CarouselImageRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
	)
}

// --- CarouselService Interface ---
type CarouselService interface {
	CreateCarouselImage(req CarouselImageRequest) (*models.CarouselImage, error)
	GetCarouselImages(activeOnly bool) ([]models.CarouselImage, error)
	GetCarouselImageByID(imageID int64) (*models.CarouselImage, error)
	UpdateCarouselImage(imageID int64, req CarouselImageRequest) (*models.CarouselImage, error)
	DeleteCarouselImage(imageID int64) error
	SetCarouselImageFile(imageID int64, upload FileUpload) (*models.CarouselImage, error)
	SetCarouselImageActive(imageID int64, active bool) (*models.CarouselImage, error)
	ReorderCarouselImages(imageIDs []int64) error
}

// --- carouselService Implementation ---
type carouselService struct {
	db             *sql.DB
	carouselRepo   repositories.CarouselRepository
	attachmentRepo repositories.AttachmentRepository
}

// NewCarouselService creates a new instance of CarouselService.
func NewCarouselService(db *sql.DB, carouselRepo repositories.CarouselRepository,
	attachmentRepo repositories.AttachmentRepository) CarouselService {
	return &carouselService{db: db, carouselRepo: carouselRepo, attachmentRepo: attachmentRepo}
}

func (s *carouselService) CreateCarouselImage(req CarouselImageRequest) (*models.CarouselImage, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	image := models.CarouselImage{
		Title:       req.Title,
		Description: req.Description,
		AltText:     req.AltText,
	}
	if err := s.carouselRepo.CreateCarouselImage(&image); err != nil {
		return nil, fmt.Errorf("failed to create carousel image: %w", err)
	}
	return &image, nil
}

func (s *carouselService) GetCarouselImages(activeOnly bool) ([]models.CarouselImage, error) {
	images, err := s.carouselRepo.GetCarouselImages(activeOnly)
	if err != nil {
		return nil, fmt.Errorf("failed to get carousel images: %w", err)
	}
	return images, nil
}

func (s *carouselService) GetCarouselImageByID(imageID int64) (*models.CarouselImage, error) {
	image, err := s.carouselRepo.GetCarouselImageByID(imageID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCarouselImageNotFound
		}
		return nil, fmt.Errorf("failed to get carousel image: %w", err)
	}
	return image, nil
}

func (s *carouselService) UpdateCarouselImage(imageID int64, req CarouselImageRequest) (*models.CarouselImage, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.GetCarouselImageByID(imageID)
	if err != nil {
		return nil, err
	}

	image := models.CarouselImage{
		ID:           imageID,
		Title:        req.Title,
		Description:  req.Description,
		AltText:      req.AltText,
		ImageID:      existing.ImageID,
		DisplayOrder: existing.DisplayOrder,
		IsActive:     existing.IsActive,
	}
	if err := s.carouselRepo.UpdateCarouselImage(&image); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCarouselImageNotFound
		}
		return nil, fmt.Errorf("failed to update carousel image: %w", err)
	}
	return &image, nil
}

func (s *carouselService) DeleteCarouselImage(imageID int64) error {
	image, err := s.GetCarouselImageByID(imageID)
	if err != nil {
		return err
	}

	if err := s.carouselRepo.DeleteCarouselImage(imageID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCarouselImageNotFound
		}
		return fmt.Errorf("failed to delete carousel image: %w", err)
	}

	cleanupAttachment(s.db, s.attachmentRepo, image.ImageID)
	return nil
}

func (s *carouselService) SetCarouselImageFile(imageID int64, upload FileUpload) (*models.CarouselImage, error) {
	image, err := s.GetCarouselImageByID(imageID)
	if err != nil {
		return nil, err
	}

	attachment, err := swapAttachment(s.db, s.attachmentRepo, image.ImageID, upload,
		func(executor repositories.SQLExecutor, newID *string) error {
			return s.carouselRepo.SetCarouselImageFile(executor, imageID, newID)
		})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCarouselImageNotFound
		}
		return nil, fmt.Errorf("failed to set carousel image file: %w", err)
	}

	fileID := attachment.ID.String()
	image.ImageID = &fileID
	return image, nil
}

func (s *carouselService) SetCarouselImageActive(imageID int64, active bool) (*models.CarouselImage, error) {
	if err := s.carouselRepo.SetCarouselImageActive(imageID, active); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrCarouselImageNotFound
		}
		return nil, fmt.Errorf("failed to update carousel image status: %w", err)
	}
	return s.GetCarouselImageByID(imageID)
}

// ReorderCarouselImages assigns display positions by the order of imageIDs.
func (s *carouselService) ReorderCarouselImages(imageIDs []int64) error {
	if len(imageIDs) == 0 {
		return fmt.Errorf("%w: no image ids provided", ErrValidation)
	}

	orders := make(map[int64]int, len(imageIDs))
	for position, id := range imageIDs {
		if _, seen := orders[id]; seen {
			return fmt.Errorf("%w: duplicate image id %d", ErrValidation, id)
		}
		orders[id] = position
	}

	if err := s.carouselRepo.ReorderCarouselImages(orders); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrCarouselImageNotFound
		}
		return fmt.Errorf("failed to reorder carousel images: %w", err)
	}
	return nil
}
