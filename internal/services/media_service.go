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
var ErrMediaNotFound = errors.New("media article not found")

// --- Data Transfer Objects (DTOs) ---

// MediaRequest carries create/update fields for a press article. PublishedAt
// is optional; a missing value means "now".
type MediaRequest struct {
	Title       string  `json:"title" binding:"required"`
	Summary     string  `json:"summary" binding:"required"`
	Content     string  `json:"content" binding:"required"`
	Source      string  `json:"source" binding:"required"`
	SourceLink  *string `json:"source_link"`
	Category    string  `json:"category" binding:"required"`
	PublishedAt *string `json:"published_at"`
}

// Validate applies the media field rules.
func (req *MediaRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Summary, validation.Required),
		validation.Field(&req.Content, validation.Required),
		validation.Field(&req.Source, validation.Required),
		validation.Field(&req.SourceLink, is.URL),
		validation.Field(&req.Category, validation.Required, validation.In(
			models.MediaCategoryNews,
			models.MediaCategoryPrograms,
			models.MediaCategoryEvents,
			models.MediaCategoryPartnerships,
			models.MediaCategorySuccessStories,
			models.MediaCategoryImpact,
		)),
		validation.Field(&req.PublishedAt, validation.Date("2006-01-02")),
	)
}

// --- MediaService Interface ---
type MediaService interface {
	CreateMedia(req MediaRequest) (*models.Media, error)
	GetMedia(category *string, searchTerm *string, page, pageSize int) ([]models.Media, int, error)
	GetMediaByID(mediaID int64) (*models.Media, error)
	UpdateMedia(mediaID int64, req MediaRequest) (*models.Media, error)
	DeleteMedia(mediaID int64) error
	SetMediaImage(mediaID int64, upload FileUpload) (*models.Media, error)
}

// --- mediaService Implementation ---
type mediaService struct {
	db             *sql.DB
	mediaRepo      repositories.MediaRepository
	attachmentRepo repositories.AttachmentRepository
}

// NewMediaService creates a new instance of MediaService.
func NewMediaService(db *sql.DB, mediaRepo repositories.MediaRepository,
	attachmentRepo repositories.AttachmentRepository) MediaService {
	return &mediaService{db: db, mediaRepo: mediaRepo, attachmentRepo: attachmentRepo}
}

func (s *mediaService) buildMedia(req MediaRequest) (*models.Media, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	media := models.Media{
		Title:      req.Title,
		Summary:    req.Summary,
		Content:    req.Content,
		Source:     req.Source,
		SourceLink: req.SourceLink,
		Category:   req.Category,
	}
	if req.PublishedAt != nil && *req.PublishedAt != "" {
		publishedAt, err := time.Parse("2006-01-02", *req.PublishedAt)
		if err != nil {
			return nil, fmt.Errorf("%w: published_at must be in YYYY-MM-DD form", ErrValidation)
		}
		media.PublishedAt = publishedAt
	}
	return &media, nil
}

func (s *mediaService) CreateMedia(req MediaRequest) (*models.Media, error) {
	media, err := s.buildMedia(req)
	if err != nil {
		return nil, err
	}
	if err := s.mediaRepo.CreateMedia(media); err != nil {
		return nil, fmt.Errorf("failed to create media article: %w", err)
	}
	return media, nil
}

func (s *mediaService) GetMedia(category *string, searchTerm *string, page, pageSize int) ([]models.Media, int, error) {
	if category != nil && *category != "" && !models.IsValidMediaCategory(*category) {
		return nil, 0, fmt.Errorf("%w: unknown media category %q", ErrValidation, *category)
	}
	articles, totalCount, err := s.mediaRepo.GetMedia(category, searchTerm, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get media articles: %w", err)
	}
	return articles, totalCount, nil
}

func (s *mediaService) GetMediaByID(mediaID int64) (*models.Media, error) {
	media, err := s.mediaRepo.GetMediaByID(mediaID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to get media article: %w", err)
	}
	return media, nil
}

func (s *mediaService) UpdateMedia(mediaID int64, req MediaRequest) (*models.Media, error) {
	existing, err := s.GetMediaByID(mediaID)
	if err != nil {
		return nil, err
	}

	media, err := s.buildMedia(req)
	if err != nil {
		return nil, err
	}
	media.ID = mediaID
	media.ImageID = existing.ImageID
	if media.PublishedAt.IsZero() {
		media.PublishedAt = existing.PublishedAt
	}

	if err := s.mediaRepo.UpdateMedia(media); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to update media article: %w", err)
	}
	return media, nil
}

func (s *mediaService) DeleteMedia(mediaID int64) error {
	media, err := s.GetMediaByID(mediaID)
	if err != nil {
		return err
	}

	if err := s.mediaRepo.DeleteMedia(mediaID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrMediaNotFound
		}
		return fmt.Errorf("failed to delete media article: %w", err)
	}

	cleanupAttachment(s.db, s.attachmentRepo, media.ImageID)
	return nil
}

func (s *mediaService) SetMediaImage(mediaID int64, upload FileUpload) (*models.Media, error) {
	media, err := s.GetMediaByID(mediaID)
	if err != nil {
		return nil, err
	}

	attachment, err := swapAttachment(s.db, s.attachmentRepo, media.ImageID, upload,
		func(executor repositories.SQLExecutor, newID *string) error {
			return s.mediaRepo.SetMediaImage(executor, mediaID, newID)
		})
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrMediaNotFound
		}
		return nil, fmt.Errorf("failed to set media image: %w", err)
	}

	imageID := attachment.ID.String()
	media.ImageID = &imageID
	return media, nil
}
