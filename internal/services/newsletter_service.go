package services

import (
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"

	validation "github.com/go-ozzo/ozzo-validation"
)

// --- Custom Service Errors ---
var ErrNewsletterNotFound = errors.New("newsletter not found")

var yearRegex = regexp.MustCompile(`^\d{4}$`)

// --- Data Transfer Objects (DTOs) ---

// NewsletterRequest carries create/update fields for a newsletter issue.
type NewsletterRequest struct {
	Title string `json:"title" binding:"required"`
	Year  string `json:"year" binding:"required"`
}

// Validate applies the newsletter field rules.
func (req *NewsletterRequest) Validate() error {
	return validation.ValidateStruct(
		req,
		validation.Field(&req.Title, validation.Required, validation.Length(1, 200)),
		validation.Field(&req.Year, validation.Required, validation.Match(yearRegex)),
	)
}

// --- NewsletterService Interface ---
type NewsletterService interface {
	CreateNewsletter(req NewsletterRequest) (*models.Newsletter, error)
	GetNewsletters(year *string, page, pageSize int) ([]models.Newsletter, int, error)
	GetNewsletterByID(newsletterID int64) (*models.Newsletter, error)
	UpdateNewsletter(newsletterID int64, req NewsletterRequest) (*models.Newsletter, error)
	DeleteNewsletter(newsletterID int64) error
	SetNewsletterFiles(newsletterID int64, coverImage, pdfFile *FileUpload) (*models.Newsletter, error)
}

// --- newsletterService Implementation ---
type newsletterService struct {
	db             *sql.DB
	newsletterRepo repositories.NewsletterRepository
	attachmentRepo repositories.AttachmentRepository
}

// NewNewsletterService creates a new instance of NewsletterService.
func NewNewsletterService(db *sql.DB, newsletterRepo repositories.NewsletterRepository,
	attachmentRepo repositories.AttachmentRepository) NewsletterService {
	return &newsletterService{db: db, newsletterRepo: newsletterRepo, attachmentRepo: attachmentRepo}
}

func (s *newsletterService) CreateNewsletter(req NewsletterRequest) (*models.Newsletter, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	newsletter := models.Newsletter{Title: req.Title, Year: req.Year}
	if err := s.newsletterRepo.CreateNewsletter(&newsletter); err != nil {
		return nil, fmt.Errorf("failed to create newsletter: %w", err)
	}
	return &newsletter, nil
}

func (s *newsletterService) GetNewsletters(year *string, page, pageSize int) ([]models.Newsletter, int, error) {
	newsletters, totalCount, err := s.newsletterRepo.GetNewsletters(year, page, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to get newsletters: %w", err)
	}
	return newsletters, totalCount, nil
}

func (s *newsletterService) GetNewsletterByID(newsletterID int64) (*models.Newsletter, error) {
	newsletter, err := s.newsletterRepo.GetNewsletterByID(newsletterID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNewsletterNotFound
		}
		return nil, fmt.Errorf("failed to get newsletter: %w", err)
	}
	return newsletter, nil
}

func (s *newsletterService) UpdateNewsletter(newsletterID int64, req NewsletterRequest) (*models.Newsletter, error) {
	if err := req.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrValidation, err)
	}

	existing, err := s.GetNewsletterByID(newsletterID)
	if err != nil {
		return nil, err
	}

	newsletter := models.Newsletter{
		ID:           newsletterID,
		Title:        req.Title,
		Year:         req.Year,
		CoverImageID: existing.CoverImageID,
		PdfFileID:    existing.PdfFileID,
	}
	if err := s.newsletterRepo.UpdateNewsletter(&newsletter); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNewsletterNotFound
		}
		return nil, fmt.Errorf("failed to update newsletter: %w", err)
	}
	return &newsletter, nil
}

func (s *newsletterService) DeleteNewsletter(newsletterID int64) error {
	newsletter, err := s.GetNewsletterByID(newsletterID)
	if err != nil {
		return err
	}

	if err := s.newsletterRepo.DeleteNewsletter(newsletterID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrNewsletterNotFound
		}
		return fmt.Errorf("failed to delete newsletter: %w", err)
	}

	cleanupAttachment(s.db, s.attachmentRepo, newsletter.CoverImageID)
	cleanupAttachment(s.db, s.attachmentRepo, newsletter.PdfFileID)
	return nil
}

// SetNewsletterFiles replaces the cover image and/or the PDF in a single
// transaction. A nil upload leaves that slot untouched.
func (s *newsletterService) SetNewsletterFiles(newsletterID int64, coverImage, pdfFile *FileUpload) (*models.Newsletter, error) {
	newsletter, err := s.GetNewsletterByID(newsletterID)
	if err != nil {
		return nil, err
	}
	if coverImage == nil && pdfFile == nil {
		return nil, fmt.Errorf("%w: no files provided", ErrValidation)
	}

	tx, err := s.db.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: beginning transaction: %v", repositories.ErrDatabaseError, err)
	}
	defer tx.Rollback()

	coverImageID := newsletter.CoverImageID
	pdfFileID := newsletter.PdfFileID
	var replaced []*string

	if coverImage != nil {
		attachment, err := s.attachmentRepo.Create(tx, coverImage.Data, coverImage.ContentType, coverImage.FileName)
		if err != nil {
			return nil, fmt.Errorf("failed to store newsletter cover: %w", err)
		}
		replaced = append(replaced, coverImageID)
		id := attachment.ID.String()
		coverImageID = &id
	}
	if pdfFile != nil {
		attachment, err := s.attachmentRepo.Create(tx, pdfFile.Data, pdfFile.ContentType, pdfFile.FileName)
		if err != nil {
			return nil, fmt.Errorf("failed to store newsletter pdf: %w", err)
		}
		replaced = append(replaced, pdfFileID)
		id := attachment.ID.String()
		pdfFileID = &id
	}

	if err = s.newsletterRepo.SetNewsletterFiles(tx, newsletterID, coverImageID, pdfFileID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrNewsletterNotFound
		}
		return nil, fmt.Errorf("failed to set newsletter files: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: committing newsletter files: %v", repositories.ErrDatabaseError, err)
	}

	for _, old := range replaced {
		cleanupAttachment(s.db, s.attachmentRepo, old)
	}

	newsletter.CoverImageID = coverImageID
	newsletter.PdfFileID = pdfFileID
	return newsletter, nil
}
