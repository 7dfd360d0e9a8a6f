package services

import (
	"database/sql"
	"errors"
	"fmt"

	"incubator_backend/internal/models"
	"incubator_backend/internal/repositories"
	"incubator_backend/pkg/utils"

	"github.com/google/uuid"
)

// --- Custom Service Errors ---
var (
	ErrAttachmentNotFound  = errors.New("attachment not found")
	ErrInvalidAttachmentID = errors.New("invalid attachment id")
)

// FileUpload carries the bytes of one uploaded file.
type FileUpload struct {
	Data        []byte
	ContentType string
	FileName    *string
}

// --- AttachmentService Interface ---

// AttachmentService reads and writes the uuid-keyed binary store. Resource
// services use swapAttachment to keep row references and blobs in step; this
// service covers direct access by id.
type AttachmentService interface {
	GetAttachment(id string) (*models.Attachment, error)
	StoreAttachment(upload FileUpload) (*models.Attachment, error)
	DeleteAttachment(id string) error
}

// --- attachmentService Implementation ---
type attachmentService struct {
	db             *sql.DB
	attachmentRepo repositories.AttachmentRepository
}

// NewAttachmentService creates a new instance of AttachmentService.
func NewAttachmentService(db *sql.DB, attachmentRepo repositories.AttachmentRepository) AttachmentService {
	return &attachmentService{db: db, attachmentRepo: attachmentRepo}
}

func (s *attachmentService) GetAttachment(id string) (*models.Attachment, error) {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAttachmentID, id)
	}
	attachment, err := s.attachmentRepo.GetByID(parsed)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, ErrAttachmentNotFound
		}
		return nil, fmt.Errorf("failed to get attachment: %w", err)
	}
	return attachment, nil
}

func (s *attachmentService) StoreAttachment(upload FileUpload) (*models.Attachment, error) {
	attachment, err := s.attachmentRepo.Create(s.db, upload.Data, upload.ContentType, upload.FileName)
	if err != nil {
		return nil, fmt.Errorf("failed to store attachment: %w", err)
	}
	return attachment, nil
}

func (s *attachmentService) DeleteAttachment(id string) error {
	parsed, err := uuid.Parse(id)
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidAttachmentID, id)
	}
	if err := s.attachmentRepo.Delete(s.db, parsed); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrAttachmentNotFound
		}
		return fmt.Errorf("failed to delete attachment: %w", err)
	}
	return nil
}

// swapAttachment stores the uploaded file, points the resource row at it via
// apply, and removes the previously referenced attachment, all in one
// transaction. Either everything lands or nothing does.
func swapAttachment(db *sql.DB, attachments repositories.AttachmentRepository, oldID *string,
	upload FileUpload, apply func(executor repositories.SQLExecutor, newID *string) error) (*models.Attachment, error) {

	tx, err := db.Begin()
	if err != nil {
		return nil, fmt.Errorf("%w: beginning transaction: %v", repositories.ErrDatabaseError, err)
	}
	defer tx.Rollback()

	attachment, err := attachments.Create(tx, upload.Data, upload.ContentType, upload.FileName)
	if err != nil {
		return nil, err
	}

	newID := attachment.ID.String()
	if err = apply(tx, &newID); err != nil {
		return nil, err
	}

	if oldID != nil {
		if parsed, parseErr := uuid.Parse(*oldID); parseErr == nil {
			if err = attachments.Delete(tx, parsed); err != nil && !errors.Is(err, repositories.ErrNotFound) {
				return nil, err
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return nil, fmt.Errorf("%w: committing attachment swap: %v", repositories.ErrDatabaseError, err)
	}
	return attachment, nil
}

// cleanupAttachment deletes a blob whose owning row is already gone. The row
// delete has committed at this point, so failures are logged rather than
// returned; the worst case is an orphaned blob.
func cleanupAttachment(db *sql.DB, attachments repositories.AttachmentRepository, id *string) {
	if id == nil {
		return
	}
	parsed, err := uuid.Parse(*id)
	if err != nil {
		return
	}
	if err = attachments.Delete(db, parsed); err != nil && !errors.Is(err, repositories.ErrNotFound) {
		utils.LogError(err, "failed to remove orphaned attachment "+*id)
	}
}
