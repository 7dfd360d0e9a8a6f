package repositories

import (
	"database/sql"
	"errors"
	"fmt"

	"incubator_backend/internal/models"

	"github.com/google/uuid"
)

// AttachmentRepository is the uuid-keyed binary store backing images and
// PDFs. Resource tables keep a nullable reference into it.
type AttachmentRepository interface {
	Create(executor SQLExecutor, data []byte, contentType string, fileName *string) (*models.Attachment, error)
	GetByID(id uuid.UUID) (*models.Attachment, error)
	Delete(executor SQLExecutor, id uuid.UUID) error
}

type attachmentRepository struct {
	db *sql.DB
}

// NewAttachmentRepository creates a new instance of AttachmentRepository.
func NewAttachmentRepository(db *sql.DB) AttachmentRepository {
	return &attachmentRepository{db: db}
}

func (r *attachmentRepository) Create(executor SQLExecutor, data []byte, contentType string, fileName *string) (*models.Attachment, error) {
	attachment := models.Attachment{
		ID:          uuid.New(),
		Data:        data,
		ContentType: contentType,
		FileName:    fileName,
	}

	query := `INSERT INTO attachments (id, data, content_type, file_name)
	          VALUES ($1, $2, $3, $4)
	          RETURNING created_at`
	err := executor.QueryRow(query, attachment.ID, attachment.Data, attachment.ContentType, attachment.FileName).
		Scan(&attachment.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("%w: creating attachment: %v", ErrDatabaseError, err)
	}
	return &attachment, nil
}

func (r *attachmentRepository) GetByID(id uuid.UUID) (*models.Attachment, error) {
	var attachment models.Attachment
	var fileName sql.NullString

	query := `SELECT id, data, content_type, file_name, created_at FROM attachments WHERE id = $1`
	err := r.db.QueryRow(query, id).
		Scan(&attachment.ID, &attachment.Data, &attachment.ContentType, &fileName, &attachment.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting attachment: %v", ErrDatabaseError, err)
	}

	if fileName.Valid {
		attachment.FileName = &fileName.String
	}
	return &attachment, nil
}

func (r *attachmentRepository) Delete(executor SQLExecutor, id uuid.UUID) error {
	result, err := executor.Exec(`DELETE FROM attachments WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("%w: deleting attachment: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking deleted attachment: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
