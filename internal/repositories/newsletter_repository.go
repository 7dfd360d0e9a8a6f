package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"incubator_backend/internal/models"
)

// NewsletterRepository defines the interface for newsletter database
// operations.
type NewsletterRepository interface {
	CreateNewsletter(newsletter *models.Newsletter) error
	GetNewsletters(year *string, page, pageSize int) ([]models.Newsletter, int, error)
	GetNewsletterByID(newsletterID int64) (*models.Newsletter, error)
	UpdateNewsletter(newsletter *models.Newsletter) error
	DeleteNewsletter(newsletterID int64) error
	SetNewsletterFiles(executor SQLExecutor, newsletterID int64, coverImageID, pdfFileID *string) error
}

type newsletterRepository struct {
	db *sql.DB
}

// NewNewsletterRepository creates a new instance of NewsletterRepository.
func NewNewsletterRepository(db *sql.DB) NewsletterRepository {
	return &newsletterRepository{db: db}
}

const newsletterColumns = "id, title, year, cover_image_id, pdf_file_id, created_at, updated_at"

func scanNewsletter(s scanner, extra ...interface{}) (*models.Newsletter, error) {
	var newsletter models.Newsletter
	var coverImageID, pdfFileID sql.NullString

	dest := []interface{}{&newsletter.ID, &newsletter.Title, &newsletter.Year,
		&coverImageID, &pdfFileID, &newsletter.CreatedAt, &newsletter.UpdatedAt}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	if coverImageID.Valid {
		newsletter.CoverImageID = &coverImageID.String
	}
	if pdfFileID.Valid {
		newsletter.PdfFileID = &pdfFileID.String
	}
	return &newsletter, nil
}

func (r *newsletterRepository) CreateNewsletter(newsletter *models.Newsletter) error {
	query := `INSERT INTO newsletters (title, year)
	          VALUES ($1, $2)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, newsletter.Title, newsletter.Year).
		Scan(&newsletter.ID, &newsletter.CreatedAt, &newsletter.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: creating newsletter: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *newsletterRepository) GetNewsletters(year *string, page, pageSize int) ([]models.Newsletter, int, error) {
	newsletters := []models.Newsletter{}
	totalCount := 0

	query := `SELECT ` + newsletterColumns + `, COUNT(*) OVER() AS total_count
	          FROM newsletters`
	var args []interface{}
	if year != nil && *year != "" {
		query += ` WHERE year = $1 ORDER BY created_at DESC, id DESC LIMIT $2 OFFSET $3`
		args = []interface{}{*year, pageSize, (page - 1) * pageSize}
	} else {
		query += ` ORDER BY year DESC, created_at DESC, id DESC LIMIT $1 OFFSET $2`
		args = []interface{}{pageSize, (page - 1) * pageSize}
	}

	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting newsletters: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		newsletter, err := scanNewsletter(rows, &totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning newsletter: %v", ErrDatabaseError, err)
		}
		newsletters = append(newsletters, *newsletter)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating newsletters: %v", ErrDatabaseError, err)
	}

	return newsletters, totalCount, nil
}

func (r *newsletterRepository) GetNewsletterByID(newsletterID int64) (*models.Newsletter, error) {
	query := `SELECT ` + newsletterColumns + ` FROM newsletters WHERE id = $1`
	newsletter, err := scanNewsletter(r.db.QueryRow(query, newsletterID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting newsletter: %v", ErrDatabaseError, err)
	}
	return newsletter, nil
}

func (r *newsletterRepository) UpdateNewsletter(newsletter *models.Newsletter) error {
	query := `UPDATE newsletters SET title = $1, year = $2, updated_at = $3 WHERE id = $4`
	result, err := r.db.Exec(query, newsletter.Title, newsletter.Year, time.Now(), newsletter.ID)
	if err != nil {
		return fmt.Errorf("%w: updating newsletter: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking newsletter update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *newsletterRepository) DeleteNewsletter(newsletterID int64) error {
	result, err := r.db.Exec(`DELETE FROM newsletters WHERE id = $1`, newsletterID)
	if err != nil {
		return fmt.Errorf("%w: deleting newsletter: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking newsletter delete: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *newsletterRepository) SetNewsletterFiles(executor SQLExecutor, newsletterID int64, coverImageID, pdfFileID *string) error {
	result, err := executor.Exec(`UPDATE newsletters SET cover_image_id = $1, pdf_file_id = $2, updated_at = $3 WHERE id = $4`,
		coverImageID, pdfFileID, time.Now(), newsletterID)
	if err != nil {
		return fmt.Errorf("%w: updating newsletter files: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking newsletter file update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
