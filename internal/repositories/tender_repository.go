package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"incubator_backend/internal/models"
)

// TenderRepository defines the interface for tender-related database
// operations.
type TenderRepository interface {
	CreateTender(tender *models.Tender) error
	GetTenders(page, pageSize int) ([]models.Tender, int, error)
	GetTenderByID(tenderID int64) (*models.Tender, error)
	UpdateTender(tender *models.Tender) error
	DeleteTender(tenderID int64) error
}

type tenderRepository struct {
	db *sql.DB
}

// NewTenderRepository creates a new instance of TenderRepository.
func NewTenderRepository(db *sql.DB) TenderRepository {
	return &tenderRepository{db: db}
}

const tenderColumns = "id, title, tender_date, organization, reference, last_date, last_time, file_link, file_name, created_at, updated_at"

func scanTender(s scanner, extra ...interface{}) (*models.Tender, error) {
	var tender models.Tender
	var tenderDate, organization, reference, lastDate, lastTime, fileLink, fileName sql.NullString

	dest := []interface{}{&tender.ID, &tender.Title, &tenderDate, &organization, &reference,
		&lastDate, &lastTime, &fileLink, &fileName, &tender.CreatedAt, &tender.UpdatedAt}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}

	assign := func(target **string, ns sql.NullString) {
		if ns.Valid {
			value := ns.String
			*target = &value
		}
	}
	assign(&tender.Date, tenderDate)
	assign(&tender.Organization, organization)
	assign(&tender.Reference, reference)
	assign(&tender.LastDate, lastDate)
	assign(&tender.LastTime, lastTime)
	assign(&tender.FileLink, fileLink)
	assign(&tender.FileName, fileName)
	return &tender, nil
}

func (r *tenderRepository) CreateTender(tender *models.Tender) error {
	query := `INSERT INTO tenders (title, tender_date, organization, reference, last_date, last_time, file_link, file_name)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query,
		tender.Title, tender.Date, tender.Organization, tender.Reference,
		tender.LastDate, tender.LastTime, tender.FileLink, tender.FileName,
	).Scan(&tender.ID, &tender.CreatedAt, &tender.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: creating tender: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *tenderRepository) GetTenders(page, pageSize int) ([]models.Tender, int, error) {
	tenders := []models.Tender{}
	totalCount := 0

	query := `SELECT ` + tenderColumns + `, COUNT(*) OVER() AS total_count
	          FROM tenders
	          ORDER BY created_at DESC, id DESC
	          LIMIT $1 OFFSET $2`
	rows, err := r.db.Query(query, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting tenders: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		tender, err := scanTender(rows, &totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning tender: %v", ErrDatabaseError, err)
		}
		tenders = append(tenders, *tender)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating tenders: %v", ErrDatabaseError, err)
	}

	return tenders, totalCount, nil
}

func (r *tenderRepository) GetTenderByID(tenderID int64) (*models.Tender, error) {
	query := `SELECT ` + tenderColumns + ` FROM tenders WHERE id = $1`
	tender, err := scanTender(r.db.QueryRow(query, tenderID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting tender: %v", ErrDatabaseError, err)
	}
	return tender, nil
}

func (r *tenderRepository) UpdateTender(tender *models.Tender) error {
	query := `UPDATE tenders
	          SET title = $1, tender_date = $2, organization = $3, reference = $4,
	              last_date = $5, last_time = $6, file_link = $7, file_name = $8, updated_at = $9
	          WHERE id = $10`
	result, err := r.db.Exec(query,
		tender.Title, tender.Date, tender.Organization, tender.Reference,
		tender.LastDate, tender.LastTime, tender.FileLink, tender.FileName, time.Now(), tender.ID)
	if err != nil {
		return fmt.Errorf("%w: updating tender: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking tender update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *tenderRepository) DeleteTender(tenderID int64) error {
	result, err := r.db.Exec(`DELETE FROM tenders WHERE id = $1`, tenderID)
	if err != nil {
		return fmt.Errorf("%w: deleting tender: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking tender delete: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
