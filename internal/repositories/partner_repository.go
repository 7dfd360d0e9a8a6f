package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"incubator_backend/internal/models"

	"github.com/lib/pq"
)

// PartnerRepository defines the interface for partner-related database
// operations.
type PartnerRepository interface {
	CreatePartner(partner *models.Partner) error
	GetPartners(partnerType *string, activeOnly bool, page, pageSize int) ([]models.Partner, int, error)
	GetPartnerByID(partnerID int64) (*models.Partner, error)
	UpdatePartner(partner *models.Partner) error
	DeletePartner(partnerID int64) error
	SetPartnerImages(executor SQLExecutor, partnerID int64, logoID, photoID *string) error
}

type partnerRepository struct {
	db *sql.DB
}

// NewPartnerRepository creates a new instance of PartnerRepository.
func NewPartnerRepository(db *sql.DB) PartnerRepository {
	return &partnerRepository{db: db}
}

const partnerColumns = `id, name, partner_type, role, expertise, company_name, website, email,
	linkedin, details, logo_id, photo_id, display_order, is_active, created_at, updated_at`

func scanPartner(s scanner, extra ...interface{}) (*models.Partner, error) {
	var partner models.Partner
	optionals := []**string{
		&partner.Role, &partner.CompanyName, &partner.Website, &partner.Email,
		&partner.LinkedIn, &partner.Details, &partner.LogoID, &partner.PhotoID,
	}

	nullables := make([]sql.NullString, len(optionals))
	dest := []interface{}{&partner.ID, &partner.Name, &partner.Type,
		&nullables[0], pq.Array(&partner.Expertise), &nullables[1], &nullables[2], &nullables[3],
		&nullables[4], &nullables[5], &nullables[6], &nullables[7],
		&partner.DisplayOrder, &partner.IsActive, &partner.CreatedAt, &partner.UpdatedAt}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	for i, ns := range nullables {
		if ns.Valid {
			value := ns.String
			*optionals[i] = &value
		}
	}
	return &partner, nil
}

func (r *partnerRepository) CreatePartner(partner *models.Partner) error {
	query := `INSERT INTO partners (name, partner_type, role, expertise, company_name, website,
	            email, linkedin, details, display_order, is_active)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query,
		partner.Name, partner.Type, partner.Role, pq.Array(partner.Expertise),
		partner.CompanyName, partner.Website, partner.Email, partner.LinkedIn,
		partner.Details, partner.DisplayOrder, partner.IsActive,
	).Scan(&partner.ID, &partner.CreatedAt, &partner.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: creating partner: %v", ErrDatabaseError, err)
	}
	return nil
}

// GetPartners lists partners ordered the way the public site renders them,
// display_order first within each type.
func (r *partnerRepository) GetPartners(partnerType *string, activeOnly bool, page, pageSize int) ([]models.Partner, int, error) {
	partners := []models.Partner{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + partnerColumns + `, COUNT(*) OVER() AS total_count FROM partners`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if partnerType != nil && *partnerType != "" {
		conditions = append(conditions, fmt.Sprintf("partner_type = $%d", argCount))
		args = append(args, *partnerType)
		argCount++
	}
	if activeOnly {
		conditions = append(conditions, "is_active = TRUE")
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY partner_type, display_order, id")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting partners: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		partner, err := scanPartner(rows, &totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning partner: %v", ErrDatabaseError, err)
		}
		partners = append(partners, *partner)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating partners: %v", ErrDatabaseError, err)
	}

	return partners, totalCount, nil
}

func (r *partnerRepository) GetPartnerByID(partnerID int64) (*models.Partner, error) {
	query := `SELECT ` + partnerColumns + ` FROM partners WHERE id = $1`
	partner, err := scanPartner(r.db.QueryRow(query, partnerID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting partner: %v", ErrDatabaseError, err)
	}
	return partner, nil
}

func (r *partnerRepository) UpdatePartner(partner *models.Partner) error {
	query := `UPDATE partners
	          SET name = $1, partner_type = $2, role = $3, expertise = $4, company_name = $5,
	              website = $6, email = $7, linkedin = $8, details = $9, display_order = $10,
	              is_active = $11, updated_at = $12
	          WHERE id = $13`
	result, err := r.db.Exec(query,
		partner.Name, partner.Type, partner.Role, pq.Array(partner.Expertise),
		partner.CompanyName, partner.Website, partner.Email, partner.LinkedIn,
		partner.Details, partner.DisplayOrder, partner.IsActive, time.Now(), partner.ID)
	if err != nil {
		return fmt.Errorf("%w: updating partner: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking partner update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *partnerRepository) DeletePartner(partnerID int64) error {
	result, err := r.db.Exec(`DELETE FROM partners WHERE id = $1`, partnerID)
	if err != nil {
		return fmt.Errorf("%w: deleting partner: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking partner delete: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *partnerRepository) SetPartnerImages(executor SQLExecutor, partnerID int64, logoID, photoID *string) error {
	result, err := executor.Exec(`UPDATE partners SET logo_id = $1, photo_id = $2, updated_at = $3 WHERE id = $4`,
		logoID, photoID, time.Now(), partnerID)
	if err != nil {
		return fmt.Errorf("%w: updating partner images: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking partner image update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
