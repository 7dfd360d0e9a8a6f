package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"incubator_backend/internal/models"
)

// InternshipRepository defines the interface for internship-related database
// operations.
type InternshipRepository interface {
	CreateInternship(internship *models.Internship) error
	GetInternships(status *string, searchTerm *string, page, pageSize int) ([]models.Internship, int, error)
	GetInternshipByID(internshipID int64) (*models.Internship, error)
	GetInternshipByInternNo(internNo string) (*models.Internship, error)
	UpdateInternship(internship *models.Internship) error
	DeleteInternship(internshipID int64) error
}

type internshipRepository struct {
	db *sql.DB
}

// NewInternshipRepository creates a new instance of InternshipRepository.
func NewInternshipRepository(db *sql.DB) InternshipRepository {
	return &internshipRepository{db: db}
}

const internshipColumns = `id, name, intern_no, date_of_birth, email, phone_number, father_name,
	mother_name, blood_group, permanent_address, communication_address, date_of_expiry,
	marital_status, date_of_joining, designation, status, created_at, updated_at`

func scanInternship(s scanner, extra ...interface{}) (*models.Internship, error) {
	var internship models.Internship
	optionals := []**string{
		&internship.DateOfBirth, &internship.Email, &internship.PhoneNumber,
		&internship.FatherName, &internship.MotherName, &internship.BloodGroup,
		&internship.PermanentAddress, &internship.CommunicationAddress, &internship.DateOfExpiry,
		&internship.MaritalStatus, &internship.DateOfJoining, &internship.Designation,
	}

	nullables := make([]sql.NullString, len(optionals))
	dest := []interface{}{&internship.ID, &internship.Name, &internship.InternNo}
	for i := range nullables {
		dest = append(dest, &nullables[i])
	}
	dest = append(dest, &internship.Status, &internship.CreatedAt, &internship.UpdatedAt)
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
	return &internship, nil
}

func (r *internshipRepository) CreateInternship(internship *models.Internship) error {
	query := `INSERT INTO internships (name, intern_no, date_of_birth, email, phone_number, father_name,
	            mother_name, blood_group, permanent_address, communication_address, date_of_expiry,
	            marital_status, date_of_joining, designation, status)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query,
		internship.Name, internship.InternNo, internship.DateOfBirth, internship.Email,
		internship.PhoneNumber, internship.FatherName, internship.MotherName, internship.BloodGroup,
		internship.PermanentAddress, internship.CommunicationAddress, internship.DateOfExpiry,
		internship.MaritalStatus, internship.DateOfJoining, internship.Designation, internship.Status,
	).Scan(&internship.ID, &internship.CreatedAt, &internship.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err, "internships_intern_no_key") {
			return fmt.Errorf("%w: intern number %q", ErrDuplicateKey, internship.InternNo)
		}
		return fmt.Errorf("%w: creating internship: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *internshipRepository) GetInternships(status *string, searchTerm *string, page, pageSize int) ([]models.Internship, int, error) {
	internships := []models.Internship{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + internshipColumns + `, COUNT(*) OVER() AS total_count FROM internships`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if status != nil && *status != "" {
		conditions = append(conditions, fmt.Sprintf("status = $%d", argCount))
		args = append(args, *status)
		argCount++
	}
	if searchTerm != nil && *searchTerm != "" {
		conditions = append(conditions, fmt.Sprintf("(name ILIKE $%d OR intern_no ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+*searchTerm+"%")
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting internships: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		internship, err := scanInternship(rows, &totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning internship: %v", ErrDatabaseError, err)
		}
		internships = append(internships, *internship)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating internships: %v", ErrDatabaseError, err)
	}

	return internships, totalCount, nil
}

func (r *internshipRepository) GetInternshipByID(internshipID int64) (*models.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships WHERE id = $1`
	internship, err := scanInternship(r.db.QueryRow(query, internshipID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting internship: %v", ErrDatabaseError, err)
	}
	return internship, nil
}

func (r *internshipRepository) GetInternshipByInternNo(internNo string) (*models.Internship, error) {
	query := `SELECT ` + internshipColumns + ` FROM internships WHERE intern_no = $1`
	internship, err := scanInternship(r.db.QueryRow(query, internNo))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting internship by intern number: %v", ErrDatabaseError, err)
	}
	return internship, nil
}

func (r *internshipRepository) UpdateInternship(internship *models.Internship) error {
	query := `UPDATE internships
	          SET name = $1, intern_no = $2, date_of_birth = $3, email = $4, phone_number = $5,
	              father_name = $6, mother_name = $7, blood_group = $8, permanent_address = $9,
	              communication_address = $10, date_of_expiry = $11, marital_status = $12,
	              date_of_joining = $13, designation = $14, status = $15, updated_at = $16
	          WHERE id = $17`
	result, err := r.db.Exec(query,
		internship.Name, internship.InternNo, internship.DateOfBirth, internship.Email,
		internship.PhoneNumber, internship.FatherName, internship.MotherName, internship.BloodGroup,
		internship.PermanentAddress, internship.CommunicationAddress, internship.DateOfExpiry,
		internship.MaritalStatus, internship.DateOfJoining, internship.Designation, internship.Status,
		time.Now(), internship.ID)
	if err != nil {
		if IsUniqueViolation(err, "internships_intern_no_key") {
			return fmt.Errorf("%w: intern number %q", ErrDuplicateKey, internship.InternNo)
		}
		return fmt.Errorf("%w: updating internship: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking internship update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *internshipRepository) DeleteInternship(internshipID int64) error {
	result, err := r.db.Exec(`DELETE FROM internships WHERE id = $1`, internshipID)
	if err != nil {
		return fmt.Errorf("%w: deleting internship: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking internship delete: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
