package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"incubator_backend/internal/models"
)

// EventRecordRepository defines the interface for event registration
// database operations.
type EventRecordRepository interface {
	CreateEventRecord(record *models.EventRecord) error
	GetEventRecords(eventName *string, page, pageSize int) ([]models.EventRecord, int, error)
	GetEventRecordByID(recordID int64) (*models.EventRecord, error)
	UpdateEventRecord(record *models.EventRecord) error
	DeleteEventRecord(recordID int64) error
}

type eventRecordRepository struct {
	db *sql.DB
}

// NewEventRecordRepository creates a new instance of EventRecordRepository.
func NewEventRecordRepository(db *sql.DB) EventRecordRepository {
	return &eventRecordRepository{db: db}
}

const eventRecordColumns = `id, name, email, phone, event_name, amount_paid, date_of_registration, created_at, updated_at`

func scanEventRecord(row scanner, record *models.EventRecord, extra ...interface{}) error {
	dest := []interface{}{&record.ID, &record.Name, &record.Email, &record.Phone, &record.EventName,
		&record.AmountPaid, &record.DateOfRegistration, &record.CreatedAt, &record.UpdatedAt}
	dest = append(dest, extra...)
	return row.Scan(dest...)
}

func (r *eventRecordRepository) CreateEventRecord(record *models.EventRecord) error {
	query := `INSERT INTO event_records (name, email, phone, event_name, amount_paid, date_of_registration)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, record.Name, record.Email, record.Phone, record.EventName,
		record.AmountPaid, record.DateOfRegistration).
		Scan(&record.ID, &record.CreatedAt, &record.UpdatedAt)
	if err != nil {
		if IsUniqueViolation(err, "event_records_email_event_name_key") {
			return fmt.Errorf("%w: registration for %q by %q", ErrDuplicateKey, record.EventName, record.Email)
		}
		return fmt.Errorf("%w: creating event record: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *eventRecordRepository) GetEventRecords(eventName *string, page, pageSize int) ([]models.EventRecord, int, error) {
	records := []models.EventRecord{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + eventRecordColumns + `, COUNT(*) OVER() AS total_count FROM event_records`)

	var args []interface{}
	argCount := 1
	if eventName != nil && *eventName != "" {
		queryBuilder.WriteString(fmt.Sprintf(" WHERE event_name = $%d", argCount))
		args = append(args, *eventName)
		argCount++
	}
	queryBuilder.WriteString(" ORDER BY created_at DESC, id DESC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting event records: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var record models.EventRecord
		if err := scanEventRecord(rows, &record, &totalCount); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning event record: %v", ErrDatabaseError, err)
		}
		records = append(records, record)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating event records: %v", ErrDatabaseError, err)
	}
	return records, totalCount, nil
}

func (r *eventRecordRepository) GetEventRecordByID(recordID int64) (*models.EventRecord, error) {
	var record models.EventRecord
	query := `SELECT ` + eventRecordColumns + ` FROM event_records WHERE id = $1`
	err := scanEventRecord(r.db.QueryRow(query, recordID), &record)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting event record: %v", ErrDatabaseError, err)
	}
	return &record, nil
}

func (r *eventRecordRepository) UpdateEventRecord(record *models.EventRecord) error {
	query := `UPDATE event_records
	          SET name = $1, email = $2, phone = $3, event_name = $4, amount_paid = $5,
	              date_of_registration = $6, updated_at = $7
	          WHERE id = $8`
	result, err := r.db.Exec(query, record.Name, record.Email, record.Phone, record.EventName,
		record.AmountPaid, record.DateOfRegistration, time.Now(), record.ID)
	if err != nil {
		if IsUniqueViolation(err, "event_records_email_event_name_key") {
			return fmt.Errorf("%w: registration for %q by %q", ErrDuplicateKey, record.EventName, record.Email)
		}
		return fmt.Errorf("%w: updating event record: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking event record update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *eventRecordRepository) DeleteEventRecord(recordID int64) error {
	result, err := r.db.Exec(`DELETE FROM event_records WHERE id = $1`, recordID)
	if err != nil {
		return fmt.Errorf("%w: deleting event record: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking event record delete: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
