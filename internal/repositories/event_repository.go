package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"incubator_backend/internal/models"
)

// EventRepository defines the interface for event-related database
// operations.
type EventRepository interface {
	CreateEvent(event *models.Event) error
	GetEvents(searchTerm *string, upcomingOnly bool, page, pageSize int) ([]models.Event, int, error)
	GetEventByID(eventID int64) (*models.Event, error)
	UpdateEvent(event *models.Event) error
	DeleteEvent(eventID int64) error
	SetEventPoster(executor SQLExecutor, eventID int64, posterID *string) error
}

type eventRepository struct {
	db *sql.DB
}

// NewEventRepository creates a new instance of EventRepository.
func NewEventRepository(db *sql.DB) EventRepository {
	return &eventRepository{db: db}
}

const eventColumns = "id, title, event_date, event_time, location, description, registration_link, poster_id, created_at, updated_at"

func scanEvent(s scanner, extra ...interface{}) (*models.Event, error) {
	var event models.Event
	var description, registrationLink, posterID sql.NullString

	dest := []interface{}{&event.ID, &event.Title, &event.Date, &event.Time, &event.Location,
		&description, &registrationLink, &posterID, &event.CreatedAt, &event.UpdatedAt}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	if description.Valid {
		event.Description = &description.String
	}
	if registrationLink.Valid {
		event.RegistrationLink = &registrationLink.String
	}
	if posterID.Valid {
		event.PosterID = &posterID.String
	}
	return &event, nil
}

func (r *eventRepository) CreateEvent(event *models.Event) error {
	query := `INSERT INTO events (title, event_date, event_time, location, description, registration_link)
	          VALUES ($1, $2, $3, $4, $5, $6)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query,
		event.Title, event.Date, event.Time, event.Location, event.Description, event.RegistrationLink,
	).Scan(&event.ID, &event.CreatedAt, &event.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: creating event: %v", ErrDatabaseError, err)
	}
	return nil
}

// GetEvents lists events, newest date first. searchTerm matches title,
// location and description.
func (r *eventRepository) GetEvents(searchTerm *string, upcomingOnly bool, page, pageSize int) ([]models.Event, int, error) {
	events := []models.Event{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + eventColumns + `, COUNT(*) OVER() AS total_count FROM events`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if searchTerm != nil && *searchTerm != "" {
		conditions = append(conditions, fmt.Sprintf(
			"(title ILIKE $%d OR location ILIKE $%d OR description ILIKE $%d)", argCount, argCount, argCount))
		args = append(args, "%"+*searchTerm+"%")
		argCount++
	}
	if upcomingOnly {
		conditions = append(conditions, fmt.Sprintf("event_date >= $%d", argCount))
		args = append(args, time.Now())
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY event_date DESC, id DESC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting events: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		event, err := scanEvent(rows, &totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning event: %v", ErrDatabaseError, err)
		}
		events = append(events, *event)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating events: %v", ErrDatabaseError, err)
	}

	return events, totalCount, nil
}

func (r *eventRepository) GetEventByID(eventID int64) (*models.Event, error) {
	query := `SELECT ` + eventColumns + ` FROM events WHERE id = $1`
	event, err := scanEvent(r.db.QueryRow(query, eventID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting event: %v", ErrDatabaseError, err)
	}
	return event, nil
}

func (r *eventRepository) UpdateEvent(event *models.Event) error {
	query := `UPDATE events
	          SET title = $1, event_date = $2, event_time = $3, location = $4,
	              description = $5, registration_link = $6, updated_at = $7
	          WHERE id = $8`
	result, err := r.db.Exec(query,
		event.Title, event.Date, event.Time, event.Location,
		event.Description, event.RegistrationLink, time.Now(), event.ID)
	if err != nil {
		return fmt.Errorf("%w: updating event: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking event update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *eventRepository) DeleteEvent(eventID int64) error {
	result, err := r.db.Exec(`DELETE FROM events WHERE id = $1`, eventID)
	if err != nil {
		return fmt.Errorf("%w: deleting event: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking event delete: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *eventRepository) SetEventPoster(executor SQLExecutor, eventID int64, posterID *string) error {
	result, err := executor.Exec(`UPDATE events SET poster_id = $1, updated_at = $2 WHERE id = $3`,
		posterID, time.Now(), eventID)
	if err != nil {
		return fmt.Errorf("%w: updating event poster: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking event poster update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
