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

// StartupRepository defines the interface for startup-related database
// operations.
type StartupRepository interface {
	CreateStartup(startup *models.Startup) error
	GetStartups(category *string, searchTerm *string, page, pageSize int) ([]models.Startup, int, error)
	GetStartupByID(startupID int64) (*models.Startup, error)
	UpdateStartup(startup *models.Startup) error
	DeleteStartup(startupID int64) error
	SetStartupImage(executor SQLExecutor, startupID int64, imageID *string) error
}

type startupRepository struct {
	db *sql.DB
}

// NewStartupRepository creates a new instance of StartupRepository.
func NewStartupRepository(db *sql.DB) StartupRepository {
	return &startupRepository{db: db}
}

func (r *startupRepository) CreateStartup(startup *models.Startup) error {
	query := `INSERT INTO startups (title, description, category, founded, revenue, sector, jobs, achievements)
	          VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query,
		startup.Title, startup.Description, startup.Category, startup.Founded,
		startup.Revenue, startup.Sector, startup.Jobs, pq.Array(startup.Achievements),
	).Scan(&startup.ID, &startup.CreatedAt, &startup.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: creating startup: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *startupRepository) GetStartups(category *string, searchTerm *string, page, pageSize int) ([]models.Startup, int, error) {
	startups := []models.Startup{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT id, title, description, category, founded, revenue, sector, jobs,
	    achievements, image_id, created_at, updated_at,
	    COUNT(*) OVER() AS total_count
	  FROM startups`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if category != nil && *category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *category)
		argCount++
	}
	if searchTerm != nil && *searchTerm != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR description ILIKE $%d OR sector ILIKE $%d)",
			argCount, argCount, argCount))
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
		return nil, 0, fmt.Errorf("%w: getting startups: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var startup models.Startup
		var imageID sql.NullString
		if err := rows.Scan(&startup.ID, &startup.Title, &startup.Description, &startup.Category,
			&startup.Founded, &startup.Revenue, &startup.Sector, &startup.Jobs,
			pq.Array(&startup.Achievements), &imageID, &startup.CreatedAt, &startup.UpdatedAt,
			&totalCount); err != nil {
			return nil, 0, fmt.Errorf("%w: scanning startup: %v", ErrDatabaseError, err)
		}
		if imageID.Valid {
			startup.ImageID = &imageID.String
		}
		startups = append(startups, startup)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating startups: %v", ErrDatabaseError, err)
	}

	return startups, totalCount, nil
}

func (r *startupRepository) GetStartupByID(startupID int64) (*models.Startup, error) {
	var startup models.Startup
	var imageID sql.NullString

	query := `SELECT id, title, description, category, founded, revenue, sector, jobs,
	            achievements, image_id, created_at, updated_at
	          FROM startups WHERE id = $1`
	err := r.db.QueryRow(query, startupID).Scan(&startup.ID, &startup.Title, &startup.Description,
		&startup.Category, &startup.Founded, &startup.Revenue, &startup.Sector, &startup.Jobs,
		pq.Array(&startup.Achievements), &imageID, &startup.CreatedAt, &startup.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting startup: %v", ErrDatabaseError, err)
	}

	if imageID.Valid {
		startup.ImageID = &imageID.String
	}
	return &startup, nil
}

func (r *startupRepository) UpdateStartup(startup *models.Startup) error {
	query := `UPDATE startups
	          SET title = $1, description = $2, category = $3, founded = $4, revenue = $5,
	              sector = $6, jobs = $7, achievements = $8, updated_at = $9
	          WHERE id = $10`
	result, err := r.db.Exec(query,
		startup.Title, startup.Description, startup.Category, startup.Founded, startup.Revenue,
		startup.Sector, startup.Jobs, pq.Array(startup.Achievements), time.Now(), startup.ID)
	if err != nil {
		return fmt.Errorf("%w: updating startup: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking startup update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *startupRepository) DeleteStartup(startupID int64) error {
	result, err := r.db.Exec(`DELETE FROM startups WHERE id = $1`, startupID)
	if err != nil {
		return fmt.Errorf("%w: deleting startup: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking startup delete: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *startupRepository) SetStartupImage(executor SQLExecutor, startupID int64, imageID *string) error {
	result, err := executor.Exec(`UPDATE startups SET image_id = $1, updated_at = $2 WHERE id = $3`,
		imageID, time.Now(), startupID)
	if err != nil {
		return fmt.Errorf("%w: updating startup image: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking startup image update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
