package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"incubator_backend/internal/models"

	"github.com/lib/pq"
)

// RoadmapRepository defines the interface for roadmap timeline database
// operations.
type RoadmapRepository interface {
	CreateRoadmapItem(item *models.RoadmapItem) error
	GetRoadmapItems(yearDescending bool) ([]models.RoadmapItem, error)
	GetRoadmapItemByID(itemID int64) (*models.RoadmapItem, error)
	UpdateRoadmapItem(item *models.RoadmapItem) error
	DeleteRoadmapItem(itemID int64) error
	GetYears() ([]string, error)
	GetStats() (*models.RoadmapStats, error)
}

type roadmapRepository struct {
	db *sql.DB
}

// NewRoadmapRepository creates a new instance of RoadmapRepository.
func NewRoadmapRepository(db *sql.DB) RoadmapRepository {
	return &roadmapRepository{db: db}
}

const roadmapColumns = `id, year, month, event, created_at, updated_at`

func scanRoadmapItem(row scanner, item *models.RoadmapItem) error {
	return row.Scan(&item.ID, &item.Year, &item.Month, &item.Event, &item.CreatedAt, &item.UpdatedAt)
}

func (r *roadmapRepository) CreateRoadmapItem(item *models.RoadmapItem) error {
	query := `INSERT INTO roadmap_items (year, month, event)
	          VALUES ($1, $2, $3)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query, item.Year, item.Month, item.Event).
		Scan(&item.ID, &item.CreatedAt, &item.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: creating roadmap item: %v", ErrDatabaseError, err)
	}
	return nil
}

// GetRoadmapItems lists the full timeline, months in calendar order within
// each year.
func (r *roadmapRepository) GetRoadmapItems(yearDescending bool) ([]models.RoadmapItem, error) {
	items := []models.RoadmapItem{}

	direction := "ASC"
	if yearDescending {
		direction = "DESC"
	}
	query := `SELECT ` + roadmapColumns + ` FROM roadmap_items
	          ORDER BY year ` + direction + `, array_position($1::text[], month), id`

	rows, err := r.db.Query(query, pq.Array(models.RoadmapMonths))
	if err != nil {
		return nil, fmt.Errorf("%w: getting roadmap items: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var item models.RoadmapItem
		if err := scanRoadmapItem(rows, &item); err != nil {
			return nil, fmt.Errorf("%w: scanning roadmap item: %v", ErrDatabaseError, err)
		}
		items = append(items, item)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating roadmap items: %v", ErrDatabaseError, err)
	}
	return items, nil
}

func (r *roadmapRepository) GetRoadmapItemByID(itemID int64) (*models.RoadmapItem, error) {
	var item models.RoadmapItem
	query := `SELECT ` + roadmapColumns + ` FROM roadmap_items WHERE id = $1`
	err := scanRoadmapItem(r.db.QueryRow(query, itemID), &item)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting roadmap item: %v", ErrDatabaseError, err)
	}
	return &item, nil
}

func (r *roadmapRepository) UpdateRoadmapItem(item *models.RoadmapItem) error {
	query := `UPDATE roadmap_items SET year = $1, month = $2, event = $3, updated_at = $4 WHERE id = $5`
	result, err := r.db.Exec(query, item.Year, item.Month, item.Event, time.Now(), item.ID)
	if err != nil {
		return fmt.Errorf("%w: updating roadmap item: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking roadmap item update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *roadmapRepository) DeleteRoadmapItem(itemID int64) error {
	result, err := r.db.Exec(`DELETE FROM roadmap_items WHERE id = $1`, itemID)
	if err != nil {
		return fmt.Errorf("%w: deleting roadmap item: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking roadmap item delete: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// GetYears returns the distinct years on the timeline, newest first.
func (r *roadmapRepository) GetYears() ([]string, error) {
	years := []string{}

	rows, err := r.db.Query(`SELECT DISTINCT year FROM roadmap_items ORDER BY year DESC`)
	if err != nil {
		return nil, fmt.Errorf("%w: getting roadmap years: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var year string
		if err := rows.Scan(&year); err != nil {
			return nil, fmt.Errorf("%w: scanning roadmap year: %v", ErrDatabaseError, err)
		}
		years = append(years, year)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating roadmap years: %v", ErrDatabaseError, err)
	}
	return years, nil
}

func (r *roadmapRepository) GetStats() (*models.RoadmapStats, error) {
	var stats models.RoadmapStats
	query := `SELECT COUNT(*), COUNT(DISTINCT year) FROM roadmap_items`
	if err := r.db.QueryRow(query).Scan(&stats.TotalMilestones, &stats.YearsOfGrowth); err != nil {
		return nil, fmt.Errorf("%w: getting roadmap stats: %v", ErrDatabaseError, err)
	}
	return &stats, nil
}
