package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"incubator_backend/internal/models"
)

// MediaRepository defines the interface for media-article database
// operations.
type MediaRepository interface {
	CreateMedia(media *models.Media) error
	GetMedia(category *string, searchTerm *string, page, pageSize int) ([]models.Media, int, error)
	GetMediaByID(mediaID int64) (*models.Media, error)
	UpdateMedia(media *models.Media) error
	DeleteMedia(mediaID int64) error
	SetMediaImage(executor SQLExecutor, mediaID int64, imageID *string) error
}

type mediaRepository struct {
	db *sql.DB
}

// NewMediaRepository creates a new instance of MediaRepository.
func NewMediaRepository(db *sql.DB) MediaRepository {
	return &mediaRepository{db: db}
}

const mediaColumns = "id, title, summary, content, source, source_link, category, published_at, image_id, created_at, updated_at"

func scanMedia(s scanner, extra ...interface{}) (*models.Media, error) {
	var media models.Media
	var sourceLink, imageID sql.NullString

	dest := []interface{}{&media.ID, &media.Title, &media.Summary, &media.Content, &media.Source,
		&sourceLink, &media.Category, &media.PublishedAt, &imageID, &media.CreatedAt, &media.UpdatedAt}
	dest = append(dest, extra...)

	if err := s.Scan(dest...); err != nil {
		return nil, err
	}
	if sourceLink.Valid {
		media.SourceLink = &sourceLink.String
	}
	if imageID.Valid {
		media.ImageID = &imageID.String
	}
	return &media, nil
}

func (r *mediaRepository) CreateMedia(media *models.Media) error {
	if media.PublishedAt.IsZero() {
		media.PublishedAt = time.Now()
	}
	query := `INSERT INTO media (title, summary, content, source, source_link, category, published_at)
	          VALUES ($1, $2, $3, $4, $5, $6, $7)
	          RETURNING id, created_at, updated_at`
	err := r.db.QueryRow(query,
		media.Title, media.Summary, media.Content, media.Source, media.SourceLink,
		media.Category, media.PublishedAt,
	).Scan(&media.ID, &media.CreatedAt, &media.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: creating media: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *mediaRepository) GetMedia(category *string, searchTerm *string, page, pageSize int) ([]models.Media, int, error) {
	articles := []models.Media{}
	totalCount := 0

	var queryBuilder strings.Builder
	queryBuilder.WriteString(`SELECT ` + mediaColumns + `, COUNT(*) OVER() AS total_count FROM media`)

	var conditions []string
	var args []interface{}
	argCount := 1

	if category != nil && *category != "" {
		conditions = append(conditions, fmt.Sprintf("category = $%d", argCount))
		args = append(args, *category)
		argCount++
	}
	if searchTerm != nil && *searchTerm != "" {
		conditions = append(conditions, fmt.Sprintf("(title ILIKE $%d OR summary ILIKE $%d)", argCount, argCount))
		args = append(args, "%"+*searchTerm+"%")
		argCount++
	}

	if len(conditions) > 0 {
		queryBuilder.WriteString(" WHERE ")
		queryBuilder.WriteString(strings.Join(conditions, " AND "))
	}
	queryBuilder.WriteString(" ORDER BY published_at DESC, id DESC")
	queryBuilder.WriteString(fmt.Sprintf(" LIMIT $%d OFFSET $%d", argCount, argCount+1))
	args = append(args, pageSize, (page-1)*pageSize)

	rows, err := r.db.Query(queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: getting media: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		media, err := scanMedia(rows, &totalCount)
		if err != nil {
			return nil, 0, fmt.Errorf("%w: scanning media: %v", ErrDatabaseError, err)
		}
		articles = append(articles, *media)
	}
	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("%w: iterating media: %v", ErrDatabaseError, err)
	}

	return articles, totalCount, nil
}

func (r *mediaRepository) GetMediaByID(mediaID int64) (*models.Media, error) {
	query := `SELECT ` + mediaColumns + ` FROM media WHERE id = $1`
	media, err := scanMedia(r.db.QueryRow(query, mediaID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting media: %v", ErrDatabaseError, err)
	}
	return media, nil
}

func (r *mediaRepository) UpdateMedia(media *models.Media) error {
	query := `UPDATE media
	          SET title = $1, summary = $2, content = $3, source = $4, source_link = $5,
	              category = $6, published_at = $7, updated_at = $8
	          WHERE id = $9`
	result, err := r.db.Exec(query,
		media.Title, media.Summary, media.Content, media.Source, media.SourceLink,
		media.Category, media.PublishedAt, time.Now(), media.ID)
	if err != nil {
		return fmt.Errorf("%w: updating media: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking media update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mediaRepository) DeleteMedia(mediaID int64) error {
	result, err := r.db.Exec(`DELETE FROM media WHERE id = $1`, mediaID)
	if err != nil {
		return fmt.Errorf("%w: deleting media: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking media delete: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *mediaRepository) SetMediaImage(executor SQLExecutor, mediaID int64, imageID *string) error {
	result, err := executor.Exec(`UPDATE media SET image_id = $1, updated_at = $2 WHERE id = $3`,
		imageID, time.Now(), mediaID)
	if err != nil {
		return fmt.Errorf("%w: updating media image: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking media image update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
