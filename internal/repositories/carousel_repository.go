package repositories

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"incubator_backend/internal/models"
)

// CarouselRepository defines the interface for carousel slide database
// operations.
type CarouselRepository interface {
	CreateCarouselImage(image *models.CarouselImage) error
	GetCarouselImages(activeOnly bool) ([]models.CarouselImage, error)
	GetCarouselImageByID(imageID int64) (*models.CarouselImage, error)
	UpdateCarouselImage(image *models.CarouselImage) error
	DeleteCarouselImage(imageID int64) error
	SetCarouselImageFile(executor SQLExecutor, imageID int64, fileID *string) error
	SetCarouselImageActive(imageID int64, active bool) error
	ReorderCarouselImages(orders map[int64]int) error
}

type carouselRepository struct {
	db *sql.DB
}

// NewCarouselRepository creates a new instance of CarouselRepository.
func NewCarouselRepository(db *sql.DB) CarouselRepository {
	return &carouselRepository{db: db}
}

const carouselColumns = `id, title, description, alt_text, image_id, display_order, is_active, created_at, updated_at`

func scanCarouselImage(row scanner, image *models.CarouselImage, extra ...interface{}) error {
	var description, altText, imageID sql.NullString
	dest := []interface{}{&image.ID, &image.Title, &description, &altText, &imageID,
		&image.DisplayOrder, &image.IsActive, &image.CreatedAt, &image.UpdatedAt}
	dest = append(dest, extra...)
	if err := row.Scan(dest...); err != nil {
		return err
	}
	if description.Valid {
		image.Description = &description.String
	}
	if altText.Valid {
		image.AltText = &altText.String
	}
	if imageID.Valid {
		image.ImageID = &imageID.String
	}
	return nil
}

// CreateCarouselImage inserts a slide at the end of the display order.
func (r *carouselRepository) CreateCarouselImage(image *models.CarouselImage) error {
	query := `INSERT INTO carousel_images (title, description, alt_text, display_order)
	          VALUES ($1, $2, $3, (SELECT COALESCE(MAX(display_order), -1) + 1 FROM carousel_images))
	          RETURNING id, display_order, is_active, created_at, updated_at`
	err := r.db.QueryRow(query, image.Title, image.Description, image.AltText).
		Scan(&image.ID, &image.DisplayOrder, &image.IsActive, &image.CreatedAt, &image.UpdatedAt)
	if err != nil {
		return fmt.Errorf("%w: creating carousel image: %v", ErrDatabaseError, err)
	}
	return nil
}

func (r *carouselRepository) GetCarouselImages(activeOnly bool) ([]models.CarouselImage, error) {
	images := []models.CarouselImage{}

	query := `SELECT ` + carouselColumns + ` FROM carousel_images`
	if activeOnly {
		query += ` WHERE is_active`
	}
	query += ` ORDER BY display_order, id`

	rows, err := r.db.Query(query)
	if err != nil {
		return nil, fmt.Errorf("%w: getting carousel images: %v", ErrDatabaseError, err)
	}
	defer rows.Close()

	for rows.Next() {
		var image models.CarouselImage
		if err := scanCarouselImage(rows, &image); err != nil {
			return nil, fmt.Errorf("%w: scanning carousel image: %v", ErrDatabaseError, err)
		}
		images = append(images, image)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterating carousel images: %v", ErrDatabaseError, err)
	}
	return images, nil
}

func (r *carouselRepository) GetCarouselImageByID(imageID int64) (*models.CarouselImage, error) {
	var image models.CarouselImage
	query := `SELECT ` + carouselColumns + ` FROM carousel_images WHERE id = $1`
	err := scanCarouselImage(r.db.QueryRow(query, imageID), &image)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("%w: getting carousel image: %v", ErrDatabaseError, err)
	}
	return &image, nil
}

func (r *carouselRepository) UpdateCarouselImage(image *models.CarouselImage) error {
	query := `UPDATE carousel_images
	          SET title = $1, description = $2, alt_text = $3, updated_at = $4
	          WHERE id = $5`
	result, err := r.db.Exec(query, image.Title, image.Description, image.AltText, time.Now(), image.ID)
	if err != nil {
		return fmt.Errorf("%w: updating carousel image: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking carousel image update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *carouselRepository) DeleteCarouselImage(imageID int64) error {
	result, err := r.db.Exec(`DELETE FROM carousel_images WHERE id = $1`, imageID)
	if err != nil {
		return fmt.Errorf("%w: deleting carousel image: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking carousel image delete: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *carouselRepository) SetCarouselImageFile(executor SQLExecutor, imageID int64, fileID *string) error {
	result, err := executor.Exec(`UPDATE carousel_images SET image_id = $1, updated_at = $2 WHERE id = $3`,
		fileID, time.Now(), imageID)
	if err != nil {
		return fmt.Errorf("%w: updating carousel image file: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking carousel image file update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *carouselRepository) SetCarouselImageActive(imageID int64, active bool) error {
	result, err := r.db.Exec(`UPDATE carousel_images SET is_active = $1, updated_at = $2 WHERE id = $3`,
		active, time.Now(), imageID)
	if err != nil {
		return fmt.Errorf("%w: updating carousel image status: %v", ErrDatabaseError, err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: checking carousel image status update: %v", ErrDatabaseError, err)
	}
	if rowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ReorderCarouselImages applies a new display order in one transaction so a
// partial reorder never lands.
func (r *carouselRepository) ReorderCarouselImages(orders map[int64]int) error {
	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("%w: beginning carousel reorder: %v", ErrDatabaseError, err)
	}
	defer tx.Rollback()

	now := time.Now()
	for id, order := range orders {
		result, err := tx.Exec(`UPDATE carousel_images SET display_order = $1, updated_at = $2 WHERE id = $3`,
			order, now, id)
		if err != nil {
			return fmt.Errorf("%w: reordering carousel image %d: %v", ErrDatabaseError, id, err)
		}
		rowsAffected, err := result.RowsAffected()
		if err != nil {
			return fmt.Errorf("%w: checking carousel reorder: %v", ErrDatabaseError, err)
		}
		if rowsAffected == 0 {
			return ErrNotFound
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: committing carousel reorder: %v", ErrDatabaseError, err)
	}
	return nil
}
