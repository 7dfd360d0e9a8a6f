package models

import "time"

// CarouselImage is one slide of the homepage carousel. Slides are shown in
// display_order; inactive slides stay stored but are hidden from visitors.
type CarouselImage struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title" binding:"required"`
	Description  *string   `json:"description,omitempty" db:"description"`
	AltText      *string   `json:"alt_text,omitempty" db:"alt_text"`
	ImageID      *string   `json:"image_id,omitempty" db:"image_id"`
	DisplayOrder int       `json:"order" db:"display_order"`
	IsActive     bool      `json:"is_active" db:"is_active"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
