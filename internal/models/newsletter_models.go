package models

import "time"

// Newsletter represents a published newsletter issue with a cover image and
// a PDF file held in the attachment store.
type Newsletter struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title" binding:"required"`
	Year         string    `json:"year" db:"year" binding:"required"`
	CoverImageID *string   `json:"cover_image_id,omitempty" db:"cover_image_id"`
	PdfFileID    *string   `json:"pdf_file_id,omitempty" db:"pdf_file_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
