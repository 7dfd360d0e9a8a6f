package models

import (
	"time"

	"github.com/google/uuid"
)

// Attachment is a binary blob (image, PDF) stored by uuid. Resource rows
// keep a reference instead of embedding the bytes.
type Attachment struct {
	ID          uuid.UUID `json:"id" db:"id"`
	Data        []byte    `json:"-" db:"data"`
	ContentType string    `json:"content_type" db:"content_type"`
	FileName    *string   `json:"file_name,omitempty" db:"file_name"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
}
