package models

import "time"

// Tender represents a published tender notice.
type Tender struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title" binding:"required"`
	Date         *string   `json:"date,omitempty" db:"tender_date"`
	Organization *string   `json:"organization,omitempty" db:"organization"`
	Reference    *string   `json:"reference,omitempty" db:"reference"`
	LastDate     *string   `json:"last_date,omitempty" db:"last_date"`
	LastTime     *string   `json:"last_time,omitempty" db:"last_time"`
	FileLink     *string   `json:"file_link,omitempty" db:"file_link"`
	FileName     *string   `json:"file_name,omitempty" db:"file_name"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}
