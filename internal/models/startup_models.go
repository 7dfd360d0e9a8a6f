package models

import "time"

// Startup categories.
const (
	StartupCategoryOngoing   = "Ongoing"
	StartupCategoryGraduated = "Graduated"
)

// Startup represents an incubated startup shown on the site.
type Startup struct {
	ID           int64     `json:"id" db:"id"`
	Title        string    `json:"title" db:"title" binding:"required"`
	Description  string    `json:"description" db:"description" binding:"required"`
	Category     string    `json:"category" db:"category" binding:"required"` // Ongoing, Graduated
	Founded      string    `json:"founded" db:"founded" binding:"required"`
	Revenue      string    `json:"revenue" db:"revenue" binding:"required"`
	Sector       string    `json:"sector" db:"sector" binding:"required"`
	Jobs         string    `json:"jobs" db:"jobs" binding:"required"`
	Achievements []string  `json:"achievements" db:"achievements"`
	ImageID      *string   `json:"image_id,omitempty" db:"image_id"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// IsValidStartupCategory reports whether the category is in the closed set.
func IsValidStartupCategory(category string) bool {
	return category == StartupCategoryOngoing || category == StartupCategoryGraduated
}
