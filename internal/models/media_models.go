package models

import "time"

// Media categories.
const (
	MediaCategoryNews           = "News"
	MediaCategoryPrograms       = "Programs"
	MediaCategoryEvents         = "Events"
	MediaCategoryPartnerships   = "Partnerships"
	MediaCategorySuccessStories = "Success Stories"
	MediaCategoryImpact         = "Impact"
)

// Media represents a press/news article about the center.
type Media struct {
	ID          int64     `json:"id" db:"id"`
	Title       string    `json:"title" db:"title" binding:"required"`
	Summary     string    `json:"summary" db:"summary" binding:"required"`
	Content     string    `json:"content" db:"content" binding:"required"`
	Source      string    `json:"source" db:"source" binding:"required"`
	SourceLink  *string   `json:"source_link,omitempty" db:"source_link"`
	Category    string    `json:"category" db:"category" binding:"required"`
	PublishedAt time.Time `json:"published_at" db:"published_at"`
	ImageID     *string   `json:"image_id,omitempty" db:"image_id"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// IsValidMediaCategory reports whether the category is in the closed set.
func IsValidMediaCategory(category string) bool {
	switch category {
	case MediaCategoryNews, MediaCategoryPrograms, MediaCategoryEvents,
		MediaCategoryPartnerships, MediaCategorySuccessStories, MediaCategoryImpact:
		return true
	default:
		return false
	}
}
