package models

import "time"

// Event represents an incubation-center event.
type Event struct {
	ID               int64     `json:"id" db:"id"`
	Title            string    `json:"title" db:"title" binding:"required"`
	Date             time.Time `json:"date" db:"event_date" binding:"required"`
	Time             string    `json:"time" db:"event_time" binding:"required"`
	Location         string    `json:"location" db:"location" binding:"required"`
	Description      *string   `json:"description,omitempty" db:"description"`
	RegistrationLink *string   `json:"registration_link,omitempty" db:"registration_link"`
	PosterID         *string   `json:"poster_id,omitempty" db:"poster_id"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time `json:"updated_at" db:"updated_at"`
}

// DateString returns the event date in YYYY-MM-DD form, matching the
// formatted date exposed to the frontend.
func (e *Event) DateString() string {
	return e.Date.Format("2006-01-02")
}
