package models

import "time"

// EventRecord is one paid event registration. A person registers at most
// once per event, enforced by a unique (email, event_name) constraint.
type EventRecord struct {
	ID                 int64     `json:"id" db:"id"`
	Name               string    `json:"name" db:"name" binding:"required"`
	Email              string    `json:"email" db:"email" binding:"required"`
	Phone              string    `json:"phone" db:"phone" binding:"required"`
	EventName          string    `json:"event_name" db:"event_name" binding:"required"`
	AmountPaid         float64   `json:"amount_paid" db:"amount_paid"`
	DateOfRegistration time.Time `json:"date_of_registration" db:"date_of_registration"`
	CreatedAt          time.Time `json:"created_at" db:"created_at"`
	UpdatedAt          time.Time `json:"updated_at" db:"updated_at"`
}
