package models

import "time"

// Internship statuses.
const (
	InternshipStatusActive    = "active"
	InternshipStatusCompleted = "completed"
)

// Internship represents an intern registered at the center.
type Internship struct {
	ID                   int64     `json:"id" db:"id"`
	Name                 string    `json:"name" db:"name" binding:"required"`
	InternNo             string    `json:"intern_no" db:"intern_no" binding:"required"`
	DateOfBirth          *string   `json:"date_of_birth,omitempty" db:"date_of_birth"`
	Email                *string   `json:"email,omitempty" db:"email"`
	PhoneNumber          *string   `json:"phone_number,omitempty" db:"phone_number"`
	FatherName           *string   `json:"father_name,omitempty" db:"father_name"`
	MotherName           *string   `json:"mother_name,omitempty" db:"mother_name"`
	BloodGroup           *string   `json:"blood_group,omitempty" db:"blood_group"`
	PermanentAddress     *string   `json:"permanent_address,omitempty" db:"permanent_address"`
	CommunicationAddress *string   `json:"communication_address,omitempty" db:"communication_address"`
	DateOfExpiry         *string   `json:"date_of_expiry,omitempty" db:"date_of_expiry"`
	MaritalStatus        *string   `json:"marital_status,omitempty" db:"marital_status"`
	DateOfJoining        *string   `json:"date_of_joining,omitempty" db:"date_of_joining"`
	Designation          *string   `json:"designation,omitempty" db:"designation"`
	Status               string    `json:"status" db:"status"`
	CreatedAt            time.Time `json:"created_at" db:"created_at"`
	UpdatedAt            time.Time `json:"updated_at" db:"updated_at"`
}

// IsValidInternshipStatus reports whether the status is in the closed set.
func IsValidInternshipStatus(status string) bool {
	return status == InternshipStatusActive || status == InternshipStatusCompleted
}
