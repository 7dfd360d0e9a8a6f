package models

import "time"

// Team groupings.
const (
	TeamGroupCore      = "Core Team"
	TeamGroupExecutive = "Executive Team"
)

// TeamMember is a staff profile on the team page, ordered within its group.
type TeamMember struct {
	ID           int64     `json:"id" db:"id"`
	Name         string    `json:"name" db:"name" binding:"required"`
	Role         string    `json:"role" db:"role" binding:"required"`
	Email        *string   `json:"email,omitempty" db:"email"`
	LinkedIn     *string   `json:"linkedin,omitempty" db:"linkedin"`
	Team         string    `json:"team" db:"team"`
	PhotoID      *string   `json:"photo_id,omitempty" db:"photo_id"`
	DisplayOrder int       `json:"order" db:"display_order"`
	CreatedAt    time.Time `json:"created_at" db:"created_at"`
	UpdatedAt    time.Time `json:"updated_at" db:"updated_at"`
}

// IsValidTeamGroup reports whether the group is in the closed set.
func IsValidTeamGroup(group string) bool {
	return group == TeamGroupCore || group == TeamGroupExecutive
}
