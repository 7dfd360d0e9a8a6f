package models

import "time"

// Project statuses.
const (
	ProjectStatusActive    = "active"
	ProjectStatusCompleted = "completed"
)

// ProjectMember is a student participating in a lab project. Members are
// stored embedded on the project row as JSON; they are never queried
// independently.
type ProjectMember struct {
	Name        string `json:"name"`
	RegNo       string `json:"reg_no"`
	Department  string `json:"department"`
	YearOfStudy string `json:"year_of_study"`
}

// Project represents a student lab project using center equipment.
type Project struct {
	ID                int64           `json:"id" db:"id"`
	Name              string          `json:"name" db:"name" binding:"required"`
	RegisterNumber    string          `json:"register_number" db:"register_number" binding:"required"`
	UserID            *string         `json:"user_id,omitempty" db:"user_id"`
	Department        *string         `json:"department,omitempty" db:"department"`
	YearOfStudy       *string         `json:"year_of_study,omitempty" db:"year_of_study"`
	InstituteName     *string         `json:"institute_name,omitempty" db:"institute_name"`
	ProjectType       *string         `json:"project_type,omitempty" db:"project_type"`
	OtherProjectType  *string         `json:"other_project_type,omitempty" db:"other_project_type"`
	ProjectTitle      *string         `json:"project_title,omitempty" db:"project_title"`
	LabEquipmentUsage *string         `json:"lab_equipment_usage,omitempty" db:"lab_equipment_usage"`
	ProjectDuration   *string         `json:"project_duration,omitempty" db:"project_duration"`
	ProjectGuideName  *string         `json:"project_guide_name,omitempty" db:"project_guide_name"`
	Members           []ProjectMember `json:"members" db:"members"`
	Components        []string        `json:"components" db:"components"`
	Status            string          `json:"status" db:"status"`
	CreatedAt         time.Time       `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at" db:"updated_at"`
}

// IsValidProjectStatus reports whether the status is in the closed set.
func IsValidProjectStatus(status string) bool {
	return status == ProjectStatusActive || status == ProjectStatusCompleted
}
