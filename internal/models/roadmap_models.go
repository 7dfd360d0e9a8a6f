package models

import "time"

// RoadmapMonths lists the month names in calendar order; listings sort by
// this order within a year.
var RoadmapMonths = []string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

// RoadmapItem is one milestone on the center's growth timeline.
type RoadmapItem struct {
	ID        int64     `json:"id" db:"id"`
	Year      string    `json:"year" db:"year" binding:"required"`
	Month     string    `json:"month" db:"month" binding:"required"`
	Event     string    `json:"event" db:"event" binding:"required"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
	UpdatedAt time.Time `json:"updated_at" db:"updated_at"`
}

// RoadmapStats summarizes the timeline for the landing page counters.
type RoadmapStats struct {
	TotalMilestones int `json:"total_milestones"`
	YearsOfGrowth   int `json:"years_of_growth"`
}

// IsValidRoadmapMonth reports whether the month is a calendar month name.
func IsValidRoadmapMonth(month string) bool {
	for _, m := range RoadmapMonths {
		if m == month {
			return true
		}
	}
	return false
}
