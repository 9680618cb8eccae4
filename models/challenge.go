package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	ChallengeActive    = "Active"
	ChallengeCompleted = "Completed"
	ChallengeExpired   = "Expired"
)

type Challenge struct {
	gorm.Model
	TeamID          uint      `gorm:"index;not null" json:"team_id"`
	Title           string    `gorm:"not null" json:"title"`
	Type            string    `gorm:"not null" json:"type"` // Steps | Calories | Workouts | Minutes
	TargetValue     int       `gorm:"not null" json:"targetValue"`
	CurrentProgress int       `json:"currentProgress"`
	StartDate       time.Time `json:"startDate"`
	EndDate         time.Time `json:"endDate"`
	Status          string    `gorm:"default:'Active'" json:"status"`

	Contributors []ChallengeContributor `json:"contributors"`
}

// ChallengeContributor tracks one member's running total of progress
// increments toward a challenge.
type ChallengeContributor struct {
	gorm.Model
	ChallengeID uint `gorm:"index;not null" json:"-"`
	UserID      uint `gorm:"index;not null" json:"user_id"`
	Value       int  `json:"value"`
}
