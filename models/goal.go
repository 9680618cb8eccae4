package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	GoalInProgress = "In Progress"
	GoalAchieved   = "Achieved"
)

type Goal struct {
	gorm.Model
	UserID       uint      `gorm:"index;not null" json:"user_id"`
	Type         string    `gorm:"not null" json:"type"` // Weight, Workout Frequency, Steps
	TargetValue  float64   `gorm:"not null" json:"targetValue"`
	CurrentValue float64   `json:"currentValue"`
	Status       string    `gorm:"default:'In Progress'" json:"status"`
	Deadline     time.Time `json:"deadline"`
}
