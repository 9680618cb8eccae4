package models

import (
	"time"

	"gorm.io/gorm"
)

// One logged workout session.
type Workout struct {
	gorm.Model
	UserID    uint      `gorm:"index;not null" json:"user_id"`
	Type      string    `gorm:"not null" json:"type"` // Cardio, Strength, Yoga, ...
	Intensity string    `gorm:"default:'Medium'" json:"intensity"` // Low | Medium | High
	Duration  int       `gorm:"not null" json:"duration"` // minutes
	Calories  int       `gorm:"not null" json:"calories"`
	Date      time.Time `json:"date"`
}
