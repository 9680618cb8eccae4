package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BurnoutLow      = "Low Risk"
	BurnoutModerate = "Moderate Risk"
	BurnoutHigh     = "High Risk"
)

// BurnoutMetrics is the per-user snapshot updated by each evaluation.
type BurnoutMetrics struct {
	gorm.Model
	UserID             uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	WeeklyWorkoutCount int       `json:"weeklyWorkoutCount"`
	RestDays           int       `json:"restDays"`
	ConsistencyScore   int       `gorm:"default:100" json:"consistencyScore"` // 0-100
	BurnoutLevel       string    `gorm:"default:'Low Risk'" json:"burnoutLevel"`
	LastEvaluated      time.Time `json:"lastEvaluated"`
}

// RecoverySuggestion is appended on every evaluation; reads take the newest.
type RecoverySuggestion struct {
	gorm.Model
	UserID       uint             `gorm:"index;not null" json:"user_id"`
	BurnoutLevel string           `gorm:"not null" json:"burnoutLevel"`
	Actions      []RecoveryAction `json:"suggestedActions"`
}

type RecoveryAction struct {
	gorm.Model
	RecoverySuggestionID uint   `gorm:"index;not null" json:"-"`
	Text                 string `json:"text"`
}
