package models

import (
	"gorm.io/gorm"
)

// AIProfile holds the demographic/fitness inputs the coaching engine runs on.
// One per user.
type AIProfile struct {
	gorm.Model
	UserID            uint    `gorm:"uniqueIndex;not null" json:"user_id"`
	Age               int     `gorm:"not null" json:"age"`
	Height            float64 `gorm:"not null" json:"height"` // cm
	Weight            float64 `gorm:"not null" json:"weight"` // kg
	Gender            string  `gorm:"not null" json:"gender"` // Male | Female | Other
	FitnessLevel      string  `gorm:"not null" json:"fitnessLevel"`
	Goal              string  `gorm:"not null" json:"goal"` // Weight Loss | Muscle Gain | Endurance | Maintenance
	DietaryPreference string  `gorm:"default:'Non-Veg'" json:"dietaryPreference"`
	DaysPerWeek       int     `gorm:"default:4" json:"daysPerWeek"` // 1..7
}
