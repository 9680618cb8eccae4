package models

import (
	"gorm.io/gorm"
)

// FoodLog is an append-only audit record of every calorie-estimation call,
// regardless of whether the model or the offline fallback produced it.
type FoodLog struct {
	gorm.Model
	UserID        uint          `gorm:"index;not null" json:"user_id"`
	InputQuery    string        `gorm:"not null" json:"inputQuery"`
	TotalCalories string        `json:"totalCalories"` // single number or a range like "400-500"
	Confidence    string        `json:"confidence"`    // Low | Medium | High
	Explanation   string        `json:"explanation"`
	Items         []FoodLogItem `json:"parsedFood"`
}

type FoodLogItem struct {
	gorm.Model
	FoodLogID     uint   `gorm:"index;not null" json:"-"`
	FoodName      string `json:"foodName"`
	Quantity      string `json:"quantity"`
	Calories      string `json:"calories"`
	Confidence    string `json:"confidence"`
	FitnessImpact string `json:"fitnessImpact,omitempty"`
}
