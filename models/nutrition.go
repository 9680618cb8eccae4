package models

import (
	"time"

	"gorm.io/gorm"
)

// Nutrition is a single meal entry (Breakfast/Lunch/Dinner/Snack).
type Nutrition struct {
	gorm.Model
	UserID   uint      `gorm:"index;not null" json:"user_id"`
	MealType string    `gorm:"not null" json:"mealType"`
	FoodName string    `gorm:"not null" json:"foodName"`
	Calories float64   `gorm:"not null" json:"calories"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Date     time.Time `json:"date"`
}
