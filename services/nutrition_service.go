package services

import (
	"time"

	"github.com/Gaganabm30/fitconnect/config"
	"github.com/Gaganabm30/fitconnect/models"
)

type MealInput struct {
	MealType string    `json:"mealType" binding:"required"`
	FoodName string    `json:"foodName" binding:"required"`
	Calories float64   `json:"calories" binding:"required,gt=0"`
	Protein  float64   `json:"protein"`
	Carbs    float64   `json:"carbs"`
	Fat      float64   `json:"fat"`
	Date     time.Time `json:"date"`
}

func ListMeals(userID uint) ([]models.Nutrition, error) {
	var meals []models.Nutrition
	err := config.DB.
		Where("user_id = ?", userID).
		Order("date DESC").
		Find(&meals).Error
	return meals, err
}

func AddMeal(userID uint, input MealInput) (*models.Nutrition, error) {
	meal := models.Nutrition{
		UserID:   userID,
		MealType: input.MealType,
		FoodName: input.FoodName,
		Calories: input.Calories,
		Protein:  input.Protein,
		Carbs:    input.Carbs,
		Fat:      input.Fat,
		Date:     input.Date,
	}
	if meal.Date.IsZero() {
		meal.Date = time.Now()
	}
	if err := config.DB.Create(&meal).Error; err != nil {
		return nil, err
	}
	return &meal, nil
}

func DeleteMeal(userID, mealID uint) error {
	var meal models.Nutrition
	if err := config.DB.First(&meal, mealID).Error; err != nil {
		return err
	}
	if meal.UserID != userID {
		return ErrNotOwner
	}
	return config.DB.Delete(&meal).Error
}
