package services

import (
	"time"

	"github.com/Gaganabm30/fitconnect/config"
	"github.com/Gaganabm30/fitconnect/models"
)

type GoalInput struct {
	Type         string    `json:"type" binding:"required"`
	TargetValue  float64   `json:"targetValue" binding:"required,gt=0"`
	CurrentValue float64   `json:"currentValue"`
	Deadline     time.Time `json:"deadline"`
}

func ListGoals(userID uint) ([]models.Goal, error) {
	var goals []models.Goal
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&goals).Error
	return goals, err
}

func CreateGoal(userID uint, input GoalInput) (*models.Goal, error) {
	goal := models.Goal{
		UserID:       userID,
		Type:         input.Type,
		TargetValue:  input.TargetValue,
		CurrentValue: input.CurrentValue,
		Status:       models.GoalInProgress,
		Deadline:     input.Deadline,
	}
	if goal.CurrentValue >= goal.TargetValue {
		goal.Status = models.GoalAchieved
	}
	if err := config.DB.Create(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

// UpdateGoalProgress bumps current value and flips Achieved once the target
// is met.
func UpdateGoalProgress(userID, goalID uint, currentValue float64) (*models.Goal, error) {
	var goal models.Goal
	if err := config.DB.First(&goal, goalID).Error; err != nil {
		return nil, err
	}
	if goal.UserID != userID {
		return nil, ErrNotOwner
	}

	goal.CurrentValue = currentValue
	if goal.CurrentValue >= goal.TargetValue {
		goal.Status = models.GoalAchieved
	}
	if err := config.DB.Save(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func DeleteGoal(userID, goalID uint) error {
	var goal models.Goal
	if err := config.DB.First(&goal, goalID).Error; err != nil {
		return err
	}
	if goal.UserID != userID {
		return ErrNotOwner
	}
	return config.DB.Delete(&goal).Error
}
