package services

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/Gaganabm30/fitconnect/config"
	"github.com/Gaganabm30/fitconnect/models"

	"gorm.io/gorm"
)

var ErrNotOwner = errors.New("user not authorized")

type WorkoutInput struct {
	Type      string    `json:"type" binding:"required"`
	Intensity string    `json:"intensity" binding:"omitempty,oneof=Low Medium High"`
	Duration  int       `json:"duration" binding:"required,gt=0"`
	Calories  int       `json:"calories" binding:"required,gt=0"`
	Date      time.Time `json:"date"`
}

func ListWorkouts(userID uint) ([]models.Workout, error) {
	var workouts []models.Workout
	err := config.DB.
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&workouts).Error
	return workouts, err
}

// LogWorkout creates a workout and, when the user is on a team, drives every
// active team challenge forward.
func LogWorkout(user *models.User, input WorkoutInput) (*models.Workout, error) {
	workout := models.Workout{
		UserID:    user.ID,
		Type:      input.Type,
		Intensity: input.Intensity,
		Duration:  input.Duration,
		Calories:  input.Calories,
		Date:      input.Date,
	}
	if workout.Intensity == "" {
		workout.Intensity = "Medium"
	}
	if workout.Date.IsZero() {
		workout.Date = time.Now()
	}

	if err := config.DB.Create(&workout).Error; err != nil {
		return nil, err
	}

	if err := applyWorkoutToTeam(user, &workout); err != nil {
		// Best-effort: the workout itself is saved, team bookkeeping isn't
		// worth failing the request over.
		log.Printf("team progress update failed for user %d: %v", user.ID, err)
	}

	return &workout, nil
}

// applyWorkoutToTeam runs the challenge progression loop. Challenges are
// updated one by one; a failed save logs and moves on to the next.
func applyWorkoutToTeam(user *models.User, workout *models.Workout) error {
	team, err := TeamForUser(user.ID)
	if err != nil {
		return err
	}
	if team == nil {
		return nil
	}

	challenges, err := ActiveChallenges(team.ID)
	if err != nil {
		return err
	}

	for i := range challenges {
		challenge := &challenges[i]
		increment := ChallengeIncrement(challenge.Type, workout)
		if increment <= 0 {
			continue
		}

		completed := ApplyProgress(challenge, user.ID, increment)
		if err := config.DB.Session(&gorm.Session{FullSaveAssociations: true}).Save(challenge).Error; err != nil {
			log.Printf("failed to save challenge %d progress: %v", challenge.ID, err)
			continue
		}
		if completed {
			AppendTeamActivity(team.ID, user.ID, user.Name,
				fmt.Sprintf("helped complete the challenge: %s! 🎉", challenge.Title),
				models.FeedChallengeCompleted)
		}
	}

	AppendTeamActivity(team.ID, user.ID, user.Name,
		fmt.Sprintf("logged a %s workout (%d kcal)", workout.Type, workout.Calories),
		models.FeedWorkout)

	return nil
}

func UpdateWorkout(userID, workoutID uint, input WorkoutInput) (*models.Workout, error) {
	var workout models.Workout
	if err := config.DB.First(&workout, workoutID).Error; err != nil {
		return nil, err
	}
	if workout.UserID != userID {
		return nil, ErrNotOwner
	}

	workout.Type = input.Type
	if input.Intensity != "" {
		workout.Intensity = input.Intensity
	}
	workout.Duration = input.Duration
	workout.Calories = input.Calories
	if !input.Date.IsZero() {
		workout.Date = input.Date
	}

	if err := config.DB.Save(&workout).Error; err != nil {
		return nil, err
	}
	return &workout, nil
}

func DeleteWorkout(userID, workoutID uint) error {
	var workout models.Workout
	if err := config.DB.First(&workout, workoutID).Error; err != nil {
		return err
	}
	if workout.UserID != userID {
		return ErrNotOwner
	}
	return config.DB.Delete(&workout).Error
}
