package services

import (
	"errors"
	"math"
	"time"

	"github.com/Gaganabm30/fitconnect/config"
	"github.com/Gaganabm30/fitconnect/models"

	"gorm.io/gorm"
)

// Macros is the gram split of a daily calorie target.
type Macros struct {
	Protein int `json:"protein"`
	Carbs   int `json:"carbs"`
	Fats    int `json:"fats"`
}

type Recommendation struct {
	Calories    int       `json:"calories"`
	Macros      Macros    `json:"macros"`
	Summary     string    `json:"summary"`
	Workout     string    `json:"workout"`
	Tip         string    `json:"tip"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// CalculateBMR applies the Harris-Benedict equation with gender-conditioned
// coefficients. Weight in kg, height in cm.
func CalculateBMR(gender string, weightKg, heightCm float64, age int) float64 {
	if gender == "Male" {
		return 88.362 + 13.397*weightKg + 4.799*heightCm - 5.677*float64(age)
	}
	return 447.593 + 9.247*weightKg + 3.098*heightCm - 4.330*float64(age)
}

// ActivityMultiplier is a step function on training days per week.
func ActivityMultiplier(daysPerWeek int) float64 {
	multiplier := 1.2
	if daysPerWeek >= 3 {
		multiplier = 1.375
	}
	if daysPerWeek >= 5 {
		multiplier = 1.55
	}
	if daysPerWeek == 7 {
		multiplier = 1.725
	}
	return multiplier
}

// BuildRecommendation runs the rule engine over a profile. Pure: nothing is
// persisted, only the profile that feeds it is.
func BuildRecommendation(profile *models.AIProfile) Recommendation {
	bmr := CalculateBMR(profile.Gender, profile.Weight, profile.Height, profile.Age)
	tdee := int(math.Round(bmr * ActivityMultiplier(profile.DaysPerWeek)))

	calorieTarget := tdee
	var advice, workoutPlan string

	switch profile.Goal {
	case "Weight Loss":
		calorieTarget -= 500
		advice = "Focus on a caloric deficit. Incorporate HIIT and cardio."
		workoutPlan = "Mix of Cardio (30m) and Strength Training (3 sets x 12 reps)."
	case "Muscle Gain":
		calorieTarget += 300
		advice = "Surplus requires protein. Lift heavy!"
		workoutPlan = "Hypertrophy focus. Split routine (Push/Pull/Legs)."
	default:
		advice = "Maintain balance. Consistency is key."
		workoutPlan = "Full Body workouts to maintain tone."
	}

	// Each macro is rounded independently; the drift is accepted.
	target := float64(calorieTarget)
	macros := Macros{
		Protein: int(math.Round(target * 0.3 / 4)),
		Carbs:   int(math.Round(target * 0.4 / 4)),
		Fats:    int(math.Round(target * 0.3 / 9)),
	}

	return Recommendation{
		Calories:    calorieTarget,
		Macros:      macros,
		Summary:     advice,
		Workout:     workoutPlan,
		Tip:         "Remember to drink 3L of water today!",
		GeneratedAt: time.Now(),
	}
}

// UpsertAIProfile creates or updates the one-per-user coaching profile.
func UpsertAIProfile(userID uint, input *models.AIProfile) (*models.AIProfile, error) {
	var profile models.AIProfile
	err := config.DB.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		profile = *input
		profile.ID = 0
		profile.UserID = userID
		if err := config.DB.Create(&profile).Error; err != nil {
			return nil, err
		}
		return &profile, nil
	}
	if err != nil {
		return nil, err
	}

	profile.Age = input.Age
	profile.Height = input.Height
	profile.Weight = input.Weight
	profile.Gender = input.Gender
	profile.FitnessLevel = input.FitnessLevel
	profile.Goal = input.Goal
	if input.DietaryPreference != "" {
		profile.DietaryPreference = input.DietaryPreference
	}
	if input.DaysPerWeek > 0 {
		profile.DaysPerWeek = input.DaysPerWeek
	}
	if err := config.DB.Save(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func GetAIProfile(userID uint) (*models.AIProfile, error) {
	var profile models.AIProfile
	if err := config.DB.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}
