package services

import (
	"errors"
	"log"
	"math"
	"time"

	"github.com/Gaganabm30/fitconnect/config"
	"github.com/Gaganabm30/fitconnect/models"

	"gorm.io/gorm"
)

// BurnoutSnapshot is the result of running the evaluator over one week of
// workouts, before it is persisted.
type BurnoutSnapshot struct {
	WeeklyWorkoutCount int
	HighIntensityCount int
	RestDays           int
	ConsistencyScore   int
	BurnoutLevel       string
}

// ComputeBurnout evaluates the trailing-week rules over the given workouts.
// Pure; callers pass the already-windowed records.
func ComputeBurnout(workouts []models.Workout) BurnoutSnapshot {
	weeklyCount := len(workouts)

	highIntensity := 0
	activeDays := make(map[string]struct{})
	for _, w := range workouts {
		if w.Intensity == "High" {
			highIntensity++
		}
		activeDays[w.Date.Format("2006-01-02")] = struct{}{}
	}

	restDays := 7 - len(activeDays)
	consistency := int(math.Round(float64(len(activeDays)) / 7 * 100))

	// First matching rule wins.
	level := models.BurnoutLow
	if highIntensity > 5 && restDays == 0 {
		level = models.BurnoutHigh
	} else if weeklyCount > 6 && restDays <= 1 {
		level = models.BurnoutModerate
	}

	return BurnoutSnapshot{
		WeeklyWorkoutCount: weeklyCount,
		HighIntensityCount: highIntensity,
		RestDays:           restDays,
		ConsistencyScore:   consistency,
		BurnoutLevel:       level,
	}
}

// RecoveryActionsFor maps a burnout level to its fixed action list.
func RecoveryActionsFor(level string) []string {
	switch level {
	case models.BurnoutHigh:
		return []string{
			"Take a full rest day immediately.",
			"Focus on hydration and sleep (aim for 8+ hours).",
			"Consider light stretching instead of a workout.",
		}
	case models.BurnoutModerate:
		return []string{
			"Reduce workout intensity for the next 2 days.",
			"Incorporate a yoga or mobility session.",
			"Check your protein intake.",
		}
	default:
		return []string{
			"Great job! Maintain your current routine.",
			"Keep pushing towards your goals.",
			"Stay consistent!",
		}
	}
}

// GetBurnoutStatus returns the user's metrics, creating an initialized record
// on first read.
func GetBurnoutStatus(userID uint) (*models.BurnoutMetrics, error) {
	var metrics models.BurnoutMetrics
	err := config.DB.Where("user_id = ?", userID).First(&metrics).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		metrics = models.BurnoutMetrics{
			UserID:           userID,
			ConsistencyScore: 100,
			BurnoutLevel:     models.BurnoutLow,
		}
		if err := config.DB.Create(&metrics).Error; err != nil {
			return nil, err
		}
		return &metrics, nil
	}
	if err != nil {
		return nil, err
	}
	return &metrics, nil
}

// EvaluateBurnout recomputes metrics from the last 7 days of workouts,
// upserts the per-user metrics row and appends a recovery suggestion.
func EvaluateBurnout(userID uint) (*models.BurnoutMetrics, error) {
	now := time.Now()
	lastWeek := time.Date(now.Year(), now.Month(), now.Day()-7, 0, 0, 0, 0, now.Location())

	var workouts []models.Workout
	if err := config.DB.
		Where("user_id = ? AND date >= ?", userID, lastWeek).
		Find(&workouts).Error; err != nil {
		return nil, err
	}

	snap := ComputeBurnout(workouts)

	metrics, err := GetBurnoutStatus(userID)
	if err != nil {
		return nil, err
	}

	metrics.WeeklyWorkoutCount = snap.WeeklyWorkoutCount
	metrics.RestDays = snap.RestDays
	metrics.ConsistencyScore = snap.ConsistencyScore
	metrics.BurnoutLevel = snap.BurnoutLevel
	metrics.LastEvaluated = now

	if err := config.DB.Save(metrics).Error; err != nil {
		return nil, err
	}

	suggestion := models.RecoverySuggestion{
		UserID:       userID,
		BurnoutLevel: snap.BurnoutLevel,
	}
	for _, action := range RecoveryActionsFor(snap.BurnoutLevel) {
		suggestion.Actions = append(suggestion.Actions, models.RecoveryAction{Text: action})
	}
	if err := config.DB.Create(&suggestion).Error; err != nil {
		return nil, err
	}

	return metrics, nil
}

// LatestRecoverySuggestion returns the newest suggestion, or nil when the
// user has never been evaluated.
func LatestRecoverySuggestion(userID uint) (*models.RecoverySuggestion, error) {
	var suggestion models.RecoverySuggestion
	err := config.DB.
		Preload("Actions").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		First(&suggestion).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// RecordBurnoutFeedback acknowledges a 'tired'/'good' tag. Trend analysis on
// top of it was never built; the tag is logged and dropped.
func RecordBurnoutFeedback(userID uint, feedbackType string) {
	log.Printf("user %d burnout feedback: %s", userID, feedbackType)
}
