package services

import (
	"reflect"
	"testing"
	"time"

	"github.com/Gaganabm30/fitconnect/models"
)

func workoutOn(day int, intensity string) models.Workout {
	base := time.Date(2025, time.March, 1, 8, 0, 0, 0, time.UTC)
	return models.Workout{
		Type:      "Cardio",
		Intensity: intensity,
		Duration:  30,
		Calories:  300,
		Date:      base.AddDate(0, 0, day),
	}
}

func TestComputeBurnoutHighRisk(t *testing.T) {
	// 6 High sessions plus one Medium, one per day, no rest days.
	var workouts []models.Workout
	for day := 0; day < 6; day++ {
		workouts = append(workouts, workoutOn(day, "High"))
	}
	workouts = append(workouts, workoutOn(6, "Medium"))

	snap := ComputeBurnout(workouts)

	if snap.BurnoutLevel != models.BurnoutHigh {
		t.Fatalf("expected High Risk got %q", snap.BurnoutLevel)
	}
	if snap.RestDays != 0 {
		t.Errorf("expected 0 rest days got %d", snap.RestDays)
	}
	if snap.HighIntensityCount != 6 {
		t.Errorf("expected 6 high-intensity got %d", snap.HighIntensityCount)
	}
	if snap.ConsistencyScore != 100 {
		t.Errorf("expected consistency 100 got %d", snap.ConsistencyScore)
	}
}

func TestComputeBurnoutModerateRisk(t *testing.T) {
	// 7 workouts squeezed into 6 days: one rest day, no high-intensity spike.
	var workouts []models.Workout
	for day := 0; day < 6; day++ {
		workouts = append(workouts, workoutOn(day, "Medium"))
	}
	workouts = append(workouts, workoutOn(0, "Low")) // second session on day 0

	snap := ComputeBurnout(workouts)

	if snap.BurnoutLevel != models.BurnoutModerate {
		t.Fatalf("expected Moderate Risk got %q", snap.BurnoutLevel)
	}
	if snap.WeeklyWorkoutCount != 7 {
		t.Errorf("expected 7 workouts got %d", snap.WeeklyWorkoutCount)
	}
	if snap.RestDays != 1 {
		t.Errorf("expected 1 rest day got %d", snap.RestDays)
	}
}

func TestComputeBurnoutLowRisk(t *testing.T) {
	workouts := []models.Workout{
		workoutOn(0, "High"),
		workoutOn(2, "Medium"),
		workoutOn(4, "Low"),
	}

	snap := ComputeBurnout(workouts)

	if snap.BurnoutLevel != models.BurnoutLow {
		t.Fatalf("expected Low Risk got %q", snap.BurnoutLevel)
	}
	if snap.RestDays != 4 {
		t.Errorf("expected 4 rest days got %d", snap.RestDays)
	}
	// round(100 * 3/7) = 43
	if snap.ConsistencyScore != 43 {
		t.Errorf("expected consistency 43 got %d", snap.ConsistencyScore)
	}
}

func TestComputeBurnoutEmptyWeek(t *testing.T) {
	snap := ComputeBurnout(nil)

	if snap.BurnoutLevel != models.BurnoutLow {
		t.Fatalf("expected Low Risk got %q", snap.BurnoutLevel)
	}
	if snap.RestDays != 7 || snap.ConsistencyScore != 0 || snap.WeeklyWorkoutCount != 0 {
		t.Errorf("unexpected snapshot for empty week: %+v", snap)
	}
}

func TestComputeBurnoutIsDeterministic(t *testing.T) {
	var workouts []models.Workout
	for day := 0; day < 7; day++ {
		workouts = append(workouts, workoutOn(day, "High"))
	}

	first := ComputeBurnout(workouts)
	second := ComputeBurnout(workouts)

	if !reflect.DeepEqual(first, second) {
		t.Fatalf("evaluator not idempotent: %+v vs %+v", first, second)
	}
}

func TestRecoveryActionsLookup(t *testing.T) {
	high := RecoveryActionsFor(models.BurnoutHigh)
	if len(high) != 3 || high[0] != "Take a full rest day immediately." {
		t.Errorf("unexpected high-risk actions: %v", high)
	}

	moderate := RecoveryActionsFor(models.BurnoutModerate)
	if len(moderate) != 3 || moderate[0] != "Reduce workout intensity for the next 2 days." {
		t.Errorf("unexpected moderate-risk actions: %v", moderate)
	}

	low := RecoveryActionsFor(models.BurnoutLow)
	if len(low) != 3 || low[0] != "Great job! Maintain your current routine." {
		t.Errorf("unexpected low-risk actions: %v", low)
	}

	// Unknown levels fall through to the low-risk list.
	if !reflect.DeepEqual(RecoveryActionsFor("whatever"), low) {
		t.Error("unknown level should map to the default action list")
	}
}
