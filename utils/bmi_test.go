package utils

import (
	"math"
	"testing"
)

func TestCalculateBMI(t *testing.T) {
	bmi, err := CalculateBMI(180, 75)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(bmi-23.148) > 0.001 {
		t.Errorf("expected ~23.148 got %f", bmi)
	}
}

func TestCalculateBMIRejectsImplausibleInput(t *testing.T) {
	if _, err := CalculateBMI(0, 75); err == nil {
		t.Error("zero height must error")
	}
	if _, err := CalculateBMI(180, 500); err == nil {
		t.Error("implausible weight must error")
	}
}

func TestBMICategory(t *testing.T) {
	cases := []struct {
		bmi  float64
		want string
	}{
		{17.0, "Underweight"},
		{22.0, "Normal weight"},
		{27.5, "Overweight"},
		{32.0, "Obesity class I"},
		{37.0, "Obesity class II"},
		{42.0, "Obesity class III"},
	}
	for _, tc := range cases {
		if got := BMICategory(tc.bmi); got != tc.want {
			t.Errorf("BMICategory(%.1f) = %q, want %q", tc.bmi, got, tc.want)
		}
	}
}
