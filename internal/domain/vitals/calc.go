package vitals

import (
	"errors"
	"math"
	"strings"
)

var (
	ErrUnknownActivity = errors.New("unknown activity")
)

type Category string

// Categories follow the original screening bands. The bands do not cover the
// whole systolic/diastolic plane: a reading like 125/95 falls between them
// and classifies as CategoryUnclassified.
const (
	CategoryUnclassified    Category = ""
	CategoryLow             Category = "Low Blood Pressure"
	CategoryNormal          Category = "Normal Blood Pressure"
	CategoryElevated        Category = "Elevated Blood Pressure"
	CategoryPreHypertension Category = "Pre-Hypertension"
	CategoryStage1          Category = "Stage 1 Hypertension"
	CategoryStage2          Category = "Stage 2 Hypertension"
)

// activityMETs maps lower-case activity names to their MET value.
var activityMETs = map[string]float64{
	"walking":       4.5,
	"swimming":      7,
	"jogging":       7,
	"stretching":    4,
	"running":       9,
	"yoga":          3,
	"weightlifting": 8,
}

// BMI computes body mass index from weight in kilograms and height in
// centimeters, rounded to two decimal places. Height must be positive.
func BMI(weightKg float64, heightCm int) float64 {
	heightM := float64(heightCm) / 100
	return round2(weightKg / (heightM * heightM))
}

func ClassifyBloodPressure(systolic, diastolic int) Category {
	switch {
	case systolic < 110 && diastolic < 70:
		return CategoryLow
	case systolic < 120 && diastolic <= 80:
		return CategoryNormal
	case systolic >= 120 && systolic < 130 && diastolic <= 90:
		return CategoryElevated
	case systolic >= 130 && systolic < 140 && diastolic <= 90:
		return CategoryPreHypertension
	case systolic >= 140 && systolic < 160 && diastolic >= 90:
		return CategoryStage1
	case systolic >= 160 && diastolic > 100:
		return CategoryStage2
	default:
		return CategoryUnclassified
	}
}

func MaxHeartRate(age int) int {
	return 220 - age
}

// GoalPulse returns the 50%..85% training range of the given maximum heart
// rate. Half values round away from zero (math.Round), so a max heart rate
// of 190 yields (95, 162).
func GoalPulse(maxHeartRate int) (low, high int) {
	low = int(math.Round(0.5 * float64(maxHeartRate)))
	high = int(math.Round(0.85 * float64(maxHeartRate)))
	return low, high
}

// CaloriesBurned estimates calories spent on an activity using its MET value
// and the original formula MET * lb / 200 per minute, where pounds are
// approximated as kg / 2.2. Activity names match case-insensitively;
// an activity outside the table returns ErrUnknownActivity.
func CaloriesBurned(activity string, weightKg float64, minutes int) (float64, error) {
	met, ok := activityMETs[strings.ToLower(activity)]
	if !ok {
		return 0, ErrUnknownActivity
	}

	perMinute := met * (weightKg / 2.2) / 200
	return round2(perMinute * float64(minutes)), nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
