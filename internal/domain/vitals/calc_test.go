package vitals

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBMI(t *testing.T) {
	tests := []struct {
		name     string
		weightKg float64
		heightCm int
		want     float64
	}{
		{"reference", 70, 175, 22.86},
		{"heavy", 88, 175, 28.73},
		{"tall", 70, 190, 19.39},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, BMI(tt.weightKg, tt.heightCm), 0.001)
		})
	}
}

func TestClassifyBloodPressure(t *testing.T) {
	tests := []struct {
		systolic  int
		diastolic int
		want      Category
	}{
		{105, 65, CategoryLow},
		{115, 75, CategoryNormal},
		{119, 80, CategoryNormal},
		{125, 85, CategoryElevated},
		{135, 88, CategoryPreHypertension},
		{150, 95, CategoryStage1},
		{170, 105, CategoryStage2},
		// the original bands leave gaps: 125/95 matches nothing
		{125, 95, CategoryUnclassified},
		{135, 95, CategoryUnclassified},
	}

	for _, tt := range tests {
		got := ClassifyBloodPressure(tt.systolic, tt.diastolic)
		assert.Equal(t, tt.want, got, "systolic=%d diastolic=%d", tt.systolic, tt.diastolic)
	}
}

func TestMaxHeartRate(t *testing.T) {
	assert.Equal(t, 190, MaxHeartRate(30))
	assert.Equal(t, 175, MaxHeartRate(45))
}

func TestGoalPulse(t *testing.T) {
	// 0.85*190 = 161.5 rounds away from zero to 162
	low, high := GoalPulse(190)
	assert.Equal(t, 95, low)
	assert.Equal(t, 162, high)

	low, high = GoalPulse(175)
	assert.Equal(t, 88, low)
	assert.Equal(t, 149, high)
}

func TestCaloriesBurned(t *testing.T) {
	// MET 9, 88 kg / 2.2 = 40 lb, 9*40/200*30 = 54
	got, err := CaloriesBurned("Running", 88, 30)
	require.NoError(t, err)
	assert.InDelta(t, 54.0, got, 0.001)

	got, err = CaloriesBurned("yoga", 66, 60)
	require.NoError(t, err)
	assert.InDelta(t, 27.0, got, 0.001)
}

func TestCaloriesBurnedCaseInsensitive(t *testing.T) {
	upper, err := CaloriesBurned("WALKING", 70, 45)
	require.NoError(t, err)

	lower, err := CaloriesBurned("walking", 70, 45)
	require.NoError(t, err)

	assert.Equal(t, lower, upper)
}

func TestCaloriesBurnedUnknownActivity(t *testing.T) {
	_, err := CaloriesBurned("unicycling", 70, 10)
	assert.ErrorIs(t, err, ErrUnknownActivity)
}
