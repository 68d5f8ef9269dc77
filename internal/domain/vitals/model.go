package vitals

import (
	"errors"
	"fmt"
	"github.com/fitlife/fitlife_backend/internal/domain"
	"time"
)

var (
	ErrVitalsNotFound = errors.New("vitals not found")
	ErrReportNotFound = errors.New("report not found")
	ErrInvalidVitals  = errors.New("invalid vitals")
)

const (
	EventMeasured = "vitals.measured"
)

// Vitals holds one user's latest self-reported measurements. A user has at
// most one row of vitals; submitting a new health test replaces it.
type Vitals struct {
	domain.Aggregate
	UserID    string
	Name      string
	Age       int
	WeightKg  float64
	HeightCm  int
	Systolic  int
	Diastolic int
	UpdatedAt time.Time
}

func New(
	userID string,
	name string,
	age int,
	weightKg float64,
	heightCm int,
	systolic int,
	diastolic int,
) (*Vitals, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name must not be empty", ErrInvalidVitals)
	}
	if age <= 0 {
		return nil, fmt.Errorf("%w: age must be positive", ErrInvalidVitals)
	}
	if weightKg <= 0 {
		return nil, fmt.Errorf("%w: weight must be positive", ErrInvalidVitals)
	}
	if heightCm <= 0 {
		return nil, fmt.Errorf("%w: height must be positive", ErrInvalidVitals)
	}
	if systolic <= 0 || diastolic <= 0 {
		return nil, fmt.Errorf("%w: blood pressure must be positive", ErrInvalidVitals)
	}

	v := &Vitals{
		UserID:    userID,
		Name:      name,
		Age:       age,
		WeightKg:  weightKg,
		HeightCm:  heightCm,
		Systolic:  systolic,
		Diastolic: diastolic,
		UpdatedAt: time.Now().UTC(),
	}
	v.PushEvent(MeasuredEvent{At: v.UpdatedAt, UserID: userID})
	return v, nil
}

// Report holds the computed health-test outcome for one user.
type Report struct {
	UserID       string
	BMI          float64
	Category     Category
	MaxHeartRate int
	PulseLow     int
	PulseHigh    int
	UpdatedAt    time.Time
}

// Report derives the computed results from the measurements. The constructor
// guarantees height > 0, so BMI cannot divide by zero here.
func (v *Vitals) Report() Report {
	maxHR := MaxHeartRate(v.Age)
	low, high := GoalPulse(maxHR)

	return Report{
		UserID:       v.UserID,
		BMI:          BMI(v.WeightKg, v.HeightCm),
		Category:     ClassifyBloodPressure(v.Systolic, v.Diastolic),
		MaxHeartRate: maxHR,
		PulseLow:     low,
		PulseHigh:    high,
		UpdatedAt:    v.UpdatedAt,
	}
}

type MeasuredEvent struct {
	At     time.Time
	UserID string
}

func (e MeasuredEvent) Type() string {
	return EventMeasured
}

func (e MeasuredEvent) PublishedAt() time.Time {
	return e.At
}
