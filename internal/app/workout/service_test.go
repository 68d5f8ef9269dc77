package workoutservice

import (
	"context"
	"log/slog"
	"testing"

	"github.com/fitlife/fitlife_backend/internal/adapter/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCatalog struct {
	results []catalog.RawExercise
	err     error
	gotF    catalog.Filter
}

func (f *fakeCatalog) SearchExercises(_ context.Context, filter catalog.Filter) ([]catalog.RawExercise, error) {
	f.gotF = filter
	return f.results, f.err
}

func TestSearchRequiresFilter(t *testing.T) {
	s := New(&fakeCatalog{}, testNormalizer(&fakeImageFinder{}), slog.Default())

	_, err := s.Search(context.Background(), catalog.Filter{}, 10)
	assert.ErrorIs(t, err, ErrEmptyFilter)
}

func TestSearchAppliesLimit(t *testing.T) {
	cat := &fakeCatalog{results: []catalog.RawExercise{
		{Name: "A", Type: "cardio", Muscle: "quadriceps", Difficulty: "beginner"},
		{Name: "B", Type: "cardio", Muscle: "quadriceps", Difficulty: "beginner"},
		{Name: "C", Type: "cardio", Muscle: "quadriceps", Difficulty: "beginner"},
	}}
	s := New(cat, testNormalizer(&fakeImageFinder{}), slog.Default())

	results, err := s.Search(context.Background(), catalog.Filter{Muscle: "quadriceps"}, 2)
	require.NoError(t, err)
	assert.Len(t, results, 2)
	assert.Equal(t, "quadriceps", cat.gotF.Muscle)
}

func TestSearchZeroLimitKeepsAll(t *testing.T) {
	cat := &fakeCatalog{results: []catalog.RawExercise{
		{Name: "A", Type: "cardio", Muscle: "quadriceps", Difficulty: "beginner"},
		{Name: "B", Type: "cardio", Muscle: "quadriceps", Difficulty: "beginner"},
	}}
	s := New(cat, testNormalizer(&fakeImageFinder{}), slog.Default())

	results, err := s.Search(context.Background(), catalog.Filter{Type: "cardio"}, 0)
	require.NoError(t, err)
	assert.Len(t, results, 2)
}
