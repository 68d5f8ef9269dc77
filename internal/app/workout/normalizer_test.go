package workoutservice

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fitlife/fitlife_backend/internal/adapter/catalog"
	"github.com/fitlife/fitlife_backend/internal/domain/exercise"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFallbackURL = "https://example.com/fallback.jpg"

type fakeImageFinder struct {
	urls map[string]string
	err  error
}

func (f *fakeImageFinder) FindImage(_ context.Context, query, _ string) (string, error) {
	if url, ok := f.urls[query]; ok {
		return url, nil
	}
	if f.err != nil {
		return "", f.err
	}
	return "https://example.com/default.jpg", nil
}

func testNormalizer(images ImageFinder) *Normalizer {
	return NewNormalizer(images, testFallbackURL, slog.Default())
}

func TestNormalizeTransforms(t *testing.T) {
	n := testNormalizer(&fakeImageFinder{
		urls: map[string]string{"Hyperextensions": "https://example.com/hyper.jpg"},
	})

	raw := []catalog.RawExercise{{
		Name:         "Hyperextensions",
		Type:         "strength",
		Muscle:       "lower_back",
		Equipment:    "body_only",
		Difficulty:   "beginner",
		Instructions: "Lie face down on a hyperextension bench.",
	}}

	results, err := n.Normalize(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, "Hyperextensions&strength&lower_back&beginner", got.ID)
	assert.Equal(t, "Lower back", got.Muscle)
	assert.Equal(t, "Body only", got.Equipment)
	assert.Equal(t, "Beginner", got.Difficulty)
	assert.Equal(t, "https://example.com/hyper.jpg", got.ImageURL)

	// the id splits back to the raw field values
	id, err := exercise.ParseID(got.ID)
	require.NoError(t, err)
	assert.Equal(t, "lower_back", id.Muscle)
	assert.Equal(t, "beginner", id.Difficulty)
}

func TestNormalizePreservesOrderAndCount(t *testing.T) {
	n := testNormalizer(&fakeImageFinder{})

	raw := []catalog.RawExercise{
		{Name: "A", Type: "cardio", Muscle: "quadriceps", Difficulty: "beginner"},
		{Name: "B", Type: "strength", Muscle: "chest", Difficulty: "expert"},
		{Name: "C", Type: "stretching", Muscle: "calves", Difficulty: "intermediate"},
	}

	results, err := n.Normalize(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "A", results[0].Name)
	assert.Equal(t, "B", results[1].Name)
	assert.Equal(t, "C", results[2].Name)
}

func TestNormalizeImageFallback(t *testing.T) {
	// only B's lookup fails; the rest keep their images
	n := testNormalizer(&fakeImageFinder{
		urls: map[string]string{
			"A": "https://example.com/a.jpg",
			"C": "https://example.com/c.jpg",
		},
		err: errors.New("quota exceeded"),
	})

	raw := []catalog.RawExercise{
		{Name: "A", Type: "cardio", Muscle: "quadriceps", Difficulty: "beginner"},
		{Name: "B", Type: "strength", Muscle: "chest", Difficulty: "expert"},
		{Name: "C", Type: "stretching", Muscle: "calves", Difficulty: "intermediate"},
	}

	results, err := n.Normalize(context.Background(), raw)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "https://example.com/a.jpg", results[0].ImageURL)
	assert.Equal(t, testFallbackURL, results[1].ImageURL)
	assert.Equal(t, "https://example.com/c.jpg", results[2].ImageURL)
}

func TestNormalizeFailsOnUnsafeField(t *testing.T) {
	n := testNormalizer(&fakeImageFinder{})

	raw := []catalog.RawExercise{
		{Name: "Push & Pull", Type: "strength", Muscle: "chest", Difficulty: "beginner"},
	}

	_, err := n.Normalize(context.Background(), raw)
	assert.ErrorIs(t, err, exercise.ErrUnsafeField)
}
