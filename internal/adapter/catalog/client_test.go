package catalog

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchExercises(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/exercises", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("X-Api-Key"))
		assert.Equal(t, "biceps", r.URL.Query().Get("muscle"))
		assert.Equal(t, "beginner", r.URL.Query().Get("difficulty"))
		assert.False(t, r.URL.Query().Has("type"), "empty filters must be omitted")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"name": "Incline Hammer Curls",
				"type": "strength",
				"muscle": "biceps",
				"equipment": "dumbbell",
				"difficulty": "beginner",
				"instructions": "Seat yourself on an incline bench."
			}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", slog.Default())

	results, err := c.SearchExercises(context.Background(), Filter{Muscle: "biceps", Difficulty: "beginner"})
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Incline Hammer Curls", results[0].Name)
	assert.Equal(t, "dumbbell", results[0].Equipment)
}

func TestSearchExercisesUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "invalid api key", http.StatusForbidden)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "bad-key", slog.Default())

	_, err := c.SearchExercises(context.Background(), Filter{Muscle: "biceps"})
	assert.ErrorIs(t, err, ErrUnavailable)
	assert.ErrorContains(t, err, "403")
}

func TestSearchRecipes(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/recipe", r.URL.Path)
		assert.Equal(t, "smoothie", r.URL.Query().Get("query"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{
				"title": "Berry Smoothie",
				"ingredients": "1 cup berries|1 banana|1 cup yogurt",
				"servings": "2 servings",
				"instructions": "Blend until smooth."
			}
		]`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", slog.Default())

	results, err := c.SearchRecipes(context.Background(), "smoothie")
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Berry Smoothie", results[0].Title)
	assert.Equal(t, "1 cup berries|1 banana|1 cup yogurt", results[0].Ingredients)
}

func TestFilterEmpty(t *testing.T) {
	assert.True(t, Filter{}.Empty())
	assert.False(t, Filter{Type: "cardio"}.Empty())
	assert.False(t, Filter{Muscle: "chest"}.Empty())
	assert.False(t, Filter{Difficulty: "expert"}.Empty())
}
