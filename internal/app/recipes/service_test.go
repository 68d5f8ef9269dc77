package recipeservice

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"

	"github.com/fitlife/fitlife_backend/internal/adapter/catalog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testFallbackURL = "https://example.com/fallback.jpg"

type fakeCatalog struct {
	results []catalog.RawRecipe
	err     error
}

func (f *fakeCatalog) SearchRecipes(context.Context, string) ([]catalog.RawRecipe, error) {
	return f.results, f.err
}

type fakeImageFinder struct {
	failFor string
}

func (f *fakeImageFinder) FindImage(_ context.Context, query, keyword string) (string, error) {
	if query == f.failFor {
		return "", errors.New("quota exceeded")
	}
	return fmt.Sprintf("https://i.example.com/%s/%s.jpg", keyword, query), nil
}

func TestSearchReshapesResults(t *testing.T) {
	cat := &fakeCatalog{results: []catalog.RawRecipe{
		{
			Title:        "Berry Smoothie",
			Ingredients:  "1 cup berries|1 banana|1 cup yogurt",
			Servings:     "2 servings",
			Instructions: "Blend until smooth.",
		},
	}}
	s := New(cat, &fakeImageFinder{}, testFallbackURL, slog.Default())

	results, err := s.Search(context.Background(), "smoothie", 3)
	require.NoError(t, err)
	require.Len(t, results, 1)

	got := results[0]
	assert.Equal(t, "Berry Smoothie", got.Title)
	assert.Equal(t, []string{"1 cup berries", "1 banana", "1 cup yogurt"}, got.Ingredients)
	assert.Equal(t, "https://i.example.com/food/Berry Smoothie.jpg", got.ImageURL)

	encodedID, err := got.ID.Encode()
	require.NoError(t, err)
	assert.Equal(t, "Berry Smoothie&1 cup berries|1 banana|1 cup yogurt", encodedID)
}

func TestSearchAppliesLimit(t *testing.T) {
	cat := &fakeCatalog{results: []catalog.RawRecipe{
		{Title: "A", Ingredients: "x"},
		{Title: "B", Ingredients: "x"},
		{Title: "C", Ingredients: "x"},
		{Title: "D", Ingredients: "x"},
	}}
	s := New(cat, &fakeImageFinder{}, testFallbackURL, slog.Default())

	results, err := s.Search(context.Background(), "anything", 3)
	require.NoError(t, err)
	assert.Len(t, results, 3)
}

func TestSearchImageFallbackPerRecipe(t *testing.T) {
	cat := &fakeCatalog{results: []catalog.RawRecipe{
		{Title: "A", Ingredients: "x"},
		{Title: "B", Ingredients: "x"},
	}}
	s := New(cat, &fakeImageFinder{failFor: "A"}, testFallbackURL, slog.Default())

	results, err := s.Search(context.Background(), "anything", 3)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, testFallbackURL, results[0].ImageURL)
	assert.Equal(t, "https://i.example.com/food/B.jpg", results[1].ImageURL)
}

func TestSearchNoResults(t *testing.T) {
	s := New(&fakeCatalog{}, &fakeImageFinder{}, testFallbackURL, slog.Default())

	_, err := s.Search(context.Background(), "nothing matches", 3)
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestSearchProviderFailureDegradesToNoResults(t *testing.T) {
	cat := &fakeCatalog{err: fmt.Errorf("%w: status 500", catalog.ErrUnavailable)}
	s := New(cat, &fakeImageFinder{}, testFallbackURL, slog.Default())

	_, err := s.Search(context.Background(), "anything", 3)
	assert.ErrorIs(t, err, ErrNoResults)
}
