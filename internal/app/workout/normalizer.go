package workoutservice

import (
	"context"
	"github.com/fitlife/fitlife_backend/internal/adapter/catalog"
	"github.com/fitlife/fitlife_backend/internal/domain/exercise"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"
)

// ImageFinder looks up one illustrative image per query. Lookup failures are
// expected and degrade to a fallback URL per record.
type ImageFinder interface {
	FindImage(ctx context.Context, query, keyword string) (string, error)
}

// Exercise is the display-ready shape of one catalog record.
type Exercise struct {
	ID           string
	Name         string
	Type         string
	Muscle       string
	Difficulty   string
	Equipment    string
	Instructions string
	ImageURL     string
}

// Normalizer reshapes raw catalog records into display-ready exercises:
// composite id from the raw field values, cosmetic capitalization, and a
// best-effort image per record.
type Normalizer struct {
	images      ImageFinder
	fallbackURL string
	logger      *slog.Logger
}

func NewNormalizer(images ImageFinder, fallbackURL string, logger *slog.Logger) *Normalizer {
	return &Normalizer{
		images:      images,
		fallbackURL: fallbackURL,
		logger:      logger,
	}
}

// Normalize processes records in a single pass, preserving input order and
// count. An id that cannot be encoded (a field containing the delimiter)
// fails the whole batch: an ambiguous id would corrupt favourites later.
// A failed image lookup only falls back for its own record.
func (n *Normalizer) Normalize(ctx context.Context, raw []catalog.RawExercise) ([]Exercise, error) {
	results := make([]Exercise, 0, len(raw))

	for _, r := range raw {
		id, err := exercise.ID{
			Name:       r.Name,
			Type:       r.Type,
			Muscle:     r.Muscle,
			Difficulty: r.Difficulty,
		}.Encode()
		if err != nil {
			return nil, err
		}

		imageURL, err := n.images.FindImage(ctx, r.Name, "exercise")
		if err != nil {
			n.logger.Warn("image lookup failed, using fallback",
				"exercise", r.Name, "error", err)
			imageURL = n.fallbackURL
		}

		results = append(results, Exercise{
			ID:           id,
			Name:         r.Name,
			Type:         r.Type,
			Muscle:       capitalize(strings.ReplaceAll(r.Muscle, "_", " ")),
			Difficulty:   capitalize(r.Difficulty),
			Equipment:    capitalize(strings.ReplaceAll(r.Equipment, "_", " ")),
			Instructions: r.Instructions,
			ImageURL:     imageURL,
		})
	}

	return results, nil
}

// capitalize upper-cases the first rune and lower-cases the rest. Not
// title-case: "lower back" becomes "Lower back".
func capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}
