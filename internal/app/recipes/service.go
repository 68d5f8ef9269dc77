package recipeservice

import (
	"context"
	"errors"
	"fmt"
	"github.com/fitlife/fitlife_backend/internal/adapter/catalog"
	"github.com/fitlife/fitlife_backend/internal/domain/recipe"
	"log/slog"
)

var (
	// ErrNoResults distinguishes "the provider had nothing for this query"
	// from an empty success, so the caller can render a targeted message.
	ErrNoResults = errors.New("no recipes found")
)

type Catalog interface {
	SearchRecipes(ctx context.Context, query string) ([]catalog.RawRecipe, error)
}

type ImageFinder interface {
	FindImage(ctx context.Context, query, keyword string) (string, error)
}

type Service struct {
	catalog     Catalog
	images      ImageFinder
	fallbackURL string
	logger      *slog.Logger
}

func New(cat Catalog, images ImageFinder, fallbackURL string, logger *slog.Logger) *Service {
	return &Service{
		catalog:     cat,
		images:      images,
		fallbackURL: fallbackURL,
		logger:      logger,
	}
}

// Search queries the recipe provider and reshapes up to limit results:
// composite id from the raw values, ingredients split into a list, and a
// best-effort food image per recipe. Provider failure and an empty result
// set both surface as ErrNoResults.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]recipe.Recipe, error) {
	raw, err := s.catalog.SearchRecipes(ctx, query)
	if err != nil {
		if errors.Is(err, catalog.ErrUnavailable) {
			s.logger.Warn("recipe provider unavailable", "query", query, "error", err)
			return nil, fmt.Errorf("%w: %q", ErrNoResults, query)
		}
		return nil, err
	}

	if len(raw) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoResults, query)
	}

	if limit > 0 && len(raw) > limit {
		raw = raw[:limit]
	}

	results := make([]recipe.Recipe, 0, len(raw))
	for _, r := range raw {
		imageURL, err := s.images.FindImage(ctx, r.Title, "food")
		if err != nil {
			s.logger.Warn("image lookup failed, using fallback",
				"recipe", r.Title, "error", err)
			imageURL = s.fallbackURL
		}

		results = append(results, recipe.Recipe{
			ID: recipe.ID{
				Title:          r.Title,
				RawIngredients: r.Ingredients,
			},
			Title:        r.Title,
			Ingredients:  recipe.SplitIngredients(r.Ingredients),
			Servings:     r.Servings,
			Instructions: r.Instructions,
			ImageURL:     imageURL,
		})
	}

	return results, nil
}
