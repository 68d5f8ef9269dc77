package workoutservice

import (
	"context"
	"errors"
	"github.com/fitlife/fitlife_backend/internal/adapter/catalog"
	"github.com/fitlife/fitlife_backend/internal/app/unitofwork"
	"github.com/fitlife/fitlife_backend/internal/domain/exercise"
	"log/slog"
)

var (
	ErrEmptyFilter = errors.New("at least one search filter is required")
)

type Catalog interface {
	SearchExercises(ctx context.Context, f catalog.Filter) ([]catalog.RawExercise, error)
}

type Service struct {
	catalog    Catalog
	normalizer *Normalizer
	logger     *slog.Logger
}

func New(cat Catalog, normalizer *Normalizer, logger *slog.Logger) *Service {
	return &Service{
		catalog:    cat,
		normalizer: normalizer,
		logger:     logger,
	}
}

// Search queries the catalog and normalizes up to limit results.
func (s *Service) Search(ctx context.Context, f catalog.Filter, limit int) ([]Exercise, error) {
	if f.Empty() {
		return nil, ErrEmptyFilter
	}

	raw, err := s.catalog.SearchExercises(ctx, f)
	if err != nil {
		return nil, err
	}

	if limit > 0 && len(raw) > limit {
		raw = raw[:limit]
	}

	return s.normalizer.Normalize(ctx, raw)
}

// Selection carries one search result the user chose to favourite, as posted
// back by the results page.
type Selection struct {
	ExerciseID   string
	Equipment    string
	Instructions string
	ImageURL     string
}

// AddFavourites saves the selected exercises, skipping ones the user already
// has (the composite id is the dedup key). A malformed id aborts the batch.
func (s *Service) AddFavourites(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID string,
	selections []Selection,
) error {
	return uow.Atomic(ctx, func(a *AtomicContext) error {
		for _, sel := range selections {
			id, err := exercise.ParseID(sel.ExerciseID)
			if err != nil {
				return err
			}

			f := exercise.NewFavourite(userID, id, sel.Equipment, sel.Instructions, sel.ImageURL)
			if err := a.FavouriteStorage.Add(a.Context(), f); err != nil {
				if errors.Is(err, exercise.ErrFavouriteExists) {
					continue
				}
				return err
			}
		}
		return a.Commit()
	})
}

func (s *Service) ListFavourites(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID string,
) (favourites []*exercise.Favourite, outErr error) {
	outErr = uow.Atomic(ctx, func(a *AtomicContext) error {
		var err error
		if favourites, err = a.FavouriteStorage.ListByUser(a.Context(), userID); err != nil {
			return err
		}
		return a.Commit()
	})
	return
}

// RemoveFavourites deletes the given favourites. Unlike the add path a
// missing favourite is an error, not a skip: the caller selected it from
// their own list, so absence means the request is stale.
func (s *Service) RemoveFavourites(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID string,
	exerciseIDs []string,
) error {
	return uow.Atomic(ctx, func(a *AtomicContext) error {
		for _, rawID := range exerciseIDs {
			id, err := exercise.ParseID(rawID)
			if err != nil {
				return err
			}

			if err := a.FavouriteStorage.Remove(a.Context(), userID, id); err != nil {
				return err
			}
		}
		return a.Commit()
	})
}
