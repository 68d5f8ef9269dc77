package workoutservice

import (
	"context"
	"errors"
	"fmt"
	"github.com/fitlife/fitlife_backend/internal/adapter/storage"
	favouritestorage "github.com/fitlife/fitlife_backend/internal/adapter/storage/favourites"
	"github.com/fitlife/fitlife_backend/internal/domain"
	"github.com/fitlife/fitlife_backend/internal/domain/exercise"
)

type FavouriteStorage interface {
	Add(ctx context.Context, f *exercise.Favourite) error
	ListByUser(ctx context.Context, userID string) ([]*exercise.Favourite, error)
	Remove(ctx context.Context, userID string, id exercise.ID) error
	CollectEvents() []domain.Event
	Close() error
}

type AtomicContext struct {
	ctx              context.Context
	db               storage.DBContext
	FavouriteStorage FavouriteStorage
}

func NewAtomicContext(ctx context.Context, db storage.DBContext) (*AtomicContext, error) {
	return &AtomicContext{
		ctx:              ctx,
		db:               db,
		FavouriteStorage: favouritestorage.NewPostgresStorage(db),
	}, nil
}

func (a *AtomicContext) Context() context.Context {
	return a.ctx
}

func (a *AtomicContext) Commit() error {
	return a.db.Commit()
}

func (a *AtomicContext) Close() (err error) {
	if closeErr := a.FavouriteStorage.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}

	if err != nil {
		err = errors.Join(fmt.Errorf("failed to close storage"), err)
	}

	return err
}

func (a *AtomicContext) CollectEvents() []domain.Event {
	return a.FavouriteStorage.CollectEvents()
}
