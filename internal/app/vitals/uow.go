package vitalsservice

import (
	"context"
	"errors"
	"fmt"
	"github.com/fitlife/fitlife_backend/internal/adapter/storage"
	vitalsstorage "github.com/fitlife/fitlife_backend/internal/adapter/storage/vitals"
	"github.com/fitlife/fitlife_backend/internal/domain"
	"github.com/fitlife/fitlife_backend/internal/domain/vitals"
)

type VitalsStorage interface {
	Upsert(ctx context.Context, v *vitals.Vitals) error
	UpsertReport(ctx context.Context, r *vitals.Report) error
	GetByUser(ctx context.Context, userID string) (*vitals.Vitals, error)
	GetReportByUser(ctx context.Context, userID string) (*vitals.Report, error)
	CollectEvents() []domain.Event
	Close() error
}

type AtomicContext struct {
	ctx           context.Context
	db            storage.DBContext
	VitalsStorage VitalsStorage
}

func NewAtomicContext(ctx context.Context, db storage.DBContext) (*AtomicContext, error) {
	return &AtomicContext{
		ctx:           ctx,
		db:            db,
		VitalsStorage: vitalsstorage.NewPostgresStorage(db),
	}, nil
}

func (a *AtomicContext) Context() context.Context {
	return a.ctx
}

func (a *AtomicContext) Commit() error {
	return a.db.Commit()
}

func (a *AtomicContext) Close() (err error) {
	if closeErr := a.VitalsStorage.Close(); closeErr != nil {
		err = errors.Join(err, closeErr)
	}

	if err != nil {
		err = errors.Join(fmt.Errorf("failed to close storage"), err)
	}

	return err
}

func (a *AtomicContext) CollectEvents() []domain.Event {
	return a.VitalsStorage.CollectEvents()
}
