package vitalsservice

import (
	"context"
	"github.com/fitlife/fitlife_backend/internal/app/unitofwork"
	"github.com/fitlife/fitlife_backend/internal/domain/vitals"
	"log/slog"
)

type Service struct {
	logger *slog.Logger
}

func New(logger *slog.Logger) *Service {
	return &Service{logger: logger}
}

// SubmitHealthTest stores the submitted measurements and the report computed
// from them, replacing any previous submission, and returns the report.
func (s *Service) SubmitHealthTest(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID string,
	name string,
	age int,
	weightKg float64,
	heightCm int,
	systolic int,
	diastolic int,
) (report vitals.Report, err error) {
	err = uow.Atomic(ctx, func(a *AtomicContext) error {
		v, err := vitals.New(userID, name, age, weightKg, heightCm, systolic, diastolic)
		if err != nil {
			return err
		}

		if err := a.VitalsStorage.Upsert(a.Context(), v); err != nil {
			return err
		}

		report = v.Report()
		if err := a.VitalsStorage.UpsertReport(a.Context(), &report); err != nil {
			return err
		}

		return a.Commit()
	})
	return
}

func (s *Service) GetVitals(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID string,
) (v *vitals.Vitals, outErr error) {
	outErr = uow.Atomic(ctx, func(a *AtomicContext) error {
		var err error
		if v, err = a.VitalsStorage.GetByUser(a.Context(), userID); err != nil {
			return err
		}
		return a.Commit()
	})
	return
}

func (s *Service) GetReport(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID string,
) (r *vitals.Report, outErr error) {
	outErr = uow.Atomic(ctx, func(a *AtomicContext) error {
		var err error
		if r, err = a.VitalsStorage.GetReportByUser(a.Context(), userID); err != nil {
			return err
		}
		return a.Commit()
	})
	return
}

// CaloriesBurned estimates calories for an activity using the weight from
// the user's stored vitals. Users without a health test get
// vitals.ErrVitalsNotFound; activities outside the MET table get
// vitals.ErrUnknownActivity.
func (s *Service) CaloriesBurned(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID string,
	activity string,
	minutes int,
) (calories float64, err error) {
	err = uow.Atomic(ctx, func(a *AtomicContext) error {
		v, err := a.VitalsStorage.GetByUser(a.Context(), userID)
		if err != nil {
			return err
		}

		if calories, err = vitals.CaloriesBurned(activity, v.WeightKg, minutes); err != nil {
			return err
		}
		return a.Commit()
	})
	return
}
