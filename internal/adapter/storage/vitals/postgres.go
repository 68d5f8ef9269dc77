package vitalsstorage

import (
	"context"
	"database/sql"
	"errors"
	"github.com/fitlife/fitlife_backend/internal/adapter/storage"
	"github.com/fitlife/fitlife_backend/internal/adapter/storage/pgutil"
	"github.com/fitlife/fitlife_backend/internal/domain"
	"github.com/fitlife/fitlife_backend/internal/domain/vitals"
	"github.com/leporo/sqlf"
)

type PostgresStorage struct {
	db   storage.DBContext
	seen *pgutil.SeenSet[*vitals.Vitals]
}

func NewPostgresStorage(db storage.DBContext) *PostgresStorage {
	return &PostgresStorage{
		db:   db,
		seen: pgutil.NewSeenSet[*vitals.Vitals](),
	}
}

// Upsert updates the user's vitals row if one exists and inserts otherwise.
func (s *PostgresStorage) Upsert(ctx context.Context, v *vitals.Vitals) error {
	upd := sqlf.Update("user_vitals").
		Set("name", v.Name).
		Set("age", v.Age).
		Set("weight_kg", v.WeightKg).
		Set("height_cm", v.HeightCm).
		Set("systolic", v.Systolic).
		Set("diastolic", v.Diastolic).
		Set("updated_at", v.UpdatedAt).
		Where("user_id = ?", v.UserID)

	res, err := upd.ExecAndClose(ctx, s.db)
	if err != nil {
		return storage.InternalError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storage.InternalError(err)
	}

	if affected == 0 {
		ins := sqlf.InsertInto("user_vitals").
			Set("user_id", v.UserID).
			Set("name", v.Name).
			Set("age", v.Age).
			Set("weight_kg", v.WeightKg).
			Set("height_cm", v.HeightCm).
			Set("systolic", v.Systolic).
			Set("diastolic", v.Diastolic).
			Set("updated_at", v.UpdatedAt)

		if _, err := ins.ExecAndClose(ctx, s.db); err != nil {
			return storage.InternalError(err)
		}
	}

	s.seen.Mark(v.UserID, v)

	return nil
}

func (s *PostgresStorage) UpsertReport(ctx context.Context, r *vitals.Report) error {
	upd := sqlf.Update("user_reports").
		Set("bmi", r.BMI).
		Set("category", string(r.Category)).
		Set("max_heartrate", r.MaxHeartRate).
		Set("pulse_low", r.PulseLow).
		Set("pulse_high", r.PulseHigh).
		Set("updated_at", r.UpdatedAt).
		Where("user_id = ?", r.UserID)

	res, err := upd.ExecAndClose(ctx, s.db)
	if err != nil {
		return storage.InternalError(err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return storage.InternalError(err)
	}

	if affected == 0 {
		ins := sqlf.InsertInto("user_reports").
			Set("user_id", r.UserID).
			Set("bmi", r.BMI).
			Set("category", string(r.Category)).
			Set("max_heartrate", r.MaxHeartRate).
			Set("pulse_low", r.PulseLow).
			Set("pulse_high", r.PulseHigh).
			Set("updated_at", r.UpdatedAt)

		if _, err := ins.ExecAndClose(ctx, s.db); err != nil {
			return storage.InternalError(err)
		}
	}

	return nil
}

func (s *PostgresStorage) GetByUser(ctx context.Context, userID string) (*vitals.Vitals, error) {
	var v vitals.Vitals

	q := sqlf.From("user_vitals").
		Where("user_id = ?", userID).
		Select("user_id").To(&v.UserID).
		Select("name").To(&v.Name).
		Select("age").To(&v.Age).
		Select("weight_kg").To(&v.WeightKg).
		Select("height_cm").To(&v.HeightCm).
		Select("systolic").To(&v.Systolic).
		Select("diastolic").To(&v.Diastolic).
		Select("updated_at").To(&v.UpdatedAt)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, vitals.ErrVitalsNotFound
		}
		return nil, storage.InternalError(err)
	}

	return &v, nil
}

func (s *PostgresStorage) GetReportByUser(ctx context.Context, userID string) (*vitals.Report, error) {
	var r vitals.Report
	var category string

	q := sqlf.From("user_reports").
		Where("user_id = ?", userID).
		Select("user_id").To(&r.UserID).
		Select("bmi").To(&r.BMI).
		Select("category").To(&category).
		Select("max_heartrate").To(&r.MaxHeartRate).
		Select("pulse_low").To(&r.PulseLow).
		Select("pulse_high").To(&r.PulseHigh).
		Select("updated_at").To(&r.UpdatedAt)

	if err := q.QueryRowAndClose(ctx, s.db); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, vitals.ErrReportNotFound
		}
		return nil, storage.InternalError(err)
	}

	r.Category = vitals.Category(category)
	return &r, nil
}

func (s *PostgresStorage) CollectEvents() []domain.Event {
	return s.seen.CollectEvents()
}

func (s *PostgresStorage) Close() error {
	return nil
}
