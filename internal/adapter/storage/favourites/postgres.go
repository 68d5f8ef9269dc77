package favouritestorage

import (
	"context"
	"database/sql"
	"errors"
	"github.com/fitlife/fitlife_backend/internal/adapter/storage"
	"github.com/fitlife/fitlife_backend/internal/adapter/storage/pgutil"
	"github.com/fitlife/fitlife_backend/internal/domain"
	"github.com/fitlife/fitlife_backend/internal/domain/exercise"
	"github.com/leporo/sqlf"
	"github.com/samber/lo"
	"time"
)

type PostgresStorage struct {
	db   storage.DBContext
	seen *pgutil.SeenSet[*exercise.Favourite]
}

func NewPostgresStorage(db storage.DBContext) *PostgresStorage {
	return &PostgresStorage{
		db:   db,
		seen: pgutil.NewSeenSet[*exercise.Favourite](),
	}
}

func (s *PostgresStorage) Add(ctx context.Context, f *exercise.Favourite) error {
	encodedID, err := f.Exercise.Encode()
	if err != nil {
		return err
	}

	q := sqlf.InsertInto("favourites").
		Set("user_id", f.UserID).
		Set("exercise_id", encodedID).
		Set("exercise_name", f.Exercise.Name).
		Set("exercise_type", f.Exercise.Type).
		Set("muscle_group", f.Exercise.Muscle).
		Set("difficulty", f.Exercise.Difficulty).
		Set("equipment", f.Equipment).
		Set("instructions", f.Instructions).
		Set("image_url", f.ImageURL).
		Set("added_at", f.AddedAt)

	if _, err := q.ExecAndClose(ctx, s.db); err != nil {
		if pgutil.ViolatesConstraint(err, "favourites_pkey") {
			return exercise.ErrFavouriteExists
		}
		return storage.InternalError(err)
	}

	s.seen.Mark(f.UserID+"/"+encodedID, f)

	return nil
}

func (s *PostgresStorage) ListByUser(ctx context.Context, userID string) ([]*exercise.Favourite, error) {
	var row favouriteRow

	q := sqlf.From("favourites").
		Where("user_id = ?", userID).
		OrderBy("added_at DESC").
		Select("user_id").To(&row.UserID).
		Select("exercise_name").To(&row.Name).
		Select("exercise_type").To(&row.Type).
		Select("muscle_group").To(&row.Muscle).
		Select("difficulty").To(&row.Difficulty).
		Select("equipment").To(&row.Equipment).
		Select("instructions").To(&row.Instructions).
		Select("image_url").To(&row.ImageURL).
		Select("added_at").To(&row.AddedAt)

	var fetched []favouriteRow

	err := q.QueryAndClose(ctx, s.db, func(rows *sql.Rows) {
		fetched = append(fetched, row)
	})
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, storage.InternalError(err)
	}

	return lo.Map(fetched, func(r favouriteRow, _ int) *exercise.Favourite {
		return &exercise.Favourite{
			UserID: r.UserID,
			Exercise: exercise.ID{
				Name:       r.Name,
				Type:       r.Type,
				Muscle:     r.Muscle,
				Difficulty: r.Difficulty,
			},
			Equipment:    r.Equipment,
			Instructions: r.Instructions,
			ImageURL:     r.ImageURL,
			AddedAt:      r.AddedAt,
		}
	}), nil
}

func (s *PostgresStorage) Remove(ctx context.Context, userID string, id exercise.ID) error {
	encodedID, err := id.Encode()
	if err != nil {
		return err
	}

	q := sqlf.DeleteFrom("favourites").
		Where("user_id = ?", userID).
		Where("exercise_id = ?", encodedID)

	res, err := q.ExecAndClose(ctx, s.db)
	return pgutil.AssertUpdated(res, err, exercise.ErrFavouriteNotFound)
}

func (s *PostgresStorage) CollectEvents() []domain.Event {
	return s.seen.CollectEvents()
}

func (s *PostgresStorage) Close() error {
	return nil
}

type favouriteRow struct {
	UserID       string
	Name         string
	Type         string
	Muscle       string
	Difficulty   string
	Equipment    string
	Instructions string
	ImageURL     string
	AddedAt      time.Time
}
