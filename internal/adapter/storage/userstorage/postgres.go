package userstorage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"github.com/fitlife/fitlife_backend/internal/adapter/storage"
	"github.com/fitlife/fitlife_backend/internal/adapter/storage/pgutil"
	"github.com/fitlife/fitlife_backend/internal/domain"
	"github.com/fitlife/fitlife_backend/internal/domain/user"
	"github.com/leporo/sqlf"
	"github.com/r3labs/diff"
	"time"
)

type PostgresStorage struct {
	db   storage.DBContext
	seen *pgutil.SeenSet[*user.User]
}

func NewPostgresStorage(db storage.DBContext) *PostgresStorage {
	return &PostgresStorage{
		db:   db,
		seen: pgutil.NewSeenSet[*user.User](),
	}
}

func (s *PostgresStorage) Add(ctx context.Context, u *user.User) error {
	q := sqlf.InsertInto("users").
		Set("user_id", u.UserID).
		Set("username", u.Username).
		Set("email", u.Email).
		Set("password_hash", u.PasswordHash).
		Set("created_at", u.CreatedAt).
		Set("updated_at", u.UpdatedAt)

	if _, err := q.ExecAndClose(ctx, s.db); err != nil {
		if pgutil.ViolatesConstraint(err, "users_pkey") {
			return user.ErrUserExists
		}
		if pgutil.ViolatesConstraint(err, "users_username_key") {
			return user.ErrUsernameDuplicate
		}
		if pgutil.ViolatesConstraint(err, "users_email_key") {
			return fmt.Errorf("%w: email is not unique", user.ErrUserExists)
		}
		return storage.InternalError(err)
	}

	for _, a := range u.Authorizations {
		if err := s.addAuth(ctx, u.UserID, a); err != nil {
			return err
		}
	}

	s.seen.Mark(u.UserID, u)

	return nil
}

func (s *PostgresStorage) addAuth(ctx context.Context, userID string, a *user.Authorization) error {
	addAuth := sqlf.InsertInto("authorizations").
		Set("authorization_id", a.ID).
		Set("logout_at", a.LogoutAt).
		Set("created_at", a.CreatedAt).
		Set("valid_until", a.ValidUntil).
		Set("user_id", userID)

	addDevice := sqlf.InsertInto("devices").
		Set("authorization_id", a.ID).
		Set("os", a.Device.OS).
		Set("device_model", a.Device.Model).
		Set("ip_address", a.Device.IPAddress).
		Set("browser", a.Device.Browser)

	if _, err := addAuth.ExecAndClose(ctx, s.db); err != nil {
		return storage.InternalError(err)
	}

	if _, err := addDevice.ExecAndClose(ctx, s.db); err != nil {
		return storage.InternalError(err)
	}

	return nil
}

func (s *PostgresStorage) get(
	ctx context.Context,
	whereClause string,
	whereArgs ...any,
) ([]*user.User, error) {
	var tmp userWithAuthRow

	q := sqlf.From("users u").
		LeftJoin("authorizations a", "u.user_id = a.user_id").
		LeftJoin("devices d", "d.authorization_id = a.authorization_id").
		Where(whereClause, whereArgs...).
		Select("u.user_id").To(&tmp.UserID).
		Select("u.username").To(&tmp.Username).
		Select("u.email").To(&tmp.Email).
		Select("u.password_hash").To(&tmp.PasswordHash).
		Select("u.created_at").To(&tmp.CreatedAt).
		Select("u.updated_at").To(&tmp.UpdatedAt).
		Select("a.authorization_id").To(&tmp.AuthorizationID).
		Select("a.valid_until").To(&tmp.AuthValidUntil).
		Select("a.logout_at").To(&tmp.LogoutAt).
		Select("a.created_at").To(&tmp.AuthCreatedAt).
		Select("d.os").To(&tmp.OS).
		Select("d.browser").To(&tmp.Browser).
		Select("d.device_model").To(&tmp.Model).
		Select("d.ip_address").To(&tmp.IPAddress)

	var fetchedRows []userWithAuthRow

	err := q.QueryAndClose(ctx, s.db, func(rows *sql.Rows) {
		fetchedRows = append(fetchedRows, tmp)
	})

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, storage.InternalError(err)
	}

	return rowsToDomain(fetchedRows), nil
}

func (s *PostgresStorage) getOne(ctx context.Context, whereClause string, whereArgs ...any) (*user.User, error) {
	users, err := s.get(ctx, whereClause, whereArgs...)
	if err != nil {
		return nil, err
	}
	if len(users) == 0 {
		return nil, user.ErrUserNotFound
	}

	s.seen.Mark(users[0].UserID, users[0])
	return users[0], nil
}

func (s *PostgresStorage) GetByID(ctx context.Context, userID string) (*user.User, error) {
	return s.getOne(ctx, "u.user_id = ?", userID)
}

func (s *PostgresStorage) GetByUsername(ctx context.Context, username string) (*user.User, error) {
	return s.getOne(ctx, "u.username = ?", username)
}

func (s *PostgresStorage) GetByEmail(ctx context.Context, email string) (*user.User, error) {
	return s.getOne(ctx, "u.email = ?", email)
}

func (s *PostgresStorage) Persist(ctx context.Context, u *user.User) error {
	dbState, err := s.GetByID(ctx, u.UserID)
	if err != nil {
		return err
	}

	if log, _ := diff.Diff(dbState, u); len(log) != 0 {
		q := sqlf.Update("users").Where("user_id = ?", u.UserID)
		q = pgutil.MakeUpdateQuery(q, log)

		res, err := q.ExecAndClose(ctx, s.db)
		if err := pgutil.AssertUpdated(res, err, user.ErrUserNotFound); err != nil {
			return fmt.Errorf("can't persist user: %w", err)
		}
	}

	dbAuthSet := make(map[string]*user.Authorization)
	for _, a := range dbState.Authorizations {
		dbAuthSet[a.ID] = a
	}

	for _, a := range u.Authorizations {
		if _, ok := dbAuthSet[a.ID]; !ok {
			if err := s.addAuth(ctx, u.UserID, a); err != nil {
				return err
			}
		} else {
			if err := s.persistAuth(ctx, dbAuthSet[a.ID], a); err != nil {
				return err
			}
		}
	}

	s.seen.Mark(u.UserID, u)

	return nil
}

func (s *PostgresStorage) persistAuth(ctx context.Context, source, changed *user.Authorization) error {
	log, _ := diff.Diff(source, changed)
	if len(log) == 0 {
		return nil
	}

	q := sqlf.Update("authorizations").Where("authorization_id = ?", source.ID)
	q = pgutil.MakeUpdateQuery(q, log)

	if _, err := q.ExecAndClose(ctx, s.db); err != nil {
		return storage.InternalError(err)
	}
	return nil
}

func (s *PostgresStorage) CollectEvents() []domain.Event {
	return s.seen.CollectEvents()
}

func (s *PostgresStorage) Close() error {
	return nil
}

type userWithAuthRow struct {
	UserID       string
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
	UpdatedAt    time.Time

	AuthorizationID *string
	LogoutAt        *time.Time
	AuthCreatedAt   *time.Time
	AuthValidUntil  *time.Time

	IPAddress *string
	Browser   *string
	OS        *string
	Model     *string
}

func rowsToDomain(rows []userWithAuthRow) []*user.User {
	usersMap := make(map[string]*user.User)
	users := make([]*user.User, 0, 1)

	for _, row := range rows {
		u, ok := usersMap[row.UserID]
		if !ok {
			u = &user.User{
				UserID:         row.UserID,
				Username:       row.Username,
				Email:          row.Email,
				PasswordHash:   row.PasswordHash,
				CreatedAt:      row.CreatedAt,
				UpdatedAt:      row.UpdatedAt,
				Authorizations: make([]*user.Authorization, 0),
			}
			usersMap[row.UserID] = u
			users = append(users, u)
		}
		if row.AuthorizationID != nil {
			a := &user.Authorization{
				ID:         *row.AuthorizationID,
				CreatedAt:  *row.AuthCreatedAt,
				ValidUntil: *row.AuthValidUntil,
				LogoutAt:   row.LogoutAt,
			}
			if row.Browser != nil {
				a.Device = user.Device{
					Browser:   *row.Browser,
					OS:        *row.OS,
					IPAddress: *row.IPAddress,
					Model:     *row.Model,
				}
			}
			u.Authorizations = append(u.Authorizations, a)
		}
	}

	return users
}
