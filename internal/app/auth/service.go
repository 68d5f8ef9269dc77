package auth

import (
	"context"
	"github.com/fitlife/fitlife_backend/internal/app/unitofwork"
	"github.com/fitlife/fitlife_backend/internal/domain/user"
	"log/slog"
)

type Service struct {
	logger     *slog.Logger
	Authorizer *Authorizer
}

func NewService(auth *Authorizer, logger *slog.Logger) *Service {
	return &Service{
		logger:     logger,
		Authorizer: auth,
	}
}

func (s *Service) CreateUser(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID string,
	username string,
	email string,
	password string,
) (u *user.User, err error) {
	err = uow.Atomic(ctx, func(a *AtomicContext) error {
		u = user.NewUser(userID, username, email, password, s.Authorizer)
		if err := a.UserStorage.Add(a.Context(), u); err != nil {
			return err
		}

		return a.Commit()
	})
	return
}

func (s *Service) Login(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	device user.Device,
	username string,
	password string,
) (tokens Tokens, err error) {
	err = uow.Atomic(ctx, func(a *AtomicContext) error {
		u, err := a.UserStorage.GetByUsername(a.Context(), username)
		if err != nil {
			return err
		}

		auth, err := u.Authorize(s.Authorizer, password, device)
		if err != nil {
			return err
		}

		accessToken, err := s.Authorizer.GenerateAccessToken(u, auth)
		if err != nil {
			return err
		}

		if err := a.UserStorage.Persist(a.Context(), u); err != nil {
			return err
		}

		tokens = Tokens{AccessToken: accessToken}
		return a.Commit()
	})
	return
}

func (s *Service) GetUser(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID string,
) (u *user.User, outErr error) {
	outErr = uow.Atomic(ctx, func(a *AtomicContext) error {
		var err error
		if u, err = a.UserStorage.GetByID(a.Context(), userID); err != nil {
			return err
		}
		return a.Commit()
	})
	return
}

func (s *Service) Logout(
	ctx context.Context,
	uow *unitofwork.UnitOfWork[*AtomicContext],
	userID string,
	authorizationID string,
) error {
	return uow.Atomic(ctx, func(a *AtomicContext) error {
		u, err := a.UserStorage.GetByID(a.Context(), userID)
		if err != nil {
			return err
		}

		if err := u.Logout(authorizationID); err != nil {
			return err
		}

		if err := a.UserStorage.Persist(a.Context(), u); err != nil {
			return err
		}

		return a.Commit()
	})
}

type Tokens struct {
	AccessToken string
}
