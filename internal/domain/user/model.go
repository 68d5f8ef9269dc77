package user

import (
	"errors"
	"fmt"
	"github.com/fitlife/fitlife_backend/internal/domain"
	"time"
)

var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserExists         = errors.New("user already exists")
	ErrUsernameDuplicate  = fmt.Errorf("%w: username is not unique", ErrUserExists)
	ErrInvalidCredentials = errors.New("username or password is invalid")
	ErrUnauthorized       = errors.New("unauthorized")
)

const (
	EventCreated  = "user.created"
	EventNewLogin = "user.login"
	EventLogout   = "user.logout"
)

type Authorizer interface {
	Hash(password string) string
	Authorize(u *User, password string, dev Device) (*Authorization, error)
}

type Device struct {
	Browser   string `diff:"browser"`
	OS        string `diff:"os"`
	IPAddress string `diff:"ip_address"`
	Model     string `diff:"model"`
}

type Authorization struct {
	ID         string     `diff:"-"`
	CreatedAt  time.Time  `diff:"-"`
	ValidUntil time.Time  `diff:"valid_until"`
	LogoutAt   *time.Time `diff:"logout_at"`
	Device     Device     `diff:"-"`
}

func (a *Authorization) IsActive() bool {
	return time.Now().Before(a.ValidUntil) && a.LogoutAt == nil
}

type User struct {
	domain.Aggregate `diff:"-"`
	UserID           string           `diff:"-"`
	Username         string           `diff:"username"`
	Email            string           `diff:"email"`
	PasswordHash     string           `diff:"password_hash"`
	CreatedAt        time.Time        `diff:"-"`
	UpdatedAt        time.Time        `diff:"updated_at"`
	Authorizations   []*Authorization `diff:"-"`
}

func NewUser(
	userID string,
	username string,
	email string,
	password string,
	hasher Authorizer,
) *User {
	now := time.Now().UTC()
	u := &User{
		UserID:       userID,
		Username:     username,
		Email:        email,
		PasswordHash: hasher.Hash(password),
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	u.PushEvent(&CreatedEvent{
		At:       u.CreatedAt,
		UserID:   u.UserID,
		Username: u.Username,
		Email:    u.Email,
	})
	return u
}

func (u *User) Authorize(a Authorizer, password string, dev Device) (*Authorization, error) {
	auth, err := a.Authorize(u, password, dev)
	if err != nil {
		return nil, err
	}

	u.Authorizations = append(u.Authorizations, auth)

	u.PushEvent(LoginEvent{
		At:              time.Now().UTC(),
		UserID:          u.UserID,
		AuthorizationID: auth.ID,
		Device:          auth.Device,
	})

	return auth, nil
}

func (u *User) GetAuthByID(authID string) *Authorization {
	for _, auth := range u.Authorizations {
		if auth.ID == authID {
			return auth
		}
	}
	return nil
}

func (u *User) Logout(authID string) error {
	auth := u.GetAuthByID(authID)
	if auth == nil {
		return fmt.Errorf("%w: provided authorization not found", ErrUnauthorized)
	}

	if auth.LogoutAt != nil {
		return fmt.Errorf("%w: authorization already closed", ErrUnauthorized)
	}

	now := time.Now().UTC()
	auth.LogoutAt = &now

	u.PushEvent(LogoutEvent{
		At:              now,
		UserID:          u.UserID,
		AuthorizationID: auth.ID,
	})

	return nil
}

type CreatedEvent struct {
	At       time.Time
	UserID   string
	Username string
	Email    string
}

func (u CreatedEvent) Type() string {
	return EventCreated
}

func (u CreatedEvent) PublishedAt() time.Time {
	return u.At
}

type LoginEvent struct {
	At              time.Time
	UserID          string
	AuthorizationID string
	Device          Device
}

func (u LoginEvent) Type() string {
	return EventNewLogin
}

func (u LoginEvent) PublishedAt() time.Time {
	return u.At
}

type LogoutEvent struct {
	At              time.Time
	UserID          string
	AuthorizationID string
}

func (u LogoutEvent) Type() string {
	return EventLogout
}

func (u LogoutEvent) PublishedAt() time.Time {
	return u.At
}
