package api

import (
	"errors"
	authservice "github.com/fitlife/fitlife_backend/internal/app/auth"
	"github.com/fitlife/fitlife_backend/internal/app/unitofwork"
	"github.com/fitlife/fitlife_backend/internal/domain/user"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/mileusna/useragent"
	"net/http"
)

func (s *Server) MountAuth() {
	loginRequired := LoginRequired(s.authService.Authorizer)

	authRoutes := s.handler.Group("/auth")

	authRoutes.POST("/login", s.Login)
	authRoutes.POST("/sign-up", s.SignUp)
	authRoutes.POST("/logout", s.Logout, loginRequired)
}

func (s *Server) getAuthUoW() *unitofwork.UnitOfWork[*authservice.AtomicContext] {
	return unitofwork.New[*authservice.AtomicContext](
		s.db,
		authservice.NewAtomicContext,
		s.msgBus,
		s.logger,
	)
}

type loginReq struct {
	Username string `form:"username" json:"username" validate:"required"`
	Password string `form:"password" json:"password" validate:"required,min=8"`
}

type loginResp struct {
	AccessToken string `json:"access_token"`
}

func (s *Server) Login(c echo.Context) error {
	var b loginReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	agent := useragent.Parse(c.Request().UserAgent())

	ipAddress := c.Request().RemoteAddr
	if c.Request().Header.Get("X-Forwarded-For") != "" {
		ipAddress = c.Request().Header.Get("X-Forwarded-For")
	}

	device := user.Device{
		Browser:   agent.Name,
		OS:        agent.OS,
		IPAddress: ipAddress,
		Model:     agent.Device,
	}

	uow := s.getAuthUoW()

	tokens, err := s.authService.Login(c.Request().Context(), uow, device, b.Username, b.Password)
	if err != nil {
		if errors.Is(err, user.ErrInvalidCredentials) || errors.Is(err, user.ErrUserNotFound) {
			return JsonError(c, http.StatusUnauthorized, "incorrect username or password")
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}
	return c.JSON(http.StatusOK, &loginResp{
		AccessToken: tokens.AccessToken,
	})
}

type signUpReq struct {
	Username string `form:"username" json:"username" validate:"required,min=3,max=32"`
	Email    string `form:"email" json:"email" validate:"required,email"`
	Password string `form:"password" json:"password" validate:"required,min=8,max=72"`
}

type signUpResp struct {
	UserID string `json:"user_id"`
}

func (s *Server) SignUp(c echo.Context) error {
	var b signUpReq
	if err := s.bind(c, &b); err != nil {
		return JsonError(c, http.StatusBadRequest, err)
	}

	uow := s.getAuthUoW()

	ctx := c.Request().Context()
	u, err := s.authService.CreateUser(ctx, uow, uuid.New().String(), b.Username, b.Email, b.Password)
	if err != nil {
		if errors.Is(err, user.ErrUsernameDuplicate) {
			return JsonError(c, http.StatusBadRequest, "username already exists")
		}
		if errors.Is(err, user.ErrUserExists) {
			return JsonError(c, http.StatusBadRequest, "user already exists")
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}

	return c.JSON(http.StatusCreated, &signUpResp{UserID: u.UserID})
}

func (s *Server) Logout(c echo.Context) error {
	u := c.Get(KeyCurrentUser).(*authservice.AccessTokenData)

	uow := s.getAuthUoW()
	if err := s.authService.Logout(c.Request().Context(), uow, u.UserID, u.AuthorizationID); err != nil {
		if errors.Is(err, user.ErrUnauthorized) {
			return JsonError(c, http.StatusUnauthorized, "unauthorized")
		}
		return JsonError(c, http.StatusInternalServerError, err)
	}
	return c.NoContent(http.StatusNoContent)
}
