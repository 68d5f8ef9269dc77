package api

import (
	"context"
	"errors"
	"fmt"
	"github.com/fitlife/fitlife_backend/internal/adapter/storage"
	authservice "github.com/fitlife/fitlife_backend/internal/app/auth"
	musicservice "github.com/fitlife/fitlife_backend/internal/app/music"
	recipeservice "github.com/fitlife/fitlife_backend/internal/app/recipes"
	"github.com/fitlife/fitlife_backend/internal/app/unitofwork"
	vitalsservice "github.com/fitlife/fitlife_backend/internal/app/vitals"
	workoutservice "github.com/fitlife/fitlife_backend/internal/app/workout"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	slogecho "github.com/samber/slog-echo"
	"log/slog"
	"time"
)

type Server struct {
	handler        *echo.Echo
	logger         *slog.Logger
	addr           string
	db             storage.DB
	authService    *authservice.Service
	vitalsService  *vitalsservice.Service
	workoutService *workoutservice.Service
	recipeService  *recipeservice.Service
	musicService   *musicservice.Service
	msgBus         unitofwork.MessageBus
	validator      *validator.Validate
}

func NewServer(opt ...Option) *Server {
	e := echo.New()

	e.Server.WriteTimeout = 10 * time.Second
	e.Server.ReadTimeout = 10 * time.Second
	e.Server.IdleTimeout = 10 * time.Second
	e.Server.ReadHeaderTimeout = 5 * time.Second
	e.Server.MaxHeaderBytes = 4096

	v := validator.New(validator.WithRequiredStructEnabled())

	s := &Server{
		handler:   e,
		validator: v,
	}

	for _, opt := range opt {
		opt(s)
	}

	e.Use(slogecho.NewWithConfig(s.logger, slogecho.Config{
		DefaultLevel:     slog.LevelInfo,
		ClientErrorLevel: slog.LevelInfo,
		ServerErrorLevel: slog.LevelError,
		WithRequestID:    true,
	}))
	s.Mount()
	return s
}

func (s *Server) Mount() {
	s.MountAuth()
	s.MountVitals()
	s.MountWorkouts()
	s.MountMusic()
	s.MountRecipes()
	s.MountProfile()
}

func (s *Server) Start() error {
	return s.handler.Start(s.addr)
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.handler.Shutdown(ctx)
}

func (s *Server) bind(ctx echo.Context, i interface{}) error {
	if err := ctx.Bind(i); err != nil {
		return fmt.Errorf("bad request")
	}
	if err := s.validator.Struct(i); err != nil {
		var errs validator.ValidationErrors
		if !errors.As(err, &errs) {
			return fmt.Errorf("bad request")
		}
		return fmt.Errorf("%s: %s", errs[0].Field(), errs[0].Error())
	}
	return nil
}
