package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"github.com/fitlife/fitlife_backend/internal/adapter/api"
	"github.com/fitlife/fitlife_backend/internal/adapter/catalog"
	"github.com/fitlife/fitlife_backend/internal/adapter/images"
	"github.com/fitlife/fitlife_backend/internal/adapter/music"
	"github.com/fitlife/fitlife_backend/internal/adapter/storage"
	authservice "github.com/fitlife/fitlife_backend/internal/app/auth"
	"github.com/fitlife/fitlife_backend/internal/app/messagebus"
	musicservice "github.com/fitlife/fitlife_backend/internal/app/music"
	recipeservice "github.com/fitlife/fitlife_backend/internal/app/recipes"
	vitalsservice "github.com/fitlife/fitlife_backend/internal/app/vitals"
	workoutservice "github.com/fitlife/fitlife_backend/internal/app/workout"
	"github.com/fitlife/fitlife_backend/internal/config"
	"github.com/fitlife/fitlife_backend/internal/domain"
	"github.com/fitlife/fitlife_backend/internal/domain/exercise"
	"github.com/fitlife/fitlife_backend/internal/domain/user"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/leporo/sqlf"
	"golang.org/x/crypto/bcrypt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "config/config.yaml", "path to config file")
	flag.Parse()

	cfg := config.MustLoad(configPath)
	logger := initLogger(cfg)

	bus := messagebus.New(logger)
	bus.Register(user.EventCreated, func(event domain.Event) error {
		logger.Info("processed user created event")
		return nil
	})
	bus.Register(exercise.EventFavouriteAdded, func(event domain.Event) error {
		logger.Info("processed favourite added event")
		return nil
	})

	sqlf.SetDialect(sqlf.PostgreSQL)

	db, err := sql.Open("pgx", cfg.DB.DSN)
	if err != nil {
		panic("failed to connect database: " + err.Error())
	}

	authorizer := &authservice.Authorizer{
		Cost:             bcrypt.DefaultCost,
		Secret:           cfg.JWT.Secret,
		AccessTokenTTL:   cfg.JWT.AccessTokenTTL,
		AuthorizationTTL: cfg.JWT.AuthorizationTTL,
	}

	catalogClient := catalog.NewClient(cfg.Catalog.BaseURL, cfg.Catalog.APIKey, logger)
	imageClient := images.NewClient(cfg.Images.BaseURL, cfg.Images.APIKey, cfg.Images.SearchEngineID, logger)
	musicClient := music.NewClient(
		cfg.Music.AccountsURL, cfg.Music.APIURL,
		cfg.Music.ClientID, cfg.Music.ClientSecret,
		logger,
	)

	normalizer := workoutservice.NewNormalizer(imageClient, images.FallbackURL, logger)

	server := api.NewServer(
		api.Addr(cfg.Server.Host, cfg.Server.Port),
		api.Logger(logger),
		api.AuthService(authservice.NewService(authorizer, logger)),
		api.VitalsService(vitalsservice.New(logger)),
		api.WorkoutService(workoutservice.New(catalogClient, normalizer, logger)),
		api.RecipeService(recipeservice.New(catalogClient, imageClient, images.FallbackURL, logger)),
		api.MusicService(musicservice.New(musicClient, logger)),
		api.DBContext(storage.DB{DB: db}),
		api.MessageBus(bus),
	)

	ctx := context.Background()

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error)

	go func() {
		defer close(errCh)
		errCh <- server.Start()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error("server was not shutdown gracefully", "error", err)
		}
	case err := <-errCh:
		if err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error("server closed with unexpected error", "error", err)
			}
		}
	}
	bus.Close()
	logger.Info("server shutdown")
}

func initLogger(cfg *config.Config) *slog.Logger {
	var handler slog.Handler
	switch cfg.App.Env {
	case config.Development:
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: true,
			Level:     slog.LevelDebug,
		})
	case config.Production:
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelInfo,
		})
	default:
		panic("invalid env")
	}

	return slog.New(handler)
}
