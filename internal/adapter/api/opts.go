package api

import (
	"github.com/fitlife/fitlife_backend/internal/adapter/storage"
	authservice "github.com/fitlife/fitlife_backend/internal/app/auth"
	musicservice "github.com/fitlife/fitlife_backend/internal/app/music"
	recipeservice "github.com/fitlife/fitlife_backend/internal/app/recipes"
	"github.com/fitlife/fitlife_backend/internal/app/unitofwork"
	vitalsservice "github.com/fitlife/fitlife_backend/internal/app/vitals"
	workoutservice "github.com/fitlife/fitlife_backend/internal/app/workout"
	"log/slog"
	"net"
	"strconv"
)

type Option func(*Server)

func Addr(host string, port int) Option {
	return func(s *Server) {
		s.addr = net.JoinHostPort(host, strconv.Itoa(port))
	}
}

func Logger(l *slog.Logger) Option {
	return func(s *Server) {
		s.logger = l
	}
}

func DBContext(db storage.DB) Option {
	return func(s *Server) {
		s.db = db
	}
}

func AuthService(service *authservice.Service) Option {
	return func(s *Server) {
		s.authService = service
	}
}

func VitalsService(service *vitalsservice.Service) Option {
	return func(s *Server) {
		s.vitalsService = service
	}
}

func WorkoutService(service *workoutservice.Service) Option {
	return func(s *Server) {
		s.workoutService = service
	}
}

func RecipeService(service *recipeservice.Service) Option {
	return func(s *Server) {
		s.recipeService = service
	}
}

func MusicService(service *musicservice.Service) Option {
	return func(s *Server) {
		s.musicService = service
	}
}

func MessageBus(bus unitofwork.MessageBus) Option {
	return func(s *Server) {
		s.msgBus = bus
	}
}
