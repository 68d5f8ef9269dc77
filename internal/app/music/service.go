package musicservice

import (
	"context"
	"github.com/fitlife/fitlife_backend/internal/adapter/music"
	"log/slog"
)

const DefaultKeyword = "workout"

type Provider interface {
	Token(ctx context.Context) (string, error)
	SearchPlaylists(ctx context.Context, token, query string, limit int) ([]music.Playlist, error)
}

type Service struct {
	provider Provider
	logger   *slog.Logger
}

func New(provider Provider, logger *slog.Logger) *Service {
	return &Service{
		provider: provider,
		logger:   logger,
	}
}

// Playlists fetches a fresh client-credentials token and searches playlists
// by keyword. music.ErrNoResults passes through so the handler can show a
// targeted message.
func (s *Service) Playlists(ctx context.Context, keyword string, limit int) ([]music.Playlist, error) {
	if keyword == "" {
		keyword = DefaultKeyword
	}

	token, err := s.provider.Token(ctx)
	if err != nil {
		return nil, err
	}

	return s.provider.SearchPlaylists(ctx, token, keyword, limit)
}
