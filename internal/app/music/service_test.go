package musicservice

import (
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fitlife/fitlife_backend/internal/adapter/music"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	token     string
	tokenErr  error
	playlists []music.Playlist
	searchErr error

	gotToken   string
	gotQuery   string
	gotLimit   int
	searchHits int
}

func (f *fakeProvider) Token(context.Context) (string, error) {
	return f.token, f.tokenErr
}

func (f *fakeProvider) SearchPlaylists(_ context.Context, token, query string, limit int) ([]music.Playlist, error) {
	f.searchHits++
	f.gotToken = token
	f.gotQuery = query
	f.gotLimit = limit
	return f.playlists, f.searchErr
}

func TestPlaylistsPassesTokenAndQuery(t *testing.T) {
	p := &fakeProvider{
		token: "tok-123",
		playlists: []music.Playlist{
			{Name: "Beast Mode", EmbedURL: "https://open.spotify.com/embed/playlist/abc"},
		},
	}
	s := New(p, slog.Default())

	got, err := s.Playlists(context.Background(), "running", 10)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Beast Mode", got[0].Name)

	assert.Equal(t, "tok-123", p.gotToken)
	assert.Equal(t, "running", p.gotQuery)
	assert.Equal(t, 10, p.gotLimit)
}

func TestPlaylistsDefaultKeyword(t *testing.T) {
	p := &fakeProvider{token: "tok-123"}
	s := New(p, slog.Default())

	_, err := s.Playlists(context.Background(), "", 10)
	require.NoError(t, err)
	assert.Equal(t, DefaultKeyword, p.gotQuery)
}

func TestPlaylistsTokenFailureSkipsSearch(t *testing.T) {
	tokenErr := errors.New("auth refused")
	p := &fakeProvider{tokenErr: tokenErr}
	s := New(p, slog.Default())

	_, err := s.Playlists(context.Background(), "running", 10)
	assert.ErrorIs(t, err, tokenErr)
	assert.Zero(t, p.searchHits)
}

func TestPlaylistsNoResultsPassesThrough(t *testing.T) {
	p := &fakeProvider{token: "tok-123", searchErr: music.ErrNoResults}
	s := New(p, slog.Default())

	_, err := s.Playlists(context.Background(), "obscure", 10)
	assert.ErrorIs(t, err, music.ErrNoResults)
}
