package music

import (
	"context"
	"encoding/base64"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbedURL(t *testing.T) {
	assert.Equal(t,
		"https://open.spotify.com/embed/playlist/37i9dQZF1DXcBWIGoYBM5M",
		EmbedURL("https://open.spotify.com/playlist/37i9dQZF1DXcBWIGoYBM5M"),
	)

	// too short to carry the prefix, left untouched
	assert.Equal(t, "https://x", EmbedURL("https://x"))
}

func TestToken(t *testing.T) {
	accounts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/token", r.URL.Path)

		wantCreds := base64.StdEncoding.EncodeToString([]byte("id:secret"))
		assert.Equal(t, "Basic "+wantCreds, r.Header.Get("Authorization"))
		assert.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token": "tok-123"}`))
	}))
	defer accounts.Close()

	c := NewClient(accounts.URL, "http://unused", "id", "secret", slog.Default())

	token, err := c.Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestTokenUnavailable(t *testing.T) {
	accounts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer accounts.Close()

	c := NewClient(accounts.URL, "http://unused", "id", "secret", slog.Default())

	_, err := c.Token(context.Background())
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestSearchPlaylists(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search", r.URL.Path)
		assert.Equal(t, "Bearer tok-123", r.Header.Get("Authorization"))
		assert.Equal(t, "running", r.URL.Query().Get("q"))
		assert.Equal(t, "playlist", r.URL.Query().Get("type"))
		assert.Equal(t, "5", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"playlists": {
				"items": [
					{
						"name": "Running Hits",
						"description": "High energy",
						"external_urls": {"spotify": "https://open.spotify.com/playlist/abc123"},
						"images": [{"url": "https://i.example.com/1.jpg"}, {"url": "https://i.example.com/2.jpg"}]
					},
					{
						"name": "No Image",
						"description": "",
						"external_urls": {"spotify": "https://open.spotify.com/playlist/def456"},
						"images": []
					}
				]
			}
		}`))
	}))
	defer api.Close()

	c := NewClient("http://unused", api.URL, "id", "secret", slog.Default())

	playlists, err := c.SearchPlaylists(context.Background(), "tok-123", "running", 5)
	require.NoError(t, err)
	require.Len(t, playlists, 2)

	assert.Equal(t, "Running Hits", playlists[0].Name)
	assert.Equal(t, "https://open.spotify.com/embed/playlist/abc123", playlists[0].EmbedURL)
	assert.Equal(t, "https://i.example.com/1.jpg", playlists[0].ImageURL)
	assert.Empty(t, playlists[1].ImageURL)
}

func TestSearchPlaylistsNoResults(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"playlists": {"items": []}}`))
	}))
	defer api.Close()

	c := NewClient("http://unused", api.URL, "id", "secret", slog.Default())

	_, err := c.SearchPlaylists(context.Background(), "tok-123", "polka dubstep", 5)
	assert.ErrorIs(t, err, ErrNoResults)
}

func TestSearchPlaylistsUnavailable(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer api.Close()

	c := NewClient("http://unused", api.URL, "id", "secret", slog.Default())

	_, err := c.SearchPlaylists(context.Background(), "tok-123", "running", 5)
	assert.ErrorIs(t, err, ErrUnavailable)
}
