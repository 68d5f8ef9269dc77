package images

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFindImage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "Hyperextensions exercise", r.URL.Query().Get("q"))
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))
		assert.Equal(t, "engine-1", r.URL.Query().Get("cx"))
		assert.Equal(t, "image", r.URL.Query().Get("searchType"))
		assert.Equal(t, "1", r.URL.Query().Get("num"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": [{"link": "https://i.example.com/hyper.jpg"}]}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "engine-1", slog.Default())

	url, err := c.FindImage(context.Background(), "Hyperextensions", "exercise")
	require.NoError(t, err)
	assert.Equal(t, "https://i.example.com/hyper.jpg", url)
}

func TestFindImageHTTPError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "engine-1", slog.Default())

	_, err := c.FindImage(context.Background(), "Squat", "exercise")
	assert.ErrorIs(t, err, ErrLookupFailed)
}

func TestFindImageNoItems(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"items": []}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "test-key", "engine-1", slog.Default())

	_, err := c.FindImage(context.Background(), "Squat", "exercise")
	assert.ErrorIs(t, err, ErrLookupFailed)
}
