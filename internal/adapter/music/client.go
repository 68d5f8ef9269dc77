package music

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"
)

var (
	ErrNoResults   = errors.New("no playlists found")
	ErrUnavailable = errors.New("music service unavailable")
)

// sharePrefixLen is the length of "https://open.spotify.com"; the embed
// segment is spliced in right after it. Positional, so a change in the
// platform's share-URL scheme breaks this.
const sharePrefixLen = 24

// Client exchanges client credentials for a bearer token and searches public
// playlists.
type Client struct {
	accountsURL  string
	apiURL       string
	clientID     string
	clientSecret string
	http         *http.Client
	logger       *slog.Logger
}

type Option func(*Client)

func HTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

func NewClient(accountsURL, apiURL, clientID, clientSecret string, logger *slog.Logger, opt ...Option) *Client {
	c := &Client{
		accountsURL:  accountsURL,
		apiURL:       apiURL,
		clientID:     clientID,
		clientSecret: clientSecret,
		http:         &http.Client{Timeout: 10 * time.Second},
		logger:       logger,
	}
	for _, opt := range opt {
		opt(c)
	}
	return c
}

func (c *Client) Token(ctx context.Context) (string, error) {
	creds := base64.StdEncoding.EncodeToString([]byte(c.clientID + ":" + c.clientSecret))

	form := url.Values{}
	form.Set("grant_type", "client_credentials")

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.accountsURL+"/api/token", strings.NewReader(form.Encode()),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Basic "+creds)
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Join(fmt.Errorf("token request failed: %w", err), ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return "", errors.Join(
			fmt.Errorf("token error %d: %s", resp.StatusCode, string(body)),
			ErrUnavailable,
		)
	}

	var result struct {
		AccessToken string `json:"access_token"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Join(fmt.Errorf("failed to decode token response: %w", err), ErrUnavailable)
	}
	return result.AccessToken, nil
}

// Playlist is the display-ready shape of one search result.
type Playlist struct {
	Name        string
	Description string
	EmbedURL    string
	ImageURL    string
}

// SearchPlaylists queries public playlists by keyword. An empty provider
// result surfaces as ErrNoResults so callers can render a targeted message
// instead of an empty page.
func (c *Client) SearchPlaylists(ctx context.Context, token, query string, limit int) ([]Playlist, error) {
	q := url.Values{}
	q.Set("q", query)
	q.Set("type", "playlist")
	q.Set("limit", strconv.Itoa(limit))

	req, err := http.NewRequestWithContext(
		ctx, http.MethodGet, c.apiURL+"/search?"+q.Encode(), nil,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errors.Join(fmt.Errorf("playlist search failed: %w", err), ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, errors.Join(
			fmt.Errorf("playlist search error %d: %s", resp.StatusCode, string(body)),
			ErrUnavailable,
		)
	}

	var result struct {
		Playlists struct {
			Items []struct {
				Name         string `json:"name"`
				Description  string `json:"description"`
				ExternalURLs struct {
					Spotify string `json:"spotify"`
				} `json:"external_urls"`
				Images []struct {
					URL string `json:"url"`
				} `json:"images"`
			} `json:"items"`
		} `json:"playlists"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, errors.Join(fmt.Errorf("failed to decode search response: %w", err), ErrUnavailable)
	}

	if len(result.Playlists.Items) == 0 {
		return nil, fmt.Errorf("%w: %q", ErrNoResults, query)
	}

	playlists := make([]Playlist, 0, len(result.Playlists.Items))
	for _, item := range result.Playlists.Items {
		p := Playlist{
			Name:        item.Name,
			Description: item.Description,
			EmbedURL:    EmbedURL(item.ExternalURLs.Spotify),
		}
		if len(item.Images) > 0 {
			p.ImageURL = item.Images[0].URL
		}
		playlists = append(playlists, p)
	}
	return playlists, nil
}

// EmbedURL rewrites a public share URL into its embeddable form by inserting
// "/embed" after the host part.
func EmbedURL(shareURL string) string {
	if len(shareURL) <= sharePrefixLen {
		return shareURL
	}
	return shareURL[:sharePrefixLen] + "/embed" + shareURL[sharePrefixLen:]
}
