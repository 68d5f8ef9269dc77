package images

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrLookupFailed = errors.New("image lookup failed")
)

// FallbackURL is substituted whenever a lookup fails; callers should degrade
// to it instead of failing their batch.
const FallbackURL = "https://qph.cf2.quoracdn.net/main-qimg-300ba7d9f401c5687b383d35c4296f4c-lq"

// Client fetches a single illustrative image per query from the Google
// custom search API.
type Client struct {
	baseURL  string
	apiKey   string
	engineID string
	http     *http.Client
	logger   *slog.Logger
}

type Option func(*Client)

func HTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

func NewClient(baseURL, apiKey, engineID string, logger *slog.Logger, opt ...Option) *Client {
	c := &Client{
		baseURL:  baseURL,
		apiKey:   apiKey,
		engineID: engineID,
		http:     &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
	}
	for _, opt := range opt {
		opt(c)
	}
	return c
}

// FindImage returns the link of the first image matching "<query> <keyword>".
// Any transport error, non-2xx status or empty result set comes back as
// ErrLookupFailed.
func (c *Client) FindImage(ctx context.Context, query, keyword string) (string, error) {
	q := url.Values{}
	q.Set("q", query+" "+keyword)
	q.Set("key", c.apiKey)
	q.Set("cx", c.engineID)
	q.Set("searchType", "image")
	q.Set("num", "1")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+q.Encode(), nil)
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return "", errors.Join(fmt.Errorf("image search request failed: %w", err), ErrLookupFailed)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("image search responded with an error",
			"query", query, "status", resp.StatusCode)
		return "", errors.Join(
			fmt.Errorf("image search error %d", resp.StatusCode),
			ErrLookupFailed,
		)
	}

	var result struct {
		Items []struct {
			Link string `json:"link"`
		} `json:"items"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", errors.Join(fmt.Errorf("failed to decode image search response: %w", err), ErrLookupFailed)
	}

	if len(result.Items) == 0 {
		return "", fmt.Errorf("%w: no images for %q", ErrLookupFailed, query)
	}

	return result.Items[0].Link, nil
}
