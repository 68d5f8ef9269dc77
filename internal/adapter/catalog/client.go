package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"
)

var (
	ErrUnavailable = errors.New("catalog unavailable")
)

// Client talks to the API Ninjas exercise and recipe endpoints, which share
// one base URL and one key.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
	logger  *slog.Logger
}

type Option func(*Client)

func HTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.http = c
	}
}

func NewClient(baseURL, apiKey string, logger *slog.Logger, opt ...Option) *Client {
	c := &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		http:    &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
	for _, opt := range opt {
		opt(c)
	}
	return c
}

type RawExercise struct {
	Name         string `json:"name"`
	Type         string `json:"type"`
	Muscle       string `json:"muscle"`
	Equipment    string `json:"equipment"`
	Difficulty   string `json:"difficulty"`
	Instructions string `json:"instructions"`
}

// Filter narrows an exercise search; empty fields are omitted from the query.
type Filter struct {
	Type       string
	Muscle     string
	Difficulty string
}

func (f Filter) Empty() bool {
	return f.Type == "" && f.Muscle == "" && f.Difficulty == ""
}

func (c *Client) SearchExercises(ctx context.Context, f Filter) ([]RawExercise, error) {
	q := url.Values{}
	if f.Type != "" {
		q.Set("type", f.Type)
	}
	if f.Muscle != "" {
		q.Set("muscle", f.Muscle)
	}
	if f.Difficulty != "" {
		q.Set("difficulty", f.Difficulty)
	}

	var results []RawExercise
	if err := c.get(ctx, "/exercises", q, &results); err != nil {
		return nil, err
	}
	return results, nil
}

type RawRecipe struct {
	Title string `json:"title"`
	// Ingredients come pipe-delimited in a single string.
	Ingredients  string `json:"ingredients"`
	Servings     string `json:"servings"`
	Instructions string `json:"instructions"`
}

func (c *Client) SearchRecipes(ctx context.Context, query string) ([]RawRecipe, error) {
	q := url.Values{}
	q.Set("query", query)

	var results []RawRecipe
	if err := c.get(ctx, "/recipe", q, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (c *Client) get(ctx context.Context, path string, query url.Values, out any) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("X-Api-Key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Join(fmt.Errorf("catalog request failed: %w", err), ErrUnavailable)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Warn("catalog responded with an error",
			"path", path, "status", resp.StatusCode)
		return errors.Join(
			fmt.Errorf("catalog error %d: %s", resp.StatusCode, string(body)),
			ErrUnavailable,
		)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return errors.Join(fmt.Errorf("failed to decode catalog response: %w", err), ErrUnavailable)
	}
	return nil
}
