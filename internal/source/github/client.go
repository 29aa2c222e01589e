// Package github fetches profile summaries and contribution calendars from
// the GitHub-stats API.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"progress_tracker/internal/payload"
)

// Config holds GitHub source configuration.
type Config struct {
	BaseURL string
	Timeout time.Duration
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	logger     *slog.Logger
}

func New(cfg Config, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		baseURL:    cfg.BaseURL,
		logger:     logger.With("source", "github"),
	}
}

// Summary fetches the profile summary for a username.
func (c *Client) Summary(ctx context.Context, username string) (payload.Object, error) {
	return c.get(ctx, "/api", username)
}

// Contributions fetches the daily contribution calendar for a username. The
// response nests weeks of contributionDays {date, contributionCount}.
func (c *Client) Contributions(ctx context.Context, username string) (payload.Object, error) {
	return c.get(ctx, "/contri", username)
}

func (c *Client) get(ctx context.Context, path, username string) (payload.Object, error) {
	u := fmt.Sprintf("%s%s?username=%s", c.baseURL, path, url.QueryEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	// 404 means the provider has no data for this handle, not a failure.
	if resp.StatusCode == http.StatusNotFound {
		c.logger.Debug("no data for user", "path", path, "username", username)
		return payload.Object{}, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return payload.Object(body), nil
}
