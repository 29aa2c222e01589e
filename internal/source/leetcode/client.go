// Package leetcode fetches profiles, language stats, badges and submission
// calendars from the LeetCode-stats API.
package leetcode

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

// Config holds LeetCode source configuration.
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
		logger:     logger.With("source", "leetcode"),
	}
}

// Profile fetches the user profile. The API has renamed this route over time,
// so known spellings are probed in order until one answers.
func (c *Client) Profile(ctx context.Context, username string) (payload.Object, error) {
	paths := []string{
		"/userprofile/" + url.PathEscape(username),
		"/" + url.PathEscape(username),
		"/userProfile/" + url.PathEscape(username),
	}
	for _, p := range paths {
		obj, found, err := c.get(ctx, c.baseURL+p)
		if err != nil {
			return nil, err
		}
		if found {
			return obj, nil
		}
	}
	return nil, fmt.Errorf("profile endpoint not found for %q", username)
}

// LanguageStats fetches solved-problem counts per language.
func (c *Client) LanguageStats(ctx context.Context, username string) (payload.Object, error) {
	for _, p := range []string{"/languageStats", "/languagestats"} {
		u := fmt.Sprintf("%s%s?username=%s", c.baseURL, p, url.QueryEscape(username))
		obj, found, err := c.get(ctx, u)
		if err != nil {
			return nil, err
		}
		if found {
			return obj, nil
		}
	}
	return nil, fmt.Errorf("language stats endpoint not found for %q", username)
}

// Badges fetches the badge summary.
func (c *Client) Badges(ctx context.Context, username string) (payload.Object, error) {
	obj, found, err := c.get(ctx, fmt.Sprintf("%s/%s/badges", c.baseURL, url.PathEscape(username)))
	if err != nil {
		return nil, err
	}
	if !found {
		return payload.Object{}, nil
	}
	return obj, nil
}

// Calendar fetches the submission calendar; the map usually arrives as a JSON
// string under submissionCalendar.
func (c *Client) Calendar(ctx context.Context, username string) (payload.Object, error) {
	obj, found, err := c.get(ctx, fmt.Sprintf("%s/%s/calendar", c.baseURL, url.PathEscape(username)))
	if err != nil {
		return nil, err
	}
	if !found {
		return payload.Object{}, nil
	}
	return obj, nil
}

// get performs one request. A 404 reports found=false without an error so
// callers can fall through to an alternate path or treat it as "no data".
func (c *Client) get(ctx context.Context, u string) (payload.Object, bool, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, false, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	var body map[string]any
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, false, fmt.Errorf("decode response: %w", err)
	}
	return payload.Object(body), true, nil
}
