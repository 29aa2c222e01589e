package github

import (
	"context"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(Config{BaseURL: srv.URL, Timeout: 5 * time.Second}, testLogger())
}

func TestSummary(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api", r.URL.Path)
		assert.Equal(t, "alice", r.URL.Query().Get("username"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"followers": 10, "public_repo_count": 3}`))
	})

	obj, err := client.Summary(context.Background(), "alice")
	require.NoError(t, err)

	followers, ok := obj.Int("followers")
	assert.True(t, ok)
	assert.Equal(t, int64(10), followers)
}

func TestSummaryMissingUserIsEmpty(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	obj, err := client.Summary(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Empty(t, obj)
}

func TestSummaryServerError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.Summary(context.Background(), "alice")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unexpected status: 502")
}

func TestContributions(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/contri", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"weeks": [{"contributionDays": [{"date": "2026-08-30", "contributionCount": 2}]}]}`))
	})

	obj, err := client.Contributions(context.Background(), "alice")
	require.NoError(t, err)
	assert.Len(t, obj.List("weeks"), 1)
}
