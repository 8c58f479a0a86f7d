package fetcher_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/ozstats/internal/fetcher"
	"github.com/jonesrussell/ozstats/internal/logger"
)

const (
	testGameID   = "oz-lotto"
	testPageBody = "<html><body><h2>Hot Numbers (Most Common)</h2></body></html>"
)

func newTestFetcher(t *testing.T) (*fetcher.Fetcher, string) {
	t.Helper()
	cacheDir := t.TempDir()
	cfg := &fetcher.Config{
		CacheDir: cacheDir,
		Timeout:  5 * time.Second,
		// Generous so freshness checks are not sensitive to timezones.
		RefreshInterval: 72 * time.Hour,
	}
	return fetcher.New(cfg, logger.NewNoOp()), cacheDir
}

func newStatsServer(t *testing.T, hits *atomic.Int32) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		_, _ = w.Write([]byte(testPageBody))
	}))
	t.Cleanup(server.Close)
	return server
}

func TestFetch_DownloadsAndWritesSnapshot(t *testing.T) {
	t.Parallel()

	server := newStatsServer(t, nil)
	f, cacheDir := newTestFetcher(t)

	doc, err := f.Fetch(context.Background(), testGameID, server.URL, false)
	require.NoError(t, err)
	assert.False(t, doc.FromCache)
	assert.Equal(t, testPageBody, string(doc.Body))

	assert.Equal(t, cacheDir, filepath.Dir(doc.Path))
	assert.Contains(t, filepath.Base(doc.Path), testGameID+"_stats_")

	written, err := os.ReadFile(doc.Path)
	require.NoError(t, err)
	assert.Equal(t, testPageBody, string(written))
}

func TestFetch_ServesFreshCache(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := newStatsServer(t, &hits)
	f, _ := newTestFetcher(t)

	first, err := f.Fetch(context.Background(), testGameID, server.URL, false)
	require.NoError(t, err)

	second, err := f.Fetch(context.Background(), testGameID, server.URL, false)
	require.NoError(t, err)
	assert.True(t, second.FromCache)
	assert.Equal(t, first.Path, second.Path)
	assert.Equal(t, int32(1), hits.Load(), "second fetch must not hit the server")
}

func TestFetch_ForceBypassesCache(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := newStatsServer(t, &hits)
	f, _ := newTestFetcher(t)

	_, err := f.Fetch(context.Background(), testGameID, server.URL, true)
	require.NoError(t, err)

	doc, err := f.Fetch(context.Background(), testGameID, server.URL, true)
	require.NoError(t, err)
	assert.False(t, doc.FromCache)
	assert.Equal(t, int32(2), hits.Load())
}

func TestFetch_FallsBackToStaleCache(t *testing.T) {
	t.Parallel()

	// A dead server: grab a URL and close it immediately.
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	deadURL := server.URL
	server.Close()

	f, cacheDir := newTestFetcher(t)
	stale := filepath.Join(cacheDir, testGameID+"_stats_2026-01-01.html")
	require.NoError(t, os.WriteFile(stale, []byte(testPageBody), 0o644))

	doc, err := f.Fetch(context.Background(), testGameID, deadURL, false)
	require.NoError(t, err)
	assert.True(t, doc.FromCache)
	assert.Equal(t, stale, doc.Path)
	assert.Equal(t, testPageBody, string(doc.Body))
	assert.Equal(t, "2026-01-01", doc.FetchedAt.Format("2006-01-02"))
}

func TestFetch_NoCacheAndDownloadFails(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	deadURL := server.URL
	server.Close()

	f, _ := newTestFetcher(t)
	_, err := f.Fetch(context.Background(), testGameID, deadURL, false)
	require.ErrorIs(t, err, fetcher.ErrNoDocument)
}

func TestFetch_IgnoresForeignCacheFiles(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	server := newStatsServer(t, &hits)
	f, cacheDir := newTestFetcher(t)

	// Another game's snapshot and a misnamed file must not satisfy the
	// freshness check.
	other := filepath.Join(cacheDir, "powerball_stats_2026-08-27.html")
	require.NoError(t, os.WriteFile(other, []byte("other"), 0o644))
	junk := filepath.Join(cacheDir, testGameID+"_stats_notadate.html")
	require.NoError(t, os.WriteFile(junk, []byte("junk"), 0o644))

	doc, err := f.Fetch(context.Background(), testGameID, server.URL, false)
	require.NoError(t, err)
	assert.False(t, doc.FromCache)
	assert.Equal(t, int32(1), hits.Load())
}

func TestNew_DoesNotMutateCallerConfig(t *testing.T) {
	t.Parallel()

	cfg := fetcher.Config{CacheDir: t.TempDir()}
	f := fetcher.New(&cfg, logger.NewNoOp())
	require.NotNil(t, f)

	assert.Empty(t, cfg.UserAgent)
	assert.Zero(t, cfg.Timeout)
	assert.Zero(t, cfg.RefreshInterval)
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	valid := fetcher.Config{
		CacheDir:        "html_history",
		Timeout:         time.Second,
		RefreshInterval: time.Hour,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(*fetcher.Config)
	}{
		{"missing cache dir", func(c *fetcher.Config) { c.CacheDir = "" }},
		{"zero timeout", func(c *fetcher.Config) { c.Timeout = 0 }},
		{"zero refresh interval", func(c *fetcher.Config) { c.RefreshInterval = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cfg := valid
			tt.mutate(&cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
