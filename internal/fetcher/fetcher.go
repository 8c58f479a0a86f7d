// Package fetcher downloads the statistics page and maintains a date-stamped
// on-disk cache so the source site is only hit once per refresh interval.
package fetcher

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	colly "github.com/gocolly/colly/v2"

	"github.com/jonesrussell/ozstats/internal/logger"
)

// ErrNoDocument indicates neither a fresh download nor a cached copy is
// available.
var ErrNoDocument = errors.New("statistics page not available")

// Defaults applied when the configuration leaves fields unset.
const (
	DefaultUserAgent       = "Mozilla/5.0 (compatible; ozstats/1.0)"
	DefaultTimeout         = 30 * time.Second
	DefaultRefreshInterval = 7 * 24 * time.Hour
)

// cacheDateFormat is the date layout embedded in cache filenames.
const cacheDateFormat = "2006-01-02"

// Config holds fetcher settings.
type Config struct {
	// CacheDir is the directory holding dated page snapshots.
	CacheDir string `yaml:"cache_dir" mapstructure:"cache_dir"`
	// UserAgent is sent with every request.
	UserAgent string `yaml:"user_agent" mapstructure:"user_agent"`
	// Timeout bounds a single page request.
	Timeout time.Duration `yaml:"timeout" mapstructure:"timeout"`
	// RefreshInterval is how old the newest snapshot may be before a new
	// download is attempted.
	RefreshInterval time.Duration `yaml:"refresh_interval" mapstructure:"refresh_interval"`
}

// Validate checks the fetcher configuration.
func (c *Config) Validate() error {
	if c.CacheDir == "" {
		return errors.New("cache_dir must be specified")
	}
	if c.Timeout <= 0 {
		return errors.New("timeout must be positive")
	}
	if c.RefreshInterval <= 0 {
		return errors.New("refresh_interval must be positive")
	}
	return nil
}

// Document is one raw page snapshot.
type Document struct {
	// Body is the raw page text.
	Body []byte
	// Path is the cache file holding this snapshot.
	Path string
	// FetchedAt is the snapshot date (midnight resolution, from the cache
	// filename for cached copies).
	FetchedAt time.Time
	// FromCache reports whether the snapshot was served from disk rather
	// than downloaded during this call.
	FromCache bool
}

// Fetcher retrieves and caches statistics pages.
type Fetcher struct {
	cfg    *Config
	logger logger.Interface
	now    func() time.Time
}

// New creates a fetcher. Unset config fields receive the package defaults;
// the caller's config is left untouched.
func New(cfg *Config, log logger.Interface) *Fetcher {
	resolved := *cfg
	if resolved.UserAgent == "" {
		resolved.UserAgent = DefaultUserAgent
	}
	if resolved.Timeout == 0 {
		resolved.Timeout = DefaultTimeout
	}
	if resolved.RefreshInterval == 0 {
		resolved.RefreshInterval = DefaultRefreshInterval
	}
	return &Fetcher{
		cfg:    &resolved,
		logger: log.WithComponent("fetcher"),
		now:    time.Now,
	}
}

// Fetch returns the freshest available snapshot for the game. The page is
// downloaded when force is set or the newest cached copy is older than the
// refresh interval; a failed download falls back to the newest cached copy.
func (f *Fetcher) Fetch(ctx context.Context, gameID, pageURL string, force bool) (*Document, error) {
	if err := os.MkdirAll(f.cfg.CacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create cache dir: %w", err)
	}

	cachedPath, cachedDate := f.latestSnapshot(gameID)
	if !force && cachedPath != "" && f.now().Sub(cachedDate) < f.cfg.RefreshInterval {
		f.logger.Debug("Cached snapshot is recent enough",
			"path", cachedPath, "date", cachedDate.Format(cacheDateFormat))
		return f.readSnapshot(cachedPath, cachedDate)
	}

	body, err := f.download(ctx, pageURL)
	if err != nil {
		if cachedPath == "" {
			return nil, fmt.Errorf("%w: download failed with no cached copy: %w", ErrNoDocument, err)
		}
		f.logger.Warn("Download failed, falling back to cached snapshot",
			"error", err, "path", cachedPath)
		return f.readSnapshot(cachedPath, cachedDate)
	}

	snapshotPath := f.snapshotPath(gameID, f.now())
	if writeErr := os.WriteFile(snapshotPath, body, 0o644); writeErr != nil {
		return nil, fmt.Errorf("failed to write snapshot: %w", writeErr)
	}
	f.logger.Info("Downloaded statistics page",
		"url", pageURL, "path", snapshotPath, "bytes", len(body))

	return &Document{
		Body:      body,
		Path:      snapshotPath,
		FetchedAt: f.now(),
	}, nil
}

// download performs the page request through a single-page collector.
func (f *Fetcher) download(ctx context.Context, pageURL string) ([]byte, error) {
	collector := colly.NewCollector(
		colly.StdlibContext(ctx),
		colly.UserAgent(f.cfg.UserAgent),
	)
	collector.SetRequestTimeout(f.cfg.Timeout)

	var body []byte
	var requestErr error
	collector.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	collector.OnError(func(_ *colly.Response, err error) {
		requestErr = err
	})

	if err := collector.Visit(pageURL); err != nil {
		return nil, fmt.Errorf("failed to visit %s: %w", pageURL, err)
	}
	collector.Wait()

	if requestErr != nil {
		return nil, fmt.Errorf("request failed: %w", requestErr)
	}
	if len(body) == 0 {
		return nil, errors.New("empty response body")
	}
	return body, nil
}

// snapshotPath builds the dated cache filename for a game.
func (f *Fetcher) snapshotPath(gameID string, date time.Time) string {
	name := fmt.Sprintf("%s_stats_%s.html", gameID, date.Format(cacheDateFormat))
	return filepath.Join(f.cfg.CacheDir, name)
}

// latestSnapshot finds the newest dated cache file for a game. Files that do
// not match the expected name layout are ignored.
func (f *Fetcher) latestSnapshot(gameID string) (string, time.Time) {
	pattern := filepath.Join(f.cfg.CacheDir, gameID+"_stats_*.html")
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return "", time.Time{}
	}

	prefix := gameID + "_stats_"
	var latestPath string
	var latestDate time.Time
	for _, match := range matches {
		name := filepath.Base(match)
		dateText := name[len(prefix) : len(name)-len(".html")]
		date, parseErr := time.Parse(cacheDateFormat, dateText)
		if parseErr != nil {
			continue
		}
		if latestPath == "" || date.After(latestDate) {
			latestPath = match
			latestDate = date
		}
	}
	return latestPath, latestDate
}

// readSnapshot loads a cached snapshot from disk.
func (f *Fetcher) readSnapshot(path string, date time.Time) (*Document, error) {
	body, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read cached snapshot: %w", ErrNoDocument, err)
	}
	return &Document{
		Body:      body,
		Path:      path,
		FetchedAt: date,
		FromCache: true,
	}, nil
}
