// Package metadata inspects saved URLs: platform detection, keyword tags and
// OpenGraph scraping.
package metadata

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/gocolly/colly/v2"

	"github.com/heartmarshall/stash-backend/internal/config"
	"github.com/heartmarshall/stash-backend/internal/provider"
)

// Fetcher scrapes page metadata over HTTP.
type Fetcher struct {
	timeout     time.Duration
	userAgent   string
	maxTitleLen int
	transport   http.RoundTripper
	log         *slog.Logger
}

// NewFetcher creates a Fetcher from config.
func NewFetcher(cfg config.MetadataConfig, logger *slog.Logger) *Fetcher {
	return &Fetcher{
		timeout:     cfg.Timeout,
		userAgent:   cfg.UserAgent,
		maxTitleLen: cfg.MaxTitleLen,
		log:         logger.With("adapter", "metadata"),
	}
}

// NewFetcherWithTransport creates a Fetcher with a custom transport (for testing).
func NewFetcherWithTransport(cfg config.MetadataConfig, rt http.RoundTripper, logger *slog.Logger) *Fetcher {
	f := NewFetcher(cfg, logger)
	f.transport = rt
	return f
}

// Fetch returns metadata for rawURL. It never fails: any network error,
// non-200 status or parse failure yields the default result for the URL.
func (f *Fetcher) Fetch(ctx context.Context, rawURL string) provider.PageMetadata {
	platform, contentType := DetectPlatform(rawURL)
	result := provider.PageMetadata{
		Title:         rawURL,
		Platform:      platform,
		ContentType:   contentType,
		SuggestedTags: []string{},
	}

	c := colly.NewCollector(
		colly.UserAgent(f.userAgent),
		colly.AllowURLRevisit(),
		colly.StdlibContext(ctx),
	)
	c.SetRequestTimeout(f.timeout)
	if f.transport != nil {
		c.WithTransport(f.transport)
	}

	var (
		ok                       bool
		ogTitle, docTitle, image string
	)

	c.OnResponse(func(r *colly.Response) {
		ok = r.StatusCode == http.StatusOK
	})
	c.OnHTML(`meta[property="og:title"]`, func(e *colly.HTMLElement) {
		if ogTitle == "" {
			ogTitle = e.Attr("content")
		}
	})
	c.OnHTML(`meta[property="og:image"]`, func(e *colly.HTMLElement) {
		if image == "" {
			image = e.Attr("content")
		}
	})
	c.OnHTML("title", func(e *colly.HTMLElement) {
		if docTitle == "" {
			docTitle = e.Text
		}
	})

	var fetchErr error
	c.OnError(func(r *colly.Response, err error) {
		fetchErr = err
	})

	if err := c.Visit(rawURL); err != nil && fetchErr == nil {
		fetchErr = err
	}
	if fetchErr != nil || !ok {
		f.log.WarnContext(ctx, "metadata fetch failed",
			slog.String("url", rawURL),
			slog.Any("error", fetchErr),
		)
		return result
	}

	title := ogTitle
	if title == "" {
		title = docTitle
	}
	if title != "" {
		result.SuggestedTags = ExtractSuggestedTags(title)
		if t := truncate(strings.TrimSpace(title), f.maxTitleLen); t != "" {
			result.Title = t
		}
	}
	if image != "" {
		result.ThumbnailURL = &image
	}

	f.log.DebugContext(ctx, "metadata fetched",
		slog.String("url", rawURL),
		slog.String("platform", platform),
		slog.Bool("thumbnail", result.ThumbnailURL != nil),
	)

	return result
}

// truncate cuts s to at most n runes.
func truncate(s string, n int) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}
