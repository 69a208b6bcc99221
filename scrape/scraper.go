// Package scrape orchestrates the news scraping pipeline: listing-page
// discovery, per-item detail fetching, date normalization, and record
// assembly.
package scrape

import (
	"context"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/nyhetsindex"
)

// DefaultMaxItems caps listing extraction for a lightweight run.
const DefaultMaxItems = 5

// Scraper runs the scrape pipeline. All fields except Fallback, Limiter
// and Logger are required.
type Scraper struct {
	Fetcher  nyhetsindex.Fetcher
	Listings nyhetsindex.ListingExtractor
	Details  nyhetsindex.DetailExtractor

	// Fallback, if set, takes a second extraction pass when Details
	// yields no text for a fetched page.
	Fallback nyhetsindex.DetailExtractor

	// Limiter, if set, paces detail-page fetches as a courtesy to the
	// source server.
	Limiter nyhetsindex.Limiter

	Logger *slog.Logger

	// ListingURL is the news listing page to scrape.
	ListingURL string

	// MaxItems caps the number of items per run.
	// Defaults to DefaultMaxItems.
	MaxItems int
}

// Run fetches the listing page, discovers candidate items, fetches each
// detail page, and assembles article records in discovery order.
// A listing fetch failure is fatal; a detail fetch or extraction failure
// keeps the item with empty content.
func (s *Scraper) Run(ctx context.Context) ([]*nyhetsindex.Article, error) {
	logger := s.Logger
	if logger == nil {
		logger = slog.Default()
	}
	maxItems := s.MaxItems
	if maxItems <= 0 {
		maxItems = DefaultMaxItems
	}

	listingHTML, err := s.Fetcher.Fetch(ctx, s.ListingURL)
	if err != nil {
		return nil, fmt.Errorf("fetching listing page %s: %w", s.ListingURL, err)
	}

	items, err := s.Listings.Extract(listingHTML, maxItems)
	if err != nil {
		return nil, fmt.Errorf("extracting listing items: %w", err)
	}
	logger.Info("discovered listing items", "count", len(items))

	articles := make([]*nyhetsindex.Article, 0, len(items))
	for _, item := range items {
		if s.Limiter != nil {
			if err := s.Limiter.Wait(ctx); err != nil {
				return nil, err
			}
		}

		content := s.fetchContent(ctx, logger, item.URL)

		date, ok := nyhetsindex.NormalizeDate(item.RawDate)
		if !ok {
			date = ""
		}

		articles = append(articles, &nyhetsindex.Article{
			ID:      ArticleID(item.URL),
			Title:   item.Title,
			Date:    date,
			URL:     item.URL,
			Content: content,
		})
	}

	return articles, nil
}

// fetchContent fetches and extracts one detail page. Failures are logged
// and yield empty content; they never abort the run.
func (s *Scraper) fetchContent(ctx context.Context, logger *slog.Logger, url string) string {
	detailHTML, err := s.Fetcher.Fetch(ctx, url)
	if err != nil {
		logger.Warn("detail page fetch failed", "url", url, "error", err)
		return ""
	}

	content, err := s.Details.Extract(detailHTML)
	if err != nil {
		logger.Warn("detail extraction failed", "url", url, "error", err)
		content = ""
	}

	if content == "" && s.Fallback != nil {
		fallback, err := s.Fallback.Extract(detailHTML)
		if err != nil {
			logger.Warn("fallback extraction failed", "url", url, "error", err)
			return ""
		}
		return fallback
	}
	return content
}

// ArticleID derives the stable article identifier from the canonical
// URL. It is a pure function of the URL so re-scraping preserves
// identity even when the body text changes.
func ArticleID(url string) string {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, xxhash.Sum64String(url))
	return hex.EncodeToString(b)
}
