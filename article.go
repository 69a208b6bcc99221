package nyhetsindex

import (
	"context"
	"time"
)

// Article represents a scraped news article. It is the unit persisted to
// the vector index and returned by search.
type Article struct {
	// ID is a deterministic hash of the canonical URL. Re-scraping the
	// same URL yields the same ID, so upserts overwrite rather than
	// duplicate.
	ID string `json:"id"`

	Title string `json:"title"`

	// Date is an ISO 8601 calendar date (YYYY-MM-DD), or "" when the
	// source date could not be parsed. Never null.
	Date string `json:"date"`

	// URL is the absolute, canonicalized article URL.
	URL string `json:"url"`

	// Content is the plain text body. Empty when the detail page could
	// not be fetched or yielded no text.
	Content string `json:"content"`
}

// Validate returns an error if the article contains invalid fields.
func (a *Article) Validate() error {
	if a.ID == "" {
		return Errorf(EINVALID, "article ID required")
	}
	if a.Title == "" {
		return Errorf(EINVALID, "article title required")
	}
	if a.URL == "" {
		return Errorf(EINVALID, "article URL required")
	}
	if a.Date != "" {
		if _, err := time.Parse("2006-01-02", a.Date); err != nil {
			return Errorf(EINVALID, "article date %q is not a valid YYYY-MM-DD date", a.Date)
		}
	}
	return nil
}

// ListingItem is a candidate article discovered on the listing page.
// RawDate is unparsed source text; the date normalizer resolves or
// discards it later.
type ListingItem struct {
	Title   string
	RawDate string
	URL     string
}

// SearchResult is a single search hit, shaped from index match metadata.
// Missing metadata fields default to "" and a missing score to 0.
type SearchResult struct {
	Title   string  `json:"title"`
	Date    string  `json:"date"`
	URL     string  `json:"url"`
	Content string  `json:"content"`
	Score   float64 `json:"score"`
}

// ArchivedArticle is an article row from the local archive, annotated
// with the scrape run it belongs to.
type ArchivedArticle struct {
	Article
	RunID     string    `json:"runId"`
	ScrapedAt time.Time `json:"scrapedAt"`
}

// ArticleFilter represents a filter for FindArticles.
type ArticleFilter struct {
	RunID *string
	URL   *string

	Offset int
	Limit  int
}

// ArticleService archives scraped articles per run for audit and
// debugging. The pipeline never reads the archive back.
type ArticleService interface {
	// CreateRun stores the articles of one scrape run and returns the
	// generated run ID.
	CreateRun(ctx context.Context, articles []*Article) (string, error)

	// FindArticles retrieves archived articles matching the filter,
	// newest first.
	FindArticles(ctx context.Context, filter ArticleFilter) ([]*ArchivedArticle, error)
}

// SnapshotWriter persists a scrape run as a flat snapshot file.
type SnapshotWriter interface {
	WriteSnapshot(ctx context.Context, articles []*Article) error
}
