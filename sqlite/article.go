package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/fwojciec/nyhetsindex"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ nyhetsindex.ArticleService = (*ArticleService)(nil)

// ArticleService implements nyhetsindex.ArticleService using SQLite.
type ArticleService struct {
	db *DB
}

// NewArticleService creates a new ArticleService.
func NewArticleService(db *DB) *ArticleService {
	return &ArticleService{db: db}
}

// CreateRun stores the articles of one scrape run under a generated run
// ID. All rows of a run share the same scraped_at timestamp.
func (s *ArticleService) CreateRun(ctx context.Context, articles []*nyhetsindex.Article) (string, error) {
	for _, a := range articles {
		if err := a.Validate(); err != nil {
			return "", err
		}
	}

	runID := uuid.New().String()
	scrapedAt := time.Now().UTC().Format(time.RFC3339)

	for _, a := range articles {
		_, err := s.db.ExecContext(ctx, `
			INSERT INTO articles (id, run_id, title, date, url, content, scraped_at)
			VALUES (?, ?, ?, ?, ?, ?, ?)
		`, a.ID, runID, a.Title, a.Date, a.URL, a.Content, scrapedAt)
		if err != nil {
			return "", err
		}
	}

	return runID, nil
}

// FindArticles retrieves archived articles matching the filter, newest
// first.
func (s *ArticleService) FindArticles(ctx context.Context, filter nyhetsindex.ArticleFilter) ([]*nyhetsindex.ArchivedArticle, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT id, run_id, title, date, url, content, scraped_at FROM articles WHERE 1=1")

	if filter.RunID != nil {
		query.WriteString(" AND run_id = ?")
		args = append(args, *filter.RunID)
	}
	if filter.URL != nil {
		query.WriteString(" AND url = ?")
		args = append(args, *filter.URL)
	}

	query.WriteString(" ORDER BY scraped_at DESC, id ASC")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}
	if filter.Offset > 0 {
		query.WriteString(" OFFSET ?")
		args = append(args, filter.Offset)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var articles []*nyhetsindex.ArchivedArticle
	for rows.Next() {
		var a nyhetsindex.ArchivedArticle
		var scrapedAt string

		if err := rows.Scan(&a.ID, &a.RunID, &a.Title, &a.Date, &a.URL, &a.Content, &scrapedAt); err != nil {
			return nil, err
		}

		var parseErr error
		a.ScrapedAt, parseErr = time.Parse(time.RFC3339, scrapedAt)
		if parseErr != nil {
			return nil, fmt.Errorf("failed to parse scraped_at: %w", parseErr)
		}

		articles = append(articles, &a)
	}

	return articles, rows.Err()
}
