package index

import (
	"context"
	"strings"

	"github.com/fwojciec/nyhetsindex"
)

// Ensure Searcher implements nyhetsindex.Searcher at compile time.
var _ nyhetsindex.Searcher = (*Searcher)(nil)

// Searcher answers free-text queries against the vector index. The query
// is embedded with the same model used at index time.
type Searcher struct {
	Embedder nyhetsindex.Embedder
	Store    nyhetsindex.VectorStore
}

// Search embeds the query and returns the topK nearest articles.
// Empty or whitespace-only queries are rejected before any external
// call. topK values below 1 default to 1.
func (s *Searcher) Search(ctx context.Context, query string, topK int) ([]nyhetsindex.SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, nyhetsindex.Errorf(nyhetsindex.EINVALID, "query must not be empty")
	}
	if topK < 1 {
		topK = 1
	}

	vector, err := s.Embedder.Embed(ctx, query)
	if err != nil {
		return nil, err
	}

	matches, err := s.Store.Query(ctx, vector, topK)
	if err != nil {
		return nil, err
	}

	results := make([]nyhetsindex.SearchResult, 0, len(matches))
	for _, m := range matches {
		results = append(results, nyhetsindex.SearchResult{
			Title:   m.Metadata["title"],
			Date:    m.Metadata["date"],
			URL:     m.Metadata["url"],
			Content: m.Metadata["content"],
			Score:   m.Score,
		})
	}
	return results, nil
}
