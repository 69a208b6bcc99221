package index

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/fwojciec/nyhetsindex"
)

// Indexer embeds articles and writes them into the vector index.
type Indexer struct {
	Embedder nyhetsindex.Embedder
	Store    nyhetsindex.VectorStore
	Logger   *slog.Logger
}

// EmbeddingInput builds the text embedded for an article: the title and
// body separated by a blank line. Content is only used as embedding
// input, never stored as index metadata.
func EmbeddingInput(a *nyhetsindex.Article) string {
	return a.Title + "\n\n" + a.Content
}

// Upsert embeds each article sequentially and writes all vectors in one
// batch, keyed by article ID so re-runs overwrite instead of duplicate.
// Embedding calls are serial; the dataset per run is small.
func (ix *Indexer) Upsert(ctx context.Context, articles []*nyhetsindex.Article) error {
	if len(articles) == 0 {
		return nil
	}
	logger := ix.Logger
	if logger == nil {
		logger = slog.Default()
	}

	vectors := make([]nyhetsindex.Vector, 0, len(articles))
	for _, a := range articles {
		values, err := ix.Embedder.Embed(ctx, EmbeddingInput(a))
		if err != nil {
			return fmt.Errorf("embedding %s: %w", a.URL, err)
		}
		vectors = append(vectors, nyhetsindex.Vector{
			ID:     a.ID,
			Values: values,
			Metadata: map[string]string{
				"title": a.Title,
				"date":  a.Date,
				"url":   a.URL,
			},
		})
	}

	if err := ix.Store.Upsert(ctx, vectors); err != nil {
		return fmt.Errorf("upserting %d vectors: %w", len(vectors), err)
	}
	logger.Info("upserted articles", "count", len(vectors))
	return nil
}
