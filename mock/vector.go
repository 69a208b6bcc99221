package mock

import (
	"context"

	"github.com/fwojciec/nyhetsindex"
)

var _ nyhetsindex.Embedder = (*Embedder)(nil)

// Embedder is a mock implementation of nyhetsindex.Embedder.
type Embedder struct {
	EmbedFn func(ctx context.Context, text string) ([]float32, error)
}

func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	return e.EmbedFn(ctx, text)
}

var _ nyhetsindex.VectorStore = (*VectorStore)(nil)

// VectorStore is a mock implementation of nyhetsindex.VectorStore.
type VectorStore struct {
	UpsertFn func(ctx context.Context, vectors []nyhetsindex.Vector) error
	QueryFn  func(ctx context.Context, vector []float32, topK int) ([]nyhetsindex.Match, error)
}

func (s *VectorStore) Upsert(ctx context.Context, vectors []nyhetsindex.Vector) error {
	return s.UpsertFn(ctx, vectors)
}

func (s *VectorStore) Query(ctx context.Context, vector []float32, topK int) ([]nyhetsindex.Match, error) {
	return s.QueryFn(ctx, vector, topK)
}

var _ nyhetsindex.IndexAdmin = (*IndexAdmin)(nil)

// IndexAdmin is a mock implementation of nyhetsindex.IndexAdmin.
type IndexAdmin struct {
	ListIndexNamesFn func(ctx context.Context) ([]string, error)
	CreateIndexFn    func(ctx context.Context, spec nyhetsindex.IndexSpec) error
	IndexReadyFn     func(ctx context.Context, name string) (bool, error)
}

func (a *IndexAdmin) ListIndexNames(ctx context.Context) ([]string, error) {
	return a.ListIndexNamesFn(ctx)
}

func (a *IndexAdmin) CreateIndex(ctx context.Context, spec nyhetsindex.IndexSpec) error {
	return a.CreateIndexFn(ctx, spec)
}

func (a *IndexAdmin) IndexReady(ctx context.Context, name string) (bool, error) {
	return a.IndexReadyFn(ctx, name)
}

var _ nyhetsindex.Searcher = (*Searcher)(nil)

// Searcher is a mock implementation of nyhetsindex.Searcher.
type Searcher struct {
	SearchFn func(ctx context.Context, query string, topK int) ([]nyhetsindex.SearchResult, error)
}

func (s *Searcher) Search(ctx context.Context, query string, topK int) ([]nyhetsindex.SearchResult, error) {
	return s.SearchFn(ctx, query, topK)
}
