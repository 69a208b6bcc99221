package nyhetsindex

import "context"

// EmbeddingModel is the model used for all embedding calls. Index-time
// and query-time embeddings must come from the same model or similarity
// scores are meaningless.
const EmbeddingModel = "text-embedding-3-small"

// EmbeddingDimension is the vector dimensionality of EmbeddingModel.
const EmbeddingDimension = 1536

// Embedder converts text into a fixed-length vector.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Vector is an embedding with its key and metadata, as written to the
// vector index.
type Vector struct {
	ID       string
	Values   []float32
	Metadata map[string]string
}

// Match is a single nearest-neighbor hit from the vector index.
type Match struct {
	ID       string
	Score    float64
	Metadata map[string]string
}

// IndexSpec describes a vector index to be provisioned.
type IndexSpec struct {
	Name      string
	Dimension int
	Metric    string
	Cloud     string
	Region    string
}

// VectorStore reads and writes vectors in a single index.
type VectorStore interface {
	// Upsert writes vectors in one batch, keyed by ID
	// (insert-or-overwrite).
	Upsert(ctx context.Context, vectors []Vector) error

	// Query returns the topK nearest vectors with metadata included.
	Query(ctx context.Context, vector []float32, topK int) ([]Match, error)
}

// IndexAdmin provisions vector indexes. ListIndexNames absorbs whatever
// shape the backing service reports its indexes in.
type IndexAdmin interface {
	ListIndexNames(ctx context.Context) ([]string, error)
	CreateIndex(ctx context.Context, spec IndexSpec) error

	// IndexReady reports whether the named index accepts reads and
	// writes.
	IndexReady(ctx context.Context, name string) (bool, error)
}

// Searcher answers free-text queries with nearest-neighbor results.
type Searcher interface {
	// Search embeds the query and returns the topK nearest articles.
	// Returns EINVALID if the query is empty or whitespace-only.
	Search(ctx context.Context, query string, topK int) ([]SearchResult, error)
}
