package pinecone

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fwojciec/nyhetsindex"
)

// Ensure Index implements nyhetsindex.VectorStore at compile time.
var _ nyhetsindex.VectorStore = (*Index)(nil)

// Index is a data plane handle for one vector index.
type Index struct {
	c       *Client
	baseURL string
}

type upsertVector struct {
	ID       string            `json:"id"`
	Values   []float32         `json:"values"`
	Metadata map[string]string `json:"metadata,omitempty"`
}

// Upsert writes all vectors in a single batch call, keyed by ID.
func (i *Index) Upsert(ctx context.Context, vectors []nyhetsindex.Vector) error {
	if len(vectors) == 0 {
		return nil
	}
	payload := make([]upsertVector, 0, len(vectors))
	for _, v := range vectors {
		payload = append(payload, upsertVector{
			ID:       v.ID,
			Values:   v.Values,
			Metadata: v.Metadata,
		})
	}
	body := map[string]any{"vectors": payload}
	return i.c.do(ctx, http.MethodPost, i.baseURL+"/vectors/upsert", body, nil)
}

type queryResponse struct {
	Matches []struct {
		ID       string         `json:"id"`
		Score    float64        `json:"score"`
		Metadata map[string]any `json:"metadata"`
	} `json:"matches"`
}

// Query returns the topK nearest vectors with metadata included.
func (i *Index) Query(ctx context.Context, vector []float32, topK int) ([]nyhetsindex.Match, error) {
	body := map[string]any{
		"vector":          vector,
		"topK":            topK,
		"includeMetadata": true,
	}
	var resp queryResponse
	if err := i.c.do(ctx, http.MethodPost, i.baseURL+"/query", body, &resp); err != nil {
		return nil, err
	}

	matches := make([]nyhetsindex.Match, 0, len(resp.Matches))
	for _, m := range resp.Matches {
		md := make(map[string]string, len(m.Metadata))
		for k, v := range m.Metadata {
			if s, ok := v.(string); ok {
				md[k] = s
			} else {
				md[k] = fmt.Sprint(v)
			}
		}
		matches = append(matches, nyhetsindex.Match{
			ID:       m.ID,
			Score:    m.Score,
			Metadata: md,
		})
	}
	return matches, nil
}
