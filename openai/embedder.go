// Package openai implements embedding generation using the OpenAI API.
package openai

import (
	"context"

	"github.com/fwojciec/nyhetsindex"
	gopenai "github.com/sashabaranov/go-openai"
)

// Ensure Embedder implements nyhetsindex.Embedder at compile time.
var _ nyhetsindex.Embedder = (*Embedder)(nil)

// Embedder produces nyhetsindex.EmbeddingModel vectors via the OpenAI
// embeddings API.
type Embedder struct {
	client *gopenai.Client
}

// NewEmbedder creates an Embedder using the given API key.
func NewEmbedder(apiKey string) *Embedder {
	return &Embedder{client: gopenai.NewClient(apiKey)}
}

// NewEmbedderWithClient creates an Embedder backed by a preconfigured
// client. Used by tests to point at a local server.
func NewEmbedderWithClient(client *gopenai.Client) *Embedder {
	return &Embedder{client: client}
}

// Embed returns one embedding vector for the given text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.CreateEmbeddings(ctx, gopenai.EmbeddingRequest{
		Model: gopenai.EmbeddingModel(nyhetsindex.EmbeddingModel),
		Input: []string{text},
	})
	if err != nil {
		return nil, err
	}
	if len(resp.Data) == 0 {
		return nil, nyhetsindex.Errorf(nyhetsindex.EINTERNAL, "embedding response contained no data")
	}
	return resp.Data[0].Embedding, nil
}
