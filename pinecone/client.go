// Package pinecone provides a narrow client for the Pinecone REST API:
// index provisioning on the control plane and vector upsert/query on the
// data plane. Only the five endpoints the pipeline needs are covered.
package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/nyhetsindex"
)

const (
	defaultControlURL = "https://api.pinecone.io"
	apiVersion        = "2025-01"
	requestTimeout    = 30 * time.Second
)

// Ensure Client implements nyhetsindex.IndexAdmin at compile time.
var _ nyhetsindex.IndexAdmin = (*Client)(nil)

// Client talks to the Pinecone control plane.
type Client struct {
	apiKey     string
	controlURL string
	client     *http.Client
}

// Option configures a Client.
type Option func(*Client)

// WithControlURL overrides the control plane base URL. Used by tests.
func WithControlURL(url string) Option {
	return func(c *Client) {
		c.controlURL = url
	}
}

// NewClient creates a Client authenticated with the given API key.
func NewClient(apiKey string, opts ...Option) *Client {
	c := &Client{
		apiKey:     apiKey,
		controlURL: defaultControlURL,
		client:     &http.Client{Timeout: requestTimeout},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// ListIndexNames returns the names of all existing indexes. The API has
// reported index lists in several shapes over time (an object with an
// "indexes" array of records, or a bare array of records or names), so
// decoding is deliberately tolerant.
func (c *Client) ListIndexNames(ctx context.Context) ([]string, error) {
	var raw json.RawMessage
	if err := c.do(ctx, http.MethodGet, c.controlURL+"/indexes", nil, &raw); err != nil {
		return nil, err
	}
	return decodeIndexNames(raw)
}

// decodeIndexNames extracts index names from a list-indexes response.
func decodeIndexNames(raw json.RawMessage) ([]string, error) {
	entries := []json.RawMessage{}

	var wrapped struct {
		Indexes []json.RawMessage `json:"indexes"`
	}
	if err := json.Unmarshal(raw, &wrapped); err == nil && wrapped.Indexes != nil {
		entries = wrapped.Indexes
	} else if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, fmt.Errorf("unexpected list indexes response shape: %s", string(raw))
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		var name string
		if err := json.Unmarshal(entry, &name); err == nil {
			names = append(names, name)
			continue
		}
		var record struct {
			Name string `json:"name"`
		}
		if err := json.Unmarshal(entry, &record); err != nil {
			return nil, fmt.Errorf("unexpected index entry shape: %s", string(entry))
		}
		names = append(names, record.Name)
	}
	return names, nil
}

// CreateIndex creates a serverless index per the spec. Creating an index
// that already exists is a definitive error.
func (c *Client) CreateIndex(ctx context.Context, spec nyhetsindex.IndexSpec) error {
	body := map[string]any{
		"name":      spec.Name,
		"dimension": spec.Dimension,
		"metric":    spec.Metric,
		"spec": map[string]any{
			"serverless": map[string]any{
				"cloud":  spec.Cloud,
				"region": spec.Region,
			},
		},
	}
	return c.do(ctx, http.MethodPost, c.controlURL+"/indexes", body, nil)
}

// describeResponse is the subset of the describe-index response we use.
type describeResponse struct {
	Name   string `json:"name"`
	Host   string `json:"host"`
	Status struct {
		Ready bool   `json:"ready"`
		State string `json:"state"`
	} `json:"status"`
}

// IndexReady reports whether the named index accepts reads and writes.
func (c *Client) IndexReady(ctx context.Context, name string) (bool, error) {
	var desc describeResponse
	if err := c.do(ctx, http.MethodGet, c.controlURL+"/indexes/"+name, nil, &desc); err != nil {
		return false, err
	}
	return desc.Status.Ready, nil
}

// Index resolves the named index's data plane host and returns a handle
// for vector operations on it.
func (c *Client) Index(ctx context.Context, name string) (*Index, error) {
	var desc describeResponse
	if err := c.do(ctx, http.MethodGet, c.controlURL+"/indexes/"+name, nil, &desc); err != nil {
		return nil, err
	}
	if desc.Host == "" {
		return nil, nyhetsindex.Errorf(nyhetsindex.EUNAVAILABLE, "index %q has no host yet", name)
	}
	return &Index{c: c, baseURL: hostURL(desc.Host)}, nil
}

// hostURL normalizes a data plane host to a base URL. The API reports
// bare hostnames; tests inject full URLs.
func hostURL(host string) string {
	if strings.Contains(host, "://") {
		return host
	}
	return "https://" + host
}

// do performs one JSON request against the API. A nil out discards the
// response body.
func (c *Client) do(ctx context.Context, method, url string, body any, out any) error {
	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("marshaling request: %w", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Api-Key", c.apiKey)
	req.Header.Set("X-Pinecone-Api-Version", apiVersion)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("calling Pinecone API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		msg, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("Pinecone API returned %d: %s", resp.StatusCode, string(msg))
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding Pinecone response: %w", err)
	}
	return nil
}
