// Package trafilatura provides a fallback body extractor backed by
// go-trafilatura's boilerplate-removal heuristics. The scrape pipeline
// uses it when the structural heuristics come back empty on a non-empty
// page.
package trafilatura

import (
	"strings"

	"github.com/fwojciec/nyhetsindex"
	"github.com/markusmobius/go-trafilatura"
)

// Ensure Extractor implements nyhetsindex.DetailExtractor at compile time.
var _ nyhetsindex.DetailExtractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract returns the main body text of the page as plain text with
// normalized whitespace.
func (e *Extractor) Extract(rawHTML string) (string, error) {
	if strings.TrimSpace(rawHTML) == "" {
		return "", nil
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return "", err
	}

	return strings.Join(strings.Fields(result.ContentText), " "), nil
}
