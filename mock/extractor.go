package mock

import "github.com/fwojciec/nyhetsindex"

var _ nyhetsindex.ListingExtractor = (*ListingExtractor)(nil)

// ListingExtractor is a mock implementation of
// nyhetsindex.ListingExtractor.
type ListingExtractor struct {
	ExtractFn func(html string, maxItems int) ([]nyhetsindex.ListingItem, error)
}

func (e *ListingExtractor) Extract(html string, maxItems int) ([]nyhetsindex.ListingItem, error) {
	return e.ExtractFn(html, maxItems)
}

var _ nyhetsindex.DetailExtractor = (*DetailExtractor)(nil)

// DetailExtractor is a mock implementation of
// nyhetsindex.DetailExtractor.
type DetailExtractor struct {
	ExtractFn func(html string) (string, error)
}

func (e *DetailExtractor) Extract(html string) (string, error) {
	return e.ExtractFn(html)
}
