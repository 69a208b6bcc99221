package main

import (
	"encoding/json"
	"fmt"

	"github.com/fwojciec/nyhetsindex"
	"github.com/fwojciec/nyhetsindex/index"
)

// Run executes the search command.
func (c *SearchCmd) Run(deps *Dependencies) error {
	idx, err := deps.Pinecone.Index(deps.Ctx, deps.Spec.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: Run 'nyhetsindex scrape' first to create and populate the index\n")
		return fmt.Errorf("resolving index %q: %w", deps.Spec.Name, err)
	}

	searcher := &index.Searcher{
		Embedder: deps.Embedder,
		Store:    idx,
	}

	results, err := searcher.Search(deps.Ctx, c.Query, c.TopK)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", nyhetsindex.ErrorMessage(err))
		return err
	}
	if results == nil {
		results = []nyhetsindex.SearchResult{}
	}

	enc := json.NewEncoder(deps.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(results)
}
