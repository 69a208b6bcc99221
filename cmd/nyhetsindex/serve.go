package main

import (
	"fmt"
	"net/http"

	nyhhttp "github.com/fwojciec/nyhetsindex/http"
	"github.com/fwojciec/nyhetsindex/index"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	idx, err := deps.Pinecone.Index(deps.Ctx, deps.Spec.Name)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "Hint: Run 'nyhetsindex scrape' first to create and populate the index\n")
		return fmt.Errorf("resolving index %q: %w", deps.Spec.Name, err)
	}

	searcher := &index.Searcher{
		Embedder: deps.Embedder,
		Store:    idx,
	}
	srv := nyhhttp.NewServer(searcher, deps.Logger)

	fmt.Fprintf(deps.Stdout, "Listening on %s\n", c.Addr)
	return http.ListenAndServe(c.Addr, srv.Handler())
}
