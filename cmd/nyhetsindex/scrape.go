package main

import (
	"fmt"

	"github.com/fwojciec/nyhetsindex/index"
)

// Run executes the scrape command: scrape, snapshot, archive, then embed
// and upsert into the vector index.
func (c *ScrapeCmd) Run(deps *Dependencies) error {
	articles, err := deps.Scraper.Run(deps.Ctx)
	if err != nil {
		return fmt.Errorf("scrape failed: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Scraped %d articles\n", len(articles))

	// The snapshot and archive are written before the index is touched,
	// so a failed upsert never loses the scraped data.
	if err := deps.Snapshot.WriteSnapshot(deps.Ctx, articles); err != nil {
		return fmt.Errorf("writing snapshot: %w", err)
	}

	runID, err := deps.Articles.CreateRun(deps.Ctx, articles)
	if err != nil {
		return fmt.Errorf("archiving run: %w", err)
	}
	fmt.Fprintf(deps.Stdout, "Archived run %s\n", runID)

	if err := deps.Provisioner.EnsureReady(deps.Ctx, deps.Spec); err != nil {
		return fmt.Errorf("provisioning index %q: %w", deps.Spec.Name, err)
	}

	idx, err := deps.Pinecone.Index(deps.Ctx, deps.Spec.Name)
	if err != nil {
		return fmt.Errorf("resolving index %q: %w", deps.Spec.Name, err)
	}

	indexer := &index.Indexer{
		Embedder: deps.Embedder,
		Store:    idx,
		Logger:   deps.Logger,
	}
	if err := indexer.Upsert(deps.Ctx, articles); err != nil {
		return err
	}
	fmt.Fprintf(deps.Stdout, "Indexed %d articles into %q\n", len(articles), deps.Spec.Name)

	return nil
}
