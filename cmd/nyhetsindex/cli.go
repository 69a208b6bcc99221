package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/nyhetsindex"
	"github.com/fwojciec/nyhetsindex/index"
	"github.com/fwojciec/nyhetsindex/pinecone"
	"github.com/fwojciec/nyhetsindex/scrape"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Articles    nyhetsindex.ArticleService
	Snapshot    nyhetsindex.SnapshotWriter
	Scraper     *scrape.Scraper
	Provisioner *index.Provisioner
	Embedder    nyhetsindex.Embedder
	Pinecone    *pinecone.Client
	Spec        nyhetsindex.IndexSpec
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Scrape   ScrapeCmd   `cmd:"" help:"Scrape the news listing and index the articles"`
	Serve    ServeCmd    `cmd:"" help:"Serve the search API over HTTP"`
	Search   SearchCmd   `cmd:"" help:"Run a one-off search query"`
	Articles ArticlesCmd `cmd:"" help:"List archived articles"`
}

// ScrapeCmd is the "scrape" subcommand.
type ScrapeCmd struct {
	MaxItems int     `short:"n" default:"5" help:"Maximum listing items per run"`
	RPS      float64 `name:"rps" default:"1" help:"Detail page fetch rate (requests per second)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8000" help:"HTTP listen address"`
}

// SearchCmd is the "search" subcommand.
type SearchCmd struct {
	Query string `arg:"" help:"Free-text search query"`
	TopK  int    `short:"k" default:"1" help:"Number of results to return"`
}

// ArticlesCmd is the "articles" subcommand.
type ArticlesCmd struct {
	RunID string `name:"run" help:"Filter by scrape run ID"`
	URL   string `help:"Filter by article URL"`
	Limit int    `default:"50" help:"Maximum rows to list"`
}
