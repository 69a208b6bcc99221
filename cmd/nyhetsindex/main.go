package main

import (
	"context"
	"fmt"
	"io"
	stdlog "log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/nyhetsindex"
	"github.com/fwojciec/nyhetsindex/fs"
	"github.com/fwojciec/nyhetsindex/goquery"
	nyhhttp "github.com/fwojciec/nyhetsindex/http"
	"github.com/fwojciec/nyhetsindex/index"
	"github.com/fwojciec/nyhetsindex/openai"
	"github.com/fwojciec/nyhetsindex/pinecone"
	"github.com/fwojciec/nyhetsindex/scrape"
	"github.com/fwojciec/nyhetsindex/slog"
	"github.com/fwojciec/nyhetsindex/sqlite"
	"github.com/fwojciec/nyhetsindex/trafilatura"
)

// Source site constants. The scraper is built for the Linköping
// municipality news listing.
const (
	siteOrigin  = "https://www.linkoping.se"
	newsPath    = "/nyheter"
	listingPage = siteOrigin + newsPath + "/"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Archive database path. Set before calling Run().
	DBPath string

	// Snapshot file path for scrape runs. Set before calling Run().
	SnapshotPath string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	ArticleService nyhetsindex.ArticleService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:       defaultDBPath(),
		SnapshotPath: defaultSnapshotPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	logger := stdlog.New(stdlog.NewTextHandler(stderr, nil))

	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
		Logger: logger,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("nyhetsindex"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'nyhetsindex --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	// Open the archive database
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set NYHETSINDEX_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()

	m.ArticleService = sqlite.NewArticleService(m.DB)
	deps.Articles = m.ArticleService

	// Commands that touch the vector index need both API keys up front.
	if cmd == "scrape" || cmd == "serve" || cmd == "search" {
		openaiKey := os.Getenv("OPENAI_API_KEY")
		if openaiKey == "" {
			fmt.Fprintln(stderr, "Hint: Get an API key at https://platform.openai.com/api-keys")
			return fmt.Errorf("OPENAI_API_KEY environment variable not set")
		}
		pineconeKey := os.Getenv("PINECONE_API_KEY")
		if pineconeKey == "" {
			fmt.Fprintln(stderr, "Hint: Get an API key at https://app.pinecone.io")
			return fmt.Errorf("PINECONE_API_KEY environment variable not set")
		}

		deps.Embedder = openai.NewEmbedder(openaiKey)
		deps.Pinecone = pinecone.NewClient(pineconeKey)
		deps.Spec = indexSpecFromEnv()
	}

	if cmd == "scrape" {
		fetcher := slog.NewFetcher(nyhhttp.NewFetcher(), logger)
		defer fetcher.Close()

		deps.Scraper = &scrape.Scraper{
			Fetcher:    fetcher,
			Listings:   goquery.NewListingExtractor(siteOrigin, newsPath),
			Details:    goquery.NewDetailExtractor(),
			Fallback:   trafilatura.NewExtractor(),
			Limiter:    scrape.NewLimiter(cli.Scrape.RPS),
			Logger:     logger,
			ListingURL: listingPage,
			MaxItems:   cli.Scrape.MaxItems,
		}
		deps.Snapshot = fs.NewSnapshotWriter(m.SnapshotPath)
		deps.Provisioner = &index.Provisioner{
			Admin:  deps.Pinecone,
			Logger: logger,
		}
	}

	return kongCtx.Run(deps)
}

// indexSpecFromEnv builds the serverless index spec, with environment
// overrides for the index name and placement.
func indexSpecFromEnv() nyhetsindex.IndexSpec {
	spec := nyhetsindex.IndexSpec{
		Name:      "linkoping",
		Dimension: nyhetsindex.EmbeddingDimension,
		Metric:    "cosine",
		Cloud:     "aws",
		Region:    "eu-west-1",
	}
	if name := os.Getenv("NYHETSINDEX_INDEX"); name != "" {
		spec.Name = name
	}
	if cloud := os.Getenv("NYHETSINDEX_CLOUD"); cloud != "" {
		spec.Cloud = cloud
	}
	if region := os.Getenv("NYHETSINDEX_REGION"); region != "" {
		spec.Region = region
	}
	return spec
}

func defaultDBPath() string {
	if path := os.Getenv("NYHETSINDEX_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "nyhetsindex.db"
	}
	dir := filepath.Join(home, ".nyhetsindex")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "nyhetsindex.db")
}

func defaultSnapshotPath() string {
	if path := os.Getenv("NYHETSINDEX_SNAPSHOT"); path != "" {
		return path
	}
	return "linkoping_nyheter.json"
}
