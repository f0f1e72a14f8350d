package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/crawl"
	"github.com/fwojciec/pagemeta/dom"
	"github.com/fwojciec/pagemeta/fs"
	"github.com/fwojciec/pagemeta/goquery"
	"github.com/fwojciec/pagemeta/htmltomarkdown"
	pagehttp "github.com/fwojciec/pagemeta/http"
	"github.com/fwojciec/pagemeta/lingua"
	"github.com/fwojciec/pagemeta/readability"
	"github.com/fwojciec/pagemeta/rod"
	pageslog "github.com/fwojciec/pagemeta/slog"
	"github.com/fwojciec/pagemeta/sqlite"
	"github.com/fwojciec/pagemeta/trafilatura"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// User-Agent header for HTTP fetches. Empty uses the fetcher default.
	UserAgent string

	// SQLite database used by SQLite service implementations.
	DB *sqlite.DB

	// Services for end-to-end testing.
	RecordService pagemeta.RecordService
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath:    defaultDBPath(),
		UserAgent: os.Getenv("PAGEMETA_USER_AGENT"),
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
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("pagemeta"),
		kong.Description("Extract titles, bylines and excerpts from HTML pages."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'pagemeta --help' to see available commands")
	}

	if args[0] == "help" || args[0] == "--help" || args[0] == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))
	deps.Logger = logger

	cmd := strings.Fields(kongCtx.Command())[0]

	if cmd != "extract" || cli.Extract.Save {
		m.DB = sqlite.NewDB(m.DBPath)
		if err := m.DB.Open(); err != nil {
			fmt.Fprintf(stderr, "Hint: Set PAGEMETA_DB to use a different database path\n")
			return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
		}
		defer m.Close()

		m.RecordService = sqlite.NewRecordService(m.DB)
		deps.Records = m.RecordService
	}

	if cmd == "extract" {
		c := &cli.Extract

		var extractor pagemeta.Extractor
		switch {
		case c.MetaOnly:
			extractor = goquery.NewMetadataExtractor()
		case c.Engine == "trafilatura":
			extractor = trafilatura.NewExtractor(trafilatura.WithLanguageDetector(lingua.NewDetector()))
		default:
			extractor = readability.NewExtractor(
				readability.WithLanguageDetector(lingua.NewDetector()),
				readability.WithCleaner(dom.NewCleaner(logger)),
			)
		}

		var remote pagemeta.Fetcher = pagehttp.NewFetcher(
			pagehttp.WithTimeout(c.Timeout),
			pagehttp.WithUserAgent(m.UserAgent),
		)
		if c.Render {
			browser, err := rod.NewFetcher(rod.WithFetchTimeout(c.Timeout))
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			remote = browser
		}
		fetcher := fs.NewFetcher(pageslog.NewLoggingFetcher(remote, logger))
		defer fetcher.Close()

		deps.Batch = &crawl.Batch{
			Fetcher:     fetcher,
			Extractor:   pageslog.NewLoggingExtractor(extractor, logger),
			Limiter:     crawl.NewDomainLimiter(c.Rate),
			Concurrency: c.Concurrency,
			Logger:      logger,
		}
		deps.Converter = htmltomarkdown.NewConverter()
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("PAGEMETA_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "pagemeta.db"
	}
	dir := filepath.Join(home, ".pagemeta")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "pagemeta.db")
}
