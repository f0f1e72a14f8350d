package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/crawl"
)

// ArticleConverter renders an article as a Markdown document.
type ArticleConverter interface {
	ConvertArticle(a *pagemeta.Article) (string, error)
}

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Records   pagemeta.RecordService
	Batch     *crawl.Batch
	Converter ArticleConverter
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Verbose bool `short:"v" help:"Enable debug logging"`

	Extract ExtractCmd `cmd:"" help:"Extract metadata from URLs or local HTML files"`
	List    ListCmd    `cmd:"" help:"List saved extraction records"`
	Show    ShowCmd    `cmd:"" help:"Show a saved extraction record"`
	Delete  DeleteCmd  `cmd:"" help:"Delete a saved extraction record"`
}

// ExtractCmd is the "extract" subcommand.
type ExtractCmd struct {
	Sources     []string      `arg:"" name:"source" help:"URLs or paths of HTML files"`
	Engine      string        `short:"e" enum:"readability,trafilatura" default:"readability" help:"Content extraction engine (${enum})"`
	Format      string        `short:"f" enum:"text,json,yaml,markdown" default:"text" help:"Output format (${enum})"`
	MetaOnly    bool          `short:"m" help:"Extract metadata only, skipping article content"`
	Save        bool          `short:"s" help:"Save results to the database"`
	Out         string        `short:"o" help:"Write each article as a Markdown file under this directory"`
	Render      bool          `short:"r" help:"Render remote pages in headless Chrome before extracting"`
	Concurrency int           `short:"c" default:"4" help:"Concurrent fetch limit"`
	Rate        float64       `default:"1" help:"Requests per second per host (0 disables)"`
	Timeout     time.Duration `default:"10s" help:"HTTP request timeout"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL   string `help:"Only show records for this source URL"`
	Limit int    `short:"n" default:"50" help:"Maximum number of records"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID     string `arg:"" help:"Record ID"`
	Format string `short:"f" enum:"text,json,yaml" default:"text" help:"Output format (${enum})"`
}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	ID    string `arg:"" help:"Record ID"`
	Force bool   `help:"Confirm deletion"`
}
