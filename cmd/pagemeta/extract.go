package main

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"

	"github.com/fwojciec/pagemeta"
	"github.com/fwojciec/pagemeta/crawl"
	"github.com/fwojciec/pagemeta/fs"
	"gopkg.in/yaml.v3"
)

// extractedArticle is an article labelled with the source it came from.
type extractedArticle struct {
	Source           string `json:"source" yaml:"source"`
	pagemeta.Article `yaml:",inline"`

	markdown string
}

// Run executes the extract command.
func (c *ExtractCmd) Run(deps *Dependencies) error {
	results, err := deps.Batch.Run(deps.Ctx, c.Sources, func(completed, total int, r *crawl.Result) {
		deps.Logger.Debug("progress", "url", r.URL, "completed", completed, "total", total)
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", describeError(err))
		return err
	}

	var store *fs.FileStore
	if c.Out != "" {
		store = fs.NewFileStore(filepath.Dir(c.Out), filepath.Base(c.Out))
	}

	var (
		articles []*extractedArticle
		failed   int
	)
	for _, r := range results {
		if r.Err != nil {
			failed++
			fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.URL, describeError(r.Err))
			continue
		}

		a := &extractedArticle{Source: r.URL, Article: *r.Article}

		if c.Format == "markdown" || store != nil {
			a.markdown, err = deps.Converter.ConvertArticle(r.Article)
			if err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.URL, describeError(err))
				return abort(store, err)
			}
		}
		if store != nil {
			if err := store.Save(r.URL, a.markdown); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s: %s\n", r.URL, describeError(err))
				return abort(store, err)
			}
		}

		if c.Save {
			record := &pagemeta.Record{
				SourceURL: r.URL,
				Metadata:  r.Article.Metadata,
				Language:  r.Article.Language,
			}
			if err := deps.Records.CreateRecord(deps.Ctx, record, r.Page.HTML); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", pagemeta.ErrorMessage(err))
				return abort(store, err)
			}
			fmt.Fprintf(deps.Stderr, "Saved %s as %s\n", r.URL, record.ID)
		}

		articles = append(articles, a)
	}

	if err := writeArticles(deps.Stdout, c.Format, articles); err != nil {
		return abort(store, err)
	}

	if store != nil {
		if err := store.Commit(); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", describeError(err))
			return err
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d sources failed", failed, len(results))
	}
	return nil
}

func writeArticles(w io.Writer, format string, articles []*extractedArticle) error {
	switch format {
	case "json":
		if articles == nil {
			articles = []*extractedArticle{}
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(articles)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(articles); err != nil {
			return err
		}
		return enc.Close()
	case "markdown":
		for i, a := range articles {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprint(w, a.markdown)
		}
	default:
		for i, a := range articles {
			if i > 0 {
				fmt.Fprintln(w)
			}
			writeField(w, "Source", a.Source)
			fmt.Fprint(w, pagemeta.FormatMetadata(&a.Metadata))
			if a.Language != "" {
				writeField(w, "Language", a.Language)
			}
			if a.Length > 0 {
				writeField(w, "Length", fmt.Sprint(a.Length))
			}
		}
	}
	return nil
}

func abort(store *fs.FileStore, err error) error {
	if store != nil {
		_ = store.Abort()
	}
	return err
}

// writeField writes a "Label: value" line aligned with pagemeta.FormatMetadata.
func writeField(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%-12s%s\n", label+":", value)
}

// describeError returns a user-facing message. Unlike ErrorMessage it keeps
// the text of non-application errors such as HTTP failures.
func describeError(err error) string {
	if pagemeta.ErrorCode(err) == pagemeta.EINTERNAL {
		return err.Error()
	}
	return pagemeta.ErrorMessage(err)
}
