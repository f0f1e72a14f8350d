package main

import (
	"fmt"

	"github.com/fwojciec/pagemeta"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := pagemeta.RecordFilter{Limit: c.Limit}
	if c.URL != "" {
		filter.SourceURL = &c.URL
	}

	records, err := deps.Records.FindRecords(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", pagemeta.ErrorMessage(err))
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(deps.Stdout, "No records found. Use 'pagemeta extract --save' to create one.")
		return nil
	}

	for _, r := range records {
		title := r.Metadata.Title
		if title == "" {
			title = "(untitled)"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s\n", r.ID, r.ExtractedAt.Format("2006-01-02"), title, r.SourceURL)
	}

	return nil
}
