package main

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/fwojciec/pagemeta"
	"gopkg.in/yaml.v3"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	record, err := deps.Records.FindRecordByID(deps.Ctx, c.ID)
	if err != nil {
		if pagemeta.ErrorCode(err) == pagemeta.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'pagemeta list' to see saved records.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagemeta.ErrorMessage(err))
		}
		return err
	}

	switch c.Format {
	case "json":
		enc := json.NewEncoder(deps.Stdout)
		enc.SetIndent("", "  ")
		return enc.Encode(record)
	case "yaml":
		enc := yaml.NewEncoder(deps.Stdout)
		enc.SetIndent(2)
		if err := enc.Encode(record); err != nil {
			return err
		}
		return enc.Close()
	}

	writeField(deps.Stdout, "ID", record.ID)
	writeField(deps.Stdout, "Source", record.SourceURL)
	writeField(deps.Stdout, "Extracted", record.ExtractedAt.Format(time.RFC3339))
	fmt.Fprint(deps.Stdout, pagemeta.FormatMetadata(&record.Metadata))
	if record.Language != "" {
		writeField(deps.Stdout, "Language", record.Language)
	}
	writeField(deps.Stdout, "Hash", record.ContentHash)
	return nil
}
