package main

import (
	"fmt"

	"github.com/fwojciec/pagemeta"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return pagemeta.Errorf(pagemeta.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Records.DeleteRecord(deps.Ctx, c.ID); err != nil {
		if pagemeta.ErrorCode(err) == pagemeta.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: record %q not found. Use 'pagemeta list' to see saved records.\n", c.ID)
		} else {
			fmt.Fprintf(deps.Stderr, "error: %s\n", pagemeta.ErrorMessage(err))
		}
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted record %s\n", c.ID)
	return nil
}
