package main

import (
	"fmt"
	"time"

	"github.com/kpawlak/catcheck"
)

// Run executes the runs command.
func (c *RunsCmd) Run(deps *Dependencies) error {
	filter := catcheck.RunFilter{Limit: c.Limit}
	if c.File != "" {
		filter.File = &c.File
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", catcheck.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No recorded runs. Use 'catcheck validate' to create some.")
		return nil
	}

	for _, r := range runs {
		status := "PASS"
		if !r.Passed {
			status = "FAIL"
		}
		fmt.Fprintf(deps.Stdout, "%s  %s  %s  %s", r.ID, r.CreatedAt.Format(time.RFC3339), status, r.File)
		if r.Error != "" {
			fmt.Fprintf(deps.Stdout, "  (%s)", r.Error)
		}
		fmt.Fprintln(deps.Stdout)
	}

	return nil
}
