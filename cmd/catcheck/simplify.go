package main

import (
	"fmt"
	"path/filepath"

	"github.com/kpawlak/catcheck"
	"github.com/kpawlak/catcheck/check"
)

// Run executes the simplify command.
func (c *SimplifyCmd) Run(deps *Dependencies) error {
	files := c.Files
	if len(files) == 0 {
		files = defaultCatalogFiles
	}

	paths := make([]string, len(files))
	for i, file := range files {
		paths[i] = resolvePath(c.Dir, file)
	}

	job := &check.Simplifier{
		Transform:   deps.Simplifier,
		Concurrency: c.Concurrency,
	}

	result, err := job.Run(deps.Ctx, paths, func(e check.ProgressEvent) {
		switch e.Type {
		case check.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Simplifying %d catalog files...\n", e.Total)
		case check.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s: %s to %s (%s)\n",
				e.Completed, e.Total, filepath.Base(e.File),
				check.FormatBytes(e.BytesBefore), check.FormatBytes(e.BytesAfter),
				check.FormatReduction(e.BytesBefore, e.BytesAfter))
		case check.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s FAILED: %s\n",
				e.Completed, e.Total, filepath.Base(e.File), catcheck.ErrorMessage(e.Err))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", catcheck.ErrorMessage(err))
		return err
	}

	total := result.Processed + result.Failed
	fmt.Fprintf(deps.Stdout, "\n%d/%d files processed successfully", result.Processed, total)
	if result.Unchanged > 0 {
		fmt.Fprintf(deps.Stdout, " (%d already simplified)", result.Unchanged)
	}
	fmt.Fprintf(deps.Stdout, ", %s to %s (%s)\n",
		check.FormatBytes(result.BytesBefore), check.FormatBytes(result.BytesAfter),
		check.FormatReduction(result.BytesBefore, result.BytesAfter))

	if result.Failed > 0 {
		return catcheck.Errorf(catcheck.EINTERNAL, "%d of %d files failed", result.Failed, total)
	}
	return nil
}
