package main

import (
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/kpawlak/catcheck"
	"github.com/kpawlak/catcheck/check"
	"github.com/kpawlak/catcheck/fs"
)

// Run executes the validate command.
func (c *ValidateCmd) Run(deps *Dependencies) error {
	files := c.Files
	if len(files) == 0 {
		files = defaultCatalogFiles
	}

	paths := make([]string, len(files))
	for i, file := range files {
		paths[i] = resolvePath(c.Dir, file)
	}

	v := &check.Validator{
		Extractor:   deps.Extractor,
		Inventory:   deps.Inventory,
		Concurrency: c.Concurrency,
	}

	results, err := v.Validate(deps.Ctx, resolvePath(c.Dir, c.Before), paths, func(e check.ProgressEvent) {
		switch e.Type {
		case check.ProgressStarted:
			fmt.Fprintf(deps.Stdout, "Validating %d catalog files...\n", e.Total)
		case check.ProgressCompleted:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s\n", e.Completed, e.Total, filepath.Base(e.File))
		case check.ProgressFailed:
			fmt.Fprintf(deps.Stdout, "  [%d/%d] %s FAILED: %s\n",
				e.Completed, e.Total, filepath.Base(e.File), catcheck.ErrorMessage(e.Err))
		}
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", catcheck.ErrorMessage(err))
		return err
	}

	// Render base names so the report is stable across working directories.
	for i := range results {
		results[i].File = filepath.Base(results[i].File)
	}

	var report bytes.Buffer
	if err := catcheck.WriteReport(&report, results); err != nil {
		return err
	}

	reportPath := resolvePath(c.Dir, c.Report)
	if err := fs.WriteReport(reportPath, report.String()); err != nil {
		fmt.Fprintf(deps.Stderr, "error: failed to write report: %s\n", err)
		return err
	}
	fmt.Fprintf(deps.Stdout, "\nValidation report written to %s\n", reportPath)

	if deps.Runs != nil {
		for _, run := range v.Runs(results) {
			if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
				fmt.Fprintf(deps.Stderr, "warning: failed to record run: %s\n", catcheck.ErrorMessage(err))
				break
			}
		}
	}

	if !catcheck.AllPassed(results) {
		failed := 0
		for i := range results {
			if !results[i].Passed() {
				failed++
			}
		}
		return catcheck.Errorf(catcheck.ECONFLICT, "validation failed for %d of %d catalogs", failed, len(results))
	}

	fmt.Fprintf(deps.Stdout, "All %d catalogs validated successfully\n", len(results))
	return nil
}

// resolvePath joins a relative path with the base directory; absolute
// paths are used as-is.
func resolvePath(dir, path string) string {
	if filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}
