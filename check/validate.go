package check

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/kpawlak/catcheck"
	"github.com/kpawlak/catcheck/fs"
	"golang.org/x/sync/errgroup"
)

// Validator validates simplified catalog files against a before-inventory.
type Validator struct {
	Extractor   catcheck.CatalogExtractor
	Inventory   catcheck.InventoryReader
	Concurrency int

	// ReadFile is swappable for tests; defaults to fs.ReadCatalog.
	ReadFile func(path string) (string, error)
}

// validateResult carries one file's outcome back from a worker.
type validateResult struct {
	position int
	result   catcheck.FileResult
}

// Validate compares every catalog file against its inventory section.
// Results come back in the order of files. A file that cannot be read,
// extracted, or found in the inventory carries its error in its result
// and does not abort the rest of the job.
func (v *Validator) Validate(ctx context.Context, beforePath string, files []string, progress ProgressFunc) ([]catcheck.FileResult, error) {
	beforeText, err := v.readFile(beforePath)
	if err != nil {
		return nil, catcheck.Errorf(catcheck.EINTERNAL, "failed to read inventory %q: %v", beforePath, err)
	}

	inv, err := v.Inventory.ReadInventory(beforeText)
	if err != nil {
		return nil, err
	}

	concurrency := v.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(files)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan validateResult, total)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for i, file := range files {
			i, file := i, file
			g.Go(func() error {
				resultCh <- v.validateFile(inv, i, file)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	results := make([]catcheck.FileResult, total)
	completed := 0
	for r := range resultCh {
		completed++
		results[r.position] = r.result

		if progress != nil {
			event := ProgressEvent{
				Type:      ProgressCompleted,
				Completed: completed,
				Total:     total,
				File:      r.result.File,
			}
			if r.result.Err != nil {
				event.Type = ProgressFailed
				event.Err = r.result.Err
			}
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return results, nil
}

// Runs converts validation results into history records. The content
// hash ties each record to the exact catalog bytes that were validated.
func (v *Validator) Runs(results []catcheck.FileResult) []*catcheck.Run {
	runs := make([]*catcheck.Run, 0, len(results))
	for i := range results {
		r := &results[i]
		run := &catcheck.Run{
			File:   filepath.Base(r.File),
			Passed: r.Passed(),
		}
		if r.Comparison != nil {
			run.BeforeProducts = r.Comparison.Before.Products
			run.AfterProducts = r.Comparison.After.Products
		}
		if r.Err != nil {
			run.Error = catcheck.ErrorMessage(r.Err)
		}
		run.ContentHash = r.ContentHash
		runs = append(runs, run)
	}
	return runs
}

func (v *Validator) validateFile(inv catcheck.Inventory, position int, file string) validateResult {
	out := validateResult{position: position, result: catcheck.FileResult{File: file}}

	before, err := inv.Get(filepath.Base(file))
	if err != nil {
		out.result.Err = err
		return out
	}

	text, err := v.readFile(file)
	if err != nil {
		out.result.Err = catcheck.Errorf(catcheck.EINTERNAL, "failed to read catalog: %v", err)
		return out
	}
	out.result.ContentHash = contentHash(text)

	after, err := v.Extractor.Extract(text)
	if err != nil {
		out.result.Err = err
		return out
	}

	out.result.Comparison = catcheck.Compare(before, after)
	return out
}

func (v *Validator) readFile(path string) (string, error) {
	if v.ReadFile != nil {
		return v.ReadFile(path)
	}
	return fs.ReadCatalog(path)
}

// contentHash hashes catalog text with xxhash for run provenance.
func contentHash(content string) string {
	return fmt.Sprintf("%x", xxhash.Sum64String(content))
}
