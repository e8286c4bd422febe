package check

import (
	"context"

	"github.com/kpawlak/catcheck"
	"github.com/kpawlak/catcheck/fs"
	"golang.org/x/sync/errgroup"
)

// SimplifyResult holds the aggregate outcome of a simplification job.
type SimplifyResult struct {
	Processed   int
	Failed      int
	Unchanged   int
	BytesBefore int
	BytesAfter  int
}

// Simplifier runs the in-place simplification job across catalog files.
type Simplifier struct {
	Transform   catcheck.Simplifier
	Concurrency int

	// ReadFile and WriteFile are swappable for tests; they default to
	// fs.ReadCatalog and fs.RewriteCatalog.
	ReadFile  func(path string) (string, error)
	WriteFile func(path, content string) error
}

// simplifyResult carries one file's outcome back from a worker.
type simplifyResult struct {
	file        string
	bytesBefore int
	bytesAfter  int
	unchanged   bool
	err         error
}

// Run simplifies every catalog file in place. A file's failure is
// terminal for that file only; the job continues and the aggregate
// result reports partial success. Files whose content the transforms do
// not change are left untouched on disk.
func (s *Simplifier) Run(ctx context.Context, files []string, progress ProgressFunc) (*SimplifyResult, error) {
	concurrency := s.Concurrency
	if concurrency <= 0 {
		concurrency = 4
	}

	total := len(files)
	if progress != nil {
		progress(ProgressEvent{Type: ProgressStarted, Total: total})
	}

	resultCh := make(chan simplifyResult, total)

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	go func() {
		for _, file := range files {
			file := file
			g.Go(func() error {
				resultCh <- s.simplifyFile(file)
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	result := &SimplifyResult{}
	completed := 0
	for r := range resultCh {
		completed++

		event := ProgressEvent{
			Type:        ProgressCompleted,
			Completed:   completed,
			Total:       total,
			File:        r.file,
			BytesBefore: r.bytesBefore,
			BytesAfter:  r.bytesAfter,
		}

		if r.err != nil {
			result.Failed++
			event.Type = ProgressFailed
			event.Err = r.err
		} else {
			result.Processed++
			result.BytesBefore += r.bytesBefore
			result.BytesAfter += r.bytesAfter
			if r.unchanged {
				result.Unchanged++
			}
		}

		if progress != nil {
			progress(event)
		}
	}

	if progress != nil {
		progress(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})
	}

	return result, nil
}

func (s *Simplifier) simplifyFile(file string) simplifyResult {
	out := simplifyResult{file: file}

	content, err := s.readFile(file)
	if err != nil {
		out.err = catcheck.Errorf(catcheck.EINTERNAL, "failed to read catalog: %v", err)
		return out
	}
	out.bytesBefore = len(content)

	simplified, err := s.Transform.Simplify(content)
	if err != nil {
		out.err = err
		return out
	}
	out.bytesAfter = len(simplified)

	// An already-simplified catalog round-trips unchanged; skip the
	// rewrite so repeated runs stay idempotent on disk.
	if simplified == content {
		out.unchanged = true
		return out
	}

	if err := s.writeFile(file, simplified); err != nil {
		out.err = catcheck.Errorf(catcheck.EINTERNAL, "failed to rewrite catalog: %v", err)
		return out
	}
	return out
}

func (s *Simplifier) readFile(path string) (string, error) {
	if s.ReadFile != nil {
		return s.ReadFile(path)
	}
	return fs.ReadCatalog(path)
}

func (s *Simplifier) writeFile(path, content string) error {
	if s.WriteFile != nil {
		return s.WriteFile(path, content)
	}
	return fs.RewriteCatalog(path, content)
}
