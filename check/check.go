// Package check orchestrates per-catalog batch jobs. It fans out over
// the catalog file list with a bounded worker group, isolates each
// file's failures, and collects results in the original file order
// before they reach the reporter.
package check

// ProgressEvent reports progress during a job.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	File      string
	Err       error

	// Byte counts for simplification events; zero for validation.
	BytesBefore int
	BytesAfter  int
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting job progress. It is invoked
// from the collecting goroutine, never concurrently.
type ProgressFunc func(event ProgressEvent)
