package catcheck

import (
	"context"
	"time"
)

// Run records the outcome of validating one catalog during one
// invocation of the validate command.
type Run struct {
	ID             string    `json:"id"`
	File           string    `json:"file"`
	Passed         bool      `json:"passed"`
	BeforeProducts int       `json:"beforeProducts"`
	AfterProducts  int       `json:"afterProducts"`
	ContentHash    string    `json:"contentHash,omitempty"`
	Error          string    `json:"error,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// Validate returns an error if the run contains invalid fields.
func (r *Run) Validate() error {
	if r.File == "" {
		return Errorf(EINVALID, "run file required")
	}
	return nil
}

// RunService stores and retrieves validation run history.
type RunService interface {
	// CreateRun records a new run.
	CreateRun(ctx context.Context, run *Run) error

	// FindRuns retrieves runs matching the filter, newest first.
	FindRuns(ctx context.Context, filter RunFilter) ([]*Run, error)
}

// RunFilter represents a filter for FindRuns.
type RunFilter struct {
	File  *string `json:"file"`
	Limit int     `json:"limit"`
}
