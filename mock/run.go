package mock

import (
	"context"

	"github.com/kpawlak/catcheck"
)

var _ catcheck.RunService = (*RunService)(nil)

// RunService is a mock implementation of catcheck.RunService.
type RunService struct {
	CreateRunFn func(ctx context.Context, run *catcheck.Run) error
	FindRunsFn  func(ctx context.Context, filter catcheck.RunFilter) ([]*catcheck.Run, error)
}

func (s *RunService) CreateRun(ctx context.Context, run *catcheck.Run) error {
	return s.CreateRunFn(ctx, run)
}

func (s *RunService) FindRuns(ctx context.Context, filter catcheck.RunFilter) ([]*catcheck.Run, error) {
	return s.FindRunsFn(ctx, filter)
}
