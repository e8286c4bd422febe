package sqlite

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kpawlak/catcheck"
)

// Compile-time interface verification.
var _ catcheck.RunService = (*RunService)(nil)

// RunService implements catcheck.RunService using SQLite.
type RunService struct {
	db *DB
}

// NewRunService creates a new RunService.
func NewRunService(db *DB) *RunService {
	return &RunService{db: db}
}

// CreateRun records a new validation run.
func (s *RunService) CreateRun(ctx context.Context, run *catcheck.Run) error {
	if err := run.Validate(); err != nil {
		return err
	}

	run.ID = uuid.New().String()
	run.CreatedAt = time.Now().UTC()

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO runs (id, file, passed, before_products, after_products, content_hash, error, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`, run.ID, run.File, boolToInt(run.Passed), run.BeforeProducts, run.AfterProducts,
		run.ContentHash, run.Error, run.CreatedAt.Format(time.RFC3339))

	return err
}

// FindRuns retrieves runs matching the filter, newest first.
func (s *RunService) FindRuns(ctx context.Context, filter catcheck.RunFilter) ([]*catcheck.Run, error) {
	var query strings.Builder
	var args []any

	query.WriteString(`
		SELECT id, file, passed, before_products, after_products, content_hash, error, created_at
		FROM runs
		WHERE 1=1`)

	if filter.File != nil {
		query.WriteString(" AND file = ?")
		args = append(args, *filter.File)
	}

	query.WriteString(" ORDER BY created_at DESC, id")

	if filter.Limit > 0 {
		query.WriteString(" LIMIT ?")
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var runs []*catcheck.Run
	for rows.Next() {
		var run catcheck.Run
		var passed int
		var createdAt string

		if err := rows.Scan(&run.ID, &run.File, &passed, &run.BeforeProducts,
			&run.AfterProducts, &run.ContentHash, &run.Error, &createdAt); err != nil {
			return nil, err
		}

		run.Passed = passed != 0
		run.CreatedAt, err = time.Parse(time.RFC3339, createdAt)
		if err != nil {
			return nil, fmt.Errorf("failed to parse created_at: %w", err)
		}

		runs = append(runs, &run)
	}

	return runs, rows.Err()
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
