package check_test

import (
	"context"
	"strings"
	"sync"
	"testing"

	"github.com/kpawlak/catcheck/check"
	"github.com/kpawlak/catcheck/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimplifier_Run(t *testing.T) {
	t.Parallel()

	contents := map[string]string{
		"catalog_mobility_aids.html":     "aaaa<junk/>bbbb",
		"catalog_diabetic_hospital.html": "cccc",
	}

	var mu sync.Mutex
	written := map[string]string{}

	s := &check.Simplifier{
		Transform: &mock.Simplifier{
			SimplifyFn: func(html string) (string, error) {
				return strings.ReplaceAll(html, "<junk/>", ""), nil
			},
		},
		ReadFile: func(path string) (string, error) {
			return contents[path], nil
		},
		WriteFile: func(path, content string) error {
			mu.Lock()
			defer mu.Unlock()
			written[path] = content
			return nil
		},
	}

	result, err := s.Run(context.Background(), []string{"catalog_mobility_aids.html", "catalog_diabetic_hospital.html"}, nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result.Processed)
	assert.Equal(t, 0, result.Failed)
	assert.Equal(t, 1, result.Unchanged)
	assert.Equal(t, len("aaaa<junk/>bbbb")+len("cccc"), result.BytesBefore)
	assert.Equal(t, len("aaaabbbb")+len("cccc"), result.BytesAfter)

	// Only the changed file is rewritten.
	assert.Equal(t, map[string]string{"catalog_mobility_aids.html": "aaaabbbb"}, written)
}

func TestSimplifier_FileErrorsAreIsolated(t *testing.T) {
	t.Parallel()

	s := &check.Simplifier{
		Transform: &mock.Simplifier{
			SimplifyFn: func(html string) (string, error) {
				return html, nil
			},
		},
		ReadFile: func(path string) (string, error) {
			if path == "bad.html" {
				return "", assert.AnError
			}
			return "ok", nil
		},
		WriteFile: func(path, content string) error {
			t.Errorf("unexpected write to %s", path)
			return nil
		},
	}

	var failures []string
	result, err := s.Run(context.Background(), []string{"good.html", "bad.html"}, func(e check.ProgressEvent) {
		if e.Type == check.ProgressFailed {
			failures = append(failures, e.File)
		}
	})
	require.NoError(t, err)

	assert.Equal(t, 1, result.Processed)
	assert.Equal(t, 1, result.Failed)
	assert.Equal(t, []string{"bad.html"}, failures)
}

func TestSimplifier_ReportsByteReduction(t *testing.T) {
	t.Parallel()

	s := &check.Simplifier{
		Transform: &mock.Simplifier{
			SimplifyFn: func(html string) (string, error) {
				return html[:2], nil
			},
		},
		Concurrency: 1,
		ReadFile: func(path string) (string, error) {
			return "12345678", nil
		},
		WriteFile: func(path, content string) error {
			return nil
		},
	}

	var events []check.ProgressEvent
	_, err := s.Run(context.Background(), []string{"catalog_therapeutic.html"}, func(e check.ProgressEvent) {
		events = append(events, e)
	})
	require.NoError(t, err)

	require.Len(t, events, 3)
	completed := events[1]
	assert.Equal(t, check.ProgressCompleted, completed.Type)
	assert.Equal(t, 8, completed.BytesBefore)
	assert.Equal(t, 2, completed.BytesAfter)
}
