package slog

import (
	"log/slog"
	"time"

	"github.com/kpawlak/catcheck"
)

// Ensure LoggingSimplifier implements catcheck.Simplifier.
var _ catcheck.Simplifier = (*LoggingSimplifier)(nil)

// LoggingSimplifier wraps a Simplifier with logging of byte reduction
// and timing.
type LoggingSimplifier struct {
	next   catcheck.Simplifier
	logger *slog.Logger
}

// NewLoggingSimplifier creates a new LoggingSimplifier.
func NewLoggingSimplifier(next catcheck.Simplifier, logger *slog.Logger) *LoggingSimplifier {
	return &LoggingSimplifier{next: next, logger: logger}
}

// Simplify delegates to the wrapped simplifier and logs the outcome.
func (s *LoggingSimplifier) Simplify(html string) (string, error) {
	begin := time.Now()
	out, err := s.next.Simplify(html)
	if err != nil {
		s.logger.Error("simplification failed",
			"error", err,
			"duration", time.Since(begin),
		)
		return "", err
	}
	s.logger.Info("simplification",
		"bytes_before", len(html),
		"bytes_after", len(out),
		"duration", time.Since(begin),
	)
	return out, nil
}
