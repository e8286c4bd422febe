// Package slog provides logging decorators for catcheck services.
package slog

import (
	"log/slog"
	"time"

	"github.com/kpawlak/catcheck"
)

// Ensure LoggingExtractor implements catcheck.CatalogExtractor.
var _ catcheck.CatalogExtractor = (*LoggingExtractor)(nil)

// LoggingExtractor wraps a CatalogExtractor with logging of extraction
// timing and result counts.
type LoggingExtractor struct {
	next   catcheck.CatalogExtractor
	logger *slog.Logger
}

// NewLoggingExtractor creates a new LoggingExtractor.
func NewLoggingExtractor(next catcheck.CatalogExtractor, logger *slog.Logger) *LoggingExtractor {
	return &LoggingExtractor{next: next, logger: logger}
}

// Extract delegates to the wrapped extractor and logs the outcome.
func (e *LoggingExtractor) Extract(html string) (*catcheck.Snapshot, error) {
	begin := time.Now()
	snap, err := e.next.Extract(html)
	if err != nil {
		e.logger.Error("catalog extraction failed",
			"error", err,
			"duration", time.Since(begin),
		)
		return nil, err
	}
	e.logger.Info("catalog extraction",
		"categories", snap.Stats.Categories,
		"products", snap.Stats.Products,
		"codes", snap.Stats.UniqueCodes,
		"duration", time.Since(begin),
	)
	return snap, nil
}
