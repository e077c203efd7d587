// Package datagen provides data generation utilities for pgedge-datagen.
package datagen

import (
	"fmt"
	"sync/atomic"

	"github.com/pgEdge/pgedge-datagen/internal/logging"
)

// ProgressReporter tracks and reports generation progress for a single
// artifact or the fact table. Safe for concurrent updates.
type ProgressReporter struct {
	name             string
	totalRows        int64
	currentRow       atomic.Int64
	progressInterval int64
}

// NewProgressReporter creates a new progress reporter. interval is the
// number of rows between log lines.
func NewProgressReporter(name string, totalRows int64, interval int64) *ProgressReporter {
	if interval < 1 {
		interval = 1
	}
	return &ProgressReporter{
		name:             name,
		totalRows:        totalRows,
		progressInterval: interval,
	}
}

// Update updates the progress and logs if necessary.
func (p *ProgressReporter) Update(rowsGenerated int64) {
	newRow := p.currentRow.Add(rowsGenerated)
	oldRow := newRow - rowsGenerated

	// Check if we crossed a progress interval
	if newRow/p.progressInterval > oldRow/p.progressInterval {
		pct := float64(newRow) / float64(p.totalRows) * 100
		logging.Info().
			Str("artifact", p.name).
			Int64("rows", newRow).
			Int64("total", p.totalRows).
			Float64("percent", pct).
			Msg("Generating data")
	}
}

// Done logs completion.
func (p *ProgressReporter) Done() {
	logging.Info().
		Str("artifact", p.name).
		Int64("rows", p.currentRow.Load()).
		Msg("Artifact complete")
}

// FormatRows formats a row count as a short human-readable string.
func FormatRows(n int64) string {
	switch {
	case n >= 1_000_000_000:
		return fmt.Sprintf("%dB", n/1_000_000_000)
	case n >= 1_000_000:
		return fmt.Sprintf("%dM", n/1_000_000)
	case n >= 1_000:
		return fmt.Sprintf("%dK", n/1_000)
	default:
		return fmt.Sprintf("%d", n)
	}
}
