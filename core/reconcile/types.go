package reconcile

import (
	"context"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/cell"
)

// Columns names the sheet columns one reconciliation run operates on.
type Columns struct {
	// Source is the column letter holding the text to generate from.
	Source string
	// Marker is the column letter holding completion markers.
	Marker string
	// ID is the column letter holding stable sentence ids.
	ID string
}

// Headers holds the labels the driver requires in row 1 of each column.
// Matching is case-insensitive and exact.
type Headers struct {
	Source string
	Marker string
	ID     string
}

// RowContext carries everything a generator needs for one gap row.
type RowContext struct {
	// Row is the absolute 1-based row index in the sheet.
	Row int
	// Text is the source text for the row.
	Text string
}

// Generator produces the marker value for a single gap row.
//
// A nil value with a nil error means the row was skipped (the failure has
// already been logged); the driver writes nothing and the row stays in the
// gap set. A non-nil error is treated the same way at the row boundary.
// Generators must never upload a partial artifact and then fail: whatever
// the marker would point at must exist before the value is returned.
type Generator interface {
	Generate(ctx context.Context, row RowContext) (*cell.Value, error)
}

// GeneratorFunc adapts a function to the Generator interface.
type GeneratorFunc func(ctx context.Context, row RowContext) (*cell.Value, error)

func (f GeneratorFunc) Generate(ctx context.Context, row RowContext) (*cell.Value, error) {
	return f(ctx, row)
}

// Summary aggregates the outcome of one reconciliation run.
type Summary struct {
	// RowsFound is the natural length of the source column.
	RowsFound int `json:"rows_found"`
	// RowsNeeded is the gap size after the optional max-rows cap.
	RowsNeeded int `json:"rows_needed"`
	// RowsProcessed counts rows whose marker was successfully written.
	RowsProcessed int `json:"rows_processed"`
	// RowsFailed counts rows that were skipped after a generation or
	// persistence failure. They remain in the gap for the next run.
	RowsFailed int `json:"rows_failed"`
}
