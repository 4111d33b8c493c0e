package reconcile

import (
	"context"
	"fmt"
	"strings"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"

	"go.uber.org/zap"
)

// DriverConfig bundles the parameters for one reconciliation run.
type DriverConfig struct {
	// Tab is the tab name the run operates on.
	Tab string
	// Columns names the source, marker, and id columns.
	Columns Columns
	// Headers holds the required row-1 labels for each column.
	Headers Headers
	// StartRow is the first data row, below the header.
	StartRow int
	// MaxRows caps how many gap rows one run processes. Zero means no cap.
	// The cap truncates the ordered gap list after computation, so repeated
	// capped runs walk the sheet front to back.
	MaxRows int
}

// Driver orchestrates one reconciliation run: read state, compute the gap,
// and process gap rows strictly in ascending row order.
type Driver struct {
	adapter   *sheet.Adapter
	generator Generator
	cfg       DriverConfig
	logger    *zap.Logger
}

// NewDriver creates a Driver. All collaborators are explicit dependencies so
// tests can substitute fakes without global state.
func NewDriver(adapter *sheet.Adapter, generator Generator, cfg DriverConfig, logger *zap.Logger) *Driver {
	return &Driver{
		adapter:   adapter,
		generator: generator,
		cfg:       cfg,
		logger:    logger,
	}
}

// Run executes the reconciliation state machine:
//
//	Init -> ValidateStructure -> ReadState -> ComputeGap -> ProcessRow* -> Done
//
// Structural failures abort with an error before any row is touched. Row
// failures are logged and skipped; the run continues and reports them in the
// summary. An empty gap terminates immediately without further writes.
func (d *Driver) Run(ctx context.Context) (*Summary, error) {
	if err := d.validateStructure(ctx); err != nil {
		return nil, err
	}

	// ReadState: the source column defines the natural length, the marker
	// column is padded to match so the two align by row offset.
	sources, err := d.adapter.ReadColumn(ctx, d.cfg.Tab, d.cfg.Columns.Source, d.cfg.StartRow)
	if err != nil {
		return nil, fmt.Errorf("failed to read source column %s: %w", d.cfg.Columns.Source, err)
	}
	if len(sources) == 0 {
		d.logger.Info("Source column is empty, nothing to do")
		return &Summary{}, nil
	}
	markers, err := d.adapter.ReadColumnN(ctx, d.cfg.Tab, d.cfg.Columns.Marker, d.cfg.StartRow, len(sources))
	if err != nil {
		return nil, fmt.Errorf("failed to read marker column %s: %w", d.cfg.Columns.Marker, err)
	}

	gap, err := FindGap(sources, markers, d.cfg.StartRow, d.logger)
	if err != nil {
		return nil, err
	}

	summary := &Summary{RowsFound: len(sources)}

	if len(gap) == 0 {
		d.logger.Info("No rows need processing, nothing to do",
			zap.Int("rows_found", summary.RowsFound))
		return summary, nil
	}

	if d.cfg.MaxRows > 0 && len(gap) > d.cfg.MaxRows {
		d.logger.Info("Limiting processing to first rows of the gap",
			zap.Int("gap_size", len(gap)),
			zap.Int("max_rows", d.cfg.MaxRows))
		gap = gap[:d.cfg.MaxRows]
	}
	summary.RowsNeeded = len(gap)

	d.logger.Info("Gap computed",
		zap.Int("rows_found", summary.RowsFound),
		zap.Int("rows_needed", summary.RowsNeeded))

	for _, row := range gap {
		if err := ctx.Err(); err != nil {
			return summary, err
		}
		text := sources[row-d.cfg.StartRow].Text
		if d.processRow(ctx, row, text) {
			summary.RowsProcessed++
		} else {
			summary.RowsFailed++
		}
	}

	d.logger.Info("Reconciliation run complete",
		zap.Int("rows_found", summary.RowsFound),
		zap.Int("rows_needed", summary.RowsNeeded),
		zap.Int("rows_processed", summary.RowsProcessed),
		zap.Int("rows_failed", summary.RowsFailed))
	return summary, nil
}

// processRow generates and persists the marker for one gap row. Failures are
// contained at the row boundary: they are logged, no marker is written, and
// the row stays in the gap for the next run.
func (d *Driver) processRow(ctx context.Context, row int, text string) bool {
	marker, err := d.generator.Generate(ctx, RowContext{Row: row, Text: text})
	if err != nil {
		d.logger.Error("Failed to generate artifact for row",
			zap.Int("row", row), zap.Error(err))
		return false
	}
	if marker == nil {
		// The generator already logged the reason for the skip.
		return false
	}

	if err := d.adapter.WriteCell(ctx, d.cfg.Tab, d.cfg.Columns.Marker, row, *marker); err != nil {
		d.logger.Error("Failed to write marker for row",
			zap.Int("row", row), zap.Error(err))
		return false
	}

	d.logger.Info("Row processed", zap.Int("row", row))
	return true
}

// validateStructure checks that each required column carries its expected
// header label in row 1. A mismatch is a structural precondition failure and
// aborts the run.
func (d *Driver) validateStructure(ctx context.Context) error {
	checks := []struct {
		column string
		want   string
	}{
		{d.cfg.Columns.Source, d.cfg.Headers.Source},
		{d.cfg.Columns.Marker, d.cfg.Headers.Marker},
		{d.cfg.Columns.ID, d.cfg.Headers.ID},
	}

	for _, check := range checks {
		if check.want == "" {
			continue
		}
		header, err := d.adapter.ReadCell(ctx, d.cfg.Tab, check.column, 1)
		if err != nil {
			return fmt.Errorf("failed to read header of column %s: %w", check.column, err)
		}
		got := strings.TrimSpace(header.Text)
		if got == "" {
			return fmt.Errorf("%w: column %s is missing a header, want %q",
				ErrHeaderMismatch, check.column, check.want)
		}
		if !strings.EqualFold(got, check.want) {
			return fmt.Errorf("%w: column %s has header %q, want %q",
				ErrHeaderMismatch, check.column, got, check.want)
		}
	}

	d.logger.Info("Sheet structure validated",
		zap.String("tab", d.cfg.Tab),
		zap.String("source_column", d.cfg.Columns.Source),
		zap.String("marker_column", d.cfg.Columns.Marker),
		zap.String("id_column", d.cfg.Columns.ID))
	return nil
}
