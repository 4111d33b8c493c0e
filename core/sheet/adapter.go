package sheet

import (
	"context"
	"fmt"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/cell"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/retry"
)

// Adapter exposes a spreadsheet as named, 1-indexed column ranges of typed
// cells. All remote calls go through the shared retry executor.
type Adapter struct {
	service       Service
	executor      *retry.Executor
	spreadsheetID string
}

// NewAdapter creates an Adapter bound to one spreadsheet.
func NewAdapter(service Service, executor *retry.Executor, spreadsheetID string) *Adapter {
	return &Adapter{
		service:       service,
		executor:      executor,
		spreadsheetID: spreadsheetID,
	}
}

// SpreadsheetID returns the identifier of the bound spreadsheet.
func (a *Adapter) SpreadsheetID() string {
	return a.spreadsheetID
}

// ReadColumn reads one column starting at startRow and returns its cells with
// trailing empty entries truncated. The result length defines the column's
// natural logical length.
func (a *Adapter) ReadColumn(ctx context.Context, tab, column string, startRow int) ([]cell.Value, error) {
	values, err := a.fetchColumn(ctx, ColumnRange(tab, column, startRow, 0))
	if err != nil {
		return nil, err
	}
	for len(values) > 0 && values[len(values)-1].IsEmpty() {
		values = values[:len(values)-1]
	}
	return values, nil
}

// ReadColumnN reads one column starting at startRow, padded with empty cells
// to exactly length cells so it aligns positionally with another column read
// at the same start row. Existing values are never truncated.
func (a *Adapter) ReadColumnN(ctx context.Context, tab, column string, startRow, length int) ([]cell.Value, error) {
	values, err := a.fetchColumn(ctx, ColumnRange(tab, column, startRow, startRow+length-1))
	if err != nil {
		return nil, err
	}
	for len(values) < length {
		values = append(values, cell.Plain(""))
	}
	if len(values) != length {
		return nil, fmt.Errorf("%w: column %s has %d rows, want %d", ErrLengthMismatch, column, len(values), length)
	}
	return values, nil
}

// ReadCell reads a single cell.
func (a *Adapter) ReadCell(ctx context.Context, tab, column string, row int) (cell.Value, error) {
	values, err := a.fetchColumn(ctx, CellRef(tab, column, row))
	if err != nil {
		return cell.Value{}, err
	}
	if len(values) == 0 {
		return cell.Plain(""), nil
	}
	return values[0], nil
}

// WriteColumn writes cells into one column starting at startRow, one row per
// element in order. The target range is open-ended; a crash mid-write leaves
// only the rows written so far updated, which the next run observes as still
// unprocessed.
func (a *Adapter) WriteColumn(ctx context.Context, tab, column string, startRow int, values []cell.Value) error {
	matrix := make([][]string, len(values))
	for i, v := range values {
		matrix[i] = []string{v.String()}
	}
	rangeName := ColumnRange(tab, column, startRow, 0)
	return a.executor.Do(ctx, "sheet.update", func() error {
		return a.service.UpdateRange(ctx, a.spreadsheetID, rangeName, matrix, InputUserEntered)
	})
}

// WriteCell writes a single cell.
func (a *Adapter) WriteCell(ctx context.Context, tab, column string, row int, value cell.Value) error {
	return a.WriteColumn(ctx, tab, column, row, []cell.Value{value})
}

// fetchColumn reads an A1 column range through the retry executor and
// flattens the matrix into typed cells, filling ragged rows with empties.
func (a *Adapter) fetchColumn(ctx context.Context, rangeName string) ([]cell.Value, error) {
	var matrix [][]string
	err := a.executor.Do(ctx, "sheet.get", func() error {
		var opErr error
		matrix, opErr = a.service.GetRange(ctx, a.spreadsheetID, rangeName)
		return opErr
	})
	if err != nil {
		return nil, err
	}

	values := make([]cell.Value, len(matrix))
	for i, row := range matrix {
		if len(row) == 0 {
			values[i] = cell.Plain("")
			continue
		}
		values[i] = cell.Parse(row[0])
	}
	return values, nil
}
