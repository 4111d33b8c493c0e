package reconcile

import (
	"context"
	"errors"
	"testing"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/cell"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/retry"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func testDriverConfig() DriverConfig {
	return DriverConfig{
		Tab:      "Sheet1",
		Columns:  Columns{Source: "C", Marker: "D", ID: "A"},
		Headers:  Headers{Source: "translation", Marker: "audio_file", ID: "sentence_id"},
		StartRow: 2,
	}
}

// expectHeaders registers the row-1 reads structure validation performs.
func expectHeaders(service *mocks.Service, source, marker, id string) {
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C1:C1").Return([][]string{{source}}, nil)
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!D1:D1").Return([][]string{{marker}}, nil)
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!A1:A1").Return([][]string{{id}}, nil)
}

func newDriver(service sheet.Service, generator Generator, cfg DriverConfig) *Driver {
	executor := retry.New(retry.Config{MaxRetries: 1}, zap.NewNop())
	adapter := sheet.NewAdapter(service, executor, "sheet-1")
	return NewDriver(adapter, generator, cfg, zap.NewNop())
}

// TestDriver_ProcessesOnlyTheGap tests that rows with a marker are never
// touched and every gap row gets a generated marker.
func TestDriver_ProcessesOnlyTheGap(t *testing.T) {
	service := &mocks.Service{}
	expectHeaders(service, "translation", "audio_file", "sentence_id")
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C").
		Return([][]string{{"one"}, {"two"}, {"three"}}, nil)
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!D2:D4").
		Return([][]string{{`=HYPERLINK("https://example.com/1.mp3", "sentence_000001.mp3")`}}, nil)
	service.On("UpdateRange", mock.Anything, "sheet-1", "Sheet1!D3:D",
		[][]string{{"marker-3"}}, sheet.InputUserEntered).Return(nil)
	service.On("UpdateRange", mock.Anything, "sheet-1", "Sheet1!D4:D",
		[][]string{{"marker-4"}}, sheet.InputUserEntered).Return(nil)

	var seen []RowContext
	generator := GeneratorFunc(func(ctx context.Context, row RowContext) (*cell.Value, error) {
		seen = append(seen, row)
		marker := cell.Plain("marker-" + string(rune('0'+row.Row)))
		return &marker, nil
	})

	driver := newDriver(service, generator, testDriverConfig())
	summary, err := driver.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, &Summary{RowsFound: 3, RowsNeeded: 2, RowsProcessed: 2, RowsFailed: 0}, summary)
	assert.Equal(t, []RowContext{{Row: 3, Text: "two"}, {Row: 4, Text: "three"}}, seen)
	service.AssertExpectations(t)
}

// TestDriver_FullyReconciled tests the second-run idempotence property: a
// sheet with no gap produces no writes at all.
func TestDriver_FullyReconciled(t *testing.T) {
	service := &mocks.Service{}
	expectHeaders(service, "translation", "audio_file", "sentence_id")
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C").
		Return([][]string{{"one"}, {"two"}}, nil)
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!D2:D3").
		Return([][]string{{"done"}, {"done"}}, nil)

	generator := GeneratorFunc(func(ctx context.Context, row RowContext) (*cell.Value, error) {
		t.Fatal("generator must not be called for a reconciled sheet")
		return nil, nil
	})

	driver := newDriver(service, generator, testDriverConfig())
	summary, err := driver.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, &Summary{RowsFound: 2}, summary)
	service.AssertNotCalled(t, "UpdateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestDriver_HeaderMismatchAborts tests that structure validation fails the
// run before any state is read or written.
func TestDriver_HeaderMismatchAborts(t *testing.T) {
	tests := []struct {
		name   string
		header string
	}{
		{name: "wrong label", header: "audio"},
		{name: "missing header", header: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := &mocks.Service{}
			service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C1:C1").
				Return([][]string{{tt.header}}, nil)

			driver := newDriver(service, GeneratorFunc(nil), testDriverConfig())
			_, err := driver.Run(context.Background())

			assert.ErrorIs(t, err, ErrHeaderMismatch)
			service.AssertNotCalled(t, "UpdateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestDriver_HeaderMatchIsCaseInsensitive(t *testing.T) {
	service := &mocks.Service{}
	expectHeaders(service, "Translation", "AUDIO_FILE", "Sentence_ID")
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C").
		Return([][]string{}, nil)

	driver := newDriver(service, GeneratorFunc(nil), testDriverConfig())
	summary, err := driver.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, &Summary{}, summary)
}

// TestDriver_RowFailureDoesNotStopRun tests that a failing row is counted
// and skipped while later rows still get processed.
func TestDriver_RowFailureDoesNotStopRun(t *testing.T) {
	service := &mocks.Service{}
	expectHeaders(service, "translation", "audio_file", "sentence_id")
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C").
		Return([][]string{{"one"}, {"two"}}, nil)
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!D2:D3").
		Return([][]string{}, nil)
	service.On("UpdateRange", mock.Anything, "sheet-1", "Sheet1!D3:D",
		[][]string{{"ok"}}, sheet.InputUserEntered).Return(nil)

	generator := GeneratorFunc(func(ctx context.Context, row RowContext) (*cell.Value, error) {
		if row.Row == 2 {
			return nil, errors.New("synthesis failed")
		}
		marker := cell.Plain("ok")
		return &marker, nil
	})

	driver := newDriver(service, generator, testDriverConfig())
	summary, err := driver.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, &Summary{RowsFound: 2, RowsNeeded: 2, RowsProcessed: 1, RowsFailed: 1}, summary)
	service.AssertExpectations(t)
}

// TestDriver_SkippedRowWritesNothing tests the generator's nil/nil contract:
// the row is counted as failed and its marker cell is untouched.
func TestDriver_SkippedRowWritesNothing(t *testing.T) {
	service := &mocks.Service{}
	expectHeaders(service, "translation", "audio_file", "sentence_id")
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C").
		Return([][]string{{"one"}}, nil)
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!D2:D2").
		Return([][]string{}, nil)

	generator := GeneratorFunc(func(ctx context.Context, row RowContext) (*cell.Value, error) {
		return nil, nil
	})

	driver := newDriver(service, generator, testDriverConfig())
	summary, err := driver.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, &Summary{RowsFound: 1, RowsNeeded: 1, RowsFailed: 1}, summary)
	service.AssertNotCalled(t, "UpdateRange", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

// TestDriver_MaxRowsTruncatesFrontToBack tests the per-run cap.
func TestDriver_MaxRowsTruncatesFrontToBack(t *testing.T) {
	service := &mocks.Service{}
	expectHeaders(service, "translation", "audio_file", "sentence_id")
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C").
		Return([][]string{{"one"}, {"two"}, {"three"}}, nil)
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!D2:D4").
		Return([][]string{}, nil)
	service.On("UpdateRange", mock.Anything, "sheet-1", "Sheet1!D2:D",
		mock.Anything, sheet.InputUserEntered).Return(nil)
	service.On("UpdateRange", mock.Anything, "sheet-1", "Sheet1!D3:D",
		mock.Anything, sheet.InputUserEntered).Return(nil)

	var rows []int
	generator := GeneratorFunc(func(ctx context.Context, row RowContext) (*cell.Value, error) {
		rows = append(rows, row.Row)
		marker := cell.Plain("ok")
		return &marker, nil
	})

	cfg := testDriverConfig()
	cfg.MaxRows = 2
	driver := newDriver(service, generator, cfg)
	summary, err := driver.Run(context.Background())

	assert.NoError(t, err)
	assert.Equal(t, []int{2, 3}, rows)
	assert.Equal(t, &Summary{RowsFound: 3, RowsNeeded: 2, RowsProcessed: 2}, summary)
	service.AssertNotCalled(t, "UpdateRange", mock.Anything, "sheet-1", "Sheet1!D4:D", mock.Anything, mock.Anything)
}
