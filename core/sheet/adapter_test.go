package sheet_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/cell"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/retry"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

// TestReadColumn_TruncatesTrailingBlanks tests the natural-length read.
func TestReadColumn_TruncatesTrailingBlanks(t *testing.T) {
	service := &mocks.Service{}
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C").
		Return([][]string{{"one"}, {""}, {"three"}, {""}, {"  "}}, nil)

	adapter := sheet.NewAdapter(service, retry.New(retry.Config{MaxRetries: 1}, zap.NewNop()), "sheet-1")
	values, err := adapter.ReadColumn(context.Background(), "Sheet1", "C", 2)

	assert.NoError(t, err)
	assert.Equal(t, []cell.Value{cell.Plain("one"), cell.Plain(""), cell.Plain("three")}, values)
	service.AssertExpectations(t)
}

// TestReadColumnN_PadsToLength tests that a short read is padded with empty
// cells instead of misaligning against its sibling column.
func TestReadColumnN_PadsToLength(t *testing.T) {
	service := &mocks.Service{}
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!D2:D6").
		Return([][]string{{"done"}, {""}}, nil)

	adapter := sheet.NewAdapter(service, retry.New(retry.Config{MaxRetries: 1}, zap.NewNop()), "sheet-1")
	values, err := adapter.ReadColumnN(context.Background(), "Sheet1", "D", 2, 5)

	assert.NoError(t, err)
	assert.Len(t, values, 5)
	assert.Equal(t, cell.Plain("done"), values[0])
	for _, v := range values[1:] {
		assert.True(t, v.IsEmpty())
	}
}

// TestReadColumnN_RejectsOverflow tests that more rows than requested is a
// structural length mismatch, never silently truncated.
func TestReadColumnN_RejectsOverflow(t *testing.T) {
	service := &mocks.Service{}
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!D2:D3").
		Return([][]string{{"a"}, {"b"}, {"c"}}, nil)

	adapter := sheet.NewAdapter(service, retry.New(retry.Config{MaxRetries: 1}, zap.NewNop()), "sheet-1")
	_, err := adapter.ReadColumnN(context.Background(), "Sheet1", "D", 2, 2)

	assert.ErrorIs(t, err, sheet.ErrLengthMismatch)
}

func TestReadColumn_ParsesTypedCells(t *testing.T) {
	service := &mocks.Service{}
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!D2:D").
		Return([][]string{
			{`=HYPERLINK("https://example.com/a.mp3", "sentence_000001.mp3")`},
			{`=GOOGLETRANSLATE(B3, "en", "zh-CN")`},
			{"plain"},
		}, nil)

	adapter := sheet.NewAdapter(service, retry.New(retry.Config{MaxRetries: 1}, zap.NewNop()), "sheet-1")
	values, err := adapter.ReadColumn(context.Background(), "Sheet1", "D", 2)

	assert.NoError(t, err)
	assert.Equal(t, cell.KindHyperlink, values[0].Kind)
	assert.Equal(t, "https://example.com/a.mp3", values[0].Href)
	assert.True(t, values[1].IsFormula())
	assert.Equal(t, cell.Plain("plain"), values[2])
}

func TestReadCell_MissingCellIsEmpty(t *testing.T) {
	service := &mocks.Service{}
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!D5:D5").
		Return([][]string{}, nil)

	adapter := sheet.NewAdapter(service, retry.New(retry.Config{MaxRetries: 1}, zap.NewNop()), "sheet-1")
	value, err := adapter.ReadCell(context.Background(), "Sheet1", "D", 5)

	assert.NoError(t, err)
	assert.True(t, value.IsEmpty())
}

// TestWriteColumn_SerializesCells tests that typed cells are written in the
// store's string form with user-entered parsing.
func TestWriteColumn_SerializesCells(t *testing.T) {
	service := &mocks.Service{}
	service.On("UpdateRange", mock.Anything, "sheet-1", "Sheet1!D4:D",
		[][]string{
			{`=HYPERLINK("https://example.com/a.mp3", "sentence_000004.mp3")`},
			{"plain"},
		}, sheet.InputUserEntered).
		Return(nil)

	adapter := sheet.NewAdapter(service, retry.New(retry.Config{MaxRetries: 1}, zap.NewNop()), "sheet-1")
	err := adapter.WriteColumn(context.Background(), "Sheet1", "D", 4, []cell.Value{
		cell.Hyperlink("https://example.com/a.mp3", "sentence_000004.mp3"),
		cell.Plain("plain"),
	})

	assert.NoError(t, err)
	service.AssertExpectations(t)
}

// TestReadColumn_RetriesTransientFailure tests that reads go through the
// shared retry executor.
func TestReadColumn_RetriesTransientFailure(t *testing.T) {
	service := &mocks.Service{}
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C").
		Return(nil, errors.New("http 500")).Once()
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C").
		Return([][]string{{"one"}}, nil).Once()

	executor := retry.New(retry.Config{MaxRetries: 3}, zap.NewNop(),
		retry.WithSleep(func(ctx context.Context, d time.Duration) error { return nil }))
	adapter := sheet.NewAdapter(service, executor, "sheet-1")
	values, err := adapter.ReadColumn(context.Background(), "Sheet1", "C", 2)

	assert.NoError(t, err)
	assert.Equal(t, []cell.Value{cell.Plain("one")}, values)
	service.AssertExpectations(t)
}
