package workbook

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

// newTestWorkbook writes a small fixture file and opens it as a Store.
func newTestWorkbook(t *testing.T, rows [][]string) *Store {
	t.Helper()

	f := excelize.NewFile()
	for i, row := range rows {
		for j, value := range row {
			ref, err := excelize.CoordinatesToCellName(j+1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetCellValue("Sheet1", ref, value))
		}
	}

	path := filepath.Join(t.TempDir(), "Mandarin.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	store, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestGetRange_OpenEnded(t *testing.T) {
	store := newTestWorkbook(t, [][]string{
		{"sentence_id", "sentence"},
		{"1", "ni hao"},
		{"2", "zai jian"},
	})

	matrix, err := store.GetRange(context.Background(), "ignored", "Sheet1!B2:B")

	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"ni hao"}, {"zai jian"}}, matrix)
}

func TestGetRange_BoundedKeepsInteriorBlanks(t *testing.T) {
	store := newTestWorkbook(t, [][]string{
		{"a"},
		{""},
		{"c"},
		{""},
	})

	matrix, err := store.GetRange(context.Background(), "ignored", "Sheet1!A1:A4")

	assert.NoError(t, err)
	// The trailing blank row is trimmed, the interior one is kept.
	assert.Equal(t, [][]string{{"a"}, {""}, {"c"}}, matrix)
}

// TestUpdateRange_FormulaRoundTrip tests that user-entered formulas are
// stored as formulas and read back with their '=' marker.
func TestUpdateRange_FormulaRoundTrip(t *testing.T) {
	store := newTestWorkbook(t, [][]string{{"header"}})

	err := store.UpdateRange(context.Background(), "ignored", "Sheet1!A2:C",
		[][]string{{"1", "hello", `=GOOGLETRANSLATE(B2, "en", "ja")`}}, sheet.InputUserEntered)
	assert.NoError(t, err)

	matrix, err := store.GetRange(context.Background(), "ignored", "Sheet1!A2:C2")
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "hello", `=GOOGLETRANSLATE(B2, "en", "ja")`}}, matrix)
}

func TestUpdateRange_RawKeepsFormulaText(t *testing.T) {
	store := newTestWorkbook(t, nil)

	err := store.UpdateRange(context.Background(), "ignored", "Sheet1!A1:A1",
		[][]string{{"=not a formula"}}, sheet.InputRaw)
	assert.NoError(t, err)

	value, err := store.file.GetCellFormula("Sheet1", "A1")
	assert.NoError(t, err)
	assert.Empty(t, value)
}

func TestBatchFormat_DeleteColumn(t *testing.T) {
	store := newTestWorkbook(t, [][]string{
		{"1", "hello", "formula", "konnichiwa"},
	})

	err := store.BatchFormat(context.Background(), "ignored", []sheet.FormatOp{
		sheet.DeleteColumn(0, 2),
	})
	assert.NoError(t, err)

	matrix, err := store.GetRange(context.Background(), "ignored", "Sheet1!A1:C1")
	assert.NoError(t, err)
	assert.Equal(t, [][]string{{"1", "hello", "konnichiwa"}}, matrix)
}

func TestBatchFormat_UnknownTab(t *testing.T) {
	store := newTestWorkbook(t, nil)

	err := store.BatchFormat(context.Background(), "ignored", []sheet.FormatOp{
		sheet.FreezeRows(5, 1),
	})
	assert.Error(t, err)
}

func TestGetMetadata_TitleFromFilename(t *testing.T) {
	store := newTestWorkbook(t, nil)

	meta, err := store.GetMetadata(context.Background(), "ignored")

	assert.NoError(t, err)
	assert.Equal(t, "Mandarin", meta.Title)
	assert.Equal(t, []sheet.Tab{{ID: 0, Name: "Sheet1"}}, meta.Tabs)
}

func TestCreate_Refused(t *testing.T) {
	store := newTestWorkbook(t, nil)

	_, err := store.Create(context.Background(), "New", "")
	assert.Error(t, err)
}
