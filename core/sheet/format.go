package sheet

// FormatOpType identifies a cosmetic formatting operation.
type FormatOpType string

const (
	// OpColumnFont sets the font family and/or size of a whole column.
	OpColumnFont FormatOpType = "column_font"
	// OpRowFont sets the font family of a whole row.
	OpRowFont FormatOpType = "row_font"
	// OpAutoResizeColumns auto-sizes a half-open column index range.
	OpAutoResizeColumns FormatOpType = "auto_resize_columns"
	// OpDeleteColumn removes a single column.
	OpDeleteColumn FormatOpType = "delete_column"
	// OpFreezeRows freezes the top N rows.
	OpFreezeRows FormatOpType = "freeze_rows"
)

// FormatOp is one cosmetic formatting operation against a tab.
// Column and row indices are zero-based; EndColumn is exclusive.
type FormatOp struct {
	// Type specifies the operation to perform.
	Type FormatOpType
	// TabID is the numeric tab identifier the operation targets.
	TabID int64
	// Column is the target column index for column-scoped ops.
	Column int
	// EndColumn is the exclusive end index for OpAutoResizeColumns.
	EndColumn int
	// Row is the target row index for OpRowFont.
	Row int
	// FontFamily is the font name to apply, empty to leave unchanged.
	FontFamily string
	// FontSize is the point size to apply, zero to leave unchanged.
	FontSize int
	// RowCount is the number of rows for OpFreezeRows.
	RowCount int
}

// ColumnFont builds an OpColumnFont operation.
func ColumnFont(tabID int64, column int, family string, size int) FormatOp {
	return FormatOp{Type: OpColumnFont, TabID: tabID, Column: column, FontFamily: family, FontSize: size}
}

// RowFont builds an OpRowFont operation.
func RowFont(tabID int64, row int, family string) FormatOp {
	return FormatOp{Type: OpRowFont, TabID: tabID, Row: row, FontFamily: family}
}

// AutoResizeColumns builds an OpAutoResizeColumns operation over [start, end).
func AutoResizeColumns(tabID int64, start, end int) FormatOp {
	return FormatOp{Type: OpAutoResizeColumns, TabID: tabID, Column: start, EndColumn: end}
}

// DeleteColumn builds an OpDeleteColumn operation.
func DeleteColumn(tabID int64, column int) FormatOp {
	return FormatOp{Type: OpDeleteColumn, TabID: tabID, Column: column}
}

// FreezeRows builds an OpFreezeRows operation.
func FreezeRows(tabID int64, count int) FormatOp {
	return FormatOp{Type: OpFreezeRows, TabID: tabID, RowCount: count}
}
