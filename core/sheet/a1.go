package sheet

import (
	"fmt"
	"strings"
)

// ColumnRange builds an A1 range covering one column from startRow to endRow.
// endRow <= 0 produces an open-ended range ("Tab!C2:C").
func ColumnRange(tab, column string, startRow, endRow int) string {
	if endRow <= 0 {
		return fmt.Sprintf("%s!%s%d:%s", tab, column, startRow, column)
	}
	return fmt.Sprintf("%s!%s%d:%s%d", tab, column, startRow, column, endRow)
}

// CellRef builds an A1 reference to a single cell.
func CellRef(tab, column string, row int) string {
	return fmt.Sprintf("%s!%s%d:%s%d", tab, column, row, column, row)
}

// RowRange builds an A1 range covering startColumn..endColumn of a single row.
func RowRange(tab, startColumn, endColumn string, row int) string {
	return fmt.Sprintf("%s!%s%d:%s%d", tab, startColumn, row, endColumn, row)
}

// ColumnIndex converts a column letter ("A".."ZZ") to its zero-based index.
func ColumnIndex(column string) int {
	idx := 0
	for _, c := range strings.ToUpper(column) {
		if c < 'A' || c > 'Z' {
			return -1
		}
		idx = idx*26 + int(c-'A') + 1
	}
	return idx - 1
}

// ColumnLetter converts a zero-based column index to its letter form.
func ColumnLetter(index int) string {
	if index < 0 {
		return ""
	}
	var b []byte
	for n := index + 1; n > 0; n = (n - 1) / 26 {
		b = append([]byte{byte('A' + (n-1)%26)}, b...)
	}
	return string(b)
}
