// Local .xlsx implementation of [sheet.Service] backed by excelize.
//
// The workbook backend exists for offline runs and fixtures: the engine can
// reconcile against a file on disk with the exact column semantics it uses
// against the hosted store. Formula cells do not resolve locally, so the
// translation workflow's polling path is only meaningful against the google
// backend.
package workbook

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"sync"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"

	"github.com/xuri/excelize/v2"
)

// Store implements sheet.Service over a single .xlsx file.
// Every mutation is saved back to disk immediately so a crash mid-run leaves
// the same partially-updated state a remote store would show.
type Store struct {
	mu   sync.Mutex
	path string
	file *excelize.File
}

// Open opens an existing workbook file.
func Open(path string) (*Store, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook %s: %w", path, err)
	}
	return &Store{path: path, file: f}, nil
}

// Close releases the underlying file handle.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.file.Close()
}

// GetRange implements sheet.Service.
func (s *Store) GetRange(ctx context.Context, spreadsheetID, a1Range string) ([][]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	tab, startCol, startRow, endCol, endRow, err := s.resolveRange(a1Range)
	if err != nil {
		return nil, err
	}

	var matrix [][]string
	for row := startRow; row <= endRow; row++ {
		var cells []string
		for col := startCol; col <= endCol; col++ {
			ref, err := excelize.CoordinatesToCellName(col, row)
			if err != nil {
				return nil, err
			}
			// Prefer the formula text when present so unresolved formulas
			// round-trip with their '=' marker, like the hosted store.
			value, err := s.file.GetCellFormula(tab, ref)
			if err != nil {
				return nil, err
			}
			if value != "" {
				value = "=" + strings.TrimPrefix(value, "=")
			} else {
				value, err = s.file.GetCellValue(tab, ref)
				if err != nil {
					return nil, err
				}
			}
			cells = append(cells, value)
		}
		matrix = append(matrix, cells)
	}

	// Trailing fully-empty rows are not part of the logical range, matching
	// the hosted store's behavior for open-ended reads.
	for len(matrix) > 0 && rowEmpty(matrix[len(matrix)-1]) {
		matrix = matrix[:len(matrix)-1]
	}
	return matrix, nil
}

// UpdateRange implements sheet.Service.
func (s *Store) UpdateRange(ctx context.Context, spreadsheetID, a1Range string, values [][]string, mode sheet.InputMode) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	tab, startCol, startRow, _, _, err := s.resolveRange(a1Range)
	if err != nil {
		return err
	}

	for i, row := range values {
		for j, value := range row {
			ref, err := excelize.CoordinatesToCellName(startCol+j, startRow+i)
			if err != nil {
				return err
			}
			if mode == sheet.InputUserEntered && strings.HasPrefix(value, "=") {
				if err := s.file.SetCellFormula(tab, ref, value); err != nil {
					return err
				}
				continue
			}
			if err := s.file.SetCellValue(tab, ref, value); err != nil {
				return err
			}
		}
	}
	return s.file.Save()
}

// BatchFormat implements sheet.Service. Only the operations the pipeline
// issues are supported; font sizing maps onto workbook styles.
func (s *Store) BatchFormat(ctx context.Context, spreadsheetID string, ops []sheet.FormatOp) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, op := range ops {
		tab, err := s.tabName(op.TabID)
		if err != nil {
			return err
		}
		switch op.Type {
		case sheet.OpDeleteColumn:
			if err := s.file.RemoveCol(tab, sheet.ColumnLetter(op.Column)); err != nil {
				return err
			}
		case sheet.OpFreezeRows:
			if err := s.file.SetPanes(tab, &excelize.Panes{
				Freeze: true, YSplit: op.RowCount, TopLeftCell: fmt.Sprintf("A%d", op.RowCount+1), ActivePane: "bottomLeft",
			}); err != nil {
				return err
			}
		case sheet.OpColumnFont, sheet.OpRowFont:
			styleID, err := s.file.NewStyle(&excelize.Style{
				Font: &excelize.Font{Family: op.FontFamily, Size: float64(op.FontSize)},
			})
			if err != nil {
				return err
			}
			if op.Type == sheet.OpColumnFont {
				letter := sheet.ColumnLetter(op.Column)
				if err := s.file.SetColStyle(tab, letter, styleID); err != nil {
					return err
				}
			} else if err := s.file.SetRowStyle(tab, op.Row+1, op.Row+1, styleID); err != nil {
				return err
			}
		case sheet.OpAutoResizeColumns:
			// Column auto-sizing is a viewer concern in local workbooks.
		default:
			return fmt.Errorf("unsupported format op type %q", op.Type)
		}
	}
	return s.file.Save()
}

// GetMetadata implements sheet.Service.
func (s *Store) GetMetadata(ctx context.Context, spreadsheetID string) (*sheet.Metadata, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := strings.TrimSuffix(filepath.Base(s.path), ".xlsx")
	meta := &sheet.Metadata{Title: title}
	for i, name := range s.file.GetSheetList() {
		meta.Tabs = append(meta.Tabs, sheet.Tab{ID: int64(i), Name: name})
	}
	return meta, nil
}

// Create implements sheet.Service. Creating new spreadsheets is a hosted
// store operation; the workbook backend refuses it.
func (s *Store) Create(ctx context.Context, name, parentFolderID string) (string, error) {
	return "", fmt.Errorf("workbook backend cannot create spreadsheets")
}

// resolveRange parses "Tab!C2:C9" into tab name and 1-based coordinates.
// An open-ended range ("Tab!C2:C") extends to the tab's last used row.
func (s *Store) resolveRange(a1Range string) (tab string, startCol, startRow, endCol, endRow int, err error) {
	tab, ref, found := strings.Cut(a1Range, "!")
	if !found {
		return "", 0, 0, 0, 0, fmt.Errorf("range %q is missing a tab name", a1Range)
	}

	start, end, _ := strings.Cut(ref, ":")
	startCol, startRow, err = parseCellRef(start)
	if err != nil {
		return "", 0, 0, 0, 0, fmt.Errorf("invalid range %q: %w", a1Range, err)
	}
	if end == "" {
		end = start
	}
	endCol, endRow, err = parseCellRef(end)
	if err != nil {
		return "", 0, 0, 0, 0, fmt.Errorf("invalid range %q: %w", a1Range, err)
	}
	if endRow == 0 {
		rows, rowsErr := s.file.GetRows(tab)
		if rowsErr != nil {
			return "", 0, 0, 0, 0, rowsErr
		}
		endRow = len(rows)
		if endRow < startRow {
			endRow = startRow
		}
	}
	return tab, startCol, startRow, endCol, endRow, nil
}

// parseCellRef splits "C2" into (3, 2) and bare "C" into (3, 0).
func parseCellRef(ref string) (col, row int, err error) {
	i := 0
	for i < len(ref) && ref[i] >= 'A' && ref[i] <= 'Z' {
		i++
	}
	if i == 0 {
		return 0, 0, fmt.Errorf("cell ref %q has no column", ref)
	}
	col = sheet.ColumnIndex(ref[:i]) + 1
	if i == len(ref) {
		return col, 0, nil
	}
	if _, err := fmt.Sscanf(ref[i:], "%d", &row); err != nil {
		return 0, 0, fmt.Errorf("cell ref %q has invalid row: %w", ref, err)
	}
	return col, row, nil
}

func (s *Store) tabName(tabID int64) (string, error) {
	tabs := s.file.GetSheetList()
	if int(tabID) < 0 || int(tabID) >= len(tabs) {
		return "", fmt.Errorf("no tab with id %d", tabID)
	}
	return tabs[tabID], nil
}

func rowEmpty(cells []string) bool {
	for _, c := range cells {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

var _ sheet.Service = (*Store)(nil)
