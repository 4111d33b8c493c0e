package sheet

import "context"

// InputMode controls how written values are interpreted by the store.
type InputMode string

const (
	// InputRaw stores values verbatim, without formula parsing.
	InputRaw InputMode = "RAW"
	// InputUserEntered parses values as if typed by a user, so formulas
	// and hyperlinks take effect.
	InputUserEntered InputMode = "USER_ENTERED"
)

// Tab identifies one tab (grid) inside a spreadsheet.
type Tab struct {
	// ID is the store-assigned numeric identifier of the tab.
	ID int64
	// Name is the user-visible tab name used in A1 ranges.
	Name string
}

// Metadata describes a spreadsheet.
type Metadata struct {
	// Title is the spreadsheet's display name.
	Title string
	// Tabs lists the tabs in sheet order.
	Tabs []Tab
}

// Service defines the interface for tabular store operations.
//
// Implementations wrap a concrete backend (Google Sheets, local workbook).
// Values cross this boundary as raw strings in the store's native form;
// typed cell handling lives in the column adapter above it.
type Service interface {
	// GetRange reads a rectangular A1 range and returns it as a row-major
	// matrix. Trailing empty rows and cells may be omitted by the backend.
	GetRange(ctx context.Context, spreadsheetID, a1Range string) ([][]string, error)

	// UpdateRange writes a row-major matrix into an A1 range. The range may
	// be open-ended; each matrix row maps to one sheet row in order.
	UpdateRange(ctx context.Context, spreadsheetID, a1Range string, values [][]string, mode InputMode) error

	// BatchFormat applies cosmetic formatting operations in one request.
	BatchFormat(ctx context.Context, spreadsheetID string, ops []FormatOp) error

	// GetMetadata returns the spreadsheet title and tab listing.
	GetMetadata(ctx context.Context, spreadsheetID string) (*Metadata, error)

	// Create creates a new spreadsheet with the given name, optionally
	// inside a folder, and returns its identifier.
	Create(ctx context.Context, name, parentFolderID string) (string, error)
}
