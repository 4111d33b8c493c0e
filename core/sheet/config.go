package sheet

// Config holds configuration for the tabular store.
type Config struct {
	// Backend selects the store implementation (google, workbook).
	Backend string `mapstructure:"backend" default:"google"`
	// SpreadsheetID is the identifier of the spreadsheet to operate on.
	SpreadsheetID string `mapstructure:"spreadsheet_id" default:""`
	// Tab is the tab name inside the spreadsheet.
	Tab string `mapstructure:"tab" default:"Sheet1"`
	// SourceColumn is the column letter holding the source text.
	SourceColumn string `mapstructure:"source_column" default:"C"`
	// MarkerColumn is the column letter holding the completion markers.
	MarkerColumn string `mapstructure:"marker_column" default:"D"`
	// IDColumn is the column letter holding sentence ids.
	IDColumn string `mapstructure:"id_column" default:"A"`
	// StartRow is the first data row, below the header.
	StartRow int `mapstructure:"start_row" default:"2"`
	// WorkbookPath is the .xlsx file path for the workbook backend.
	WorkbookPath string `mapstructure:"workbook_path" default:""`
	// TokenFile is the OAuth token file for the google backend.
	TokenFile string `mapstructure:"token_file" default:"token.json"`
	// RequestsPerSecond rate-limits calls against the google backend.
	RequestsPerSecond float64 `mapstructure:"requests_per_second" default:"2"`
}

const (
	BackendGoogle   = "google"
	BackendWorkbook = "workbook"
)

// IsValidBackend checks if the configured backend is valid.
func (c Config) IsValidBackend() bool {
	switch c.Backend {
	case BackendGoogle, BackendWorkbook:
		return true
	default:
		return false
	}
}
