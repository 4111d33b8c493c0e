package translate

// Config holds configuration for the translation workflow.
type Config struct {
	// TargetLang is the translation target language code (e.g. zh-CN).
	TargetLang string `mapstructure:"target_lang" default:""`
	// TargetFont optionally sets the font of the translated column.
	TargetFont string `mapstructure:"target_font" default:""`
	// FontSize optionally sets the font size of all columns.
	FontSize int `mapstructure:"font_size" default:"0"`
	// DestSheetName names the created destination spreadsheet.
	DestSheetName string `mapstructure:"dest_sheet_name" default:""`
	// DestFolderID optionally places the new spreadsheet inside a folder.
	DestFolderID string `mapstructure:"dest_folder_id" default:""`
	// PollIntervalSeconds is the delay between formula resolution checks.
	PollIntervalSeconds int `mapstructure:"poll_interval_seconds" default:"15"`
}
