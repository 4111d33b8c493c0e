package extract

// Config holds configuration for deck extraction.
type Config struct {
	// Endpoint is the URL of the flashcard application's JSON API.
	Endpoint string `mapstructure:"endpoint" default:"http://localhost:8765"`
	// Deck is the name of the deck to pull notes from.
	Deck string `mapstructure:"deck" default:""`
	// Field is the note field holding the sentence text.
	Field string `mapstructure:"field" default:""`
	// OutputPath is the file extracted sentences are written to.
	OutputPath string `mapstructure:"output_path" default:"sentences.txt"`
}
