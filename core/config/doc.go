// Package config provides configuration management for the pipeline.
//
// It utilizes Viper for loading configuration from environment variables and
// an optional .env file, with defaults declared as struct tags on the partial
// configuration types.
//
// # Configuration Structure
//
// The Config struct is the central repository for all settings, divided into
// subsections:
//   - Sheet: spreadsheet backend, ids, tab and column layout
//   - Blob: audio artifact storage (folder backend or S3/MinIO)
//   - TTS: synthesis voice, rate and audio encoding
//   - Retry: attempt budget and backoff delays
//   - Translate: target language and destination sheet settings
//   - Extract: flashcard deck endpoint and output file
//   - Log: logging level and format
//
// # Usage
//
//	cfg, err := config.LoadConfig(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(cfg.Sheet.Tab)
package config
