package config

import (
	"reflect"
	"strings"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/blob"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/logger"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/retry"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/tts"
	"github.com/ZBlocker655/10k-sentences-pipeline/feature/extract"
	"github.com/ZBlocker655/10k-sentences-pipeline/feature/translate"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the pipeline.
// It is divided into partial configurations for better modularity.
type Config struct {
	// Sheet holds configuration for the tabular store.
	Sheet sheet.Config `mapstructure:"sheet"`
	// Blob holds configuration for the audio artifact store.
	Blob blob.Config `mapstructure:"blob"`
	// TTS holds configuration for speech synthesis.
	TTS tts.Config `mapstructure:"tts"`
	// Retry holds configuration for transient failure handling.
	Retry retry.Config `mapstructure:"retry"`
	// Translate holds configuration for the translation workflow.
	Translate translate.Config `mapstructure:"translate"`
	// Extract holds configuration for deck extraction.
	Extract extract.Config `mapstructure:"extract"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// LoadConfig loads configuration from environment variables and .env file.
func LoadConfig(path string) (*Config, error) {
	// 1. Load .env file if it exists
	// We construct the path to .env
	envPath := path + "/.env"
	if path == "." {
		envPath = ".env"
	}

	// Ignore error if file doesn't exist (e.g. production)
	_ = godotenv.Overload(envPath)

	v := viper.New()

	// Recursively parse struct tags to set default values
	bindValues(v, Config{}, "")

	// Map environment variables to nested keys (e.g. SHEET_TAB -> sheet.tab)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// bindValues uses reflection to iterate over the struct and set default values in Viper
// based on the 'default' and 'mapstructure' tags.
func bindValues(v *viper.Viper, iface any, prefix string) {
	t := reflect.TypeOf(iface)

	// If it's a pointer, get the element
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindValues(v, reflect.New(field.Type).Elem().Interface(), key)
			continue
		}

		defaultValue := field.Tag.Get("default")
		// Always set default (even if empty) to register the key for AutomaticEnv
		v.SetDefault(key, defaultValue)
	}
}
