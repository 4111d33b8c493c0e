package retry

import "time"

// Defaults applied when configuration values are missing or non-positive.
const (
	DefaultMaxRetries = 5
	DefaultBaseDelay  = 1 * time.Second
	DefaultMaxDelay   = 16 * time.Second
)

// Config holds configuration for the retry executor.
type Config struct {
	// MaxRetries is the total attempt budget per operation.
	MaxRetries int `mapstructure:"max_retries" default:"5"`
	// BaseDelaySeconds is the backoff delay before the second attempt.
	BaseDelaySeconds float64 `mapstructure:"base_delay_seconds" default:"1.0"`
	// MaxDelaySeconds caps the backoff delay regardless of attempt count.
	MaxDelaySeconds float64 `mapstructure:"max_delay_seconds" default:"16.0"`
}

// BaseDelay returns the configured base delay as a duration.
func (c Config) BaseDelay() time.Duration {
	return time.Duration(c.BaseDelaySeconds * float64(time.Second))
}

// MaxDelay returns the configured delay ceiling as a duration.
func (c Config) MaxDelay() time.Duration {
	return time.Duration(c.MaxDelaySeconds * float64(time.Second))
}
