package tts

// Config holds configuration for speech synthesis.
type Config struct {
	// VoiceName is the synthesis voice (e.g. zh-CN-Wavenet-A).
	VoiceName string `mapstructure:"voice_name" default:""`
	// SpeakingRate is the speed multiplier, must be greater than 0.
	SpeakingRate float64 `mapstructure:"speaking_rate" default:"1.0"`
	// Encoding is the output audio format (MP3, OGG_OPUS, LINEAR16).
	Encoding string `mapstructure:"encoding" default:"MP3"`
	// TokenFile is the OAuth token file for the synthesis API.
	TokenFile string `mapstructure:"token_file" default:"token.json"`
}

// Voice converts the configuration into synthesis parameters.
func (c Config) Voice() Voice {
	return Voice{
		Name:         c.VoiceName,
		SpeakingRate: c.SpeakingRate,
		Encoding:     Encoding(c.Encoding),
	}
}
