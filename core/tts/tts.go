package tts

import (
	"context"
	"fmt"
	"strings"
)

// Voice bundles the synthesis parameters for one run.
type Voice struct {
	// Name is the voice identifier, e.g. "zh-CN-Wavenet-A".
	Name string
	// SpeakingRate is the speed multiplier, must be > 0.
	SpeakingRate float64
	// Encoding is the output audio format.
	Encoding Encoding
}

// Validate checks the voice parameters.
func (v Voice) Validate() error {
	if v.Name == "" {
		return fmt.Errorf("voice name is required")
	}
	if v.SpeakingRate <= 0 {
		return fmt.Errorf("speaking rate must be greater than 0, got %v", v.SpeakingRate)
	}
	if !v.Encoding.IsValid() {
		return fmt.Errorf("unsupported audio encoding %q", v.Encoding)
	}
	return nil
}

// LanguageCode derives the language code from the voice name,
// e.g. "en-US" from "en-US-Wavenet-D".
func (v Voice) LanguageCode() string {
	parts := strings.SplitN(v.Name, "-", 3)
	if len(parts) < 2 {
		return v.Name
	}
	return parts[0] + "-" + parts[1]
}

// Synthesizer defines the interface for text-to-speech synthesis.
type Synthesizer interface {
	// Synthesize renders text as audio bytes using the given voice.
	Synthesize(ctx context.Context, text string, voice Voice) ([]byte, error)
}
