package mocks

import (
	"context"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/tts"

	"github.com/stretchr/testify/mock"
)

// Synthesizer is a mock implementation of tts.Synthesizer
type Synthesizer struct {
	mock.Mock
}

func (m *Synthesizer) Synthesize(ctx context.Context, text string, voice tts.Voice) ([]byte, error) {
	args := m.Called(ctx, text, voice)
	if audio, ok := args.Get(0).([]byte); ok {
		return audio, args.Error(1)
	}
	return nil, args.Error(1)
}
