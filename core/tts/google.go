package tts

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Google Text-to-Speech REST endpoint, see
// https://cloud.google.com/text-to-speech/docs/reference/rest
const googleSynthesizeURL = "https://texttospeech.googleapis.com/v1/text:synthesize"

// GoogleClient implements Synthesizer over the Google TTS REST API.
type GoogleClient struct {
	httpClient *http.Client
	baseURL    string
}

// GoogleOption customizes a GoogleClient.
type GoogleOption func(*GoogleClient)

// WithBaseURL overrides the API endpoint. Tests point this at a local server.
func WithBaseURL(baseURL string) GoogleOption {
	return func(c *GoogleClient) { c.baseURL = baseURL }
}

// NewGoogleClient creates a TTS client. httpClient must already carry
// authentication (see googleauth.NewClient).
func NewGoogleClient(httpClient *http.Client, opts ...GoogleOption) *GoogleClient {
	c := &GoogleClient{httpClient: httpClient, baseURL: googleSynthesizeURL}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		Name         string `json:"name"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string  `json:"audioEncoding"`
		SpeakingRate  float64 `json:"speakingRate"`
	} `json:"audioConfig"`
}

// Synthesize implements Synthesizer. The API returns audio content base64
// encoded; the decoded bytes are returned.
func (c *GoogleClient) Synthesize(ctx context.Context, text string, voice Voice) ([]byte, error) {
	var reqBody synthesizeRequest
	reqBody.Input.Text = text
	reqBody.Voice.LanguageCode = voice.LanguageCode()
	reqBody.Voice.Name = voice.Name
	reqBody.AudioConfig.AudioEncoding = string(voice.Encoding)
	reqBody.AudioConfig.SpeakingRate = voice.SpeakingRate

	data, err := json.Marshal(reqBody)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(data))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("synthesize failed: status %d: %s", resp.StatusCode, respData)
	}

	var result struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(respData, &result); err != nil {
		return nil, fmt.Errorf("failed to decode synthesize response: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(result.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("failed to decode audio content: %w", err)
	}
	return audio, nil
}

var _ Synthesizer = (*GoogleClient)(nil)
