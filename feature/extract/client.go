package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

const protocolVersion = 6

// NotesStore is the surface of the local flashcard application's HTTP API
// that extraction needs.
type NotesStore interface {
	// FindNotes returns the ids of all notes in the named deck.
	FindNotes(ctx context.Context, deck string) ([]int64, error)
	// FetchNotes returns full note records for the given ids.
	FetchNotes(ctx context.Context, ids []int64) ([]Note, error)
}

// Note is a single flashcard note. Fields maps field name to its content.
type Note struct {
	ID     int64
	Fields map[string]string
}

// Client talks to the flashcard application's JSON endpoint. The protocol is
// a single POST endpoint with an action envelope.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// ClientOption customizes a Client.
type ClientOption func(*Client)

// WithBaseURL overrides the endpoint URL.
func WithBaseURL(url string) ClientOption {
	return func(c *Client) {
		c.baseURL = url
	}
}

// NewClient creates a notes store client. The default endpoint is the
// application's standard local listener.
func NewClient(httpClient *http.Client, opts ...ClientOption) *Client {
	client := &Client{
		httpClient: httpClient,
		baseURL:    "http://localhost:8765",
	}
	for _, opt := range opts {
		opt(client)
	}
	return client
}

type envelope struct {
	Action  string `json:"action"`
	Version int    `json:"version"`
	Params  any    `json:"params,omitempty"`
}

type reply struct {
	Result json.RawMessage `json:"result"`
	Error  *string         `json:"error"`
}

// FindNotes implements NotesStore.
func (c *Client) FindNotes(ctx context.Context, deck string) ([]int64, error) {
	params := map[string]string{
		"query": fmt.Sprintf("deck:%q", deck),
	}
	var ids []int64
	if err := c.invoke(ctx, "findNotes", params, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

type noteInfo struct {
	NoteID int64 `json:"noteId"`
	Fields map[string]struct {
		Value string `json:"value"`
		Order int    `json:"order"`
	} `json:"fields"`
}

// FetchNotes implements NotesStore.
func (c *Client) FetchNotes(ctx context.Context, ids []int64) ([]Note, error) {
	params := map[string][]int64{
		"notes": ids,
	}
	var infos []noteInfo
	if err := c.invoke(ctx, "notesInfo", params, &infos); err != nil {
		return nil, err
	}

	notes := make([]Note, len(infos))
	for i, info := range infos {
		fields := make(map[string]string, len(info.Fields))
		for name, field := range info.Fields {
			fields[name] = field.Value
		}
		notes[i] = Note{ID: info.NoteID, Fields: fields}
	}
	return notes, nil
}

// invoke sends one action envelope and decodes the result payload into out.
// An application level error arrives with HTTP 200 and a non-null error
// field.
func (c *Client) invoke(ctx context.Context, action string, params, out any) error {
	body, err := json.Marshal(envelope{Action: action, Version: protocolVersion, Params: params})
	if err != nil {
		return fmt.Errorf("failed to encode %s request: %w", action, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build %s request: %w", action, err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("notes store request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("notes store returned status %d: %s", resp.StatusCode, raw)
	}

	var r reply
	if err := json.NewDecoder(resp.Body).Decode(&r); err != nil {
		return fmt.Errorf("failed to decode %s response: %w", action, err)
	}
	if r.Error != nil && *r.Error != "" {
		return fmt.Errorf("notes store error on %s: %s", action, *r.Error)
	}
	if err := json.Unmarshal(r.Result, out); err != nil {
		return fmt.Errorf("failed to decode %s result: %w", action, err)
	}
	return nil
}
