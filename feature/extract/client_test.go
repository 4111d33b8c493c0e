package extract

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestClient_FindNotes tests the action envelope and deck query format.
func TestClient_FindNotes(t *testing.T) {
	var got envelope
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		_, _ = w.Write([]byte(`{"result": [101, 102], "error": null}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL))
	ids, err := client.FindNotes(context.Background(), "Mandarin 10k")

	assert.NoError(t, err)
	assert.Equal(t, []int64{101, 102}, ids)
	assert.Equal(t, "findNotes", got.Action)
	assert.Equal(t, 6, got.Version)
	assert.Equal(t, map[string]any{"query": `deck:"Mandarin 10k"`}, got.Params)
}

// TestClient_FetchNotes tests decoding of nested field values.
func TestClient_FetchNotes(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{
			"result": [
				{"noteId": 101, "fields": {"Hanzi": {"value": "你好", "order": 0}}}
			],
			"error": null
		}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL))
	notes, err := client.FetchNotes(context.Background(), []int64{101})

	assert.NoError(t, err)
	assert.Equal(t, []Note{{ID: 101, Fields: map[string]string{"Hanzi": "你好"}}}, notes)
}

// TestClient_ApplicationError tests that a 200 response with a non-null
// error field is surfaced as an error.
func TestClient_ApplicationError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"result": null, "error": "deck was not found"}`))
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL))
	_, err := client.FindNotes(context.Background(), "Nope")

	assert.ErrorContains(t, err, "deck was not found")
}

func TestClient_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusInternalServerError)
	}))
	defer server.Close()

	client := NewClient(server.Client(), WithBaseURL(server.URL))
	_, err := client.FindNotes(context.Background(), "Deck")

	assert.ErrorContains(t, err, "status 500")
}
