package googleauth

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
)

// LoadToken reads a previously stored OAuth2 token from a JSON file.
// Minting and refreshing credentials is out of scope for the pipeline;
// the token file is produced by an external authorization step.
func LoadToken(path string) (*oauth2.Token, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read token file %s: %w", path, err)
	}

	var token oauth2.Token
	if err := json.Unmarshal(data, &token); err != nil {
		return nil, fmt.Errorf("failed to parse token file %s: %w", path, err)
	}
	return &token, nil
}

// NewClient returns an http.Client that attaches the token from the given
// file to every request.
func NewClient(ctx context.Context, tokenFile string) (*http.Client, error) {
	token, err := LoadToken(tokenFile)
	if err != nil {
		return nil, err
	}
	return oauth2.NewClient(ctx, oauth2.StaticTokenSource(token)), nil
}
