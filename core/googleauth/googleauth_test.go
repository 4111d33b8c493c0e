package googleauth

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte(`{
		"access_token": "ya29.test",
		"token_type": "Bearer",
		"refresh_token": "refresh"
	}`), 0o600))

	token, err := LoadToken(path)

	assert.NoError(t, err)
	assert.Equal(t, "ya29.test", token.AccessToken)
	assert.Equal(t, "Bearer", token.TokenType)
}

func TestLoadToken_MissingFile(t *testing.T) {
	_, err := LoadToken(filepath.Join(t.TempDir(), "absent.json"))
	assert.Error(t, err)
}

func TestLoadToken_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "token.json")
	require.NoError(t, os.WriteFile(path, []byte("not json"), 0o600))

	_, err := LoadToken(path)
	assert.Error(t, err)
}
