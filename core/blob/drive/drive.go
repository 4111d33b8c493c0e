// Google Drive REST implementation of [blob.Store].
//
// Request and response shapes follow
// https://developers.google.com/drive/api/reference/rest/v3
package drive

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"net/url"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/blob"
)

const (
	filesBaseURL  = "https://www.googleapis.com/drive/v3/files"
	uploadBaseURL = "https://www.googleapis.com/upload/drive/v3/files"

	folderMimeType = "application/vnd.google-apps.folder"
)

// Client talks to the Google Drive REST API.
type Client struct {
	httpClient *http.Client
	filesURL   string
	uploadURL  string
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURLs overrides the API endpoints. Tests point these at a local server.
func WithBaseURLs(filesURL, uploadURL string) Option {
	return func(c *Client) {
		c.filesURL = filesURL
		c.uploadURL = uploadURL
	}
}

// NewClient creates a Drive client. httpClient must already carry
// authentication (see googleauth.NewClient).
func NewClient(httpClient *http.Client, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		filesURL:   filesBaseURL,
		uploadURL:  uploadBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// EnsureFolder implements blob.Store. An existing folder with the same name
// under the same parent is reused instead of creating a duplicate.
func (c *Client) EnsureFolder(ctx context.Context, parentID, name string) (string, error) {
	query := fmt.Sprintf("mimeType='%s' and name='%s' and '%s' in parents and trashed=false",
		folderMimeType, name, parentID)
	endpoint := fmt.Sprintf("%s?q=%s&fields=%s",
		c.filesURL, url.QueryEscape(query), url.QueryEscape("files(id, name)"))

	var listing struct {
		Files []struct {
			ID   string `json:"id"`
			Name string `json:"name"`
		} `json:"files"`
	}
	if err := c.getJSON(ctx, endpoint, &listing); err != nil {
		return "", fmt.Errorf("failed to look up folder %s: %w", name, err)
	}
	if len(listing.Files) > 0 {
		return listing.Files[0].ID, nil
	}

	body := map[string]any{
		"name":     name,
		"mimeType": folderMimeType,
		"parents":  []string{parentID},
	}
	var created struct {
		ID string `json:"id"`
	}
	if err := c.postJSON(ctx, c.filesURL+"?fields=id", body, &created); err != nil {
		return "", fmt.Errorf("failed to create folder %s: %w", name, err)
	}
	return created.ID, nil
}

// Upload implements blob.Store using a multipart upload, returning the
// file's web view link for inline playback.
func (c *Client) Upload(ctx context.Context, folderID, filename string, data []byte, mimeType string) (string, error) {
	metadata := map[string]any{
		"name":    filename,
		"parents": []string{folderID},
	}
	metaJSON, err := json.Marshal(metadata)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	metaHeader := textproto.MIMEHeader{}
	metaHeader.Set("Content-Type", "application/json; charset=UTF-8")
	metaPart, err := writer.CreatePart(metaHeader)
	if err != nil {
		return "", err
	}
	if _, err := metaPart.Write(metaJSON); err != nil {
		return "", err
	}

	mediaHeader := textproto.MIMEHeader{}
	mediaHeader.Set("Content-Type", mimeType)
	mediaPart, err := writer.CreatePart(mediaHeader)
	if err != nil {
		return "", err
	}
	if _, err := mediaPart.Write(data); err != nil {
		return "", err
	}
	if err := writer.Close(); err != nil {
		return "", err
	}

	endpoint := c.uploadURL + "?uploadType=multipart&fields=" + url.QueryEscape("id, webViewLink")
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "multipart/related; boundary="+writer.Boundary())

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	respData, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed to upload %s: status %d: %s", filename, resp.StatusCode, respData)
	}

	var uploaded struct {
		ID          string `json:"id"`
		WebViewLink string `json:"webViewLink"`
	}
	if err := json.Unmarshal(respData, &uploaded); err != nil {
		return "", fmt.Errorf("failed to decode upload response: %w", err)
	}
	return uploaded.WebViewLink, nil
}

func (c *Client) getJSON(ctx context.Context, endpoint string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) postJSON(ctx context.Context, endpoint string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%s %s: status %d: %s", req.Method, req.URL.Path, resp.StatusCode, data)
	}
	if out != nil && len(data) > 0 {
		return json.Unmarshal(data, out)
	}
	return nil
}

var _ blob.Store = (*Client)(nil)
