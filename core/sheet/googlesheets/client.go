// Google Sheets REST implementation of [sheet.Service].
//
// Request and response shapes follow
// https://developers.google.com/sheets/api/reference/rest
package googlesheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/utils"

	"golang.org/x/time/rate"
)

const (
	sheetsBaseURL = "https://sheets.googleapis.com/v4/spreadsheets"
	driveBaseURL  = "https://www.googleapis.com/drive/v3/files"

	spreadsheetMimeType = "application/vnd.google-apps.spreadsheet"
)

// Client talks to the Google Sheets and Drive REST APIs.
// It applies a client-side rate limit so batch runs stay inside API quotas.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	sheetsURL  string
	driveURL   string
}

// Option customizes a Client.
type Option func(*Client)

// WithBaseURLs overrides the API endpoints. Tests point these at a local server.
func WithBaseURLs(sheetsURL, driveURL string) Option {
	return func(c *Client) {
		c.sheetsURL = sheetsURL
		c.driveURL = driveURL
	}
}

// NewClient creates a Sheets client. httpClient must already carry
// authentication (see googleauth.NewClient). requestsPerSecond <= 0 disables
// client-side rate limiting.
func NewClient(httpClient *http.Client, requestsPerSecond float64, opts ...Option) *Client {
	limit := rate.Inf
	if requestsPerSecond > 0 {
		limit = rate.Limit(requestsPerSecond)
	}
	c := &Client{
		httpClient: httpClient,
		limiter:    rate.NewLimiter(limit, 1),
		sheetsURL:  sheetsBaseURL,
		driveURL:   driveBaseURL,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type valueRange struct {
	Range  string  `json:"range,omitempty"`
	Values [][]any `json:"values,omitempty"`
}

// GetRange implements sheet.Service.
func (c *Client) GetRange(ctx context.Context, spreadsheetID, a1Range string) ([][]string, error) {
	endpoint := fmt.Sprintf("%s/%s/values/%s", c.sheetsURL, spreadsheetID, url.PathEscape(a1Range))

	var vr valueRange
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &vr); err != nil {
		return nil, fmt.Errorf("failed to read range %s: %w", a1Range, err)
	}

	matrix := make([][]string, len(vr.Values))
	for i, row := range vr.Values {
		cells := make([]string, len(row))
		for j, v := range row {
			cells[j] = utils.ToString(v)
		}
		matrix[i] = cells
	}
	return matrix, nil
}

// UpdateRange implements sheet.Service.
func (c *Client) UpdateRange(ctx context.Context, spreadsheetID, a1Range string, values [][]string, mode sheet.InputMode) error {
	endpoint := fmt.Sprintf("%s/%s/values/%s?valueInputOption=%s",
		c.sheetsURL, spreadsheetID, url.PathEscape(a1Range), url.QueryEscape(string(mode)))

	matrix := make([][]any, len(values))
	for i, row := range values {
		cells := make([]any, len(row))
		for j, v := range row {
			cells[j] = v
		}
		matrix[i] = cells
	}

	body := valueRange{Range: a1Range, Values: matrix}
	if err := c.doJSON(ctx, http.MethodPut, endpoint, body, nil); err != nil {
		return fmt.Errorf("failed to update range %s: %w", a1Range, err)
	}
	return nil
}

// BatchFormat implements sheet.Service.
func (c *Client) BatchFormat(ctx context.Context, spreadsheetID string, ops []sheet.FormatOp) error {
	if len(ops) == 0 {
		return nil
	}

	requests := make([]map[string]any, 0, len(ops))
	for _, op := range ops {
		req, err := formatRequest(op)
		if err != nil {
			return err
		}
		requests = append(requests, req)
	}

	endpoint := fmt.Sprintf("%s/%s:batchUpdate", c.sheetsURL, spreadsheetID)
	body := map[string]any{"requests": requests}
	if err := c.doJSON(ctx, http.MethodPost, endpoint, body, nil); err != nil {
		return fmt.Errorf("failed to apply batch format: %w", err)
	}
	return nil
}

type spreadsheetMetadata struct {
	Properties struct {
		Title string `json:"title"`
	} `json:"properties"`
	Sheets []struct {
		Properties struct {
			SheetID int64  `json:"sheetId"`
			Title   string `json:"title"`
		} `json:"properties"`
	} `json:"sheets"`
}

// GetMetadata implements sheet.Service.
func (c *Client) GetMetadata(ctx context.Context, spreadsheetID string) (*sheet.Metadata, error) {
	endpoint := fmt.Sprintf("%s/%s", c.sheetsURL, spreadsheetID)

	var meta spreadsheetMetadata
	if err := c.doJSON(ctx, http.MethodGet, endpoint, nil, &meta); err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet metadata: %w", err)
	}

	result := &sheet.Metadata{Title: meta.Properties.Title}
	for _, s := range meta.Sheets {
		result.Tabs = append(result.Tabs, sheet.Tab{ID: s.Properties.SheetID, Name: s.Properties.Title})
	}
	return result, nil
}

// Create implements sheet.Service. Spreadsheets are created through the Drive
// files endpoint so they can be placed directly into a folder.
func (c *Client) Create(ctx context.Context, name, parentFolderID string) (string, error) {
	body := map[string]any{
		"name":     name,
		"mimeType": spreadsheetMimeType,
	}
	if parentFolderID != "" {
		body["parents"] = []string{parentFolderID}
	}

	var created struct {
		ID string `json:"id"`
	}
	endpoint := c.driveURL + "?fields=id"
	if err := c.doJSON(ctx, http.MethodPost, endpoint, body, &created); err != nil {
		return "", fmt.Errorf("failed to create spreadsheet %s: %w", name, err)
	}
	return created.ID, nil
}

// formatRequest translates one FormatOp into a batchUpdate request object.
func formatRequest(op sheet.FormatOp) (map[string]any, error) {
	switch op.Type {
	case sheet.OpColumnFont:
		textFormat := map[string]any{}
		fields := ""
		if op.FontFamily != "" {
			textFormat["fontFamily"] = op.FontFamily
			fields = "userEnteredFormat.textFormat.fontFamily"
		}
		if op.FontSize > 0 {
			textFormat["fontSize"] = op.FontSize
			if fields != "" {
				fields = "userEnteredFormat.textFormat"
			} else {
				fields = "userEnteredFormat.textFormat.fontSize"
			}
		}
		return map[string]any{
			"repeatCell": map[string]any{
				"range": map[string]any{
					"sheetId":          op.TabID,
					"startColumnIndex": op.Column,
					"endColumnIndex":   op.Column + 1,
				},
				"cell":   map[string]any{"userEnteredFormat": map[string]any{"textFormat": textFormat}},
				"fields": fields,
			},
		}, nil
	case sheet.OpRowFont:
		return map[string]any{
			"repeatCell": map[string]any{
				"range": map[string]any{
					"sheetId":       op.TabID,
					"startRowIndex": op.Row,
					"endRowIndex":   op.Row + 1,
				},
				"cell": map[string]any{"userEnteredFormat": map[string]any{
					"textFormat": map[string]any{"fontFamily": op.FontFamily},
				}},
				"fields": "userEnteredFormat.textFormat.fontFamily",
			},
		}, nil
	case sheet.OpAutoResizeColumns:
		return map[string]any{
			"autoResizeDimensions": map[string]any{
				"dimensions": map[string]any{
					"sheetId":    op.TabID,
					"dimension":  "COLUMNS",
					"startIndex": op.Column,
					"endIndex":   op.EndColumn,
				},
			},
		}, nil
	case sheet.OpDeleteColumn:
		return map[string]any{
			"deleteDimension": map[string]any{
				"range": map[string]any{
					"sheetId":    op.TabID,
					"dimension":  "COLUMNS",
					"startIndex": op.Column,
					"endIndex":   op.Column + 1,
				},
			},
		}, nil
	case sheet.OpFreezeRows:
		return map[string]any{
			"updateSheetProperties": map[string]any{
				"properties": map[string]any{
					"sheetId":        op.TabID,
					"gridProperties": map[string]any{"frozenRowCount": op.RowCount},
				},
				"fields": "gridProperties.frozenRowCount",
			},
		}, nil
	default:
		return nil, fmt.Errorf("unsupported format op type %q", op.Type)
	}
}

// doJSON performs one rate-limited JSON request. Non-2xx responses become
// errors carrying the response body.
func (c *Client) doJSON(ctx context.Context, method, endpoint string, body, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return err
	}

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return err
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

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
		return fmt.Errorf("%s %s: status %d: %s", method, endpoint, resp.StatusCode, truncate(string(data), 300))
	}
	if out != nil && len(data) > 0 {
		if err := json.Unmarshal(data, out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n] + "..."
}

var _ sheet.Service = (*Client)(nil)
