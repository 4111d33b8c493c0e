package audio

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/blob"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/cell"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/reconcile"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/retry"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/tts"

	"go.uber.org/zap"
)

// Generator implements reconcile.Generator for the audio artifact path:
// synthesize the row's text, upload the audio, and return a hyperlink marker.
type Generator struct {
	adapter     *sheet.Adapter
	synthesizer tts.Synthesizer
	store       blob.Store
	executor    *retry.Executor
	voice       tts.Voice
	folderID    string
	tab         string
	idColumn    string
	logger      *zap.Logger
}

// NewGenerator creates an audio Generator uploading into folderID.
func NewGenerator(
	adapter *sheet.Adapter,
	synthesizer tts.Synthesizer,
	store blob.Store,
	executor *retry.Executor,
	voice tts.Voice,
	folderID, tab, idColumn string,
	logger *zap.Logger,
) *Generator {
	return &Generator{
		adapter:     adapter,
		synthesizer: synthesizer,
		store:       store,
		executor:    executor,
		voice:       voice,
		folderID:    folderID,
		tab:         tab,
		idColumn:    idColumn,
		logger:      logger,
	}
}

// Generate implements reconcile.Generator. Synthesis and upload each run
// through the retry executor; if either exhausts its budget the row is
// reported failed and no marker value is produced, so the row is retried on
// the next run. No partial marker is ever written.
func (g *Generator) Generate(ctx context.Context, row reconcile.RowContext) (*cell.Value, error) {
	g.logger.Info("Synthesizing audio for row",
		zap.Int("row", row.Row),
		zap.String("text", preview(row.Text)))

	var audio []byte
	err := g.executor.Do(ctx, "tts.synthesize", func() error {
		var opErr error
		audio, opErr = g.synthesizer.Synthesize(ctx, row.Text, g.voice)
		return opErr
	})
	if err != nil {
		return nil, fmt.Errorf("speech synthesis failed: %w", err)
	}

	filename, err := g.filenameFor(ctx, row.Row)
	if err != nil {
		return nil, err
	}

	var link string
	err = g.executor.Do(ctx, "blob.upload", func() error {
		var opErr error
		link, opErr = g.store.Upload(ctx, g.folderID, filename, audio, g.voice.Encoding.MimeType())
		return opErr
	})
	if err != nil {
		return nil, fmt.Errorf("upload of %s failed: %w", filename, err)
	}

	g.logger.Info("Uploaded audio for row",
		zap.Int("row", row.Row),
		zap.String("filename", filename),
		zap.String("link", link))

	marker := cell.Hyperlink(link, filename)
	return &marker, nil
}

// filenameFor derives the artifact filename from the row's sentence id:
// a fixed-width zero-padded integer plus the encoding's extension. A row
// without a usable id cannot name its artifact and is a hard skip.
func (g *Generator) filenameFor(ctx context.Context, row int) (string, error) {
	idCell, err := g.adapter.ReadCell(ctx, g.tab, g.idColumn, row)
	if err != nil {
		return "", fmt.Errorf("failed to read sentence id: %w", err)
	}

	raw := strings.TrimSpace(idCell.Text)
	if raw == "" {
		return "", fmt.Errorf("row %d is missing a sentence id", row)
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return "", fmt.Errorf("row %d has non-numeric sentence id %q", row, raw)
	}

	return fmt.Sprintf("sentence_%06d%s", id, g.voice.Encoding.Extension()), nil
}

func preview(text string) string {
	if len(text) <= 40 {
		return text
	}
	return text[:40] + "..."
}

var _ reconcile.Generator = (*Generator)(nil)
