package audio

import (
	"context"
	"fmt"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/blob"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/cell"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/reconcile"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/retry"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/tts"

	"go.uber.org/zap"
)

// Required header labels for the audio run's columns.
const (
	HeaderSource = "translation"
	HeaderMarker = "audio_file"
	HeaderID     = "sentence_id"
)

// audioFolderSuffix is appended to the spreadsheet title to name the folder
// that receives the uploaded files.
const audioFolderSuffix = "_Audio"

// Runner wires one audio reconciliation run.
type Runner struct {
	service     sheet.Service
	adapter     *sheet.Adapter
	synthesizer tts.Synthesizer
	store       blob.Store
	executor    *retry.Executor
	logger      *zap.Logger
}

// NewRunner creates a Runner from explicit dependencies.
func NewRunner(
	service sheet.Service,
	adapter *sheet.Adapter,
	synthesizer tts.Synthesizer,
	store blob.Store,
	executor *retry.Executor,
	logger *zap.Logger,
) *Runner {
	return &Runner{
		service:     service,
		adapter:     adapter,
		synthesizer: synthesizer,
		store:       store,
		executor:    executor,
		logger:      logger,
	}
}

// Options holds the per-run parameters of an audio reconciliation.
type Options struct {
	// Tab is the tab name inside the spreadsheet.
	Tab string
	// Columns names the source, marker, and id columns.
	Columns reconcile.Columns
	// StartRow is the first data row.
	StartRow int
	// MaxRows caps how many gap rows this run processes. Zero means no cap.
	MaxRows int
	// Voice holds the synthesis parameters.
	Voice tts.Voice
	// DestFolderID is the parent under which the audio folder is created.
	DestFolderID string
}

// Run executes a full audio reconciliation: validate parameters, ensure the
// marker column header, ensure the upload folder, then drive the gap.
func (r *Runner) Run(ctx context.Context, opts Options) (*reconcile.Summary, error) {
	if err := opts.Voice.Validate(); err != nil {
		return nil, fmt.Errorf("invalid synthesis parameters: %w", err)
	}

	// The marker column header is written up front so a freshly added
	// column passes structure validation; the write is idempotent.
	if err := r.adapter.WriteCell(ctx, opts.Tab, opts.Columns.Marker, 1, cell.Plain(HeaderMarker)); err != nil {
		return nil, fmt.Errorf("failed to ensure marker column header: %w", err)
	}

	var meta *sheet.Metadata
	err := r.executor.Do(ctx, "sheet.metadata", func() error {
		var opErr error
		meta, opErr = r.service.GetMetadata(ctx, r.adapter.SpreadsheetID())
		return opErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to read spreadsheet metadata: %w", err)
	}

	folderName := meta.Title + audioFolderSuffix
	var folderID string
	err = r.executor.Do(ctx, "blob.ensure_folder", func() error {
		var opErr error
		folderID, opErr = r.store.EnsureFolder(ctx, opts.DestFolderID, folderName)
		return opErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to ensure audio folder %s: %w", folderName, err)
	}
	r.logger.Info("Audio folder ready",
		zap.String("folder", folderName),
		zap.String("folder_id", folderID))

	generator := NewGenerator(
		r.adapter, r.synthesizer, r.store, r.executor,
		opts.Voice, folderID, opts.Tab, opts.Columns.ID, r.logger,
	)

	driver := reconcile.NewDriver(r.adapter, generator, reconcile.DriverConfig{
		Tab:      opts.Tab,
		Columns:  opts.Columns,
		Headers:  Headers(),
		StartRow: opts.StartRow,
		MaxRows:  opts.MaxRows,
	}, r.logger)

	return driver.Run(ctx)
}

// Headers returns the labels the audio run requires in row 1.
func Headers() reconcile.Headers {
	return reconcile.Headers{
		Source: HeaderSource,
		Marker: HeaderMarker,
		ID:     HeaderID,
	}
}
