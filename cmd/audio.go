package cmd

import (
	"context"
	"fmt"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/googleauth"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/reconcile"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/retry"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/tts"
	"github.com/ZBlocker655/10k-sentences-pipeline/feature/audio"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for audio command
	audioSpreadsheetID string
	audioTab           string
	audioMaxRows       int
	audioVoice         string
	audioRate          float64
	audioEncoding      string
	audioDestFolderID  string
)

// audioCmd fills missing audio links into the sentence spreadsheet.
var audioCmd = &cobra.Command{
	Use:   "audio",
	Short: "Generate audio for sentences that do not have it yet",
	Long: `Generate audio for every sentence row whose audio column is still empty.

Each gap row is synthesized, uploaded next to the spreadsheet, and marked with
a hyperlink to the uploaded file. Rows that already carry a link are left
untouched, so an interrupted run can simply be started again.

Examples:
  # Fill the whole sheet
  sentence-pipeline audio --spreadsheet-id <id> --voice cmn-CN-Wavenet-A

  # Limit a run to 50 rows
  sentence-pipeline audio --spreadsheet-id <id> --voice cmn-CN-Wavenet-A --max-rows 50`,
	RunE: runAudio,
}

func init() {
	audioCmd.Flags().StringVar(&audioSpreadsheetID, "spreadsheet-id", "", "Spreadsheet to reconcile (overrides config)")
	audioCmd.Flags().StringVar(&audioTab, "tab", "", "Tab name inside the spreadsheet (overrides config)")
	audioCmd.Flags().IntVar(&audioMaxRows, "max-rows", 0, "Cap on rows processed this run (0 = no cap)")
	audioCmd.Flags().StringVar(&audioVoice, "voice", "", "Synthesis voice name (overrides config)")
	audioCmd.Flags().Float64Var(&audioRate, "rate", 0, "Speaking rate multiplier (overrides config)")
	audioCmd.Flags().StringVar(&audioEncoding, "encoding", "", "Audio encoding: MP3, OGG_OPUS, LINEAR16 (overrides config)")
	audioCmd.Flags().StringVar(&audioDestFolderID, "dest-folder-id", "", "Parent folder for the audio folder (overrides config)")

	RootCmd.AddCommand(audioCmd)
}

func runAudio(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}

	if audioSpreadsheetID != "" {
		cfg.Sheet.SpreadsheetID = audioSpreadsheetID
	}
	if audioTab != "" {
		cfg.Sheet.Tab = audioTab
	}
	if audioVoice != "" {
		cfg.TTS.VoiceName = audioVoice
	}
	if audioRate > 0 {
		cfg.TTS.SpeakingRate = audioRate
	}
	if audioEncoding != "" {
		cfg.TTS.Encoding = audioEncoding
	}
	if audioDestFolderID != "" {
		cfg.Blob.DestFolderID = audioDestFolderID
	}
	if cfg.Sheet.SpreadsheetID == "" {
		return fmt.Errorf("spreadsheet id is required")
	}

	l.Info("Starting audio reconciliation",
		zap.String("spreadsheet_id", cfg.Sheet.SpreadsheetID),
		zap.String("tab", cfg.Sheet.Tab))

	executor := retry.New(cfg.Retry, l)

	service, closeService, err := newSheetService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeService() }()

	store, err := newBlobStore(ctx, cfg)
	if err != nil {
		return err
	}

	ttsClient, err := googleauth.NewClient(ctx, cfg.TTS.TokenFile)
	if err != nil {
		return fmt.Errorf("failed to build synthesis credentials: %w", err)
	}
	synthesizer := tts.NewGoogleClient(ttsClient)

	adapter := sheet.NewAdapter(service, executor, cfg.Sheet.SpreadsheetID)
	runner := audio.NewRunner(service, adapter, synthesizer, store, executor, l)

	summary, err := runner.Run(ctx, audio.Options{
		Tab: cfg.Sheet.Tab,
		Columns: reconcile.Columns{
			Source: cfg.Sheet.SourceColumn,
			Marker: cfg.Sheet.MarkerColumn,
			ID:     cfg.Sheet.IDColumn,
		},
		StartRow:     cfg.Sheet.StartRow,
		MaxRows:      audioMaxRows,
		Voice:        cfg.TTS.Voice(),
		DestFolderID: cfg.Blob.DestFolderID,
	})
	if err != nil {
		return fmt.Errorf("audio reconciliation failed: %w", err)
	}

	l.Info("Audio reconciliation finished",
		zap.Int("rows_found", summary.RowsFound),
		zap.Int("rows_needed", summary.RowsNeeded),
		zap.Int("rows_processed", summary.RowsProcessed),
		zap.Int("rows_failed", summary.RowsFailed),
	)
	return nil
}
