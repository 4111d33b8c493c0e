package cmd

import (
	"context"
	"fmt"
	"time"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/reconcile"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/retry"
	"github.com/ZBlocker655/10k-sentences-pipeline/feature/translate"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for translate command
	translateSourceID     string
	translateSourceTab    string
	translateDestName     string
	translateTargetLang   string
	translateTargetFont   string
	translateFontSize     int
	translateDestFolderID string
	translateResumeID     string
)

// translateCmd builds a translated companion sheet from a sentence column.
var translateCmd = &cobra.Command{
	Use:   "translate",
	Short: "Build a translated sheet from a column of source sentences",
	Long: `Build a new spreadsheet holding every source sentence next to its
translation. Translations are produced inside the sheet itself by seeding
formulas and waiting for them to resolve, then frozen into plain text.

Examples:
  # Translate into Mandarin
  sentence-pipeline translate --source-spreadsheet-id <id> --target-lang zh-CN --dest-name "Sentences zh-CN"

  # Finish a run that crashed mid-way
  sentence-pipeline translate --target-lang zh-CN --resume-spreadsheet-id <dest-id>`,
	RunE: runTranslate,
}

func init() {
	translateCmd.Flags().StringVar(&translateSourceID, "source-spreadsheet-id", "", "Spreadsheet holding source sentences (overrides config)")
	translateCmd.Flags().StringVar(&translateSourceTab, "source-tab", "", "Tab name in the source spreadsheet (overrides config)")
	translateCmd.Flags().StringVar(&translateDestName, "dest-name", "", "Name for the created spreadsheet (overrides config)")
	translateCmd.Flags().StringVar(&translateTargetLang, "target-lang", "", "Target language code, e.g. zh-CN (overrides config)")
	translateCmd.Flags().StringVar(&translateTargetFont, "target-font", "", "Font for the translated column (overrides config)")
	translateCmd.Flags().IntVar(&translateFontSize, "font-size", 0, "Font size for all columns (overrides config)")
	translateCmd.Flags().StringVar(&translateDestFolderID, "dest-folder-id", "", "Folder to create the spreadsheet in (overrides config)")
	translateCmd.Flags().StringVar(&translateResumeID, "resume-spreadsheet-id", "", "Resume finalization of an existing destination sheet")

	RootCmd.AddCommand(translateCmd)
}

func runTranslate(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}

	if translateSourceID != "" {
		cfg.Sheet.SpreadsheetID = translateSourceID
	}
	if translateSourceTab != "" {
		cfg.Sheet.Tab = translateSourceTab
	}
	if translateDestName != "" {
		cfg.Translate.DestSheetName = translateDestName
	}
	if translateTargetLang != "" {
		cfg.Translate.TargetLang = translateTargetLang
	}
	if translateTargetFont != "" {
		cfg.Translate.TargetFont = translateTargetFont
	}
	if translateFontSize > 0 {
		cfg.Translate.FontSize = translateFontSize
	}
	if translateDestFolderID != "" {
		cfg.Translate.DestFolderID = translateDestFolderID
	}

	if cfg.Translate.TargetLang == "" {
		return fmt.Errorf("target language is required")
	}
	if translateResumeID == "" {
		if cfg.Sheet.SpreadsheetID == "" {
			return fmt.Errorf("source spreadsheet id is required")
		}
		if cfg.Translate.DestSheetName == "" {
			return fmt.Errorf("destination sheet name is required")
		}
	}

	l.Info("Starting translation workflow",
		zap.String("target_lang", cfg.Translate.TargetLang))

	executor := retry.New(cfg.Retry, l)

	service, closeService, err := newSheetService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeService() }()

	interval := time.Duration(cfg.Translate.PollIntervalSeconds) * time.Second
	workflow := translate.NewWorkflow(service, executor, l, reconcile.WithInterval(interval))

	destID, err := workflow.Run(ctx, translate.Options{
		SourceSpreadsheetID: cfg.Sheet.SpreadsheetID,
		SourceTab:           cfg.Sheet.Tab,
		DestSheetName:       cfg.Translate.DestSheetName,
		TargetLang:          cfg.Translate.TargetLang,
		TargetFont:          cfg.Translate.TargetFont,
		FontSize:            cfg.Translate.FontSize,
		DestFolderID:        cfg.Translate.DestFolderID,
		ResumeSpreadsheetID: translateResumeID,
	})
	if err != nil {
		if destID != "" {
			l.Error("Translation workflow failed, resume with --resume-spreadsheet-id",
				zap.String("spreadsheet_id", destID),
				zap.Error(err))
		}
		return fmt.Errorf("translation workflow failed: %w", err)
	}

	if destID != "" {
		l.Info("Translation workflow finished", zap.String("spreadsheet_id", destID))
	}
	return nil
}
