package translate

import (
	"context"
	"fmt"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/cell"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/reconcile"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/retry"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"

	"go.uber.org/zap"
)

// Destination sheet layout while the workflow is in flight. The formula
// column is intermediate and deleted during finalize, which shifts the value
// column into its place.
const (
	destTab       = "Sheet1"
	idColumn      = "A"
	sentenceCol   = "B"
	formulaCol    = "C"
	valueCol      = "D"
	dataStartRow  = 2
	headerRowFont = "Courier New"
)

// Options holds the parameters of one translation workflow run.
type Options struct {
	// SourceSpreadsheetID is the sheet holding source sentences in column A.
	SourceSpreadsheetID string
	// SourceTab is the tab name in the source sheet.
	SourceTab string
	// DestSheetName is the name for the created destination sheet.
	DestSheetName string
	// TargetLang is the translation target language code (e.g. zh-CN).
	TargetLang string
	// TargetFont optionally sets the font of the translated column.
	TargetFont string
	// FontSize optionally sets the font size of all columns.
	FontSize int
	// DestFolderID optionally places the new sheet inside a folder.
	DestFolderID string
	// ResumeSpreadsheetID resumes finalization of an existing destination
	// sheet instead of creating a new one. Used after a crashed run.
	ResumeSpreadsheetID string
}

// Workflow drives the translation variant of the pipeline: one bulk formula
// write plus a poll for resolution, instead of per-row generation.
type Workflow struct {
	service  sheet.Service
	executor *retry.Executor
	logger   *zap.Logger
	pollOpts []reconcile.PollerOption
}

// NewWorkflow creates a Workflow. pollOpts customize resolution polling;
// tests cap iterations and remove delays.
func NewWorkflow(service sheet.Service, executor *retry.Executor, logger *zap.Logger, pollOpts ...reconcile.PollerOption) *Workflow {
	return &Workflow{
		service:  service,
		executor: executor,
		logger:   logger,
		pollOpts: pollOpts,
	}
}

// Run executes the workflow and returns the destination spreadsheet id.
//
// Every finalize step is detectable from sheet state and re-runnable, so a
// crash at any point is recovered by re-running with ResumeSpreadsheetID set
// to the half-finished sheet.
func (w *Workflow) Run(ctx context.Context, opts Options) (string, error) {
	if opts.ResumeSpreadsheetID != "" {
		return opts.ResumeSpreadsheetID, w.resume(ctx, opts)
	}

	sentences, err := w.readSourceSentences(ctx, opts)
	if err != nil {
		return "", err
	}
	if len(sentences) == 0 {
		w.logger.Info("No sentences found in source tab, nothing to do")
		return "", nil
	}
	w.logger.Info("Fetched source sentences", zap.Int("count", len(sentences)))

	var destID string
	err = w.executor.Do(ctx, "sheet.create", func() error {
		var opErr error
		destID, opErr = w.service.Create(ctx, opts.DestSheetName, opts.DestFolderID)
		return opErr
	})
	if err != nil {
		return "", fmt.Errorf("failed to create destination sheet: %w", err)
	}
	w.logger.Info("Destination sheet created", zap.String("spreadsheet_id", destID))

	if err := w.seed(ctx, destID, sentences, opts.TargetLang); err != nil {
		return destID, err
	}

	adapter := sheet.NewAdapter(w.service, w.executor, destID)
	poller := reconcile.NewPoller(adapter, w.logger, w.pollOpts...)
	translations, err := poller.WaitUntilResolved(ctx, destTab, formulaCol, dataStartRow, len(sentences))
	if err != nil {
		return destID, fmt.Errorf("failed waiting for translations: %w", err)
	}

	if err := w.persistValues(ctx, adapter, translations); err != nil {
		return destID, err
	}
	if err := w.clearFormulaColumn(ctx, adapter, len(sentences)); err != nil {
		return destID, err
	}
	if err := w.finalize(ctx, destID, adapter, opts); err != nil {
		return destID, err
	}

	w.logger.Info("Translation sheet complete", zap.String("spreadsheet_id", destID))
	return destID, nil
}

// resume inspects a half-finished destination sheet and completes whatever
// finalize steps remain.
func (w *Workflow) resume(ctx context.Context, opts Options) error {
	destID := opts.ResumeSpreadsheetID
	adapter := sheet.NewAdapter(w.service, w.executor, destID)

	sentences, err := adapter.ReadColumn(ctx, destTab, sentenceCol, dataStartRow)
	if err != nil {
		return fmt.Errorf("failed to read destination sentences: %w", err)
	}
	if len(sentences) == 0 {
		return fmt.Errorf("destination sheet %s has no seeded sentences to resume", destID)
	}

	values, err := adapter.ReadColumnN(ctx, destTab, valueCol, dataStartRow, len(sentences))
	if err != nil {
		return err
	}

	// If the value column is already populated the poll/copy steps are done;
	// only the tail of finalize can be outstanding. Otherwise take the normal
	// path: polling an already-resolved formula column returns immediately.
	if !anyEmpty(values) {
		w.logger.Info("Resuming finalize of destination sheet",
			zap.String("spreadsheet_id", destID))
	} else {
		poller := reconcile.NewPoller(adapter, w.logger, w.pollOpts...)
		translations, err := poller.WaitUntilResolved(ctx, destTab, formulaCol, dataStartRow, len(sentences))
		if err != nil {
			return fmt.Errorf("failed waiting for translations: %w", err)
		}
		if err := w.persistValues(ctx, adapter, translations); err != nil {
			return err
		}
	}

	if err := w.clearFormulaColumn(ctx, adapter, len(sentences)); err != nil {
		return err
	}
	return w.finalize(ctx, destID, adapter, opts)
}

// readSourceSentences reads the full source column, including its first row;
// the source sheet has no header convention.
func (w *Workflow) readSourceSentences(ctx context.Context, opts Options) ([]cell.Value, error) {
	adapter := sheet.NewAdapter(w.service, w.executor, opts.SourceSpreadsheetID)
	sentences, err := adapter.ReadColumn(ctx, opts.SourceTab, idColumn, 1)
	if err != nil {
		return nil, fmt.Errorf("failed to read source sentences: %w", err)
	}
	return sentences, nil
}

// seed writes one row per sentence: sentence id, the sentence, and a
// translation formula referencing the sentence cell on the same row.
func (w *Workflow) seed(ctx context.Context, destID string, sentences []cell.Value, targetLang string) error {
	matrix := make([][]string, len(sentences))
	for i, sentence := range sentences {
		row := dataStartRow + i
		formula := fmt.Sprintf(`=GOOGLETRANSLATE(%s%d, "en", %q)`, sentenceCol, row, targetLang)
		matrix[i] = []string{fmt.Sprintf("%d", i+1), sentence.Text, formula}
	}

	rangeName := fmt.Sprintf("%s!%s%d:%s", destTab, idColumn, dataStartRow, formulaCol)
	err := w.executor.Do(ctx, "sheet.update", func() error {
		return w.service.UpdateRange(ctx, destID, rangeName, matrix, sheet.InputUserEntered)
	})
	if err != nil {
		return fmt.Errorf("failed to seed destination sheet: %w", err)
	}
	return nil
}

// persistValues copies the resolved translations into the permanent value
// column. The write is raw so translated text can never be re-parsed as a
// formula, and overwriting identical values is harmless, which is what makes
// the step re-runnable.
func (w *Workflow) persistValues(ctx context.Context, adapter *sheet.Adapter, translations []cell.Value) error {
	matrix := make([][]string, len(translations))
	for i, t := range translations {
		matrix[i] = []string{t.Text}
	}
	if err := w.writeRaw(ctx, adapter.SpreadsheetID(), valueCol, matrix); err != nil {
		return fmt.Errorf("failed to persist translations: %w", err)
	}
	return nil
}

// clearFormulaColumn blanks the intermediate formula cells before the column
// is removed, so a crash between the two steps leaves no live formulas.
func (w *Workflow) clearFormulaColumn(ctx context.Context, adapter *sheet.Adapter, count int) error {
	matrix := make([][]string, count)
	for i := range matrix {
		matrix[i] = []string{""}
	}
	if err := w.writeRaw(ctx, adapter.SpreadsheetID(), formulaCol, matrix); err != nil {
		return fmt.Errorf("failed to clear formula column: %w", err)
	}
	return nil
}

func (w *Workflow) writeRaw(ctx context.Context, spreadsheetID, column string, matrix [][]string) error {
	rangeName := sheet.ColumnRange(destTab, column, dataStartRow, 0)
	return w.executor.Do(ctx, "sheet.update", func() error {
		return w.service.UpdateRange(ctx, spreadsheetID, rangeName, matrix, sheet.InputRaw)
	})
}

// finalize applies the cosmetic formatting, removes the formula column, and
// writes the header row. Each step is idempotent; deletion is skipped when
// the column is already gone.
func (w *Workflow) finalize(ctx context.Context, destID string, adapter *sheet.Adapter, opts Options) error {
	var meta *sheet.Metadata
	err := w.executor.Do(ctx, "sheet.metadata", func() error {
		var opErr error
		meta, opErr = w.service.GetMetadata(ctx, destID)
		return opErr
	})
	if err != nil {
		return fmt.Errorf("failed to read destination metadata: %w", err)
	}
	if len(meta.Tabs) == 0 {
		return fmt.Errorf("destination sheet %s has no tabs", destID)
	}
	tabID := meta.Tabs[0].ID

	deleteFormulaCol, err := w.formulaColumnPresent(ctx, adapter)
	if err != nil {
		return err
	}

	var ops []sheet.FormatOp
	if opts.FontSize > 0 {
		for col := 0; col < 4; col++ {
			ops = append(ops, sheet.ColumnFont(tabID, col, "", opts.FontSize))
		}
	}
	if opts.TargetFont != "" {
		ops = append(ops, sheet.ColumnFont(tabID, sheet.ColumnIndex(valueCol), opts.TargetFont, 0))
	}
	ops = append(ops,
		sheet.AutoResizeColumns(tabID, sheet.ColumnIndex(sentenceCol), sheet.ColumnIndex(sentenceCol)+1),
		sheet.AutoResizeColumns(tabID, sheet.ColumnIndex(valueCol), sheet.ColumnIndex(valueCol)+1),
	)
	if deleteFormulaCol {
		ops = append(ops, sheet.DeleteColumn(tabID, sheet.ColumnIndex(formulaCol)))
	}
	ops = append(ops,
		sheet.FreezeRows(tabID, 1),
		sheet.RowFont(tabID, 0, headerRowFont),
	)

	err = w.executor.Do(ctx, "sheet.batch_format", func() error {
		return w.service.BatchFormat(ctx, destID, ops)
	})
	if err != nil {
		return fmt.Errorf("failed to finalize formatting: %w", err)
	}

	header := [][]string{{"sentence_id", "sentence", "translation"}}
	headerRange := sheet.RowRange(destTab, idColumn, formulaCol, 1)
	err = w.executor.Do(ctx, "sheet.update", func() error {
		return w.service.UpdateRange(ctx, destID, headerRange, header, sheet.InputRaw)
	})
	if err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}
	return nil
}

// formulaColumnPresent reports whether the intermediate column still exists.
// After deletion the value column shifts left, so the tell is a populated
// value column alongside the (cleared) formula column.
func (w *Workflow) formulaColumnPresent(ctx context.Context, adapter *sheet.Adapter) (bool, error) {
	d2, err := adapter.ReadCell(ctx, destTab, valueCol, dataStartRow)
	if err != nil {
		return false, err
	}
	return !d2.IsEmpty(), nil
}

func anyEmpty(values []cell.Value) bool {
	for _, v := range values {
		if v.IsEmpty() {
			return true
		}
	}
	return false
}
