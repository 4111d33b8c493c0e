package extract

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/retry"

	"go.uber.org/zap"
)

// Options holds the parameters of one extraction run.
type Options struct {
	// Deck is the name of the deck to pull notes from.
	Deck string
	// Field is the note field holding the sentence text.
	Field string
	// OutputPath is the file the sentences are written to, one per line.
	OutputPath string
}

// Runner pulls sentences out of a flashcard deck and writes them to a plain
// text file suitable as pipeline source material.
type Runner struct {
	store    NotesStore
	executor *retry.Executor
	logger   *zap.Logger
}

// NewRunner creates a Runner.
func NewRunner(store NotesStore, executor *retry.Executor, logger *zap.Logger) *Runner {
	return &Runner{
		store:    store,
		executor: executor,
		logger:   logger,
	}
}

// Run extracts the configured field from every note in the deck and writes
// the non-empty values to the output file, one sentence per line.
func (r *Runner) Run(ctx context.Context, opts Options) error {
	if opts.Deck == "" {
		return fmt.Errorf("deck name is required")
	}
	if opts.Field == "" {
		return fmt.Errorf("note field name is required")
	}

	var ids []int64
	err := r.executor.Do(ctx, "notes.find", func() error {
		var opErr error
		ids, opErr = r.store.FindNotes(ctx, opts.Deck)
		return opErr
	})
	if err != nil {
		return fmt.Errorf("failed to find notes in deck %s: %w", opts.Deck, err)
	}
	if len(ids) == 0 {
		r.logger.Info("Deck has no notes, nothing to extract", zap.String("deck", opts.Deck))
		return nil
	}
	r.logger.Info("Found notes", zap.String("deck", opts.Deck), zap.Int("count", len(ids)))

	var notes []Note
	err = r.executor.Do(ctx, "notes.fetch", func() error {
		var opErr error
		notes, opErr = r.store.FetchNotes(ctx, ids)
		return opErr
	})
	if err != nil {
		return fmt.Errorf("failed to fetch notes: %w", err)
	}

	sentences := r.collect(notes, opts.Field)
	if len(sentences) == 0 {
		r.logger.Warn("No notes carried a usable sentence field",
			zap.String("field", opts.Field))
		return nil
	}

	if err := writeLines(opts.OutputPath, sentences); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	r.logger.Info("Sentences written",
		zap.String("path", opts.OutputPath),
		zap.Int("count", len(sentences)))
	return nil
}

// collect pulls the named field from each note, skipping notes where the
// field is missing or blank.
func (r *Runner) collect(notes []Note, field string) []string {
	sentences := make([]string, 0, len(notes))
	for _, note := range notes {
		text, ok := note.Fields[field]
		if !ok {
			r.logger.Warn("Note is missing the sentence field, skipping",
				zap.Int64("note_id", note.ID),
				zap.String("field", field))
			continue
		}
		text = strings.TrimSpace(text)
		if text == "" {
			continue
		}
		sentences = append(sentences, text)
	}
	return sentences
}

func writeLines(path string, lines []string) error {
	return os.WriteFile(path, []byte(strings.Join(lines, "\n")+"\n"), 0o644)
}
