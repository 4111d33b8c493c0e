package cmd

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/retry"
	"github.com/ZBlocker655/10k-sentences-pipeline/feature/extract"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Flags for extract command
	extractDeck     string
	extractField    string
	extractOutput   string
	extractEndpoint string
)

// extractCmd pulls sentences out of a flashcard deck.
var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract sentences from a flashcard deck into a text file",
	Long: `Extract the sentence field of every note in a deck and write the
values to a plain text file, one sentence per line. The flashcard application
must be running locally with its JSON API enabled.

Examples:
  sentence-pipeline extract --deck "Mandarin 10k" --field Hanzi --output sentences.txt`,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().StringVar(&extractDeck, "deck", "", "Deck name to pull notes from (overrides config)")
	extractCmd.Flags().StringVar(&extractField, "field", "", "Note field holding the sentence (overrides config)")
	extractCmd.Flags().StringVar(&extractOutput, "output", "", "Output file path (overrides config)")
	extractCmd.Flags().StringVar(&extractEndpoint, "endpoint", "", "Flashcard API endpoint (overrides config)")

	RootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	cfg, l, err := bootstrap()
	if err != nil {
		return err
	}

	if extractDeck != "" {
		cfg.Extract.Deck = extractDeck
	}
	if extractField != "" {
		cfg.Extract.Field = extractField
	}
	if extractOutput != "" {
		cfg.Extract.OutputPath = extractOutput
	}
	if extractEndpoint != "" {
		cfg.Extract.Endpoint = extractEndpoint
	}

	l.Info("Starting deck extraction",
		zap.String("deck", cfg.Extract.Deck),
		zap.String("field", cfg.Extract.Field))

	executor := retry.New(cfg.Retry, l)
	httpClient := &http.Client{Timeout: 30 * time.Second}
	store := extract.NewClient(httpClient, extract.WithBaseURL(cfg.Extract.Endpoint))

	runner := extract.NewRunner(store, executor, l)
	if err := runner.Run(ctx, extract.Options{
		Deck:       cfg.Extract.Deck,
		Field:      cfg.Extract.Field,
		OutputPath: cfg.Extract.OutputPath,
	}); err != nil {
		return fmt.Errorf("deck extraction failed: %w", err)
	}
	return nil
}
