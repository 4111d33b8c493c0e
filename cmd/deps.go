package cmd

import (
	"context"
	"fmt"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/blob"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/blob/drive"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/blob/s3"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/config"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/googleauth"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/logger"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet/googlesheets"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet/workbook"

	"go.uber.org/zap"
)

// bootstrap loads configuration and builds the run-scoped logger every
// subcommand starts from.
func bootstrap() (*config.Config, *zap.Logger, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	l, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	return cfg, logger.WithRunID(l), nil
}

// newSheetService builds the configured tabular store backend. The returned
// close function flushes the workbook backend and is a no-op for google.
func newSheetService(ctx context.Context, cfg *config.Config) (sheet.Service, func() error, error) {
	switch cfg.Sheet.Backend {
	case sheet.BackendGoogle:
		httpClient, err := googleauth.NewClient(ctx, cfg.Sheet.TokenFile)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to build sheets credentials: %w", err)
		}
		client := googlesheets.NewClient(httpClient, cfg.Sheet.RequestsPerSecond)
		return client, func() error { return nil }, nil
	case sheet.BackendWorkbook:
		store, err := workbook.Open(cfg.Sheet.WorkbookPath)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open workbook: %w", err)
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown sheet backend: %s", cfg.Sheet.Backend)
	}
}

// newBlobStore builds the configured artifact store backend. The drive
// backend shares the sheets credential since both live on the same account.
func newBlobStore(ctx context.Context, cfg *config.Config) (blob.Store, error) {
	switch cfg.Blob.Backend {
	case blob.BackendDrive:
		httpClient, err := googleauth.NewClient(ctx, cfg.Sheet.TokenFile)
		if err != nil {
			return nil, fmt.Errorf("failed to build drive credentials: %w", err)
		}
		return drive.NewClient(httpClient), nil
	case blob.BackendS3:
		store, err := s3.NewStore(cfg.Blob.S3)
		if err != nil {
			return nil, fmt.Errorf("failed to connect to object storage: %w", err)
		}
		return store, nil
	default:
		return nil, fmt.Errorf("unknown blob backend: %s", cfg.Blob.Backend)
	}
}
