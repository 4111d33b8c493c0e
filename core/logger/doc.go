// Package logger provides a structured logging facility based on Zap.
//
// It offers a configured logger instance that supports different environments
// (development vs production) and console or JSON encodings.
//
// # Run Correlation
//
// Every pipeline invocation should tag its logger with a run identifier via
// WithRunID, ensuring that all entries emitted during one reconciliation run
// can be correlated after the fact.
//
// # Configuration
//
// The package supports configuration for:
//   - Level: debug, info, warn, error
//   - Format: json (production) or console (development)
//
// # Usage
//
//	log, _ := logger.New(&logger.Config{Level: "info"})
//	log = logger.WithRunID(log)
//	log.Info("Audio run started")
package logger
