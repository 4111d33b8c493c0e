// Package reconcile implements the batch reconciliation engine that keeps a
// sentence sheet and its generated artifacts consistent.
//
// # Model
//
// The marker column is the completion ledger: a row with source text and an
// empty marker is unprocessed, a row with a non-empty marker is done and is
// never regenerated. There is no side database or checkpoint file; every run
// re-reads full column state and recomputes the gap from scratch, which makes
// any interrupted run safe to resume.
//
// # Architecture
//
// The engine consists of three parts:
//
//  1. Gap detection: positionally compare the source and marker columns
//     (padded to equal length) and collect the absolute row indices that
//     still need an artifact.
//
//  2. Driver: a sequential state machine over one run — validate headers,
//     read state, compute the gap, then process gap rows in ascending order.
//     Row failures are logged and skipped; the marker for a failed row is
//     never written, so the row stays in the gap for the next run.
//
//  3. Poller: for artifacts resolved asynchronously by the store's own
//     formula engine, block until every targeted cell holds a resolved
//     value instead of driving rows individually.
//
// Artifact generation is pluggable through the Generator interface; the audio
// and translation features provide the concrete generators.
package reconcile
