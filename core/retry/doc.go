// Package retry provides bounded, jittered exponential backoff for remote calls.
//
// Every remote operation in the pipeline (sheet reads and writes, speech
// synthesis, blob uploads) goes through a single shared Executor with one
// uniform policy: up to MaxRetries attempts, delays doubling from BaseDelay
// with up to one second of uniform jitter, capped at MaxDelay. The final
// attempt's error is propagated unchanged.
//
// Unbounded retry would hang a whole batch on a transient outage, and fixed
// linear retry would hammer a rate-limited API; jittered exponential backoff
// bounds the total wait while spreading retries of rows processed in the
// same run.
package retry
