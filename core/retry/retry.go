package retry

import (
	"context"
	"math"
	"math/rand"
	"time"

	"go.uber.org/zap"
)

// Executor retries failing operations with jittered exponential backoff.
//
// One executor is shared by every remote call in a run; there is no
// per-operation backoff tuning. The zero value is not usable, construct
// with New.
type Executor struct {
	maxRetries int
	baseDelay  time.Duration
	maxDelay   time.Duration
	logger     *zap.Logger

	// sleep and jitter are swappable for tests.
	sleep  func(ctx context.Context, d time.Duration) error
	jitter func() float64
}

// Option customizes an Executor.
type Option func(*Executor)

// WithSleep replaces the sleep function. Tests use this to avoid real delays.
func WithSleep(sleep func(ctx context.Context, d time.Duration) error) Option {
	return func(e *Executor) { e.sleep = sleep }
}

// WithJitter replaces the jitter source. The function must return a value
// in [0, 1).
func WithJitter(jitter func() float64) Option {
	return func(e *Executor) { e.jitter = jitter }
}

// New creates an Executor. Non-positive parameters fall back to the defaults
// of 5 attempts, 1s base delay, and 16s delay ceiling.
func New(cfg Config, logger *zap.Logger, opts ...Option) *Executor {
	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = DefaultMaxRetries
	}
	baseDelay := cfg.BaseDelay()
	if baseDelay <= 0 {
		baseDelay = DefaultBaseDelay
	}
	maxDelay := cfg.MaxDelay()
	if maxDelay <= 0 {
		maxDelay = DefaultMaxDelay
	}

	e := &Executor{
		maxRetries: maxRetries,
		baseDelay:  baseDelay,
		maxDelay:   maxDelay,
		logger:     logger,
		sleep:      sleepCtx,
		jitter:     rand.Float64,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Do invokes op until it succeeds or the attempt budget is exhausted.
// The delay before attempt k (k >= 2) is min(base*2^(k-2) + jitter, max),
// with jitter drawn uniformly from [0, 1) seconds. The error of the final
// failed attempt is returned unwrapped.
func (e *Executor) Do(ctx context.Context, name string, op func() error) error {
	var err error
	for attempt := 0; attempt < e.maxRetries; attempt++ {
		if err = op(); err == nil {
			return nil
		}
		if attempt == e.maxRetries-1 {
			break
		}

		delay := e.delayFor(attempt)
		e.logger.Warn("Retrying remote operation",
			zap.String("operation", name),
			zap.Int("attempt", attempt+1),
			zap.Duration("delay", delay),
			zap.Error(err),
		)
		if sleepErr := e.sleep(ctx, delay); sleepErr != nil {
			return sleepErr
		}
	}
	return err
}

// delayFor computes the backoff delay after a failure of attempt (0-based).
func (e *Executor) delayFor(attempt int) time.Duration {
	backoff := float64(e.baseDelay) * math.Pow(2, float64(attempt))
	jittered := backoff + e.jitter()*float64(time.Second)
	if capped := float64(e.maxDelay); jittered > capped {
		jittered = capped
	}
	return time.Duration(jittered)
}

// sleepCtx sleeps for d or until the context is cancelled.
func sleepCtx(ctx context.Context, d time.Duration) error {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}
