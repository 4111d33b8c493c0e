package reconcile

import (
	"context"
	"time"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/cell"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"

	"go.uber.org/zap"
)

// DefaultPollInterval is the fixed delay between resolution checks.
//
// The awaited work is deterministic bulk computation by the store's own
// formula engine, not a flaky remote call, so a short fixed interval is used
// instead of backoff.
const DefaultPollInterval = 15 * time.Second

// Poller blocks until a column of asynchronously computed cells has fully
// resolved. Production polling is unbounded; tests inject a sleep function
// and an iteration cap to fail fast.
type Poller struct {
	adapter  *sheet.Adapter
	interval time.Duration
	logger   *zap.Logger

	// maxCycles caps poll iterations when > 0. Test-only.
	maxCycles int
	sleep     func(ctx context.Context, d time.Duration) error
}

// PollerOption customizes a Poller.
type PollerOption func(*Poller)

// WithInterval overrides the poll interval.
func WithInterval(d time.Duration) PollerOption {
	return func(p *Poller) { p.interval = d }
}

// WithMaxCycles caps the number of poll iterations. Exceeding the cap fails
// with ErrPollBudget instead of blocking forever.
func WithMaxCycles(n int) PollerOption {
	return func(p *Poller) { p.maxCycles = n }
}

// WithPollSleep replaces the sleep function. Tests use this to avoid real delays.
func WithPollSleep(sleep func(ctx context.Context, d time.Duration) error) PollerOption {
	return func(p *Poller) { p.sleep = sleep }
}

// NewPoller creates a Poller reading through the given adapter.
func NewPoller(adapter *sheet.Adapter, logger *zap.Logger, opts ...PollerOption) *Poller {
	p := &Poller{
		adapter:  adapter,
		interval: DefaultPollInterval,
		logger:   logger,
		sleep: func(ctx context.Context, d time.Duration) error {
			t := time.NewTimer(d)
			defer t.Stop()
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-t.C:
				return nil
			}
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// WaitUntilResolved re-reads expectedCount cells of the column starting at
// startRow until every cell is non-empty and none still holds an unresolved
// formula, then returns the resolved cells.
func (p *Poller) WaitUntilResolved(ctx context.Context, tab, column string, startRow, expectedCount int) ([]cell.Value, error) {
	p.logger.Info("Waiting for formulas to resolve",
		zap.String("column", column),
		zap.Int("expected_count", expectedCount))

	for cycle := 0; ; cycle++ {
		if p.maxCycles > 0 && cycle >= p.maxCycles {
			return nil, ErrPollBudget
		}

		values, err := p.adapter.ReadColumnN(ctx, tab, column, startRow, expectedCount)
		if err != nil {
			return nil, err
		}
		if resolved(values) {
			p.logger.Info("All formulas resolved", zap.Int("count", len(values)))
			return values, nil
		}

		p.logger.Info("Formulas still resolving, sleeping",
			zap.Duration("interval", p.interval))
		if err := p.sleep(ctx, p.interval); err != nil {
			return nil, err
		}
	}
}

// resolved reports whether every cell holds a final value: non-empty and not
// a formula. Hyperlink cells count as resolved.
func resolved(values []cell.Value) bool {
	for _, v := range values {
		if v.IsEmpty() || v.IsFormula() {
			return false
		}
	}
	return true
}
