package reconcile

import (
	"context"
	"testing"
	"time"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/cell"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/retry"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet"
	"github.com/ZBlocker655/10k-sentences-pipeline/core/sheet/mocks"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

func noPollSleep(ctx context.Context, d time.Duration) error {
	return nil
}

func newPollAdapter(service sheet.Service) *sheet.Adapter {
	executor := retry.New(retry.Config{MaxRetries: 1}, zap.NewNop())
	return sheet.NewAdapter(service, executor, "sheet-1")
}

// TestWaitUntilResolved_ReturnsAfterResolution tests that polling stops once
// every cell holds a final value.
func TestWaitUntilResolved_ReturnsAfterResolution(t *testing.T) {
	service := &mocks.Service{}
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C3").
		Return([][]string{{`=GOOGLETRANSLATE(B2, "en", "zh-CN")`}, {"two"}}, nil).Twice()
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C3").
		Return([][]string{{"one"}, {"two"}}, nil).Once()

	poller := NewPoller(newPollAdapter(service), zap.NewNop(),
		WithPollSleep(noPollSleep), WithMaxCycles(10))
	values, err := poller.WaitUntilResolved(context.Background(), "Sheet1", "C", 2, 2)

	assert.NoError(t, err)
	assert.Equal(t, []cell.Value{cell.Plain("one"), cell.Plain("two")}, values)
	service.AssertExpectations(t)
}

// TestWaitUntilResolved_EmptyCellsBlockResolution tests that a blank cell
// keeps the column unresolved even when no formulas remain.
func TestWaitUntilResolved_EmptyCellsBlockResolution(t *testing.T) {
	service := &mocks.Service{}
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C3").
		Return([][]string{{"one"}}, nil)

	poller := NewPoller(newPollAdapter(service), zap.NewNop(),
		WithPollSleep(noPollSleep), WithMaxCycles(3))
	_, err := poller.WaitUntilResolved(context.Background(), "Sheet1", "C", 2, 2)

	assert.ErrorIs(t, err, ErrPollBudget)
}

// TestWaitUntilResolved_HyperlinksCountAsResolved tests that link cells do
// not hold polling open.
func TestWaitUntilResolved_HyperlinksCountAsResolved(t *testing.T) {
	service := &mocks.Service{}
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C2").
		Return([][]string{{`=HYPERLINK("https://example.com", "x")`}}, nil)

	poller := NewPoller(newPollAdapter(service), zap.NewNop(),
		WithPollSleep(noPollSleep), WithMaxCycles(3))
	values, err := poller.WaitUntilResolved(context.Background(), "Sheet1", "C", 2, 1)

	assert.NoError(t, err)
	assert.Equal(t, cell.KindHyperlink, values[0].Kind)
}

func TestWaitUntilResolved_SleepCancellation(t *testing.T) {
	service := &mocks.Service{}
	service.On("GetRange", mock.Anything, "sheet-1", "Sheet1!C2:C2").
		Return([][]string{}, nil)

	poller := NewPoller(newPollAdapter(service), zap.NewNop(),
		WithPollSleep(func(ctx context.Context, d time.Duration) error {
			return context.Canceled
		}))
	_, err := poller.WaitUntilResolved(context.Background(), "Sheet1", "C", 2, 1)

	assert.ErrorIs(t, err, context.Canceled)
}
