package reconcile

import (
	"fmt"

	"github.com/ZBlocker655/10k-sentences-pipeline/core/cell"

	"go.uber.org/zap"
)

// FindGap computes the set of absolute row indices that have source content
// but no marker, in ascending order.
//
// Both sequences must be positionally aligned: element i of each describes
// absolute row startRow+i. Rows with an empty source are not work and are
// skipped with a diagnostic; rows with a non-empty marker are already done.
func FindGap(sources, markers []cell.Value, startRow int, logger *zap.Logger) ([]int, error) {
	if len(sources) != len(markers) {
		return nil, fmt.Errorf("%w: %d source rows vs %d marker rows",
			ErrAlignment, len(sources), len(markers))
	}

	var gap []int
	for i, source := range sources {
		if source.IsEmpty() {
			logger.Warn("Row has empty source text, skipping",
				zap.Int("row", startRow+i))
			continue
		}
		if markers[i].IsEmpty() {
			gap = append(gap, startRow+i)
		}
	}
	return gap, nil
}
