package decode

import (
	"testing"

	"github.com/cwsl/notecore/internal/numeric"
)

// TestPickPeaksOrderIsRowDescendingNotColumnGrouped guards against the
// reversal bug in spec.md §4.3.3: onsets in different pitch columns that
// interleave in time must come out in genuinely row-descending order
// (higher-row-index bias), not grouped by column with the highest column
// index processed first.
func TestPickPeaksOrderIsRowDescendingNotColumnGrouped(t *testing.T) {
	onsets := numeric.MatrixFromRows([][]float64{
		{0.9, 0.0},
		{0.0, 0.9},
		{0.9, 0.0},
	})
	peaks := pickPeaks(onsets, 0.5)

	want := []onset{{row: 2, col: 0}, {row: 1, col: 1}, {row: 0, col: 0}}
	if len(peaks) != len(want) {
		t.Fatalf("pickPeaks = %+v, want %+v", peaks, want)
	}
	for i := range want {
		if peaks[i] != want[i] {
			t.Fatalf("pickPeaks[%d] = %+v, want %+v (peaks must be row-descending, column-secondary, not column-grouped)",
				i, peaks[i], want[i])
		}
	}
}
