package decode

import "github.com/cwsl/notecore/internal/numeric"

// onset is a single candidate note attack: (row, pitch column).
type onset struct {
	row int
	col int
}

// pickPeaks applies ArgRelMax (order=1) to inferredOnsets, keeps only peaks
// whose value exceeds onsetThresh, and returns them with later (higher-row)
// onsets first (spec.md §4.3.3: "reverse the list so later notes are
// processed first").
func pickPeaks(inferredOnsets *numeric.Matrix, onsetThresh float64) []onset {
	rows, cols := numeric.ArgRelMax(inferredOnsets, 1)

	var peaks []onset
	for i := range rows {
		r, c := rows[i], cols[i]
		if inferredOnsets.At(r, c) > onsetThresh {
			peaks = append(peaks, onset{row: r, col: c})
		}
	}

	for i, j := 0, len(peaks)-1; i < j; i, j = i+1, j-1 {
		peaks[i], peaks[j] = peaks[j], peaks[i]
	}
	return peaks
}
