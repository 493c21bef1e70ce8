package decode

import "github.com/cwsl/notecore/internal/constants"

// walkResult is the outcome of walking forward or backward from a seed
// frame, tolerating up to energyTolerance consecutive below-threshold
// frames before giving up (spec.md §4.3.4 step 2, §4.3.5 steps 3-4).
type walkResult struct {
	end int // exclusive raw walk boundary (before retreating by k)
	k   int // consecutive below-threshold frames trailing the boundary
}

// energyMatrix is the minimal read/write surface the walk functions need;
// decode.go's remainingEnergy (a *numeric.Matrix) satisfies it directly.
type energyMatrix interface {
	At(row, col int) float64
	Set(row, col int, v float64)
}

// walkForward advances from "from" (inclusive) until it reaches limit
// (exclusive) or accumulates energyTolerance consecutive below-threshold
// frames in column freqIdx. When zeroDuring is set (the melodia-trick
// continuation pass), every visited row has freqIdx and its clipped
// neighbours zeroed as it is visited — including rows that end up outside
// the note's final retreated boundary (spec.md §4.3.5 step 6: "energy was
// already cleared" even for a discarded note). The per-onset extension
// pass (spec.md §4.3.4) instead zeroes only the retreated range afterwards,
// and never zeroes a discarded note at all — so it calls this with
// zeroDuring=false.
func walkForward(m energyMatrix, from, limit, freqIdx, energyTolerance int, frameThresh float64, zeroDuring bool) walkResult {
	i := from
	k := 0
	for i < limit && k < energyTolerance {
		if m.At(i, freqIdx) < frameThresh {
			k++
		} else {
			k = 0
		}
		if zeroDuring {
			zeroNeighbours(m, i, freqIdx)
		}
		i++
	}
	return walkResult{end: i, k: k}
}

// walkBackward mirrors walkForward, decrementing from "from" down to limit
// (exclusive).
func walkBackward(m energyMatrix, from, limit, freqIdx, energyTolerance int, frameThresh float64, zeroDuring bool) walkResult {
	i := from
	k := 0
	for i > limit && k < energyTolerance {
		if m.At(i, freqIdx) < frameThresh {
			k++
		} else {
			k = 0
		}
		if zeroDuring {
			zeroNeighbours(m, i, freqIdx)
		}
		i--
	}
	return walkResult{end: i, k: k}
}

// zeroNeighbours zeroes (row, freqIdx) and its immediate column neighbours,
// clipped to the piano range.
func zeroNeighbours(m energyMatrix, row, freqIdx int) {
	lo, hi := freqIdx-1, freqIdx+1
	if lo < constants.MinFreqIdx {
		lo = constants.MinFreqIdx
	}
	if hi > constants.MaxFreqIdx {
		hi = constants.MaxFreqIdx
	}
	for c := lo; c <= hi; c++ {
		m.Set(row, c, 0)
	}
}

// zeroNoteRange zeroes rows [from, to) of freqIdx and its clipped
// neighbouring columns in one shot (used by the per-onset pass, which only
// clears energy for notes it actually keeps).
func zeroNoteRange(m energyMatrix, from, to, freqIdx int) {
	for r := from; r < to; r++ {
		zeroNeighbours(m, r, freqIdx)
	}
}
