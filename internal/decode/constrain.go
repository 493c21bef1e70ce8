package decode

import (
	"math"

	"github.com/cwsl/notecore/internal/constants"
	"github.com/cwsl/notecore/internal/numeric"
)

// constrainFrequency zeroes, in place, in both frames and onsets every
// column at or above maxFreqHz's rounded pitch bin and every column below
// minFreqHz's rounded pitch bin (spec.md §4.3.1). A nil bound means
// unconstrained on that side. This mutates the caller's matrices by
// contract (spec.md §5, §9 "In-place matrix mutation"): ownership of
// frames/onsets is transferred to the decoder for the duration of Decode.
func constrainFrequency(frames, onsets *numeric.Matrix, maxFreqHz, minFreqHz *float64) {
	if maxFreqHz != nil {
		maxFreqIdx := int(math.Round(numeric.HzToMidi(*maxFreqHz))) - constants.MidiOffset
		onsets.ZeroColsFrom(maxFreqIdx)
		frames.ZeroColsFrom(maxFreqIdx)
	}
	if minFreqHz != nil {
		minFreqIdx := int(math.Round(numeric.HzToMidi(*minFreqHz))) - constants.MidiOffset
		onsets.ZeroColsUpTo(minFreqIdx)
		frames.ZeroColsUpTo(minFreqIdx)
	}
}
