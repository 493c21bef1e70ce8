// Package bend implements the pitch-bend refiner (spec.md §4.4): for each
// decoded note, it reads a Gaussian-weighted window of the contour matrix
// around the note's nominal contour bin and picks, per frame, the
// fractional-pitch deviation with the strongest weighted contour energy.
package bend

import (
	"math"

	"github.com/cwsl/notecore/internal/constants"
	"github.com/cwsl/notecore/internal/decode"
	"github.com/cwsl/notecore/internal/numeric"
)

const (
	gaussianM   = 51
	gaussianStd = 5.0
	halfWindow  = 25 // (gaussianM-1)/2
)

var fullGaussian = numeric.Gaussian(gaussianM, gaussianStd)

// midiPitchToContourBin maps a MIDI pitch to its nominal index in the
// 264-bin contour matrix (spec.md §4.4, unit-level check in §8).
func midiPitchToContourBin(pitchMidi int) int {
	hz := numeric.MidiToHz(float64(pitchMidi))
	return int(math.Round(constants.ContoursBinsPerSemitone * 12 * math.Log2(hz/constants.AnnotationsBaseFrequency)))
}

// Refine fills in note.PitchBends for every note, reading from contours.
// It mutates the notes in place and also returns the slice for convenience.
func Refine(notes []decode.NoteEventFrames, contours *numeric.Matrix) []decode.NoteEventFrames {
	for i := range notes {
		notes[i].PitchBends = refineOne(notes[i], contours)
	}
	return notes
}

func refineOne(note decode.NoteEventFrames, contours *numeric.Matrix) []int {
	freqIdxContours := midiPitchToContourBin(note.PitchMidi)

	freqStart := freqIdxContours - halfWindow
	clipLeft := 0
	if freqStart < 0 {
		clipLeft = -freqStart
		freqStart = 0
	}
	freqEnd := freqIdxContours + halfWindow + 1
	if freqEnd > constants.NFreqBinsContours {
		freqEnd = constants.NFreqBinsContours
	}
	windowLen := freqEnd - freqStart
	if windowLen <= 0 {
		return make([]int, note.DurationFrames)
	}

	gaussianSlice := fullGaussian[clipLeft : clipLeft+windowLen]
	pbShift := halfWindow - clipLeft

	bends := make([]int, note.DurationFrames)
	for fr := 0; fr < note.DurationFrames; fr++ {
		row := contours.Row(note.StartFrame + fr)
		weighted := make([]float64, windowLen)
		for j := 0; j < windowLen; j++ {
			weighted[j] = row[freqStart+j] * gaussianSlice[j]
		}
		idx, ok := numeric.ArgMax(weighted)
		if !ok {
			idx = 0
		}
		bends[fr] = idx - pbShift
	}
	return bends
}
