package decode

import (
	"errors"

	"github.com/cwsl/notecore/internal/constants"
	"github.com/cwsl/notecore/internal/numeric"
)

// ErrInvariant is the fatal "kind 3" error of spec.md §7: the melodia
// continuation pass produced a backward/forward boundary outside the
// matrix, which indicates a bug rather than bad input data.
var ErrInvariant = errors.New("notecore: melodia-trick pass produced an out-of-range note boundary")

// Stats carries diagnostic counters alongside the decoded notes, consumed
// by internal/metrics rather than by the core algorithm.
type Stats struct {
	MelodiaTrickIterations int
}

// Decode runs outputToNotesPoly (spec.md §4.3): frequency constraint, onset
// inference, peak picking, per-onset note extension, and (optionally) the
// melodia-trick continuation pass. frames and onsets are mutated in place
// by the frequency-constraint step; callers that still need the originals
// must clone them first (spec.md §5, §9).
func Decode(frames, onsets, contours *numeric.Matrix, opts Options) ([]NoteEventFrames, Stats, error) {
	_ = contours // read by the pitch-bend refiner stage, not by Decode itself

	constrainFrequency(frames, onsets, opts.MaxFreqHz, opts.MinFreqHz)

	workingOnsets := onsets
	if opts.InferOnsets {
		workingOnsets = inferOnsets(frames, onsets)
	}

	peaks := pickPeaks(workingOnsets, opts.OnsetThresh)

	remainingEnergy := frames.Clone()
	t := frames.Rows()

	var notes []NoteEventFrames

	for _, p := range peaks {
		if p.row >= t-1 {
			continue
		}
		res := walkForward(remainingEnergy, p.row+1, t-1, p.col, opts.EnergyTolerance, opts.FrameThresh, false)
		end := res.end - res.k
		if end-p.row <= opts.MinNoteLen {
			continue
		}
		zeroNoteRange(remainingEnergy, p.row, end, p.col)
		amp := numeric.MeanOfRange(frames, p.row, end, p.col)
		notes = append(notes, NoteEventFrames{
			StartFrame:     p.row,
			DurationFrames: end - p.row,
			PitchMidi:      p.col + constants.MidiOffset,
			Amplitude:      amp,
		})
	}

	stats := Stats{}
	if opts.MelodiaTrick {
		melodiaNotes, iterations, err := melodiaTrick(frames, remainingEnergy, t, opts)
		if err != nil {
			return nil, stats, err
		}
		notes = append(notes, melodiaNotes...)
		stats.MelodiaTrickIterations = iterations
	}

	return notes, stats, nil
}

func melodiaTrick(frames, remainingEnergy *numeric.Matrix, t int, opts Options) ([]NoteEventFrames, int, error) {
	var notes []NoteEventFrames
	iterations := 0

	for remainingEnergy.GlobalMax() > opts.FrameThresh {
		iterations++
		iMid, freqIdx, _, ok := remainingEnergy.GlobalArgMax()
		if !ok {
			break
		}
		remainingEnergy.Set(iMid, freqIdx, 0)

		fwd := walkForward(remainingEnergy, iMid+1, t-1, freqIdx, opts.EnergyTolerance, opts.FrameThresh, true)
		iEnd := fwd.end - 1 - fwd.k

		bwd := walkBackward(remainingEnergy, iMid-1, 0, freqIdx, opts.EnergyTolerance, opts.FrameThresh, true)
		iStart := bwd.end + 1 + bwd.k

		if iStart < 0 || iEnd >= t {
			return nil, iterations, ErrInvariant
		}
		if iEnd-iStart <= opts.MinNoteLen {
			continue
		}

		amp := numeric.MeanOfRange(frames, iStart, iEnd, freqIdx)
		notes = append(notes, NoteEventFrames{
			StartFrame:     iStart,
			DurationFrames: iEnd - iStart,
			PitchMidi:      freqIdx + constants.MidiOffset,
			Amplitude:      amp,
		})
	}

	return notes, iterations, nil
}
