// Package decode implements the note decoder, the algorithmic heart of the
// pipeline (spec.md §4.3): frequency constraint, onset inference, peak
// picking, per-onset note extension, and the melodia-trick continuation
// pass that together turn frame/onset probability surfaces into discrete
// NoteEventFrames.
package decode

// NoteEventFrames is a decoded note expressed in frame indices, before
// time-mapping (spec.md §3).
type NoteEventFrames struct {
	StartFrame     int
	DurationFrames int
	PitchMidi      int
	Amplitude      float64
	PitchBends     []int // filled in later by internal/bend; nil until then
}

// Options are the recognized decoder options of spec.md §6.
type Options struct {
	OnsetThresh     float64
	FrameThresh     float64
	MinNoteLen      int
	InferOnsets     bool
	MaxFreqHz       *float64
	MinFreqHz       *float64
	MelodiaTrick    bool
	EnergyTolerance int
}

// DefaultOptions returns the documented defaults from spec.md §6.
func DefaultOptions() Options {
	return Options{
		OnsetThresh:     0.5,
		FrameThresh:     0.3,
		MinNoteLen:      5,
		InferOnsets:     true,
		MelodiaTrick:    true,
		EnergyTolerance: 11,
	}
}
