// Package timemap converts frame-indexed notes to seconds using the
// model's frame-to-time relation, which includes a per-window offset
// correction for the overlap trimming done upstream (spec.md §4.5).
package timemap

import (
	"github.com/cwsl/notecore/internal/constants"
	"github.com/cwsl/notecore/internal/decode"
)

// NoteEventTime is a decoded note with times mapped to seconds
// (spec.md §3), the representation handed to the caller and the MIDI
// emitter.
type NoteEventTime struct {
	StartTimeSeconds float64
	DurationSeconds  float64
	PitchMidi        int
	Amplitude        float64
	PitchBends       []int
}

// FrameToTime implements modelFrameToTime(f) = f*FFT_HOP/AUDIO_SAMPLE_RATE
// - WINDOW_OFFSET*floor(f/ANNOT_N_FRAMES).
func FrameToTime(frame int) float64 {
	windowIndex := frame / constants.AnnotNFrames // integer division == floor for frame>=0
	return float64(frame)*float64(constants.FFTHop)/float64(constants.AudioSampleRate) -
		constants.WindowOffset*float64(windowIndex)
}

// Map converts a slice of frame-indexed notes to second-indexed notes.
func Map(notes []decode.NoteEventFrames) []NoteEventTime {
	out := make([]NoteEventTime, len(notes))
	for i, n := range notes {
		start := FrameToTime(n.StartFrame)
		end := FrameToTime(n.StartFrame + n.DurationFrames)
		out[i] = NoteEventTime{
			StartTimeSeconds: start,
			DurationSeconds:  end - start,
			PitchMidi:        n.PitchMidi,
			Amplitude:        n.Amplitude,
			PitchBends:       n.PitchBends,
		}
	}
	return out
}
