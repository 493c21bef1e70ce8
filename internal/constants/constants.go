// Package constants holds the normative constants of the note-decoding
// pipeline (spec.md §3). They are reproduced here verbatim rather than
// computed ad hoc at each call site, since several of them (WINDOW_OFFSET
// in particular) encode a calibration value that must match the reference
// Python pipeline bit-for-bit.
package constants

const (
	AudioSampleRate = 22050
	FFTHop          = 256

	// AnnotationsFPS = floor(22050/256).
	AnnotationsFPS = AudioSampleRate / FFTHop

	AudioWindowLengthSeconds = 2

	// AudioNSamples = 22050*2 - 256.
	AudioNSamples = AudioSampleRate*AudioWindowLengthSeconds - FFTHop

	NOverlappingFrames  = 30
	OverlapLengthFrames = NOverlappingFrames * FFTHop // 7680
	NOverlapOver2       = NOverlappingFrames / 2       // 15

	// HopSize = AudioNSamples - OverlapLengthFrames.
	HopSize = AudioNSamples - OverlapLengthFrames

	MidiOffset = 21
	MaxFreqIdx = 87
	MinFreqIdx = 0

	ContoursBinsPerSemitone = 3
	NFreqBinsContours       = 88 * ContoursBinsPerSemitone // 264
	NFreqBinsFrames         = 88

	AnnotationsBaseFrequency = 27.5 // Hz, A0

	// AnnotNFrames is the per-window number of annotation rows the model
	// emits before overlap-trimming (ANNOT_N_FRAMES in spec.md §3/§4.2).
	AnnotNFrames = AnnotationsFPS * AudioWindowLengthSeconds // 172

	// WindowOffset is a calibration constant: it must be reproduced exactly,
	// trailing 0.0018 included. Do not re-derive or "simplify" this value;
	// see spec.md §9 Open Question and DESIGN.md.
	WindowOffset = float64(FFTHop)/float64(AudioSampleRate)*(float64(AnnotNFrames)-float64(AudioNSamples)/float64(FFTHop)) + 0.0018

	// MinPitchMidi / MaxPitchMidi bound the 88-key piano range (A0..C8).
	MinPitchMidi = MidiOffset
	MaxPitchMidi = MidiOffset + MaxFreqIdx // 108
)
