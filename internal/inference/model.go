// Package inference abstracts the opaque neural model collaborator
// (spec.md §4.2, §6, §9 "Tensor-runtime coupling") behind the Model
// interface, and implements the inference driver that walks windows,
// strips overlap guard frames, and emits row-chunks in window order.
package inference

import "github.com/cwsl/notecore/internal/numeric"

// Output is one window's worth of raw model output before overlap
// stripping: each matrix has AnnotNFrames rows.
type Output struct {
	Frames   *numeric.Matrix
	Onsets   *numeric.Matrix
	Contours *numeric.Matrix
}

// Model is the neural inference collaborator. Tensor names Identity_1,
// Identity_2, Identity (frames, onsets, contours respectively) are an
// artefact of the upstream model graph; an implementation binding to a
// concrete runtime must preserve that mapping internally, but callers of
// Model only ever see the three already-named matrices.
type Model interface {
	// Execute runs the model on one window of AudioNSamples samples and
	// returns the three same-shape output matrices.
	Execute(window []float64) (Output, error)
}

// Chunk is a window's contribution to the output stream after overlap
// stripping and length-trimming (spec.md §4.2 steps 3-4).
type Chunk struct {
	Frames   *numeric.Matrix
	Onsets   *numeric.Matrix
	Contours *numeric.Matrix
}
