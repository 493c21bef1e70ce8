package inference

import "github.com/cwsl/notecore/internal/numeric"

// Aligner concatenates the row-chunks emitted by Run into the three full
// (already length-trimmed by Run) matrices of spec.md's component 3.
// It is pure plumbing: Run has already trimmed the total row count to the
// number of frames implied by the original audio length, so Aligner only
// needs to stack chunks in the order they arrive.
type Aligner struct {
	frames   *numeric.Matrix
	onsets   *numeric.Matrix
	contours *numeric.Matrix
}

func NewAligner() *Aligner {
	return &Aligner{
		frames:   numeric.NewMatrix(0, 0),
		onsets:   numeric.NewMatrix(0, 0),
		contours: numeric.NewMatrix(0, 0),
	}
}

// Append is a ChunkFunc suitable for passing directly to Run.
func (a *Aligner) Append(chunk Chunk) {
	if chunk.Frames.Rows() == 0 {
		return
	}
	a.frames = appendMatrix(a.frames, chunk.Frames)
	a.onsets = appendMatrix(a.onsets, chunk.Onsets)
	a.contours = appendMatrix(a.contours, chunk.Contours)
}

func appendMatrix(acc, next *numeric.Matrix) *numeric.Matrix {
	if acc.Rows() == 0 && acc.Cols() == 0 {
		return next.Clone()
	}
	return acc.AppendRows(next)
}

// Frames, Onsets, Contours return the concatenated matrices once Run has
// finished.
func (a *Aligner) Frames() *numeric.Matrix   { return a.frames }
func (a *Aligner) Onsets() *numeric.Matrix   { return a.onsets }
func (a *Aligner) Contours() *numeric.Matrix { return a.contours }
