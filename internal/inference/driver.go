package inference

import (
	"fmt"

	"github.com/cwsl/notecore/internal/constants"
	"github.com/cwsl/notecore/internal/numeric"
)

// ProgressFunc reports fraction-complete in [0,1]. A panicking ProgressFunc
// is recovered so a caller's mistake in a UI callback can never abort
// decoding (spec.md §7: "Progress callbacks never throw into the driver").
type ProgressFunc func(fraction float64)

// ChunkFunc receives row-chunks strictly in window order, never
// concurrently (spec.md §4.2 ordering guarantee).
type ChunkFunc func(chunk Chunk)

// Run walks windows sequentially, invoking model on each, stripping the
// N_OVERLAP_OVER_2 guard rows from both ends, and delivering the trimmed
// remainder to onChunk until origLen's implied frame count is reached.
func Run(model Model, windows [][]float64, origLen int, onChunk ChunkFunc, onProgress ProgressFunc) error {
	w := len(windows)
	nOutputFramesOriginal := origLen * constants.AnnotationsFPS / constants.AudioSampleRate

	calculatedFrames := 0
	for i, window := range windows {
		reportProgress(onProgress, float64(i)/float64(w))

		out, err := model.Execute(window)
		if err != nil {
			return fmt.Errorf("notecore: model execution failed on window %d: %w", i, err)
		}
		if out.Frames.Rows() != out.Onsets.Rows() || out.Frames.Rows() != out.Contours.Rows() {
			return fmt.Errorf("notecore: model output row-count mismatch on window %d (frames=%d onsets=%d contours=%d)",
				i, out.Frames.Rows(), out.Onsets.Rows(), out.Contours.Rows())
		}

		if calculatedFrames >= nOutputFramesOriginal {
			continue // cap reached: later windows are silently ignored
		}

		chunk := unwrapOverlap(out)
		nRows := chunk.Frames.Rows()
		remaining := nOutputFramesOriginal - calculatedFrames
		if nRows > remaining {
			chunk = truncateChunk(chunk, remaining)
			nRows = remaining
		}
		calculatedFrames += nRows
		onChunk(chunk)
	}

	reportProgress(onProgress, 1.0)
	return nil
}

// unwrapOverlap drops the first and last N_OVERLAP_OVER_2 rows of each of
// the three output matrices (spec.md §4.2 step 3).
func unwrapOverlap(out Output) Chunk {
	return Chunk{
		Frames:   sliceRows(out.Frames, constants.NOverlapOver2),
		Onsets:   sliceRows(out.Onsets, constants.NOverlapOver2),
		Contours: sliceRows(out.Contours, constants.NOverlapOver2),
	}
}

func truncateChunk(c Chunk, n int) Chunk {
	return Chunk{
		Frames:   firstRows(c.Frames, n),
		Onsets:   firstRows(c.Onsets, n),
		Contours: firstRows(c.Contours, n),
	}
}

func sliceRows(m *numeric.Matrix, overlap int) *numeric.Matrix {
	return m.SliceRows(overlap, m.Rows()-overlap)
}

func firstRows(m *numeric.Matrix, n int) *numeric.Matrix {
	return m.SliceRows(0, n)
}

func reportProgress(fn ProgressFunc, fraction float64) {
	if fn == nil {
		return
	}
	defer func() { _ = recover() }()
	fn(fraction)
}
