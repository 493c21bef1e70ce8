package decode

import "github.com/cwsl/notecore/internal/numeric"

// inferOnsets computes the augmented onset matrix of spec.md §4.3.2: for
// shifts n in {1,2}, diff_n = frames - shift(frames, n); take the
// element-wise min of diff_1 and diff_2, clamp negatives to zero, zero the
// first two rows, rescale to the original onsets' global max, and take the
// element-wise max against the original onsets.
func inferOnsets(frames, onsets *numeric.Matrix) *numeric.Matrix {
	rows, cols := frames.Rows(), frames.Cols()

	diff1 := diffShifted(frames, 1)
	diff2 := diffShifted(frames, 2)

	combined := numeric.NewMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		d1, d2, out := diff1.Row(r), diff2.Row(r), combined.Row(r)
		for c := 0; c < cols; c++ {
			v := d1[c]
			if d2[c] < v {
				v = d2[c]
			}
			if v < 0 {
				v = 0
			}
			out[c] = v
		}
	}

	const nDiff = 2
	for r := 0; r < nDiff && r < rows; r++ {
		row := combined.Row(r)
		for c := range row {
			row[c] = 0
		}
	}

	origMax := onsets.GlobalMax()
	combinedMax := combined.GlobalMax()
	if combinedMax > 0 {
		scale := origMax / combinedMax
		for r := 0; r < rows; r++ {
			row := combined.Row(r)
			for c := range row {
				row[c] *= scale
			}
		}
	}

	inferred := numeric.NewMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		a, b, out := combined.Row(r), onsets.Row(r), inferred.Row(r)
		for c := 0; c < cols; c++ {
			if a[c] > b[c] {
				out[c] = a[c]
			} else {
				out[c] = b[c]
			}
		}
	}
	return inferred
}

// diffShifted computes frames - framesShifted(n), where framesShifted is
// frames prepended with n zero rows and truncated back to the original
// row count (spec.md §4.3.2).
func diffShifted(frames *numeric.Matrix, n int) *numeric.Matrix {
	rows, cols := frames.Rows(), frames.Cols()
	out := numeric.NewMatrix(rows, cols)
	for r := 0; r < rows; r++ {
		cur := frames.Row(r)
		dst := out.Row(r)
		if r-n >= 0 {
			prev := frames.Row(r - n)
			for c := 0; c < cols; c++ {
				dst[c] = cur[c] - prev[c]
			}
		} else {
			copy(dst, cur) // shifted row is zero here, so diff == frames
		}
	}
	return out
}
