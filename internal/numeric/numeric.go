package numeric

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

// ArgMax returns the index of the largest value in row, ties broken by
// lowest index, or ok=false if row is empty (spec.md §4.3.6, §9 "Ties in
// argmax").
func ArgMax(row []float64) (idx int, ok bool) {
	if len(row) == 0 {
		return 0, false
	}
	return floats.MaxIdx(row), true
}

// ArgMaxAxis1 returns, for each row of m, the column index of its maximum
// value (ties broken by lowest index).
func ArgMaxAxis1(m *Matrix) []int {
	out := make([]int, m.Rows())
	for r := 0; r < m.Rows(); r++ {
		out[r] = floats.MaxIdx(m.Row(r))
	}
	return out
}

// WhereGreaterThanAxis1 returns the (row, col) coordinates, in row-major
// order, of every cell of m strictly greater than thresh.
func WhereGreaterThanAxis1(m *Matrix, thresh float64) (rows, cols []int) {
	for r := 0; r < m.Rows(); r++ {
		row := m.Row(r)
		for c, v := range row {
			if v > thresh {
				rows = append(rows, r)
				cols = append(cols, c)
			}
		}
	}
	return rows, cols
}

// MeanStdDev returns the sample mean and sample standard deviation
// (denominator N-1) of all values in m.
func MeanStdDev(m *Matrix) (mean, std float64) {
	n := m.Rows() * m.Cols()
	if n == 0 {
		return 0, 0
	}
	vals := make([]float64, 0, n)
	for r := 0; r < m.Rows(); r++ {
		vals = append(vals, m.Row(r)...)
	}
	return stat.MeanStdDev(vals, nil)
}

// MeanOfRange returns the mean of column col across rows [start, end).
func MeanOfRange(m *Matrix, start, end, col int) float64 {
	if end <= start {
		return 0
	}
	sum := 0.0
	for r := start; r < end; r++ {
		sum += m.At(r, col)
	}
	return sum / float64(end-start)
}

// ArgRelMax reports, for each column of m independently, the set of row
// indices that are strict relative maxima: row r qualifies iff
// m[r][c] > m[r-k][c] and m[r][c] > m[r+k][c] for every k in [1, order],
// with out-of-range neighbours simply omitted from the comparison (the
// edges are "clipped", not zero-padded, per spec.md §4.3.3). Plateaus
// (equal neighbours) do not qualify.
//
// Results are returned in row-major order (row outer, column inner), not
// grouped by column: spec.md §4.3.3 reverses this list wholesale to get a
// row-descending, column-secondary processing order, so the order this
// function returns peaks in has to already be row-major for that reversal
// to do what it says.
func ArgRelMax(m *Matrix, order int) (rows, cols []int) {
	nRows, nCols := m.Rows(), m.Cols()
	for r := 0; r < nRows; r++ {
		for c := 0; c < nCols; c++ {
			v := m.At(r, c)
			isPeak := true
			for k := 1; k <= order; k++ {
				if r-k >= 0 && m.At(r-k, c) >= v {
					isPeak = false
					break
				}
				if r+k < nRows && m.At(r+k, c) >= v {
					isPeak = false
					break
				}
			}
			if isPeak {
				rows = append(rows, r)
				cols = append(cols, c)
			}
		}
	}
	return rows, cols
}

// Gaussian returns an M-point Gaussian window:
// gaussian(M, std)[n] = exp(-0.5 * ((n - (M-1)/2) / std)^2).
func Gaussian(m int, std float64) []float64 {
	out := make([]float64, m)
	mid := float64(m-1) / 2
	for n := 0; n < m; n++ {
		x := (float64(n) - mid) / std
		out[n] = math.Exp(-0.5 * x * x)
	}
	return out
}

// HzToMidi converts a frequency in Hz to a (fractional) MIDI pitch number.
func HzToMidi(hz float64) float64 {
	return 12*(math.Log2(hz)-math.Log2(440)) + 69
}

// MidiToHz is the inverse of HzToMidi.
func MidiToHz(midi float64) float64 {
	return 440 * math.Pow(2, (midi-69)/12)
}
