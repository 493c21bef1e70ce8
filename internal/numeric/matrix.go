// Package numeric provides the small set of numeric helpers the note
// decoder is built from: argmax/argrelmax, mean/stddev, axis reductions,
// and a Gaussian window (spec.md §4.3.6). It also defines the Matrix type
// used as the concrete representation of FramesMatrix/OnsetsMatrix/
// ContoursMatrix (spec.md §3), backed by gonum's dense matrix type the
// same way the rest of this module's DSP code leans on gonum.
package numeric

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Matrix is a dense, row-major time x pitch matrix: row = time frame,
// column = pitch/contour bin.
type Matrix struct {
	dense *mat.Dense
}

// NewMatrix allocates a zeroed Matrix with the given shape.
func NewMatrix(rows, cols int) *Matrix {
	return &Matrix{dense: mat.NewDense(rows, cols, nil)}
}

// MatrixFromRows builds a Matrix from row-major data, one []float64 per row.
// All rows must share the same length.
func MatrixFromRows(rows [][]float64) *Matrix {
	if len(rows) == 0 {
		return NewMatrix(0, 0)
	}
	cols := len(rows[0])
	m := NewMatrix(len(rows), cols)
	for r, row := range rows {
		copy(m.dense.RawRowView(r), row)
	}
	return m
}

func (m *Matrix) Rows() int { return m.dense.RawMatrix().Rows }
func (m *Matrix) Cols() int { return m.dense.RawMatrix().Cols }

func (m *Matrix) At(r, c int) float64  { return m.dense.At(r, c) }
func (m *Matrix) Set(r, c int, v float64) { m.dense.Set(r, c, v) }

// Row returns the backing slice for row r; mutations are visible in m.
func (m *Matrix) Row(r int) []float64 { return m.dense.RawRowView(r) }

// Clone returns a deep copy of m.
func (m *Matrix) Clone() *Matrix {
	out := NewMatrix(m.Rows(), m.Cols())
	out.dense.Copy(m.dense)
	return out
}

// ZeroColsFrom zeros all columns in [from, cols) across every row, in place.
func (m *Matrix) ZeroColsFrom(from int) {
	if from < 0 {
		from = 0
	}
	for r := 0; r < m.Rows(); r++ {
		row := m.Row(r)
		for c := from; c < len(row); c++ {
			row[c] = 0
		}
	}
}

// ZeroColsUpTo zeros all columns in [0, upTo) across every row, in place.
func (m *Matrix) ZeroColsUpTo(upTo int) {
	if upTo > m.Cols() {
		upTo = m.Cols()
	}
	for r := 0; r < m.Rows(); r++ {
		row := m.Row(r)
		for c := 0; c < upTo; c++ {
			row[c] = 0
		}
	}
}

// SliceRows returns a new Matrix containing rows [from, to) of m.
func (m *Matrix) SliceRows(from, to int) *Matrix {
	if to > m.Rows() {
		to = m.Rows()
	}
	if from > to {
		from = to
	}
	out := NewMatrix(to-from, m.Cols())
	for r := from; r < to; r++ {
		copy(out.Row(r-from), m.Row(r))
	}
	return out
}

// AppendRows returns a new Matrix that is m with other's rows appended below.
func (m *Matrix) AppendRows(other *Matrix) *Matrix {
	if m.Cols() == 0 && m.Rows() == 0 {
		return other.Clone()
	}
	out := NewMatrix(m.Rows()+other.Rows(), m.Cols())
	for r := 0; r < m.Rows(); r++ {
		copy(out.Row(r), m.Row(r))
	}
	for r := 0; r < other.Rows(); r++ {
		copy(out.Row(m.Rows()+r), other.Row(r))
	}
	return out
}

// GlobalMax returns the maximum value across the whole matrix.
// GlobalArgMax returns the (row, col) of the matrix's maximum value, ties
// broken by row-major scan order (lowest row, then lowest column) — the
// same tie-break numpy's argmax-on-flattened-then-unravel gives. ok is
// false for an empty matrix.
func (m *Matrix) GlobalArgMax() (row, col int, value float64, ok bool) {
	if m.Rows() == 0 || m.Cols() == 0 {
		return 0, 0, 0, false
	}
	best := math.Inf(-1)
	for r := 0; r < m.Rows(); r++ {
		for c, v := range m.Row(r) {
			if v > best {
				best, row, col = v, r, c
			}
		}
	}
	return row, col, best, true
}

func (m *Matrix) GlobalMax() float64 {
	max := math.Inf(-1)
	for r := 0; r < m.Rows(); r++ {
		for _, v := range m.Row(r) {
			if v > max {
				max = v
			}
		}
	}
	return max
}
