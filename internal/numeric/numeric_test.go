package numeric

import (
	"math"
	"testing"
)

func TestArgMax(t *testing.T) {
	cases := []struct {
		name string
		row  []float64
		idx  int
		ok   bool
	}{
		{"empty", nil, 0, false},
		{"single", []float64{1}, 0, true},
		{"ties lowest index wins", []float64{1, 3, 3, 2}, 1, true},
		{"strictly increasing", []float64{1, 2, 3}, 2, true},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			idx, ok := ArgMax(c.row)
			if ok != c.ok || (ok && idx != c.idx) {
				t.Fatalf("ArgMax(%v) = (%d, %v), want (%d, %v)", c.row, idx, ok, c.idx, c.ok)
			}
		})
	}
}

func TestArgMaxAxis1(t *testing.T) {
	m := MatrixFromRows([][]float64{
		{1, 5, 5, 2},
		{9, 1, 1, 1},
	})
	got := ArgMaxAxis1(m)
	want := []int{1, 0}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ArgMaxAxis1 row %d = %d, want %d", i, got[i], want[i])
		}
	}
}

func TestWhereGreaterThanAxis1(t *testing.T) {
	m := MatrixFromRows([][]float64{
		{0.1, 0.6},
		{0.9, 0.2},
	})
	rows, cols := WhereGreaterThanAxis1(m, 0.5)
	if len(rows) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(rows))
	}
	if !(rows[0] == 0 && cols[0] == 1) || !(rows[1] == 1 && cols[1] == 0) {
		t.Fatalf("unexpected coordinates: rows=%v cols=%v", rows, cols)
	}
}

func TestMeanStdDev(t *testing.T) {
	m := MatrixFromRows([][]float64{{2, 4}, {4, 4}, {4, 4}, {4, 5}})
	mean, std := MeanStdDev(m)
	if math.Abs(mean-3.875) > 1e-9 {
		t.Fatalf("mean = %v, want 3.875", mean)
	}
	if std <= 0 {
		t.Fatalf("std should be positive, got %v", std)
	}
}

func TestArgRelMaxReturnsRowMajorOrderAcrossColumns(t *testing.T) {
	// Peaks at (row=0,col=0), (row=2,col=0), (row=1,col=1). Row-major order
	// (row outer, column inner) must interleave these by row, not group them
	// by column — spec.md §4.3.3 reverses this list wholesale to get a
	// row-descending processing order, which only works if the list is
	// already row-major to begin with.
	m := MatrixFromRows([][]float64{
		{5, 0},
		{0, 5},
		{5, 0},
	})
	rows, cols := ArgRelMax(m, 1)
	type coord struct{ row, col int }
	var got []coord
	for i := range rows {
		got = append(got, coord{rows[i], cols[i]})
	}
	want := []coord{{0, 0}, {1, 1}, {2, 0}}
	if len(got) != len(want) {
		t.Fatalf("ArgRelMax coords = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("ArgRelMax coords = %v, want %v (not row-major)", got, want)
		}
	}
}

func TestArgRelMaxEdgesClipped(t *testing.T) {
	// Column: rising edge at row 0 should count as a peak since there's no
	// left neighbour to compare against (edges are clipped, not padded).
	m := MatrixFromRows([][]float64{{5}, {1}, {3}, {1}, {5}})
	rows, _ := ArgRelMax(m, 1)
	want := map[int]bool{0: true, 2: true, 4: true}
	if len(rows) != len(want) {
		t.Fatalf("ArgRelMax rows = %v, want keys of %v", rows, want)
	}
	for _, r := range rows {
		if !want[r] {
			t.Fatalf("unexpected peak row %d", r)
		}
	}
}

func TestArgRelMaxPlateauNotAPeak(t *testing.T) {
	m := MatrixFromRows([][]float64{{1}, {3}, {3}, {1}})
	rows, _ := ArgRelMax(m, 1)
	for _, r := range rows {
		if r == 1 || r == 2 {
			t.Fatalf("plateau row %d should not qualify as a relative max", r)
		}
	}
}

func TestGaussianSymmetric(t *testing.T) {
	g := Gaussian(51, 5.0)
	mid := 25
	if g[mid] != 1.0 {
		t.Fatalf("gaussian peak at center = %v, want 1.0", g[mid])
	}
	for i := 1; i <= mid; i++ {
		if math.Abs(g[mid-i]-g[mid+i]) > 1e-12 {
			t.Fatalf("gaussian not symmetric at offset %d", i)
		}
	}
}

func TestHzMidiRoundTrip(t *testing.T) {
	for _, midi := range []float64{21, 60, 69, 108} {
		hz := MidiToHz(midi)
		back := HzToMidi(hz)
		if math.Abs(back-midi) > 1e-9 {
			t.Fatalf("round trip midi=%v -> hz=%v -> midi=%v", midi, hz, back)
		}
	}
	if math.Abs(HzToMidi(440)-69) > 1e-9 {
		t.Fatalf("A4 should map to MIDI 69, got %v", HzToMidi(440))
	}
}

func TestGlobalArgMaxTieBreakRowMajor(t *testing.T) {
	m := MatrixFromRows([][]float64{
		{1, 9},
		{9, 1},
	})
	row, col, val, ok := m.GlobalArgMax()
	if !ok {
		t.Fatal("expected ok=true")
	}
	if row != 0 || col != 1 || val != 9 {
		t.Fatalf("GlobalArgMax = (%d,%d,%v), want (0,1,9) by row-major scan order", row, col, val)
	}
}

func TestGlobalArgMaxEmpty(t *testing.T) {
	m := NewMatrix(0, 0)
	if _, _, _, ok := m.GlobalArgMax(); ok {
		t.Fatal("expected ok=false for empty matrix")
	}
}
