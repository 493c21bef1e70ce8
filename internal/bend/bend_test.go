package bend

import (
	"testing"

	"github.com/cwsl/notecore/internal/constants"
	"github.com/cwsl/notecore/internal/decode"
	"github.com/cwsl/notecore/internal/numeric"
)

func TestMidiPitchToContourBin(t *testing.T) {
	// A4 (MIDI 69) sits at contour bin 144: 3 bins/semitone * 12 semitones *
	// log2(440/27.5) = 3*12*4 = 144 exactly (spec.md §4.4, §8 unit check).
	if got := midiPitchToContourBin(69); got != 144 {
		t.Fatalf("midiPitchToContourBin(69) = %d, want 144", got)
	}
}

func TestRefinePitchBendsLengthAndRange(t *testing.T) {
	rows := 40
	contours := numeric.NewMatrix(rows, constants.NFreqBinsContours)
	centerBin := midiPitchToContourBin(69)
	for r := 10; r < 20; r++ {
		for off := -2; off <= 2; off++ {
			contours.Set(r, centerBin+off, 0.5-0.1*float64(off*off))
		}
	}

	notes := []decode.NoteEventFrames{
		{StartFrame: 10, DurationFrames: 10, PitchMidi: 69, Amplitude: 0.7},
	}
	refined := Refine(notes, contours)

	if len(refined) != 1 {
		t.Fatalf("expected 1 note, got %d", len(refined))
	}
	n := refined[0]
	if len(n.PitchBends) != n.DurationFrames {
		t.Fatalf("len(PitchBends) = %d, want DurationFrames %d", len(n.PitchBends), n.DurationFrames)
	}
	for i, b := range n.PitchBends {
		if b < -25 || b > 25 {
			t.Fatalf("PitchBends[%d] = %d out of [-25,25]", i, b)
		}
	}
}

func TestRefineClipsAtContourEdges(t *testing.T) {
	// A note near MIDI pitch 21 (A0, bottom of the piano) sits close to the
	// low edge of the contour matrix; the Gaussian window must clip rather
	// than panic or read out of bounds.
	rows := 5
	contours := numeric.NewMatrix(rows, constants.NFreqBinsContours)
	notes := []decode.NoteEventFrames{
		{StartFrame: 0, DurationFrames: rows, PitchMidi: 21, Amplitude: 0.5},
	}
	refined := Refine(notes, contours)
	if len(refined[0].PitchBends) != rows {
		t.Fatalf("len(PitchBends) = %d, want %d", len(refined[0].PitchBends), rows)
	}
}
