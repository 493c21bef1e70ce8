package timemap

import (
	"math"
	"testing"

	"github.com/cwsl/notecore/internal/decode"
)

func TestFrameToTimeFirstFrames(t *testing.T) {
	cases := []struct {
		frame int
		want  float64
	}{
		{0, 0},
		{1, 0.0116},
		{2, 0.0232},
	}
	for _, c := range cases {
		got := FrameToTime(c.frame)
		if math.Abs(got-c.want) > 1e-3 {
			t.Fatalf("FrameToTime(%d) = %v, want ~%v", c.frame, got, c.want)
		}
	}
}

func TestMapPreservesFields(t *testing.T) {
	notes := []decode.NoteEventFrames{
		{StartFrame: 10, DurationFrames: 20, PitchMidi: 60, Amplitude: 0.5, PitchBends: []int{1, 2, 3}},
	}
	mapped := Map(notes)
	if len(mapped) != 1 {
		t.Fatalf("expected 1 mapped note, got %d", len(mapped))
	}
	n := mapped[0]
	if n.PitchMidi != 60 || n.Amplitude != 0.5 {
		t.Fatalf("unexpected carried-over fields: %+v", n)
	}
	if n.DurationSeconds <= 0 {
		t.Fatalf("DurationSeconds should be positive, got %v", n.DurationSeconds)
	}
	if len(n.PitchBends) != 3 {
		t.Fatalf("PitchBends not carried over: %v", n.PitchBends)
	}
}
