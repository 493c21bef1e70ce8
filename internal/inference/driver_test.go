package inference

import (
	"errors"
	"testing"

	"github.com/cwsl/notecore/internal/constants"
	"github.com/cwsl/notecore/internal/numeric"
)

// constantModel returns the same (frames, onsets, contours) output for
// every window, with frames column 0 holding each row's index and calls
// counting invocations: enough to exercise Run's overlap-stripping and
// trimming without a real tensor runtime.
type constantModel struct {
	calls int
}

func (m *constantModel) Execute(window []float64) (Output, error) {
	m.calls++
	frames := numeric.NewMatrix(constants.AnnotNFrames, constants.NFreqBinsFrames)
	onsets := numeric.NewMatrix(constants.AnnotNFrames, constants.NFreqBinsFrames)
	contours := numeric.NewMatrix(constants.AnnotNFrames, constants.NFreqBinsContours)
	for r := 0; r < constants.AnnotNFrames; r++ {
		frames.Set(r, 0, float64(r))
	}
	return Output{Frames: frames, Onsets: onsets, Contours: contours}, nil
}

type erroringModel struct{}

func (erroringModel) Execute(window []float64) (Output, error) {
	return Output{}, errors.New("boom")
}

func TestRunStripsOverlapAndReportsProgress(t *testing.T) {
	model := &constantModel{}
	windows := make([][]float64, 3)
	for i := range windows {
		windows[i] = make([]float64, constants.AudioNSamples)
	}
	origLen := constants.AudioNSamples * 3

	aligner := NewAligner()
	var progresses []float64
	err := Run(model, windows, origLen, aligner.Append, func(f float64) { progresses = append(progresses, f) })
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if model.calls != 3 {
		t.Fatalf("expected model to be invoked 3 times, got %d", model.calls)
	}
	if len(progresses) == 0 || progresses[len(progresses)-1] != 1.0 {
		t.Fatalf("expected a final progress report of 1.0, got %v", progresses)
	}
	if aligner.Frames().Rows() == 0 {
		t.Fatal("expected non-empty aligned frames")
	}
	if got := aligner.Frames().At(0, 0); got != float64(constants.NOverlapOver2) {
		t.Fatalf("first aligned row = model row %v, want %d (leading guard rows stripped)", got, constants.NOverlapOver2)
	}
	if aligner.Frames().Rows() > origLen*constants.AnnotationsFPS/constants.AudioSampleRate+constants.AnnotNFrames {
		t.Fatalf("aligned frame count implausibly large: %d", aligner.Frames().Rows())
	}
}

func TestRunPropagatesModelError(t *testing.T) {
	windows := [][]float64{make([]float64, constants.AudioNSamples)}
	err := Run(erroringModel{}, windows, constants.AudioNSamples, func(Chunk) {}, nil)
	if err == nil {
		t.Fatal("expected an error to propagate from the model")
	}
}

func TestReportProgressRecoversFromPanickingCallback(t *testing.T) {
	windows := [][]float64{make([]float64, constants.AudioNSamples)}
	model := &constantModel{}
	panickingProgress := func(float64) { panic("caller bug") }
	err := Run(model, windows, constants.AudioNSamples, func(Chunk) {}, panickingProgress)
	if err != nil {
		t.Fatalf("a panicking progress callback must not abort the driver: %v", err)
	}
}
