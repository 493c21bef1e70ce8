// Package notecore wires the note-decoding pipeline end to end: framing,
// model inference, note decoding, pitch-bend refinement, time mapping, and
// MIDI serialisation (spec.md §2's component list), instrumented and logged
// the way the teacher wires its own collector/clients/midi_controller
// chain together in its top-level server type.
package notecore

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/cwsl/notecore/internal/bend"
	"github.com/cwsl/notecore/internal/decode"
	"github.com/cwsl/notecore/internal/framer"
	"github.com/cwsl/notecore/internal/inference"
	"github.com/cwsl/notecore/internal/metrics"
	"github.com/cwsl/notecore/internal/midiout"
	"github.com/cwsl/notecore/internal/timemap"
)

// Pipeline holds the collaborators needed to decode one audio buffer into
// notes and MIDI bytes: a Model supplied by the caller (spec.md keeps the
// tensor runtime out of scope) and optional metrics/logging.
type Pipeline struct {
	Model   inference.Model
	Metrics *metrics.DecodeMetrics
	Logger  *log.Logger
}

// NewPipeline constructs a Pipeline. metrics and logger may both be nil;
// a nil logger falls back to the standard library's default logger.
func NewPipeline(model inference.Model, m *metrics.DecodeMetrics, logger *log.Logger) *Pipeline {
	if logger == nil {
		logger = log.Default()
	}
	return &Pipeline{Model: model, Metrics: m, Logger: logger}
}

// Result is everything a caller of Decode gets back: the time-mapped notes,
// the serialised MIDI bytes, and the decode diagnostics.
type Result struct {
	Notes []timemap.NoteEventTime
	MIDI  []byte
	Stats decode.Stats
}

// Decode runs the full pipeline on a mono sample buffer: Frame, run the
// model window by window, align the output, Decode note events, refine
// pitch bends, map frame indices to seconds, and serialise to MIDI.
//
// onProgress, if non-nil, receives fraction-complete updates from the
// inference driver (spec.md §4.2).
func (p *Pipeline) Decode(samples []float64, sampleRate, channels int, opts decode.Options, onProgress inference.ProgressFunc) (Result, error) {
	invocationID := uuid.New()
	start := time.Now()

	p.Logger.Printf("notecore: invocation=%s starting decode (samples=%d sampleRate=%d channels=%d)",
		invocationID, len(samples), sampleRate, channels)

	result, err := p.decode(samples, sampleRate, channels, opts, onProgress)

	p.Metrics.ObserveDecodeDuration(time.Since(start).Seconds())
	if err != nil {
		p.Metrics.IncDecodeErrors()
		p.Logger.Printf("notecore: invocation=%s decode failed: %v", invocationID, err)
		return Result{}, err
	}

	p.Metrics.SetNotesEmitted(len(result.Notes))
	p.Metrics.SetMelodiaIterations(result.Stats.MelodiaTrickIterations)
	p.Logger.Printf("notecore: invocation=%s decode finished (notes=%d melodiaIterations=%d elapsed=%s)",
		invocationID, len(result.Notes), result.Stats.MelodiaTrickIterations, time.Since(start))

	return result, nil
}

func (p *Pipeline) decode(samples []float64, sampleRate, channels int, opts decode.Options, onProgress inference.ProgressFunc) (Result, error) {
	windows, err := framer.Frame(samples, sampleRate, channels)
	if err != nil {
		return Result{}, fmt.Errorf("notecore: framing failed: %w", err)
	}

	aligner := inference.NewAligner()
	if err := inference.Run(p.Model, windows.Data, windows.OrigLen, aligner.Append, onProgress); err != nil {
		return Result{}, fmt.Errorf("notecore: inference failed: %w", err)
	}

	frames := aligner.Frames()
	onsets := aligner.Onsets()
	contours := aligner.Contours()

	notesFrames, stats, err := decode.Decode(frames, onsets, contours, opts)
	if err != nil {
		return Result{}, fmt.Errorf("notecore: note decoding failed: %w", err)
	}

	notesFrames = bend.Refine(notesFrames, contours)
	notesTime := timemap.Map(notesFrames)

	midiBytes, err := midiout.Build(notesTime)
	if err != nil {
		return Result{}, fmt.Errorf("notecore: MIDI serialisation failed: %w", err)
	}

	return Result{Notes: notesTime, MIDI: midiBytes, Stats: stats}, nil
}
