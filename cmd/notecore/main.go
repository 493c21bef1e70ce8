// Command notecore decodes a mono WAV file into MIDI and a JSON note list,
// following the teacher's CLI style (kiwi_wspr/main.go, clients/iq-recorder/main.go):
// pflag-based flags, a -v/--version flag, fatal errors logged and exited
// from main rather than from library code.
package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/spf13/pflag"

	"github.com/cwsl/notecore/internal/config"
	"github.com/cwsl/notecore/internal/inference"
	"github.com/cwsl/notecore/internal/metrics"
	"github.com/cwsl/notecore"
	"github.com/cwsl/notecore/internal/wav"
)

// Version is stamped by the release process; left as a constant default
// the same way the teacher's CLIs hardcode a fallback version string.
const Version = "0.1.0-dev"

func main() {
	var (
		inPath      = pflag.StringP("in", "i", "", "input mono WAV file (required)")
		outMIDIPath = pflag.StringP("out-midi", "m", "", "output MIDI file path (required)")
		outJSONPath = pflag.StringP("out-json", "j", "", "optional output JSON note-list path")
		configPath  = pflag.StringP("config", "c", "", "optional YAML config file overriding decoder thresholds")
		onsetThresh = pflag.Float64P("onset-thresh", "", -1, "override onset threshold")
		frameThresh = pflag.Float64P("frame-thresh", "", -1, "override frame threshold")
		minNoteLen  = pflag.IntP("min-note-len", "", -1, "override minimum note length in frames")
		showVersion = pflag.BoolP("version", "v", false, "print version and exit")
	)
	pflag.Parse()

	if *showVersion {
		fmt.Println("notecore " + Version)
		return
	}

	if *inPath == "" || *outMIDIPath == "" {
		fmt.Fprintln(os.Stderr, "notecore: --in and --out-midi are required")
		pflag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatalf("notecore: %v", err)
		}
		cfg = loaded
	}
	if *onsetThresh >= 0 {
		cfg.Decoder.OnsetThresh = *onsetThresh
	}
	if *frameThresh >= 0 {
		cfg.Decoder.FrameThresh = *frameThresh
	}
	if *minNoteLen >= 0 {
		cfg.Decoder.MinNoteLen = *minNoteLen
	}

	audio, err := wav.ReadFile(*inPath)
	if err != nil {
		log.Fatalf("notecore: %v", err)
	}

	decodeMetrics := metrics.NewDecodeMetrics(nil)
	pipeline := notecore.NewPipeline(&notConfiguredModel{}, decodeMetrics, log.Default())

	onProgress := func(fraction float64) {
		fmt.Fprintf(os.Stderr, "\rnotecore: decoding... %3.0f%%", fraction*100)
	}

	result, err := pipeline.Decode(audio.Samples, audio.SampleRate, audio.Channels, cfg.Options(), onProgress)
	fmt.Fprintln(os.Stderr)
	if err != nil {
		log.Fatalf("notecore: %v", err)
	}

	if err := os.WriteFile(*outMIDIPath, result.MIDI, 0o644); err != nil {
		log.Fatalf("notecore: failed to write %s: %v", *outMIDIPath, err)
	}

	if *outJSONPath != "" {
		data, err := json.MarshalIndent(result.Notes, "", "  ")
		if err != nil {
			log.Fatalf("notecore: failed to marshal notes: %v", err)
		}
		if err := os.WriteFile(*outJSONPath, data, 0o644); err != nil {
			log.Fatalf("notecore: failed to write %s: %v", *outJSONPath, err)
		}
	}

	log.Printf("notecore: wrote %d notes to %s", len(result.Notes), *outMIDIPath)
}

// notConfiguredModel is the placeholder inference.Model the CLI ships with.
// spec.md §1 keeps the neural runtime itself out of scope ("the neural
// model itself is an opaque tensor graph executed by an external
// runtime"); production deployments bind inference.Model to whatever
// tensor runtime hosts the real frames/onsets/contours model and pass it
// to notecore.NewPipeline in place of this stub.
type notConfiguredModel struct{}

func (notConfiguredModel) Execute(window []float64) (inference.Output, error) {
	return inference.Output{}, fmt.Errorf("notecore: no inference model configured; bind inference.Model to a real tensor runtime")
}
