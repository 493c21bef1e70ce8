// Package framer implements the first pipeline stage from spec.md §4.1:
// it pads a mono sample buffer and slices it into fixed-length, overlapping
// analysis windows sized for the model, matching the teacher's own style of
// framing raw PCM into fixed-size processing chunks (audio.go, pcm_binary.go).
package framer

import (
	"fmt"

	"github.com/cwsl/notecore/internal/constants"
)

// ErrWrongSampleRate and ErrNotMono are the configuration errors of
// spec.md §7 kind 1, raised at the audio-input boundary.
var (
	ErrWrongSampleRate = fmt.Errorf("notecore: sample rate must be %d Hz", constants.AudioSampleRate)
	ErrNotMono         = fmt.Errorf("notecore: audio must be single-channel (mono)")
)

func init() {
	if constants.OverlapLengthFrames%2 != 0 {
		panic("notecore: OVERLAP_LENGTH_FRAMES must be even")
	}
}

// Windows is the output of Frame: W windows of AudioNSamples samples each,
// plus the original sample count L needed downstream to trim model output
// back to the real audio timeline.
type Windows struct {
	Data    [][]float64 // len == W, each of length constants.AudioNSamples
	OrigLen int         // L, the original (unpadded) sample count
}

// Frame validates the audio contract (spec.md §6) and produces the padded,
// windowed representation described in §4.1.
func Frame(samples []float64, sampleRate, channels int) (*Windows, error) {
	if sampleRate != constants.AudioSampleRate {
		return nil, ErrWrongSampleRate
	}
	if channels != 1 {
		return nil, ErrNotMono
	}

	l := len(samples)

	padded := make([]float64, constants.OverlapLengthFrames/2+l)
	copy(padded[constants.OverlapLengthFrames/2:], samples)

	var windows [][]float64
	for start := 0; start < len(padded) || len(windows) == 0; start += constants.HopSize {
		end := start + constants.AudioNSamples
		window := make([]float64, constants.AudioNSamples)
		if start < len(padded) {
			copyEnd := end
			if copyEnd > len(padded) {
				copyEnd = len(padded)
			}
			copy(window, padded[start:copyEnd])
		}
		windows = append(windows, window)
		if start+constants.AudioNSamples >= len(padded) {
			break
		}
	}

	return &Windows{Data: windows, OrigLen: l}, nil
}
