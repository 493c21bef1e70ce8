// Package wav reads a mono 16-bit PCM WAV file into the float64 sample
// buffer the Framer expects. This is the only audio-ingestion code in the
// module (spec.md §1 keeps decoding out of scope for the core itself); it
// exists purely to give cmd/notecore something to feed from disk, rolled by
// hand with encoding/binary the same way the teacher decodes its own raw
// PCM streams (pcm_binary.go, audio.go) rather than pulled in from a WAV
// library — see DESIGN.md for why this one stays on the standard library.
package wav

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
)

// Audio is a decoded mono sample buffer plus its declared format.
type Audio struct {
	Samples    []float64 // normalised to [-1, 1]
	SampleRate int
	Channels   int
}

// ReadFile reads a canonical (RIFF/WAVE, PCM, 16-bit) WAV file.
func ReadFile(path string) (*Audio, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("notecore: failed to open %s: %w", path, err)
	}
	defer f.Close()
	return Read(f)
}

// Read parses a canonical WAV stream.
func Read(r io.Reader) (*Audio, error) {
	var riffHeader [12]byte
	if _, err := io.ReadFull(r, riffHeader[:]); err != nil {
		return nil, fmt.Errorf("notecore: short WAV header: %w", err)
	}
	if string(riffHeader[0:4]) != "RIFF" || string(riffHeader[8:12]) != "WAVE" {
		return nil, fmt.Errorf("notecore: not a RIFF/WAVE file")
	}

	var (
		channels      int
		sampleRate    int
		bitsPerSample int
		samples       []float64
	)

	for {
		var chunkID [4]byte
		var chunkSize uint32
		if _, err := io.ReadFull(r, chunkID[:]); err != nil {
			if err == io.EOF {
				break
			}
			return nil, fmt.Errorf("notecore: reading chunk id: %w", err)
		}
		if err := binary.Read(r, binary.LittleEndian, &chunkSize); err != nil {
			return nil, fmt.Errorf("notecore: reading chunk size: %w", err)
		}

		switch string(chunkID[:]) {
		case "fmt ":
			body := make([]byte, chunkSize)
			if _, err := io.ReadFull(r, body); err != nil {
				return nil, fmt.Errorf("notecore: reading fmt chunk: %w", err)
			}
			channels = int(binary.LittleEndian.Uint16(body[2:4]))
			sampleRate = int(binary.LittleEndian.Uint32(body[4:8]))
			bitsPerSample = int(binary.LittleEndian.Uint16(body[14:16]))

		case "data":
			if bitsPerSample != 16 {
				return nil, fmt.Errorf("notecore: only 16-bit PCM WAV is supported, got %d-bit", bitsPerSample)
			}
			raw := make([]byte, chunkSize)
			if _, err := io.ReadFull(r, raw); err != nil {
				return nil, fmt.Errorf("notecore: reading data chunk: %w", err)
			}
			samples = make([]float64, len(raw)/2)
			for i := range samples {
				v := int16(binary.LittleEndian.Uint16(raw[i*2 : i*2+2]))
				samples[i] = float64(v) / 32768.0
			}

		default:
			if _, err := io.CopyN(io.Discard, r, int64(chunkSize)); err != nil {
				return nil, fmt.Errorf("notecore: skipping chunk %q: %w", chunkID, err)
			}
		}

		if chunkSize%2 == 1 {
			if _, err := io.CopyN(io.Discard, r, 1); err != nil {
				break // trailing pad byte missing at EOF is tolerated
			}
		}
	}

	return &Audio{Samples: samples, SampleRate: sampleRate, Channels: channels}, nil
}
