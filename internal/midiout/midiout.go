// Package midiout is the MidiBuilder collaborator of spec.md §4.6: it
// composes a single track ("acoustic grand piano", ppq 480) from note
// events and per-note pitch-bend curves and serialises it to a standard
// MIDI byte stream, using the same gitlab.com/gomidi/midi/v2 stack the
// teacher's MIDI controller client talks to live devices with
// (clients/go/midi_controller.go), here pointed at the smf file-writing
// half of that module instead of its realtime driver half.
package midiout

import (
	"bytes"
	"sort"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/cwsl/notecore/internal/timemap"
)

const (
	ppq                = 480
	channel            = 0
	acousticGrandPiano = 0
)

// event is an intermediate, absolute-tick representation used to sort all
// note-on/off/pitch-bend events across every note before delta-encoding
// them into the track.
type event struct {
	tick uint32
	msg  midi.Message
	// order disambiguates same-tick events so note-off precedes the next
	// note-on and pitch-bends land between them deterministically.
	order int
}

// Build renders notes into a single-track Standard MIDI File byte stream.
func Build(notes []timemap.NoteEventTime) ([]byte, error) {
	s := smf.New()
	s.TimeFormat = smf.MetricTicks(ppq)

	var track smf.Track
	track.Add(0, midi.ProgramChange(channel, acousticGrandPiano))

	var events []event
	for _, n := range notes {
		onTick := secondsToTicks(n.StartTimeSeconds)
		offTick := secondsToTicks(n.StartTimeSeconds + n.DurationSeconds)
		velocity := velocityByte(n.Amplitude)

		events = append(events, event{tick: onTick, order: 2, msg: midi.NoteOn(channel, uint8(n.PitchMidi), velocity)})
		events = append(events, event{tick: offTick, order: 0, msg: midi.NoteOff(channel, uint8(n.PitchMidi))})

		for i, b := range n.PitchBends {
			t := n.StartTimeSeconds + float64(i)*n.DurationSeconds/float64(len(n.PitchBends))
			events = append(events, event{
				tick:  secondsToTicks(t),
				order: 1,
				msg:   midi.Pitchbend(channel, bendToPitchbendValue(b)),
			})
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		if events[i].tick != events[j].tick {
			return events[i].tick < events[j].tick
		}
		return events[i].order < events[j].order
	})

	lastTick := uint32(0)
	for _, e := range events {
		delta := e.tick - lastTick
		track.Add(delta, e.msg)
		lastTick = e.tick
	}
	track.Close(0)
	s.Add(track)

	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func secondsToTicks(seconds float64) uint32 {
	if seconds < 0 {
		seconds = 0
	}
	return uint32(seconds * float64(ppq) * quarterNotesPerSecond())
}

// quarterNotesPerSecond fixes the emitted file at 120 BPM (2 quarter notes
// per second), a stable default the teacher's note-decoding calling
// application is free to override downstream; spec.md §8 scenario 4's
// round-trip fixture assumes exactly this rate (ppq=480, 960 ticks/s).
func quarterNotesPerSecond() float64 { return 2.0 }

// velocityByte converts a normalised [0,1] amplitude to a 7-bit MIDI
// velocity value: amplitude*127, clamped to [0,127] and truncated toward
// zero (so 0.5 -> 63 and 0.25 -> 31; MIDI velocity bytes are 7-bit, 0-127).
func velocityByte(amplitude float64) uint8 {
	v := amplitude * 127
	if v < 0 {
		v = 0
	}
	if v > 127 {
		v = 127
	}
	return uint8(v)
}

// bendToPitchbendValue maps a contour-bin offset in [-25,25] to the
// signed 14-bit-centred pitch-bend value the midi package expects,
// spreading the full bend range across the tolerance band.
func bendToPitchbendValue(bend int) int16 {
	const maxBend = 25
	if bend > maxBend {
		bend = maxBend
	}
	if bend < -maxBend {
		bend = -maxBend
	}
	return int16((8192 * bend) / maxBend)
}
