// Package protocol implements the Launchpad Pro wire format the emulator
// speaks: decoding incoming button messages into semantic events and
// encoding LED updates into RGB SysEx frames.
package protocol

import (
	"errors"

	"gitlab.com/gomidi/midi/v2"
)

// SysExHeader is the Launchpad Pro vendor header for LED control messages.
var SysExHeader = []byte{0x00, 0x20, 0x29, 0x02, 0x10}

// LED lighting mode bytes following the vendor header.
const (
	ModeStatic = 0x0A
	ModeFlash  = 0x23
	ModePulse  = 0x28
	ModeRGB    = 0x0B // 4 bytes per LED: index, r, g, b
)

// ErrUnhandledMessage reports an inbound MIDI message the codec has no
// semantic mapping for. Callers log it and move on; it is never fatal.
var ErrUnhandledMessage = errors.New("protocol: unhandled midi message")

// LEDUpdate is one (control, color) pair of an illumination update.
type LEDUpdate struct {
	Control uint8
	Color   Color
}

// Event is a decoded inbound message. Concrete types are Press, Release,
// ControlChange and SysEx.
type Event interface {
	event()
}

// Press is a pad or button going down (note-on with nonzero velocity).
type Press struct {
	Control  uint8
	Velocity uint8
}

// Release is a pad or button coming up (note-off, or note-on velocity 0).
type Release struct {
	Control uint8
}

// ControlChange is a CC message. The device logs these but they carry no
// state effect.
type ControlChange struct {
	Controller uint8
	Value      uint8
}

// SysEx is an inbound vendor frame, payload preserved verbatim (vendor
// header included) for logging fidelity.
type SysEx struct {
	Data []byte
}

func (Press) event()         {}
func (Release) event()       {}
func (ControlChange) event() {}
func (SysEx) event()         {}

// Decode classifies one inbound MIDI message into a semantic event.
// A note-on with velocity 0 is a release, per MIDI convention.
func Decode(msg midi.Message) (Event, error) {
	var channel, key, velocity uint8
	var data []byte

	switch {
	case msg.GetNoteOn(&channel, &key, &velocity):
		if velocity == 0 {
			return Release{Control: key}, nil
		}
		return Press{Control: key, Velocity: velocity}, nil

	case msg.GetNoteOff(&channel, &key, &velocity):
		return Release{Control: key}, nil

	case msg.GetControlChange(&channel, &key, &velocity):
		return ControlChange{Controller: key, Value: velocity}, nil

	case msg.GetSysEx(&data):
		return SysEx{Data: data}, nil
	}

	return nil, ErrUnhandledMessage
}

// EncodeFrame builds the content of one RGB LED SysEx frame:
// vendor header, mode byte 0x0B, then 4 bytes (index, r, g, b) per update
// in input order. Returns nil for an empty update list; no frame is sent
// for a no-op. Content length is len(SysExHeader) + 1 + 4*len(updates).
func EncodeFrame(updates []LEDUpdate) []byte {
	if len(updates) == 0 {
		return nil
	}

	data := make([]byte, 0, len(SysExHeader)+1+4*len(updates))
	data = append(data, SysExHeader...)
	data = append(data, ModeRGB)
	for _, u := range updates {
		data = append(data, u.Control, clamp6(u.Color.R), clamp6(u.Color.G), clamp6(u.Color.B))
	}
	return data
}

// EncodeMessage wraps EncodeFrame in a complete F0..F7 SysEx message ready
// to send. Returns nil for an empty update list.
func EncodeMessage(updates []LEDUpdate) midi.Message {
	data := EncodeFrame(updates)
	if data == nil {
		return nil
	}
	return midi.SysEx(data)
}

func clamp6(v uint8) uint8 {
	if v > 0x3F {
		return 0x3F
	}
	return v
}
