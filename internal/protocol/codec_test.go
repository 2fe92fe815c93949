package protocol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
)

func TestEncodeFrame_Layout(t *testing.T) {
	updates := []LEDUpdate{
		{Control: 11, Color: ColorWhite},
		{Control: 91, Color: ColorCyan},
	}

	data := EncodeFrame(updates)
	require.NotNil(t, data)

	// header + mode byte + 4 bytes per update
	assert.Len(t, data, len(SysExHeader)+1+4*len(updates))
	assert.Equal(t, SysExHeader, data[:len(SysExHeader)])
	assert.Equal(t, byte(ModeRGB), data[len(SysExHeader)])

	// Quads appear in input order.
	assert.Equal(t, []byte{11, 63, 63, 63}, data[6:10])
	assert.Equal(t, []byte{91, 0, 63, 63}, data[10:14])
}

func TestEncodeFrame_LengthContract(t *testing.T) {
	for n := 1; n <= 80; n += 7 {
		updates := make([]LEDUpdate, n)
		data := EncodeFrame(updates)
		assert.Len(t, data, len(SysExHeader)+1+4*n, "n=%d", n)
	}
}

func TestEncodeFrame_EmptyIsNil(t *testing.T) {
	assert.Nil(t, EncodeFrame(nil))
	assert.Nil(t, EncodeFrame([]LEDUpdate{}))
	assert.Nil(t, EncodeMessage(nil))
}

func TestEncodeFrame_ClampsChannels(t *testing.T) {
	data := EncodeFrame([]LEDUpdate{{Control: 55, Color: Color{200, 64, 63}}})
	require.NotNil(t, data)
	assert.Equal(t, []byte{55, 0x3F, 0x3F, 0x3F}, data[6:10])
}

func TestEncodeMessage_WrapsSysEx(t *testing.T) {
	msg := EncodeMessage([]LEDUpdate{{Control: 42, Color: ColorRed}})
	require.NotNil(t, msg)

	raw := []byte(msg)
	assert.Equal(t, byte(0xF0), raw[0])
	assert.Equal(t, byte(0xF7), raw[len(raw)-1])
	assert.Equal(t, EncodeFrame([]LEDUpdate{{Control: 42, Color: ColorRed}}), raw[1:len(raw)-1])
}

func TestDecode_NoteOn(t *testing.T) {
	ev, err := Decode(midi.NoteOn(0, 55, 100))
	require.NoError(t, err)
	assert.Equal(t, Press{Control: 55, Velocity: 100}, ev)
}

func TestDecode_NoteOnZeroVelocityIsRelease(t *testing.T) {
	ev, err := Decode(midi.NoteOn(0, 55, 0))
	require.NoError(t, err)
	assert.Equal(t, Release{Control: 55}, ev)
}

func TestDecode_NoteOff(t *testing.T) {
	ev, err := Decode(midi.NoteOff(0, 89))
	require.NoError(t, err)
	assert.Equal(t, Release{Control: 89}, ev)
}

func TestDecode_ControlChange(t *testing.T) {
	ev, err := Decode(midi.ControlChange(0, 7, 127))
	require.NoError(t, err)
	assert.Equal(t, ControlChange{Controller: 7, Value: 127}, ev)
}

func TestDecode_SysExKeepsPayload(t *testing.T) {
	payload := []byte{0x00, 0x20, 0x29, 0x02, 0x10, 0x0B, 0x0B, 0x3F, 0x00, 0x00}
	ev, err := Decode(midi.SysEx(payload))
	require.NoError(t, err)

	sysex, ok := ev.(SysEx)
	require.True(t, ok)
	assert.Equal(t, payload, sysex.Data)
}

func TestDecode_UnhandledMessage(t *testing.T) {
	ev, err := Decode(midi.ProgramChange(0, 12))
	assert.ErrorIs(t, err, ErrUnhandledMessage)
	assert.Nil(t, ev)
}
