package engine_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gitlab.com/gomidi/midi/v2"
	"go.uber.org/zap"

	"github.com/movetools/virtual-m8/internal/device"
	"github.com/movetools/virtual-m8/internal/engine"
	"github.com/movetools/virtual-m8/internal/protocol"
)

type frameRecorder struct {
	frames []midi.Message
}

func (r *frameRecorder) send(msg midi.Message) error {
	r.frames = append(r.frames, msg)
	return nil
}

func newTestEngine() (*engine.Engine, *frameRecorder) {
	rec := &frameRecorder{}
	dev := device.New(zap.NewNop().Sugar())
	return engine.New(zap.NewNop().Sugar(), dev, rec.send, false), rec
}

func TestSyncState_SendsFullSnapshot(t *testing.T) {
	e, rec := newTestEngine()

	require.NoError(t, e.SyncState())
	require.Len(t, rec.frames, 1)

	// 76 boot-state LEDs: F0 + header + mode + 76 quads + F7.
	raw := []byte(rec.frames[0])
	assert.Len(t, raw, 1+len(protocol.SysExHeader)+1+4*76+1)
	assert.Equal(t, byte(0xF0), raw[0])
	assert.Equal(t, byte(0xF7), raw[len(raw)-1])
}

func TestProcess_NavPressThenRelease(t *testing.T) {
	e, rec := newTestEngine()

	e.Process(midi.NoteOn(0, 89, 100))
	e.Process(midi.NoteOn(0, 89, 0))

	require.Len(t, rec.frames, 2)

	// Active blue first, then dim blue, in arrival order.
	want1 := append([]byte{0xF0}, append(protocol.EncodeFrame([]protocol.LEDUpdate{
		{Control: 89, Color: protocol.ColorBlue},
	}), 0xF7)...)
	want2 := append([]byte{0xF0}, append(protocol.EncodeFrame([]protocol.LEDUpdate{
		{Control: 89, Color: protocol.ColorDimBlue},
	}), 0xF7)...)

	assert.Equal(t, want1, []byte(rec.frames[0]))
	assert.Equal(t, want2, []byte(rec.frames[1]))
}

func TestProcess_TrackSelectSendsEightLEDs(t *testing.T) {
	e, rec := newTestEngine()

	e.Process(midi.NoteOn(0, 93, 100))

	require.Len(t, rec.frames, 1)
	raw := []byte(rec.frames[0])
	assert.Len(t, raw, 1+len(protocol.SysExHeader)+1+4*8+1)
}

func TestProcess_ControlChangeSendsNothing(t *testing.T) {
	e, rec := newTestEngine()

	e.Process(midi.ControlChange(0, 7, 64))
	e.Process(midi.SysEx([]byte{0x01, 0x02, 0x03}))

	assert.Empty(t, rec.frames)
}

func TestProcess_UnknownControlSendsNothing(t *testing.T) {
	e, rec := newTestEngine()

	e.Process(midi.NoteOn(0, 9, 100))
	e.Process(midi.NoteOff(0, 107))

	assert.Empty(t, rec.frames)
}

func TestProcess_UndecodableMessageIsDiscarded(t *testing.T) {
	e, rec := newTestEngine()

	assert.NotPanics(t, func() {
		e.Process(midi.ProgramChange(0, 3))
	})
	assert.Empty(t, rec.frames)
}
