// Package engine runs the emulator's processing loop: it drains inbound
// MIDI messages in arrival order, feeds them through the codec and the
// device state machine, and sends the resulting LED frames back out.
package engine

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	"go.uber.org/zap"

	"github.com/movetools/virtual-m8/internal/device"
	"github.com/movetools/virtual-m8/internal/protocol"
)

// Engine owns the device state and the decode-process-encode step. All
// state access happens on the goroutine running Run; the MIDI listener
// callback only forwards messages into a channel.
type Engine struct {
	logger  *zap.SugaredLogger
	device  *device.State
	send    func(midi.Message) error
	verbose bool
	session string
}

// New creates an engine around a device and an outbound send function.
func New(logger *zap.SugaredLogger, dev *device.State, send func(midi.Message) error, verbose bool) *Engine {
	return &Engine{
		logger:  logger.Named("engine"),
		device:  dev,
		send:    send,
		verbose: verbose,
		session: uuid.New().String(),
	}
}

// SyncState pushes the device's complete illumination state to the surface
// in one frame. Called once at session start, before event processing.
func (e *Engine) SyncState() error {
	snapshot := e.device.Snapshot()
	frame := protocol.EncodeMessage(snapshot)
	if frame == nil {
		return nil
	}
	if err := e.send(frame); err != nil {
		return fmt.Errorf("send initial state: %w", err)
	}
	e.logger.Infow("sent initial led state", "leds", len(snapshot))
	return nil
}

// Run listens on the input port and processes messages until the context
// is cancelled. Messages are handled strictly in arrival order; outbound
// frames are emitted in the same order as the events that caused them.
func (e *Engine) Run(ctx context.Context, in drivers.In) error {
	msgs := make(chan midi.Message, 128)

	stop, err := midi.ListenTo(in, func(msg midi.Message, timestampms int32) {
		msgs <- msg
	}, midi.UseSysEx())
	if err != nil {
		return fmt.Errorf("failed to start listening: %w", err)
	}
	defer stop()

	e.logger.Infow("virtual m8 running", "session", e.session)

	if err := e.SyncState(); err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			e.logger.Info("shutting down")
			return nil
		case msg := <-msgs:
			e.Process(msg)
		}
	}
}

// Process runs one message through decode, the state machine, and encode,
// sending the resulting frame if there is one. Per-message failures are
// logged and swallowed; the loop never dies on bad input.
func (e *Engine) Process(msg midi.Message) {
	ev, err := protocol.Decode(msg)
	if err != nil {
		e.logger.Warnw("discarding undecodable message", "error", err, "raw", fmt.Sprintf("% X", []byte(msg)))
		return
	}

	e.logEvent(ev)

	updates := e.device.Handle(ev)
	frame := protocol.EncodeMessage(updates)
	if frame == nil {
		return
	}

	if err := e.send(frame); err != nil {
		e.logger.Warnw("failed to send led update", "error", err)
		return
	}

	e.logger.Infow("led update", "leds", len(updates))
	if e.verbose {
		e.logger.Debugw("tx frame", "data", fmt.Sprintf("% X", []byte(frame)))
	}
}

func (e *Engine) logEvent(ev protocol.Event) {
	switch v := ev.(type) {
	case protocol.Press:
		e.logger.Infow("button down", "note", v.Control, "velocity", v.Velocity)
	case protocol.Release:
		e.logger.Infow("button up", "note", v.Control)
	case protocol.ControlChange:
		e.logger.Infow("control change", "cc", v.Controller, "value", v.Value)
	case protocol.SysEx:
		e.logger.Infow("sysex received", "bytes", len(v.Data))
		if e.verbose {
			data := v.Data
			if len(data) > 20 {
				data = data[:20]
			}
			e.logger.Debugw("rx sysex", "data", fmt.Sprintf("% X", data))
		}
	}
}
