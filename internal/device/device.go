// Package device holds the emulated M8's visible state and the event-driven
// transitions that map surface presses to LED changes.
package device

import (
	"sort"

	"go.uber.org/zap"

	"github.com/movetools/virtual-m8/internal/layout"
	"github.com/movetools/virtual-m8/internal/protocol"
)

// State is the complete mutable state of the virtual device: the LED color
// of every addressable control plus the selected track and shift modifier.
// It is owned by a single goroutine; see engine.
type State struct {
	logger *zap.SugaredLogger

	leds      map[uint8]protocol.Color
	track     int
	shiftHeld bool
}

// New creates a device in its boot state: grid dimmed, first track selector
// highlighted, navigation buttons dimmed.
func New(logger *zap.SugaredLogger) *State {
	s := &State{
		logger: logger.Named("device"),
		leds:   make(map[uint8]protocol.Color, 80),
	}

	for _, pad := range layout.GridPads() {
		s.leds[pad] = protocol.ColorDimWhite
	}
	for i := 0; i < layout.NumTracks; i++ {
		if i == 0 {
			s.leds[layout.TrackSelector(i)] = protocol.ColorCyan
		} else {
			s.leds[layout.TrackSelector(i)] = protocol.ColorDimWhite
		}
	}
	for _, nav := range layout.NavButtons() {
		s.leds[nav] = protocol.ColorDimBlue
	}

	return s
}

// Track returns the currently selected track index (0..7).
func (s *State) Track() int { return s.track }

// ShiftHeld reports whether the shift modifier is currently held.
func (s *State) ShiftHeld() bool { return s.shiftHeld }

// LED returns the current color of a control, ColorOff if it has never
// been lit.
func (s *State) LED(id uint8) protocol.Color { return s.leds[id] }

// Handle applies one semantic event and returns the LED updates it caused,
// in emission order. Events with no visible effect return an empty update.
func (s *State) Handle(ev protocol.Event) []protocol.LEDUpdate {
	switch e := ev.(type) {
	case protocol.Press:
		return s.press(e.Control)
	case protocol.Release:
		return s.release(e.Control)
	}
	// ControlChange and SysEx are logged by the engine, no state effect.
	return nil
}

func (s *State) press(id uint8) []protocol.LEDUpdate {
	c := layout.Lookup(id)

	switch c.Role {
	case layout.RoleTrack:
		s.track = c.Track
		s.logger.Infow("track selected", "track", c.Track+1)
		return s.repaintTrackRow()

	case layout.RoleNav:
		return s.set(id, protocol.ColorBlue)

	case layout.RoleGridPad:
		return s.set(id, protocol.ColorWhite)

	case layout.RoleFunction:
		if c.Fn == layout.FnShift {
			s.shiftHeld = true
			return s.set(id, protocol.ColorOrange)
		}
	}

	return nil
}

func (s *State) release(id uint8) []protocol.LEDUpdate {
	c := layout.Lookup(id)

	switch c.Role {
	case layout.RoleNav:
		return s.set(id, protocol.ColorDimBlue)

	case layout.RoleGridPad:
		return s.set(id, protocol.ColorDimWhite)

	case layout.RoleFunction:
		if c.Fn == layout.FnShift {
			s.shiftHeld = false
			return s.set(id, protocol.ColorDimWhite)
		}
	}

	// Track selectors have no release behavior: selection is a press-only
	// set, not a toggle.
	return nil
}

// repaintTrackRow recolors the whole selector row. The full 8-entry update
// is deliberate even when reselecting the active track, so observers always
// see a consistent row rather than a delta.
func (s *State) repaintTrackRow() []protocol.LEDUpdate {
	updates := make([]protocol.LEDUpdate, 0, layout.NumTracks)
	for i := 0; i < layout.NumTracks; i++ {
		id := layout.TrackSelector(i)
		color := protocol.ColorDimWhite
		if i == s.track {
			color = protocol.ColorCyan
		}
		s.leds[id] = color
		updates = append(updates, protocol.LEDUpdate{Control: id, Color: color})
	}
	return updates
}

func (s *State) set(id uint8, color protocol.Color) []protocol.LEDUpdate {
	s.leds[id] = color
	return []protocol.LEDUpdate{{Control: id, Color: color}}
}

// Snapshot returns the full illumination state, ordered by control number.
// The engine pushes it once at session start so the surface shows the boot
// pattern before any events are processed.
func (s *State) Snapshot() []protocol.LEDUpdate {
	updates := make([]protocol.LEDUpdate, 0, len(s.leds))
	for id, color := range s.leds {
		updates = append(updates, protocol.LEDUpdate{Control: id, Color: color})
	}
	sort.Slice(updates, func(i, j int) bool {
		return updates[i].Control < updates[j].Control
	})
	return updates
}
