// Package midi wraps port discovery and connection handling around the
// gomidi driver layer. Everything here is transport glue; the protocol and
// device packages never touch ports directly.
package midi

import (
	"fmt"
	"strings"
	"sync"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
	_ "gitlab.com/gomidi/midi/v2/drivers/rtmididrv" // Register rtmidi driver
)

// Manager handles MIDI port discovery and lookup.
type Manager struct {
	mu sync.RWMutex
}

// NewManager creates a new MIDI manager.
func NewManager() *Manager {
	return &Manager{}
}

// Close cleans up the MIDI driver.
func (m *Manager) Close() {
	midi.CloseDriver()
}

// ListInPorts returns the names of available MIDI input ports.
func (m *Manager) ListInPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	ins := midi.GetInPorts()
	names := make([]string, 0, len(ins))
	for _, in := range ins {
		names = append(names, in.String())
	}
	return names
}

// ListOutPorts returns the names of available MIDI output ports.
func (m *Manager) ListOutPorts() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	outs := midi.GetOutPorts()
	names := make([]string, 0, len(outs))
	for _, out := range outs {
		names = append(names, out.String())
	}
	return names
}

// OpenIn returns the input port with the given name.
func (m *Manager) OpenIn(name string) (drivers.In, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, in := range midi.GetInPorts() {
		if in.String() == name {
			return in, nil
		}
	}
	return nil, fmt.Errorf("input port not found: %s", name)
}

// OpenOut returns the output port with the given name.
func (m *Manager) OpenOut(name string) (drivers.Out, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	for _, out := range midi.GetOutPorts() {
		if out.String() == name {
			return out, nil
		}
	}
	return nil, fmt.Errorf("output port not found: %s", name)
}

// Sender returns a send function for the named output port.
func (m *Manager) Sender(name string) (func(midi.Message) error, error) {
	out, err := m.OpenOut(name)
	if err != nil {
		return nil, err
	}
	send, err := midi.SendTo(out)
	if err != nil {
		return nil, fmt.Errorf("failed to create sender for %s: %w", name, err)
	}
	return send, nil
}

// DetectPorts scans the available input and output ports for the first ones
// whose names contain any of the given keywords. Empty results mean no
// matching port was found.
func (m *Manager) DetectPorts(keywords []string) (inName, outName string) {
	return matchPort(m.ListInPorts(), keywords), matchPort(m.ListOutPorts(), keywords)
}

func matchPort(names, keywords []string) string {
	for _, name := range names {
		for _, kw := range keywords {
			if kw != "" && strings.Contains(name, kw) {
				return name
			}
		}
	}
	return ""
}
