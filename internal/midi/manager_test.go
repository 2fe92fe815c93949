package midi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMatchPort(t *testing.T) {
	names := []string{
		"Midi Through Port-0",
		"Ableton Move MIDI 1",
		"Launchpad Pro MIDI 2",
	}

	tests := []struct {
		name     string
		keywords []string
		want     string
	}{
		{"first keyword hit wins", []string{"Move", "Ableton"}, "Ableton Move MIDI 1"},
		{"second keyword", []string{"Launchpad"}, "Launchpad Pro MIDI 2"},
		{"no match", []string{"Push"}, ""},
		{"empty keyword is ignored", []string{""}, ""},
		{"no keywords", nil, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, matchPort(names, tt.keywords))
		})
	}
}

func TestMatchPort_NoPorts(t *testing.T) {
	assert.Equal(t, "", matchPort(nil, []string{"Move"}))
}
