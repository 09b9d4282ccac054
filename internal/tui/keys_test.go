package tui

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"charm.land/bubbles/v2/key"
	"github.com/stretchr/testify/assert"

	"github.com/colonyops/hop/internal/core/config"
	"github.com/colonyops/hop/pkg/tuitest"
)

func TestNewKeyMap_Defaults(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig().Keybindings)

	tests := []struct {
		name    string
		msg     tea.Msg
		binding key.Binding
	}{
		{name: "ctrl+k", msg: tuitest.Ctrl('k'), binding: km.LineUp},
		{name: "up", msg: tuitest.KeyUp(), binding: km.LineUp},
		{name: "ctrl+j", msg: tuitest.Ctrl('j'), binding: km.LineDown},
		{name: "down", msg: tuitest.KeyDown(), binding: km.LineDown},
		{name: "ctrl+l", msg: tuitest.Ctrl('l'), binding: km.MatchNext},
		{name: "ctrl+h", msg: tuitest.Ctrl('h'), binding: km.MatchPrev},
		{name: "enter", msg: tuitest.KeyEnter(), binding: km.Select},
		{name: "esc", msg: tuitest.KeyEscape(), binding: km.Select},
		{name: "ctrl+q", msg: tuitest.Ctrl('q'), binding: km.Exit},
		{name: "ctrl+c", msg: tuitest.Ctrl('c'), binding: km.Exit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, ok := tt.msg.(tea.KeyPressMsg)
			assert.True(t, ok)
			assert.True(t, key.Matches(msg, tt.binding))
		})
	}
}

func TestNewKeyMap_Overrides(t *testing.T) {
	km := NewKeyMap(map[string][]string{
		config.ActionLineDown: {"ctrl+n"},
	})

	msg := tuitest.Ctrl('n').(tea.KeyPressMsg)
	assert.True(t, key.Matches(msg, km.LineDown))
	assert.False(t, key.Matches(tuitest.Ctrl('j').(tea.KeyPressMsg), km.LineDown))
	assert.Equal(t, "ctrl+n", km.LineDown.Help().Key)
	assert.Equal(t, "line down", km.LineDown.Help().Desc)
}

func TestKeyMap_Help(t *testing.T) {
	km := NewKeyMap(config.DefaultConfig().Keybindings)

	short := km.ShortHelp()
	assert.Len(t, short, 6)
	assert.Equal(t, "ctrl+k/up", short[0].Help().Key)

	full := km.FullHelp()
	assert.Len(t, full, 3)
}
