package tuitest

import (
	"testing"

	tea "charm.land/bubbletea/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripANSI(t *testing.T) {
	in := "\x1b[31mred\x1b[0m   \nplain\n\n"
	assert.Equal(t, "red\nplain", StripANSI(in))
}

func TestType(t *testing.T) {
	msgs := Type("ab")
	require.Len(t, msgs, 2)

	first, ok := msgs[0].(tea.KeyPressMsg)
	require.True(t, ok)
	assert.Equal(t, "a", first.Text)
	assert.Equal(t, "a", first.String())
}

func TestCtrl(t *testing.T) {
	msg, ok := Ctrl('j').(tea.KeyPressMsg)
	require.True(t, ok)
	assert.Equal(t, "ctrl+j", msg.String())
}
