package tui

import (
	"strings"

	"charm.land/bubbles/v2/key"

	"github.com/colonyops/hop/internal/core/config"
)

// KeyMap holds the navigation bindings of the jump view.
type KeyMap struct {
	LineUp    key.Binding
	LineDown  key.Binding
	MatchNext key.Binding
	MatchPrev key.Binding
	Select    key.Binding
	Exit      key.Binding
}

var actionHelp = map[string]string{
	config.ActionLineUp:    "line up",
	config.ActionLineDown:  "line down",
	config.ActionMatchNext: "next match",
	config.ActionMatchPrev: "prev match",
	config.ActionSelect:    "jump",
	config.ActionExit:      "cancel",
}

// NewKeyMap builds the key map from configured keybindings (action -> keys).
func NewKeyMap(bindings map[string][]string) KeyMap {
	bind := func(action string) key.Binding {
		keys := bindings[action]
		return key.NewBinding(
			key.WithKeys(keys...),
			key.WithHelp(strings.Join(keys, "/"), actionHelp[action]),
		)
	}

	return KeyMap{
		LineUp:    bind(config.ActionLineUp),
		LineDown:  bind(config.ActionLineDown),
		MatchNext: bind(config.ActionMatchNext),
		MatchPrev: bind(config.ActionMatchPrev),
		Select:    bind(config.ActionSelect),
		Exit:      bind(config.ActionExit),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.LineUp, k.LineDown, k.MatchPrev, k.MatchNext, k.Select, k.Exit}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.LineUp, k.LineDown},
		{k.MatchPrev, k.MatchNext},
		{k.Select, k.Exit},
	}
}
