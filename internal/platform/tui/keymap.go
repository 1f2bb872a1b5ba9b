package tui

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/keng/internal/core"
)

type actionBinding struct {
	action  core.Action
	binding key.Binding
}

// KeyMapper turns key presses into game actions. Bindings are checked in
// order, so quit wins over everything else.
type KeyMapper struct {
	bindings []actionBinding
}

// NewKeyMapper returns the default bindings: WASD, arrows and vim keys for
// movement, space to jump.
func NewKeyMapper() *KeyMapper {
	bind := func(a core.Action, help string, keys ...string) actionBinding {
		label := keys[0]
		if label == " " {
			label = "space"
		}
		return actionBinding{a, key.NewBinding(key.WithKeys(keys...), key.WithHelp(label, help))}
	}
	return &KeyMapper{bindings: []actionBinding{
		bind(core.ActionQuit, "quit", "q", "ctrl+c"),
		bind(core.ActionUp, "up", "w", "up", "k"),
		bind(core.ActionDown, "down", "s", "down", "j"),
		bind(core.ActionLeft, "run left", "a", "left", "h"),
		bind(core.ActionRight, "run right", "d", "right", "l"),
		bind(core.ActionJump, "jump", " "),
		bind(core.ActionConfirm, "select", "enter"),
		bind(core.ActionBack, "back", "b", "esc"),
		bind(core.ActionPause, "pause", "p"),
		bind(core.ActionRestart, "restart", "r"),
	}}
}

// MapKey returns the action for msg, or ActionNone, and whether it quits.
func (km *KeyMapper) MapKey(msg tea.KeyMsg) (action core.Action, isQuit bool) {
	for _, b := range km.bindings {
		if key.Matches(msg, b.binding) {
			return b.action, b.action == core.ActionQuit
		}
	}
	return core.ActionNone, false
}

// MapKeyToFrame adds msg's action to frame and reports a quit request.
func (km *KeyMapper) MapKeyToFrame(msg tea.KeyMsg, frame *core.InputFrame) bool {
	action, isQuit := km.MapKey(msg)
	frame.Set(action)
	return isQuit
}

// Control is one line of the controls legend.
type Control struct {
	Action core.Action
	Keys   []string
	Help   string
}

// Controls lists every binding for help screens.
func (km *KeyMapper) Controls() []Control {
	out := make([]Control, len(km.bindings))
	for i, b := range km.bindings {
		out[i] = Control{Action: b.action, Keys: b.binding.Keys(), Help: b.binding.Help().Desc}
	}
	return out
}
