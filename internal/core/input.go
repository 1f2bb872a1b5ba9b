package core

import "math/bits"

// Action is a semantic input, independent of the key that produced it.
type Action uint8

const (
	ActionNone Action = iota
	ActionUp
	ActionDown
	ActionLeft
	ActionRight
	ActionJump
	ActionConfirm
	ActionBack
	ActionRestart
	ActionQuit
	ActionPause

	actionCount
)

var actionNames = [actionCount]string{
	"None", "Up", "Down", "Left", "Right", "Jump",
	"Confirm", "Back", "Restart", "Quit", "Pause",
}

func (a Action) String() string {
	if a >= actionCount {
		return "Unknown"
	}
	return actionNames[a]
}

// InputFrame is the set of actions pressed during one simulation tick.
// The zero value is empty and frames are copied by value.
type InputFrame uint16

// NewInputFrame returns an empty frame.
func NewInputFrame() InputFrame {
	return 0
}

// Set adds a to the frame. ActionNone and unknown actions are ignored.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone || a >= actionCount {
		return
	}
	*f |= 1 << a
}

// Has reports whether a was pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return a < actionCount && f&(1<<a) != 0
}

// Clear empties the frame for the next tick.
func (f *InputFrame) Clear() {
	*f = 0
}

// Len returns the number of distinct actions in the frame.
func (f InputFrame) Len() int {
	return bits.OnesCount16(uint16(f))
}

// Actions lists the frame's actions in declaration order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, 0, f.Len())
	for a := ActionUp; a < actionCount; a++ {
		if f.Has(a) {
			out = append(out, a)
		}
	}
	return out
}
