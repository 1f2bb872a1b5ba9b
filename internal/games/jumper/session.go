package jumper

// State is the session's top-level screen.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateWon
	StateExit
)

// String returns the state name used in logs and snapshots.
func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateWon:
		return "won"
	case StateExit:
		return "exit"
	default:
		return "unknown"
	}
}

// Mode selects how often ghosts spawn.
type Mode int

const (
	ModeNormal Mode = iota
	ModeHard
)

// String returns the mode name.
func (m Mode) String() string {
	if m == ModeHard {
		return "hard"
	}
	return "normal"
}

// ParseMode maps text to a mode; anything but "hard" is normal.
func ParseMode(s string) Mode {
	if s == "hard" {
		return ModeHard
	}
	return ModeNormal
}

// Button is a selectable menu entry.
type Button int

const (
	ButtonStart Button = iota
	ButtonSelectMode
	ButtonExit
	ButtonNormal
	ButtonHard
	ButtonMenu
	ButtonPlayAgain
)

// Label returns the text drawn on the button.
func (b Button) Label() string {
	switch b {
	case ButtonStart:
		return "Start"
	case ButtonSelectMode:
		return "Select Game Mode"
	case ButtonExit:
		return "Exit"
	case ButtonNormal:
		return "Normal"
	case ButtonHard:
		return "Hard"
	case ButtonMenu:
		return "Menu"
	case ButtonPlayAgain:
		return "Play again"
	default:
		return "?"
	}
}

var (
	mainButtons = []Button{ButtonStart, ButtonSelectMode, ButtonExit}
	modeButtons = []Button{ButtonNormal, ButtonHard}
	winButtons  = []Button{ButtonMenu, ButtonPlayAgain}
)

// Menu tracks button focus for the menu and win screens.
type Menu struct {
	Cursor      int
	SubmenuOpen bool
}

// Buttons returns the buttons currently shown for state s.
func (m *Menu) Buttons(s State) []Button {
	switch {
	case s == StateWon:
		return winButtons
	case m.SubmenuOpen:
		return modeButtons
	default:
		return mainButtons
	}
}

// Move shifts focus by delta, wrapping around.
func (m *Menu) Move(s State, delta int) {
	n := len(m.Buttons(s))
	m.Cursor = ((m.Cursor+delta)%n + n) % n
}

// Selected returns the focused button.
func (m *Menu) Selected(s State) Button {
	btns := m.Buttons(s)
	if m.Cursor < 0 || m.Cursor >= len(btns) {
		m.Cursor = 0
	}
	return btns[m.Cursor]
}

// OpenSubmenu shows the mode buttons.
func (m *Menu) OpenSubmenu() {
	m.SubmenuOpen = true
	m.Cursor = 0
}

// CloseSubmenu returns to the main buttons with the mode button focused.
func (m *Menu) CloseSubmenu() {
	m.SubmenuOpen = false
	m.Cursor = 1
}

// Reset clears focus and closes the submenu.
func (m *Menu) Reset() {
	m.Cursor = 0
	m.SubmenuOpen = false
}
