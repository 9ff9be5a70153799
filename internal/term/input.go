package term

import (
	"github.com/gdamore/tcell/v2"

	"phone3d/internal/phone"
)

// CommandKind is what a key asks the host to do.
type CommandKind int

const (
	CommandNone CommandKind = iota
	CommandQuit
	CommandPress
	CommandReset
)

// Command is a decoded key press. Control is set for CommandPress.
type Command struct {
	Kind    CommandKind
	Control phone.Control
}

// keyCommand maps a tcell key (and its rune for KeyRune) to a command.
func keyCommand(key tcell.Key, r rune) Command {
	switch key {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Kind: CommandQuit}
	case tcell.KeyUp:
		return Command{Kind: CommandPress, Control: phone.ControlVolumeUp}
	case tcell.KeyDown:
		return Command{Kind: CommandPress, Control: phone.ControlVolumeDown}
	case tcell.KeyRune:
		if c, ok := keyControl(r); ok {
			return Command{Kind: CommandPress, Control: c}
		}
		switch r {
		case 'q', 'Q':
			return Command{Kind: CommandQuit}
		case 'r', 'R':
			return Command{Kind: CommandReset}
		}
	}
	return Command{}
}

// keyControl maps a typed rune to the button it presses.
func keyControl(r rune) (phone.Control, bool) {
	switch r {
	case 'p', 'P':
		return phone.ControlPower, true
	case '+', '=':
		return phone.ControlVolumeUp, true
	case '-', '_':
		return phone.ControlVolumeDown, true
	}
	return 0, false
}

// Pointer is the part of phone.Router the terminal drives.
type Pointer interface {
	PointerDown(x, y float64) bool
	PointerMove(x, y float64)
	PointerUp()
}

var _ Pointer = (*phone.Router)(nil)

// routeMouse turns tcell's button-state mouse reports into press, drag and
// release calls. wasDown is the left button state from the previous report;
// the new state is returned. Motion with the button up is dropped.
func routeMouse(p Pointer, wasDown, down bool, x, y float64) bool {
	switch {
	case down && !wasDown:
		p.PointerDown(x, y)
	case down:
		p.PointerMove(x, y)
	case wasDown:
		p.PointerUp()
	}
	return down
}
