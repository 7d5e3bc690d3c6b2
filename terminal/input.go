package terminal

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/ascii3d/shape"
)

// Action is a user request decoded from a key
type Action int

const (
	ActionNone Action = iota
	ActionQuit
	ActionNextShape
	ActionSelectShape
	ActionToggleSound
	ActionFaster
	ActionSlower
)

func (a Action) String() string {
	switch a {
	case ActionNone:
		return "none"
	case ActionQuit:
		return "quit"
	case ActionNextShape:
		return "next-shape"
	case ActionSelectShape:
		return "select-shape"
	case ActionToggleSound:
		return "toggle-sound"
	case ActionFaster:
		return "faster"
	case ActionSlower:
		return "slower"
	}
	return "unknown"
}

// Command is a decoded action; Shape is set for ActionSelectShape
type Command struct {
	Action Action
	Shape  shape.Kind
}

// SpeedStep is the multiplier change per +/- key
const SpeedStep = 0.25

// Translate decodes a key event
func Translate(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return Command{Action: ActionQuit}
	case tcell.KeyTab:
		return Command{Action: ActionNextShape}
	case tcell.KeyRune:
	default:
		return Command{}
	}

	r := ev.Rune()
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		if r == 'c' || r == 'C' {
			return Command{Action: ActionQuit}
		}
		return Command{}
	}

	switch r {
	case 'q', 'Q':
		return Command{Action: ActionQuit}
	case ' ', 'n', 'N':
		return Command{Action: ActionNextShape}
	case '1', '2', '3':
		return Command{Action: ActionSelectShape, Shape: shape.Kinds()[r-'1']}
	case 'm', 'M':
		return Command{Action: ActionToggleSound}
	case '+', '=':
		return Command{Action: ActionFaster}
	case '-', '_':
		return Command{Action: ActionSlower}
	}
	return Command{}
}
