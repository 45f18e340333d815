package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/math-blaster/internal/arith"
	"github.com/vovakirdan/math-blaster/internal/core"
	"github.com/vovakirdan/math-blaster/internal/game"
)

// KeyMap holds every key binding of the game. Which bindings are live
// depends on the session status; see Screen.
type KeyMap struct {
	Start      key.Binding
	EditName   key.Binding
	DigitsUp   key.Binding
	DigitsDown key.Binding
	ToggleAdd  key.Binding
	ToggleSub  key.Binding
	ToggleMul  key.Binding
	ToggleDiv  key.Binding
	Submit     key.Binding
	End        key.Binding
	PlayAgain  key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Start: key.NewBinding(
			key.WithKeys("enter", "s"),
			key.WithHelp("enter/s", "start"),
		),
		EditName: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "change name"),
		),
		DigitsUp: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("up/k", "more digits"),
		),
		DigitsDown: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("down/j", "fewer digits"),
		),
		ToggleAdd: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1-4", "toggle operation"),
		),
		ToggleSub: key.NewBinding(key.WithKeys("2")),
		ToggleMul: key.NewBinding(key.WithKeys("3")),
		ToggleDiv: key.NewBinding(key.WithKeys("4")),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "submit"),
		),
		End: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "end game"),
		),
		PlayAgain: key.NewBinding(
			key.WithKeys("enter", "r"),
			key.WithHelp("enter/r", "play again"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}

// Screen identifies which bindings are active.
type Screen int

const (
	ScreenNaming Screen = iota // Idle without a player name
	ScreenSetup                // Idle with a player name
	ScreenPlaying
	ScreenGameOver
)

// ScreenFor derives the active screen from the session status.
func ScreenFor(status game.Status, playerName string) Screen {
	switch status {
	case game.StatusPlaying:
		return ScreenPlaying
	case game.StatusGameOver:
		return ScreenGameOver
	default:
		if playerName == "" {
			return ScreenNaming
		}
		return ScreenSetup
	}
}

// MapKey translates a key message to an action for the given screen.
// Keys that belong to a text field map to ActionNone and should be passed on.
func (k KeyMap) MapKey(msg tea.KeyMsg, screen Screen) core.Action {
	if key.Matches(msg, k.ForceQuit) {
		return core.ActionQuit
	}

	switch screen {
	case ScreenNaming:
		if key.Matches(msg, k.Submit) {
			return core.ActionSubmit
		}

	case ScreenSetup:
		switch {
		case key.Matches(msg, k.Start):
			return core.ActionStart
		case key.Matches(msg, k.EditName):
			return core.ActionEditName
		case key.Matches(msg, k.DigitsUp):
			return core.ActionDigitsUp
		case key.Matches(msg, k.DigitsDown):
			return core.ActionDigitsDown
		case key.Matches(msg, k.ToggleAdd):
			return core.ActionToggleAdd
		case key.Matches(msg, k.ToggleSub):
			return core.ActionToggleSub
		case key.Matches(msg, k.ToggleMul):
			return core.ActionToggleMul
		case key.Matches(msg, k.ToggleDiv):
			return core.ActionToggleDiv
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		}

	case ScreenPlaying:
		switch {
		case key.Matches(msg, k.Submit):
			return core.ActionSubmit
		case key.Matches(msg, k.End):
			return core.ActionEnd
		}

	case ScreenGameOver:
		switch {
		case key.Matches(msg, k.PlayAgain):
			return core.ActionPlayAgain
		case key.Matches(msg, k.Quit):
			return core.ActionQuit
		}
	}

	return core.ActionNone
}

// toggleOperation maps a toggle action to its operation.
func toggleOperation(a core.Action) (arith.Operation, bool) {
	switch a {
	case core.ActionToggleAdd:
		return arith.OpAdd, true
	case core.ActionToggleSub:
		return arith.OpSub, true
	case core.ActionToggleMul:
		return arith.OpMul, true
	case core.ActionToggleDiv:
		return arith.OpDiv, true
	default:
		return "", false
	}
}

// screenHelp adapts the key map to help.KeyMap for one screen.
type screenHelp struct {
	keys   KeyMap
	screen Screen
}

var _ help.KeyMap = screenHelp{}

// ShortHelp returns the bindings shown in the help bar.
func (h screenHelp) ShortHelp() []key.Binding {
	k := h.keys
	switch h.screen {
	case ScreenNaming:
		return []key.Binding{k.Submit, k.ForceQuit}
	case ScreenSetup:
		return []key.Binding{k.Start, k.DigitsUp, k.DigitsDown, k.ToggleAdd, k.EditName, k.Quit}
	case ScreenPlaying:
		return []key.Binding{k.Submit, k.End, k.ForceQuit}
	default:
		return []key.Binding{k.PlayAgain, k.Quit}
	}
}

// FullHelp returns the same bindings in a single column.
func (h screenHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.ShortHelp()}
}
