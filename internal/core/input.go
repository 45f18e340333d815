package core

// Action represents a semantic player intent, abstracted from physical key
// presses. Which actions are available depends on the game status.
type Action int

const (
	ActionNone       Action = iota
	ActionStart             // Enter, S - start a game from idle
	ActionEnd               // Esc - give up the running game
	ActionPlayAgain         // Enter, R - back to idle after game over
	ActionEditName          // N - change the player name
	ActionDigitsUp          // Up, + - one more digit per operand
	ActionDigitsDown        // Down, - - one digit less
	ActionToggleAdd         // 1
	ActionToggleSub         // 2
	ActionToggleMul         // 3
	ActionToggleDiv         // 4
	ActionSubmit            // Enter while playing or naming
	ActionQuit              // Q, Ctrl+C
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionStart:
		return "Start"
	case ActionEnd:
		return "End"
	case ActionPlayAgain:
		return "PlayAgain"
	case ActionEditName:
		return "EditName"
	case ActionDigitsUp:
		return "DigitsUp"
	case ActionDigitsDown:
		return "DigitsDown"
	case ActionToggleAdd:
		return "ToggleAdd"
	case ActionToggleSub:
		return "ToggleSub"
	case ActionToggleMul:
		return "ToggleMul"
	case ActionToggleDiv:
		return "ToggleDiv"
	case ActionSubmit:
		return "Submit"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// IsToggle reports whether the action toggles an operation.
func (a Action) IsToggle() bool {
	return a >= ActionToggleAdd && a <= ActionToggleDiv
}
