package core

// Action represents a semantic input, abstracted from physical key presses.
// Front ends map their keys or requests to actions; the engine only sees
// the resulting commands.
type Action int

const (
	ActionNone       Action = iota
	ActionTurnLeft          // A, Left arrow - rotate counter-clockwise
	ActionTurnRight         // D, Right arrow - rotate clockwise
	ActionForward           // W, Up arrow - step or open a question
	ActionSubmit            // Enter - submit the typed answer
	ActionBack              // Esc - leave the board, back to mode menu
	ActionReset             // X - reset the highlighted board (menu only)
	ActionScoreboard        // Tab - open the scoreboard (menu only)
	ActionQuit              // Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionForward:
		return "Forward"
	case ActionSubmit:
		return "Submit"
	case ActionBack:
		return "Back"
	case ActionReset:
		return "Reset"
	case ActionScoreboard:
		return "Scoreboard"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
