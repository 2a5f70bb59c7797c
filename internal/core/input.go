package core

// Action represents a semantic input action, abstracted from physical key presses.
type Action int

const (
	ActionNone Action = iota
	ActionQuit        // Q, Ctrl+C - exit the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
