package core

// Action is a semantic input, abstracted from physical key presses so each
// renderer can map its own key events onto the same intents.
type Action int

const (
	ActionNone Action = iota
	ActionFlap        // Space, Up, W, Enter - the main action (start, jump, restart)
	ActionQuit        // Q, Esc, Ctrl+C - leave the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionFlap:
		return "Flap"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
