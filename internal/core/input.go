package core

// Action represents a semantic game action, abstracted from physical key
// presses. The platform maps keys to actions; the engine only sees intents.
type Action int

const (
	ActionNone      Action = iota
	ActionLeft             // Shift the falling piece one column left
	ActionRight            // Shift the falling piece one column right
	ActionRotateCW         // Rotate the falling piece clockwise
	ActionRotateCCW        // Rotate the falling piece counterclockwise
	ActionSoftDrop         // Move the falling piece down one row
	ActionHardDrop         // Drop the falling piece to the bottom
	ActionPause            // Pause/unpause the game
	ActionRestart          // Restart after game over
	ActionQuit             // Exit the game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionRotateCW:
		return "RotateCW"
	case ActionRotateCCW:
		return "RotateCCW"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionHardDrop:
		return "HardDrop"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}
