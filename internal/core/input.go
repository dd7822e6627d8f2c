package core

// Action is a semantic player intent, decoupled from the physical key that
// produced it. The platform maps keys to actions; games map actions to moves.
type Action int

const (
	ActionNone       Action = iota
	ActionLeft              // A, Left arrow
	ActionRight             // D, Right arrow
	ActionRotate            // W, Up arrow
	ActionSoftDrop          // S, Down arrow
	ActionDropFaster        // Space
	ActionPause             // P, Escape
	ActionRestart           // R, only honoured after game over
	ActionQuit              // Q, Ctrl+C
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
	case ActionRotate:
		return "Rotate"
	case ActionSoftDrop:
		return "SoftDrop"
	case ActionDropFaster:
		return "DropFaster"
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

// InputFrame collects the actions triggered during one simulation tick.
// Actions are kept in arrival order and each is forwarded to the game.
// Moves are staged from the committed position, so repeating a move
// within one tick still moves the piece only once.
type InputFrame struct {
	actions []Action
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{}
}

// Set records an action for this frame.
func (f *InputFrame) Set(a Action) {
	if a == ActionNone {
		return
	}
	f.actions = append(f.actions, a)
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	for _, got := range f.actions {
		if got == a {
			return true
		}
	}
	return false
}

// Actions returns the recorded actions in arrival order.
func (f InputFrame) Actions() []Action {
	out := make([]Action, len(f.actions))
	copy(out, f.actions)
	return out
}

// Clear resets the frame for the next tick.
func (f *InputFrame) Clear() {
	f.actions = f.actions[:0]
}
