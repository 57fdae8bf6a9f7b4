package core

// Action represents a one-shot game action, abstracted from physical key presses.
// Actions are edge-triggered: set for the single tick in which the key arrived.
type Action int

const (
	ActionNone    Action = iota
	ActionJump           // Space - jump (platformer)
	ActionConfirm        // Enter - start the game / confirm in menus
	ActionBack           // B, Escape - go back to menu
	ActionRestart        // R key - reset the session
	ActionQuit           // Q, Ctrl+C - exit game/session
	ActionPause          // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionJump:
		return "Jump"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// Direction is a logical movement direction. Several physical keys may map to
// the same direction (WASD and the arrow keys both do).
type Direction uint8

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
	dirCount
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "Up"
	case DirDown:
		return "Down"
	case DirLeft:
		return "Left"
	case DirRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// AllDirections lists every logical direction in a stable order.
func AllDirections() []Direction {
	return []Direction{DirUp, DirDown, DirLeft, DirRight}
}

// Directions is the pressed-state snapshot of every logical direction.
type Directions [dirCount]bool

// Held reports whether a direction is pressed.
func (d Directions) Held(dir Direction) bool {
	if dir >= dirCount {
		return false
	}
	return d[dir]
}

// Press marks a direction as pressed.
func (d *Directions) Press(dir Direction) {
	if dir < dirCount {
		d[dir] = true
	}
}

// Release marks a direction as released.
func (d *Directions) Release(dir Direction) {
	if dir < dirCount {
		d[dir] = false
	}
}

// Any reports whether at least one direction is pressed.
func (d Directions) Any() bool {
	for _, held := range d {
		if held {
			return true
		}
	}
	return false
}

// InputFrame represents the input state for the player during one simulation tick.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	// Dirs holds the continuous pressed state of the movement directions.
	Dirs Directions
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// Held returns true if the given direction is pressed this frame.
func (f InputFrame) Held(d Direction) bool {
	return f.Dirs.Held(d)
}

// Clear resets the one-shot actions for the next frame.
// Held directions are owned by the platform's key tracker and survive Clear.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.Dirs = f.Dirs
	return clone
}
