package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows the game to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone       Action = iota
	ActionLeftUp            // W - move left paddle up
	ActionLeftDown          // S - move left paddle down
	ActionRightUp           // Up arrow - move right paddle up
	ActionRightDown         // Down arrow - move right paddle down
	ActionPause             // P - pause/unpause
	ActionConfirm           // Space - confirm in menus
	ActionModeTwo           // 1 - select two player mode
	ActionModeAI            // 2 - select vs AI mode
	ActionRestart           // R - restart after game over
	ActionChangeMode        // M - back to mode select after game over
	ActionCancel            // Esc - back / exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeftUp:
		return "LeftUp"
	case ActionLeftDown:
		return "LeftDown"
	case ActionRightUp:
		return "RightUp"
	case ActionRightDown:
		return "RightDown"
	case ActionPause:
		return "Pause"
	case ActionConfirm:
		return "Confirm"
	case ActionModeTwo:
		return "ModeTwo"
	case ActionModeAI:
		return "ModeAI"
	case ActionRestart:
		return "Restart"
	case ActionChangeMode:
		return "ChangeMode"
	case ActionCancel:
		return "Cancel"
	default:
		return "Unknown"
	}
}

// InputSource is what the game reads each frame: level-triggered "held" state
// for movement and edge-triggered "pressed" state for everything else.
type InputSource interface {
	Held(a Action) bool
	Pressed(a Action) bool
}

// InputFrame represents the input state for one simulation tick.
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Hold marks an action as currently held down.
func (f *InputFrame) Hold(a Action) {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	f.held[a] = true
}

// Press marks an action as newly pressed this frame. A pressed key is also held.
func (f *InputFrame) Press(a Action) {
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
	f.pressed[a] = true
	f.Hold(a)
}

// Held returns true if the action is held down this frame.
func (f InputFrame) Held(a Action) bool {
	return f.held[a]
}

// Pressed returns true if the action went down this frame.
func (f InputFrame) Pressed(a Action) bool {
	return f.pressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	clear(f.held)
	clear(f.pressed)
}

// Merge adds every held and pressed action of other to f.
func (f *InputFrame) Merge(other InputFrame) {
	for a := range other.held {
		f.Hold(a)
	}
	for a := range other.pressed {
		f.Press(a)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.held {
		clone.held[k] = v
	}
	for k, v := range f.pressed {
		clone.pressed[k] = v
	}
	return clone
}

// Direction is the vertical intent derived from a pair of movement actions.
type Direction int

const (
	DirNone Direction = iota
	DirUp
	DirDown
)

// HeldDirection resolves an up/down action pair. Up is checked first and wins
// when both are held.
func HeldDirection(in InputSource, up, down Action) Direction {
	switch {
	case in.Held(up):
		return DirUp
	case in.Held(down):
		return DirDown
	default:
		return DirNone
	}
}
