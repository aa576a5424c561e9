package tui

import "github.com/vovakirdan/tui-pong/internal/core"

// HoldTicks is how long a movement key stays held after its last key event
// (~133ms at 60Hz). Terminals report presses and auto-repeats but never
// releases, so holding is emulated by re-arming on every repeat.
const HoldTicks = 8

// opposite pairs the movement actions of one paddle.
var opposite = map[core.Action]core.Action{
	core.ActionLeftUp:    core.ActionLeftDown,
	core.ActionLeftDown:  core.ActionLeftUp,
	core.ActionRightUp:   core.ActionRightDown,
	core.ActionRightDown: core.ActionRightUp,
}

// HoldTracker turns terminal key events into per-tick input frames.
type HoldTracker struct {
	remaining map[core.Action]int
	pressed   core.InputFrame
}

// NewHoldTracker creates an empty tracker.
func NewHoldTracker() *HoldTracker {
	return &HoldTracker{
		remaining: make(map[core.Action]int),
		pressed:   core.NewInputFrame(),
	}
}

// Key records a key event. Movement actions are (re)armed for HoldTicks and
// cancel the opposite direction; everything else is a one-tick press.
func (h *HoldTracker) Key(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if other, ok := opposite[a]; ok {
		h.remaining[a] = HoldTicks
		delete(h.remaining, other)
		return
	}
	h.pressed.Press(a)
}

// Frame returns the input for the next tick and ages the tracker by one tick.
func (h *HoldTracker) Frame() core.InputFrame {
	frame := h.pressed.Clone()
	for a, n := range h.remaining {
		frame.Hold(a)
		if n <= 1 {
			delete(h.remaining, a)
		} else {
			h.remaining[a] = n - 1
		}
	}
	h.pressed.Clear()
	return frame
}
