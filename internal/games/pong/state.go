package pong

import "github.com/vovakirdan/tui-pong/internal/core"

// Mode selects who controls the right paddle.
type Mode int

const (
	ModeTwoPlayer Mode = iota
	ModeVsAI
)

func (m Mode) String() string {
	switch m {
	case ModeTwoPlayer:
		return "TwoPlayer"
	case ModeVsAI:
		return "VsAI"
	default:
		return "Unknown"
	}
}

// Side identifies a paddle.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	switch s {
	case SideLeft:
		return "Left"
	case SideRight:
		return "Right"
	default:
		return "Unknown"
	}
}

// StateKind tags the state variants.
type StateKind int

const (
	StateMenu StateKind = iota
	StateModeSelect
	StatePlaying
	StatePaused
	StateGameOver
)

func (k StateKind) String() string {
	switch k {
	case StateMenu:
		return "Menu"
	case StateModeSelect:
		return "ModeSelect"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// State is the game's top-level state. The variants are Menu, ModeSelect,
// Playing, Paused and GameOver; no other type implements it.
type State interface {
	Kind() StateKind
	GameMode() Mode
	isState()
}

// Menu is the title screen.
type Menu struct{ Mode Mode }

// ModeSelect lets the players pick a Mode.
type ModeSelect struct{ Mode Mode }

// Playing runs the simulation.
type Playing struct{ Mode Mode }

// Paused freezes the simulation.
type Paused struct{ Mode Mode }

// GameOver freezes the simulation and shows the winner.
type GameOver struct {
	Mode   Mode
	Winner Side
}

func (Menu) Kind() StateKind       { return StateMenu }
func (ModeSelect) Kind() StateKind { return StateModeSelect }
func (Playing) Kind() StateKind    { return StatePlaying }
func (Paused) Kind() StateKind     { return StatePaused }
func (GameOver) Kind() StateKind   { return StateGameOver }

func (s Menu) GameMode() Mode       { return s.Mode }
func (s ModeSelect) GameMode() Mode { return s.Mode }
func (s Playing) GameMode() Mode    { return s.Mode }
func (s Paused) GameMode() Mode     { return s.Mode }
func (s GameOver) GameMode() Mode   { return s.Mode }

func (Menu) isState()       {}
func (ModeSelect) isState() {}
func (Playing) isState()    {}
func (Paused) isState()     {}
func (GameOver) isState()   {}

// Effect is a side effect requested by a transition.
type Effect int

const (
	EffectNone  Effect = iota
	EffectReset        // Reset scores, ball, paddles, particles and effects
	EffectQuit         // Terminate the program
)

func (e Effect) String() string {
	switch e {
	case EffectNone:
		return "None"
	case EffectReset:
		return "Reset"
	case EffectQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// Transition applies edge-triggered input to a state. It is pure: the caller
// applies the returned Effect. Cancel quits from every state and beats any
// other press on the same frame. Entering GameOver from scoring is not an
// input edge and is handled by the simulation.
func Transition(s State, in core.InputSource) (State, Effect) {
	if in.Pressed(core.ActionCancel) {
		return s, EffectQuit
	}

	switch st := s.(type) {
	case Menu:
		if in.Pressed(core.ActionConfirm) {
			return ModeSelect(st), EffectNone
		}

	case ModeSelect:
		switch {
		case in.Pressed(core.ActionModeTwo):
			return ModeSelect{Mode: ModeTwoPlayer}, EffectNone
		case in.Pressed(core.ActionModeAI):
			return ModeSelect{Mode: ModeVsAI}, EffectNone
		case in.Pressed(core.ActionConfirm):
			return Playing(st), EffectNone
		}

	case Playing:
		if in.Pressed(core.ActionPause) {
			return Paused(st), EffectNone
		}

	case Paused:
		if in.Pressed(core.ActionPause) {
			return Playing(st), EffectNone
		}

	case GameOver:
		switch {
		case in.Pressed(core.ActionRestart):
			return Playing{Mode: st.Mode}, EffectReset
		case in.Pressed(core.ActionChangeMode):
			return ModeSelect{Mode: st.Mode}, EffectReset
		}
	}
	return s, EffectNone
}
