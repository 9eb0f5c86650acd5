// Package session implements the Pomodoro session state machine as a pure
// reducer over an immutable State value.
//
// The host owns the mutable cell holding the State. Every user intent or tick
// is expressed as a Command and folded in with Reduce, which returns the next
// State and any side effects the host must perform (currently only the
// expiry alert).
package session

import "pomodoro/internal/core/model"

// Kind identifies the type of an active session.
type Kind string

const (
	KindFocusing Kind = "focusing"
	KindOnBreak  Kind = "on_break"
)

// Label returns the human readable name of the kind.
func (kind Kind) Label() string {
	switch kind {
	case KindFocusing:
		return "Focusing"
	case KindOnBreak:
		return "On Break"
	default:
		return ""
	}
}

// Next returns the kind that follows kind on expiry.
func (kind Kind) Next() Kind {
	if kind == KindFocusing {
		return KindOnBreak
	}
	return KindFocusing
}

// Session is an active focus or break period.
type Session struct {
	Kind      Kind
	Remaining int
}

// State is the complete timer state. Values are never mutated in place;
// Reduce always returns a fresh copy.
type State struct {
	Durations model.Durations
	Session   *Session
	Running   bool
}

// NewState returns the idle state with default durations.
func NewState() State {
	return State{Durations: model.DefaultDurations()}
}

// Idle reports whether no session exists.
func (state State) Idle() bool {
	return state.Session == nil
}

// Paused reports whether a session exists but is not running.
func (state State) Paused() bool {
	return state.Session != nil && !state.Running
}

// TotalSeconds returns the configured length of the active kind, or 0 when idle.
func (state State) TotalSeconds() int {
	if state.Session == nil {
		return 0
	}
	return state.durationFor(state.Session.Kind)
}

func (state State) durationFor(kind Kind) int {
	if kind == KindOnBreak {
		return state.Durations.BreakSeconds()
	}
	return state.Durations.FocusSeconds()
}

// Direction is the sign of a duration adjustment.
type Direction int

const (
	Decrease Direction = -1
	Increase Direction = 1
)

// Command is an input to Reduce.
type Command interface {
	isCommand()
}

// Start creates a focus session when idle, or resumes a paused one.
type Start struct{}

// Pause freezes the countdown.
type Pause struct{}

// Toggle starts when not running and pauses when running.
type Toggle struct{}

// Tick advances the countdown by one second.
type Tick struct{}

// Stop discards the session and restores default durations.
type Stop struct{}

// AdjustFocus changes the focus duration by one step.
type AdjustFocus struct {
	Direction Direction
}

// AdjustBreak changes the break duration by one step.
type AdjustBreak struct {
	Direction Direction
}

func (Start) isCommand()       {}
func (Pause) isCommand()       {}
func (Toggle) isCommand()      {}
func (Tick) isCommand()        {}
func (Stop) isCommand()        {}
func (AdjustFocus) isCommand() {}
func (AdjustBreak) isCommand() {}

// Effect is a side effect requested by Reduce. Effects are data; the host
// decides how to execute them.
type Effect interface {
	isEffect()
}

// Alert is requested whenever a session expires and the kind flips.
type Alert struct {
	Ended Kind
	Next  Kind
}

func (Alert) isEffect() {}
