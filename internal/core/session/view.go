package session

import (
	"fmt"

	"pomodoro/internal/core/duration"
)

// View is the render-ready projection of a State.
type View struct {
	FocusLabel string
	BreakLabel string
	Session    *SessionView

	// StopEnabled is true while a session exists, running or paused.
	StopEnabled bool
	// AdjustEnabled is true only when no session exists.
	AdjustEnabled bool
}

// SessionView describes the active session for display.
type SessionView struct {
	Kind           Kind
	Title          string
	RemainingLabel string
	Remaining      int
	Running        bool
	Progress       float64
}

// Subtitle returns the "MM:SS remaining" line.
func (view SessionView) Subtitle() string {
	return view.RemainingLabel + " remaining"
}

// View projects state into display strings and control enablement.
func (state State) View() View {
	view := View{
		FocusLabel:    duration.MinutesToLabel(state.Durations.FocusMinutes),
		BreakLabel:    duration.MinutesToLabel(state.Durations.BreakMinutes),
		StopEnabled:   state.Session != nil,
		AdjustEnabled: state.Session == nil,
	}
	if state.Session == nil {
		return view
	}

	minutes := state.Durations.FocusMinutes
	if state.Session.Kind == KindOnBreak {
		minutes = state.Durations.BreakMinutes
	}

	view.Session = &SessionView{
		Kind:           state.Session.Kind,
		Title:          fmt.Sprintf("%s for %s minutes", state.Session.Kind.Label(), duration.MinutesToLabel(minutes)),
		RemainingLabel: duration.SecondsToLabel(state.Session.Remaining),
		Remaining:      state.Session.Remaining,
		Running:        state.Running,
		Progress:       state.ProgressPercent(),
	}
	return view
}

// ProgressPercent returns elapsed share of the active session in [0,100].
// It is 0 when idle.
func (state State) ProgressPercent() float64 {
	total := state.TotalSeconds()
	if state.Session == nil || total <= 0 {
		return 0
	}
	progress := 100 - float64(state.Session.Remaining)/float64(total)*100
	if progress < 0 {
		return 0
	}
	if progress > 100 {
		return 100
	}
	return progress
}
