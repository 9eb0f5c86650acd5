package session

import (
	"pomodoro/internal/core/duration"
	"pomodoro/internal/core/model"
)

// Reduce applies cmd to state and returns the next state and effects.
// Unknown commands and commands that are invalid in the current state are
// no-ops.
func Reduce(state State, cmd Command) (State, []Effect) {
	switch in := cmd.(type) {
	case Start:
		return reduceStart(state), nil
	case Pause:
		return reducePause(state), nil
	case Toggle:
		if state.Running {
			return reducePause(state), nil
		}
		return reduceStart(state), nil
	case Tick:
		return reduceTick(state)
	case Stop:
		return reduceStop(), nil
	case AdjustFocus:
		return reduceAdjustFocus(state, in.Direction), nil
	case AdjustBreak:
		return reduceAdjustBreak(state, in.Direction), nil
	default:
		return state, nil
	}
}

func reduceStart(state State) State {
	if state.Session == nil {
		state.Session = &Session{
			Kind:      KindFocusing,
			Remaining: state.Durations.FocusSeconds(),
		}
	}
	state.Running = true
	return state
}

func reducePause(state State) State {
	state.Running = false
	return state
}

func reduceTick(state State) (State, []Effect) {
	if !state.Running || state.Session == nil {
		return state, nil
	}

	current := *state.Session
	if current.Remaining > 0 {
		state.Session = &Session{Kind: current.Kind, Remaining: current.Remaining - 1}
		return state, nil
	}

	next := current.Kind.Next()
	state.Session = &Session{Kind: next, Remaining: state.durationFor(next)}
	return state, []Effect{Alert{Ended: current.Kind, Next: next}}
}

func reduceStop() State {
	return NewState()
}

func reduceAdjustFocus(state State, direction Direction) State {
	if state.Session != nil {
		return state
	}
	switch direction {
	case Increase:
		state.Durations.FocusMinutes = duration.ClampIncrement(state.Durations.FocusMinutes, model.FocusStepMinutes, model.MaxFocusMinutes)
	case Decrease:
		state.Durations.FocusMinutes = duration.ClampDecrement(state.Durations.FocusMinutes, model.FocusStepMinutes, model.MinFocusMinutes)
	}
	return state
}

func reduceAdjustBreak(state State, direction Direction) State {
	if state.Session != nil {
		return state
	}
	switch direction {
	case Increase:
		state.Durations.BreakMinutes = duration.ClampIncrement(state.Durations.BreakMinutes, model.BreakStepMinutes, model.MaxBreakMinutes)
	case Decrease:
		state.Durations.BreakMinutes = duration.ClampDecrement(state.Durations.BreakMinutes, model.BreakStepMinutes, model.MinBreakMinutes)
	}
	return state
}
