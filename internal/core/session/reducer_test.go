package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pomodoro/internal/core/model"
)

// apply folds cmd into state n times and collects every effect.
func apply(state State, cmd Command, n int) (State, []Effect) {
	var all []Effect
	for i := 0; i < n; i++ {
		var effects []Effect
		state, effects = Reduce(state, cmd)
		all = append(all, effects...)
	}
	return state, all
}

func minimumDurations(state State) State {
	state, _ = apply(state, AdjustFocus{Direction: Decrease}, 10)
	state, _ = apply(state, AdjustBreak{Direction: Decrease}, 10)
	return state
}

func TestNewStateView(t *testing.T) {
	view := NewState().View()

	assert.Equal(t, "25:00", view.FocusLabel)
	assert.Equal(t, "05:00", view.BreakLabel)
	assert.Nil(t, view.Session)
	assert.False(t, view.StopEnabled)
	assert.True(t, view.AdjustEnabled)
}

func TestToggleFromIdleStartsFocus(t *testing.T) {
	state, effects := Reduce(NewState(), Toggle{})

	require.NotNil(t, state.Session)
	assert.Empty(t, effects)
	assert.Equal(t, KindFocusing, state.Session.Kind)
	assert.Equal(t, 1500, state.Session.Remaining)
	assert.True(t, state.Running)

	view := state.View()
	require.NotNil(t, view.Session)
	assert.Equal(t, "Focusing for 25:00 minutes", view.Session.Title)
	assert.Equal(t, "25:00 remaining", view.Session.Subtitle())
	assert.True(t, view.StopEnabled)
	assert.False(t, view.AdjustEnabled)
}

func TestTicksCountDown(t *testing.T) {
	state, _ := Reduce(NewState(), Toggle{})
	state, effects := apply(state, Tick{}, 15)

	assert.Empty(t, effects)
	assert.Equal(t, 1485, state.Session.Remaining)
	assert.Equal(t, "24:45 remaining", state.View().Session.Subtitle())
}

func TestFocusExpiryFlipsToBreak(t *testing.T) {
	state, _ := apply(NewState(), AdjustFocus{Direction: Decrease}, 10)
	require.Equal(t, model.MinFocusMinutes, state.Durations.FocusMinutes)

	state, _ = Reduce(state, Toggle{})
	state, effects := apply(state, Tick{}, 300)

	// The countdown rests at zero for one tick before flipping.
	assert.Empty(t, effects)
	assert.Equal(t, KindFocusing, state.Session.Kind)
	assert.Equal(t, 0, state.Session.Remaining)
	assert.Equal(t, "00:00 remaining", state.View().Session.Subtitle())

	state, effects = Reduce(state, Tick{})
	require.Len(t, effects, 1)
	assert.Equal(t, Alert{Ended: KindFocusing, Next: KindOnBreak}, effects[0])
	assert.Equal(t, KindOnBreak, state.Session.Kind)
	assert.Equal(t, 300, state.Session.Remaining)
	assert.True(t, state.Running)
	assert.Equal(t, "On Break for 05:00 minutes", state.View().Session.Title)
}

func TestBreakUsesConfiguredBreakDuration(t *testing.T) {
	state := minimumDurations(NewState())
	state, _ = Reduce(state, Toggle{})
	state, effects := apply(state, Tick{}, 330)

	require.Len(t, effects, 1)
	assert.Equal(t, "On Break for 01:00 minutes", state.View().Session.Title)
}

func TestBreakExpiryStartsNewFocus(t *testing.T) {
	state := minimumDurations(NewState())
	state, _ = Reduce(state, Toggle{})
	state, effects := apply(state, Tick{}, 390)

	require.Len(t, effects, 2)
	assert.Equal(t, Alert{Ended: KindOnBreak, Next: KindFocusing}, effects[1])
	assert.Equal(t, KindFocusing, state.Session.Kind)
	assert.Equal(t, "Focusing for 05:00 minutes", state.View().Session.Title)
}

func TestSecondFocusUsesCurrentDurations(t *testing.T) {
	state := minimumDurations(NewState())
	state, _ = Reduce(state, Toggle{})

	// Adjustments during the session are rejected, so the second focus
	// period is identical to the first.
	state, _ = Reduce(state, AdjustFocus{Direction: Increase})
	state, _ = apply(state, Tick{}, 301+61)

	require.Equal(t, KindFocusing, state.Session.Kind)
	assert.Equal(t, 300, state.Session.Remaining)
	assert.Equal(t, model.MinFocusMinutes, state.Durations.FocusMinutes)
}

func TestPauseFreezesRemaining(t *testing.T) {
	state, _ := Reduce(NewState(), Toggle{})
	state, _ = apply(state, Tick{}, 15)
	state, _ = Reduce(state, Toggle{})

	assert.True(t, state.Paused())
	state, _ = apply(state, Tick{}, 15)
	assert.Equal(t, 1485, state.Session.Remaining)
	assert.False(t, state.View().Session.Running)

	state, _ = Reduce(state, Start{})
	assert.True(t, state.Running)
	assert.Equal(t, 1485, state.Session.Remaining)

	state, _ = Reduce(state, Tick{})
	assert.Equal(t, 1484, state.Session.Remaining)
}

func TestStopResetsEverything(t *testing.T) {
	tests := []struct {
		name  string
		ticks int
	}{
		{name: "focus", ticks: 15},
		{name: "break", ticks: 330},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			state, _ := apply(NewState(), AdjustFocus{Direction: Decrease}, 10)
			state, _ = Reduce(state, Toggle{})
			state, _ = apply(state, Tick{}, tt.ticks)

			state, effects := Reduce(state, Stop{})
			assert.Empty(t, effects)
			assert.Nil(t, state.Session)
			assert.False(t, state.Running)
			assert.Equal(t, model.DefaultDurations(), state.Durations)

			state, effects = apply(state, Tick{}, 15)
			assert.Empty(t, effects)
			assert.Nil(t, state.Session)
			assert.False(t, state.View().StopEnabled)
		})
	}
}

func TestStopWhenIdleRestoresDefaults(t *testing.T) {
	state, _ := apply(NewState(), AdjustBreak{Direction: Increase}, 3)
	require.Equal(t, 8, state.Durations.BreakMinutes)

	state, _ = Reduce(state, Stop{})
	assert.Equal(t, model.DefaultDurations(), state.Durations)
}

func TestAdjustmentsClampToBounds(t *testing.T) {
	state, _ := Reduce(NewState(), AdjustFocus{Direction: Increase})
	assert.Equal(t, "30:00", state.View().FocusLabel)
	state, _ = apply(state, AdjustFocus{Direction: Increase}, 10)
	assert.Equal(t, "60:00", state.View().FocusLabel)
	state, _ = apply(state, AdjustFocus{Direction: Decrease}, 20)
	assert.Equal(t, "05:00", state.View().FocusLabel)

	state, _ = Reduce(state, AdjustBreak{Direction: Decrease})
	assert.Equal(t, "04:00", state.View().BreakLabel)
	state, _ = apply(state, AdjustBreak{Direction: Decrease}, 10)
	assert.Equal(t, "01:00", state.View().BreakLabel)
	state, _ = apply(state, AdjustBreak{Direction: Increase}, 20)
	assert.Equal(t, "15:00", state.View().BreakLabel)
}

func TestAdjustmentsIgnoredDuringSession(t *testing.T) {
	running, _ := Reduce(NewState(), Toggle{})
	paused, _ := Reduce(running, Toggle{})

	for name, state := range map[string]State{"running": running, "paused": paused} {
		t.Run(name, func(t *testing.T) {
			for _, cmd := range []Command{
				AdjustFocus{Direction: Increase},
				AdjustFocus{Direction: Decrease},
				AdjustBreak{Direction: Increase},
				AdjustBreak{Direction: Decrease},
			} {
				next, effects := Reduce(state, cmd)
				assert.Empty(t, effects)
				assert.Equal(t, state, next)
			}
		})
	}
}

func TestUnknownDirectionIsIgnored(t *testing.T) {
	state := NewState()
	next, _ := Reduce(state, AdjustFocus{Direction: 3})
	assert.Equal(t, state, next)
	next, _ = Reduce(state, AdjustBreak{})
	assert.Equal(t, state, next)
}

func TestTickWithoutRunningSessionIsIgnored(t *testing.T) {
	idle := NewState()
	next, effects := Reduce(idle, Tick{})
	assert.Equal(t, idle, next)
	assert.Empty(t, effects)
}

func TestReduceDoesNotMutatePreviousState(t *testing.T) {
	before, _ := Reduce(NewState(), Toggle{})
	after, _ := Reduce(before, Tick{})

	assert.Equal(t, 1500, before.Session.Remaining)
	assert.Equal(t, 1499, after.Session.Remaining)
}

func TestProgressPercent(t *testing.T) {
	state, _ := Reduce(NewState(), Toggle{})
	state, _ = Reduce(state, Toggle{})
	assert.Equal(t, float64(0), state.View().Session.Progress)

	state, _ = Reduce(state, Toggle{})
	state, _ = apply(state, Tick{}, 300)
	assert.InDelta(t, 20, state.ProgressPercent(), 1)

	state, _ = apply(state, Tick{}, 450)
	assert.InDelta(t, 50, state.ProgressPercent(), 0.01)

	assert.Equal(t, float64(0), NewState().ProgressPercent())
}

func TestProgressDuringBreak(t *testing.T) {
	state, _ := Reduce(NewState(), Toggle{})
	state, _ = apply(state, Tick{}, 1561)

	require.Equal(t, KindOnBreak, state.Session.Kind)
	progress := state.View().Session.Progress
	assert.Greater(t, progress, float64(19))
	assert.Less(t, progress, float64(21))
}
