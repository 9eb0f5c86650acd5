package model

// Focus duration bounds in minutes.
const (
	DefaultFocusMinutes = 25
	MinFocusMinutes     = 5
	MaxFocusMinutes     = 60
	FocusStepMinutes    = 5
)

// Break duration bounds in minutes.
const (
	DefaultBreakMinutes = 5
	MinBreakMinutes     = 1
	MaxBreakMinutes     = 15
	BreakStepMinutes    = 1
)

// Durations holds the configured focus and break lengths.
type Durations struct {
	FocusMinutes int
	BreakMinutes int
}

// DefaultDurations returns the 25/5 defaults that Stop restores.
func DefaultDurations() Durations {
	return Durations{
		FocusMinutes: DefaultFocusMinutes,
		BreakMinutes: DefaultBreakMinutes,
	}
}

// FocusSeconds returns the focus length in seconds.
func (durations Durations) FocusSeconds() int {
	return durations.FocusMinutes * 60
}

// BreakSeconds returns the break length in seconds.
func (durations Durations) BreakSeconds() int {
	return durations.BreakMinutes * 60
}
