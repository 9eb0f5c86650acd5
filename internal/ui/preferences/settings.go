package preferences

import "time"

// Volume bounds for the alert, as base-2 exponents.
const (
	MinAlertVolume = -4.0
	MaxAlertVolume = 1.0
)

// Settings defines editable user preferences.
type Settings struct {
	AlertEnabled bool
	AlertVolume  float64
	LogLevel     string

	// TickInterval is one second in normal use. It is only overridden from
	// the environment for demos.
	TickInterval time.Duration
}

// DefaultSettings returns default settings for Pomodoro.
func DefaultSettings() Settings {
	return Settings{
		AlertEnabled: true,
		AlertVolume:  0,
		LogLevel:     "info",
		TickInterval: time.Second,
	}
}

// ValidVolume reports whether volume is within the supported range.
func ValidVolume(volume float64) bool {
	return volume >= MinAlertVolume && volume <= MaxAlertVolume
}
