package timekeeper

import (
	"time"

	"pomodoro/internal/core/session"
)

// EventType defines the type of Keeper event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventExpired     EventType = "expired"
)

// Event represents a Keeper update for observers.
type Event struct {
	Type      EventType
	SessionID string
	View      session.View
	// Alert is set on EventExpired only.
	Alert session.Alert
	At    time.Time
}
