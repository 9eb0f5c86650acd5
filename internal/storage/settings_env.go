package storage

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"pomodoro/internal/logging"
	"pomodoro/internal/ui/preferences"
)

// envSettings uses pointers so unset variables leave file values alone.
type envSettings struct {
	AlertEnabled *bool          `env:"POMODORO_ALERT_ENABLED"`
	AlertVolume  *float64       `env:"POMODORO_ALERT_VOLUME"`
	LogLevel     *string        `env:"POMODORO_LOG_LEVEL"`
	TickInterval *time.Duration `env:"POMODORO_TICK_INTERVAL"`
}

// ApplyEnv overrides settings from POMODORO_* environment variables.
func ApplyEnv(settings preferences.Settings) (preferences.Settings, error) {
	var raw envSettings
	if err := env.Parse(&raw); err != nil {
		return settings, fmt.Errorf("parse env: %w", err)
	}

	if raw.AlertEnabled != nil {
		settings.AlertEnabled = *raw.AlertEnabled
	}
	if raw.AlertVolume != nil {
		if !preferences.ValidVolume(*raw.AlertVolume) {
			return settings, fmt.Errorf("POMODORO_ALERT_VOLUME out of range: %v", *raw.AlertVolume)
		}
		settings.AlertVolume = *raw.AlertVolume
	}
	if raw.LogLevel != nil {
		if _, err := logging.ParseLevel(*raw.LogLevel); err != nil {
			return settings, fmt.Errorf("POMODORO_LOG_LEVEL: %w", err)
		}
		settings.LogLevel = *raw.LogLevel
	}
	if raw.TickInterval != nil {
		if *raw.TickInterval <= 0 {
			return settings, fmt.Errorf("POMODORO_TICK_INTERVAL must be positive: %v", *raw.TickInterval)
		}
		settings.TickInterval = *raw.TickInterval
	}
	return settings, nil
}
