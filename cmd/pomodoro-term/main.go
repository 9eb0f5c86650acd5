// Command pomodoro-term runs the Pomodoro timer in an interactive terminal.
//
// Usage:
//
//	pomodoro-term [flags]
//
// Flags:
//
//	-config string     Settings file (default: user config dir)
//	-log-level string  Log level: debug, info, warn, error
//	-no-alert          Disable the audible alert
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"pomodoro/internal/alert"
	"pomodoro/internal/console"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/logging"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/preferences"
)

const appName = "Pomodoro"

func main() {
	configPath := flag.String("config", "", "Settings file (default: user config dir)")
	logLevel := flag.String("log-level", "", "Log level: debug, info, warn, error")
	noAlert := flag.Bool("no-alert", false, "Disable the audible alert")
	flag.Parse()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Fatalf("single instance: %v", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := loadSettings(*configPath)
	if err != nil {
		log.Printf("settings: %v", err)
	}
	if *logLevel != "" {
		if _, err := logging.ParseLevel(*logLevel); err != nil {
			log.Fatalf("-log-level: %v", err)
		}
		settings.LogLevel = *logLevel
	}
	if *noAlert {
		settings.AlertEnabled = false
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM)
	go func() {
		select {
		case <-signals:
			cancel()
		case <-ctx.Done():
		}
	}()

	keeper := timekeeper.New(timekeeper.Config{
		TickInterval: settings.TickInterval,
		Notifier:     alert.NewPlayer(alertConfig(settings)),
	})
	defer keeper.Close()

	term, err := console.New(keeper)
	if err != nil {
		log.Fatalf("console: %v", err)
	}
	logger := logging.New(term.Stdout(), settings.LogLevel)
	// The keeper logs through the default logger when none is configured.
	slog.SetDefault(logger)

	events := keeper.Subscribe(64)
	go func() {
		for event := range events {
			term.HandleEvent(event)
		}
	}()

	term.Run(ctx, cancel)
}

// loadSettings reads the settings file and applies POMODORO_* overrides. A
// file error still returns defaults with the environment applied.
func loadSettings(configPath string) (preferences.Settings, error) {
	var (
		settings preferences.Settings
		loadErr  error
	)
	if configPath != "" {
		settings, loadErr = storage.LoadSettingsFile(configPath)
	} else {
		settings, loadErr = storage.LoadSettings(appName)
	}
	if loadErr != nil {
		loadErr = fmt.Errorf("load settings: %w", loadErr)
	}

	settings, envErr := storage.ApplyEnv(settings)
	return settings, errors.Join(loadErr, envErr)
}

func alertConfig(settings preferences.Settings) alert.Config {
	return alert.Config{
		Enabled: settings.AlertEnabled,
		Volume:  settings.AlertVolume,
	}
}
