package main

import (
	"log"
	"log/slog"
	"os"

	"pomodoro/internal/alert"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/logging"
	"pomodoro/internal/platform"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/pomodoro"
	"pomodoro/internal/ui/preferences"
	"pomodoro/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
)

const appName = "Pomodoro"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	settings, err := storage.LoadSettings(appName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}
	settings, err = storage.ApplyEnv(settings)
	if err != nil {
		log.Printf("environment: %v", err)
	}

	logger, logLevel := logging.NewLeveled(os.Stderr, settings.LogLevel)
	slog.SetDefault(logger)

	player := alert.NewPlayer(alertConfig(settings))
	keeper := timekeeper.New(timekeeper.Config{
		TickInterval: settings.TickInterval,
		Notifier:     player,
		Logger:       logger,
	})
	defer keeper.Close()

	fyneApp := app.NewWithID("com.pomodoro.app")
	fyneApp.SetIcon(theme.HistoryIcon())

	mainWindow := pomodoro.New(fyneApp, keeper)

	prefsWindow := preferences.New(fyneApp, settings, func(updated preferences.Settings) {
		settings = updated
		player.UpdateConfig(alertConfig(settings))
		if level, err := logging.ParseLevel(settings.LogLevel); err == nil {
			logLevel.Set(level)
		}
		if err := storage.SaveSettings(appName, settings); err != nil {
			logger.Warn("save settings", "err", err)
		}
	})

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, tray.Callbacks{
			OnShow:        mainWindow.Show,
			OnPreferences: prefsWindow.Show,
			OnTogglePause: func() {
				keeper.Toggle()
			},
			OnStop: func() {
				keeper.Stop()
			},
			OnQuit: func() {
				fyneApp.Quit()
			},
		})
		desktopApp.SetSystemTrayIcon(theme.HistoryIcon())
		mainWindow.Window().SetCloseIntercept(func() {
			mainWindow.Window().Hide()
		})
	} else {
		logger.Info("system tray unsupported on this platform")
		mainWindow.Window().SetMaster()
	}

	mainWindow.Window().SetMainMenu(fyne.NewMainMenu(
		fyne.NewMenu("Timer", fyne.NewMenuItem("Preferences", prefsWindow.Show)),
	))

	events := keeper.Subscribe(16)
	go func() {
		for event := range events {
			view := event.View
			fyne.Do(func() {
				mainWindow.Render(view)
				if trayManager != nil {
					trayManager.Apply(view)
				}
			})
		}
	}()

	mainWindow.Show()
	fyneApp.Run()
}

func alertConfig(settings preferences.Settings) alert.Config {
	return alert.Config{
		Enabled: settings.AlertEnabled,
		Volume:  settings.AlertVolume,
	}
}
