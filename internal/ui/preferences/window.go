package preferences

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"
)

var logLevels = []string{"debug", "info", "warn", "error"}

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    Settings
	onSave      func(Settings)
	alertCheck  *widget.Check
	volume      *widget.Slider
	volumeLabel *widget.Label
	logLevel    *widget.Select
}

// New creates a preferences window.
func New(app fyne.App, settings Settings, onSave func(Settings)) *Window {
	window := app.NewWindow("Pomodoro Settings")

	alertCheck := widget.NewCheck("Play a sound when a session ends", nil)
	volumeLabel := widget.NewLabel("")
	volume := widget.NewSlider(MinAlertVolume, MaxAlertVolume)
	volume.Step = 0.5
	volume.OnChanged = func(value float64) {
		volumeLabel.SetText(volumeText(value))
	}
	logLevel := widget.NewSelect(logLevels, nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Alert", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		alertCheck,
		container.NewBorder(nil, nil, widget.NewLabel("Volume"), volumeLabel, volume),
		widget.NewLabelWithStyle("Diagnostics", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Log level"), logLevel),
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	window.SetContent(container.NewBorder(nil, buttons, nil, nil, form))
	window.Resize(fyne.NewSize(380, 240))

	prefs := &Window{
		window:      window,
		onSave:      onSave,
		alertCheck:  alertCheck,
		volume:      volume,
		volumeLabel: volumeLabel,
		logLevel:    logLevel,
	}
	prefs.UpdateSettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.UpdateSettings(prefs.settings)
		window.Hide()
	}

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings Settings) {
	prefs.settings = settings
	prefs.alertCheck.SetChecked(settings.AlertEnabled)
	prefs.volume.SetValue(settings.AlertVolume)
	prefs.volumeLabel.SetText(volumeText(settings.AlertVolume))
	prefs.logLevel.SetSelected(settings.LogLevel)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings
	settings.AlertEnabled = prefs.alertCheck.Checked
	if ValidVolume(prefs.volume.Value) {
		settings.AlertVolume = prefs.volume.Value
	}
	if prefs.logLevel.Selected != "" {
		settings.LogLevel = prefs.logLevel.Selected
	}

	prefs.settings = settings
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func volumeText(value float64) string {
	return fmt.Sprintf("%+.1f", value)
}
