package pomodoro

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"pomodoro/internal/core/session"
)

// Controller is the subset of the timekeeper the window drives.
type Controller interface {
	Toggle()
	Stop()
	AdjustFocus(direction session.Direction)
	AdjustBreak(direction session.Direction)
	View() session.View
}

// Window renders the timer and forwards button presses to the Controller.
type Window struct {
	window     fyne.Window
	controller Controller

	focusLabel    *widget.Label
	breakLabel    *widget.Label
	decreaseFocus *widget.Button
	increaseFocus *widget.Button
	decreaseBreak *widget.Button
	increaseBreak *widget.Button
	playPause     *widget.Button
	stop          *widget.Button

	sessionArea   *fyne.Container
	titleLabel    *widget.Label
	subtitleLabel *widget.Label
	pausedLabel   *widget.Label
	progress      *widget.ProgressBar
}

// New creates the main window.
func New(app fyne.App, controller Controller) *Window {
	pomodoro := &Window{
		window:     app.NewWindow("Pomodoro"),
		controller: controller,
	}

	pomodoro.focusLabel = widget.NewLabel("")
	pomodoro.breakLabel = widget.NewLabel("")
	pomodoro.decreaseFocus = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		pomodoro.dispatch(func() { controller.AdjustFocus(session.Decrease) })
	})
	pomodoro.increaseFocus = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		pomodoro.dispatch(func() { controller.AdjustFocus(session.Increase) })
	})
	pomodoro.decreaseBreak = widget.NewButtonWithIcon("", theme.ContentRemoveIcon(), func() {
		pomodoro.dispatch(func() { controller.AdjustBreak(session.Decrease) })
	})
	pomodoro.increaseBreak = widget.NewButtonWithIcon("", theme.ContentAddIcon(), func() {
		pomodoro.dispatch(func() { controller.AdjustBreak(session.Increase) })
	})

	pomodoro.playPause = widget.NewButtonWithIcon("", theme.MediaPlayIcon(), func() {
		pomodoro.dispatch(controller.Toggle)
	})
	pomodoro.playPause.Importance = widget.HighImportance
	pomodoro.stop = widget.NewButtonWithIcon("", theme.MediaStopIcon(), func() {
		pomodoro.dispatch(controller.Stop)
	})

	pomodoro.titleLabel = widget.NewLabelWithStyle("", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	pomodoro.subtitleLabel = widget.NewLabel("")
	pomodoro.pausedLabel = widget.NewLabelWithStyle("PAUSED", fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	pomodoro.progress = widget.NewProgressBar()
	pomodoro.progress.Max = 100

	durations := container.NewGridWithColumns(2,
		container.NewHBox(pomodoro.focusLabel, pomodoro.decreaseFocus, pomodoro.increaseFocus),
		container.NewHBox(layout.NewSpacer(), pomodoro.breakLabel, pomodoro.decreaseBreak, pomodoro.increaseBreak),
	)
	controls := container.NewHBox(pomodoro.playPause, pomodoro.stop)
	pomodoro.sessionArea = container.NewVBox(
		pomodoro.titleLabel,
		pomodoro.subtitleLabel,
		pomodoro.pausedLabel,
		pomodoro.progress,
	)

	pomodoro.window.SetContent(container.NewVBox(durations, controls, pomodoro.sessionArea))
	pomodoro.window.Resize(fyne.NewSize(520, 260))
	pomodoro.Render(controller.View())

	return pomodoro
}

// Window returns the underlying Fyne window.
func (pomodoro *Window) Window() fyne.Window {
	return pomodoro.window
}

// Show displays the window.
func (pomodoro *Window) Show() {
	pomodoro.window.Show()
	pomodoro.window.RequestFocus()
}

// Render applies view to the widgets. It must run on the Fyne main thread.
func (pomodoro *Window) Render(view session.View) {
	pomodoro.focusLabel.SetText("Focus Duration: " + view.FocusLabel)
	pomodoro.breakLabel.SetText("Break Duration: " + view.BreakLabel)

	for _, button := range []*widget.Button{pomodoro.decreaseFocus, pomodoro.increaseFocus, pomodoro.decreaseBreak, pomodoro.increaseBreak} {
		setEnabled(button, view.AdjustEnabled)
	}
	setEnabled(pomodoro.stop, view.StopEnabled)

	running := view.Session != nil && view.Session.Running
	if running {
		pomodoro.playPause.SetIcon(theme.MediaPauseIcon())
	} else {
		pomodoro.playPause.SetIcon(theme.MediaPlayIcon())
	}

	if view.Session == nil {
		pomodoro.sessionArea.Hide()
		return
	}

	pomodoro.titleLabel.SetText(view.Session.Title)
	pomodoro.subtitleLabel.SetText(view.Session.Subtitle())
	if running {
		pomodoro.pausedLabel.Hide()
	} else {
		pomodoro.pausedLabel.Show()
	}
	pomodoro.progress.SetValue(view.Session.Progress)
	pomodoro.sessionArea.Show()
}

func (pomodoro *Window) dispatch(command func()) {
	command()
	pomodoro.Render(pomodoro.controller.View())
}

func setEnabled(button *widget.Button, enabled bool) {
	if enabled {
		button.Enable()
		return
	}
	button.Disable()
}
