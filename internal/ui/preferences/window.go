// Package preferences implements the settings editor window.
package preferences

import (
	"fmt"
	"strconv"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"
	"fyne.io/fyne/v2/widget"

	"focustimer/internal/core/model"
)

// Window handles the preferences UI.
type Window struct {
	window      fyne.Window
	settings    model.Settings
	onSave      func(model.Settings)
	workMin     *widget.Entry
	breakMin    *widget.Entry
	longMin     *widget.Entry
	sessions    *widget.Entry
	sound       *widget.Check
	autoAdvance *widget.Check
}

// New creates a preferences window. onSave receives the edited
// settings; persistence and engine updates are the caller's business.
func New(app fyne.App, settings model.Settings, onSave func(model.Settings)) *Window {
	window := app.NewWindow("Focus Timer Settings")

	workMin := widget.NewEntry()
	breakMin := widget.NewEntry()
	longMin := widget.NewEntry()
	sessions := widget.NewEntry()

	sound := widget.NewCheck("Play sound on phase completion", nil)
	autoAdvance := widget.NewCheck("Automatically start the next phase", nil)

	form := container.NewVBox(
		widget.NewLabelWithStyle("Intervals", fyne.TextAlignLeading, fyne.TextStyle{Bold: true}),
		container.NewHBox(widget.NewLabel("Work"), workMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Break"), breakMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Long break"), longMin, widget.NewLabel("min")),
		container.NewHBox(widget.NewLabel("Sessions before long break"), sessions),
		sound,
		autoAdvance,
	)

	saveButton := widget.NewButton("Save", nil)
	cancelButton := widget.NewButton("Cancel", nil)
	buttons := container.NewHBox(saveButton, layout.NewSpacer(), cancelButton)

	content := container.NewBorder(nil, buttons, nil, nil, form)
	window.SetContent(content)
	window.Resize(fyne.NewSize(380, 320))

	prefs := &Window{
		window:      window,
		settings:    settings,
		onSave:      onSave,
		workMin:     workMin,
		breakMin:    breakMin,
		longMin:     longMin,
		sessions:    sessions,
		sound:       sound,
		autoAdvance: autoAdvance,
	}
	prefs.applySettings(settings)

	saveButton.OnTapped = prefs.handleSave
	cancelButton.OnTapped = func() {
		prefs.applySettings(prefs.settings)
		window.Hide()
	}
	window.SetCloseIntercept(func() {
		window.Hide()
	})

	return prefs
}

// Show displays the preferences window.
func (prefs *Window) Show() {
	prefs.window.Show()
	prefs.window.RequestFocus()
}

// Native exposes the underlying fyne window for dialogs.
func (prefs *Window) Native() fyne.Window {
	return prefs.window
}

// UpdateSettings replaces window values.
func (prefs *Window) UpdateSettings(settings model.Settings) {
	prefs.settings = settings
	prefs.applySettings(settings)
}

func (prefs *Window) applySettings(settings model.Settings) {
	prefs.workMin.SetText(fmt.Sprintf("%d", settings.WorkMinutes))
	prefs.breakMin.SetText(fmt.Sprintf("%d", settings.BreakMinutes))
	prefs.longMin.SetText(fmt.Sprintf("%d", settings.LongBreakMinutes))
	prefs.sessions.SetText(fmt.Sprintf("%d", settings.SessionsBeforeLongBreak))
	prefs.sound.SetChecked(settings.SoundEnabled)
	prefs.autoAdvance.SetChecked(settings.AutoAdvance)
}

func (prefs *Window) handleSave() {
	settings := prefs.settings

	if minutes, ok := parsePositiveInt(prefs.workMin.Text); ok {
		settings.WorkMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.breakMin.Text); ok {
		settings.BreakMinutes = minutes
	}
	if minutes, ok := parsePositiveInt(prefs.longMin.Text); ok {
		settings.LongBreakMinutes = minutes
	}
	if count, ok := parsePositiveInt(prefs.sessions.Text); ok {
		settings.SessionsBeforeLongBreak = count
	}
	settings.SoundEnabled = prefs.sound.Checked
	settings.AutoAdvance = prefs.autoAdvance.Checked

	prefs.settings = settings
	prefs.applySettings(settings)
	if prefs.onSave != nil {
		prefs.onSave(settings)
	}
	prefs.window.Hide()
}

func parsePositiveInt(value string) (int, bool) {
	parsed, err := strconv.Atoi(value)
	if err != nil || parsed <= 0 {
		return 0, false
	}
	return parsed, true
}
