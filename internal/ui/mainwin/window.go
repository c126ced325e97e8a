// Package mainwin implements the timer window: the mm:ss display,
// progress bar, control buttons, stats line, and the phase-completion
// modal. It renders engine state and forwards user input; it never
// owns timer logic.
package mainwin

import (
	"fmt"
	"image/color"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"focustimer/internal/core/engine"
	"focustimer/internal/stats"
)

// Style carries presentation capabilities of the host platform.
// MacNative keeps buttons in the platform's default look instead of
// the colored variants used elsewhere.
type Style struct {
	MacNative bool
}

// Callbacks defines control handlers invoked from the window.
type Callbacks struct {
	OnStartWork  func()
	OnStartBreak func()
	OnReset      func()
}

// Window manages the main timer UI.
type Window struct {
	window      fyne.Window
	timerLabel  *canvas.Text
	phaseLabel  *canvas.Text
	progressBar *widget.ProgressBar
	statsLabel  *widget.Label
}

var (
	timerColor = color.NRGBA{R: 78, G: 205, B: 196, A: 255}
	titleColor = color.NRGBA{R: 255, G: 107, B: 107, A: 255}
	phaseColor = color.NRGBA{R: 74, G: 74, B: 74, A: 255}
	backdrop   = color.NRGBA{R: 255, G: 245, B: 225, A: 255}
)

// New creates the main window.
func New(app fyne.App, style Style, callbacks Callbacks) *Window {
	window := app.NewWindow("Focus Timer")
	if app.Icon() != nil {
		window.SetIcon(app.Icon())
	}

	titleLabel := canvas.NewText("Stay on task!", titleColor)
	titleLabel.Alignment = fyne.TextAlignCenter
	titleLabel.TextStyle = fyne.TextStyle{Bold: true}
	titleLabel.TextSize = 20

	timerLabel := canvas.NewText("25:00", timerColor)
	timerLabel.Alignment = fyne.TextAlignCenter
	timerLabel.TextStyle = fyne.TextStyle{Bold: true}
	timerLabel.TextSize = 72

	phaseLabel := canvas.NewText("ready", phaseColor)
	phaseLabel.Alignment = fyne.TextAlignCenter
	phaseLabel.TextSize = 14

	progressBar := widget.NewProgressBar()
	progressBar.TextFormatter = func() string {
		return fmt.Sprintf("%d%%", int(progressBar.Value*100))
	}

	statsLabel := widget.NewLabel("Come on, start your Pomodoro!")

	startButton := widget.NewButton("START", func() {
		if callbacks.OnStartWork != nil {
			callbacks.OnStartWork()
		}
	})
	breakButton := widget.NewButton("BREAK", func() {
		if callbacks.OnStartBreak != nil {
			callbacks.OnStartBreak()
		}
	})
	resetButton := widget.NewButton("RESET", func() {
		if callbacks.OnReset != nil {
			callbacks.OnReset()
		}
	})
	if !style.MacNative {
		startButton.Importance = widget.HighImportance
		breakButton.Importance = widget.SuccessImportance
		resetButton.Importance = widget.DangerImportance
	}

	controls := container.NewHBox(startButton, breakButton, resetButton)

	background := canvas.NewRectangle(backdrop)
	content := container.NewVBox(
		titleLabel,
		timerLabel,
		phaseLabel,
		progressBar,
		container.NewCenter(controls),
		statsLabel,
	)
	root := container.NewMax(background, container.NewPadded(content))

	window.SetContent(root)
	window.Resize(fyne.NewSize(500, 500))

	return &Window{
		window:      window,
		timerLabel:  timerLabel,
		phaseLabel:  phaseLabel,
		progressBar: progressBar,
		statsLabel:  statsLabel,
	}
}

// Show displays the window.
func (win *Window) Show() {
	win.window.Show()
}

// Native exposes the underlying fyne window for app wiring.
func (win *Window) Native() fyne.Window {
	return win.window
}

// SetState renders a timer state update. Must run on the UI thread.
func (win *Window) SetState(phase engine.Phase, remaining time.Duration, progress float64) {
	win.timerLabel.Text = FormatClock(remaining)
	win.timerLabel.Refresh()
	win.phaseLabel.Text = phaseCaption(phase)
	win.phaseLabel.Refresh()
	win.progressBar.SetValue(progress)
}

// SetStats renders the statistics line. Must run on the UI thread.
func (win *Window) SetStats(snapshot stats.Snapshot) {
	win.statsLabel.SetText(fmt.Sprintf(
		"today focus: %d tomatoes\ntotal focus: %d mins",
		snapshot.CompletedPomodoros,
		snapshot.TotalFocusMinutes,
	))
}

// ShowCompletion opens the modal that announces the ended phase. It
// blocks interaction with this window only; the engine's state is
// already final when it appears.
func (win *Window) ShowCompletion(ended engine.Phase) {
	win.window.RequestFocus()
	dialog.ShowInformation("Pomodoro Timer", CompletionMessage(ended), win.window)
}

// FormatClock renders a countdown as mm:ss.
func FormatClock(remaining time.Duration) string {
	if remaining < 0 {
		remaining = 0
	}
	seconds := int(remaining.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}

// CompletionMessage returns the modal text for a finished phase.
func CompletionMessage(ended engine.Phase) string {
	if ended == engine.PhaseWork {
		return "It's time to take a break!"
	}
	return "It's time to focus!"
}

func phaseCaption(phase engine.Phase) string {
	switch phase {
	case engine.PhaseWork:
		return "focus"
	case engine.PhaseBreak:
		return "short break"
	case engine.PhaseLongBreak:
		return "long break"
	default:
		return "ready"
	}
}
