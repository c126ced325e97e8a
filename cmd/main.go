package main

import (
	"fmt"
	"log"
	"os"
	"runtime"
	"time"

	"focustimer/internal/core/engine"
	"focustimer/internal/core/model"
	"focustimer/internal/platform"
	"focustimer/internal/stats"
	"focustimer/internal/storage"
	"focustimer/internal/ui/mainwin"
	"focustimer/internal/ui/preferences"
	"focustimer/internal/ui/tray"
	"focustimer/resources"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/driver/desktop"
)

const appName = "FocusTimer"

func main() {
	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		log.Printf("single instance: %v", err)
		return
	}
	defer func() {
		_ = guard.Release()
	}()

	fyneApp := app.NewWithID("com.focustimer.app")
	fyneApp.SetIcon(resources.MustLogo("tomato_active.png"))

	// Load failures fall back to defaults; startup never blocks on this.
	settings, err := storage.LoadSettings(storage.SettingsFileName)
	if err != nil {
		log.Printf("load settings: %v", err)
	}

	tracker := stats.New()
	timer := engine.New(settings, tracker, engine.Config{TickInterval: time.Second})
	sound := platform.NewSoundPlayer()
	service := platform.NewService()

	timerWindow := mainwin.New(fyneApp, mainwin.Style{MacNative: runtime.GOOS == "darwin"}, mainwin.Callbacks{
		OnStartWork:  timer.StartWork,
		OnStartBreak: timer.StartBreak,
		OnReset:      timer.Reset,
	})

	prefsWindow := preferences.New(fyneApp, timer.Settings(), func(updated model.Settings) {
		updated = updated.Normalize()
		timer.UpdateSettings(updated)
		if err := storage.SaveSettings(storage.SettingsFileName, updated); err != nil {
			dialog.ShowError(fmt.Errorf("save settings: %w", err), timerWindow.Native())
		}
	})

	trayManager := setupTray(fyneApp, service, timer, timerWindow, prefsWindow)

	events := timer.Subscribe(8)
	go func() {
		for event := range events {
			event := event
			switch event.Type {
			case engine.EventStateChange, engine.EventProgress:
				fyne.Do(func() {
					timerWindow.SetState(event.Phase, event.Remaining, event.Progress)
					timerWindow.SetStats(tracker.Snapshot())
					if trayManager != nil {
						trayManager.SetStatus(statusLine(event.Phase, event.Remaining))
						if event.Type == engine.EventStateChange {
							trayManager.SetRunning(event.Phase != engine.PhaseIdle)
						}
					}
				})
			case engine.EventPhaseComplete:
				if timer.Settings().SoundEnabled {
					sound.Play()
				}
				fyne.Do(func() {
					timerWindow.SetStats(tracker.Snapshot())
					timerWindow.ShowCompletion(event.Phase)
				})
			}
		}
	}()

	snap := timer.Snapshot()
	timerWindow.SetState(snap.Phase, snap.Remaining, snap.Progress)
	timerWindow.SetStats(tracker.Snapshot())

	timer.Start()
	timerWindow.Show()
	fyneApp.Run()
	timer.Stop()
}

func setupTray(fyneApp fyne.App, service platform.Service, timer *engine.Engine, timerWindow *mainwin.Window, prefsWindow *preferences.Window) *tray.Manager {
	desktopApp, ok := fyneApp.(desktop.App)
	if !ok {
		log.Printf("system tray unsupported on this platform")
		return nil
	}

	icons := tray.Icons{
		Active: resources.MustLogo("tomato_active.png"),
		Idle:   resources.MustLogo("tomato_idle.png"),
	}

	var manager *tray.Manager
	manager = tray.New(desktopApp, icons, service.AutostartEnabled(appName), tray.Callbacks{
		OnShowTimer: func() {
			timerWindow.Show()
		},
		OnStartWork:  timer.StartWork,
		OnStartBreak: timer.StartBreak,
		OnReset:      timer.Reset,
		OnPreferences: func() {
			prefsWindow.Show()
		},
		OnToggleAutostart: func(enable bool) {
			if err := toggleAutostart(service, enable); err != nil {
				log.Printf("autostart: %v", err)
				return
			}
			manager.SetAutostart(enable)
		},
		OnQuit: func() {
			fyneApp.Quit()
		},
	})
	return manager
}

func toggleAutostart(service platform.Service, enable bool) error {
	if !enable {
		return service.DisableAutostart(appName)
	}
	execPath, err := os.Executable()
	if err != nil {
		return fmt.Errorf("resolve executable: %w", err)
	}
	return service.EnableAutostart(appName, execPath)
}

func statusLine(phase engine.Phase, remaining time.Duration) string {
	switch phase {
	case engine.PhaseWork:
		return "focus " + mainwin.FormatClock(remaining)
	case engine.PhaseBreak:
		return "break " + mainwin.FormatClock(remaining)
	case engine.PhaseLongBreak:
		return "long break " + mainwin.FormatClock(remaining)
	default:
		return "idle"
	}
}
