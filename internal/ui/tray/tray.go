// Package tray manages the system tray menu: timer status, quick
// controls, and the launch-at-login toggle.
package tray

import (
	"fmt"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShowTimer       func()
	OnStartWork       func()
	OnStartBreak      func()
	OnReset           func()
	OnPreferences     func()
	OnToggleAutostart func(enable bool)
	OnQuit            func()
}

// Icons holds the tray icons for the running and idle states.
type Icons struct {
	Active fyne.Resource
	Idle   fyne.Resource
}

// Manager handles system tray state.
type Manager struct {
	app           desktop.App
	icons         Icons
	statusItem    *fyne.MenuItem
	autostartItem *fyne.MenuItem
	callbacks     Callbacks
	statusLabel   string
	autostartOn   bool
}

// New creates a tray manager with the provided callbacks.
func New(app desktop.App, icons Icons, autostartOn bool, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		icons:       icons,
		callbacks:   callbacks,
		statusLabel: "idle",
		autostartOn: autostartOn,
	}

	manager.statusItem = fyne.NewMenuItem("Status: idle", nil)
	manager.statusItem.Disabled = true

	manager.autostartItem = fyne.NewMenuItem("Launch at login", func() {
		if manager.callbacks.OnToggleAutostart != nil {
			manager.callbacks.OnToggleAutostart(!manager.autostartOn)
		}
	})
	manager.autostartItem.Checked = autostartOn

	manager.refreshMenu()
	if icons.Idle != nil {
		app.SetSystemTrayIcon(icons.Idle)
	}
	return manager
}

// SetRunning swaps the tray icon between the active and idle logos.
func (manager *Manager) SetRunning(running bool) {
	icon := manager.icons.Idle
	if running {
		icon = manager.icons.Active
	}
	if icon != nil {
		manager.app.SetSystemTrayIcon(icon)
	}
}

// SetStatus updates the status label shown in the menu.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.statusItem.Label = fmt.Sprintf("Status: %s", status)
	manager.refreshMenu()
}

// SetAutostart updates the launch-at-login checkmark.
func (manager *Manager) SetAutostart(enabled bool) {
	manager.autostartOn = enabled
	manager.autostartItem.Checked = enabled
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	manager.app.SetSystemTrayMenu(fyne.NewMenu("Focus Timer",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShowTimer != nil {
				manager.callbacks.OnShowTimer()
			}
		}),
		fyne.NewMenuItem("Start work", func() {
			if manager.callbacks.OnStartWork != nil {
				manager.callbacks.OnStartWork()
			}
		}),
		fyne.NewMenuItem("Start break", func() {
			if manager.callbacks.OnStartBreak != nil {
				manager.callbacks.OnStartBreak()
			}
		}),
		fyne.NewMenuItem("Reset", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		fyne.NewMenuItem("Preferences", func() {
			if manager.callbacks.OnPreferences != nil {
				manager.callbacks.OnPreferences()
			}
		}),
		manager.autostartItem,
		fyne.NewMenuItem("Quit", func() {
			if manager.callbacks.OnQuit != nil {
				manager.callbacks.OnQuit()
			}
		}),
	))
}
