package tray

import (
	"fmt"

	"pomodoro/internal/ui/theme"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	fynetheme "fyne.io/fyne/v2/theme"
)

// Callbacks defines tray action handlers.
type Callbacks struct {
	OnShow      func()
	OnToggleRun func()
	OnReset     func()
	OnQuit      func()
}

// Manager handles system tray state.
type Manager struct {
	app         desktop.App
	statusItem  *fyne.MenuItem
	toggleItem  *fyne.MenuItem
	callbacks   Callbacks
	icon        fyne.Resource
	running     bool
	flashing    bool
	statusLabel string
}

// New creates a tray manager with the provided callbacks. icon is the
// resting tray icon.
func New(app desktop.App, icon fyne.Resource, callbacks Callbacks) *Manager {
	manager := &Manager{
		app:         app,
		callbacks:   callbacks,
		icon:        icon,
		statusLabel: "ready",
	}

	manager.statusItem = fyne.NewMenuItem("", nil)
	manager.statusItem.Disabled = true
	manager.toggleItem = fyne.NewMenuItem(theme.ToggleLabel(false), func() {
		if manager.callbacks.OnToggleRun != nil {
			manager.callbacks.OnToggleRun()
		}
	})

	manager.refreshStatus()
	manager.applyIcon()
	return manager
}

// SetStatus updates the status label.
func (manager *Manager) SetStatus(status string) {
	manager.statusLabel = status
	manager.refreshStatus()
}

// SetRunning updates the start/pause item.
func (manager *Manager) SetRunning(running bool) {
	if manager.running == running {
		return
	}
	manager.running = running
	manager.toggleItem.Label = theme.ToggleLabel(running)
	manager.refreshStatus()
}

// Flash switches the tray icon to its alert form while on is true.
func (manager *Manager) Flash(on bool) {
	if manager.flashing == on {
		return
	}
	manager.flashing = on
	manager.applyIcon()
}

func (manager *Manager) applyIcon() {
	if manager.app == nil {
		return
	}
	if manager.flashing || manager.icon == nil {
		manager.app.SetSystemTrayIcon(fynetheme.WarningIcon())
		return
	}
	manager.app.SetSystemTrayIcon(manager.icon)
}

func (manager *Manager) refreshStatus() {
	status := manager.statusLabel
	if !manager.running {
		status = fmt.Sprintf("%s (paused)", status)
	}
	manager.statusItem.Label = status
	manager.refreshMenu()
}

func (manager *Manager) refreshMenu() {
	if manager.app == nil {
		return
	}
	quit := fyne.NewMenuItem("Quit", func() {
		if manager.callbacks.OnQuit != nil {
			manager.callbacks.OnQuit()
		}
	})
	quit.IsQuit = true

	manager.app.SetSystemTrayMenu(fyne.NewMenu("Pomodoro",
		manager.statusItem,
		fyne.NewMenuItem("Show timer", func() {
			if manager.callbacks.OnShow != nil {
				manager.callbacks.OnShow()
			}
		}),
		manager.toggleItem,
		fyne.NewMenuItem("Reset", func() {
			if manager.callbacks.OnReset != nil {
				manager.callbacks.OnReset()
			}
		}),
		fyne.NewMenuItemSeparator(),
		quit,
	))
}
