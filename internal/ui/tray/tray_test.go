package tray

import (
	"testing"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/driver/desktop"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDesktop struct {
	desktop.App
	menu  *fyne.Menu
	icons []fyne.Resource
}

func (fake *fakeDesktop) SetSystemTrayMenu(menu *fyne.Menu) {
	fake.menu = menu
}

func (fake *fakeDesktop) SetSystemTrayIcon(icon fyne.Resource) {
	fake.icons = append(fake.icons, icon)
}

func (fake *fakeDesktop) lastIcon() fyne.Resource {
	if len(fake.icons) == 0 {
		return nil
	}
	return fake.icons[len(fake.icons)-1]
}

func TestNewBuildsMenu(t *testing.T) {
	fake := &fakeDesktop{}
	icon := fynetheme.HistoryIcon()

	manager := New(fake, icon, Callbacks{})

	require.NotNil(t, fake.menu)
	labels := make([]string, 0, len(fake.menu.Items))
	for _, item := range fake.menu.Items {
		labels = append(labels, item.Label)
	}
	assert.Equal(t, []string{"ready (paused)", "Show timer", "Start", "Reset", "", "Quit"}, labels)
	assert.True(t, fake.menu.Items[0].Disabled)
	assert.True(t, fake.menu.Items[5].IsQuit)
	assert.Equal(t, icon, fake.lastIcon())
	assert.Equal(t, "ready (paused)", manager.statusItem.Label)
}

func TestSetStatusAndRunning(t *testing.T) {
	fake := &fakeDesktop{}
	manager := New(fake, fynetheme.HistoryIcon(), Callbacks{})

	manager.SetStatus("Work 24:59 - Round 1/4")
	assert.Equal(t, "Work 24:59 - Round 1/4 (paused)", fake.menu.Items[0].Label)

	manager.SetRunning(true)
	assert.Equal(t, "Pause", fake.menu.Items[2].Label)
	assert.Equal(t, "Work 24:59 - Round 1/4", fake.menu.Items[0].Label)

	manager.SetRunning(false)
	assert.Equal(t, "Start", fake.menu.Items[2].Label)
	assert.Equal(t, "Work 24:59 - Round 1/4 (paused)", fake.menu.Items[0].Label)
}

func TestFlashSwapsIcon(t *testing.T) {
	fake := &fakeDesktop{}
	icon := fynetheme.HistoryIcon()
	manager := New(fake, icon, Callbacks{})
	fake.icons = nil

	manager.Flash(true)
	manager.Flash(true)
	require.Len(t, fake.icons, 1)
	assert.Equal(t, fynetheme.WarningIcon(), fake.lastIcon())

	manager.Flash(false)
	require.Len(t, fake.icons, 2)
	assert.Equal(t, icon, fake.lastIcon())
}

func TestMenuItemsInvokeCallbacks(t *testing.T) {
	fake := &fakeDesktop{}
	var shown, toggled, reset, quit int
	New(fake, nil, Callbacks{
		OnShow:      func() { shown++ },
		OnToggleRun: func() { toggled++ },
		OnReset:     func() { reset++ },
		OnQuit:      func() { quit++ },
	})

	for _, item := range fake.menu.Items {
		if item.Action != nil {
			item.Action()
		}
	}

	assert.Equal(t, []int{1, 1, 1, 1}, []int{shown, toggled, reset, quit})
	assert.Equal(t, fynetheme.WarningIcon(), fake.lastIcon())
}

func TestNilAppIsTolerated(t *testing.T) {
	manager := New(nil, nil, Callbacks{})

	manager.SetStatus("Rest 04:00 - Round 2/4")
	manager.SetRunning(true)
	manager.Flash(true)

	assert.Equal(t, "Rest 04:00 - Round 2/4", manager.statusItem.Label)
	assert.Equal(t, "Pause", manager.toggleItem.Label)
	assert.True(t, manager.flashing)
}
