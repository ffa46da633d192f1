package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/alert"
	"pomodoro/internal/ui/theme"
	"pomodoro/internal/ui/timerview"
	"pomodoro/internal/ui/tray"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/driver/desktop"
	fynetheme "fyne.io/fyne/v2/theme"
	"github.com/spf13/afero"
)

func runGUI(ctx context.Context, opts *options) error {
	logger, closeLog, err := openLogger(opts, os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()

	guard, err := platform.AcquireSingleInstance(appName)
	if err != nil {
		return fmt.Errorf("single instance: %w", err)
	}
	defer func() {
		_ = guard.Release()
	}()

	current := newSession(logger, afero.NewOsFs(), opts, time.Second)
	defer current.Close()
	keeper := current.keeper

	fyneApp := app.NewWithID("io.pomodoro.timer")
	fyneApp.SetIcon(fynetheme.HistoryIcon())
	view := timerview.New(fyneApp, keeper)

	var trayManager *tray.Manager
	if desktopApp, ok := fyneApp.(desktop.App); ok {
		trayManager = tray.New(desktopApp, fyneApp.Icon(), tray.Callbacks{
			OnShow: view.Show,
			OnToggleRun: func() {
				keeper.ToggleRun()
			},
			OnReset: keeper.Reset,
			OnQuit:  fyneApp.Quit,
		})
		view.Window().SetCloseIntercept(func() {
			view.Window().Hide()
		})
	} else {
		logger.Warn("system tray unsupported on this platform")
		view.Window().SetMaster()
	}

	alerts := alert.New(alert.Pattern(platform.AlertPattern()), func(on bool) {
		fyne.Do(func() {
			view.Flash(on)
			if trayManager != nil {
				trayManager.Flash(on)
			}
		})
	})

	keeper.SetAlerter(timekeeper.AlerterFunc(func(ended timekeeper.Phase, next timekeeper.Snapshot) {
		title, body := theme.PhaseEndedMessage(ended, next)
		fyne.Do(func() {
			fyneApp.SendNotification(fyne.NewNotification(title, body))
		})
		alerts.Play(ctx)
	}))

	events := keeper.Subscribe(16)
	go func() {
		for event := range events {
			snapshot := event.Snapshot
			fyne.Do(func() {
				view.Refresh(snapshot)
				if trayManager != nil {
					trayManager.SetRunning(snapshot.IsRunning)
					trayManager.SetStatus(theme.StatusLine(snapshot))
				}
			})
		}
	}()

	if trayManager != nil {
		trayManager.SetStatus(theme.StatusLine(keeper.Snapshot()))
	}
	view.Show()
	fyneApp.Run()

	keeper.Close()
	alerts.Stop()
	return nil
}
