package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/platform"
	"pomodoro/internal/ui/alert"
	"pomodoro/internal/ui/tui"

	tea "charm.land/bubbletea/v2"
	"github.com/spf13/afero"
	"golang.org/x/term"
)

var errNotTerminal = errors.New("the terminal UI needs an interactive terminal")

func runTUI(ctx context.Context, opts *options) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) || !term.IsTerminal(int(os.Stdout.Fd())) {
		return errNotTerminal
	}

	// Logging to stderr would tear the alternate screen.
	logger, closeLog, err := openLogger(opts, io.Discard)
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

	program := tea.NewProgram(tui.New(keeper, keeper.Subscribe(64)))

	alerts := alert.New(alert.Pattern(platform.AlertPattern()), func(on bool) {
		program.Send(tui.FlashMsg(on))
	})

	keeper.SetAlerter(timekeeper.AlerterFunc(func(timekeeper.Phase, timekeeper.Snapshot) {
		alerts.Play(ctx)
	}))

	_, err = program.Run()
	keeper.Close()
	alerts.Stop()
	if err != nil {
		return fmt.Errorf("run terminal ui: %w", err)
	}
	return nil
}
