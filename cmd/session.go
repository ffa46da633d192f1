package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"pomodoro/internal/core/model"
	"pomodoro/internal/core/settings"
	"pomodoro/internal/core/timekeeper"
	"pomodoro/internal/storage"
	"pomodoro/internal/ui/clock"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"
)

// session owns the timer for one run of a front-end and persists the
// durations when it ends.
type session struct {
	logger     *log.Logger
	repository *storage.Repository
	store      *settings.Store
	keeper     *timekeeper.TimeKeeper
	save       bool
	logged     chan struct{}
}

func newLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix:          appName,
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// openLogger returns a logger writing to the --log-file, or to fallback.
// The returned function closes the log file.
func openLogger(opts *options, fallback io.Writer) (*log.Logger, func(), error) {
	if opts.logFile == "" {
		return newLogger(fallback, opts.debug), func() {}, nil
	}
	file, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	return newLogger(file, opts.debug), func() { _ = file.Close() }, nil
}

func repositoryFor(fs afero.Fs, opts *options) *storage.Repository {
	path := opts.configPath
	if path == "" {
		path = storage.DefaultPath(appName)
	}
	return storage.NewRepository(fs, path)
}

func newSession(logger *log.Logger, fs afero.Fs, opts *options, tickInterval time.Duration) *session {
	repository := repositoryFor(fs, opts)
	config, err := repository.Load()
	switch {
	case errors.Is(err, storage.ErrInvalidSettings):
		logger.Warn("ignoring invalid settings", "path", repository.Path(), "err", err)
	case err != nil:
		logger.Warn("using default settings", "path", repository.Path(), "err", err)
	}

	config = applyOverrides(config, opts)
	logger.Info("timer configured",
		"work", config.WorkMinutes, "rest", config.RestMinutes, "rounds", config.TotalRounds)

	store := settings.NewStore(config)
	current := &session{
		logger:     logger,
		repository: repository,
		store:      store,
		keeper:     timekeeper.New(store, timekeeper.Config{TickInterval: tickInterval}),
		save:       !opts.noSave,
		logged:     make(chan struct{}),
	}
	go current.logEvents(current.keeper.Subscribe(64))
	return current
}

func applyOverrides(config model.Config, opts *options) model.Config {
	if opts.work > 0 {
		config.WorkMinutes = opts.work
	}
	if opts.rest > 0 {
		config.RestMinutes = opts.rest
	}
	if opts.rounds > 0 {
		config.TotalRounds = opts.rounds
	}
	return config
}

func (current *session) logEvents(events <-chan timekeeper.Event) {
	defer close(current.logged)
	for event := range events {
		snapshot := event.Snapshot
		switch event.Type {
		case timekeeper.EventPhaseEnded:
			current.logger.Info("phase ended",
				"ended", event.Ended,
				"next", snapshot.Phase,
				"round", snapshot.CurrentRound,
				"rounds", snapshot.TotalRounds,
				"running", snapshot.IsRunning)
		case timekeeper.EventStateChange:
			current.logger.Info("timer state changed",
				"running", snapshot.IsRunning,
				"phase", snapshot.Phase,
				"remaining", clock.Format(snapshot.RemainingSeconds))
		case timekeeper.EventConfigChange:
			current.logger.Debug("configuration edited",
				"work", current.store.Text(settings.FieldWork),
				"rest", current.store.Text(settings.FieldRest),
				"rounds", current.store.Text(settings.FieldRounds))
		case timekeeper.EventTick:
			current.logger.Debug("tick", "phase", snapshot.Phase, "remaining", snapshot.RemainingSeconds)
		}
	}
}

// Close stops the timer and saves the last valid durations.
func (current *session) Close() {
	current.keeper.Close()
	<-current.logged

	if !current.save {
		return
	}
	config := current.store.Effective()
	if err := current.repository.Save(config); err != nil {
		current.logger.Error("save settings", "path", current.repository.Path(), "err", err)
		return
	}
	current.logger.Debug("settings saved", "path", current.repository.Path())
}
