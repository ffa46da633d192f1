package main

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/fang"
	"github.com/spf13/cobra"
)

const appName = "pomodoro"

// Version information (set at build time)
var version = "dev"

type options struct {
	work       int
	rest       int
	rounds     int
	configPath string
	logFile    string
	noSave     bool
	debug      bool
}

func main() {
	if err := fang.Execute(context.Background(), newRootCommand(), fang.WithVersion(version)); err != nil {
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   appName,
		Short: "Work/rest interval timer",
		Long: `Pomodoro alternates work and rest phases for a number of rounds.

The desktop window lives in the system tray; the terminal UI offers the
same controls. Durations are edited while the timer is paused and saved
to the settings file on exit.`,
		Example: `  # Desktop timer with the saved settings
  pomodoro

  # 50 minutes of work, 10 of rest, 3 rounds, in the terminal
  pomodoro tui --work 50 --rest 10 --rounds 3

  # Show where settings are stored
  pomodoro config path`,
		Version: version,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			return opts.validate()
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd.Context(), opts)
		},
		SilenceUsage: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.IntVar(&opts.work, "work", 0, "Work minutes for this session (1-99, default: from settings or 25)")
	flags.IntVar(&opts.rest, "rest", 0, "Rest minutes for this session (1-99, default: from settings or 5)")
	flags.IntVar(&opts.rounds, "rounds", 0, "Rounds before the cycle ends (1-99, default: from settings or 4)")
	flags.StringVar(&opts.configPath, "config", "", "Settings file (default: $XDG_CONFIG_HOME/pomodoro/settings.yaml)")
	flags.StringVar(&opts.logFile, "log-file", "", "Write logs to this file instead of stderr")
	flags.BoolVar(&opts.noSave, "no-save", false, "Do not write edited durations back to the settings file")
	flags.BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	guiCmd := &cobra.Command{
		Use:   "gui",
		Short: "Run the desktop timer (default)",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGUI(cmd.Context(), opts)
		},
	}

	tuiCmd := &cobra.Command{
		Use:   "tui",
		Short: "Run the timer in the terminal",
		Long: `Run the timer as a full-screen terminal UI.

Keys: space start/pause, r reset, tab edit durations, q quit.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd.Context(), opts)
		},
	}

	rootCmd.AddCommand(guiCmd, tuiCmd, newConfigCommand(opts))
	return rootCmd
}

func (opts *options) validate() error {
	for _, flag := range []struct {
		name  string
		value int
	}{
		{name: "work", value: opts.work},
		{name: "rest", value: opts.rest},
		{name: "rounds", value: opts.rounds},
	} {
		if flag.value < 0 || flag.value > 99 {
			return fmt.Errorf("--%s must be between 1 and 99, got %d", flag.name, flag.value)
		}
	}
	return nil
}
