package main

import (
	"errors"
	"fmt"

	"pomodoro/internal/storage"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newConfigCommand(opts *options) *cobra.Command {
	return newConfigCommandFs(opts, afero.NewOsFs())
}

func newConfigCommandFs(opts *options, fs afero.Fs) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect or reset the saved durations",
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the settings file location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), repositoryFor(fs, opts).Path())
			return err
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Print the durations the timer would start with",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repository := repositoryFor(fs, opts)
			config, err := repository.Load()
			switch {
			case errors.Is(err, storage.ErrInvalidSettings):
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: %v\n", err)
			case err != nil:
				return err
			}
			config = applyOverrides(config, opts)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "work_minutes: %d\n", config.WorkMinutes)
			fmt.Fprintf(out, "rest_minutes: %d\n", config.RestMinutes)
			fmt.Fprintf(out, "total_rounds: %d\n", config.TotalRounds)
			return nil
		},
	}

	resetCmd := &cobra.Command{
		Use:   "reset",
		Short: "Delete the settings file so defaults apply",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			repository := repositoryFor(fs, opts)
			if err := repository.Remove(); err != nil {
				return err
			}
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", repository.Path())
			return err
		},
	}

	configCmd.AddCommand(pathCmd, showCmd, resetCmd)
	return configCmd
}
