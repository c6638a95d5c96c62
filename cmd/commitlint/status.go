package main

import (
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/report"
)

// createStatusCommand creates the status command.
func createStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "status",
		Short:        "Show config source and hook status",
		Long:         "Show which config file is in use and whether the commit-msg hook is installed",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}

			printer := report.New(cmd.OutOrStdout(), s.env.NoColor)
			if err := printer.Line("Project: %s", s.root); err != nil {
				return err
			}
			if err := printer.Line("Config:  %s", s.displaySource()); err != nil {
				return err
			}

			installer, err := newInstaller(s)
			if err != nil {
				return printer.Line("Hook:    not a git repository")
			}

			state, err := installer.Status()
			if err != nil {
				return err
			}
			return printer.Line("Hook:    %s (%s)", state, installer.Path())
		},
	}
}
