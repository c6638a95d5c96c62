package main

import (
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/hook"
	"github.com/wizzomafizzo/commitlint/internal/report"
)

// createUninstallCommand creates the uninstall command.
func createUninstallCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "uninstall",
		Short:        "Remove the git commit-msg hook",
		Long:         "Remove the commit-msg hook if it was installed by commitlint",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			installer, err := newInstaller(s)
			if err != nil {
				return err
			}

			state, err := installer.Uninstall()
			if err != nil {
				return err
			}

			printer := report.New(cmd.OutOrStdout(), s.env.NoColor)
			switch state {
			case hook.StateInstalled:
				return printer.Success("✓ Removed commit-msg hook from %s", installer.Path())
			case hook.StateForeign:
				return printer.Line("commit-msg hook at %s was not installed by commitlint, leaving it in place",
					installer.Path())
			default:
				return printer.Line("No commit-msg hook installed")
			}
		},
	}
}
