package main

import (
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/report"
)

// createRulesCommand creates the command listing effective rule settings.
func createRulesCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "rules",
		Short:        "List rules and their effective settings",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}

			report.RulesTable(cmd.OutOrStdout(), s.config)
			return nil
		},
	}
}
