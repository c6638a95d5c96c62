package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/report"
)

// createValidateCommand creates the validate command.
func createValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "validate",
		Short:        "Validate configuration file",
		Long:         "Load the configuration and check it for structural errors and unknown case styles",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}

			if err := s.config.Validate(); err != nil {
				return fmt.Errorf("invalid config %s: %w", s.displaySource(), err)
			}

			printer := report.New(cmd.OutOrStdout(), s.env.NoColor)
			if err := printer.Warnings(s.config.Warnings()); err != nil {
				return err
			}
			return printer.Success("✓ Configuration %s is valid", s.displaySource())
		},
	}
}
