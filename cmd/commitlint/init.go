package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/config"
	"github.com/wizzomafizzo/commitlint/internal/constants"
	"github.com/wizzomafizzo/commitlint/internal/report"
)

// createInitCommand creates the command that writes a default config file.
func createInitCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "init",
		Short:        "Create a default config file",
		Long:         "Write the default configuration to " + constants.ConfigFilenames[0] + " in the project root",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := loadSession(cmd)
			if err != nil {
				return err
			}

			printer := report.New(cmd.OutOrStdout(), s.env.NoColor)
			if s.source != "" {
				return printer.Line("Config already exists at %s", s.source)
			}

			path := filepath.Join(s.root, constants.ConfigFilenames[0])
			if err := writeDefaultConfig(s.fs, path); err != nil {
				return err
			}
			return printer.Success("✓ Created %s", path)
		},
	}
}

func writeDefaultConfig(fs afero.Fs, path string) error {
	data, err := config.DefaultConfigYAML()
	if err != nil {
		return err
	}
	//nolint:gosec // config files are meant to be readable
	if err := afero.WriteFile(fs, path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}
	return nil
}
