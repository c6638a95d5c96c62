package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/hook"
	"github.com/wizzomafizzo/commitlint/internal/logging"
	"github.com/wizzomafizzo/commitlint/internal/project"
	"github.com/wizzomafizzo/commitlint/internal/report"
)

// createInstallCommand creates the install command.
func createInstallCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "install",
		Short:        "Install the git commit-msg hook",
		Long:         "Install a git commit-msg hook that runs commitlint check on every commit",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, err := cmd.Flags().GetBool("force")
			if err != nil {
				return fmt.Errorf("failed to get force flag: %w", err)
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			installer, err := newInstaller(s)
			if err != nil {
				return err
			}

			if err := installer.Install(force); err != nil {
				if errors.Is(err, hook.ErrForeignHook) {
					return fmt.Errorf("%w (use --force to replace it)", err)
				}
				return err
			}
			logging.Get(s.ctx).Info().Str("path", installer.Path()).Msg("installed commit-msg hook")

			return report.New(cmd.OutOrStdout(), s.env.NoColor).Success("✓ Installed commit-msg hook at %s", installer.Path())
		},
	}

	cmd.Flags().Bool("force", false, "Replace an existing commit-msg hook not installed by commitlint")

	return cmd
}

// newInstaller locates the repository's hooks directory.
func newInstaller(s *session) (*hook.Installer, error) {
	hooksDir, err := project.HooksDir(s.fs, s.root)
	if err != nil {
		return nil, fmt.Errorf("failed to locate hooks directory: %w", err)
	}
	return hook.NewInstaller(s.fs, hooksDir, hook.ResolveBinary(os.Args[0])), nil
}
