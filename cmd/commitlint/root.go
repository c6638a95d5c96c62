package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/config"
	"github.com/wizzomafizzo/commitlint/internal/constants"
	"github.com/wizzomafizzo/commitlint/internal/logging"
	"github.com/wizzomafizzo/commitlint/internal/project"
)

// createNewRootCommand creates the main root command that shows help by default.
func createNewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           constants.AppName,
		Short:         "Conventional commit message linter",
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return cmd.Help()
		},
	}

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to config file (default: discovered in project root)")

	rootCmd.AddCommand(
		createCheckCommand(),
		createInstallCommand(),
		createUninstallCommand(),
		createStatusCommand(),
		createValidateCommand(),
		createInitCommand(),
		createRulesCommand(),
		createHistoryCommand(),
		createPromptCommand(),
	)

	return rootCmd
}

// session is everything a subcommand needs: the resolved configuration, the
// project it applies to and a context carrying the logger.
type session struct {
	ctx    context.Context
	fs     afero.Fs
	config *config.Config
	root   string
	source string
	env    config.Env
}

// newSession resolves the project root, configuration and environment
// overrides, then attaches a logger.
func newSession(cmd *cobra.Command) (*session, error) {
	s, err := loadSession(cmd)
	if err != nil {
		return nil, err
	}

	if err := s.config.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", s.displaySource(), err)
	}

	level, err := logging.ParseLevel(s.config.Logging.Level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}

	logConfig := logging.Config{ProjectID: s.root, Level: level}
	if level == logging.Disabled {
		logConfig.Writer = io.Discard
	}

	s.ctx, err = logging.New(s.ctx, s.fs, logConfig)
	if err != nil {
		return nil, fmt.Errorf("logger init failed: %w", err)
	}

	return s, nil
}

// loadSession resolves configuration without validating it or creating a
// logger.
func loadSession(cmd *cobra.Command) (*session, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	configPath, err := configPathFromCommand(cmd, env)
	if err != nil {
		return nil, err
	}

	root, err := project.FindRoot()
	if err != nil {
		return nil, fmt.Errorf("failed to find project root: %w", err)
	}

	fs := afero.NewOsFs()
	cfg, source, err := config.Resolve(fs, configPath, root)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.ApplyEnv(env)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	return &session{
		ctx:    ctx,
		fs:     fs,
		config: cfg,
		root:   root,
		source: source,
		env:    env,
	}, nil
}

// configPathFromCommand returns the --config flag, falling back to the
// environment.
func configPathFromCommand(cmd *cobra.Command, env config.Env) (string, error) {
	configPath, err := cmd.Flags().GetString("config")
	if err != nil {
		return "", fmt.Errorf("failed to get config flag: %w", err)
	}
	if configPath == "" {
		configPath = env.Config
	}
	return configPath, nil
}

func (s *session) displaySource() string {
	if s.source == "" {
		return "(built-in defaults)"
	}
	return s.source
}
