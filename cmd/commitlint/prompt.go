package main

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/config"
	"github.com/wizzomafizzo/commitlint/internal/lint"
	"github.com/wizzomafizzo/commitlint/internal/prompt"
	"github.com/wizzomafizzo/commitlint/internal/report"
)

// createPromptCommand creates the interactive message composer.
func createPromptCommand() *cobra.Command {
	return &cobra.Command{
		Use:          "prompt",
		Short:        "Compose a conventional commit message interactively",
		Long:         "Ask for type, scope, breaking change and subject, then print the message if it passes validation",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			words := append(append([]string{}, s.config.Rules.Type.Enum...), s.config.Rules.Scope.Enum...)
			p := prompt.NewLinerPrompter(words)
			defer func() { _ = p.Close() }()

			return composeMessage(s.ctx, p, s.config, cmd.OutOrStdout(), cmd.ErrOrStderr(), s.env.NoColor)
		},
	}
}

// composeMessage asks for a message, prints it to out when valid and the
// violations to errOut otherwise.
func composeMessage(
	ctx context.Context, p prompt.Prompter, cfg *config.Config, out, errOut io.Writer, noColor bool,
) error {
	answers, err := prompt.Ask(p, cfg.Rules.Type.Enum)
	if err != nil {
		return err
	}

	message := answers.Message()
	result := lint.Validate(ctx, message, cfg)
	if result != nil {
		if err := report.New(errOut, noColor).Result(result); err != nil {
			return err
		}
		return &ExitError{Code: 1}
	}

	return report.New(out, noColor).Line("%s", message)
}
