package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/commit"
	"github.com/wizzomafizzo/commitlint/internal/database"
	"github.com/wizzomafizzo/commitlint/internal/lint"
	"github.com/wizzomafizzo/commitlint/internal/logging"
	"github.com/wizzomafizzo/commitlint/internal/report"
)

// createCheckCommand creates the command that validates one commit message.
func createCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "check",
		Short:        "Validate a commit message",
		Long:         "Validate a commit message given with --message, read from --file, or read from stdin",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE:         runCheckCommand,
	}

	cmd.Flags().StringP("message", "m", "", "Commit message to validate")
	cmd.Flags().StringP("file", "f", "", "File containing the commit message")
	cmd.MarkFlagsMutuallyExclusive("message", "file")

	return cmd
}

func runCheckCommand(cmd *cobra.Command, _ []string) error {
	s, err := newSession(cmd)
	if err != nil {
		return err
	}

	message, err := readMessage(cmd, s.fs)
	if err != nil {
		return err
	}

	result := lint.Validate(s.ctx, message, s.config)
	if result != nil {
		if _, ok := lint.AsErrors(result); !ok {
			return fmt.Errorf("validation failed: %w", result)
		}
	}

	recordRun(s, message, result)

	printer := report.New(cmd.ErrOrStderr(), s.env.NoColor)
	if err := printer.Result(result); err != nil {
		return err
	}

	if result != nil {
		return &ExitError{Code: 1}
	}
	return nil
}

// readMessage returns the message from --message, --file or stdin, in that
// order of preference.
func readMessage(cmd *cobra.Command, fs afero.Fs) (string, error) {
	if cmd.Flags().Changed("message") {
		message, err := cmd.Flags().GetString("message")
		if err != nil {
			return "", fmt.Errorf("failed to get message flag: %w", err)
		}
		return message, nil
	}

	path, err := cmd.Flags().GetString("file")
	if err != nil {
		return "", fmt.Errorf("failed to get file flag: %w", err)
	}
	if path != "" {
		data, err := afero.ReadFile(fs, path)
		if err != nil {
			return "", fmt.Errorf("failed to read commit message file: %w", err)
		}
		return stripComments(string(data)), nil
	}

	data, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return string(data), nil
}

// scissorsLine marks the start of the diff appended by git commit --verbose.
const scissorsLine = "# ------------------------ >8 ------------------------"

// stripComments removes what git strips from an edited message before
// committing: "#" comment lines, everything from the scissors line on, and
// trailing blank lines. The commit-msg hook sees the file before cleanup.
func stripComments(message string) string {
	var kept []string
	for _, line := range strings.Split(message, "\n") {
		if strings.TrimRight(line, "\r") == scissorsLine {
			break
		}
		if strings.HasPrefix(line, "#") {
			continue
		}
		kept = append(kept, line)
	}

	cleaned := strings.TrimRight(strings.Join(kept, "\n"), " \t\r\n")
	if cleaned == "" {
		return ""
	}
	return cleaned + "\n"
}

// recordRun stores the outcome in the history database. Failures are logged
// and never affect the check result.
func recordRun(s *session, message string, result error) {
	if !s.config.History.Enabled {
		return
	}

	log := logging.Get(s.ctx)
	violations, _ := lint.AsErrors(result)

	if err := withHistory(s, func(h *database.History) error {
		if _, err := h.Record(s.ctx, commit.Segment(message).Header, violations); err != nil {
			return err
		}
		if keep := s.config.History.Keep; keep > 0 {
			pruned, err := h.Prune(s.ctx, keep)
			if err != nil {
				return err
			}
			log.Debug().Int64("pruned", pruned).Msg("pruned validation history")
		}
		return nil
	}); err != nil {
		log.Warn().Err(err).Msg("failed to record validation history")
	}
}

var errHistoryDisabled = errors.New("history is disabled")

// withHistory opens the history database for the session's project and
// passes it to fn.
func withHistory(s *session, fn func(*database.History) error) error {
	if !s.config.History.Enabled {
		return errHistoryDisabled
	}

	manager, err := database.Open(s.ctx, s.fs)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := manager.Close(); closeErr != nil {
			logging.Get(s.ctx).Warn().Err(closeErr).Msg("failed to close history database")
		}
	}()

	return fn(database.NewHistory(manager, s.root))
}
