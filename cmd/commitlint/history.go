package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"
	"github.com/wizzomafizzo/commitlint/internal/database"
	"github.com/wizzomafizzo/commitlint/internal/report"
)

const defaultHistoryLimit = 20

// createHistoryCommand creates the command listing recent validation runs.
func createHistoryCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "history",
		Short:        "Show recent validation runs for this project",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			limit, err := cmd.Flags().GetInt("limit")
			if err != nil {
				return fmt.Errorf("failed to get limit flag: %w", err)
			}
			if limit <= 0 {
				return fmt.Errorf("limit must be positive, got %d", limit)
			}

			s, err := newSession(cmd)
			if err != nil {
				return err
			}

			var runs []database.Run
			err = withHistory(s, func(h *database.History) error {
				runs, err = h.Recent(s.ctx, limit)
				return err
			})
			if errors.Is(err, errHistoryDisabled) {
				return report.New(cmd.OutOrStdout(), s.env.NoColor).Line("History is disabled")
			}
			if err != nil {
				return err
			}

			if len(runs) == 0 {
				return report.New(cmd.OutOrStdout(), s.env.NoColor).Line("No validation runs recorded")
			}
			report.HistoryTable(cmd.OutOrStdout(), runs)
			return nil
		},
	}

	cmd.Flags().IntP("limit", "n", defaultHistoryLimit, "Number of runs to show")

	return cmd
}
