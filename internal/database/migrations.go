package database

import (
	"context"
	"fmt"

	"github.com/wizzomafizzo/commitlint/internal/logging"
)

// schemaVersion is the user_version of a fully migrated database.
const schemaVersion = 1

type migration struct {
	name    string
	sql     string
	version int
}

var migrations = []migration{
	{
		version: 1,
		name:    "create runs",
		sql: `
			CREATE TABLE runs (
				id TEXT PRIMARY KEY,
				project_id TEXT NOT NULL,
				header TEXT NOT NULL,
				valid INTEGER NOT NULL,
				violations BLOB NOT NULL,
				created_at INTEGER NOT NULL DEFAULT (unixepoch())
			);

			CREATE INDEX idx_runs_project ON runs(project_id, created_at);
		`,
	},
}

// migrate applies every migration newer than the database's user_version.
func (m *Manager) migrate(ctx context.Context) error {
	var current int
	if err := m.db.QueryRowContext(ctx, "PRAGMA user_version").Scan(&current); err != nil {
		return fmt.Errorf("failed to read history schema version: %w", err)
	}
	if current > schemaVersion {
		return fmt.Errorf("history schema version %d is newer than supported version %d", current, schemaVersion)
	}

	for _, mig := range migrations {
		if mig.version <= current {
			continue
		}
		if err := m.apply(ctx, mig); err != nil {
			return err
		}
		logging.Get(ctx).Debug().Int("version", mig.version).Str("migration", mig.name).
			Msg("applied history migration")
	}

	return nil
}

// apply runs mig and records its version in one transaction.
func (m *Manager) apply(ctx context.Context, mig migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin migration %q: %w", mig.name, err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, mig.sql); err != nil {
		return fmt.Errorf("failed to apply migration %d %q: %w", mig.version, mig.name, err)
	}
	// PRAGMA does not accept bound parameters
	if _, err := tx.ExecContext(ctx, fmt.Sprintf("PRAGMA user_version = %d", mig.version)); err != nil {
		return fmt.Errorf("failed to set schema version %d: %w", mig.version, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit migration %q: %w", mig.name, err)
	}
	return nil
}
