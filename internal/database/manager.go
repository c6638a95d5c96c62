// Package database stores the validation history in SQLite.
package database

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"time"

	"github.com/spf13/afero"
	"github.com/wizzomafizzo/commitlint/internal/storage"
	_ "modernc.org/sqlite"
)

// memoryDSN opens a private in-memory database per connection.
const memoryDSN = ":memory:"

// connectionPragmas are set on every pooled connection. Several commit-msg
// hooks from parallel worktrees may write to the same file.
var connectionPragmas = []string{
	"busy_timeout(5000)",
	"journal_mode(WAL)",
	"synchronous(NORMAL)",
	"temp_store(MEMORY)",
}

// Manager owns the connection pool of the history database.
type Manager struct {
	db *sql.DB
}

// Open opens the history database in the user data directory.
func Open(ctx context.Context, fs afero.Fs) (*Manager, error) {
	path, err := storage.New(fs).GetDatabasePath()
	if err != nil {
		return nil, fmt.Errorf("failed to get database path: %w", err)
	}
	return NewManager(ctx, FileDSN(path))
}

// FileDSN returns the DSN of the database file at path.
func FileDSN(path string) string {
	params := url.Values{}
	for _, pragma := range connectionPragmas {
		params.Add("_pragma", pragma)
	}
	return path + "?" + params.Encode()
}

// NewManager opens dsn and brings the history schema up to date.
func NewManager(ctx context.Context, dsn string) (*Manager, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open history database: %w", err)
	}

	if dsn == memoryDSN {
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxOpenConns(4)
		db.SetMaxIdleConns(2)
		db.SetConnMaxLifetime(time.Hour)
	}

	manager := &Manager{db: db}
	if err := manager.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}

	return manager, nil
}

// DB returns the underlying pool.
func (m *Manager) DB() *sql.DB {
	return m.db
}

func (m *Manager) Close() error {
	if err := m.db.Close(); err != nil {
		return fmt.Errorf("failed to close history database: %w", err)
	}
	return nil
}
