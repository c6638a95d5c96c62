package database

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	_ "modernc.org/sqlite"
)

var (
	expectedTables  = []string{"runs"}
	expectedIndexes = []string{"idx_runs_project"}
)

func createTestManager(t *testing.T) (*Manager, *sql.DB, func()) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to open database: %v", err)
	}
	db.SetMaxOpenConns(1)

	manager := &Manager{db: db}
	cleanup := func() {
		if err := db.Close(); err != nil {
			t.Errorf("Failed to close test database: %v", err)
		}
	}

	return manager, db, cleanup
}

func setDatabaseVersion(t *testing.T, db *sql.DB, version int) {
	t.Helper()

	_, err := db.ExecContext(context.Background(), fmt.Sprintf("PRAGMA user_version = %d", version))
	if err != nil {
		t.Fatalf("Failed to set database version: %v", err)
	}
}

func assertDatabaseVersion(t *testing.T, db *sql.DB, expected int) {
	t.Helper()

	var version int
	err := db.QueryRowContext(context.Background(), "PRAGMA user_version").Scan(&version)
	if err != nil {
		t.Fatalf("Failed to get database version: %v", err)
	}
	if version != expected {
		t.Errorf("Expected database version %d, got %d", expected, version)
	}
}

func checkExists(t *testing.T, db *sql.DB, kind, name string) bool {
	t.Helper()

	var count int
	query := "SELECT COUNT(*) FROM sqlite_master WHERE type=? AND name=?"
	if err := db.QueryRowContext(context.Background(), query, kind, name).Scan(&count); err != nil {
		t.Fatalf("Failed to check %s existence: %v", kind, err)
	}
	return count > 0
}

func TestMigrate_FreshDatabase(t *testing.T) {
	t.Parallel()
	manager, db, cleanup := createTestManager(t)
	defer cleanup()

	if err := manager.migrate(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, table := range expectedTables {
		if !checkExists(t, db, "table", table) {
			t.Errorf("Expected table '%s' to exist", table)
		}
	}
	for _, index := range expectedIndexes {
		if !checkExists(t, db, "index", index) {
			t.Errorf("Expected index '%s' to exist", index)
		}
	}
	assertDatabaseVersion(t, db, schemaVersion)
}

func TestMigrate_SkipWhenAtCurrentVersion(t *testing.T) {
	t.Parallel()
	manager, db, cleanup := createTestManager(t)
	defer cleanup()

	setDatabaseVersion(t, db, schemaVersion)

	if err := manager.migrate(context.Background()); err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}

	for _, table := range expectedTables {
		if checkExists(t, db, "table", table) {
			t.Errorf("Expected table '%s' to NOT exist since migrations should be skipped", table)
		}
	}
	assertDatabaseVersion(t, db, schemaVersion)
}

func TestApply_InvalidSQLRollsBack(t *testing.T) {
	t.Parallel()
	manager, db, cleanup := createTestManager(t)
	defer cleanup()

	err := manager.apply(context.Background(), migration{version: 7, name: "broken", sql: "CREATE TABLE ("})
	if err == nil {
		t.Fatal("Expected error for invalid migration SQL")
	}
	assertDatabaseVersion(t, db, 0)
}

func TestMigrate_RejectsNewerSchema(t *testing.T) {
	t.Parallel()
	manager, db, cleanup := createTestManager(t)
	defer cleanup()

	setDatabaseVersion(t, db, schemaVersion+1)

	err := manager.migrate(context.Background())
	if err == nil {
		t.Fatal("Expected error for a schema newer than supported")
	}
	assertDatabaseVersion(t, db, schemaVersion+1)
}
