package database

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wizzomafizzo/commitlint/internal/lint"
)

// Run is one recorded validation of a commit message.
type Run struct {
	CreatedAt  time.Time
	ID         string
	ProjectID  string
	Header     string
	Violations lint.Errors
	Valid      bool
}

// History records validation runs for one project.
type History struct {
	db        *sql.DB
	projectID string
	now       func() time.Time
}

// NewHistory creates a history store scoped to projectID.
func NewHistory(m *Manager, projectID string) *History {
	return &History{db: m.DB(), projectID: projectID, now: time.Now}
}

// Record stores the outcome of validating a message with the given header.
func (h *History) Record(ctx context.Context, header string, violations lint.Errors) (*Run, error) {
	if violations == nil {
		violations = lint.Errors{}
	}
	data, err := json.Marshal(violations)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal violations: %w", err)
	}

	run := &Run{
		ID:         uuid.NewString(),
		ProjectID:  h.projectID,
		Header:     header,
		Valid:      len(violations) == 0,
		Violations: violations,
		CreatedAt:  h.now().Truncate(time.Second),
	}

	_, err = h.db.ExecContext(ctx,
		"INSERT INTO runs (id, project_id, header, valid, violations, created_at) VALUES (?, ?, ?, ?, ?, ?)",
		run.ID, run.ProjectID, run.Header, run.Valid, data, run.CreatedAt.Unix())
	if err != nil {
		return nil, fmt.Errorf("failed to record run: %w", err)
	}

	return run, nil
}

// Recent returns up to limit runs, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]Run, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, header, valid, violations, created_at FROM runs
		 WHERE project_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?`,
		h.projectID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var runs []Run
	for rows.Next() {
		var (
			run       Run
			data      []byte
			createdAt int64
		)
		if err := rows.Scan(&run.ID, &run.Header, &run.Valid, &data, &createdAt); err != nil {
			return nil, fmt.Errorf("failed to scan run: %w", err)
		}
		if err := json.Unmarshal(data, &run.Violations); err != nil {
			return nil, fmt.Errorf("failed to unmarshal violations of run %s: %w", run.ID, err)
		}
		run.ProjectID = h.projectID
		run.CreatedAt = time.Unix(createdAt, 0)
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read runs: %w", err)
	}

	return runs, nil
}

// Prune deletes all but the newest keep runs and returns how many were removed.
func (h *History) Prune(ctx context.Context, keep int) (int64, error) {
	res, err := h.db.ExecContext(ctx,
		`DELETE FROM runs WHERE project_id = ? AND rowid NOT IN (
			SELECT rowid FROM runs WHERE project_id = ? ORDER BY created_at DESC, rowid DESC LIMIT ?
		)`,
		h.projectID, h.projectID, keep)
	if err != nil {
		return 0, fmt.Errorf("failed to prune runs: %w", err)
	}

	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count pruned runs: %w", err)
	}
	return removed, nil
}
