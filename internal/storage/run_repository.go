package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/jonesrussell/ozstats/internal/rows"
)

// Run is one stored generation run.
type Run struct {
	ID         string    `db:"id"`
	Game       string    `db:"game"`
	SourcePath string    `db:"source_path"`
	CreatedAt  time.Time `db:"created_at"`
}

// RunRow is one stored row of a run. Numbers holds the comma-separated
// sorted balls; it is empty for skipped slots.
type RunRow struct {
	RunID     string `db:"run_id"`
	Position  int    `db:"position"`
	Strategy  string `db:"strategy"`
	Numbers   string `db:"numbers"`
	Duplicate bool   `db:"duplicate"`
	Skipped   bool   `db:"skipped"`
}

// RunRepository handles database operations for run history.
type RunRepository struct {
	db *sqlx.DB
}

// NewRunRepository creates a new run repository.
func NewRunRepository(db *sqlx.DB) *RunRepository {
	return &RunRepository{db: db}
}

// Save stores one run with its full row set and returns the run id.
func (r *RunRepository) Save(
	ctx context.Context,
	game, sourcePath string,
	results []rows.Result,
) (string, error) {
	runID := uuid.NewString()

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	insertRun := `INSERT INTO runs (id, game, source_path, created_at) VALUES (?, ?, ?, ?)`
	if _, err := tx.ExecContext(ctx, insertRun, runID, game, sourcePath, time.Now().UTC()); err != nil {
		return "", fmt.Errorf("failed to insert run: %w", err)
	}

	insertRow := `
		INSERT INTO run_rows (run_id, position, strategy, numbers, duplicate, skipped)
		VALUES (?, ?, ?, ?, ?, ?)
	`
	for i, result := range results {
		numbers := ""
		if !result.Skipped {
			numbers = result.Row.String()
		}
		if _, err := tx.ExecContext(ctx, insertRow,
			runID, i+1, string(result.Strategy), numbers,
			result.Duplicate, result.Skipped,
		); err != nil {
			return "", fmt.Errorf("failed to insert run row: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit run: %w", err)
	}
	return runID, nil
}

// List returns the most recent runs, newest first.
func (r *RunRepository) List(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT id, game, source_path, created_at
		FROM runs ORDER BY created_at DESC LIMIT ?
	`

	var runs []Run
	if err := r.db.SelectContext(ctx, &runs, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// RowsForRun returns the stored rows of one run in position order.
func (r *RunRepository) RowsForRun(ctx context.Context, runID string) ([]RunRow, error) {
	query := `
		SELECT run_id, position, strategy, numbers, duplicate, skipped
		FROM run_rows WHERE run_id = ? ORDER BY position
	`

	var runRows []RunRow
	if err := r.db.SelectContext(ctx, &runRows, query, runID); err != nil {
		return nil, fmt.Errorf("failed to load run rows: %w", err)
	}
	return runRows, nil
}
