package storage_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/ozstats/internal/rows"
	"github.com/jonesrussell/ozstats/internal/storage"
)

func openTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	cfg := &storage.Config{Path: filepath.Join(t.TempDir(), "ozstats.db")}
	db, err := storage.Open(cfg)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func TestOpen_MissingPath(t *testing.T) {
	t.Parallel()

	_, err := storage.Open(&storage.Config{})
	require.Error(t, err)
}

func TestRunRepository_SaveAndLoad(t *testing.T) {
	t.Parallel()

	repo := storage.NewRunRepository(openTestDB(t))
	ctx := context.Background()

	results := []rows.Result{
		{Strategy: rows.StrategyProbabilistic, Row: rows.Row{1, 2, 3, 4, 5, 6, 7}},
		{Strategy: rows.StrategyOverdueBlend, Skipped: true},
		{Strategy: rows.StrategyWeightedRemainder, Row: rows.Row{1, 2, 3, 4, 5, 6, 7}, Duplicate: true},
	}

	runID, err := repo.Save(ctx, "oz-lotto", "html_history/oz-lotto_stats_2026-08-24.html", results)
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	runs, err := repo.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, runID, runs[0].ID)
	assert.Equal(t, "oz-lotto", runs[0].Game)
	assert.False(t, runs[0].CreatedAt.IsZero())

	stored, err := repo.RowsForRun(ctx, runID)
	require.NoError(t, err)
	require.Len(t, stored, 3)

	assert.Equal(t, 1, stored[0].Position)
	assert.Equal(t, string(rows.StrategyProbabilistic), stored[0].Strategy)
	assert.Equal(t, "1, 2, 3, 4, 5, 6, 7", stored[0].Numbers)
	assert.False(t, stored[0].Skipped)
	assert.False(t, stored[0].Duplicate)

	assert.True(t, stored[1].Skipped)
	assert.Empty(t, stored[1].Numbers)

	assert.True(t, stored[2].Duplicate)
	assert.Equal(t, "1, 2, 3, 4, 5, 6, 7", stored[2].Numbers)
}

func TestRunRepository_ListLimit(t *testing.T) {
	t.Parallel()

	repo := storage.NewRunRepository(openTestDB(t))
	ctx := context.Background()

	results := []rows.Result{
		{Strategy: rows.StrategyProbabilistic, Row: rows.Row{1, 2, 3, 4, 5, 6, 7}},
	}
	for i := 0; i < 3; i++ {
		_, err := repo.Save(ctx, "oz-lotto", "snapshot.html", results)
		require.NoError(t, err)
	}

	runs, err := repo.List(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, runs, 2)
}

func TestRunRepository_RowsForUnknownRun(t *testing.T) {
	t.Parallel()

	repo := storage.NewRunRepository(openTestDB(t))
	stored, err := repo.RowsForRun(context.Background(), "no-such-run")
	require.NoError(t, err)
	assert.Empty(t, stored)
}
