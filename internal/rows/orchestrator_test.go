package rows_test

import (
	"fmt"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/ozstats/internal/generator"
	"github.com/jonesrussell/ozstats/internal/logger"
	"github.com/jonesrussell/ozstats/internal/rows"
	"github.com/jonesrussell/ozstats/internal/stats"
)

const (
	testPoolSize = 47
	testRowSize  = 7
)

func newOrchestrator(seed int64) *rows.Orchestrator {
	gen := generator.New(
		rand.New(rand.NewSource(seed)),
		generator.DefaultWeights(),
		logger.NewNoOp(),
	)
	return rows.NewOrchestrator(gen, logger.NewNoOp(), testPoolSize, testRowSize)
}

func fullStatistics() *stats.Statistics {
	statistics := &stats.Statistics{}
	for ball := 1; ball <= testPoolSize; ball++ {
		statistics.Numerical = append(statistics.Numerical, stats.FrequencyEntry{
			Ball:    ball,
			Drawn:   150 + (ball*17)%80,
			DrawnOK: true,
		})
		statistics.Cold = append(statistics.Cold, stats.OverdueEntry{
			Ball:      ball,
			LastDrawn: fmt.Sprintf("%d days ago", (ball*11)%120+1),
		})
	}
	return statistics
}

func TestGenerate_ProducesOneResultPerStrategy(t *testing.T) {
	t.Parallel()

	results, err := newOrchestrator(1).Generate(fullStatistics())
	require.NoError(t, err)
	require.Len(t, results, 6)

	expected := []rows.Strategy{
		rows.StrategyProbabilistic,
		rows.StrategyOverdueBlend,
		rows.StrategyWeightedRemainder,
		rows.StrategyHotColdMix,
		rows.StrategyNextHotCold,
		rows.StrategyMiddleGround,
	}
	for i, result := range results {
		assert.Equal(t, expected[i], result.Strategy, "slot %d", i)
	}
}

func TestGenerate_RowsAreSortedDistinctAndInRange(t *testing.T) {
	t.Parallel()

	results, err := newOrchestrator(2).Generate(fullStatistics())
	require.NoError(t, err)

	for i, result := range results {
		if result.Skipped {
			assert.Nil(t, result.Row, "slot %d", i)
			continue
		}
		require.Len(t, result.Row, testRowSize, "slot %d", i)
		assert.True(t, sort.IntsAreSorted(result.Row), "slot %d not sorted", i)

		seen := make(map[int]bool, testRowSize)
		for _, ball := range result.Row {
			assert.GreaterOrEqual(t, ball, 1)
			assert.LessOrEqual(t, ball, testPoolSize)
			assert.False(t, seen[ball], "slot %d repeats ball %d", i, ball)
			seen[ball] = true
		}
	}
}

func TestGenerate_RemainderRowAvoidsReservedBalls(t *testing.T) {
	t.Parallel()

	results, err := newOrchestrator(3).Generate(fullStatistics())
	require.NoError(t, err)
	require.False(t, results[2].Skipped, "remainder slot should produce a row with full data")

	reserved := make(map[int]bool, 2*testRowSize)
	for _, result := range results[:2] {
		if result.Skipped {
			continue
		}
		for _, ball := range result.Row {
			reserved[ball] = true
		}
	}

	for _, ball := range results[2].Row {
		assert.False(t, reserved[ball], "reserved ball %d reused by remainder row", ball)
	}
}

func TestGenerate_NoFrequencyData(t *testing.T) {
	t.Parallel()

	_, err := newOrchestrator(4).Generate(&stats.Statistics{})
	require.ErrorIs(t, err, rows.ErrNoFrequencyData)
}

func TestGenerate_TooFewFrequencyRecords(t *testing.T) {
	t.Parallel()

	statistics := &stats.Statistics{
		Numerical: []stats.FrequencyEntry{
			{Ball: 1, Drawn: 10, DrawnOK: true},
			{Ball: 2, Drawn: 20, DrawnOK: true},
		},
	}
	_, err := newOrchestrator(5).Generate(statistics)
	require.ErrorIs(t, err, rows.ErrNoFrequencyData)
}

func TestGenerate_FirstRowFailureAbortsRun(t *testing.T) {
	t.Parallel()

	// Enough frequency records to pass the data check, but a pool narrower
	// than the row size: the first strategy can never assemble seven
	// distinct balls, and its failure must yield no rows at all.
	statistics := &stats.Statistics{}
	for ball := 1; ball <= testRowSize; ball++ {
		statistics.Numerical = append(statistics.Numerical, stats.FrequencyEntry{
			Ball:    ball,
			Drawn:   ball * 10,
			DrawnOK: true,
		})
	}

	gen := generator.New(
		rand.New(rand.NewSource(8)),
		generator.DefaultWeights(),
		logger.NewNoOp(),
	)
	orch := rows.NewOrchestrator(gen, logger.NewNoOp(), 5, testRowSize)

	results, err := orch.Generate(statistics)
	require.ErrorIs(t, err, rows.ErrFirstRowFailed)
	assert.Nil(t, results)
}

func TestGenerate_NoColdDataStillProducesRows(t *testing.T) {
	t.Parallel()

	statistics := fullStatistics()
	statistics.Cold = nil

	results, err := newOrchestrator(6).Generate(statistics)
	require.NoError(t, err)
	require.Len(t, results, 6)
	assert.False(t, results[0].Skipped)
}

func TestGenerate_DuplicateMarking(t *testing.T) {
	t.Parallel()

	// With a tiny pool every strategy collapses onto the same few balls, so
	// later slots must either duplicate an earlier row or skip.
	const smallPool = 7
	statistics := &stats.Statistics{}
	for ball := 1; ball <= smallPool; ball++ {
		statistics.Numerical = append(statistics.Numerical, stats.FrequencyEntry{
			Ball:    ball,
			Drawn:   ball,
			DrawnOK: true,
		})
		statistics.Cold = append(statistics.Cold, stats.OverdueEntry{
			Ball:      ball,
			LastDrawn: fmt.Sprintf("%d days ago", ball),
		})
	}

	gen := generator.New(
		rand.New(rand.NewSource(7)),
		generator.DefaultWeights(),
		logger.NewNoOp(),
	)
	orch := rows.NewOrchestrator(gen, logger.NewNoOp(), smallPool, smallPool)

	results, err := orch.Generate(statistics)
	require.NoError(t, err)

	duplicates := 0
	for _, result := range results {
		if result.Duplicate {
			duplicates++
			assert.NotNil(t, result.Row, "duplicate slots keep their row")
		}
	}
	assert.Positive(t, duplicates)
	assert.False(t, results[0].Duplicate, "first slot is never a duplicate")
}
