package rows

import (
	"errors"
	"fmt"

	"github.com/jonesrussell/ozstats/internal/generator"
	"github.com/jonesrussell/ozstats/internal/logger"
	"github.com/jonesrussell/ozstats/internal/picker"
	"github.com/jonesrussell/ozstats/internal/stats"
)

var (
	// ErrNoFrequencyData indicates the statistics carry too few parsed
	// frequency records to build any rows.
	ErrNoFrequencyData = errors.New("insufficient frequency data to generate rows")
	// ErrFirstRowFailed indicates the first strategy could not produce a
	// complete row. Later strategies assume it succeeded, so the run aborts.
	ErrFirstRowFailed = errors.New("first row generation failed")
)

// Hot/cold mix split: how many balls each side of the mix contributes.
const (
	mixHotCount  = 4
	mixColdCount = 3
)

// rankFetchCount is how deep the ranked hot/overdue lists are materialized;
// the mixes and fill rules draw from well past the first row.
const rankFetchCount = 50

// Orchestrator runs the fixed strategy sequence over one statistics
// snapshot.
type Orchestrator struct {
	gen      *generator.Generator
	logger   logger.Interface
	poolSize int
	rowSize  int
}

// NewOrchestrator creates an orchestrator for the given pool geometry.
func NewOrchestrator(gen *generator.Generator, log logger.Interface, poolSize, rowSize int) *Orchestrator {
	return &Orchestrator{
		gen:      gen,
		logger:   log.WithComponent("rows"),
		poolSize: poolSize,
		rowSize:  rowSize,
	}
}

// Generate runs every strategy in order and returns one result per strategy.
// The first strategy failing, or a total absence of frequency data, aborts
// the run with no results; any later strategy failing only skips its slot.
// Rows produced by the first three strategies reserve their numbers; the
// remaining strategies may reuse them.
func (o *Orchestrator) Generate(statistics *stats.Statistics) ([]Result, error) {
	hotAll := picker.ByFrequency(statistics.Numerical, rankFetchCount, true)
	if len(hotAll) < o.rowSize {
		return nil, fmt.Errorf("%w: %d frequency records, need %d",
			ErrNoFrequencyData, len(hotAll), o.rowSize)
	}
	overdueAll := picker.ByOverdue(statistics.Cold, rankFetchCount)

	results := make([]Result, 0, 6)
	used := make(map[int]bool, 3*o.rowSize)

	// Row 1 is mandatory: everything downstream assumes it exists.
	first := o.gen.ProbabilisticRow(statistics, o.poolSize, o.rowSize)
	if !validRow(first, o.rowSize, o.poolSize) {
		o.logger.Error("First row strategy failed, aborting run",
			"strategy", string(StrategyProbabilistic), "got", len(first))
		return nil, ErrFirstRowFailed
	}
	results = append(results, o.accept(StrategyProbabilistic, first, used))

	blend := o.gen.BlendRow(statistics, o.poolSize, o.rowSize)
	results = append(results, o.acceptOrSkip(StrategyOverdueBlend, blend, used))

	remainder := o.gen.FrequencyWeightedRow(statistics.Numerical, used, o.rowSize)
	results = append(results, o.acceptOrSkip(StrategyWeightedRemainder, remainder, used))

	// The later strategies are reuse-friendly: they do not consult or extend
	// the used set.
	mix := o.hotColdMix(hotAll, overdueAll)
	results = append(results, o.acceptOrSkip(StrategyHotColdMix, mix, nil))

	next := o.nextHotCold(hotAll, overdueAll)
	results = append(results, o.acceptOrSkip(StrategyNextHotCold, next, nil))

	middle := o.middleGround(hotAll, overdueAll)
	results = append(results, o.acceptOrSkip(StrategyMiddleGround, middle, nil))

	markDuplicates(results)
	return results, nil
}

// accept records a validated row and reserves its numbers.
func (o *Orchestrator) accept(strategy Strategy, numbers []int, used map[int]bool) Result {
	for _, ball := range numbers {
		used[ball] = true
	}
	o.logger.Info("Generated row", "strategy", string(strategy))
	return Result{Strategy: strategy, Row: newRow(numbers)}
}

// acceptOrSkip validates a best-effort row. An incomplete row logs a
// degradation and yields a skipped slot instead of aborting.
func (o *Orchestrator) acceptOrSkip(strategy Strategy, numbers []int, used map[int]bool) Result {
	if !validRow(numbers, o.rowSize, o.poolSize) {
		o.logger.Warn("Row strategy under-produced, skipping slot",
			"strategy", string(strategy), "got", len(numbers), "needed", o.rowSize)
		return Result{Strategy: strategy, Skipped: true}
	}
	if used != nil {
		return o.accept(strategy, numbers, used)
	}
	o.logger.Info("Generated row", "strategy", string(strategy))
	return Result{Strategy: strategy, Row: newRow(numbers)}
}

// hotColdMix randomly picks from the top hot and top overdue ranks and
// merges the picks, filling any overlap from the full ranked lists.
func (o *Orchestrator) hotColdMix(hotAll, overdueAll []int) []int {
	hotPick := o.gen.RandomPick(topRanks(hotAll, 2*o.rowSize), mixHotCount)
	coldPick := o.gen.RandomPick(topRanks(overdueAll, 2*o.rowSize), mixColdCount)

	// The picks head each list so UnionSelect prefers them; the ranked tails
	// provide fill when the picks overlap.
	listA := append(hotPick, hotAll...)
	listB := append(coldPick, overdueAll...)
	return picker.UnionSelect(listA, mixHotCount, listB, mixColdCount, o.rowSize)
}

// nextHotCold merges the hot and overdue ranks immediately below the slices
// the hot-cold mix draws from. Fully deterministic.
func (o *Orchestrator) nextHotCold(hotAll, overdueAll []int) []int {
	return picker.UnionSelect(
		pastRank(hotAll, mixHotCount), mixHotCount,
		pastRank(overdueAll, mixColdCount), mixColdCount,
		o.rowSize,
	)
}

// middleGround samples uniformly from the pool minus the hottest and most
// overdue balls.
func (o *Orchestrator) middleGround(hotAll, overdueAll []int) []int {
	exclude := make(map[int]bool, 2*o.rowSize)
	for _, ball := range topRanks(hotAll, o.rowSize) {
		exclude[ball] = true
	}
	for _, ball := range topRanks(overdueAll, o.rowSize) {
		exclude[ball] = true
	}
	return o.gen.UniformExcluding(o.poolSize, exclude, o.rowSize)
}

// topRanks returns the first n entries of a ranked list.
func topRanks(ranked []int, n int) []int {
	if n > len(ranked) {
		n = len(ranked)
	}
	return ranked[:n]
}

// pastRank returns the ranked list beyond the first n entries.
func pastRank(ranked []int, n int) []int {
	if n > len(ranked) {
		return nil
	}
	return ranked[n:]
}
