// Package rows assembles the final set of candidate rows by running a fixed
// sequence of generation strategies, applying per-strategy fallback rules,
// and marking duplicate rows across the set.
package rows

import (
	"fmt"
	"sort"
	"strings"
)

// Strategy names one row-generation algorithm in the fixed sequence.
type Strategy string

// The orchestrated strategies, in execution order.
const (
	// StrategyProbabilistic samples the full pool weighted by frequency with
	// an overdue bonus. Its failure aborts the whole run.
	StrategyProbabilistic Strategy = "probabilistic"
	// StrategyOverdueBlend samples from a normalized overdue/frequency blend.
	StrategyOverdueBlend Strategy = "overdue-blend"
	// StrategyWeightedRemainder samples without replacement, frequency
	// weighted, from the pool minus balls used by the mandatory rows.
	StrategyWeightedRemainder Strategy = "weighted-remainder"
	// StrategyHotColdMix merges random picks from the top hot and top
	// overdue ranks.
	StrategyHotColdMix Strategy = "hot-cold-mix"
	// StrategyNextHotCold merges the hot and overdue ranks just below the
	// ones the hot-cold mix draws from, deterministically.
	StrategyNextHotCold Strategy = "next-hot-cold"
	// StrategyMiddleGround samples uniformly from the pool minus the hottest
	// and most overdue balls.
	StrategyMiddleGround Strategy = "middle-ground"
)

// Description returns the human-readable strategy description used in the
// report header.
func (s Strategy) Description() string {
	switch s {
	case StrategyProbabilistic:
		return "Weighted random (frequency + overdue bonus)"
	case StrategyOverdueBlend:
		return "Weighted random (overdue-dominant blend)"
	case StrategyWeightedRemainder:
		return "Frequency-weighted draw from unused balls"
	case StrategyHotColdMix:
		return "Random mix of top hot and top overdue"
	case StrategyNextHotCold:
		return "Next hot ranks mixed with next overdue ranks"
	case StrategyMiddleGround:
		return "Uniform draw avoiding hot and overdue extremes"
	default:
		return string(s)
	}
}

// Row is one complete candidate play: distinct ball numbers sorted ascending.
type Row []int

// String formats the row as comma-separated numbers.
func (r Row) String() string {
	parts := make([]string, len(r))
	for i, ball := range r {
		parts[i] = fmt.Sprintf("%d", ball)
	}
	return strings.Join(parts, ", ")
}

// key returns an order-independent identity for duplicate detection. Rows are
// stored sorted, so the joined form is canonical.
func (r Row) key() string {
	return r.String()
}

// Result is one slot of the generated row set. Exactly one of Row, Skipped,
// or Duplicate describes the slot's outcome: a skipped slot has no row, and a
// duplicate slot keeps its row but is flagged.
type Result struct {
	// Strategy identifies which algorithm produced (or failed to produce)
	// this slot.
	Strategy Strategy
	// Row is the accepted row, sorted ascending. Nil when Skipped.
	Row Row
	// Skipped reports that the strategy failed to produce a full row.
	Skipped bool
	// Duplicate reports that an earlier slot already holds the same number
	// set. The row is kept so the slot's label and position survive.
	Duplicate bool
}

// newRow sorts the numbers ascending into a Row.
func newRow(numbers []int) Row {
	row := make(Row, len(numbers))
	copy(row, numbers)
	sort.Ints(row)
	return row
}

// validRow reports whether numbers form a complete row: exactly rowSize
// distinct values inside [1, poolSize].
func validRow(numbers []int, rowSize, poolSize int) bool {
	if len(numbers) != rowSize {
		return false
	}
	seen := make(map[int]bool, rowSize)
	for _, ball := range numbers {
		if ball < 1 || ball > poolSize || seen[ball] {
			return false
		}
		seen[ball] = true
	}
	return true
}

// markDuplicates flags every accepted result whose number set matches an
// earlier accepted result. The first occurrence is kept unflagged.
func markDuplicates(results []Result) {
	seen := make(map[string]bool, len(results))
	for i := range results {
		if results[i].Skipped {
			continue
		}
		key := results[i].Row.key()
		if seen[key] {
			results[i].Duplicate = true
			continue
		}
		seen[key] = true
	}
}
