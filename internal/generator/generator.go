package generator

import (
	"math/rand"
	"sort"

	"github.com/jonesrussell/ozstats/internal/logger"
	"github.com/jonesrussell/ozstats/internal/picker"
	"github.com/jonesrussell/ozstats/internal/stats"
)

// oversampleFactor is how many with-replacement draws are taken per needed
// number before truncating to unique values.
const oversampleFactor = 3

// Generator produces randomized candidate rows. All generators share one
// random source and fail soft: a sampling failure degrades to a uniform
// random selection instead of surfacing an error.
type Generator struct {
	rng     *rand.Rand
	weights Weights
	logger  logger.Interface
}

// New creates a row generator around the given random source.
func New(rng *rand.Rand, weights Weights, log logger.Interface) *Generator {
	return &Generator{
		rng:     rng,
		weights: weights,
		logger:  log.WithComponent("generator"),
	}
}

// ProbabilisticRow draws one row weighted by drawn frequency with a bonus for
// the most overdue balls. Every ball in the pool stays selectable through the
// minimum weight floor. Degrades to a uniform random row when no frequency
// data exists or the weighting is unusable.
func (g *Generator) ProbabilisticRow(statistics *stats.Statistics, poolSize, rowSize int) []int {
	drawnByBall := drawnCounts(statistics.Numerical)
	if len(drawnByBall) == 0 {
		g.logger.Warn("No frequency data, degrading to uniform sample")
		return uniformSample(g.rng, fullPool(poolSize), rowSize)
	}

	overdueBonus := make(map[int]bool, g.weights.OverdueConsidered)
	for _, ball := range picker.ByOverdue(statistics.Cold, g.weights.OverdueConsidered) {
		overdueBonus[ball] = true
	}

	balls := fullPool(poolSize)
	weights := make([]float64, poolSize)
	for i, ball := range balls {
		weight := g.weights.BaseWeight + float64(drawnByBall[ball])*g.weights.FrequencyMultiplier
		if overdueBonus[ball] {
			weight += g.weights.OverdueBonus
		}
		if weight < minBallWeight {
			weight = minBallWeight
		}
		weights[i] = weight
	}

	drawn := sampleWithReplacement(g.rng, balls, weights, oversampleFactor*rowSize)
	if drawn == nil {
		g.logger.Warn("Probabilistic sampling failed, degrading to uniform sample")
		return uniformSample(g.rng, balls, rowSize)
	}

	row := firstSeenUnique(drawn, rowSize)
	return g.fillUniform(row, balls, rowSize)
}

// BlendRow draws one row from a blend of normalized overdue and frequency
// signals, overdue-dominant. A shortfall after truncation to unique values is
// filled deterministically by the most overdue unused balls.
func (g *Generator) BlendRow(statistics *stats.Statistics, poolSize, rowSize int) []int {
	daysByBall := make(map[int]int, len(statistics.Cold))
	maxDays := 0
	for _, record := range statistics.Cold {
		days := record.DaysAgo()
		daysByBall[record.Ball] = days
		if days > maxDays {
			maxDays = days
		}
	}

	drawnByBall := drawnCounts(statistics.Numerical)
	maxDrawn := 0
	for _, drawn := range drawnByBall {
		if drawn > maxDrawn {
			maxDrawn = drawn
		}
	}

	// An all-zero maximum normalizes to 1 to avoid division by zero.
	daysDivisor := float64(maxDays)
	if daysDivisor == 0 {
		daysDivisor = 1
	}
	drawnDivisor := float64(maxDrawn)
	if drawnDivisor == 0 {
		drawnDivisor = 1
	}

	balls := fullPool(poolSize)
	weights := make([]float64, poolSize)
	for i, ball := range balls {
		daysNorm := float64(daysByBall[ball]) / daysDivisor
		freqNorm := float64(drawnByBall[ball]) / drawnDivisor
		weights[i] = g.weights.OverdueWeight*daysNorm +
			g.weights.FrequencyWeight*freqNorm +
			g.weights.BaseMinWeight
	}

	drawn := sampleWithReplacement(g.rng, balls, weights, oversampleFactor*rowSize)
	if drawn == nil {
		g.logger.Warn("Blend sampling failed, degrading to uniform sample")
		return uniformSample(g.rng, balls, rowSize)
	}

	row := firstSeenUnique(drawn, rowSize)
	if len(row) < rowSize {
		row = fillMostOverdue(row, balls, daysByBall, rowSize)
	}
	return row
}

// FrequencyWeightedRow draws one row without replacement, weighted by drawn
// count, from the pool minus the excluded balls. When the weighting is
// unusable or the sample comes up short, the row is filled from the residual
// pool in frequency order.
func (g *Generator) FrequencyWeightedRow(
	records []stats.FrequencyEntry,
	exclude map[int]bool,
	rowSize int,
) []int {
	balls := make([]int, 0, len(records))
	weights := make([]float64, 0, len(records))
	for _, record := range records {
		if !record.DrawnOK || exclude[record.Ball] {
			continue
		}
		balls = append(balls, record.Ball)
		weights = append(weights, float64(record.Drawn))
	}

	row := sampleWithoutReplacement(g.rng, balls, weights, rowSize)
	if len(row) < rowSize {
		g.logger.Warn("Weighted remainder sample short, filling by frequency rank",
			"got", len(row), "needed", rowSize)
		row = fillByFrequency(row, records, exclude, rowSize)
	}
	return row
}

// RandomPick draws count values uniformly from the ranked list, preserving
// uniqueness but not rank order.
func (g *Generator) RandomPick(ranked []int, count int) []int {
	return uniformSample(g.rng, ranked, count)
}

// UniformExcluding draws a uniform random row from the pool minus the
// excluded balls. Falls back to the full pool when the exclusion leaves too
// few candidates.
func (g *Generator) UniformExcluding(poolSize int, exclude map[int]bool, rowSize int) []int {
	candidates := make([]int, 0, poolSize)
	for ball := 1; ball <= poolSize; ball++ {
		if !exclude[ball] {
			candidates = append(candidates, ball)
		}
	}
	if len(candidates) < rowSize {
		g.logger.Warn("Exclusion leaves too few candidates, sampling full pool",
			"candidates", len(candidates), "needed", rowSize)
		candidates = fullPool(poolSize)
	}
	return uniformSample(g.rng, candidates, rowSize)
}

// fillUniform pads a short row with uniformly chosen unused balls.
func (g *Generator) fillUniform(row, pool []int, rowSize int) []int {
	if len(row) >= rowSize {
		return row
	}

	used := make(map[int]bool, len(row))
	for _, ball := range row {
		used[ball] = true
	}
	unused := make([]int, 0, len(pool))
	for _, ball := range pool {
		if !used[ball] {
			unused = append(unused, ball)
		}
	}

	fill := uniformSample(g.rng, unused, rowSize-len(row))
	return append(row, fill...)
}

// fillMostOverdue pads a short row with the most overdue unused balls,
// deterministically: days descending, ball ascending.
func fillMostOverdue(row, pool []int, daysByBall map[int]int, rowSize int) []int {
	used := make(map[int]bool, len(row))
	for _, ball := range row {
		used[ball] = true
	}

	ranked := make([]int, 0, len(pool))
	for _, ball := range pool {
		if !used[ball] {
			ranked = append(ranked, ball)
		}
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		if daysByBall[ranked[i]] != daysByBall[ranked[j]] {
			return daysByBall[ranked[i]] > daysByBall[ranked[j]]
		}
		return ranked[i] < ranked[j]
	})

	for _, ball := range ranked {
		if len(row) >= rowSize {
			break
		}
		row = append(row, ball)
	}
	return row
}

// fillByFrequency pads a short row from the non-excluded records in drawn
// count order, highest first.
func fillByFrequency(row []int, records []stats.FrequencyEntry, exclude map[int]bool, rowSize int) []int {
	used := make(map[int]bool, len(row))
	for _, ball := range row {
		used[ball] = true
	}

	candidates := make([]stats.FrequencyEntry, 0, len(records))
	for _, record := range records {
		if record.DrawnOK && !exclude[record.Ball] && !used[record.Ball] {
			candidates = append(candidates, record)
		}
	}

	for _, ball := range picker.ByFrequency(candidates, rowSize-len(row), true) {
		row = append(row, ball)
	}
	return row
}

// drawnCounts maps ball number to parsed drawn count.
func drawnCounts(records []stats.FrequencyEntry) map[int]int {
	counts := make(map[int]int, len(records))
	for _, record := range records {
		if record.DrawnOK {
			counts[record.Ball] = record.Drawn
		}
	}
	return counts
}

// fullPool lists every ball from 1 through poolSize.
func fullPool(poolSize int) []int {
	pool := make([]int, poolSize)
	for i := range pool {
		pool[i] = i + 1
	}
	return pool
}
