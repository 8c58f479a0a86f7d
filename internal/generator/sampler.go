package generator

import "math/rand"

// weightedEntry pairs one ball with its sampling weight and the running
// cumulative total up through this entry.
type weightedEntry struct {
	ball       int
	weight     float64
	cumulative float64
}

// buildWeighted computes cumulative totals for a ball/weight pairing.
// Returns nil when the lists are mismatched or the total weight is not
// positive.
func buildWeighted(balls []int, weights []float64) []weightedEntry {
	if len(balls) == 0 || len(balls) != len(weights) {
		return nil
	}

	entries := make([]weightedEntry, 0, len(balls))
	total := 0.0
	for i, ball := range balls {
		weight := weights[i]
		if weight < 0 {
			weight = 0
		}
		total += weight
		entries = append(entries, weightedEntry{
			ball:       ball,
			weight:     weight,
			cumulative: total,
		})
	}
	if total <= 0 {
		return nil
	}
	return entries
}

// drawOne picks one entry index proportional to weight.
func drawOne(rng *rand.Rand, entries []weightedEntry) int {
	total := entries[len(entries)-1].cumulative
	target := rng.Float64() * total
	for i := range entries {
		if target < entries[i].cumulative {
			return i
		}
	}
	return len(entries) - 1
}

// sampleWithReplacement draws count balls proportional to weight, with
// replacement, so the result may repeat balls. Returns nil when the weighting
// is unusable.
func sampleWithReplacement(rng *rand.Rand, balls []int, weights []float64, count int) []int {
	entries := buildWeighted(balls, weights)
	if entries == nil {
		return nil
	}

	drawn := make([]int, 0, count)
	for i := 0; i < count; i++ {
		drawn = append(drawn, entries[drawOne(rng, entries)].ball)
	}
	return drawn
}

// sampleWithoutReplacement draws up to count distinct balls proportional to
// weight. Each chosen entry is removed from the working list and the
// cumulative totals of the entries after it are adjusted, keeping the loop
// bounded and the behavior auditable. Returns fewer than count balls when the
// pool exhausts, and nil when the weighting is unusable.
func sampleWithoutReplacement(rng *rand.Rand, balls []int, weights []float64, count int) []int {
	entries := buildWeighted(balls, weights)
	if entries == nil {
		return nil
	}

	drawn := make([]int, 0, count)
	for len(drawn) < count && len(entries) > 0 {
		idx := drawOne(rng, entries)
		picked := entries[idx]
		drawn = append(drawn, picked.ball)

		entries = append(entries[:idx], entries[idx+1:]...)
		for i := idx; i < len(entries); i++ {
			entries[i].cumulative -= picked.weight
		}
		if len(entries) > 0 && entries[len(entries)-1].cumulative <= 0 {
			break
		}
	}
	return drawn
}

// uniformSample draws count distinct balls uniformly from the pool. Returns
// fewer when the pool is smaller than count.
func uniformSample(rng *rand.Rand, pool []int, count int) []int {
	if len(pool) == 0 {
		return nil
	}
	if count > len(pool) {
		count = len(pool)
	}

	perm := rng.Perm(len(pool))
	drawn := make([]int, 0, count)
	for _, idx := range perm[:count] {
		drawn = append(drawn, pool[idx])
	}
	return drawn
}

// firstSeenUnique keeps the first occurrence of each ball, preserving order,
// truncated to limit values.
func firstSeenUnique(drawn []int, limit int) []int {
	unique := make([]int, 0, limit)
	seen := make(map[int]bool, limit)
	for _, ball := range drawn {
		if seen[ball] {
			continue
		}
		unique = append(unique, ball)
		seen[ball] = true
		if len(unique) == limit {
			break
		}
	}
	return unique
}
