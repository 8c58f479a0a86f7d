// Package picker provides deterministic number selection over extracted ball
// statistics: frequency ranking, overdue ranking, and unique-union merging.
// Every function is pure and stable over the same input.
package picker

import (
	"sort"

	"github.com/jonesrussell/ozstats/internal/stats"
)

// ByFrequency returns up to count ball numbers ranked by drawn count.
// Records whose count failed to parse are ignored. The primary sort is the
// drawn count (descending when highest is true); the ball number breaks ties,
// always ascending, so the result is deterministic.
func ByFrequency(records []stats.FrequencyEntry, count int, highest bool) []int {
	valid := make([]stats.FrequencyEntry, 0, len(records))
	for _, record := range records {
		if record.DrawnOK {
			valid = append(valid, record)
		}
	}

	sort.SliceStable(valid, func(i, j int) bool {
		if valid[i].Drawn != valid[j].Drawn {
			if highest {
				return valid[i].Drawn > valid[j].Drawn
			}
			return valid[i].Drawn < valid[j].Drawn
		}
		return valid[i].Ball < valid[j].Ball
	})

	return takeUniqueBalls(valid, count)
}

// ByLeastFrequent returns up to count ball numbers ranked by lowest drawn
// count first.
func ByLeastFrequent(records []stats.FrequencyEntry, count int) []int {
	return ByFrequency(records, count, false)
}

// ByOverdue returns up to count ball numbers ranked by how long they have
// gone undrawn, longest absence first. Days-ago sentinels follow the stats
// package conventions; the ball number breaks ties ascending.
func ByOverdue(records []stats.OverdueEntry, count int) []int {
	if count <= 0 {
		return nil
	}

	type overdue struct {
		ball    int
		daysAgo int
	}

	ranked := make([]overdue, 0, len(records))
	for _, record := range records {
		ranked = append(ranked, overdue{
			ball:    record.Ball,
			daysAgo: record.DaysAgo(),
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		if ranked[i].daysAgo != ranked[j].daysAgo {
			return ranked[i].daysAgo > ranked[j].daysAgo
		}
		return ranked[i].ball < ranked[j].ball
	})

	selected := make([]int, 0, count)
	seen := make(map[int]bool, count)
	for _, item := range ranked {
		if seen[item.ball] {
			continue
		}
		selected = append(selected, item.ball)
		seen[item.ball] = true
		if len(selected) == count {
			break
		}
	}
	return selected
}

// UnionSelect builds a combined unique list: up to takeA numbers from listA
// in order, then up to takeB from listB, then — if still short of total —
// the remainder of listA and finally the remainder of listB. Numbers already
// chosen are skipped without blocking progress through either list. The
// result holds at most total unique values and may be shorter when both
// pools exhaust; the caller must check the length.
func UnionSelect(listA []int, takeA int, listB []int, takeB, total int) []int {
	selected := make([]int, 0, total)
	seen := make(map[int]bool, total)

	idxA := 0
	for added := 0; idxA < len(listA) && added < takeA && len(selected) < total; idxA++ {
		if num := listA[idxA]; !seen[num] {
			selected = append(selected, num)
			seen[num] = true
			added++
		}
	}

	idxB := 0
	for added := 0; idxB < len(listB) && added < takeB && len(selected) < total; idxB++ {
		if num := listB[idxB]; !seen[num] {
			selected = append(selected, num)
			seen[num] = true
			added++
		}
	}

	for ; idxA < len(listA) && len(selected) < total; idxA++ {
		if num := listA[idxA]; !seen[num] {
			selected = append(selected, num)
			seen[num] = true
		}
	}
	for ; idxB < len(listB) && len(selected) < total; idxB++ {
		if num := listB[idxB]; !seen[num] {
			selected = append(selected, num)
			seen[num] = true
		}
	}

	return selected
}

// takeUniqueBalls returns the first count distinct ball numbers from the
// sorted records.
func takeUniqueBalls(records []stats.FrequencyEntry, count int) []int {
	if count <= 0 {
		return nil
	}

	selected := make([]int, 0, count)
	seen := make(map[int]bool, count)
	for _, record := range records {
		if seen[record.Ball] {
			continue
		}
		selected = append(selected, record.Ball)
		seen[record.Ball] = true
		if len(selected) == count {
			break
		}
	}
	return selected
}
