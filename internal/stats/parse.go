package stats

import (
	"strconv"
	"strings"
)

// RowCells holds the trimmed cell texts of one table row. Balls carries the
// text of ball-marker cells (span.ball) separately since a ball cell may also
// contain other text.
type RowCells struct {
	// Cells is every cell text in row order.
	Cells []string
	// Balls is the text of each ball marker in the row.
	Balls []string
	// HasHeader reports whether the row contains a header cell.
	HasHeader bool
}

// accept reports whether the row should be parsed for the given column arity.
// A row is parsed when its cell count matches the arity, or when it carries
// at least one ball marker; heading and malformed rows are skipped.
func (r RowCells) accept(arity int) bool {
	if !r.HasHeader && len(r.Cells) == arity {
		return true
	}
	return len(r.Balls) > 0
}

// parseCount parses a drawn-count cell, stripping thousands separators.
func parseCount(text string) (int, bool) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(text), ",", "")
	count, err := strconv.Atoi(cleaned)
	if err != nil || count < 0 {
		return 0, false
	}
	return count, true
}

// parseBall parses a ball-number cell and validates it against the pool.
// Out-of-range balls are rejected, not clamped.
func parseBall(text string, poolSize int) (int, bool) {
	ball, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil || ball < 1 || ball > poolSize {
		return 0, false
	}
	return ball, true
}

// cell returns the i-th cell text, or "" when the row is short.
func (r RowCells) cell(i int) string {
	if i < 0 || i >= len(r.Cells) {
		return ""
	}
	return r.Cells[i]
}

// ParseFrequencyRows converts raw table rows into frequency entries. The
// arity is the expected cell count: ball, drawn count, then an optional
// recency column. Rows whose ball number fails to parse are dropped; a failed
// count keeps the raw text on a degraded record.
func ParseFrequencyRows(rows []RowCells, arity, poolSize int) []FrequencyEntry {
	entries := make([]FrequencyEntry, 0, len(rows))
	for _, row := range rows {
		if !row.accept(arity) || len(row.Balls) == 0 {
			continue
		}

		ball, ok := parseBall(row.Balls[0], poolSize)
		if !ok {
			// Ball identity is load-bearing for every downstream selector.
			continue
		}

		entry := FrequencyEntry{Ball: ball}
		countText := row.cell(1)
		if count, countOK := parseCount(countText); countOK {
			entry.Drawn = count
			entry.DrawnOK = true
		} else {
			entry.DrawnRaw = countText
		}
		if arity >= 3 {
			entry.LastDrawn = row.cell(arity - 1)
		}
		entries = append(entries, entry)
	}
	return entries
}

// ParseOverdueRows converts raw table rows into overdue entries. The expected
// shape is two cells: ball, recency text.
func ParseOverdueRows(rows []RowCells, poolSize int) []OverdueEntry {
	const arity = 2

	entries := make([]OverdueEntry, 0, len(rows))
	for _, row := range rows {
		if !row.accept(arity) || len(row.Balls) == 0 {
			continue
		}

		ball, ok := parseBall(row.Balls[0], poolSize)
		if !ok {
			continue
		}

		entries = append(entries, OverdueEntry{
			Ball:      ball,
			LastDrawn: strings.TrimSpace(row.cell(1)),
		})
	}
	return entries
}

// ParseGroupRows converts raw table rows into pair or triplet entries. The
// arity is the expected cell count: the group members each in their own cell,
// then the drawn count. Rows where any group member fails to parse are
// dropped.
func ParseGroupRows(rows []RowCells, arity, poolSize int) []GroupEntry {
	groupSize := arity - 1

	entries := make([]GroupEntry, 0, len(rows))
	for _, row := range rows {
		if !row.accept(arity) || len(row.Balls) != groupSize {
			continue
		}

		balls := make([]int, 0, groupSize)
		allParsed := true
		for _, text := range row.Balls {
			ball, ok := parseBall(text, poolSize)
			if !ok {
				allParsed = false
				break
			}
			balls = append(balls, ball)
		}
		if !allParsed {
			continue
		}

		entry := GroupEntry{Balls: balls}
		countText := row.cell(arity - 1)
		if count, countOK := parseCount(countText); countOK {
			entry.Drawn = count
			entry.DrawnOK = true
		} else {
			entry.DrawnRaw = countText
		}
		entries = append(entries, entry)
	}
	return entries
}
