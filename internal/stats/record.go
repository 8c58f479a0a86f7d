// Package stats defines the typed ball statistics extracted from a lottery
// statistics page and the goquery-based extraction that produces them.
package stats

import (
	"regexp"
	"strconv"
)

// Category names a statistics section on the source page.
type Category string

// Known statistics categories. Every category is always present on a
// Statistics value; a section missing from the page yields an empty slice.
const (
	CategoryNumerical      Category = "numerical"
	CategoryHot            Category = "hot"
	CategoryCold           Category = "cold"
	CategoryLeastOften     Category = "least_often"
	CategoryPairs          Category = "pairs"
	CategoryConsecPairs    Category = "consec_pairs"
	CategoryTriplets       Category = "triplets"
	CategoryConsecTriplets Category = "consec_triplets"
)

// NotOverdue is the days-ago value for a ball with no recency text.
const NotOverdue = 0

// MostOverdue is the days-ago value for recency text that carries no parsable
// day count ("yesterday", "last draw"). A non-empty note that does not match
// the pattern is treated as an unusually long absence.
const MostOverdue = 9999

// FrequencyEntry records how often a single ball has been drawn.
// Used for the numerical-order, hot, and least-often categories.
type FrequencyEntry struct {
	// Ball is the ball number, always in [1, pool size].
	Ball int
	// Drawn is the parsed drawn count. Only valid when DrawnOK is true.
	Drawn int
	// DrawnOK reports whether the count text parsed as an integer.
	DrawnOK bool
	// DrawnRaw keeps the original count text when DrawnOK is false.
	DrawnRaw string
	// LastDrawn is the free-text recency description, when the section has one.
	LastDrawn string
}

// OverdueEntry records how long a single ball has gone undrawn.
type OverdueEntry struct {
	// Ball is the ball number, always in [1, pool size].
	Ball int
	// LastDrawn is the free-text recency description; empty when the source
	// row had none.
	LastDrawn string
}

// daysAgoPattern matches the first integer immediately preceding the token
// "day ago" or "days ago", case-insensitive.
var daysAgoPattern = regexp.MustCompile(`(?i)(\d+)\s+days?\s+ago`)

// DaysAgo parses the recency text into a day count. An empty LastDrawn yields
// NotOverdue; non-empty text without a day count yields MostOverdue.
func (e OverdueEntry) DaysAgo() int {
	return ParseDaysAgo(e.LastDrawn)
}

// ParseDaysAgo extracts a "N day(s) ago" day count from free text, applying
// the NotOverdue/MostOverdue sentinels for missing or unparsable text.
func ParseDaysAgo(text string) int {
	if text == "" {
		return NotOverdue
	}
	match := daysAgoPattern.FindStringSubmatch(text)
	if match == nil {
		return MostOverdue
	}
	days, err := strconv.Atoi(match[1])
	if err != nil {
		return MostOverdue
	}
	return days
}

// GroupEntry records how often a pair or triplet of balls has been drawn
// together. Stored for completeness; the selection strategies do not consume
// groups.
type GroupEntry struct {
	// Balls holds the group members in source order, length 2 or 3.
	Balls []int
	// Drawn is the parsed drawn count. Only valid when DrawnOK is true.
	Drawn int
	// DrawnOK reports whether the count text parsed as an integer.
	DrawnOK bool
	// DrawnRaw keeps the original count text when DrawnOK is false.
	DrawnRaw string
}

// Statistics holds every extracted category. The zero value is a valid,
// entirely empty statistics snapshot.
type Statistics struct {
	// Numerical lists every ball in the pool with its drawn count, ordered by
	// ball number. This is the primary frequency source.
	Numerical []FrequencyEntry
	// Hot lists the most commonly drawn balls.
	Hot []FrequencyEntry
	// LeastOften lists the least commonly drawn balls.
	LeastOften []FrequencyEntry
	// Cold lists the most overdue balls.
	Cold []OverdueEntry

	Pairs          []GroupEntry
	ConsecPairs    []GroupEntry
	Triplets       []GroupEntry
	ConsecTriplets []GroupEntry
}

// CategoryCounts reports the number of extracted records per category.
func (s *Statistics) CategoryCounts() map[Category]int {
	return map[Category]int{
		CategoryNumerical:      len(s.Numerical),
		CategoryHot:            len(s.Hot),
		CategoryCold:           len(s.Cold),
		CategoryLeastOften:     len(s.LeastOften),
		CategoryPairs:          len(s.Pairs),
		CategoryConsecPairs:    len(s.ConsecPairs),
		CategoryTriplets:       len(s.Triplets),
		CategoryConsecTriplets: len(s.ConsecTriplets),
	}
}
