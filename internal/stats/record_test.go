package stats_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonesrussell/ozstats/internal/stats"
)

func TestParseDaysAgo(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		text     string
		expected int
	}{
		{"empty text", "", stats.NotOverdue},
		{"plural days", "12 days ago", 12},
		{"singular day", "1 day ago", 1},
		{"mixed case", "Last drawn 30 Days Ago", 30},
		{"trailing detail", "105 days ago (15 draws ago)", 105},
		{"yesterday", "Yesterday", stats.MostOverdue},
		{"last draw", "last draw", stats.MostOverdue},
		{"number without token", "drawn 3 times", stats.MostOverdue},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, stats.ParseDaysAgo(tt.text))
		})
	}
}

func TestOverdueEntry_DaysAgo(t *testing.T) {
	t.Parallel()

	entry := stats.OverdueEntry{Ball: 5, LastDrawn: "44 days ago"}
	assert.Equal(t, 44, entry.DaysAgo())

	blank := stats.OverdueEntry{Ball: 6}
	assert.Equal(t, stats.NotOverdue, blank.DaysAgo())
}

func TestStatistics_CategoryCounts(t *testing.T) {
	t.Parallel()

	statistics := &stats.Statistics{
		Numerical: []stats.FrequencyEntry{{Ball: 1}, {Ball: 2}},
		Hot:       []stats.FrequencyEntry{{Ball: 3}},
		Cold:      []stats.OverdueEntry{{Ball: 4}},
		Pairs:     []stats.GroupEntry{{Balls: []int{1, 2}}},
	}

	counts := statistics.CategoryCounts()
	assert.Equal(t, 2, counts[stats.CategoryNumerical])
	assert.Equal(t, 1, counts[stats.CategoryHot])
	assert.Equal(t, 1, counts[stats.CategoryCold])
	assert.Equal(t, 0, counts[stats.CategoryLeastOften])
	assert.Equal(t, 1, counts[stats.CategoryPairs])
	assert.Equal(t, 0, counts[stats.CategoryConsecTriplets])
}
