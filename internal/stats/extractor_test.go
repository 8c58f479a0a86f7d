package stats_test

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/ozstats/internal/games"
	"github.com/jonesrussell/ozstats/internal/logger"
	"github.com/jonesrussell/ozstats/internal/stats"
)

// statsPageHTML mimics the statistics page layout: a numerical-order listing,
// heading-labelled hot/cold/least-often tables, and two-column pair boxes.
// Ball 6 is deliberately missing from the numerical listing.
const statsPageHTML = `<!DOCTYPE html>
<html>
<body>
  <div id="numericOrder">
    <div class="tableCell"><div class="ball">1</div><strong>280</strong></div>
    <div class="tableCell"><div class="ball">2</div><strong>310</strong></div>
    <div class="tableCell"><div class="ball">3</div><strong>295</strong></div>
    <div class="tableCell"><div class="ball">4</div><strong>1,002</strong></div>
    <div class="tableCell"><div class="ball">5</div><strong>bad</strong></div>
  </div>

  <h2>Hot Numbers (Most Common)</h2>
  <table class="table">
    <tbody>
      <tr><th>Ball</th><th>Frequency</th><th>Last Drawn</th></tr>
      <tr><td><span class="ball">4</span></td><td>1,002</td><td>3 days ago</td></tr>
      <tr><td><span class="ball">2</span></td><td>310</td><td>10 days ago</td></tr>
    </tbody>
  </table>

  <h2>Cold Numbers (Most Overdue)</h2>
  <table class="table">
    <tbody>
      <tr><td><span class="ball">1</span></td><td>90 days ago</td></tr>
      <tr><td><span class="ball">3</span></td><td>Yesterday</td></tr>
    </tbody>
  </table>

  <div>Least Often Picked Numbers</div>
  <table class="table">
    <tbody>
      <tr><td><span class="ball">5</span></td><td>12</td><td>40 days ago</td></tr>
    </tbody>
  </table>

  <div class="twoCol">
    <div class="h3">Most Common Pairs</div>
    <table class="table">
      <tbody>
        <tr><td><span class="ball">2</span></td><td><span class="ball">4</span></td><td>17</td></tr>
      </tbody>
    </table>
  </div>

  <div class="twoCol">
    <div class="h3">Most Common Triplets</div>
    <table class="table">
      <tbody>
        <tr><td><span class="ball">1</span></td><td><span class="ball">2</span></td><td><span class="ball">4</span></td><td>6</td></tr>
      </tbody>
    </table>
  </div>
</body>
</html>`

func testGame() *games.Game {
	return &games.Game{
		ID:            "test-lotto",
		Name:          "Test Lotto",
		StatsURL:      "https://example.com/statistics",
		PoolSize:      6,
		NumbersPerRow: 3,
		Selectors:     games.DefaultSelectors(),
	}
}

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestExtract_FullPage(t *testing.T) {
	t.Parallel()

	extractor := stats.NewExtractor(logger.NewNoOp())
	result := extractor.Extract(parseDoc(t, statsPageHTML), testGame())

	// Numerical covers the full pool; the missing ball and the unparsable
	// count both zero-fill.
	require.Len(t, result.Numerical, 6)
	for i, entry := range result.Numerical {
		assert.Equal(t, i+1, entry.Ball)
		assert.True(t, entry.DrawnOK)
	}
	assert.Equal(t, 280, result.Numerical[0].Drawn)
	assert.Equal(t, 1002, result.Numerical[3].Drawn)
	assert.Equal(t, 0, result.Numerical[4].Drawn)
	assert.Equal(t, 0, result.Numerical[5].Drawn)

	require.Len(t, result.Hot, 2)
	assert.Equal(t, 4, result.Hot[0].Ball)
	assert.Equal(t, 1002, result.Hot[0].Drawn)
	assert.Equal(t, "3 days ago", result.Hot[0].LastDrawn)

	require.Len(t, result.Cold, 2)
	assert.Equal(t, 1, result.Cold[0].Ball)
	assert.Equal(t, 90, result.Cold[0].DaysAgo())
	assert.Equal(t, stats.MostOverdue, result.Cold[1].DaysAgo())

	require.Len(t, result.LeastOften, 1)
	assert.Equal(t, 5, result.LeastOften[0].Ball)
	assert.Equal(t, 12, result.LeastOften[0].Drawn)

	require.Len(t, result.Pairs, 1)
	assert.Equal(t, []int{2, 4}, result.Pairs[0].Balls)
	assert.Equal(t, 17, result.Pairs[0].Drawn)

	require.Len(t, result.Triplets, 1)
	assert.Equal(t, []int{1, 2, 4}, result.Triplets[0].Balls)

	// Sections absent from the page yield empty categories.
	assert.Empty(t, result.ConsecPairs)
	assert.Empty(t, result.ConsecTriplets)
}

func TestExtract_EmptyPage(t *testing.T) {
	t.Parallel()

	extractor := stats.NewExtractor(logger.NewNoOp())
	result := extractor.Extract(parseDoc(t, "<html><body><p>maintenance</p></body></html>"), testGame())

	counts := result.CategoryCounts()
	for category, count := range counts {
		assert.Zero(t, count, "category %s should be empty", category)
	}
}

func TestExtract_HeadingWithoutTable(t *testing.T) {
	t.Parallel()

	const html = `<html><body>
	  <h2>Hot Numbers (Most Common)</h2>
	  <p>table temporarily unavailable</p>
	</body></html>`

	extractor := stats.NewExtractor(logger.NewNoOp())
	result := extractor.Extract(parseDoc(t, html), testGame())
	assert.Empty(t, result.Hot)
}
