package stats

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/ozstats/internal/games"
	"github.com/jonesrussell/ozstats/internal/logger"
)

// Column arities of the known statistics tables: cell count per row,
// including the ball cells.
const (
	frequencyArity = 3
	overdueArity   = 2
	pairArity      = 3
	tripletArity   = 4
)

// Extractor converts a parsed statistics page into typed records.
type Extractor struct {
	logger logger.Interface
}

// NewExtractor creates a new statistics extractor.
func NewExtractor(log logger.Interface) *Extractor {
	return &Extractor{logger: log.WithComponent("extractor")}
}

// Extract pulls every known statistics category out of the document. A
// section missing from the page yields an empty category, never an error.
func (e *Extractor) Extract(doc *goquery.Document, game *games.Game) *Statistics {
	sel := game.Selectors
	result := &Statistics{}

	result.Numerical = e.extractNumericalOrder(doc, game)

	if table := e.findTableAfterHeading(doc, "h2", sel.HotHeading, sel.TableClass); table != nil {
		result.Hot = ParseFrequencyRows(collectRows(table), frequencyArity, game.PoolSize)
	}
	if table := e.findTableAfterHeading(doc, "h2", sel.ColdHeading, sel.TableClass); table != nil {
		result.Cold = ParseOverdueRows(collectRows(table), game.PoolSize)
	}
	if table := e.findTableAfterHeading(doc, "div", sel.LeastOftenHeading, sel.TableClass); table != nil {
		result.LeastOften = ParseFrequencyRows(collectRows(table), frequencyArity, game.PoolSize)
	}

	if table := e.findTableInBox(doc, sel.PairsHeading, sel.TableClass); table != nil {
		result.Pairs = ParseGroupRows(collectRows(table), pairArity, game.PoolSize)
	}
	if table := e.findTableInBox(doc, sel.ConsecPairsHeading, sel.TableClass); table != nil {
		result.ConsecPairs = ParseGroupRows(collectRows(table), pairArity, game.PoolSize)
	}
	if table := e.findTableInBox(doc, sel.TripletsHeading, sel.TableClass); table != nil {
		result.Triplets = ParseGroupRows(collectRows(table), tripletArity, game.PoolSize)
	}
	if table := e.findTableInBox(doc, sel.ConsecTripletsHeading, sel.TableClass); table != nil {
		result.ConsecTriplets = ParseGroupRows(collectRows(table), tripletArity, game.PoolSize)
	}

	counts := result.CategoryCounts()
	e.logger.Debug("Extracted statistics",
		"numerical", counts[CategoryNumerical],
		"hot", counts[CategoryHot],
		"cold", counts[CategoryCold],
		"least_often", counts[CategoryLeastOften],
	)

	return result
}

// findTableAfterHeading finds the first statistics table following a heading
// whose text contains the given string. Some pages wrap the table in a
// sibling container, so the heading's parent is also searched.
func (e *Extractor) findTableAfterHeading(
	doc *goquery.Document,
	headingTag, headingText, tableClass string,
) *goquery.Selection {
	if headingText == "" {
		return nil
	}

	heading := doc.Find(headingTag).FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), headingText)
	}).First()
	if heading.Length() == 0 {
		e.logger.Warn("Heading not found", "heading", headingText)
		return nil
	}

	tableSelector := "table." + tableClass
	if table := heading.NextAllFiltered(tableSelector).First(); table.Length() > 0 {
		return table
	}
	if table := heading.Parent().NextAllFiltered(tableSelector).First(); table.Length() > 0 {
		return table
	}
	if table := heading.Parent().Find(tableSelector).First(); table.Length() > 0 {
		return table
	}

	e.logger.Warn("Table after heading not found", "heading", headingText)
	return nil
}

// findTableInBox finds a table inside a two-column box labeled by a div.h3
// heading. This is the layout used for the pair and triplet sections.
func (e *Extractor) findTableInBox(
	doc *goquery.Document,
	headingText, tableClass string,
) *goquery.Selection {
	if headingText == "" {
		return nil
	}

	heading := doc.Find("div.h3").FilterFunction(func(_ int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), headingText)
	}).First()
	if heading.Length() == 0 {
		e.logger.Warn("Box heading not found", "heading", headingText)
		return nil
	}

	box := heading.ParentsFiltered("div.twoCol").First()
	if box.Length() == 0 {
		e.logger.Warn("Box container not found", "heading", headingText)
		return nil
	}

	table := box.Find("table." + tableClass).First()
	if table.Length() == 0 {
		e.logger.Warn("Table in box not found", "heading", headingText)
		return nil
	}
	return table
}

// extractNumericalOrder parses the ordered-by-ball-number listing. The result
// always covers the full pool: balls missing from the listing, or whose drawn
// count fails to parse, appear with a drawn count of zero.
func (e *Extractor) extractNumericalOrder(doc *goquery.Document, game *games.Game) []FrequencyEntry {
	listing := doc.Find("div#" + game.Selectors.NumericalOrderID)
	if listing.Length() == 0 {
		e.logger.Warn("Numerical order listing not found",
			"id", game.Selectors.NumericalOrderID)
		return nil
	}

	drawnByBall := make(map[int]int, game.PoolSize)
	listing.Find("div.tableCell").Each(func(_ int, cell *goquery.Selection) {
		ballText := strings.TrimSpace(cell.Find("div.ball").First().Text())
		ball, ok := parseBall(ballText, game.PoolSize)
		if !ok {
			return
		}

		drawnText := strings.TrimSpace(cell.Find("strong").First().Text())
		if count, countOK := parseCount(drawnText); countOK {
			drawnByBall[ball] = count
		} else {
			e.logger.Warn("Unparsable drawn count in numerical order, zero-filling",
				"ball", ball, "text", drawnText)
			drawnByBall[ball] = 0
		}
	})

	entries := make([]FrequencyEntry, 0, game.PoolSize)
	for ball := 1; ball <= game.PoolSize; ball++ {
		entries = append(entries, FrequencyEntry{
			Ball:    ball,
			Drawn:   drawnByBall[ball],
			DrawnOK: true,
		})
	}
	return entries
}

// collectRows gathers the cell texts of every row in a table. Rows inside
// tbody are preferred; tables without one are read directly.
func collectRows(table *goquery.Selection) []RowCells {
	rowSel := table.Find("tbody tr")
	if rowSel.Length() == 0 {
		rowSel = table.Find("tr")
	}

	rows := make([]RowCells, 0, rowSel.Length())
	rowSel.Each(func(_ int, tr *goquery.Selection) {
		row := RowCells{
			HasHeader: tr.Find("th").Length() > 0,
		}
		tr.Find("td, th").Each(func(_ int, cell *goquery.Selection) {
			row.Cells = append(row.Cells, strings.TrimSpace(cell.Text()))
		})
		tr.Find("span.ball").Each(func(_ int, ball *goquery.Selection) {
			row.Balls = append(row.Balls, strings.TrimSpace(ball.Text()))
		})
		rows = append(rows, row)
	})
	return rows
}
