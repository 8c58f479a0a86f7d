package output

import (
	"io"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/jonesrussell/ozstats/internal/rows"
	"github.com/jonesrussell/ozstats/internal/stats"
)

// TableRenderer displays generated rows and extracted statistics as console
// tables.
type TableRenderer struct {
	out io.Writer
}

// NewTableRenderer creates a renderer writing to the given output.
func NewTableRenderer(out io.Writer) *TableRenderer {
	return &TableRenderer{out: out}
}

// RenderResults formats the generated row set.
func (r *TableRenderer) RenderResults(results []rows.Result) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)

	t.AppendHeader(table.Row{"#", "Strategy", "Numbers", "Note"})
	for i, result := range results {
		note := ""
		numbers := ""
		switch {
		case result.Skipped:
			note = "skipped"
		case result.Duplicate:
			note = "duplicate"
			numbers = result.Row.String()
		default:
			numbers = result.Row.String()
		}
		t.AppendRow(table.Row{i + 1, string(result.Strategy), numbers, note})
	}

	t.Render()
}

// RenderFrequencies formats a frequency category.
func (r *TableRenderer) RenderFrequencies(title string, entries []stats.FrequencyEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)

	t.AppendHeader(table.Row{"Ball", "Drawn", "Last Drawn"})
	for _, entry := range entries {
		drawn := entry.DrawnRaw
		if entry.DrawnOK {
			drawn = formatInt(entry.Drawn)
		}
		t.AppendRow(table.Row{entry.Ball, drawn, entry.LastDrawn})
	}

	t.Render()
}

// RenderOverdue formats the overdue category with its parsed day counts.
func (r *TableRenderer) RenderOverdue(title string, entries []stats.OverdueEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)

	t.AppendHeader(table.Row{"Ball", "Last Drawn", "Days Ago"})
	for _, entry := range entries {
		t.AppendRow(table.Row{entry.Ball, entry.LastDrawn, entry.DaysAgo()})
	}

	t.Render()
}

// RenderGroups formats a pair or triplet category.
func (r *TableRenderer) RenderGroups(title string, entries []stats.GroupEntry) {
	t := table.NewWriter()
	t.SetOutputMirror(r.out)
	t.SetStyle(table.StyleLight)
	t.SetTitle(title)

	t.AppendHeader(table.Row{"Balls", "Drawn"})
	for _, entry := range entries {
		drawn := entry.DrawnRaw
		if entry.DrawnOK {
			drawn = formatInt(entry.Drawn)
		}
		t.AppendRow(table.Row{formatBalls(entry.Balls), drawn})
	}

	t.Render()
}
