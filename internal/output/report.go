// Package output formats generated rows as a text report file and as a
// console table.
package output

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/jonesrussell/ozstats/internal/rows"
)

// reportTimeFormat is the timestamp layout used in the report header.
const reportTimeFormat = "2006-01-02 15:04:05"

// Report holds everything the text report needs.
type Report struct {
	// GameName is the human-readable game name.
	GameName string
	// SourcePath is the cached page snapshot the statistics came from.
	SourcePath string
	// GeneratedAt is when the rows were generated.
	GeneratedAt time.Time
	// Results is the full ordered row set, including skipped and duplicate
	// slots.
	Results []rows.Result
}

// Render builds the report text. Skipped slots keep their position with a
// "skipped" marker; duplicate slots carry a "duplicate" marker instead of
// repeating the numbers.
func (r *Report) Render() string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s number suggestions based on stats from %s\n",
		r.GameName, filepath.Base(r.SourcePath))
	fmt.Fprintf(&b, "# Generated on: %s\n", r.GeneratedAt.Format(reportTimeFormat))
	for i, result := range r.Results {
		fmt.Fprintf(&b, "# Row %d: %s\n", i+1, result.Strategy.Description())
	}
	b.WriteString("\n")

	for i, result := range r.Results {
		switch {
		case result.Skipped:
			fmt.Fprintf(&b, "Row %d: skipped\n", i+1)
		case result.Duplicate:
			fmt.Fprintf(&b, "Row %d: duplicate\n", i+1)
		default:
			fmt.Fprintf(&b, "Row %d: %s\n", i+1, result.Row.String())
		}
	}

	return b.String()
}

// Write renders the report and writes it to path.
func (r *Report) Write(path string) error {
	if err := os.WriteFile(path, []byte(r.Render()), 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
