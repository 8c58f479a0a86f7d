// Package history implements the history command that lists stored
// generation runs in a formatted table.
package history

import (
	"errors"
	"fmt"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/ozstats/cmd/common"
	"github.com/jonesrussell/ozstats/internal/storage"
)

// defaultLimit is how many runs are listed when no --limit flag is given.
const defaultLimit = 10

// Command returns the history command.
func Command() *cobra.Command {
	var (
		limit    int
		showRows bool
	)

	cmd := &cobra.Command{
		Use:   "history",
		Short: "List stored generation runs",
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}
			if !deps.Config.HistoryEnabled() {
				return errors.New("run history is disabled (storage.path is empty)")
			}

			db, err := storage.Open(&deps.Config.Storage)
			if err != nil {
				return err
			}
			defer db.Close()

			repo := storage.NewRunRepository(db)
			runs, err := repo.List(cmd.Context(), limit)
			if err != nil {
				return err
			}

			t := table.NewWriter()
			t.SetOutputMirror(os.Stdout)
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Run", "Game", "Source", "Created"})
			for _, run := range runs {
				t.AppendRow(table.Row{run.ID, run.Game, run.SourcePath,
					run.CreatedAt.Format("2006-01-02 15:04")})
			}
			t.Render()

			if !showRows {
				return nil
			}
			for _, run := range runs {
				if err := renderRunRows(cmd, repo, run.ID); err != nil {
					return err
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "limit", defaultLimit, "maximum runs to list")
	cmd.Flags().BoolVar(&showRows, "rows", false, "also list each run's rows")
	return cmd
}

// renderRunRows prints the stored rows of one run.
func renderRunRows(cmd *cobra.Command, repo *storage.RunRepository, runID string) error {
	runRows, err := repo.RowsForRun(cmd.Context(), runID)
	if err != nil {
		return err
	}

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetStyle(table.StyleLight)
	t.SetTitle(runID)
	t.AppendHeader(table.Row{"#", "Strategy", "Numbers", "Note"})
	for _, row := range runRows {
		note := ""
		if row.Skipped {
			note = "skipped"
		} else if row.Duplicate {
			note = "duplicate"
		}
		t.AppendRow(table.Row{row.Position, row.Strategy, row.Numbers, note})
	}
	t.Render()
	return nil
}
