// Package statscmd implements the stats command for displaying extracted
// ball statistics in table form.
package statscmd

import (
	"bytes"
	"fmt"
	"os"

	"github.com/PuerkitoBio/goquery"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/ozstats/cmd/common"
	"github.com/jonesrussell/ozstats/internal/fetcher"
	"github.com/jonesrussell/ozstats/internal/output"
	"github.com/jonesrussell/ozstats/internal/stats"
)

// Command returns the stats command.
func Command() *cobra.Command {
	var (
		gameID   string
		category string
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Show extracted ball statistics",
		Long: `Fetch the statistics page (or reuse a recent cached copy), extract
every statistics category, and display the requested category as a table.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			game, err := deps.ResolveGame(gameID)
			if err != nil {
				return err
			}

			doc, err := fetcher.New(&deps.Config.Fetcher, deps.Logger).
				Fetch(cmd.Context(), game.ID, game.StatsURL, false)
			if err != nil {
				return err
			}

			tree, err := goquery.NewDocumentFromReader(bytes.NewReader(doc.Body))
			if err != nil {
				return fmt.Errorf("failed to parse statistics page: %w", err)
			}

			statistics := stats.NewExtractor(deps.Logger).Extract(tree, &game)
			return render(output.NewTableRenderer(os.Stdout), statistics, stats.Category(category))
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "game profile id (default from config)")
	cmd.Flags().StringVar(&category, "category", "numerical",
		"category to display (numerical, hot, cold, least_often, pairs, consec_pairs, triplets, consec_triplets)")

	return cmd
}

// render displays one statistics category.
func render(renderer *output.TableRenderer, statistics *stats.Statistics, category stats.Category) error {
	switch category {
	case stats.CategoryNumerical:
		renderer.RenderFrequencies("Ordered by Ball Number", statistics.Numerical)
	case stats.CategoryHot:
		renderer.RenderFrequencies("Hot Numbers (Most Common)", statistics.Hot)
	case stats.CategoryCold:
		renderer.RenderOverdue("Cold Numbers (Most Overdue)", statistics.Cold)
	case stats.CategoryLeastOften:
		renderer.RenderFrequencies("Least Often Picked Numbers", statistics.LeastOften)
	case stats.CategoryPairs:
		renderer.RenderGroups("Most Common Pairs", statistics.Pairs)
	case stats.CategoryConsecPairs:
		renderer.RenderGroups("Most Common Consecutive Pairs", statistics.ConsecPairs)
	case stats.CategoryTriplets:
		renderer.RenderGroups("Most Common Triplets", statistics.Triplets)
	case stats.CategoryConsecTriplets:
		renderer.RenderGroups("Most Common Consecutive Triplets", statistics.ConsecTriplets)
	default:
		return fmt.Errorf("unknown category: %s", category)
	}
	return nil
}
