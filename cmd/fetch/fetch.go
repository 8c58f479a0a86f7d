// Package fetch implements the fetch command for refreshing the cached
// statistics page.
package fetch

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/ozstats/cmd/common"
	"github.com/jonesrussell/ozstats/internal/fetcher"
)

// Command returns the fetch command.
func Command() *cobra.Command {
	var gameID string

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Download the statistics page, ignoring cache age",
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
				Fetch(cmd.Context(), game.ID, game.StatsURL, true)
			if err != nil {
				return err
			}

			if doc.FromCache {
				fmt.Printf("Download failed; newest cached copy is %s\n", doc.Path)
				return nil
			}
			fmt.Printf("Saved %s\n", doc.Path)
			return nil
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "game profile id (default from config)")
	return cmd
}
