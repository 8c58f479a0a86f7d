// Package generate implements the generate command: the full fetch, extract,
// and row generation pipeline.
package generate

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jonesrussell/ozstats/cmd/common"
)

// Command returns the generate command.
func Command() *cobra.Command {
	var (
		gameID     string
		outputFile string
		forceFetch bool
		noSave     bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate suggested number rows from the latest statistics",
		Long: `Fetch the statistics page (or reuse a recent cached copy), extract
ball statistics, and generate one row per selection strategy. The rows are
printed, written to the report file, and recorded in the run history.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			return common.RunPipeline(cmd.Context(), deps, common.PipelineOptions{
				GameID:     gameID,
				OutputFile: outputFile,
				ForceFetch: forceFetch,
				SkipSave:   noSave,
			})
		},
	}

	cmd.Flags().StringVar(&gameID, "game", "", "game profile id (default from config)")
	cmd.Flags().StringVarP(&outputFile, "output", "o", "", "report file (default from config)")
	cmd.Flags().BoolVar(&forceFetch, "force-fetch", false, "download the page even if the cache is fresh")
	cmd.Flags().BoolVar(&noSave, "no-save", false, "skip recording the run in history")

	return cmd
}
