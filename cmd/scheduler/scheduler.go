// Package scheduler implements the scheduler command that runs the
// generation pipeline on a cron schedule.
package scheduler

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/jonesrussell/ozstats/cmd/common"
)

// defaultSchedule runs every Monday at 09:00, matching the weekly cadence of
// the source page's refresh.
const defaultSchedule = "0 9 * * 1"

// Command returns the scheduler command.
func Command() *cobra.Command {
	var (
		schedule   string
		gameID     string
		runOnStart bool
	)

	cmd := &cobra.Command{
		Use:   "scheduler",
		Short: "Run the generation pipeline on a schedule",
		Long: `Run the full generation pipeline periodically. The scheduler runs
until interrupted with Ctrl+C.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			deps, err := common.NewCommandDeps()
			if err != nil {
				return fmt.Errorf("failed to initialize dependencies: %w", err)
			}

			runOnce := func() {
				opts := common.PipelineOptions{GameID: gameID}
				if runErr := common.RunPipeline(cmd.Context(), deps, opts); runErr != nil {
					deps.Logger.Error("Scheduled run failed", "error", runErr)
				}
			}

			c := cron.New()
			if _, err := c.AddFunc(schedule, runOnce); err != nil {
				return fmt.Errorf("invalid schedule %q: %w", schedule, err)
			}

			if runOnStart {
				runOnce()
			}

			deps.Logger.Info("Scheduler started", "schedule", schedule)
			c.Start()
			defer c.Stop()

			sig := make(chan os.Signal, 1)
			signal.Notify(sig, os.Interrupt, syscall.SIGTERM)
			<-sig
			deps.Logger.Info("Scheduler stopping")
			return nil
		},
	}

	cmd.Flags().StringVar(&schedule, "schedule", defaultSchedule, "cron schedule expression")
	cmd.Flags().StringVar(&gameID, "game", "", "game profile id (default from config)")
	cmd.Flags().BoolVar(&runOnStart, "run-on-start", false, "run once immediately before scheduling")
	return cmd
}
