package common

import (
	"bytes"
	"context"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/PuerkitoBio/goquery"

	"github.com/jonesrussell/ozstats/internal/fetcher"
	"github.com/jonesrussell/ozstats/internal/generator"
	"github.com/jonesrussell/ozstats/internal/output"
	"github.com/jonesrussell/ozstats/internal/rows"
	"github.com/jonesrussell/ozstats/internal/stats"
	"github.com/jonesrussell/ozstats/internal/storage"
)

// PipelineOptions controls one generation run.
type PipelineOptions struct {
	// GameID selects the game profile; empty uses the configured default.
	GameID string
	// OutputFile overrides the configured report path when non-empty.
	OutputFile string
	// ForceFetch downloads the page regardless of cache age.
	ForceFetch bool
	// SkipSave suppresses the run history record.
	SkipSave bool
}

// RunPipeline executes the full suggestion pipeline: fetch-if-stale, extract,
// generate rows, render, write the report, and record the run. No report file
// is written when row generation aborts.
func RunPipeline(ctx context.Context, deps CommandDeps, opts PipelineOptions) error {
	game, err := deps.ResolveGame(opts.GameID)
	if err != nil {
		return err
	}

	doc, err := fetcher.New(&deps.Config.Fetcher, deps.Logger).
		Fetch(ctx, game.ID, game.StatsURL, opts.ForceFetch)
	if err != nil {
		return err
	}

	tree, err := goquery.NewDocumentFromReader(bytes.NewReader(doc.Body))
	if err != nil {
		return fmt.Errorf("failed to parse statistics page: %w", err)
	}

	statistics := stats.NewExtractor(deps.Logger).Extract(tree, &game)

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	gen := generator.New(rng, deps.Config.Generator, deps.Logger)
	orchestrator := rows.NewOrchestrator(gen, deps.Logger, game.PoolSize, game.NumbersPerRow)

	results, err := orchestrator.Generate(statistics)
	if err != nil {
		return fmt.Errorf("row generation failed: %w", err)
	}

	output.NewTableRenderer(os.Stdout).RenderResults(results)

	reportPath := opts.OutputFile
	if reportPath == "" {
		reportPath = deps.Config.Output.File
	}
	report := &output.Report{
		GameName:    game.Name,
		SourcePath:  doc.Path,
		GeneratedAt: time.Now(),
		Results:     results,
	}
	if err := report.Write(reportPath); err != nil {
		return err
	}
	deps.Logger.Info("Wrote suggestion report", "path", reportPath)

	if deps.Config.HistoryEnabled() && !opts.SkipSave {
		if err := saveRun(ctx, deps, game.ID, doc.Path, results); err != nil {
			// History is a convenience; a failed save does not undo the run.
			deps.Logger.Warn("Failed to record run history", "error", err)
		}
	}
	return nil
}

// saveRun records the run in the history database.
func saveRun(
	ctx context.Context,
	deps CommandDeps,
	gameID, sourcePath string,
	results []rows.Result,
) error {
	db, err := storage.Open(&deps.Config.Storage)
	if err != nil {
		return err
	}
	defer db.Close()

	runID, err := storage.NewRunRepository(db).Save(ctx, gameID, sourcePath, results)
	if err != nil {
		return err
	}
	deps.Logger.Info("Recorded run", "run_id", runID)
	return nil
}
