// Package common provides shared utilities for command implementations.
package common

import (
	"errors"
	"fmt"

	"github.com/jonesrussell/ozstats/internal/config"
	"github.com/jonesrussell/ozstats/internal/games"
	"github.com/jonesrussell/ozstats/internal/logger"
)

// ErrLoggerRequired indicates the logger dependency is missing.
var ErrLoggerRequired = errors.New("logger is required")

// ErrConfigRequired indicates the config dependency is missing.
var ErrConfigRequired = errors.New("config is required")

// CommandDeps holds common dependencies for all commands.
type CommandDeps struct {
	Logger logger.Interface
	Config *config.Config
}

// Validate ensures all required dependencies are present.
func (d CommandDeps) Validate() error {
	if d.Logger == nil {
		return ErrLoggerRequired
	}
	if d.Config == nil {
		return ErrConfigRequired
	}
	return nil
}

// NewCommandDeps loads the configuration and builds the logger.
func NewCommandDeps() (CommandDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return CommandDeps{}, err
	}

	log, err := logger.New(&cfg.Logger)
	if err != nil {
		return CommandDeps{}, fmt.Errorf("failed to create logger: %w", err)
	}

	deps := CommandDeps{Logger: log, Config: cfg}
	return deps, deps.Validate()
}

// ResolveGame looks up the requested game profile, falling back to the
// configured default when gameID is empty.
func (d CommandDeps) ResolveGame(gameID string) (games.Game, error) {
	if gameID == "" {
		gameID = d.Config.DefaultGame
	}
	game, err := games.NewLoader(d.Config.GamesFile).Lookup(gameID)
	if err != nil {
		return games.Game{}, fmt.Errorf("failed to resolve game %q: %w", gameID, err)
	}
	return game, nil
}
