// Package games provides lottery game scrape profiles loaded from YAML files.
package games

import (
	"errors"
	"fmt"
	"net/url"
)

var (
	// ErrNoGames indicates no games were found in the configuration.
	ErrNoGames = errors.New("no games found in configuration")
	// ErrGameNotFound indicates the requested game profile does not exist.
	ErrGameNotFound = errors.New("game not found")
)

// Game describes how to scrape one lottery game's statistics page.
type Game struct {
	// ID is the short identifier used on the command line (e.g. "oz-lotto").
	ID string `mapstructure:"id"`
	// Name is the human-readable game name.
	Name string `mapstructure:"name"`
	// StatsURL is the statistics page to scrape.
	StatsURL string `mapstructure:"stats_url"`
	// PoolSize is the number of distinct balls in the game.
	PoolSize int `mapstructure:"pool_size"`
	// NumbersPerRow is the number of balls drawn per play.
	NumbersPerRow int `mapstructure:"numbers_per_row"`
	// Selectors describes where each statistics section lives on the page.
	Selectors Selectors `mapstructure:"selectors"`
}

// Selectors defines where each statistics section lives on the page.
// Headings are matched by substring against the configured heading elements.
type Selectors struct {
	// HotHeading precedes the most-common-numbers table.
	HotHeading string `mapstructure:"hot_heading"`
	// ColdHeading precedes the most-overdue-numbers table.
	ColdHeading string `mapstructure:"cold_heading"`
	// LeastOftenHeading precedes the least-often-picked table.
	LeastOftenHeading string `mapstructure:"least_often_heading"`
	// PairsHeading labels the most common pairs box.
	PairsHeading string `mapstructure:"pairs_heading"`
	// ConsecPairsHeading labels the most common consecutive pairs box.
	ConsecPairsHeading string `mapstructure:"consec_pairs_heading"`
	// TripletsHeading labels the most common triplets box.
	TripletsHeading string `mapstructure:"triplets_heading"`
	// ConsecTripletsHeading labels the most common consecutive triplets box.
	ConsecTripletsHeading string `mapstructure:"consec_triplets_heading"`
	// NumericalOrderID is the element id of the ordered-by-ball-number listing.
	NumericalOrderID string `mapstructure:"numerical_order_id"`
	// TableClass is the CSS class of statistics tables.
	TableClass string `mapstructure:"table_class"`
}

// ozLottoDefaults returns the built-in Oz Lotto profile. It is used when no
// games file is configured or the file does not define the requested game.
func ozLottoDefaults() Game {
	return Game{
		ID:            "oz-lotto",
		Name:          "Oz Lotto",
		StatsURL:      "https://australia.national-lottery.com/oz-lotto/statistics",
		PoolSize:      47,
		NumbersPerRow: 7,
		Selectors:     DefaultSelectors(),
	}
}

// DefaultSelectors returns the section selectors used by the
// national-lottery.com statistics pages.
func DefaultSelectors() Selectors {
	return Selectors{
		HotHeading:            "Hot Numbers (Most Common)",
		ColdHeading:           "Cold Numbers (Most Overdue)",
		LeastOftenHeading:     "Least Often Picked Numbers",
		PairsHeading:          "Most Common Pairs",
		ConsecPairsHeading:    "Most Common Consecutive Pairs",
		TripletsHeading:       "Most Common Triplets",
		ConsecTripletsHeading: "Most Common Consecutive Triplets",
		NumericalOrderID:      "numericOrder",
		TableClass:            "table",
	}
}

// Default returns the built-in Oz Lotto profile.
func Default() Game {
	return ozLottoDefaults()
}

// Validate checks that the profile is complete enough to scrape.
func (g *Game) Validate() error {
	if g.ID == "" {
		return errors.New("game id must be specified")
	}
	if g.StatsURL == "" {
		return fmt.Errorf("game %s: stats_url must be specified", g.ID)
	}
	if _, err := url.ParseRequestURI(g.StatsURL); err != nil {
		return fmt.Errorf("game %s: invalid stats_url: %w", g.ID, err)
	}
	if g.PoolSize <= 0 {
		return fmt.Errorf("game %s: pool_size must be positive", g.ID)
	}
	if g.NumbersPerRow <= 0 {
		return fmt.Errorf("game %s: numbers_per_row must be positive", g.ID)
	}
	if g.NumbersPerRow > g.PoolSize {
		return fmt.Errorf("game %s: numbers_per_row exceeds pool_size", g.ID)
	}
	return nil
}

// applyDefaults fills unset selector and sizing fields from the built-in
// profile so a games file only needs to override what differs.
func (g *Game) applyDefaults() {
	def := ozLottoDefaults()
	if g.PoolSize == 0 {
		g.PoolSize = def.PoolSize
	}
	if g.NumbersPerRow == 0 {
		g.NumbersPerRow = def.NumbersPerRow
	}
	defSel := def.Selectors
	if g.Selectors.HotHeading == "" {
		g.Selectors.HotHeading = defSel.HotHeading
	}
	if g.Selectors.ColdHeading == "" {
		g.Selectors.ColdHeading = defSel.ColdHeading
	}
	if g.Selectors.LeastOftenHeading == "" {
		g.Selectors.LeastOftenHeading = defSel.LeastOftenHeading
	}
	if g.Selectors.PairsHeading == "" {
		g.Selectors.PairsHeading = defSel.PairsHeading
	}
	if g.Selectors.ConsecPairsHeading == "" {
		g.Selectors.ConsecPairsHeading = defSel.ConsecPairsHeading
	}
	if g.Selectors.TripletsHeading == "" {
		g.Selectors.TripletsHeading = defSel.TripletsHeading
	}
	if g.Selectors.ConsecTripletsHeading == "" {
		g.Selectors.ConsecTripletsHeading = defSel.ConsecTripletsHeading
	}
	if g.Selectors.NumericalOrderID == "" {
		g.Selectors.NumericalOrderID = defSel.NumericalOrderID
	}
	if g.Selectors.TableClass == "" {
		g.Selectors.TableClass = defSel.TableClass
	}
}
