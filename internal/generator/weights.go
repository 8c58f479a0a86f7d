// Package generator produces randomized candidate rows from ball statistics
// using weighted sampling. Deterministic ranking lives in the picker package;
// everything here consumes a caller-supplied random source so tests can seed
// it.
package generator

import (
	"errors"
	"fmt"
)

// minBallWeight is the floor applied to every per-ball weight so that every
// ball stays selectable.
const minBallWeight = 0.1

// Weights configures the weighted row generators.
type Weights struct {
	// BaseWeight is the starting weight for every ball.
	BaseWeight float64 `yaml:"base_weight" mapstructure:"base_weight"`
	// FrequencyMultiplier scales a ball's drawn count into its weight.
	FrequencyMultiplier float64 `yaml:"frequency_multiplier" mapstructure:"frequency_multiplier"`
	// OverdueBonus is added for balls among the top overdue ranks.
	OverdueBonus float64 `yaml:"overdue_bonus" mapstructure:"overdue_bonus"`
	// OverdueConsidered is how many top overdue balls receive the bonus.
	OverdueConsidered int `yaml:"overdue_considered" mapstructure:"overdue_considered"`
	// OverdueWeight scales the normalized days-overdue signal in the blend
	// generator. Must exceed FrequencyWeight: the blend is overdue-dominant.
	OverdueWeight float64 `yaml:"overdue_weight" mapstructure:"overdue_weight"`
	// FrequencyWeight scales the normalized drawn-count signal in the blend
	// generator.
	FrequencyWeight float64 `yaml:"frequency_weight" mapstructure:"frequency_weight"`
	// BaseMinWeight is the constant term of the blend weight.
	BaseMinWeight float64 `yaml:"base_min_weight" mapstructure:"base_min_weight"`
}

// DefaultWeights returns the stock generator weighting.
func DefaultWeights() Weights {
	return Weights{
		BaseWeight:          1.0,
		FrequencyMultiplier: 0.25,
		OverdueBonus:        5.0,
		OverdueConsidered:   10,
		OverdueWeight:       0.7,
		FrequencyWeight:     0.3,
		BaseMinWeight:       0.05,
	}
}

// Validate checks the weighting for internal consistency.
func (w *Weights) Validate() error {
	if w.BaseWeight < 0 || w.FrequencyMultiplier < 0 || w.OverdueBonus < 0 {
		return errors.New("weights must be non-negative")
	}
	if w.BaseMinWeight <= 0 {
		return errors.New("base_min_weight must be positive")
	}
	if w.OverdueConsidered < 0 {
		return errors.New("overdue_considered must be non-negative")
	}
	if w.OverdueWeight <= w.FrequencyWeight {
		return fmt.Errorf("overdue_weight (%v) must exceed frequency_weight (%v)",
			w.OverdueWeight, w.FrequencyWeight)
	}
	return nil
}
