package games

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// gamesFile represents the structure of a games YAML file.
type gamesFile struct {
	Games []map[string]any `yaml:"games"`
}

// Loader handles loading and validating game profiles.
type Loader struct {
	configPath string
}

// NewLoader creates a new Loader instance.
func NewLoader(configPath string) *Loader {
	return &Loader{configPath: configPath}
}

// LoadGames loads and validates all game profiles from the configuration
// file. A missing file yields just the built-in default profile.
func (l *Loader) LoadGames() ([]Game, error) {
	raw, err := l.loadRawGames()
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return []Game{Default()}, nil
	}

	games := make([]Game, 0, len(raw))
	for _, src := range raw {
		game, convertErr := convertToGame(src)
		if convertErr != nil {
			continue
		}
		game.applyDefaults()
		if validateErr := game.Validate(); validateErr != nil {
			continue
		}
		games = append(games, game)
	}

	if len(games) == 0 {
		return nil, ErrNoGames
	}
	return games, nil
}

// Lookup returns the game profile with the given id.
func (l *Loader) Lookup(id string) (Game, error) {
	games, err := l.LoadGames()
	if err != nil {
		return Game{}, err
	}
	for _, game := range games {
		if game.ID == id {
			return game, nil
		}
	}
	return Game{}, fmt.Errorf("%w: %s", ErrGameNotFound, id)
}

// loadRawGames loads the raw game maps from the configuration file.
func (l *Loader) loadRawGames() ([]map[string]any, error) {
	data, err := os.ReadFile(l.configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read games file: %w", err)
	}

	var file gamesFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("failed to parse games YAML: %w", err)
	}
	return file.Games, nil
}

// convertToGame converts a raw game map to a Game struct.
func convertToGame(src map[string]any) (Game, error) {
	var game Game
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &game,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Game{}, fmt.Errorf("failed to create decoder: %w", err)
	}
	if decodeErr := decoder.Decode(src); decodeErr != nil {
		return Game{}, fmt.Errorf("failed to decode game: %w", decodeErr)
	}
	return game, nil
}
