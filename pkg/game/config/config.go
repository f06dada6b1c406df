package config

import (
	"fmt"
	"os"

	"github.com/ckoehne/hurdler/pkg/game/types"
	"gopkg.in/yaml.v3"
)

// Config is the full set of simulation tunables. All values are world
// units / seconds.
type Config struct {
	Player    types.PlayerTuning   `yaml:"player"`
	Obstacles types.ObstacleTuning `yaml:"obstacles"`
}

// Default returns the stock tuning, matching the values the game ships with.
func Default() Config {
	return Config{
		Player:    types.DefaultPlayerTuning(),
		Obstacles: types.DefaultObstacleTuning(),
	}
}

// Load reads a yaml config file over the defaults: fields absent from the
// file keep their default values.
func Load(path string) (Config, error) {
	cfg := Default()

	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config file: %v", err)
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config file: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		return cfg, fmt.Errorf("invalid config: %v", err)
	}

	return cfg, nil
}

// Validate checks the invariants the simulation relies on.
func (c Config) Validate() error {
	if err := validateExtents("player", c.Player.Extents); err != nil {
		return err
	}
	if err := validateExtents("obstacle", c.Obstacles.Extents); err != nil {
		return err
	}
	if c.Player.Gravity < 0 {
		return fmt.Errorf("player gravity must be non-negative, got %f", c.Player.Gravity)
	}
	if c.Obstacles.SpacingStd < 0 {
		return fmt.Errorf("obstacle spacing std must be non-negative, got %f", c.Obstacles.SpacingStd)
	}
	if c.Obstacles.MaxPlacementRetries < 1 {
		return fmt.Errorf("obstacle placement retries must be at least 1, got %d", c.Obstacles.MaxPlacementRetries)
	}
	if c.Obstacles.FallbackClearance <= 0 {
		return fmt.Errorf("obstacle fallback clearance must be positive, got %f", c.Obstacles.FallbackClearance)
	}
	if c.Obstacles.SpawnAheadX <= 0 {
		return fmt.Errorf("obstacle spawn-ahead distance must be positive, got %f", c.Obstacles.SpawnAheadX)
	}
	return nil
}

func validateExtents(name string, e types.Extents) error {
	if e.LowerX < 0 || e.HigherX < 0 || e.LowerY < 0 || e.HigherY < 0 {
		return fmt.Errorf("%s extents must be non-negative, got %+v", name, e)
	}
	return nil
}
