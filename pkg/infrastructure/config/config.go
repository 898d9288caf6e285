// Package config holds runtime configuration for a chainplan invocation.
// Values are populated from .chainplan.yaml, CHAINPLAN_* env vars, and CLI
// flags, in ascending precedence.
package config

import (
	"errors"
	"fmt"

	"github.com/spf13/viper"
)

// ErrUnknownTier is returned when a configured facility tier is absent
// from the loaded multiplier tables.
var ErrUnknownTier = errors.New("unknown facility tier")

// FacilityConfig selects the operating speed per facility class.
type FacilityConfig struct {
	// Tiers maps a facility class to the tier name chosen from the
	// facilities file, e.g. Assembler: "Assembling Machine Mk.2".
	Tiers map[string]string `mapstructure:"tiers"`
	// Speeds maps a facility class directly to a multiplier, bypassing
	// the tier tables (e.g. Matrix Lab: 3 for a three-high lab stack).
	// Direct speeds win over tier selections.
	Speeds map[string]float64 `mapstructure:"speeds"`
}

// Config holds all runtime configuration for a chainplan run.
type Config struct {
	RecipesFile     string         `mapstructure:"recipes_file"`
	FacilitiesFile  string         `mapstructure:"facilities_file"`
	DisabledRecipes []string       `mapstructure:"disabled_recipes"`
	StrictSelection bool           `mapstructure:"strict_selection"`
	Format          string         `mapstructure:"format"`
	Verbose         bool           `mapstructure:"verbose"`
	Facilities      FacilityConfig `mapstructure:"facilities"`
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() Config {
	viper.SetDefault("recipes_file", "recipes.yaml")
	viper.SetDefault("facilities_file", "")
	viper.SetDefault("disabled_recipes", []string{})
	viper.SetDefault("strict_selection", false)
	viper.SetDefault("format", "text")
	viper.SetDefault("verbose", false)

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}

// ResolveSpeeds turns the facility configuration into a concrete
// class → multiplier map against the loaded tier tables. Classes without a
// selection are omitted and run at the resolver's default speed. A tier
// name that is not in its class's table is a configuration error.
func (c Config) ResolveSpeeds(tables map[string]map[string]float64) (map[string]float64, error) {
	speeds := make(map[string]float64, len(c.Facilities.Tiers)+len(c.Facilities.Speeds))

	for class, tier := range c.Facilities.Tiers {
		table, ok := tables[class]
		if !ok {
			return nil, fmt.Errorf("%w: no multiplier table for facility class %s", ErrUnknownTier, class)
		}
		speed, ok := table[tier]
		if !ok {
			return nil, fmt.Errorf("%w: %s has no tier %q", ErrUnknownTier, class, tier)
		}
		speeds[class] = speed
	}

	// Direct speed overrides win over tier selections.
	for class, speed := range c.Facilities.Speeds {
		if speed <= 0 {
			return nil, fmt.Errorf("facility speed for %s must be positive, got %v", class, speed)
		}
		speeds[class] = speed
	}

	return speeds, nil
}
