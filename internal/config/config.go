// Package config provides YAML-based configuration loading, validation and
// difficulty management for the blockfall engine.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
)

// BlockfallConfig contains all configuration for a blockfall run.
type BlockfallConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
	Shapes     []ShapeConfig    `yaml:"shapes"` // Custom shape set; empty means the mode's built-in catalog
}

// BoardConfig defines the grid geometry.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
}

// TimingConfig defines the engine's clocks.
type TimingConfig struct {
	TickRate  int           `yaml:"tick_rate"`  // Fixed steps per second
	Gravity   time.Duration `yaml:"gravity"`    // One row down per interval
	LockDelay time.Duration `yaml:"lock_delay"` // Resting time before a piece locks
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "lines", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Lines/ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64       `yaml:"speed_multiplier"` // Gravity speed added at max difficulty
	MinGravity      time.Duration `yaml:"min_gravity"`      // Gravity interval never drops below this
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset validates a preset name. The empty string means normal.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "":
		return DifficultyNormal, nil
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal, hard or fixed)", name)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.0
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// Minimum board size accepted by Validate.
const (
	MinBoardWidth  = 4
	MinBoardHeight = 4
)

// Validate checks the configuration for values the engine cannot run with.
func (c BlockfallConfig) Validate() error {
	var errs []error

	if c.Board.Width < MinBoardWidth || c.Board.Height < MinBoardHeight {
		errs = append(errs, fmt.Errorf("board %dx%d is smaller than %dx%d",
			c.Board.Width, c.Board.Height, MinBoardWidth, MinBoardHeight))
	}
	spawn := core.P(c.Board.SpawnX, c.Board.SpawnY)
	if !core.NewRect(0, 0, c.Board.Width, c.Board.Height).Contains(spawn) {
		errs = append(errs, fmt.Errorf("spawn %v is outside the board", spawn))
	}
	if c.Timing.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tick_rate must be positive, got %d", c.Timing.TickRate))
	}
	if c.Timing.Gravity <= 0 {
		errs = append(errs, fmt.Errorf("gravity must be positive, got %v", c.Timing.Gravity))
	}
	if c.Timing.LockDelay <= 0 {
		errs = append(errs, fmt.Errorf("lock_delay must be positive, got %v", c.Timing.LockDelay))
	}
	switch c.Difficulty.Progression.Type {
	case "", "none", "lines", "time":
	default:
		errs = append(errs, fmt.Errorf("unknown progression type %q", c.Difficulty.Progression.Type))
	}
	names := make(map[string]bool, len(c.Shapes))
	for _, s := range c.Shapes {
		if names[s.Name] {
			errs = append(errs, fmt.Errorf("shape %q defined twice", s.Name))
		}
		names[s.Name] = true
		if err := s.validate(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid blockfall config: %w", errors.Join(errs...))
	}
	return nil
}

// Runtime converts the configuration into the engine's runtime settings.
func (c BlockfallConfig) Runtime(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		BoardW:          c.Board.Width,
		BoardH:          c.Board.Height,
		Spawn:           core.P(c.Board.SpawnX, c.Board.SpawnY),
		TickRate:        c.Timing.TickRate,
		Seed:            seed,
		GravityInterval: c.Timing.Gravity,
		LockDelay:       c.Timing.LockDelay,
	}
}
