package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/blockfall.yaml
var defaultBlockfallYAML []byte

// DefaultBlockfallConfig returns the built-in configuration: a 10x20 board
// spawning near the top, one-second gravity and a 1.5s lock delay.
func DefaultBlockfallConfig() BlockfallConfig {
	return BlockfallConfig{
		Board: BoardConfig{
			Width:  10,
			Height: 20,
			SpawnX: 5,  // w/2
			SpawnY: 17, // h-3
		},
		Timing: TimingConfig{
			TickRate:  60,
			Gravity:   time.Second,
			LockDelay: 1500 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "lines",
				MaxAt: 150,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 9.0,
				MinGravity:      50 * time.Millisecond,
			},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultBlockfallYAML
}
