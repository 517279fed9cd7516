package core

import "time"

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this for the board geometry, timing and deterministic simulation.
type RuntimeConfig struct {
	BoardW   int   // Board width in cells
	BoardH   int   // Board height in cells
	Spawn    Point // Anchor of newly spawned pieces
	TickRate int   // Simulation ticks per second for Step (default 60)
	Seed     int64 // RNG seed for the piece generator

	GravityInterval time.Duration // Time between automatic one-row drops
	LockDelay       time.Duration // Grace period before a resting piece locks
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		BoardW:          10,
		BoardH:          20,
		Spawn:           Point{X: 5, Y: 17},
		TickRate:        60,
		Seed:            0,
		GravityInterval: time.Second,
		LockDelay:       1500 * time.Millisecond,
	}
}

// TickDuration returns the fixed simulation step for the configured tick rate.
func (c RuntimeConfig) TickDuration() time.Duration {
	if c.TickRate <= 0 {
		return time.Second / 60
	}
	return time.Second / time.Duration(c.TickRate)
}

// OccupantID is an opaque reference to whatever the presentation layer draws
// for a single placed cell. Zero means "no occupant".
type OccupantID uint64

// NoOccupant marks an empty board cell.
const NoOccupant OccupantID = 0

// GameState represents the current state of a game.
// Returned by Game.State() to communicate status to the presentation layer.
type GameState struct {
	Lines    int  // Rows cleared so far
	Pieces   int  // Pieces locked so far
	GameOver bool // Whether a spawn was blocked
	Paused   bool // Whether the game is paused
}

// StepResult is returned by Game.Step() after each simulation tick.
// Contains the updated game state and the events that occurred during the tick.
type StepResult struct {
	State GameState

	Spawned bool // A new piece became active this tick
	Locked  bool // The active piece was written into the board this tick

	ClearedRows int                  // Rows removed this tick
	Removed     []OccupantID         // Occupants removed by line clears
	Relocated   map[OccupantID]Point // Occupants moved by compaction, with new coordinates
}
