// Package replay runs YAML intent scripts against a game mode without any
// input device or renderer. Scripts make runs reproducible: the same script
// and seed always produce the same summary.
package replay

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/registry"
)

// Script is a scripted run.
//
//	mode: standard
//	seed: 42
//	ticks: 600
//	intents:
//	  - {at: 0, do: rotate_right}
//	  - {at: 5, do: hard_drop}
type Script struct {
	Mode     string         `yaml:"mode"`
	Seed     int64          `yaml:"seed"`
	TickRate int            `yaml:"tick_rate"` // 0 keeps the runtime's rate
	Ticks    int            `yaml:"ticks"`
	Board    *BoardOverride `yaml:"board"`
	Intents  []Entry        `yaml:"intents"`

	byTick map[int][]core.Intent
}

// BoardOverride replaces the configured board geometry for one script.
type BoardOverride struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
	SpawnX int `yaml:"spawn_x"`
	SpawnY int `yaml:"spawn_y"`
}

// Entry queues one intent on a tick (0-based).
type Entry struct {
	At int    `yaml:"at"`
	Do string `yaml:"do"`
}

// Summary reports the outcome of a run.
type Summary struct {
	Mode     string
	Seed     int64
	Ticks    int // Ticks actually run; fewer than requested after a game over
	Pieces   int
	Lines    int
	GameOver bool
	Board    string // Final board dump, when the game provides one
}

// Parse decodes and validates a script.
func Parse(data []byte) (*Script, error) {
	var s Script
	if err := yaml.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("replay: cannot parse script: %w", err)
	}
	if s.Ticks <= 0 {
		return nil, fmt.Errorf("replay: ticks must be positive, got %d", s.Ticks)
	}
	if s.TickRate < 0 {
		return nil, fmt.Errorf("replay: tick_rate must not be negative, got %d", s.TickRate)
	}
	if b := s.Board; b != nil {
		if b.Width <= 0 || b.Height <= 0 {
			return nil, fmt.Errorf("replay: invalid board %dx%d", b.Width, b.Height)
		}
		if !core.NewRect(0, 0, b.Width, b.Height).Contains(core.P(b.SpawnX, b.SpawnY)) {
			return nil, fmt.Errorf("replay: spawn (%d,%d) is outside the board", b.SpawnX, b.SpawnY)
		}
	}

	s.byTick = make(map[int][]core.Intent, len(s.Intents))
	for _, e := range s.Intents {
		if e.At < 0 || e.At >= s.Ticks {
			return nil, fmt.Errorf("replay: intent %q at tick %d is outside [0,%d)", e.Do, e.At, s.Ticks)
		}
		intent, err := core.ParseIntent(e.Do)
		if err != nil {
			return nil, fmt.Errorf("replay: tick %d: %w", e.At, err)
		}
		s.byTick[e.At] = append(s.byTick[e.At], intent)
	}
	return &s, nil
}

// LoadFile reads and parses a script file.
func LoadFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("replay: cannot read %s: %w", path, err)
	}
	return Parse(data)
}

// IntentsAt returns the intents queued on a tick, in script order.
func (s *Script) IntentsAt(tick int) []core.Intent {
	return s.byTick[tick]
}

// Runtime applies the script's seed, rate and board overrides to base.
func (s *Script) Runtime(base core.RuntimeConfig) core.RuntimeConfig {
	rc := base
	rc.Seed = s.Seed
	if s.TickRate > 0 {
		rc.TickRate = s.TickRate
	}
	if b := s.Board; b != nil {
		rc.BoardW, rc.BoardH = b.Width, b.Height
		rc.Spawn = core.P(b.SpawnX, b.SpawnY)
	}
	return rc
}

// Run resets g with the script's runtime settings and steps it tick by tick,
// stopping early on game over.
func Run(g registry.Game, base core.RuntimeConfig, s *Script) Summary {
	g.Reset(s.Runtime(base))

	sum := Summary{Mode: g.ID(), Seed: s.Seed}
	frame := core.NewInputFrame()
	for tick := 0; tick < s.Ticks; tick++ {
		frame.Clear()
		for _, i := range s.IntentsAt(tick) {
			frame.Add(i)
		}
		res := g.Step(frame)
		sum.Ticks++
		if res.State.GameOver {
			break
		}
	}

	st := g.State()
	sum.Pieces = st.Pieces
	sum.Lines = st.Lines
	sum.GameOver = st.GameOver
	if str, ok := g.(fmt.Stringer); ok {
		sum.Board = str.String()
	}
	return sum
}
