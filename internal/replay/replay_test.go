package replay

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/blockfall/internal/core"
	_ "github.com/vovakirdan/blockfall/internal/games/blockfall"
	"github.com/vovakirdan/blockfall/internal/registry"
)

const clearTwice = `
mode: bar
seed: 1
ticks: 10
board: {width: 4, height: 6, spawn_x: 2, spawn_y: 3}
intents:
  - {at: 0, do: hard_drop}
  - {at: 1, do: hard_drop}
`

func TestParse(t *testing.T) {
	s, err := Parse([]byte(clearTwice))
	if err != nil {
		t.Fatalf("Parse() failed: %v", err)
	}
	if s.Mode != "bar" || s.Ticks != 10 || s.Seed != 1 {
		t.Errorf("Parse() = %+v", s)
	}
	if got := s.IntentsAt(0); len(got) != 1 || got[0] != core.IntentHardDrop {
		t.Errorf("IntentsAt(0) = %v, expected [hard_drop]", got)
	}
	if got := s.IntentsAt(5); len(got) != 0 {
		t.Errorf("IntentsAt(5) = %v, expected none", got)
	}

	rc := s.Runtime(core.DefaultConfig())
	if rc.BoardW != 4 || rc.BoardH != 6 || rc.Spawn != core.P(2, 3) || rc.Seed != 1 {
		t.Errorf("Runtime() = %+v", rc)
	}
	if rc.TickRate != 60 {
		t.Errorf("Runtime() TickRate = %d, expected the base rate", rc.TickRate)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		script string
		errSub string
	}{
		{"no ticks", "mode: bar\n", "ticks must be positive"},
		{"unknown intent", "ticks: 5\nintents: [{at: 0, do: jump}]\n", "unknown intent"},
		{"none intent", "ticks: 5\nintents: [{at: 0, do: none}]\n", "unknown intent"},
		{"late intent", "ticks: 5\nintents: [{at: 5, do: pause}]\n", "outside"},
		{"spawn outside", "ticks: 5\nboard: {width: 4, height: 4, spawn_x: 4, spawn_y: 0}\n", "outside the board"},
		{"bad yaml", "ticks: [1\n", "cannot parse"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.script))
			if err == nil || !strings.Contains(err.Error(), tt.errSub) {
				t.Errorf("Parse() = %v, expected error containing %q", err, tt.errSub)
			}
		})
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.yaml")
	if err := os.WriteFile(path, []byte(clearTwice), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(path); err != nil {
		t.Errorf("LoadFile() failed: %v", err)
	}
	if _, err := LoadFile(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadFile() of a missing file should fail")
	}
}

func TestRun(t *testing.T) {
	s, err := Parse([]byte(clearTwice))
	if err != nil {
		t.Fatal(err)
	}
	g, err := registry.Create(s.Mode)
	if err != nil {
		t.Fatal(err)
	}

	sum := Run(g, core.DefaultConfig(), s)

	if sum.Ticks != 10 {
		t.Errorf("Ticks = %d, expected 10", sum.Ticks)
	}
	if sum.Pieces != 2 || sum.Lines != 2 {
		t.Errorf("Pieces/Lines = %d/%d, expected 2/2", sum.Pieces, sum.Lines)
	}
	if sum.GameOver {
		t.Error("unexpected game over")
	}
	if !strings.Contains(sum.Board, "[][][][]") {
		t.Errorf("final board should show the active bar:\n%s", sum.Board)
	}
}

func TestRunStopsAtGameOver(t *testing.T) {
	s, err := Parse([]byte(`
mode: bar
ticks: 100
board: {width: 5, height: 4, spawn_x: 2, spawn_y: 2}
intents:
  - {at: 0, do: hard_drop}
  - {at: 1, do: hard_drop}
  - {at: 2, do: hard_drop}
`))
	if err != nil {
		t.Fatal(err)
	}
	g, _ := registry.Create("bar")

	sum := Run(g, core.DefaultConfig(), s)
	if !sum.GameOver {
		t.Fatal("expected game over")
	}
	if sum.Ticks != 4 || sum.Pieces != 3 {
		t.Errorf("Ticks/Pieces = %d/%d, expected 4/3", sum.Ticks, sum.Pieces)
	}
}

func TestRunIsDeterministic(t *testing.T) {
	s, err := Parse([]byte(`
mode: standard
seed: 77
ticks: 1500
intents:
  - {at: 10, do: rotate_right}
  - {at: 20, do: move_left}
  - {at: 30, do: hard_drop}
  - {at: 200, do: soft_drop}
  - {at: 400, do: hard_drop}
`))
	if err != nil {
		t.Fatal(err)
	}

	g1, _ := registry.Create("standard")
	g2, _ := registry.Create("standard")
	a := Run(g1, core.DefaultConfig(), s)
	b := Run(g2, core.DefaultConfig(), s)
	if a != b {
		t.Errorf("same script gave different summaries:\n%+v\n%+v", a, b)
	}
}
