package blockfall

import (
	"strings"
	"time"

	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying  GameStateType = "playing"
	StatePaused   GameStateType = "paused"
	StateGameOver GameStateType = "game_over"
)

// Snapshot captures everything a presentation layer needs to draw a tick,
// and everything determinism tests compare.
type Snapshot struct {
	Tick   uint64
	Mode   string
	Lines  int
	Pieces int
	State  GameStateType

	Active      string // Shape name, empty when no piece is in play
	Rotation    int
	Anchor      core.Point
	ActiveCells []core.Point
	GhostCells  []core.Point
	Next        string // Shape the next spawn will use

	Lock          engine.LockPhase
	LockRemaining time.Duration
	LockThreshold time.Duration

	Occupants []engine.Occupant
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.gameOver:
		state = StateGameOver
	case g.paused:
		state = StatePaused
	}

	snap := Snapshot{
		Tick:          g.tick,
		Mode:          string(g.mode),
		Lines:         g.lines,
		Pieces:        g.pieces,
		State:         state,
		Lock:          g.lock.Phase(),
		LockRemaining: g.lock.Remaining(),
		LockThreshold: g.lock.Threshold(),
	}
	if g.board != nil {
		snap.Occupants = g.board.Occupants()
	}
	if g.bag != nil && !g.gameOver {
		snap.Next = g.bag.Peek()
	}
	if !g.active.IsZero() {
		snap.Active = g.active.Shape().Name()
		snap.Rotation = g.active.Rotation()
		snap.Anchor = g.active.Anchor()
		snap.ActiveCells = g.active.Cells()
	}
	if !g.ghost.IsZero() {
		snap.GhostCells = g.ghost.Cells()
	}
	return snap
}

// String dumps the board top row first: "██" placed cells, "[]" the active
// piece, "::" its ghost.
func (g *Game) String() string {
	if g.board == nil {
		return ""
	}

	marks := make(map[core.Point]string)
	if !g.ghost.IsZero() {
		for _, c := range g.ghost.Cells() {
			marks[c] = "::"
		}
	}
	if !g.active.IsZero() {
		for _, c := range g.active.Cells() {
			marks[c] = "[]"
		}
	}

	w, h := g.board.Width(), g.board.Height()
	var sb strings.Builder
	spacer := strings.Repeat("-", w*2) + "\n"

	sb.WriteString(spacer)
	for y := h - 1; y >= 0; y-- {
		for x := range w {
			p := core.P(x, y)
			switch {
			case g.board.IsOccupied(p):
				sb.WriteString("██")
			case marks[p] != "":
				sb.WriteString(marks[p])
			default:
				sb.WriteString("..")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(spacer)
	return sb.String()
}
