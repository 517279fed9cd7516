// Package blockfall drives the falling-block engine one tick at a time.
// A Game owns the board, the active piece and the timers; the caller feeds it
// intents and elapsed time and reads back what changed.
package blockfall

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockfall/internal/config"
	"github.com/vovakirdan/blockfall/internal/core"
	"github.com/vovakirdan/blockfall/internal/games/blockfall/engine"
)

var (
	// ErrGameOver is returned by Spawn once a spawn has been blocked.
	ErrGameOver = errors.New("blockfall: game over")
	// ErrUnknownShape is returned by Spawn for a name missing from the catalog.
	ErrUnknownShape = errors.New("blockfall: unknown shape")
	// ErrPieceActive is returned by Spawn while another piece is still in play.
	ErrPieceActive = errors.New("blockfall: a piece is already active")
)

// Option customizes a Game at construction.
type Option func(*Game)

// WithLogger sets the logger used for engine events.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.logger = l
		}
	}
}

// WithCatalog replaces the mode's built-in shape set.
func WithCatalog(c *engine.Catalog) Option {
	return func(g *Game) {
		if c != nil {
			g.catalog = c
		}
	}
}

// Game implements one blockfall mode.
type Game struct {
	mode    Mode
	catalog *engine.Catalog
	logger  *log.Logger
	diff    *config.DifficultyManager
	rc      core.RuntimeConfig

	board   *engine.Board
	bag     *engine.Bag
	active  engine.Piece // zero when no piece is in play
	ghost   engine.Piece
	lock    engine.LockDelay
	intents core.IntentQueue

	gravity  time.Duration // accumulated time toward the next gravity row
	nextID   core.OccupantID
	hardDrop bool

	tick     uint64
	lines    int
	pieces   int
	gameOver bool
	paused   bool
}

// New creates a game for the given mode. Reset must be called before use.
func New(mode Mode, opts ...Option) *Game {
	g := &Game{
		mode:    mode,
		catalog: mode.Catalog(),
		logger:  log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(g)
	}
	g.logger = g.logger.With("mode", string(mode))
	return g
}

// ID returns the mode identifier.
func (g *Game) ID() string {
	return string(g.mode)
}

// Title returns the display name.
func (g *Game) Title() string {
	return g.mode.Title()
}

// Catalog returns the shape set pieces are drawn from.
func (g *Game) Catalog() *engine.Catalog {
	return g.catalog
}

// Configure applies difficulty progression and, in custom mode, replaces
// the catalog with the configured shapes. Board geometry and timing come
// from the RuntimeConfig passed to Reset.
func (g *Game) Configure(cfg config.BlockfallConfig) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	if g.mode == ModeCustom {
		cat, err := config.BuildCatalog(cfg.Shapes)
		if err != nil {
			return fmt.Errorf("blockfall: mode %q: %w", g.mode, err)
		}
		g.catalog = cat
	}

	g.diff = config.NewDifficultyManager(cfg.Difficulty)
	return nil
}

// Reset initializes/restarts the game on an empty board.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	def := core.DefaultConfig()
	if cfg.BoardW <= 0 || cfg.BoardH <= 0 {
		cfg.BoardW, cfg.BoardH, cfg.Spawn = def.BoardW, def.BoardH, def.Spawn
	}
	if cfg.GravityInterval <= 0 {
		cfg.GravityInterval = def.GravityInterval
	}
	if cfg.LockDelay <= 0 {
		cfg.LockDelay = def.LockDelay
	}
	g.rc = cfg

	if g.board == nil || g.board.Width() != cfg.BoardW || g.board.Height() != cfg.BoardH {
		g.board = engine.NewBoard(cfg.BoardW, cfg.BoardH)
	} else {
		g.board.Reset()
	}
	g.bag = engine.NewBag(g.catalog, cfg.Seed)
	g.active = engine.Piece{}
	g.ghost = engine.Piece{}
	g.lock = engine.NewLockDelay(cfg.LockDelay)
	g.intents.Clear()

	g.gravity = 0
	g.nextID = 0
	g.hardDrop = false
	g.tick = 0
	g.lines = 0
	g.pieces = 0
	g.gameOver = false
	g.paused = false

	g.logger.Debug("reset", "board", fmt.Sprintf("%dx%d", cfg.BoardW, cfg.BoardH), "seed", cfg.Seed)
}

// Spawn makes a piece of the named shape active at the given anchor, in
// rotation state 0. A blocked spawn ends the game.
func (g *Game) Spawn(shape string, at core.Point) error {
	if g.gameOver {
		return ErrGameOver
	}
	if !g.active.IsZero() {
		return fmt.Errorf("spawn %s: %w", shape, ErrPieceActive)
	}
	s, ok := g.catalog.Get(shape)
	if !ok {
		return fmt.Errorf("spawn %q: %w", shape, ErrUnknownShape)
	}

	p := engine.NewPiece(s, at)
	if !g.board.CanPlace(p) {
		g.gameOver = true
		g.logger.Debug("game over", "shape", shape, "at", at, "lines", g.lines, "pieces", g.pieces)
		return ErrGameOver
	}

	g.active = p
	g.ghost = g.board.Drop(p)
	g.lock.Reset()
	g.gravity = 0
	g.hardDrop = false
	g.logger.Debug("spawned", "piece", p)
	return nil
}

// Enqueue queues an intent for a later tick. At most one is applied per tick.
func (g *Game) Enqueue(i core.Intent) {
	g.intents.Push(i)
}

// Step enqueues the frame's intents and advances one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	for _, i := range in.Intents {
		g.Enqueue(i)
	}
	return g.Advance(g.rc.TickDuration())
}

// Advance runs one tick covering dt of game time:
// spawn, one intent, gravity, lock delay, finalization, ghost.
func (g *Game) Advance(dt time.Duration) core.StepResult {
	var res core.StepResult

	if g.gameOver {
		res.State = g.State()
		return res
	}
	g.tick++

	if g.paused {
		if g.intents.Pop() == core.IntentPause {
			g.paused = false
			g.logger.Debug("resumed", "tick", g.tick)
		}
		res.State = g.State()
		return res
	}

	if g.active.IsZero() {
		if err := g.Spawn(g.bag.Next(), g.rc.Spawn); err != nil {
			res.State = g.State()
			return res
		}
		res.Spawned = true
	}

	intent := g.intents.Pop()
	if intent == core.IntentPause {
		g.paused = true
		g.logger.Debug("paused", "tick", g.tick)
		g.ghost = g.board.Drop(g.active)
		res.State = g.State()
		return res
	}
	g.apply(intent)

	g.fall(dt)

	prev := g.lock.Phase()
	phase := g.lock.Update(g.board.CanFall(g.active), dt)
	switch {
	case phase == engine.LockRunning && prev == engine.LockAbsent:
		g.logger.Debug("lock delay started", "piece", g.active)
	case phase == engine.LockFired:
		g.logger.Debug("lock delay fired", "piece", g.active)
	}

	if phase == engine.LockFired || g.hardDrop {
		g.finalize(&res)
	}

	if g.active.IsZero() {
		g.ghost = engine.Piece{}
	} else {
		g.ghost = g.board.Drop(g.active)
	}

	res.State = g.State()
	return res
}

func (g *Game) apply(intent core.Intent) {
	switch intent {
	case core.IntentMoveLeft:
		g.active, _ = g.board.Move(g.active, core.Left)
	case core.IntentMoveRight:
		g.active, _ = g.board.Move(g.active, core.Right)
	case core.IntentSoftDrop:
		g.active = g.board.Drop(g.active)
	case core.IntentHardDrop:
		g.active = g.board.Drop(g.active)
		g.hardDrop = true
	case core.IntentRotateLeft:
		g.active, _ = g.board.Rotate(g.active, engine.Counterclockwise)
	case core.IntentRotateRight:
		g.active, _ = g.board.Rotate(g.active, engine.Clockwise)
	}
}

// fall applies gravity: one row per elapsed interval. A piece that cannot
// fall does not bank time toward later rows.
func (g *Game) fall(dt time.Duration) {
	interval := g.gravityInterval()
	g.gravity += dt
	for g.gravity >= interval {
		g.gravity -= interval
		moved, ok := g.board.Move(g.active, core.Down)
		if !ok {
			g.gravity = 0
			return
		}
		g.active = moved
	}
}

// gravityInterval returns the current gravity period, shortened by the
// difficulty manager when one is configured.
func (g *Game) gravityInterval() time.Duration {
	if g.diff == nil {
		return g.rc.GravityInterval
	}
	return g.diff.GravityInterval(g.rc.GravityInterval, g.lines, int(g.tick))
}

// finalize writes the active piece into the board and clears full rows.
// A piece that can still fall is left in play.
func (g *Game) finalize(res *core.StepResult) {
	g.hardDrop = false
	if g.board.CanFall(g.active) {
		g.logger.Debug("finalize skipped, piece can fall", "piece", g.active)
		return
	}
	if !g.board.CanPlace(g.active) {
		panic(fmt.Sprintf("blockfall: active piece %v overlaps the board", g.active))
	}

	ids := make([]core.OccupantID, g.active.Shape().CellCount())
	for i := range ids {
		g.nextID++
		ids[i] = g.nextID
	}
	g.board.Place(g.active, ids)
	g.logger.Debug("placed", "piece", g.active)

	g.active = engine.Piece{}
	g.lock.Reset()
	g.gravity = 0
	g.pieces++
	res.Locked = true

	cleared := g.board.ClearFullRows()
	if len(cleared.Rows) > 0 {
		g.lines += len(cleared.Rows)
		res.ClearedRows = len(cleared.Rows)
		res.Removed = cleared.Removed
		res.Relocated = cleared.Relocated
		g.logger.Debug("rows cleared", "rows", cleared.Rows, "total", g.lines)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Lines:    g.lines,
		Pieces:   g.pieces,
		GameOver: g.gameOver,
		Paused:   g.paused,
	}
}

// Board exposes the occupancy grid for read-only queries.
func (g *Game) Board() *engine.Board {
	return g.board
}

// Active returns the piece in play and whether there is one.
func (g *Game) Active() (engine.Piece, bool) {
	return g.active, !g.active.IsZero()
}

// Ghost returns where the active piece would land if dropped now.
func (g *Game) Ghost() (engine.Piece, bool) {
	return g.ghost, !g.ghost.IsZero()
}
