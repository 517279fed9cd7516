package engine

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Piece is a shape placed at an anchor in one of its rotation states.
// It is a value: every operation returns a new Piece, so callers can
// propose a move, validate it against the board, and only then commit it.
type Piece struct {
	shape    *Shape
	anchor   core.Point
	rotation int
}

// NewPiece creates a piece of shape at the given anchor, in rotation state 0.
func NewPiece(shape *Shape, at core.Point) Piece {
	if shape == nil {
		panic("engine: piece needs a shape")
	}
	return Piece{shape: shape, anchor: at}
}

// Shape returns the piece's shared shape definition.
func (p Piece) Shape() *Shape {
	return p.shape
}

// Anchor returns the grid coordinate the offsets are relative to.
func (p Piece) Anchor() core.Point {
	return p.anchor
}

// Rotation returns the current rotation state index.
func (p Piece) Rotation() int {
	return p.rotation
}

// IsZero reports whether p is the zero Piece (no shape).
func (p Piece) IsZero() bool {
	return p.shape == nil
}

// Cells returns the absolute grid cells of the piece. The order follows the
// shape's offset order and is the same on every call for the same state.
func (p Piece) Cells() []core.Point {
	offsets := p.shape.rotations[p.rotation]
	cells := make([]core.Point, len(offsets))
	for i, off := range offsets {
		cells[i] = off.Add(p.anchor)
	}
	return cells
}

// Translated returns the piece moved by delta. No collision check is made.
func (p Piece) Translated(delta core.Point) Piece {
	p.anchor = p.anchor.Add(delta)
	return p
}

// Rotated returns the piece turned one step in dir without any kick applied,
// together with the kick offsets to try for this transition, in order.
func (p Piece) Rotated(dir Rotation) (Piece, []core.Point) {
	kicks := p.shape.kicks.For(dir, p.rotation)
	n := len(p.shape.rotations)
	p.rotation = ((p.rotation+int(dir))%n + n) % n
	return p, kicks
}

// String returns a short description for logs.
func (p Piece) String() string {
	if p.shape == nil {
		return "<none>"
	}
	return fmt.Sprintf("%s@%v r%d", p.shape.name, p.anchor, p.rotation)
}
