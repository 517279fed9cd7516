// Package engine holds the block kinematics and board state of blockfall:
// shapes and their rotation states, kick tables, the movable piece, the
// occupancy grid and the lock-delay timer. Everything here is synchronous and
// free of I/O; the orchestration lives one package up.
package engine

import (
	"fmt"
	"slices"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Pivot selects the point a shape rotates about.
type Pivot int

const (
	// PivotCenter rotates about the center of the anchor cell.
	PivotCenter Pivot = iota
	// PivotCorner rotates about the bottom-left corner of the anchor cell,
	// for shapes whose visual center lies on a cell boundary (the 4-long bar).
	PivotCorner
)

// String returns the config name of the pivot.
func (p Pivot) String() string {
	if p == PivotCorner {
		return "corner"
	}
	return "center"
}

// Rotation is a rotation direction; its value is the step applied to the rotation index.
type Rotation int

const (
	Clockwise        Rotation = 1
	Counterclockwise Rotation = -1
)

// Inverse returns the opposite direction.
func (r Rotation) Inverse() Rotation {
	return -r
}

// String returns a short name for the direction.
func (r Rotation) String() string {
	if r == Counterclockwise {
		return "ccw"
	}
	return "cw"
}

// KickTable lists, per starting rotation index, the offsets tried in order
// when rotating. Every entry starts with the zero offset.
type KickTable struct {
	CW  [][]core.Point
	CCW [][]core.Point
}

// NewKickTable builds a kick table from the fallback offsets of each
// transition; the zero offset is prepended to every entry.
// Both directions must declare the same number of entries.
func NewKickTable(cw, ccw [][]core.Point) KickTable {
	if len(cw) != len(ccw) {
		panic(fmt.Sprintf("engine: kick table has %d clockwise and %d counterclockwise entries", len(cw), len(ccw)))
	}
	return KickTable{
		CW:  withZeroKick(cw),
		CCW: withZeroKick(ccw),
	}
}

// NoKicks returns the table for a single-state shape: plain rotation only.
func NoKicks() KickTable {
	return NewKickTable([][]core.Point{{}}, [][]core.Point{{}})
}

func withZeroKick(entries [][]core.Point) [][]core.Point {
	out := make([][]core.Point, len(entries))
	for i, e := range entries {
		out[i] = append([]core.Point{{}}, e...)
	}
	return out
}

// For returns the candidates for rotating in dir away from rotation index from.
func (k KickTable) For(dir Rotation, from int) []core.Point {
	table := k.CW
	if dir == Counterclockwise {
		table = k.CCW
	}
	if from < 0 || from >= len(table) {
		panic(fmt.Sprintf("engine: no %s kicks for rotation %d (have %d)", dir, from, len(table)))
	}
	return table[from]
}

// Shape is an immutable piece definition shared by every piece of its kind.
type Shape struct {
	name      string
	rotations [][]core.Point
	kicks     KickTable
	pivot     Pivot
}

// NewShape validates and creates a shape definition. Inconsistent data
// (no states, uneven cell counts, kick tables not matching the state count,
// kick entries not starting at zero) panics: it can only come from a broken catalog.
func NewShape(name string, rotations [][]core.Point, kicks KickTable, pivot Pivot) *Shape {
	if len(rotations) == 0 {
		panic(fmt.Sprintf("engine: shape %q has no rotation states", name))
	}
	cells := len(rotations[0])
	for i, state := range rotations {
		if len(state) != cells {
			panic(fmt.Sprintf("engine: shape %q state %d has %d cells, state 0 has %d", name, i, len(state), cells))
		}
	}
	if len(kicks.CW) != len(rotations) || len(kicks.CCW) != len(rotations) {
		panic(fmt.Sprintf("engine: shape %q has %d states but %d/%d kick entries",
			name, len(rotations), len(kicks.CW), len(kicks.CCW)))
	}
	for _, table := range [][][]core.Point{kicks.CW, kicks.CCW} {
		for i, entry := range table {
			if len(entry) == 0 || entry[0] != (core.Point{}) {
				panic(fmt.Sprintf("engine: shape %q kick entry %d does not start with the zero offset", name, i))
			}
		}
	}

	return &Shape{
		name:      name,
		rotations: rotations,
		kicks:     kicks,
		pivot:     pivot,
	}
}

// Name returns the catalog name of the shape.
func (s *Shape) Name() string {
	return s.name
}

// Pivot returns the rotation pivot mode.
func (s *Shape) Pivot() Pivot {
	return s.pivot
}

// Kicks returns the kick table.
func (s *Shape) Kicks() KickTable {
	return s.kicks
}

// RotationCount returns the number of distinct rotation states.
func (s *Shape) RotationCount() int {
	return len(s.rotations)
}

// CellCount returns the number of cells in every rotation state.
func (s *Shape) CellCount() int {
	return len(s.rotations[0])
}

// State returns a copy of the offsets of rotation state i.
func (s *Shape) State(i int) []core.Point {
	if i < 0 || i >= len(s.rotations) {
		panic(fmt.Sprintf("engine: shape %q has no rotation state %d", s.name, i))
	}
	return slices.Clone(s.rotations[i])
}

// BuildRotations derives count rotation states from base (state 0), each a
// 90° clockwise turn of the previous one. count must be positive.
func BuildRotations(base []core.Point, count int, pivot Pivot) [][]core.Point {
	if count <= 0 {
		panic(fmt.Sprintf("engine: rotation count must be positive, got %d", count))
	}

	states := make([][]core.Point, 0, count)
	states = append(states, slices.Clone(base))
	for i := 1; i < count; i++ {
		prev := states[i-1]
		next := make([]core.Point, len(prev))
		for j, p := range prev {
			next[j] = rotateCW(p, pivot)
		}
		states = append(states, next)
	}
	return states
}

// rotateCW turns a single offset 90° clockwise about the pivot.
func rotateCW(p core.Point, pivot Pivot) core.Point {
	if pivot == PivotCenter {
		return core.Point{X: p.Y, Y: -p.X}
	}
	// Half-cell units put the corner on a lattice point. The doubled values
	// are odd, so (v-1) is even and the division is exact.
	x, y := 2*p.X+1, 2*p.Y+1
	x, y = y, -x
	return core.Point{X: (x - 1) / 2, Y: (y - 1) / 2}
}
