package engine

import (
	"fmt"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Catalog is a read-only set of shapes, built once and handed to every consumer.
// Shapes keep their registration order, which the piece generator relies on.
type Catalog struct {
	shapes map[string]*Shape
	order  []string
}

// NewCatalog creates a catalog from the given shapes.
// Panics on an empty catalog or a duplicate name.
func NewCatalog(shapes ...*Shape) *Catalog {
	if len(shapes) == 0 {
		panic("engine: catalog needs at least one shape")
	}

	c := &Catalog{
		shapes: make(map[string]*Shape, len(shapes)),
		order:  make([]string, 0, len(shapes)),
	}
	for _, s := range shapes {
		if _, exists := c.shapes[s.Name()]; exists {
			panic(fmt.Sprintf("engine: shape %q already in catalog", s.Name()))
		}
		c.shapes[s.Name()] = s
		c.order = append(c.order, s.Name())
	}
	return c
}

// Get looks up a shape by name.
func (c *Catalog) Get(name string) (*Shape, bool) {
	s, ok := c.shapes[name]
	return s, ok
}

// Names returns the shape names in registration order.
func (c *Catalog) Names() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of shapes.
func (c *Catalog) Len() int {
	return len(c.order)
}

// pts converts literal pairs into points; keeps the tables below readable.
func pts(pairs ...[2]int) []core.Point {
	out := make([]core.Point, len(pairs))
	for i, p := range pairs {
		out[i] = core.Point{X: p[0], Y: p[1]}
	}
	return out
}

// standardKicks is the kick table shared by J, L, S, T and Z.
func standardKicks() KickTable {
	return NewKickTable(
		[][]core.Point{
			pts([2]int{-1, 0}, [2]int{-1, 1}, [2]int{0, -2}, [2]int{-1, -2}), // 0 -> 1
			pts([2]int{1, 0}, [2]int{1, -1}, [2]int{0, 2}, [2]int{1, 2}),     // 1 -> 2
			pts([2]int{1, 0}, [2]int{1, 1}, [2]int{0, -2}, [2]int{1, -2}),    // 2 -> 3
			pts([2]int{-1, 0}, [2]int{-1, -1}, [2]int{0, 2}, [2]int{-1, 2}),  // 3 -> 0
		},
		[][]core.Point{
			pts([2]int{1, 0}, [2]int{1, 1}, [2]int{0, -2}, [2]int{1, -2}),    // 0 -> 3
			pts([2]int{1, 0}, [2]int{1, -1}, [2]int{0, 2}, [2]int{1, 2}),     // 1 -> 0
			pts([2]int{-1, 0}, [2]int{-1, 1}, [2]int{0, -2}, [2]int{-1, -2}), // 2 -> 1
			pts([2]int{-1, 0}, [2]int{-1, -1}, [2]int{0, 2}, [2]int{-1, 2}),  // 3 -> 2
		},
	)
}

// barKicks is the kick table of the 4-long bar.
func barKicks() KickTable {
	return NewKickTable(
		[][]core.Point{
			pts([2]int{-2, 0}, [2]int{1, 0}, [2]int{-2, -1}, [2]int{1, 2}), // 0 -> 1
			pts([2]int{-1, 0}, [2]int{2, 0}, [2]int{-1, -2}, [2]int{2, -1}), // 1 -> 2
			pts([2]int{2, 0}, [2]int{-1, 0}, [2]int{2, 1}, [2]int{-1, -2}), // 2 -> 3
			pts([2]int{1, 0}, [2]int{-2, 0}, [2]int{1, -2}, [2]int{-2, 1}), // 3 -> 0
		},
		[][]core.Point{
			pts([2]int{-1, 0}, [2]int{2, 0}, [2]int{-1, 2}, [2]int{2, -1}), // 0 -> 3
			pts([2]int{2, 0}, [2]int{-1, 0}, [2]int{2, 1}, [2]int{-1, -2}), // 1 -> 0
			pts([2]int{1, 0}, [2]int{-2, 0}, [2]int{1, -2}, [2]int{-2, 1}), // 2 -> 1
			pts([2]int{-2, 0}, [2]int{1, 0}, [2]int{-2, -1}, [2]int{1, 2}), // 3 -> 2
		},
	)
}

// Base states, drawn top row first.
var (
	barBase = pts([2]int{-2, 0}, [2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0})
	sqBase  = pts(
		[2]int{0, 1}, [2]int{1, 1},
		[2]int{0, 0}, [2]int{1, 0},
	)
	teeBase = pts(
		[2]int{0, 1},
		[2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0},
	)
	essBase = pts(
		[2]int{0, 1}, [2]int{1, 1},
		[2]int{-1, 0}, [2]int{0, 0},
	)
	zedBase = pts(
		[2]int{-1, 1}, [2]int{0, 1},
		[2]int{0, 0}, [2]int{1, 0},
	)
	jayBase = pts(
		[2]int{-1, 1},
		[2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0},
	)
	ellBase = pts(
		[2]int{1, 1},
		[2]int{-1, 0}, [2]int{0, 0}, [2]int{1, 0},
	)
)

// StandardCatalog returns the seven tetrominoes with the standard kick tables.
func StandardCatalog() *Catalog {
	return NewCatalog(
		NewShape("I", BuildRotations(barBase, 4, PivotCorner), barKicks(), PivotCorner),
		NewShape("O", BuildRotations(sqBase, 1, PivotCenter), NoKicks(), PivotCenter),
		NewShape("T", BuildRotations(teeBase, 4, PivotCenter), standardKicks(), PivotCenter),
		NewShape("S", BuildRotations(essBase, 4, PivotCenter), standardKicks(), PivotCenter),
		NewShape("Z", BuildRotations(zedBase, 4, PivotCenter), standardKicks(), PivotCenter),
		NewShape("J", BuildRotations(jayBase, 4, PivotCenter), standardKicks(), PivotCenter),
		NewShape("L", BuildRotations(ellBase, 4, PivotCenter), standardKicks(), PivotCenter),
	)
}

// ClassicCatalog returns the four-shape set with sideways-only kicks and a
// two-state bar.
func ClassicCatalog() *Catalog {
	side := func(n int) [][]core.Point {
		out := make([][]core.Point, n)
		for i := range out {
			out[i] = pts([2]int{1, 0}, [2]int{-1, 0})
		}
		return out
	}
	barSide := [][]core.Point{
		{},
		pts([2]int{1, 0}, [2]int{-1, 0}, [2]int{2, 0}, [2]int{-2, 0}),
	}

	return NewCatalog(
		NewShape("L", BuildRotations(ellBase, 4, PivotCenter), NewKickTable(side(4), side(4)), PivotCenter),
		NewShape("J", BuildRotations(jayBase, 4, PivotCenter), NewKickTable(side(4), side(4)), PivotCenter),
		NewShape("O", BuildRotations(sqBase, 1, PivotCenter), NoKicks(), PivotCenter),
		NewShape("I", BuildRotations(barBase, 2, PivotCorner), NewKickTable(barSide, barSide), PivotCorner),
	)
}

// BarCatalog returns a catalog holding only the 4-long bar.
func BarCatalog() *Catalog {
	return NewCatalog(
		NewShape("I", BuildRotations(barBase, 4, PivotCorner), barKicks(), PivotCorner),
	)
}
