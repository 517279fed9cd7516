package engine

import (
	"fmt"
	"strings"

	"github.com/kamstrup/intmap"

	"github.com/vovakirdan/blockfall/internal/core"
)

// Board is the occupancy grid. Cells are stored in row-major order starting
// from the floor: index = y*width + x. Each cell is empty (core.NoOccupant)
// or holds the opaque reference of whatever occupies it.
type Board struct {
	width  int
	height int
	cells  []core.OccupantID

	// where maps every occupant on the board to its current cell.
	where *intmap.Map[core.OccupantID, core.Point]
}

// Occupant pairs a board cell with its occupant reference.
type Occupant struct {
	At core.Point
	ID core.OccupantID
}

// ClearResult reports what a ClearFullRows pass changed.
type ClearResult struct {
	// Rows lists the cleared row indices in processing order (top to bottom),
	// each as it was numbered at the moment it was cleared.
	Rows []int
	// Removed holds the occupants of the cleared rows.
	Removed []core.OccupantID
	// Relocated maps every occupant that moved down to its final cell.
	Relocated map[core.OccupantID]core.Point
}

// NewBoard creates an empty board. Dimensions must be positive.
func NewBoard(width, height int) *Board {
	if width <= 0 || height <= 0 {
		panic(fmt.Sprintf("engine: invalid board size %dx%d", width, height))
	}
	return &Board{
		width:  width,
		height: height,
		cells:  make([]core.OccupantID, width*height),
		where:  intmap.New[core.OccupantID, core.Point](width * height),
	}
}

// Width returns the number of columns.
func (b *Board) Width() int {
	return b.width
}

// Height returns the number of rows.
func (b *Board) Height() int {
	return b.height
}

// Bounds returns the board area as a rectangle anchored at the origin.
func (b *Board) Bounds() core.Rect {
	return core.NewRect(0, 0, b.width, b.height)
}

func (b *Board) index(p core.Point) int {
	return p.Y*b.width + p.X
}

// At returns the occupant of a cell, or core.NoOccupant for empty or off-grid cells.
func (b *Board) At(p core.Point) core.OccupantID {
	if !b.Bounds().Contains(p) {
		return core.NoOccupant
	}
	return b.cells[b.index(p)]
}

// IsOccupied reports whether a cell is unavailable. Off-grid cells always are.
func (b *Board) IsOccupied(p core.Point) bool {
	if !b.Bounds().Contains(p) {
		return true
	}
	return b.cells[b.index(p)] != core.NoOccupant
}

// CanPlace reports whether every cell of the piece is on the grid and empty.
func (b *Board) CanPlace(p Piece) bool {
	for _, c := range p.Cells() {
		if b.IsOccupied(c) {
			return false
		}
	}
	return true
}

// CanFall reports whether the piece could move down one row.
func (b *Board) CanFall(p Piece) bool {
	return b.CanPlace(p.Translated(core.Down))
}

// Move returns the piece translated by delta if it fits, otherwise p and false.
func (b *Board) Move(p Piece, delta core.Point) (Piece, bool) {
	moved := p.Translated(delta)
	if !b.CanPlace(moved) {
		return p, false
	}
	return moved, true
}

// Rotate turns the piece one step in dir, trying each kick offset in order and
// committing the first placement that fits. If none fits, p is returned with false.
func (b *Board) Rotate(p Piece, dir Rotation) (Piece, bool) {
	plain, kicks := p.Rotated(dir)
	for _, kick := range kicks {
		candidate := plain.Translated(kick)
		if b.CanPlace(candidate) {
			return candidate, true
		}
	}
	return p, false
}

// Drop returns the piece moved down as far as it fits.
func (b *Board) Drop(p Piece) Piece {
	for {
		next, ok := b.Move(p, core.Down)
		if !ok {
			return p
		}
		p = next
	}
}

// Place writes one occupant per piece cell, in Cells order.
// The caller must have just checked CanPlace; writing over an occupied or
// off-grid cell, or passing the wrong number of ids, panics.
func (b *Board) Place(p Piece, ids []core.OccupantID) {
	cells := p.Cells()
	if len(cells) != len(ids) {
		panic(fmt.Sprintf("engine: placing %d cells with %d occupants", len(cells), len(ids)))
	}
	for i, c := range cells {
		if ids[i] == core.NoOccupant {
			panic(fmt.Sprintf("engine: placing empty occupant at %v", c))
		}
		if b.IsOccupied(c) {
			panic(fmt.Sprintf("engine: cell %v is occupied or off-grid (piece %v)", c, p))
		}
		b.cells[b.index(c)] = ids[i]
		b.where.Put(ids[i], c)
	}
}

// IsRowFull reports whether every cell of the row is occupied.
func (b *Board) IsRowFull(row int) bool {
	if row < 0 || row >= b.height {
		panic(fmt.Sprintf("engine: row %d out of range [0,%d)", row, b.height))
	}
	for _, id := range b.cells[row*b.width : (row+1)*b.width] {
		if id == core.NoOccupant {
			return false
		}
	}
	return true
}

// ClearFullRows removes every full row. Rows are scanned from the top down;
// each full row is emptied and everything above it shifts down one row right
// away, before the scan continues.
func (b *Board) ClearFullRows() ClearResult {
	res := ClearResult{Relocated: make(map[core.OccupantID]core.Point)}

	for row := b.height - 1; row >= 0; row-- {
		if !b.IsRowFull(row) {
			continue
		}
		res.Rows = append(res.Rows, row)

		for x := range b.width {
			i := row*b.width + x
			id := b.cells[i]
			res.Removed = append(res.Removed, id)
			delete(res.Relocated, id)
			b.where.Del(id)
			b.cells[i] = core.NoOccupant
		}

		for y := row; y < b.height-1; y++ {
			for x := range b.width {
				from := (y+1)*b.width + x
				to := y*b.width + x
				id := b.cells[from]
				b.cells[to] = id
				b.cells[from] = core.NoOccupant
				if id != core.NoOccupant {
					at := core.Point{X: x, Y: y}
					res.Relocated[id] = at
					b.where.Put(id, at)
				}
			}
		}
	}

	return res
}

// Locate returns the cell currently holding id.
func (b *Board) Locate(id core.OccupantID) (core.Point, bool) {
	return b.where.Get(id)
}

// Len returns the number of occupied cells.
func (b *Board) Len() int {
	return b.where.Len()
}

// Occupants enumerates all occupied cells, row by row from the floor up.
func (b *Board) Occupants() []Occupant {
	out := make([]Occupant, 0, b.where.Len())
	for i, id := range b.cells {
		if id == core.NoOccupant {
			continue
		}
		out = append(out, Occupant{
			At: core.Point{X: i % b.width, Y: i / b.width},
			ID: id,
		})
	}
	return out
}

// Reset empties the board.
func (b *Board) Reset() {
	clear(b.cells)
	b.where.Clear()
}

// String dumps the board top row first, for logs and tests.
func (b *Board) String() string {
	var sb strings.Builder
	spacer := strings.Repeat("-", b.width*2) + "\n"

	sb.WriteString(spacer)
	for y := b.height - 1; y >= 0; y-- {
		for x := range b.width {
			if b.cells[y*b.width+x] != core.NoOccupant {
				sb.WriteString("██")
			} else {
				sb.WriteString("..")
			}
		}
		sb.WriteByte('\n')
	}
	sb.WriteString(spacer)
	return sb.String()
}
