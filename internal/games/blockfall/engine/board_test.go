package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/blockfall/internal/core"
)

func placeDot(t *testing.T, b *Board, at core.Point, id core.OccupantID) {
	t.Helper()
	p := NewPiece(dotShape(), at)
	require.True(t, b.CanPlace(p), "cell %v should be free", at)
	b.Place(p, []core.OccupantID{id})
}

func fillRow(t *testing.T, b *Board, row int, firstID core.OccupantID) {
	t.Helper()
	for x := range b.Width() {
		placeDot(t, b, core.P(x, row), firstID+core.OccupantID(x))
	}
}

func TestBoardCanPlaceBounds(t *testing.T) {
	b := NewBoard(3, 3)
	dot := dotShape()

	tests := []struct {
		at       core.Point
		expected bool
	}{
		{core.P(0, 0), true},
		{core.P(2, 2), true},
		{core.P(1, 1), true},
		{core.P(-1, 0), false},
		{core.P(3, 0), false},
		{core.P(0, -1), false},
		{core.P(0, 3), false},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.expected, b.CanPlace(NewPiece(dot, tc.at)), "CanPlace at %v", tc.at)
	}
	assert.True(t, b.IsOccupied(core.P(-1, -1)), "off-grid counts as occupied")
	assert.Equal(t, core.NoOccupant, b.At(core.P(5, 5)))
}

func TestBoardPlaceOccupies(t *testing.T) {
	b := NewBoard(4, 4)
	ell := mustShape(t, StandardCatalog(), "L")
	p := NewPiece(ell, core.P(1, 0))

	require.True(t, b.CanPlace(p))
	b.Place(p, []core.OccupantID{1, 2, 3, 4})

	assert.False(t, b.CanPlace(p))
	assert.Equal(t, 4, b.Len())
	for i, c := range p.Cells() {
		assert.Equal(t, core.OccupantID(i+1), b.At(c))
		at, ok := b.Locate(core.OccupantID(i + 1))
		assert.True(t, ok)
		assert.Equal(t, c, at)
	}
}

func TestBoardPlaceContractViolations(t *testing.T) {
	b := NewBoard(3, 3)
	placeDot(t, b, core.P(1, 1), 7)

	dot := dotShape()
	assert.Panics(t, func() { b.Place(NewPiece(dot, core.P(1, 1)), []core.OccupantID{8}) }, "occupied cell")
	assert.Panics(t, func() { b.Place(NewPiece(dot, core.P(3, 1)), []core.OccupantID{8}) }, "off-grid cell")
	assert.Panics(t, func() { b.Place(NewPiece(dot, core.P(0, 0)), []core.OccupantID{8, 9}) }, "wrong id count")
	assert.Panics(t, func() { b.Place(NewPiece(dot, core.P(0, 0)), []core.OccupantID{core.NoOccupant}) }, "empty id")
	assert.Panics(t, func() { NewBoard(0, 3) })
}

func TestBoardClearEmpty(t *testing.T) {
	b := NewBoard(3, 3)
	res := b.ClearFullRows()

	assert.Empty(t, res.Rows)
	assert.Empty(t, res.Removed)
	assert.Empty(t, res.Relocated)
}

func TestBoardClearSingleRowNothingAbove(t *testing.T) {
	b := NewBoard(3, 3)
	fillRow(t, b, 0, 1)
	require.True(t, b.IsRowFull(0))

	res := b.ClearFullRows()

	assert.Equal(t, []int{0}, res.Rows)
	assert.ElementsMatch(t, []core.OccupantID{1, 2, 3}, res.Removed)
	assert.Empty(t, res.Relocated)
	assert.Equal(t, 0, b.Len())
	assert.False(t, b.IsRowFull(0))
}

func TestBoardClearShiftsRowAbove(t *testing.T) {
	b := NewBoard(3, 3)
	fillRow(t, b, 0, 1)
	placeDot(t, b, core.P(0, 1), 4)

	res := b.ClearFullRows()

	assert.ElementsMatch(t, []core.OccupantID{1, 2, 3}, res.Removed)
	assert.Equal(t, map[core.OccupantID]core.Point{4: core.P(0, 0)}, res.Relocated)
	assert.Equal(t, core.OccupantID(4), b.At(core.P(0, 0)))
	assert.Equal(t, core.NoOccupant, b.At(core.P(0, 1)))

	at, ok := b.Locate(4)
	assert.True(t, ok)
	assert.Equal(t, core.P(0, 0), at)
	_, ok = b.Locate(1)
	assert.False(t, ok, "removed occupants leave the index")
}

func TestBoardClearSeparatedRows(t *testing.T) {
	b := NewBoard(3, 4)
	fillRow(t, b, 0, 10)
	placeDot(t, b, core.P(1, 1), 1)
	fillRow(t, b, 2, 20)
	placeDot(t, b, core.P(2, 3), 2)

	res := b.ClearFullRows()

	assert.Equal(t, []int{2, 0}, res.Rows)
	assert.ElementsMatch(t, []core.OccupantID{10, 11, 12, 20, 21, 22}, res.Removed)
	assert.Equal(t, map[core.OccupantID]core.Point{
		1: core.P(1, 0),
		2: core.P(2, 1),
	}, res.Relocated)
	assert.Equal(t, 2, b.Len())
}

func TestBoardClearAdjacentRows(t *testing.T) {
	b := NewBoard(3, 3)
	fillRow(t, b, 0, 10)
	fillRow(t, b, 1, 20)
	placeDot(t, b, core.P(0, 2), 1)

	res := b.ClearFullRows()

	assert.Equal(t, []int{1, 0}, res.Rows)
	assert.Len(t, res.Removed, 6)
	assert.Equal(t, map[core.OccupantID]core.Point{1: core.P(0, 0)}, res.Relocated)
	assert.Equal(t, []Occupant{{At: core.P(0, 0), ID: 1}}, b.Occupants())
}

func TestBoardClearTopRow(t *testing.T) {
	b := NewBoard(2, 2)
	fillRow(t, b, 1, 1)
	placeDot(t, b, core.P(0, 0), 5)

	res := b.ClearFullRows()

	assert.Equal(t, []int{1}, res.Rows)
	assert.Empty(t, res.Relocated)
	assert.Equal(t, core.OccupantID(5), b.At(core.P(0, 0)))
}

func TestBoardIsRowFullRange(t *testing.T) {
	b := NewBoard(3, 3)
	assert.Panics(t, func() { b.IsRowFull(3) })
	assert.Panics(t, func() { b.IsRowFull(-1) })
}

func TestBoardRotateKicksOffWall(t *testing.T) {
	b := NewBoard(5, 5)
	tee := mustShape(t, StandardCatalog(), "T")

	p, _ := NewPiece(tee, core.P(0, 1)).Rotated(Clockwise)
	require.True(t, b.CanPlace(p))

	// The plain turn would put a cell at x=-1; the first kick (+1,0) fits.
	rotated, ok := b.Rotate(p, Clockwise)
	require.True(t, ok)
	assert.Equal(t, 2, rotated.Rotation())
	assert.Equal(t, core.P(1, 1), rotated.Anchor())
}

func TestBoardRotateRejected(t *testing.T) {
	b := NewBoard(3, 3)
	placeDot(t, b, core.P(0, 2), 1)
	tee := mustShape(t, StandardCatalog(), "T")
	p := NewPiece(tee, core.P(1, 0))
	require.True(t, b.CanPlace(p))

	rotated, ok := b.Rotate(p, Clockwise)
	assert.False(t, ok)
	assert.Equal(t, p, rotated, "a rejected rotation leaves the piece unchanged")
}

func TestBoardMoveAndDrop(t *testing.T) {
	b := NewBoard(3, 3)
	dot := dotShape()
	p := NewPiece(dot, core.P(1, 2))

	moved, ok := b.Move(p, core.Left)
	assert.True(t, ok)
	assert.Equal(t, core.P(0, 2), moved.Anchor())

	_, ok = b.Move(moved, core.Left)
	assert.False(t, ok)

	assert.Equal(t, core.P(1, 0), b.Drop(p).Anchor())
	assert.True(t, b.CanFall(p))

	placeDot(t, b, core.P(1, 0), 1)
	assert.Equal(t, core.P(1, 1), b.Drop(p).Anchor())
	assert.False(t, b.CanFall(b.Drop(p)))
}

func TestBoardString(t *testing.T) {
	b := NewBoard(2, 2)
	placeDot(t, b, core.P(0, 0), 1)

	expected := "----\n" +
		"....\n" +
		"██..\n" +
		"----\n"
	assert.Equal(t, expected, b.String())
}

func TestBoardReset(t *testing.T) {
	b := NewBoard(3, 3)
	fillRow(t, b, 0, 1)
	b.Reset()

	assert.Equal(t, 0, b.Len())
	assert.Empty(t, b.Occupants())
	_, ok := b.Locate(1)
	assert.False(t, ok)
}
