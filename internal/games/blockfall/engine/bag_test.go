package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBagDealsEveryShapePerRound(t *testing.T) {
	c := StandardCatalog()
	b := NewBag(c, 42)

	for round := range 5 {
		seen := make(map[string]int)
		for range c.Len() {
			seen[b.Next()]++
		}
		assert.Len(t, seen, c.Len(), "round %d", round)
		for name, n := range seen {
			assert.Equal(t, 1, n, "round %d shape %s", round, name)
		}
	}
}

func TestBagDeterministic(t *testing.T) {
	a := NewBag(StandardCatalog(), 7)
	b := NewBag(StandardCatalog(), 7)

	for i := range 50 {
		assert.Equal(t, a.Next(), b.Next(), "draw %d", i)
	}
}

func TestBagPeek(t *testing.T) {
	b := NewBag(ClassicCatalog(), 1)

	for range 10 {
		next := b.Peek()
		assert.Equal(t, next, b.Peek(), "peek does not consume")
		assert.Equal(t, next, b.Next())
	}
}

func TestBagSingleShape(t *testing.T) {
	b := NewBag(BarCatalog(), 99)
	for range 5 {
		assert.Equal(t, "I", b.Next())
	}
}
