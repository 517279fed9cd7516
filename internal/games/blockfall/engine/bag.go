package engine

import "math/rand"

// Bag deals shape names using the bag randomizer: every shape appears once,
// in shuffled order, before any repeats. Two bags with the same names and
// seed deal identical sequences.
type Bag struct {
	rng   *rand.Rand
	names []string
	queue []string
}

// NewBag creates a seeded bag over the catalog's shapes.
func NewBag(c *Catalog, seed int64) *Bag {
	return &Bag{
		rng:   rand.New(rand.NewSource(seed)),
		names: c.Names(),
	}
}

// Next returns and consumes the next shape name.
func (b *Bag) Next() string {
	if len(b.queue) == 0 {
		b.refill()
	}
	name := b.queue[0]
	b.queue = b.queue[1:]
	return name
}

// Peek returns the next shape name without consuming it.
func (b *Bag) Peek() string {
	if len(b.queue) == 0 {
		b.refill()
	}
	return b.queue[0]
}

func (b *Bag) refill() {
	b.queue = append(b.queue[:0], b.names...)
	// Fisher-Yates shuffle
	for i := len(b.queue) - 1; i > 0; i-- {
		j := b.rng.Intn(i + 1)
		b.queue[i], b.queue[j] = b.queue[j], b.queue[i]
	}
}
