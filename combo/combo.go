package combo

import (
	"iter"
	"math"
)

// Generator yields one combination per call. It is not safe for concurrent use.
type Generator[T any] struct {
	lists   [][]T
	cursor  []int
	started bool
	done    bool
}

// New returns a Generator over lists. The lists are read, never modified.
func New[T any](lists [][]T) *Generator[T] {
	g := &Generator[T]{lists: lists, cursor: make([]int, len(lists))}
	for _, l := range lists {
		if len(l) == 0 {
			g.done = true
			break
		}
	}

	return g
}

// Next returns the next combination and true, or nil and false once the
// product is exhausted. Each returned slice is freshly allocated.
func (g *Generator[T]) Next() ([]T, bool) {
	if g.done {
		return nil, false
	}
	if g.started && !g.advance() {
		g.done = true
		return nil, false
	}
	g.started = true

	out := make([]T, len(g.lists))
	for i, j := range g.cursor {
		out[i] = g.lists[i][j]
	}

	return out, true
}

// advance moves the cursor one step, rightmost list first. It reports false
// when every position has wrapped around.
func (g *Generator[T]) advance() bool {
	for i := len(g.cursor) - 1; i >= 0; i-- {
		g.cursor[i]++
		if g.cursor[i] < len(g.lists[i]) {
			return true
		}
		g.cursor[i] = 0
	}

	return false
}

// Count returns the total number of combinations the lists produce,
// regardless of how many have been consumed. It saturates at math.MaxInt.
func (g *Generator[T]) Count() int {
	total := 1
	for _, l := range g.lists {
		if len(l) == 0 {
			return 0
		}
		if total > math.MaxInt/len(l) {
			total = math.MaxInt
			continue
		}
		total *= len(l)
	}

	return total
}

// All returns an iterator over the remaining combinations.
func (g *Generator[T]) All() iter.Seq[[]T] {
	return func(yield func([]T) bool) {
		for {
			combo, ok := g.Next()
			if !ok || !yield(combo) {
				return
			}
		}
	}
}
