package chain

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/traitchain/catalog"
	"github.com/katalvlaran/traitchain/puzzle"
	"github.com/katalvlaran/traitchain/trait"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Chain is the ordered list of nodes plus the global bookkeeping shared by
// all of them.
type Chain struct {
	nodes       []*Node
	pool        trait.Pool
	required    *orderedmap.OrderedMap[trait.Trait, int]
	solutionIDs []int
}

// New builds a Chain from p.
//
// The pool starts as the puzzle's hidden pool minus every hidden value that
// is already revealed on some node.
//
// Errors:
//   - puzzle.ErrInvalidPuzzle on structural problems.
//   - ErrUnsupportedShape if a node hides more than two traits.
//   - ErrInconsistentPuzzle if a revealed value is not in the pool.
//   - ErrRequiredOverflow if required counts cannot fit the unknown slots.
func New(p puzzle.Puzzle) (*Chain, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	hidden := trait.FromStrings(p.Traits)
	c := &Chain{
		nodes:       make([]*Node, 0, len(p.Nodes)),
		pool:        trait.NewPool(hidden...),
		solutionIDs: p.SolutionIDs(),
	}

	var revealed []trait.Trait
	for i, pn := range p.Nodes {
		n, err := newNode(NodeID(i), trait.FromStrings(pn.OpenTraits), trait.FromStrings(pn.HiddenTraits))
		if err != nil {
			return nil, err
		}
		for _, t := range n.HiddenTraits() {
			if t.IsPlaceholder() {
				continue
			}
			if !c.pool.Remove(t) {
				return nil, errors.WithHintf(
					errors.Wrapf(ErrInconsistentPuzzle, "node %d reveals %q", i, t),
					"the hidden pool lists %d trait(s); check the export is from the current chain", len(hidden),
				)
			}
			revealed = append(revealed, t)
		}
		c.nodes = append(c.nodes, n)
	}
	c.computeRequiredTraits(hidden, trait.FromStrings(p.VisibleTraits()), revealed)

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// computeRequiredTraits marks a trait required when it occurs more than once
// in the full hidden pool or also occurs among the visible traits. Its count
// is its pool multiplicity, minus the copies already revealed.
func (c *Chain) computeRequiredTraits(hidden, visible, revealed []trait.Trait) {
	c.required = orderedmap.New[trait.Trait, int]()
	full := trait.NewPool(hidden...)
	counts := full.Counts()
	for _, t := range full.Distinct() {
		if counts[t] > 1 || slices.Contains(visible, t) {
			c.required.Set(t, counts[t])
		}
	}
	for _, t := range revealed {
		c.DecrementRequired(t)
	}
}

// Nodes returns the nodes in chain order.
func (c *Chain) Nodes() []*Node { return slices.Clone(c.nodes) }

// Len returns the number of nodes.
func (c *Chain) Len() int { return len(c.nodes) }

// Unsolved returns the nodes that still carry placeholders, in chain order.
func (c *Chain) Unsolved() []*Node {
	out := make([]*Node, 0, len(c.nodes))
	for _, n := range c.nodes {
		if !n.Solved() {
			out = append(out, n)
		}
	}

	return out
}

// Pool returns a copy of the values still available to unknown slots.
func (c *Chain) Pool() trait.Pool { return trait.NewPool(c.pool...) }

// SolutionIDs returns the archetype ids of crew known to solve nodes.
func (c *Chain) SolutionIDs() []int { return slices.Clone(c.solutionIDs) }

// Required returns the remaining count for t and whether t is required.
func (c *Chain) Required(t trait.Trait) (int, bool) {
	return c.required.Get(t)
}

// RequiredTraits returns every required trait with its remaining count, in
// first-appearance order of the hidden pool.
func (c *Chain) RequiredTraits() []RequiredTrait {
	out := make([]RequiredTrait, 0, c.required.Len())
	for pair := c.required.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, RequiredTrait{Trait: pair.Key, Count: pair.Value})
	}

	return out
}

// RequiredTotal returns the sum of all remaining required counts.
func (c *Chain) RequiredTotal() int {
	total := 0
	for pair := c.required.Oldest(); pair != nil; pair = pair.Next() {
		total += pair.Value
	}

	return total
}

// SetRequired overwrites the remaining count of an already required trait.
// Traits that are not required are ignored.
func (c *Chain) SetRequired(t trait.Trait, count int) {
	if _, ok := c.required.Get(t); ok {
		c.required.Set(t, max(count, 0))
	}
}

// DecrementRequired lowers the count of t by one if it is positive, and
// reports whether it did.
func (c *Chain) DecrementRequired(t trait.Trait) bool {
	v, ok := c.required.Get(t)
	if !ok || v <= 0 {
		return false
	}
	c.required.Set(t, v-1)

	return true
}

// UnknownSlots returns the number of placeholders left across the chain.
func (c *Chain) UnknownSlots() int {
	total := 0
	for _, n := range c.nodes {
		total += n.Unknown()
	}

	return total
}

// Validate checks that the remaining required counts fit in the unknown
// slots left.
func (c *Chain) Validate() error {
	if need, have := c.RequiredTotal(), c.UnknownSlots(); need > have {
		return errors.Wrapf(ErrRequiredOverflow, "%d required placements, %d unknown slots", need, have)
	}

	return nil
}

// BuildCandidateSets seeds every unsolved node from the current pool.
func (c *Chain) BuildCandidateSets(lexico bool) {
	for _, n := range c.nodes {
		n.BuildCandidateSets(c.pool, lexico)
	}
}

// RemoveTriedSets applies Node.RemoveTriedSets to every node and reports
// whether any node changed.
func (c *Chain) RemoveTriedSets(attempted []string, cat catalog.Catalog) bool {
	changed := false
	for _, n := range c.nodes {
		if n.RemoveTriedSets(attempted, cat) {
			changed = true
		}
	}

	return changed
}

// RemoveSetTraits consumes used from the pool. Every used trait left with no
// copies is purged from the unsolved nodes that do not already know it.
// It reports whether any node changed.
func (c *Chain) RemoveSetTraits(used []trait.Trait) bool {
	c.pool = c.pool.Subtract(used)
	changed := false
	for _, t := range trait.NewPool(used...).Distinct() {
		if c.pool.Contains(t) {
			continue
		}
		for _, n := range c.nodes {
			if n.purge(t) {
				changed = true
			}
		}
	}

	return changed
}

// UpdateFromValidatedSolutions narrows every unsolved node to the sets that
// appear in some validated chain-wide solution. Column k of solutions belongs
// to the k-th unsolved node. It reports whether any node lost a set.
func (c *Chain) UpdateFromValidatedSolutions(solutions [][]trait.Tuple) bool {
	changed := false
	for k, n := range c.Unsolved() {
		column := make([]trait.Tuple, 0, len(solutions))
		for _, sol := range solutions {
			if k < len(sol) {
				column = append(column, sol[k])
			}
		}
		if n.replaceSets(column) {
			changed = true
		}
	}

	return changed
}
