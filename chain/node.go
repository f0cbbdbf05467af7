package chain

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/traitchain/catalog"
	"github.com/katalvlaran/traitchain/trait"
)

// Node is one slot of the chain. Its traits are laid out as
// given | revealed | placeholders; placeholders are overwritten in place as
// the solver fixes them.
type Node struct {
	id       NodeID
	given    []trait.Trait
	traits   []trait.Trait
	nunknown int
	solved   bool
	fresh    bool

	lexicoAnchor    int
	candidateSets   []trait.Tuple
	candidateTraits *trait.Set
}

// newNode normalises the trait layout and checks the node shape.
func newNode(id NodeID, open, hidden []trait.Trait) (*Node, error) {
	n := &Node{
		id:              id,
		given:           slices.Clone(open),
		lexicoAnchor:    -1,
		candidateTraits: trait.NewSet(),
	}
	n.traits = make([]trait.Trait, 0, len(open)+len(hidden))
	n.traits = append(n.traits, open...)
	for _, h := range hidden {
		if !h.IsPlaceholder() {
			n.traits = append(n.traits, h)
		}
	}
	for _, h := range hidden {
		if h.IsPlaceholder() {
			n.traits = append(n.traits, h)
			n.nunknown++
		}
	}
	if n.nunknown > MaxUnknown {
		return nil, errors.Wrapf(ErrUnsupportedShape, "node %d has %d placeholders", id, n.nunknown)
	}
	n.solved = n.nunknown == 0

	return n, nil
}

// ID returns the node's stable identity.
func (n *Node) ID() NodeID { return n.id }

// Traits returns a copy of the full trait sequence, placeholders included.
func (n *Node) Traits() []trait.Trait { return slices.Clone(n.traits) }

// GivenTraits returns the openly visible traits.
func (n *Node) GivenTraits() []trait.Trait { return slices.Clone(n.given) }

// KnownTraits returns every non-placeholder trait: given, revealed and filled.
func (n *Node) KnownTraits() []trait.Trait {
	return slices.Clone(n.known())
}

func (n *Node) known() []trait.Trait { return n.traits[:len(n.traits)-n.nunknown] }

// Unknown returns the number of placeholders left.
func (n *Node) Unknown() int { return n.nunknown }

// Solved reports whether no placeholder remains.
func (n *Node) Solved() bool { return n.solved }

// Fresh reports whether the node was solved by deduction rather than input.
func (n *Node) Fresh() bool { return n.fresh }

// CandidateSets returns a copy of the surviving candidate sets.
func (n *Node) CandidateSets() []trait.Tuple { return slices.Clone(n.candidateSets) }

// CandidateTraits returns the candidate values in ascending order.
func (n *Node) CandidateTraits() []trait.Trait { return n.candidateTraits.Values() }

// Has reports whether t may still fill one of the node's unknown slots.
func (n *Node) Has(t trait.Trait) bool {
	return !n.solved && n.candidateTraits.Contains(t) && !slices.Contains(n.known(), t)
}

// UnknownPart returns the members of set not accounted for by known traits.
func (n *Node) UnknownPart(set trait.Tuple) []trait.Trait {
	return set.Without(n.known())
}

// LexicoAnchor returns the trait hidden values must not sort before, and
// false when the node has no known trait to anchor on.
func (n *Node) LexicoAnchor() (trait.Trait, bool) {
	known := n.known()
	i := len(known) + n.lexicoAnchor
	if i < 0 || i >= len(known) {
		return "", false
	}

	return known[i], true
}

// BuildCandidateSets seeds the candidate sets from pool.
//
// One unknown yields one set per distinct pool value. Two unknowns yield one
// set per pair of pool positions holding different values, deduplicated.
// With lexico set, values sorting before the anchor trait are skipped.
//
// Complexity: O(P²·log K) for P pool entries and K traits per set.
func (n *Node) BuildCandidateSets(pool trait.Pool, lexico bool) {
	if n.solved {
		return
	}
	anchor, hasAnchor := n.LexicoAnchor()
	allowed := func(v trait.Trait) bool {
		return !lexico || !hasAnchor || v >= anchor
	}
	known := n.known()
	n.candidateSets = n.candidateSets[:0]

	switch n.nunknown {
	case 1:
		for _, v := range pool.Distinct() {
			if allowed(v) {
				n.candidateSets = append(n.candidateSets, trait.Join(known, v))
			}
		}
	case 2:
		seen := make(map[string]struct{})
		for i := 0; i < len(pool); i++ {
			for j := i + 1; j < len(pool); j++ {
				a, b := pool[i], pool[j]
				if a == b || !allowed(a) || !allowed(b) {
					continue
				}
				set := trait.Join(known, a, b)
				if _, dup := seen[set.Key()]; dup {
					continue
				}
				seen[set.Key()] = struct{}{}
				n.candidateSets = append(n.candidateSets, set)
			}
		}
	}
	if n.candidateSets == nil {
		n.candidateSets = []trait.Tuple{}
	}
	n.UpdateCandidateTraits()
}

// RemoveTriedSets drops every candidate set the catalog attributes to one of
// the attempted crew. It reports whether any set was dropped.
func (n *Node) RemoveTriedSets(attempted []string, cat catalog.Catalog) bool {
	if n.solved || len(attempted) == 0 {
		return false
	}

	return n.KeepSets(func(set trait.Tuple) bool {
		for _, name := range cat.Lookup(set) {
			if slices.Contains(attempted, name) {
				return false
			}
		}

		return true
	})
}

// KeepSets retains only the candidate sets for which keep returns true and
// refreshes the candidate traits. It reports whether any set was dropped.
func (n *Node) KeepSets(keep func(trait.Tuple) bool) bool {
	if n.solved {
		return false
	}
	before := len(n.candidateSets)
	n.candidateSets = slices.DeleteFunc(n.candidateSets, func(set trait.Tuple) bool {
		return !keep(set)
	})
	if len(n.candidateSets) == before {
		return false
	}
	n.UpdateCandidateTraits()

	return true
}

// SetTrait fills the next placeholder with v and reports whether the node
// became solved. Filling the last placeholder sorts the traits, marks the
// node fresh and drops its candidate state.
func (n *Node) SetTrait(v trait.Trait) bool {
	if n.solved {
		return false
	}
	known := n.known()
	i := slices.Index(n.traits, trait.Placeholder)
	n.traits[i] = v
	n.nunknown--

	if n.nunknown > 0 {
		n.lexicoAnchor--
		n.candidateSets = slices.DeleteFunc(n.candidateSets, func(set trait.Tuple) bool {
			return !trait.Tuple(set.Without(known)).Contains(v)
		})
		n.UpdateCandidateTraits()

		return false
	}

	slices.Sort(n.traits)
	n.solved = true
	n.fresh = true
	n.candidateSets = nil
	n.candidateTraits.Clear()

	return true
}

// UpdateCandidateTraits recomputes the candidate traits as the union of the
// unknown parts of all surviving sets.
func (n *Node) UpdateCandidateTraits() {
	n.candidateTraits.Clear()
	if n.solved {
		return
	}
	known := n.known()
	for _, set := range n.candidateSets {
		n.candidateTraits.Add(set.Without(known)...)
	}
	n.candidateTraits.Remove(known...)
}

// purge drops every set whose unknown part holds t and forgets t as a
// candidate. Nodes that already know t are left alone.
func (n *Node) purge(t trait.Trait) bool {
	if n.solved || slices.Contains(n.known(), t) {
		return false
	}
	known := n.known()
	dropped := n.KeepSets(func(set trait.Tuple) bool {
		return !trait.Tuple(set.Without(known)).Contains(t)
	})
	if n.candidateTraits.Contains(t) {
		n.candidateTraits.Remove(t)
		return true
	}

	return dropped
}

// replaceSets installs sets verbatim, deduplicated, and reports whether the
// node ended up with fewer sets than before.
func (n *Node) replaceSets(sets []trait.Tuple) bool {
	if n.solved {
		return false
	}
	before := len(n.candidateSets)
	seen := make(map[string]struct{}, len(sets))
	out := make([]trait.Tuple, 0, len(sets))
	for _, set := range sets {
		if _, dup := seen[set.Key()]; dup {
			continue
		}
		seen[set.Key()] = struct{}{}
		out = append(out, set)
	}
	n.candidateSets = out
	n.UpdateCandidateTraits()

	return len(out) < before
}

// HiddenTraits returns the traits beyond the given ones: revealed or filled
// values, then placeholders.
func (n *Node) HiddenTraits() []trait.Trait {
	return trait.Tuple(n.traits).Without(n.given)
}

// String renders the node as "#id [given] + hidden".
func (n *Node) String() string {
	s := fmt.Sprintf("#%d [%s]", n.id, strings.Join(trait.ToStrings(n.given), ", "))
	if hidden := n.HiddenTraits(); len(hidden) > 0 {
		s += " + " + strings.Join(trait.ToStrings(hidden), " + ")
	}

	return s
}
