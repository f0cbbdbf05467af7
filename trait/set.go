package trait

import (
	"strings"

	"github.com/emirpasic/gods/sets/treeset"
)

// Set is an ordered set of distinct traits. Iteration (Values) is always in
// ascending order, which keeps every deduction pass deterministic.
type Set struct {
	tree *treeset.Set
}

// NewSet returns a set holding ts.
func NewSet(ts ...Trait) *Set {
	s := &Set{tree: treeset.NewWithStringComparator()}
	s.Add(ts...)

	return s
}

// Add inserts ts.
func (s *Set) Add(ts ...Trait) {
	for _, t := range ts {
		s.tree.Add(string(t))
	}
}

// Remove deletes ts; absent members are ignored.
func (s *Set) Remove(ts ...Trait) {
	for _, t := range ts {
		s.tree.Remove(string(t))
	}
}

// Contains reports membership of t.
func (s *Set) Contains(t Trait) bool {
	return s.tree.Contains(string(t))
}

// Len returns the number of members.
func (s *Set) Len() int { return s.tree.Size() }

// Clear removes every member.
func (s *Set) Clear() { s.tree.Clear() }

// Values returns the members in ascending order.
func (s *Set) Values() []Trait {
	raw := s.tree.Values()
	out := make([]Trait, len(raw))
	for i, v := range raw {
		out[i] = Trait(v.(string))
	}

	return out
}

// IsStrictSubsetOf reports whether every member of s is in o and o has
// at least one member s lacks.
func (s *Set) IsStrictSubsetOf(o *Set) bool {
	if s.Len() >= o.Len() {
		return false
	}
	for _, t := range s.Values() {
		if !o.Contains(t) {
			return false
		}
	}

	return true
}

// Key returns a stable identity for the set's contents.
func (s *Set) Key() string {
	return strings.Join(ToStrings(s.Values()), keySep)
}

// String renders the set as "{a, b}".
func (s *Set) String() string {
	return "{" + strings.Join(ToStrings(s.Values()), ", ") + "}"
}
