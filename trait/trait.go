package trait

import (
	"slices"
	"strings"
)

// Placeholder marks a hidden slot whose value is not known yet.
const Placeholder Trait = "?"

// keySep joins tuple members into a map key. Trait ids never contain it.
const keySep = "|"

// Trait is a single attribute identifier.
type Trait string

// IsPlaceholder reports whether t marks an unresolved slot.
func (t Trait) IsPlaceholder() bool { return t == Placeholder }

// FromStrings converts raw identifiers into traits, preserving order.
func FromStrings(ss []string) []Trait {
	out := make([]Trait, len(ss))
	for i, s := range ss {
		out[i] = Trait(s)
	}

	return out
}

// ToStrings is the inverse of FromStrings.
func ToStrings(ts []Trait) []string {
	out := make([]string, len(ts))
	for i, t := range ts {
		out[i] = string(t)
	}

	return out
}

// Tuple is a sorted trait combination. Build it with NewTuple so the
// ordering invariant holds; the zero value is the empty combination.
type Tuple []Trait

// NewTuple copies ts and returns it sorted ascending.
func NewTuple(ts ...Trait) Tuple {
	out := make(Tuple, len(ts))
	copy(out, ts)
	slices.Sort(out)

	return out
}

// Join returns the sorted combination of prefix followed by extra.
func Join(prefix []Trait, extra ...Trait) Tuple {
	out := make(Tuple, 0, len(prefix)+len(extra))
	out = append(out, prefix...)
	out = append(out, extra...)
	slices.Sort(out)

	return out
}

// Key returns a stable string identity for the tuple, usable as a map key.
func (t Tuple) Key() string {
	return strings.Join(ToStrings(t), keySep)
}

// Contains reports whether x occurs in the tuple.
func (t Tuple) Contains(x Trait) bool {
	return slices.Contains(t, x)
}

// Equal reports element-wise equality.
func (t Tuple) Equal(o Tuple) bool {
	return slices.Equal(t, o)
}

// Without returns the members of t left after removing one occurrence of
// each element of known (multiset difference), in tuple order.
func (t Tuple) Without(known []Trait) []Trait {
	pending := make(map[Trait]int, len(known))
	for _, k := range known {
		pending[k]++
	}
	out := make([]Trait, 0, len(t))
	for _, v := range t {
		if pending[v] > 0 {
			pending[v]--
			continue
		}
		out = append(out, v)
	}

	return out
}

// String renders the tuple as "(a, b, c)".
func (t Tuple) String() string {
	return "(" + strings.Join(ToStrings(t), ", ") + ")"
}
