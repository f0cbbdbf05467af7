// Package trait defines the small value types every other traitchain package
// speaks in:
//
//   - Trait       — an opaque trait identifier (e.g. "romulan", "casual").
//   - Placeholder — the distinguished value marking a hidden, unresolved slot.
//   - Tuple       — a sorted trait combination; the unit the Catalog is keyed by.
//   - Pool        — an ordered multiset of traits (the hidden-trait pool).
//   - Set         — an ordered set of distinct traits, backed by a red-black tree.
//
// Tuples are always kept sorted so that two combinations holding the same
// traits compare equal and share a Key. Pools keep first-seen order so that
// candidate generation is deterministic for a given input.
//
// Complexity:
//   - Tuple construction: O(k log k) for k traits.
//   - Pool.Subtract:       O(n + m).
//   - Set operations:      O(log n).
package trait
