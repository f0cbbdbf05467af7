// Package catalog answers the one question the solver keeps asking:
// "which known crew own exactly this trait combination?"
//
// Catalog is the interface the solver consumes. Memory is the in-memory
// implementation: every crew entry is indexed under each sorted subset of its
// traits whose size lies within the configured bounds, so a lookup is a single
// map access keyed by trait.Tuple.Key.
//
// Options follow the functional style (WithSetSize, WithRarity); constructors
// panic on nonsensical values, while NewMemory and Load report bad data as
// errors (ErrInvalidEntry).
//
// Complexity:
//   - NewMemory: O(Σ C(t_i, k)) over crew i with t_i traits and k in [min, max].
//   - Contains / Lookup: O(k) to build the key, O(1) map access.
package catalog
