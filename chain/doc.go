// Package chain holds the mutable state of one trait-chain puzzle: the ordered
// Nodes, the global pool of hidden trait values still to be placed, and the
// required-trait counts that must be met exactly across the chain.
//
// What is a node?
//
//	A node shows some traits openly ("given") and hides one or two more behind
//	the placeholder "?". While unsolved it tracks every full combination its
//	hidden slots could still produce (candidate sets) and the individual values
//	that occur in the unknown part of those sets (candidate traits).
//
//	    Node 1 - [x] + ?        candidate sets: (w, x) (x, z)
//	    Node 2 - [y] + ? + ?    candidate sets: (w, y, z)
//
// Symmetry breaking:
//
//	Hidden traits are displayed sorted after the given ones, so with
//	lexicographic ordering enabled a candidate value that sorts before the
//	anchor trait (the last known trait) can never be correct and is skipped
//	when candidate sets are built.
//
// Chain bookkeeping:
//
//	Pool                  - multiset of values still available to unknown slots.
//	Required              - trait → exact number of unknown slots that must use it.
//	RemoveSetTraits       - consumes fixed values and prunes exhausted ones.
//	UpdateFromValidatedSolutions - projects chain-wide solutions back onto nodes.
//
// A Chain is built once from a puzzle.Puzzle and mutated in place by a single
// solver. It is not safe for concurrent use.
//
// Errors:
//
//	ErrUnsupportedShape   - a node hides more than two unresolved traits.
//	ErrInconsistentPuzzle - a revealed hidden value is missing from the pool.
//	ErrRequiredOverflow   - required counts exceed the unknown slots left.
package chain
