// Package solver runs the trait-chain deduction loop.
//
// A Solver owns one chain.Chain and consults a catalog.Catalog as an oracle.
// Solve seeds every node's candidate sets, removes combinations already
// disproved by attempted crew, then repeats four passes until a fixed point:
//
//  1. Catalog filter       – drop candidate sets no crew owns.
//  2. Required traits      – a required trait with exactly as many holders as
//     remaining uses is placed on every holder.
//  3. Guaranteed traits    – a value present in the unknown part of every
//     surviving set of a node is placed on that node.
//  4. Full consistency     – only when 1–3 stalled: enumerate every chain-wide
//     combination, keep those honouring the required counts and pool
//     uniqueness, and narrow each node to the sets that survive.
//
// The loop stops when an iteration changes nothing or after MaxIterations
// iterations; the latter is reported through Result.Incomplete rather than as
// an error.
//
// Once the loop ends, every unsolved node gets a crew list: each crew owning
// a surviving set, grouped by the hidden values their sets cover. Groups whose
// values strictly contain another group's values are dropped.
//
// Complexity:
//
//	– Passes 1–3: O(N·S·K) per iteration for N nodes, S sets per node, K traits per set.
//	– Pass 4:     O(Π S_i · N·K) over unsolved nodes i; exponential, bounded by ctx.
//
// Errors:
//
//	– ErrNilChain, ErrNilCatalog from New.
//	– ErrContradiction (as *ContradictionError) when no chain-wide
//	  combination satisfies the constraints.
//	– ctx.Err(), wrapped, when the context is cancelled.
package solver
