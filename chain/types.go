package chain

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/traitchain/trait"
)

// Sentinel errors returned while building or validating a Chain.
var (
	// ErrUnsupportedShape indicates a node hiding more than MaxUnknown traits.
	ErrUnsupportedShape = errors.New("chain: node hides more than two traits")

	// ErrInconsistentPuzzle indicates a revealed hidden value that the hidden
	// pool cannot account for.
	ErrInconsistentPuzzle = errors.New("chain: revealed trait missing from hidden pool")

	// ErrRequiredOverflow indicates that the remaining required counts cannot
	// fit into the unknown slots left in the chain.
	ErrRequiredOverflow = errors.New("chain: required traits exceed unknown slots")
)

// MaxUnknown is the largest number of placeholders a node may carry.
const MaxUnknown = 2

// NodeID identifies a node by its position in the chain. It is assigned once
// at construction and never changes.
type NodeID int

// RequiredTrait pairs a trait with the number of unfilled slots that must
// still take it.
type RequiredTrait struct {
	Trait trait.Trait
	Count int
}
