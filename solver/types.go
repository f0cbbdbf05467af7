package solver

import (
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/katalvlaran/traitchain/chain"
	"github.com/katalvlaran/traitchain/trait"
)

// Sentinel errors returned by the solver.
var (
	// ErrContradiction indicates that no assignment of the remaining candidate
	// sets satisfies the required counts and pool uniqueness.
	ErrContradiction = errors.New("solver: no consistent combination remains")

	// ErrNilChain indicates New was called without a chain.
	ErrNilChain = errors.New("solver: chain is nil")

	// ErrNilCatalog indicates New was called without a catalog.
	ErrNilCatalog = errors.New("solver: catalog is nil")
)

// ContradictionError carries the chain state at the moment the exhaustive
// check found no surviving combination. It unwraps to ErrContradiction.
type ContradictionError struct {
	Required   []chain.RequiredTrait
	Candidates []NodeCandidates
}

// NodeCandidates lists the candidate sets of one unsolved node.
type NodeCandidates struct {
	Node chain.NodeID
	Sets []trait.Tuple
}

func (e *ContradictionError) Error() string {
	parts := make([]string, 0, len(e.Required))
	for _, r := range e.Required {
		if r.Count > 0 {
			parts = append(parts, fmt.Sprintf("%s×%d", r.Trait, r.Count))
		}
	}

	return fmt.Sprintf("%v (required: [%s], unsolved nodes: %d)",
		ErrContradiction, strings.Join(parts, " "), len(e.Candidates))
}

func (e *ContradictionError) Unwrap() error { return ErrContradiction }

// Result is the outcome of one Solve call.
type Result struct {
	// RunID correlates log lines of one run.
	RunID uuid.UUID

	// Iterations is the number of loop iterations executed.
	Iterations int

	// Incomplete is set when the iteration cap stopped the loop.
	Incomplete bool

	// Nodes holds one entry per chain node, in chain order.
	Nodes []NodeResult

	// Remaining lists required traits still to be placed, in pool order.
	Remaining []chain.RequiredTrait
}

// NodeResult describes one node after solving.
type NodeResult struct {
	Index  int
	Given  []trait.Trait
	Hidden []trait.Trait
	Solved bool
	// Fresh is set when this run, not the input, solved the node.
	Fresh bool
	// SolvedBy lists the crew owning a fresh node's full trait set.
	SolvedBy []string
	// Groups are the simplified crew candidates of an unsolved node.
	Groups []Group
}

// Group is a set of crew whose matching sets cover the same hidden values.
type Group struct {
	Crew   []string
	Traits []trait.Trait
	// Count is the number of surviving sets the first crew member matched.
	Count int
}
