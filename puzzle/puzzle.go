package puzzle

import (
	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidPuzzle indicates the document decoded but is structurally unusable.
	ErrInvalidPuzzle = errors.New("puzzle: invalid puzzle")

	// ErrDifficultyNotFound indicates a player export lacks the requested combo.
	ErrDifficultyNotFound = errors.New("puzzle: no combo chain for difficulty")

	// ErrUnknownDifficulty indicates a difficulty name outside the table.
	ErrUnknownDifficulty = errors.New("puzzle: unknown difficulty")

	// ErrUnsupportedFormat indicates an input file with an unrecognised extension.
	ErrUnsupportedFormat = errors.New("puzzle: unsupported file format")
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Puzzle is one combo chain: the pool of hidden trait values for the whole
// chain plus the ordered node descriptors.
type Puzzle struct {
	// Traits is the hidden-trait pool, one entry per occurrence.
	Traits []string `json:"traits" yaml:"traits" validate:"required,min=1,dive,required"`

	// Nodes are the chain slots in display order.
	Nodes []Node `json:"nodes" yaml:"nodes" validate:"required,min=1,dive"`
}

// Node is a single chain slot as described by the input.
type Node struct {
	// OpenTraits are visible from the start.
	OpenTraits []string `json:"open_traits" yaml:"open_traits" validate:"dive,required"`

	// HiddenTraits holds revealed values and "?" placeholders.
	HiddenTraits []string `json:"hidden_traits" yaml:"hidden_traits" validate:"dive,required"`

	// SolvedBy is the archetype id of the crew that unlocked this node, if any.
	SolvedBy *int `json:"unlocked_crew_archetype_id,omitempty" yaml:"unlocked_crew_archetype_id,omitempty"`
}

// Validate checks the structural constraints declared on Puzzle.
// Semantic checks (pool consistency, node shape) belong to the chain package.
func (p Puzzle) Validate() error {
	if err := validate.Struct(p); err != nil {
		return errors.Wrapf(ErrInvalidPuzzle, "%v", err)
	}

	return nil
}

// VisibleTraits returns every open trait across all nodes, in node order.
func (p Puzzle) VisibleTraits() []string {
	var out []string
	for _, n := range p.Nodes {
		out = append(out, n.OpenTraits...)
	}

	return out
}

// SolutionIDs returns the archetype ids of crew already known to solve nodes.
func (p Puzzle) SolutionIDs() []int {
	var ids []int
	for _, n := range p.Nodes {
		if n.SolvedBy != nil {
			ids = append(ids, *n.SolvedBy)
		}
	}

	return ids
}
