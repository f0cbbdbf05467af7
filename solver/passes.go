package solver

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/traitchain/chain"
	"github.com/katalvlaran/traitchain/combo"
	"github.com/katalvlaran/traitchain/trait"
	"go.uber.org/zap"
)

// ctxCheckEvery is how many combinations pass 4 tallies between context checks.
const ctxCheckEvery = 4096

// filterCatalog drops candidate sets the catalog does not know.
func (s *Solver) filterCatalog(log *zap.Logger) bool {
	changed := false
	for _, n := range s.chain.Unsolved() {
		if n.KeepSets(s.cat.Contains) {
			changed = true
			log.Debug("catalog filter narrowed node",
				zap.Int("node", int(n.ID())), zap.Int("sets", len(n.CandidateSets())))
		}
	}

	return changed
}

// deduceRequired places a required trait on every node that can take it
// when the holders are exactly as many as its remaining uses.
func (s *Solver) deduceRequired(log *zap.Logger) bool {
	changed := false
	for _, r := range s.chain.RequiredTraits() {
		count, _ := s.chain.Required(r.Trait)
		if count <= 0 {
			continue
		}
		var holders []*chain.Node
		for _, n := range s.chain.Unsolved() {
			if n.Has(r.Trait) {
				holders = append(holders, n)
			}
		}
		if len(holders) != count {
			continue
		}

		used := make([]trait.Trait, 0, len(holders))
		for _, n := range holders {
			n.SetTrait(r.Trait)
			used = append(used, r.Trait)
			log.Debug("required trait placed",
				zap.Int("node", int(n.ID())), zap.String("trait", string(r.Trait)))
		}
		s.chain.RemoveSetTraits(used)
		s.chain.SetRequired(r.Trait, 0)
		changed = true
	}

	return changed
}

// deduceGuaranteed places every value that appears in the unknown part of
// all surviving sets of a node. Placed values leave the pool after the scan.
func (s *Solver) deduceGuaranteed(log *zap.Logger) bool {
	var used []trait.Trait
	for _, n := range s.chain.Unsolved() {
		for _, t := range n.CandidateTraits() {
			if n.Solved() {
				break
			}
			if !n.Has(t) || !inEveryUnknownPart(n, t) {
				continue
			}
			n.SetTrait(t)
			s.chain.DecrementRequired(t)
			used = append(used, t)
			log.Debug("guaranteed trait placed",
				zap.Int("node", int(n.ID())), zap.String("trait", string(t)))
		}
	}
	if len(used) == 0 {
		return false
	}
	s.chain.RemoveSetTraits(used)

	return true
}

func inEveryUnknownPart(n *chain.Node, t trait.Trait) bool {
	sets := n.CandidateSets()
	if len(sets) == 0 {
		return false
	}
	for _, set := range sets {
		if !trait.Tuple(n.UnknownPart(set)).Contains(t) {
			return false
		}
	}

	return true
}

// checkFullSolutions enumerates every chain-wide assignment of the unsolved
// nodes' unknown parts and keeps those that honour the required counts and
// pool uniqueness. Nodes are then narrowed to the surviving sets.
func (s *Solver) checkFullSolutions(ctx context.Context, log *zap.Logger) (bool, error) {
	unsolved := s.chain.Unsolved()
	if len(unsolved) == 0 {
		return false, nil
	}
	lists := make([][]trait.Tuple, len(unsolved))
	for i, n := range unsolved {
		for _, set := range n.CandidateSets() {
			lists[i] = append(lists[i], trait.Tuple(n.UnknownPart(set)))
		}
	}
	required := s.chain.RequiredTraits()
	checkCounts := s.chain.RequiredTotal() > 0

	gen := combo.New(lists)
	log.Debug("checking full solutions", zap.Int("combinations", gen.Count()))

	var (
		solutions [][]trait.Tuple
		rejected  bool
		seen      int
		tally     = make(map[trait.Trait]int)
	)
	for parts := range gen.All() {
		if seen++; seen%ctxCheckEvery == 0 {
			if err := ctx.Err(); err != nil {
				return false, errors.Wrap(err, "solver: full solution check")
			}
		}
		clear(tally)
		for _, part := range parts {
			for _, t := range part {
				tally[t]++
			}
		}
		if !s.consistent(tally, required, checkCounts) {
			rejected = true
			continue
		}
		full := make([]trait.Tuple, len(parts))
		for i, part := range parts {
			full[i] = trait.Join(unsolved[i].KnownTraits(), part...)
		}
		solutions = append(solutions, full)
	}

	if len(solutions) == 0 {
		return false, s.contradiction(unsolved, required)
	}
	if !rejected {
		return false, nil
	}
	changed := s.chain.UpdateFromValidatedSolutions(solutions)
	log.Debug("full solution check narrowed chain",
		zap.Int("solutions", len(solutions)), zap.Bool("changed", changed))

	return changed, nil
}

// consistent reports whether one chain-wide tally honours the constraints.
func (s *Solver) consistent(tally map[trait.Trait]int, required []chain.RequiredTrait, checkCounts bool) bool {
	if checkCounts {
		for _, r := range required {
			if tally[r.Trait] != r.Count {
				return false
			}
		}
	}
	for t, n := range tally {
		if n <= 1 {
			continue
		}
		if _, ok := s.chain.Required(t); !ok {
			return false
		}
	}

	return true
}

func (s *Solver) contradiction(unsolved []*chain.Node, required []chain.RequiredTrait) error {
	ce := &ContradictionError{Required: required}
	for _, n := range unsolved {
		ce.Candidates = append(ce.Candidates, NodeCandidates{Node: n.ID(), Sets: n.CandidateSets()})
	}
	var err error = ce
	for _, nc := range ce.Candidates {
		err = errors.WithDetailf(err, "node %d candidates: %v", nc.Node, nc.Sets)
	}

	return errors.WithHint(err, "check the attempted crew list; a wrongly attempted crew removes valid sets")
}
