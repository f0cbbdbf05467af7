package solver

import (
	"context"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/katalvlaran/traitchain/catalog"
	"github.com/katalvlaran/traitchain/chain"
	"go.uber.org/zap"
)

// Solver deduces the hidden traits of one chain. It mutates the chain in
// place and is not safe for concurrent use.
type Solver struct {
	chain *chain.Chain
	cat   catalog.Catalog
	opts  options
	log   *zap.Logger
}

// New binds a chain to a catalog.
func New(c *chain.Chain, cat catalog.Catalog, opts ...Option) (*Solver, error) {
	if c == nil {
		return nil, ErrNilChain
	}
	if cat == nil {
		return nil, ErrNilCatalog
	}
	o := gatherOptions(opts...)

	return &Solver{chain: c, cat: cat, opts: o, log: o.logger}, nil
}

// Solve runs the deduction loop to a fixed point and reports every node.
// attempted names crew already tried against the chain without success;
// crew that solved nodes in the input are added to it.
func (s *Solver) Solve(ctx context.Context, attempted []string) (*Result, error) {
	res := &Result{RunID: uuid.New()}
	log := s.log.With(zap.String("run_id", res.RunID.String()))

	s.chain.BuildCandidateSets(s.opts.lexico)

	tried := slices.Clone(attempted)
	tried = append(tried, s.cat.EntitiesForSolvedNodes(s.chain.SolutionIDs())...)
	if len(tried) > 0 && s.chain.RemoveTriedSets(tried, s.cat) {
		log.Debug("removed sets owned by attempted crew", zap.Strings("crew", tried))
	}

	for {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrapf(err, "solver: iteration %d", res.Iterations+1)
		}
		if res.Iterations == s.opts.maxIterations {
			res.Incomplete = true
			log.Warn("iteration cap reached before convergence",
				zap.Int("max_iterations", s.opts.maxIterations))
			break
		}
		res.Iterations++
		log := log.With(zap.Int("iteration", res.Iterations))

		changed := s.filterCatalog(log)
		if s.deduceRequired(log) {
			changed = true
		}
		if s.deduceGuaranteed(log) {
			changed = true
		}
		if err := s.chain.Validate(); err != nil {
			return nil, errors.Mark(err, ErrContradiction)
		}
		if !changed {
			var err error
			if changed, err = s.checkFullSolutions(ctx, log); err != nil {
				return nil, err
			}
		}
		log.Debug("iteration done", zap.Bool("changed", changed),
			zap.Int("unsolved", len(s.chain.Unsolved())))
		if !changed {
			break
		}
	}

	s.report(res)

	return res, nil
}

// report fills the per-node results and the remaining required traits.
func (s *Solver) report(res *Result) {
	for i, n := range s.chain.Nodes() {
		nr := NodeResult{
			Index:  i,
			Given:  n.GivenTraits(),
			Hidden: n.HiddenTraits(),
			Solved: n.Solved(),
			Fresh:  n.Fresh(),
		}
		if n.Fresh() {
			nr.SolvedBy = s.cat.Lookup(n.Traits())
		}
		if !n.Solved() {
			nr.Groups = simplify(buildCrewList(n, s.cat))
		}
		res.Nodes = append(res.Nodes, nr)
	}
	for _, r := range s.chain.RequiredTraits() {
		if r.Count > 0 {
			res.Remaining = append(res.Remaining, r)
		}
	}
}
