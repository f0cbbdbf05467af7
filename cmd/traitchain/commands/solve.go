package commands

import (
	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/traitchain/catalog"
	"github.com/katalvlaran/traitchain/chain"
	"github.com/katalvlaran/traitchain/logger"
	"github.com/katalvlaran/traitchain/puzzle"
	"github.com/katalvlaran/traitchain/report"
	"github.com/katalvlaran/traitchain/solver"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// SolveCmd solves the configured chain and prints the report.
var SolveCmd = &cobra.Command{
	Use:   "solve",
	Short: "Solve a combo chain and list crew to try",
	Long: `Load the chain for the selected difficulty from a player export (or a bare
puzzle file), build the crew catalog for that difficulty and run the solver.

Crew passed with --attempted are treated as already tried: every trait
combination they own is removed from the candidates.`,
	Args: cobra.NoArgs,
	RunE: runSolve,
}

func init() {
	SolveCmd.Flags().StringArrayP("attempted", "a", nil, "Crew already tried on this chain (repeatable)")
	SolveCmd.Flags().String("puzzle", "", "Player export or puzzle file (JSON or YAML)")
	SolveCmd.Flags().String("catalog", "", "Crew catalog file (YAML or JSON)")
	SolveCmd.Flags().StringP("difficulty", "d", "", "Chain difficulty: easy, normal, hard, brutal, nm, unm")
	SolveCmd.Flags().String("translation", "", "Trait display-name file ({\"trait_names\": {...}})")
	SolveCmd.Flags().Int("max-iterations", 0, "Cap on deduction iterations")
	SolveCmd.Flags().Bool("no-lexico", false, "Disable lexicographic symmetry breaking")
}

func runSolve(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	log, err := logger.New(logger.Options{JSON: cfg.Log.JSON, Level: cfg.Log.Level})
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	d, err := puzzle.ParseDifficulty(cfg.Puzzle.Difficulty)
	if err != nil {
		return err
	}
	p, err := puzzle.Load(cfg.Puzzle.Path, d)
	if err != nil {
		return err
	}
	cat, err := catalog.Load(cfg.Catalog.Path,
		catalog.WithSetSize(d.MinSetSize, d.MaxSetSize),
		catalog.WithRarity(d.MinRarity, d.MaxRarity),
	)
	if err != nil {
		return err
	}
	var tr *report.Translator
	if cfg.Translation.Path != "" {
		if tr, err = report.LoadTranslation(cfg.Translation.Path); err != nil {
			return err
		}
	}
	log.Debug("inputs loaded",
		zap.String("difficulty", d.Name),
		zap.Int("nodes", len(p.Nodes)),
		zap.Int("crew", cat.Len()),
		zap.Int("combinations", cat.Combinations()))

	c, err := chain.New(p)
	if err != nil {
		return err
	}
	s, err := solver.New(c, cat,
		solver.WithMaxIterations(cfg.Solver.MaxIterations),
		solver.WithLexicographic(cfg.Solver.Lexicographic),
		solver.WithLogger(log),
	)
	if err != nil {
		return err
	}

	attempted, _ := cmd.Flags().GetStringArray("attempted")
	res, err := s.Solve(cmd.Context(), attempted)
	if err != nil {
		var ce *solver.ContradictionError
		if errors.As(err, &ce) {
			for _, nc := range ce.Candidates {
				log.Error("no consistent assignment",
					zap.Int("node", int(nc.Node)+1), zap.Int("candidate_sets", len(nc.Sets)))
			}
		}

		return err
	}

	return report.Render(cmd.OutOrStdout(), res, tr, report.Settings{
		Difficulty:    d.Name,
		Lexicographic: cfg.Solver.Lexicographic,
		MaxIterations: cfg.Solver.MaxIterations,
		Attempted:     attempted,
	})
}
