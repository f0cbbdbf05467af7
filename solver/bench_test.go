package solver_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/traitchain/catalog"
	"github.com/katalvlaran/traitchain/chain"
	"github.com/katalvlaran/traitchain/puzzle"
	"github.com/katalvlaran/traitchain/solver"
)

// BenchmarkSolve_Ambiguous measures a chain that stalls into the exhaustive
// check: six interchangeable nodes over six distinct values.
func BenchmarkSolve_Ambiguous(b *testing.B) {
	const n = 6
	p := puzzle.Puzzle{}
	var entries []catalog.Entry
	for i := 0; i < n; i++ {
		given := fmt.Sprintf("g%d", i)
		p.Traits = append(p.Traits, fmt.Sprintf("h%d", i))
		p.Nodes = append(p.Nodes, puzzle.Node{OpenTraits: []string{given}, HiddenTraits: []string{"?"}})
		for j := 0; j < n; j++ {
			entries = append(entries, catalog.Entry{
				Name:   fmt.Sprintf("crew-%d-%d", i, j),
				Traits: []string{given, fmt.Sprintf("h%d", j)},
			})
		}
	}
	cat, err := catalog.NewMemory(entries)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := chain.New(p)
		if err != nil {
			b.Fatal(err)
		}
		s, _ := solver.New(c, cat, solver.WithLexicographic(false))
		if _, err := s.Solve(context.Background(), nil); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkSolve_Pairs measures nodes hiding two traits each, where every
// node accepts every fixed pairing of the pool.
func BenchmarkSolve_Pairs(b *testing.B) {
	const n = 4
	p := puzzle.Puzzle{}
	var entries []catalog.Entry
	for i := 0; i < n; i++ {
		given := fmt.Sprintf("g%d", i)
		p.Traits = append(p.Traits, fmt.Sprintf("h%d", 2*i), fmt.Sprintf("h%d", 2*i+1))
		p.Nodes = append(p.Nodes, puzzle.Node{OpenTraits: []string{given}, HiddenTraits: []string{"?", "?"}})
		for j := 0; j < n; j++ {
			entries = append(entries, catalog.Entry{
				Name:   fmt.Sprintf("crew-%d-%d", i, j),
				Traits: []string{given, fmt.Sprintf("h%d", 2*j), fmt.Sprintf("h%d", 2*j+1)},
			})
		}
	}
	cat, err := catalog.NewMemory(entries)
	if err != nil {
		b.Fatal(err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c, err := chain.New(p)
		if err != nil {
			b.Fatal(err)
		}
		s, _ := solver.New(c, cat, solver.WithLexicographic(false))
		if _, err := s.Solve(context.Background(), nil); err != nil {
			b.Fatal(err)
		}
	}
}
