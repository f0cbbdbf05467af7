// Package traitchain deduces the hidden traits of a combo chain: a fixed row
// of nodes that each show some traits and hide one or two more.
//
// What does it solve?
//
//	Every hidden value comes from one shared pool, some values must be used
//	an exact number of times, and a crew catalog says which trait
//	combinations exist at all. Combining those constraints, the solver fixes
//	hidden values it can prove and lists the crew worth trying for the rest.
//
//	    Node 1 - [A] + ?        pool: Q R Z
//	    Node 2 - [B] + ?        ⇒ node 3 must hide Z
//	    Node 3 - [C] + ?
//
// Packages, leaves first:
//
//	trait/    — Trait, sorted Tuple, multiset Pool, ordered Set
//	catalog/  — Catalog interface, in-memory crew index, crew file loader
//	puzzle/   — puzzle input, difficulty table, player-export loader
//	chain/    — Node and Chain state: candidate sets, pool, required counts
//	combo/    — lazy Cartesian product over candidate lists
//	solver/   — fixed-point deduction loop and crew lists
//	report/   — trait translation and console report
//	config/   — layered Viper configuration
//	logger/   — zap logger construction
//	cmd/traitchain — the CLI
//
// Quick start:
//
//	c, _ := chain.New(p)
//	s, _ := solver.New(c, cat)
//	res, err := s.Solve(ctx, []string{"Crew Already Tried"})
//
// See examples/ for a runnable walkthrough.
package traitchain
