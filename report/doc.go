// Package report turns a solver.Result into the console report players paste
// into chat: a settings header, the required traits still open, then every
// node that is unsolved or was solved by this run with its crew candidates.
//
// Trait ids are shown through a Translator; ids without a translation are
// printed raw.
package report
