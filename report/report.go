package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/traitchain/solver"
	"github.com/pterm/pterm"
)

// Settings are echoed in the report header so a shared report can be
// reproduced.
type Settings struct {
	Difficulty    string
	Lexicographic bool
	MaxIterations int
	Attempted     []string
}

// Render writes the report for res to w.
func Render(w io.Writer, res *solver.Result, tr *Translator, st Settings) error {
	var b strings.Builder

	b.WriteString(pterm.DefaultSection.Sprint("Chain solver settings"))
	settings, err := pterm.DefaultTable.WithData([][]string{
		{"Difficulty", st.Difficulty},
		{"Lexicographical ordering", fmt.Sprint(st.Lexicographic)},
		{"Max iterations", fmt.Sprint(st.MaxIterations)},
		{"Run", res.RunID.String()},
	}).Srender()
	if err != nil {
		return errors.Wrap(err, "report: render settings")
	}
	b.WriteString(settings + "\n")
	if len(st.Attempted) > 0 {
		b.WriteString("Attempted crew: " + strings.Join(st.Attempted, ", ") + "\n")
	}
	if res.Incomplete {
		fmt.Fprintf(&b, "Stopped after %d iterations; candidates may still narrow.\n", res.Iterations)
	}

	if len(res.Remaining) > 0 {
		b.WriteString("\n")
	}
	for _, r := range res.Remaining {
		plural := "s"
		if r.Count == 1 {
			plural = ""
		}
		fmt.Fprintf(&b, "%s should be used %d more time%s\n", tr.Name(r.Trait), r.Count, plural)
	}

	for _, n := range res.Nodes {
		if n.Solved && !n.Fresh {
			continue
		}
		fmt.Fprintf(&b, "\nNode %d - [%s]", n.Index+1, strings.Join(tr.Names(n.Given), ", "))
		for _, h := range tr.Names(n.Hidden) {
			b.WriteString(" + " + h)
		}
		b.WriteString("\n")

		if n.Fresh {
			fmt.Fprintf(&b, "1. %s\n", strings.Join(n.SolvedBy, ", "))
			continue
		}
		for i, g := range n.Groups {
			fmt.Fprintf(&b, "%d. %s: (%s) [%d]\n",
				i+1, strings.Join(g.Crew, ", "), strings.Join(tr.Names(g.Traits), ", "), g.Count)
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return errors.Wrap(err, "report: write")
	}

	return nil
}
