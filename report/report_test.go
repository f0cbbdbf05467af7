package report_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/google/uuid"
	"github.com/katalvlaran/traitchain/chain"
	"github.com/katalvlaran/traitchain/report"
	"github.com/katalvlaran/traitchain/solver"
	"github.com/katalvlaran/traitchain/trait"
	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableStyling()
}

func result() *solver.Result {
	return &solver.Result{
		RunID:      uuid.MustParse("6a1f7f0e-2a54-4c36-9a51-9c3cfbc0f8d1"),
		Iterations: 3,
		Remaining: []chain.RequiredTrait{
			{Trait: "Z", Count: 2},
			{Trait: "Q", Count: 1},
		},
		Nodes: []solver.NodeResult{
			{Index: 0, Given: []trait.Trait{"A"}, Hidden: []trait.Trait{"B"}, Solved: true},
			{Index: 1, Given: []trait.Trait{"X"}, Hidden: []trait.Trait{"Z"}, Solved: true, Fresh: true, SolvedBy: []string{"Xena"}},
			{
				Index: 2, Given: []trait.Trait{"C"}, Hidden: []trait.Trait{"?"},
				Groups: []solver.Group{
					{Crew: []string{"Cal", "Cid"}, Traits: []trait.Trait{"Q"}, Count: 2},
					{Crew: []string{"Cy"}, Traits: []trait.Trait{"Z"}, Count: 1},
				},
			},
		},
	}
}

// TestRender_Layout checks the node, group and required-trait lines.
func TestRender_Layout(t *testing.T) {
	var sb strings.Builder
	tr := report.NewTranslator(map[string]string{"Z": "Zealot", "C": "Cadet"})

	err := report.Render(&sb, result(), tr, report.Settings{
		Difficulty:    "unm",
		Lexicographic: true,
		MaxIterations: 10,
		Attempted:     []string{"Ana", "Bo"},
	})
	require.NoError(t, err)
	out := sb.String()

	assert.Contains(t, out, "Chain solver settings")
	assert.Contains(t, out, "6a1f7f0e-2a54-4c36-9a51-9c3cfbc0f8d1")
	assert.Contains(t, out, "Attempted crew: Ana, Bo\n")
	assert.Contains(t, out, "Zealot should be used 2 more times\n")
	assert.Contains(t, out, "Q should be used 1 more time\n")
	assert.NotContains(t, out, "Node 1 -", "input-solved nodes are skipped")
	assert.Contains(t, out, "Node 2 - [X] + Zealot\n1. Xena\n")
	assert.Contains(t, out, "Node 3 - [Cadet] + ?\n1. Cal, Cid: (Q) [2]\n2. Cy: (Zealot) [1]\n")
	assert.NotContains(t, out, "Stopped after")
}

// TestRender_Incomplete notes an iteration cap in the header.
func TestRender_Incomplete(t *testing.T) {
	res := result()
	res.Incomplete = true
	var sb strings.Builder

	require.NoError(t, report.Render(&sb, res, nil, report.Settings{}))
	assert.Contains(t, sb.String(), "Stopped after 3 iterations")
	assert.Contains(t, sb.String(), "Z should be used 2 more times", "nil translator prints raw ids")
}

// TestLoadTranslation covers the happy path and malformed files.
func TestLoadTranslation(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "translation_en.json")
	require.NoError(t, os.WriteFile(good, []byte(`{"trait_names": {"klingon": "Klingon", "q": "Q"}}`), 0o600))

	tr, err := report.LoadTranslation(good)
	require.NoError(t, err)
	assert.Equal(t, "Klingon", tr.Name("klingon"))
	assert.Equal(t, "romulan", tr.Name("romulan"))
	assert.Equal(t, []string{"Q", "?"}, tr.Names([]trait.Trait{"q", trait.Placeholder}))

	bad := filepath.Join(dir, "bad.json")
	require.NoError(t, os.WriteFile(bad, []byte(`{"other": {}}`), 0o600))
	_, err = report.LoadTranslation(bad)
	assert.True(t, errors.Is(err, report.ErrTranslation))

	_, err = report.LoadTranslation(filepath.Join(dir, "missing.json"))
	assert.True(t, errors.Is(err, report.ErrTranslation))

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{`), 0o600))
	_, err = report.LoadTranslation(broken)
	assert.True(t, errors.Is(err, report.ErrTranslation))
}
