package commands_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/traitchain/cmd/traitchain/commands"
	"github.com/pterm/pterm"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	pterm.DisableStyling()
}

func execute(t *testing.T, sub *cobra.Command, args ...string) (string, error) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())

	root := &cobra.Command{Use: "traitchain", SilenceUsage: true, SilenceErrors: true}
	root.PersistentFlags().String("config", "", "")
	root.PersistentFlags().CountP("verbose", "v", "")
	root.AddCommand(sub)

	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func write(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// TestSolveCmd runs the whole pipeline on a two-node chain.
func TestSolveCmd(t *testing.T) {
	p := write(t, "chain.json", `{
		"traits": ["Z", "Z"],
		"nodes": [
			{"open_traits": ["X"], "hidden_traits": ["?"]},
			{"open_traits": ["Y"], "hidden_traits": ["?"]}
		]
	}`)
	c := write(t, "crew.yaml", `
- {name: Xena, archetype_id: 1, max_rarity: 1, traits: [X, Z]}
- {name: Yuri, archetype_id: 2, max_rarity: 2, traits: [Y, Z]}
`)

	out, err := execute(t, commands.SolveCmd,
		"solve", "--puzzle", p, "--catalog", c, "--difficulty", "easy", "--no-lexico")
	require.NoError(t, err)

	assert.Contains(t, out, "Node 1 - [X] + Z\n1. Xena\n")
	assert.Contains(t, out, "Node 2 - [Y] + Z\n1. Yuri\n")
	assert.Contains(t, out, "easy")
}

// TestSolveCmd_MissingPuzzle surfaces loader errors.
func TestSolveCmd_MissingPuzzle(t *testing.T) {
	_, err := execute(t, commands.SolveCmd, "solve", "--puzzle", "absent.json", "--difficulty", "easy")
	assert.Error(t, err)
}

// TestConfigShow prints TOML with flag-free defaults.
func TestConfigShow(t *testing.T) {
	out, err := execute(t, commands.ConfigCmd, "config", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "[solver]")
	assert.Contains(t, out, `difficulty = "unm"`)
}

// TestVersionCmd prints the version line.
func TestVersionCmd(t *testing.T) {
	out, err := execute(t, commands.VersionCmd, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "traitchain dev")
}
