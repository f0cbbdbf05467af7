package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/katalvlaran/traitchain/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// isolate keeps the implicit config search away from real files.
func isolate(t *testing.T) {
	t.Helper()
	t.Chdir(t.TempDir())
	t.Setenv("HOME", t.TempDir())
}

// TestLoad_Defaults checks every default survives decoding.
func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	v, err := config.New("")
	require.NoError(t, err)
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Solver.MaxIterations)
	assert.True(t, cfg.Solver.Lexicographic)
	assert.Equal(t, "player.json", cfg.Puzzle.Path)
	assert.Equal(t, "unm", cfg.Puzzle.Difficulty)
	assert.Equal(t, "crew.yaml", cfg.Catalog.Path)
	assert.Empty(t, cfg.Translation.Path)
	assert.False(t, cfg.Log.JSON)
	assert.Equal(t, "info", cfg.Log.Level)
}

// TestLoad_FileAndEnv layers a file and an environment override.
func TestLoad_FileAndEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "traitchain.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[solver]
max_iterations = 25
lexicographic = false

[puzzle]
difficulty = "nm"
`), 0o600))
	t.Setenv("TRAITCHAIN_PUZZLE_DIFFICULTY", "hard")

	v, err := config.New(path)
	require.NoError(t, err)
	cfg, err := config.Load(v)
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Solver.MaxIterations)
	assert.False(t, cfg.Solver.Lexicographic)
	assert.Equal(t, "hard", cfg.Puzzle.Difficulty, "environment beats file")
	assert.Equal(t, "crew.yaml", cfg.Catalog.Path)
}

// TestNew_MissingExplicitFile fails only when the path was asked for.
func TestNew_MissingExplicitFile(t *testing.T) {
	_, err := config.New(filepath.Join(t.TempDir(), "nope.toml"))
	assert.Error(t, err)
}

// TestLoad_Invalid rejects values outside their domain.
func TestLoad_Invalid(t *testing.T) {
	isolate(t)
	t.Setenv("TRAITCHAIN_SOLVER_MAX_ITERATIONS", "0")
	v, err := config.New("")
	require.NoError(t, err)

	_, err = config.Load(v)
	assert.True(t, errors.Is(err, config.ErrInvalidConfig))
}

// TestEncode renders TOML that reads back the same values.
func TestEncode(t *testing.T) {
	isolate(t)
	v, err := config.New("")
	require.NoError(t, err)
	cfg, err := config.Load(v)
	require.NoError(t, err)

	var sb strings.Builder
	require.NoError(t, config.Encode(&sb, cfg))
	assert.Contains(t, sb.String(), "[solver]")
	assert.Contains(t, sb.String(), "max_iterations = 10")

	path := filepath.Join(t.TempDir(), "traitchain.toml")
	require.NoError(t, os.WriteFile(path, []byte(sb.String()), 0o600))
	v, err = config.New(path)
	require.NoError(t, err)
	back, err := config.Load(v)
	require.NoError(t, err)
	assert.Equal(t, cfg, back)
}
