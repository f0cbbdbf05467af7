package catalog_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/katalvlaran/traitchain/catalog"
	"github.com/katalvlaran/traitchain/trait"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func crew() []catalog.Entry {
	return []catalog.Entry{
		{Name: "Kira", ArchetypeID: 7, Rarity: 4, Traits: []string{"bajoran", "resistance", "pilot"}},
		{Name: "Odo", ArchetypeID: 9, Rarity: 5, Traits: []string{"changeling", "security", "resistance"}},
		{Name: "Nog", ArchetypeID: 11, Rarity: 2, Traits: []string{"ferengi", "pilot", "resistance"}},
	}
}

// TestMemory_LookupBySortedSubset checks that lookups ignore input order.
func TestMemory_LookupBySortedSubset(t *testing.T) {
	m, err := catalog.NewMemory(crew(), catalog.WithSetSize(2, 3))
	require.NoError(t, err)
	assert.Equal(t, 3, m.Len())

	assert.True(t, m.Contains(trait.NewTuple("resistance", "bajoran")))
	assert.Equal(t, []string{"Kira", "Nog"}, m.Lookup(trait.NewTuple("pilot", "resistance")))
	assert.False(t, m.Contains(trait.NewTuple("resistance")), "below the minimum set size")
	assert.False(t, m.Contains(trait.NewTuple("bajoran", "changeling")))
	assert.Empty(t, m.Lookup(trait.NewTuple("nope", "none")))
}

// TestMemory_SetSizeBounds verifies only subsets within bounds are indexed.
func TestMemory_SetSizeBounds(t *testing.T) {
	m, err := catalog.NewMemory(crew()[:1], catalog.WithSetSize(3, 3))
	require.NoError(t, err)

	assert.Equal(t, 1, m.Combinations())
	assert.True(t, m.Contains(trait.NewTuple("pilot", "bajoran", "resistance")))
	assert.False(t, m.Contains(trait.NewTuple("pilot", "bajoran")))
}

// TestMemory_Rarity drops crew outside the rarity window.
func TestMemory_Rarity(t *testing.T) {
	m, err := catalog.NewMemory(crew(), catalog.WithRarity(3, 4))
	require.NoError(t, err)

	assert.Equal(t, 1, m.Len())
	assert.Equal(t, []string{"Kira"}, m.Lookup(trait.NewTuple("pilot", "resistance")))
}

// TestMemory_EntitiesForSolvedNodes maps archetype ids, skipping unknown and repeats.
func TestMemory_EntitiesForSolvedNodes(t *testing.T) {
	m, err := catalog.NewMemory(crew())
	require.NoError(t, err)

	assert.Equal(t, []string{"Odo", "Kira"}, m.EntitiesForSolvedNodes([]int{9, 404, 7, 9}))
	assert.Empty(t, m.EntitiesForSolvedNodes(nil))
}

// TestMemory_InvalidEntry rejects entries without a name or traits.
func TestMemory_InvalidEntry(t *testing.T) {
	_, err := catalog.NewMemory([]catalog.Entry{{Name: "", Traits: []string{"a"}}})
	assert.ErrorIs(t, err, catalog.ErrInvalidEntry)

	_, err = catalog.NewMemory([]catalog.Entry{{Name: "Empty"}})
	assert.ErrorIs(t, err, catalog.ErrInvalidEntry)
}

// TestOptions_Panic ensures option constructors reject nonsense eagerly.
func TestOptions_Panic(t *testing.T) {
	assert.Panics(t, func() { catalog.WithSetSize(0, 2) })
	assert.Panics(t, func() { catalog.WithSetSize(3, 2) })
	assert.Panics(t, func() { catalog.WithRarity(4, 2) })
	assert.NotPanics(t, func() { catalog.WithRarity(4, 0) })
}

// TestLoad reads JSON (a YAML subset) from disk.
func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "crew.json")
	body := `[{"name": "Garak", "archetype_id": 3, "max_rarity": 5, "traits": ["cardassian", "spy", "tailor"]}]`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	m, err := catalog.Load(path)
	require.NoError(t, err)
	assert.Equal(t, []string{"Garak"}, m.Lookup(trait.NewTuple("spy", "cardassian")))
	assert.Equal(t, []string{"Garak"}, m.EntitiesForSolvedNodes([]int{3}))

	_, err = catalog.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
