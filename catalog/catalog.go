package catalog

import (
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/go-playground/validator/v10"
	"github.com/katalvlaran/traitchain/trait"
)

// ErrInvalidEntry indicates a crew entry that cannot be indexed.
var ErrInvalidEntry = errors.New("catalog: invalid crew entry")

var validate = validator.New(validator.WithRequiredStructEnabled())

// Catalog maps trait combinations to the crew that own them.
type Catalog interface {
	// Contains reports whether any crew owns this combination among its traits.
	Contains(set trait.Tuple) bool

	// Lookup returns the crew owning the combination, in catalog order.
	Lookup(set trait.Tuple) []string

	// EntitiesForSolvedNodes maps archetype ids of crew that already solved
	// nodes to their names. Unknown ids are skipped.
	EntitiesForSolvedNodes(ids []int) []string
}

// Entry is one crew member as stored in the crew file.
type Entry struct {
	Name        string   `json:"name" yaml:"name" validate:"required"`
	ArchetypeID int      `json:"archetype_id" yaml:"archetype_id" validate:"gte=0"`
	Rarity      int      `json:"max_rarity" yaml:"max_rarity" validate:"gte=0"`
	Traits      []string `json:"traits" yaml:"traits" validate:"required,min=1,dive,required"`
}

// Memory is an in-memory Catalog. It is read-only after construction.
type Memory struct {
	index       map[string][]string
	byArchetype map[int]string
	entries     int
}

var _ Catalog = (*Memory)(nil)

// NewMemory indexes entries. Entries outside the configured rarity range are
// skipped; an entry failing validation aborts construction.
func NewMemory(entries []Entry, opts ...Option) (*Memory, error) {
	o := gatherOptions(opts...)
	m := &Memory{
		index:       make(map[string][]string),
		byArchetype: make(map[int]string),
	}
	for i, e := range entries {
		if err := validate.Struct(e); err != nil {
			return nil, errors.Wrapf(ErrInvalidEntry, "entry %d: %v", i, err)
		}
		if !o.rarityAllowed(e.Rarity) {
			continue
		}
		m.add(e, o)
	}

	return m, nil
}

// add indexes one entry under every eligible trait subset.
func (m *Memory) add(e Entry, o options) {
	if e.ArchetypeID > 0 {
		m.byArchetype[e.ArchetypeID] = e.Name
	}
	traits := trait.FromStrings(e.Traits)
	slices.Sort(traits)
	traits = slices.Compact(traits)

	hi := min(o.maxSetSize, len(traits))
	for k := o.minSetSize; k <= hi; k++ {
		forEachSubset(traits, k, func(sub trait.Tuple) {
			key := sub.Key()
			if !slices.Contains(m.index[key], e.Name) {
				m.index[key] = append(m.index[key], e.Name)
			}
		})
	}
	m.entries++
}

// forEachSubset calls fn with every k-element subset of sorted, in
// lexicographic index order. fn receives a fresh tuple each call.
func forEachSubset(sorted []trait.Trait, k int, fn func(trait.Tuple)) {
	n := len(sorted)
	if k <= 0 || k > n {
		return
	}
	idx := make([]int, k)
	for i := range idx {
		idx[i] = i
	}
	for {
		sub := make(trait.Tuple, k)
		for i, j := range idx {
			sub[i] = sorted[j]
		}
		fn(sub)

		// Advance the rightmost index that still has room.
		i := k - 1
		for i >= 0 && idx[i] == n-k+i {
			i--
		}
		if i < 0 {
			return
		}
		idx[i]++
		for j := i + 1; j < k; j++ {
			idx[j] = idx[j-1] + 1
		}
	}
}

// Contains implements Catalog.
func (m *Memory) Contains(set trait.Tuple) bool {
	return len(m.index[set.Key()]) > 0
}

// Lookup implements Catalog. The returned slice is a copy.
func (m *Memory) Lookup(set trait.Tuple) []string {
	return slices.Clone(m.index[set.Key()])
}

// EntitiesForSolvedNodes implements Catalog.
func (m *Memory) EntitiesForSolvedNodes(ids []int) []string {
	var out []string
	for _, id := range ids {
		name, ok := m.byArchetype[id]
		if !ok || slices.Contains(out, name) {
			continue
		}
		out = append(out, name)
	}

	return out
}

// Len returns the number of indexed crew entries.
func (m *Memory) Len() int { return m.entries }

// Combinations returns the number of distinct indexed trait combinations.
func (m *Memory) Combinations() int { return len(m.index) }
