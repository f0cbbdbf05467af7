package solver

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/traitchain/catalog"
	"github.com/katalvlaran/traitchain/chain"
	"github.com/katalvlaran/traitchain/trait"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// crewMatch accumulates, for one crew member, how many surviving sets it
// owns and which hidden values those sets cover.
type crewMatch struct {
	count  int
	values *trait.Set
}

// buildCrewList maps every crew owning a surviving set of n to its matches,
// in first-seen order.
func buildCrewList(n *chain.Node, cat catalog.Catalog) *orderedmap.OrderedMap[string, *crewMatch] {
	crew := orderedmap.New[string, *crewMatch]()
	for _, set := range n.CandidateSets() {
		if !cat.Contains(set) {
			continue
		}
		hidden := n.UnknownPart(set)
		for _, name := range cat.Lookup(set) {
			m, ok := crew.Get(name)
			if !ok {
				m = &crewMatch{values: trait.NewSet()}
				crew.Set(name, m)
			}
			m.count++
			m.values.Add(hidden...)
		}
	}

	return crew
}

// simplify groups crew covering the same hidden values, drops every group
// whose values strictly contain another group's, and orders the rest by
// descending count.
func simplify(crew *orderedmap.OrderedMap[string, *crewMatch]) []Group {
	type bucket struct {
		group  Group
		values *trait.Set
	}
	buckets := orderedmap.New[string, *bucket]()
	for pair := crew.Oldest(); pair != nil; pair = pair.Next() {
		key := pair.Value.values.Key()
		b, ok := buckets.Get(key)
		if !ok {
			b = &bucket{
				group:  Group{Traits: pair.Value.values.Values(), Count: pair.Value.count},
				values: pair.Value.values,
			}
			buckets.Set(key, b)
		}
		b.group.Crew = append(b.group.Crew, pair.Key)
	}

	groups := make([]Group, 0, buckets.Len())
	for pair := buckets.Oldest(); pair != nil; pair = pair.Next() {
		dominated := false
		for other := buckets.Oldest(); other != nil; other = other.Next() {
			if other.Value.values.IsStrictSubsetOf(pair.Value.values) {
				dominated = true
				break
			}
		}
		if !dominated {
			groups = append(groups, pair.Value.group)
		}
	}
	slices.SortStableFunc(groups, func(a, b Group) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}

		return cmp.Compare(trait.Tuple(a.Traits).Key(), trait.Tuple(b.Traits).Key())
	})

	return groups
}
