package combo_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/traitchain/combo"
	"github.com/katalvlaran/traitchain/trait"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGenerator_Order walks the product with the last list spinning fastest.
func TestGenerator_Order(t *testing.T) {
	g := combo.New([][]string{{"a", "b"}, {"x", "y", "z"}})
	require.Equal(t, 6, g.Count())

	var got [][]string
	for c, ok := g.Next(); ok; c, ok = g.Next() {
		got = append(got, c)
	}
	assert.Equal(t, [][]string{
		{"a", "x"}, {"a", "y"}, {"a", "z"},
		{"b", "x"}, {"b", "y"}, {"b", "z"},
	}, got)

	_, ok := g.Next()
	assert.False(t, ok, "exhausted generators stay exhausted")
}

// TestGenerator_EdgeCases covers the empty outer and inner lists.
func TestGenerator_EdgeCases(t *testing.T) {
	g := combo.New[int](nil)
	c, ok := g.Next()
	require.True(t, ok)
	assert.Empty(t, c)
	_, ok = g.Next()
	assert.False(t, ok, "exactly one empty combination")
	assert.Equal(t, 1, g.Count())

	g = combo.New([][]int{{1, 2}, {}})
	_, ok = g.Next()
	assert.False(t, ok)
	assert.Zero(t, g.Count())
}

// TestGenerator_CountSaturates stops at math.MaxInt instead of wrapping.
func TestGenerator_CountSaturates(t *testing.T) {
	lists := make([][]int, 70)
	for i := range lists {
		lists[i] = []int{0, 1}
	}
	assert.Equal(t, math.MaxInt, combo.New(lists).Count())

	lists = append(lists, nil)
	assert.Zero(t, combo.New(lists).Count(), "an empty list still wins after saturation")
}

// TestGenerator_FreshSlices ensures callers may keep returned combinations.
func TestGenerator_FreshSlices(t *testing.T) {
	lists := [][]trait.Tuple{
		{trait.NewTuple("a"), trait.NewTuple("b")},
		{trait.NewTuple("c")},
	}
	g := combo.New(lists)
	first, _ := g.Next()
	second, _ := g.Next()

	assert.Equal(t, []trait.Tuple{{"a"}, {"c"}}, first)
	assert.Equal(t, []trait.Tuple{{"b"}, {"c"}}, second)
	assert.Equal(t, trait.Tuple{"a"}, lists[0][0], "input lists are untouched")
}

// TestGenerator_All stops early when the consumer breaks.
func TestGenerator_All(t *testing.T) {
	g := combo.New([][]int{{1, 2, 3}, {4, 5}})
	n := 0
	for c := range g.All() {
		n++
		if c[0] == 2 {
			break
		}
	}
	assert.Equal(t, 3, n)

	rest := 0
	for range g.All() {
		rest++
	}
	assert.Equal(t, 3, rest, "iteration resumes after the last yielded combination")

	again := combo.New([][]int{{1, 2, 3}, {4, 5}})
	total := 0
	for range again.All() {
		total++
	}
	assert.Equal(t, again.Count(), total, "a rebuilt generator restarts")
}
