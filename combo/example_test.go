package combo_test

import (
	"fmt"

	"github.com/katalvlaran/traitchain/combo"
)

// ExampleGenerator lists every pairing of two candidate lists.
func ExampleGenerator() {
	g := combo.New([][]string{{"A", "B"}, {"C"}})
	for c := range g.All() {
		fmt.Println(c)
	}
	// Output:
	// [A C]
	// [B C]
}
