package combo_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/traitchain/combo"
)

// BenchmarkGenerator_Next measures a full walk over 6 lists of 6 entries.
func BenchmarkGenerator_Next(b *testing.B) {
	lists := make([][]string, 6)
	for i := range lists {
		for j := 0; j < 6; j++ {
			lists[i] = append(lists[i], fmt.Sprintf("t%d", j))
		}
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		g := combo.New(lists)
		for _, ok := g.Next(); ok; _, ok = g.Next() {
		}
	}
}
