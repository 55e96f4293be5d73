package subsetsum_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/advent2020/subsetsum"
)

// BenchmarkSearch_Depth3 measures a triple search over 200 random entries
// with no solution, forcing the full O(n^3) scan.
func BenchmarkSearch_Depth3(b *testing.B) {
	rng := rand.New(rand.NewSource(42))
	values := make([]int, 200)
	for i := range values {
		values[i] = 2*rng.Intn(1000) + 1 // odd values only
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = subsetsum.Search(values, 2020, 3) // three odds never sum to an even target
	}
}
