package subsetsum_test

import (
	"fmt"

	"github.com/katalvlaran/advent2020/subsetsum"
)

// ExampleSearch finds the two and three entries of the sample expense report
// that sum to 2020. The deepest pick is listed first.
func ExampleSearch() {
	entries := []int{1721, 979, 366, 299, 675, 1456}

	for _, depth := range []int{2, 3} {
		combo, found, err := subsetsum.Search(entries, 2020, depth)
		if err != nil || !found {
			fmt.Println("no match")
			continue
		}
		fmt.Println(combo, subsetsum.Product(combo))
	}

	// Output:
	// [299 1721] 514579
	// [675 366 979] 241861950
}
