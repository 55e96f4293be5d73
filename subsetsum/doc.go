// Package subsetsum finds k distinct entries of a list whose values add up
// to a fixed target — the "expense report" search.
//
// 🚀 What is it?
//
//	Given an unordered list of non-negative integers, a target and an exact
//	count k (the depth), Search returns one combination of k entries, each
//	taken from a different position, that sums to the target.
//
// ✨ Key features:
//   - depth-bounded backtracking over index ranges, no copies of the input
//   - pruning: a candidate larger than the remaining target is skipped
//   - positions are never reused, duplicate values at different positions
//     are fine
//   - "nothing found" is a normal outcome (found == false), not an error
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/advent2020/subsetsum"
//
//	combo, found, err := subsetsum.Search(entries, 2020, 3)
//	if err != nil {
//	  // ErrInvalidDepth, ErrNegativeTarget or ErrNegativeValue
//	}
//	if found {
//	  fmt.Println(subsetsum.Product(combo))
//	}
//
// Performance:
//
//   - Time:   O(n^k) worst case, n = len(values)
//   - Memory: O(k) recursion depth plus the k-element result
//
// The first combination in scan order wins. Which one that is, when several
// exist, is an artifact of input order; callers should only rely on the sum.
package subsetsum
