package subsetsum

import "fmt"

// Search looks for depth entries of values, each from a distinct position,
// whose sum equals target.
//
// Algorithm Outline:
//  1. Scan values[start:] in order.
//  2. Skip a candidate greater than the remaining target.
//  3. On the last level (depth == 1) succeed when candidate == remaining.
//  4. Otherwise recurse on values[pos+1:] with remaining-candidate and
//     depth-1; on success append the candidate and return.
//
// The returned combination lists the deepest pick first. When no
// combination exists Search returns (nil, false, nil).
//
// Errors:
//   - ErrInvalidDepth   — depth < 1.
//   - ErrNegativeTarget — target < 0.
//   - ErrNegativeValue  — any entry < 0.
//
// Complexity: O(n^depth) time, O(depth) memory.
func Search(values []int, target, depth int) (combo []int, found bool, err error) {
	if depth < 1 {
		return nil, false, fmt.Errorf("%w: got %d", ErrInvalidDepth, depth)
	}
	if target < 0 {
		return nil, false, fmt.Errorf("%w: got %d", ErrNegativeTarget, target)
	}
	for i, v := range values {
		if v < 0 {
			return nil, false, fmt.Errorf("%w: values[%d] = %d", ErrNegativeValue, i, v)
		}
	}

	combo = search(values, 0, target, depth)

	return combo, combo != nil, nil
}

// search is the recursive step over values[start:]. It returns nil when no
// combination exists at this level.
func search(values []int, start, remaining, depth int) []int {
	for pos := start; pos < len(values); pos++ {
		num := values[pos]
		if num > remaining {
			continue
		}
		if depth == 1 {
			if num == remaining {
				return []int{num}
			}
			continue
		}
		if rest := search(values, pos+1, remaining-num, depth-1); rest != nil {
			return append(rest, num)
		}
	}

	return nil
}

// Product multiplies all entries of combo. The product of no entries is 1.
// Overflow is not checked.
func Product(combo []int) int {
	p := 1
	for _, v := range combo {
		p *= v
	}

	return p
}

// Sum adds all entries of combo.
func Sum(combo []int) int {
	s := 0
	for _, v := range combo {
		s += v
	}

	return s
}
