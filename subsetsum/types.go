package subsetsum

import "errors"

// Sentinel errors for Search.
var (
	// ErrInvalidDepth indicates a depth below one.
	ErrInvalidDepth = errors.New("subsetsum: depth must be at least 1")

	// ErrNegativeTarget indicates a target below zero.
	ErrNegativeTarget = errors.New("subsetsum: target must be non-negative")

	// ErrNegativeValue indicates an input entry below zero. Pruning relies on
	// every entry being non-negative.
	ErrNegativeValue = errors.New("subsetsum: values must be non-negative")
)
