package toboggan

import "fmt"

// ParseOption configures Parse via functional arguments.
type ParseOption func(*ParseOptions)

// ParseOptions holds parameters for Parse.
type ParseOptions struct {
	// AllowRagged accepts rows whose length differs from the first row.
	// Cells missing from a short row read as Empty.
	AllowRagged bool
}

// DefaultParseOptions returns strict parsing: ragged rows are rejected.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{AllowRagged: false}
}

// WithRaggedRows keeps rows of any length instead of failing with
// ErrNonRectangular.
func WithRaggedRows() ParseOption {
	return func(o *ParseOptions) {
		o.AllowRagged = true
	}
}

// TraverseOption configures Traverse via functional arguments.
// If an Option is invalid (e.g. a negative start), it will be recorded
// internally and surfaced as ErrOptionViolation when Traverse is invoked.
type TraverseOption func(*TraverseOptions)

// TraverseOptions holds parameters and callbacks for a traversal.
type TraverseOptions struct {
	// Start is the first visited position.
	Start Position

	// OnVisit is called for every visited cell, before the collision is
	// counted. If it returns an error, Traverse aborts and propagates it.
	OnVisit func(pos Position, tile Tile) error

	// internal error recorded during option parsing
	err error
}

// DefaultTraverseOptions returns options with the origin as start and a
// no-op OnVisit hook.
func DefaultTraverseOptions() TraverseOptions {
	return TraverseOptions{
		Start:   Position{},
		OnVisit: func(Position, Tile) error { return nil },
	}
}

// WithStart begins the traversal at p.
//
//	p.X, p.Y ≥ 0: accepted (Y is checked against the map at run time)
//	otherwise:    invalid option → ErrOptionViolation
func WithStart(p Position) TraverseOption {
	return func(o *TraverseOptions) {
		if p.X < 0 || p.Y < 0 {
			o.err = fmt.Errorf("%w: start (%d,%d) is negative", ErrOptionViolation, p.X, p.Y)
			return
		}
		o.Start = p
	}
}

// WithOnVisit registers a callback to run on every visited cell; returning
// an error from it stops the traversal.
func WithOnVisit(fn func(pos Position, tile Tile) error) TraverseOption {
	return func(o *TraverseOptions) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}
