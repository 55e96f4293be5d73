// Package toboggan walks a horizontally repeating tile map along fixed
// slopes and counts what it runs into.
//
// What:
//
//   - Map wraps a rectangular grid of Tiles (Tree or Empty) parsed from text.
//   - The pattern repeats infinitely to the right: column X is read as
//     X mod Width. Rows are bounded; the walk ends past the last row.
//   - Traverse steps a Position by a Slope and counts cells matching a
//     target Tile ("collisions").
//   - TraverseAll runs one walk per slope; Product multiplies the counts.
//
// Why:
//
//   - Toboggan runs: how many trees does a given slope hit?
//   - Any periodic lattice walk with a forward-only vertical component.
//
// Complexity:
//
//   - Parse:       O(W×H), Memory: O(W×H).
//   - Check:       O(1).
//   - Traverse:    O(H/Down), Memory: O(1).
//   - TraverseAll: O(S×H), S = number of slopes.
//
// Options:
//
//   - WithRaggedRows: accept rows shorter or longer than the first one.
//   - WithStart:      start somewhere other than the origin.
//   - WithOnVisit:    observe (and optionally abort) every visited cell.
//
// Errors:
//
//   - ErrEmptyGrid:      map has no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths (strict parsing).
//   - ErrOutOfBounds:    a position lies above, left of, or below the map.
//   - ErrInvalidSlope:   slope does not move down, or moves left.
//   - ErrOptionViolation: an option was given an invalid value.
package toboggan
