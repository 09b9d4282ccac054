// Package jump implements the fuzzy line jumper engine.
//
// # Coordinates
//
// The engine works with two coordinate systems:
//
//  1. Character positions: 1-based rune indices into a line, as stored in
//     Match.Positions.
//  2. Render coordinates: 0-based line and column values, as stored in
//     Highlight and in the column of Cursor.
//
// Line numbers are always 1-based original document line numbers in Line,
// FilteredLine and Cursor. Only Highlight.Line is 0-based.
//
// # Pipeline
//
// A filter pass runs the following steps from scratch:
//
//   - FindMatches: greedy subsequence walks, one per qualifying start index
//   - Score: contiguity score for each walk
//   - Filter: keeps the lines with at least one match, in document order
//   - SelectInitial: picks the starting (line, match) pair
//   - Navigator: clamped up/down/next/prev cursor over the filtered lines
//   - ComputeHighlights: match spans followed by the selected match's spans
//
// Session ties the steps together and is the only stateful type. It is not
// safe for concurrent use; callers drive it from a single goroutine.
package jump
