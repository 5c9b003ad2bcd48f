// Package maze models a square grid maze of open, wall, start and target
// cells, and answers the positional queries a path search needs.
//
// What:
//
//   - Grid is an immutable dim×dim array of Kind values, stored row-major.
//     Dimension 0 is the canonical empty grid.
//   - Coord is a 1-based (row, column) pair; anything outside [1,dim]² is
//     out of range, and every coordinate is out of range for dim ≤ 0.
//   - Neighbors yields N, E, S, W without filtering; FindStart scans in
//     row-major order. Both orders are part of the contract because searches
//     built on them must be reproducible.
//   - Regions groups passable cells into 4-connected components.
//
// Text format:
//
//	000
//	010
//	I1X
//
// One row per line, one byte per cell: '0' open, '1' wall, 'I' start,
// 'X' target.
//
// Loading:
//
//   - Load is the lenient loader: it trusts its input, copies the
//     first dim bytes of each row and never fails.
//   - Parse and ReadGrid validate squareness and the alphabet and are used by
//     every I/O path in this module.
//
// Errors:
//
//   - ErrMalformedGrid: umbrella for rejected grid text.
//   - ErrNonSquare:     a row length differs from the row count.
//   - ErrUnknownCell:   a byte outside {0,1,I,X}.
//   - ErrTooLarge:      more than MaxDimension rows.
//
// Complexity:
//
//   - Empty, Load, Parse, FindStart, Regions: O(dim²) time and memory.
//   - InBounds, CellIs, Neighbors, At:        O(1).
package maze
