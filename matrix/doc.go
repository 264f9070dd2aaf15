// SPDX-License-Identifier: MIT

// Package matrix provides the dense, row-major float64 matrix used to carry
// distance tables into the problem packages.
//
// What:
//
//   - Matrix: minimal mutable 2-D interface (Rows, Cols, At, Set, Clone).
//   - Dense: flat-slice implementation with bounds-checked access.
//   - NewDenseFromRows / ToRows: conversions from and to [][]float64, the
//     shape used by case files and generators.
//   - IsSymmetric: tolerance-based symmetry probe.
//
// Errors:
//
//   - ErrInvalidDimensions   rows or cols ≤ 0
//   - ErrIndexOutOfBounds    At/Set outside the matrix
//   - ErrRagged              rows of different lengths
//   - ErrNilMatrix           nil Matrix argument
//
// Complexity:
//
//   - At/Set O(1); Clone, NewDenseFromRows, ToRows O(r·c).
package matrix
