// Package boundary provides the boundary matrix of a filtered cell complex.
//
// A boundary matrix is an ordered sequence of (column, dimension) pairs over
// GF(2): column j lists the lower-indexed cells forming the boundary of cell
// j. The matrix is generic over the column storage backend (package column)
// and is mutated in place by a reduction run; a reduced matrix must be
// reloaded before it can be reduced again.
package boundary
