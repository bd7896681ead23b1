// Package reduction implements column reduction of boundary matrices over
// GF(2). All algorithms produce a matrix with pairwise distinct pivots,
// from which persistence pairs can be read off. They differ in the order
// of column operations and in how much work can run in parallel, not in
// the resulting pairing.
package reduction
