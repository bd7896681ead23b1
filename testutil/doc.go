// Package testutil provides testing utilities for Topogo.
//
// This package is intended for use in tests and benchmarks only.
// It provides a seeded random number generator and filtered complex
// fixtures in boundary-matrix form.
//
// # Fixtures
//
//	cx := testutil.Triangle()
//
// # Random Filtrations
//
//	rng := testutil.NewRNG(seed)
//	cx := testutil.RandomRips(rng, 25, 0.5)
package testutil
