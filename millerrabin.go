// Package millerrabin implements a probabilistic primality tester based on
// the Miller-Rabin witness test, operating on arbitrary-precision
// non-negative integers.
//
// The test decides primality exactly for inputs below 2^64 using a fixed set
// of twelve bases, and probabilistically above that bound by sampling random
// bases, with a false-positive probability of at most 4^-k for k rounds.
// Bases are checked concurrently and the search short-circuits as soon as
// any witness for compositeness is found.
package millerrabin

// Re-export commonly used functionality through sub-packages.
// Users typically import the primality sub-package directly.

// Version of the miller-rabin Go implementation.
const Version = "1.0.0"

// API summary:
//
// Primality testing:
//   - primality.IsPrime(n, k) - Test n with up to k random rounds
//   - primality.IsPrimeParams(n, params) - Test n with a named certainty level
//   - primality.IsPrimeRand(rnd, n, k, workers) - Full control over randomness and parallelism
//   - primality.IsPrimeUint64(n) - Exact test for machine-word integers
//
// Witness checking:
//   - primality.IsWitness(a, n) - Does base a prove n composite?
//   - primality.Decompose(n) - Write n-1 as d * 2^r with d odd
//
// Parameters:
//   - core.GetParams(level) - Get test parameters for a certainty level
//   - MR64  - false-positive bound 2^-64 (32 rounds)
//   - MR128 - false-positive bound 2^-128 (64 rounds)
