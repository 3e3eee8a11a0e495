// Package primality implements the Miller-Rabin primality test.
//
// The test is exact for inputs below 2^64, where a fixed set of twelve
// bases is known to decide primality, and probabilistic above that bound,
// where k random bases bound the false-positive probability by 4^-k.
// Bases are checked concurrently and the search stops at the first witness.
package primality

import (
	"math/big"

	millerrabin "github.com/picoHz/miller-rabin"
)

var (
	one   = big.NewInt(1)
	two   = big.NewInt(2)
	three = big.NewInt(3)
)

// Decompose writes n - 1 as d * 2^r with d odd.
//
// For odd n >= 3 the result satisfies d odd, r >= 1 and d * 2^r = n - 1.
// For even n the loop never runs and the returned R is 0; callers route
// even inputs through the fast path instead.
func Decompose(n *big.Int) millerrabin.Decomposition {
	d := new(big.Int).Sub(n, one)
	r := uint(0)
	for d.Bit(0) == 0 {
		d.Rsh(d, 1)
		r++
	}
	return millerrabin.Decomposition{D: d, R: r}
}
