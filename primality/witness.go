package primality

import (
	"errors"
	"math/big"

	millerrabin "github.com/picoHz/miller-rabin"
)

var (
	// ErrInvalidBase indicates a witness base smaller than 2.
	ErrInvalidBase = errors.New("witness base must be at least 2")

	// ErrInvalidModulus indicates a tested integer smaller than 3.
	ErrInvalidModulus = errors.New("tested integer must be at least 3")
)

// isWitness reports whether base a proves n composite, given
// dec = Decompose(n) and nMinusOne = n - 1.
//
// All inputs are read-only; the function is safe to call from multiple
// goroutines sharing the same n, nMinusOne and dec.
func isWitness(a, n, nMinusOne *big.Int, dec millerrabin.Decomposition) bool {
	x := new(big.Int).Exp(a, dec.D, n)
	if x.Cmp(one) == 0 || x.Cmp(nMinusOne) == 0 {
		return false
	}

	// At most r-1 squarings: reaching n-1 on the last one already proves
	// non-witness, so a full r-th squaring cannot change the verdict.
	for i := uint(1); i < dec.R; i++ {
		x.Mul(x, x)
		x.Mod(x, n)
		if x.Cmp(nMinusOne) == 0 {
			return false
		}
		if x.Cmp(one) == 0 {
			// A nontrivial square root of 1 exists, so n is composite.
			return true
		}
	}

	return true
}

// IsWitness reports whether base a proves the compositeness of n.
//
// A false result means a fails to witness; n may still be composite.
// Returns ErrInvalidBase if a < 2 and ErrInvalidModulus if n < 3; an
// invalid input is never reported as a plain non-witness.
func IsWitness(a, n *big.Int) (bool, error) {
	if a == nil || a.Cmp(two) < 0 {
		return false, ErrInvalidBase
	}
	if n == nil || n.Cmp(three) < 0 {
		return false, ErrInvalidModulus
	}

	nMinusOne := new(big.Int).Sub(n, one)
	return isWitness(a, n, nMinusOne, Decompose(n)), nil
}
