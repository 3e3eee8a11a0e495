package primality

import (
	"math"
	"math/big"
	"testing"
)

// FuzzIsPrimeUint64 cross-checks the deterministic band against the
// standard library, which is exact below 2^64.
func FuzzIsPrimeUint64(f *testing.F) {
	f.Add(uint64(0))
	f.Add(uint64(1))
	f.Add(uint64(2))
	f.Add(uint64(3))
	f.Add(uint64(561))
	f.Add(uint64(0x7FFFFFFF))
	f.Add(uint64(math.MaxUint64))

	f.Fuzz(func(t *testing.T, n uint64) {
		got := IsPrimeUint64(n)
		want := new(big.Int).SetUint64(n).ProbablyPrime(20)
		if got != want {
			t.Errorf("IsPrimeUint64(%d) = %v, ProbablyPrime = %v", n, got, want)
		}
	})
}

// FuzzIsWitness checks input validation and panic-freedom for arbitrary pairs.
func FuzzIsWitness(f *testing.F) {
	f.Add(uint64(2), uint64(27))
	f.Add(uint64(1), uint64(27))
	f.Add(uint64(0), uint64(0))
	f.Add(uint64(37), uint64(math.MaxUint64))

	f.Fuzz(func(t *testing.T, a, n uint64) {
		w, err := IsWitness(new(big.Int).SetUint64(a), new(big.Int).SetUint64(n))
		switch {
		case a < 2:
			if err != ErrInvalidBase {
				t.Errorf("IsWitness(%d, %d) error = %v, want ErrInvalidBase", a, n, err)
			}
		case n < 3:
			if err != ErrInvalidModulus {
				t.Errorf("IsWitness(%d, %d) error = %v, want ErrInvalidModulus", a, n, err)
			}
		default:
			if err != nil {
				t.Errorf("IsWitness(%d, %d) unexpected error: %v", a, n, err)
			}
			// Within the contract range 2 <= a <= n-2, a witness verdict
			// must never contradict actual primality.
			if w && a <= n-2 && n%2 == 1 && new(big.Int).SetUint64(n).ProbablyPrime(20) {
				t.Errorf("IsWitness(%d, %d) = true for a prime", a, n)
			}
		}
	})
}
