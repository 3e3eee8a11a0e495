package primality

import (
	"io"
	"math"
	"math/big"

	"github.com/picoHz/miller-rabin/utils"
)

// smallBases decides primality exactly for every n below 2^64.
var smallBases = [...]uint64{2, 3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37}

// deterministicBound is the largest n for which smallBases is an exact test.
var deterministicBound = new(big.Int).SetUint64(math.MaxUint64)

// deterministicBases returns the fixed base list filtered to values
// strictly less than n - 1.
func deterministicBases(nMinusOne *big.Int) []*big.Int {
	bases := make([]*big.Int, 0, len(smallBases))
	for _, b := range smallBases {
		a := new(big.Int).SetUint64(b)
		if a.Cmp(nMinusOne) < 0 {
			bases = append(bases, a)
		}
	}
	return bases
}

// randomBases draws k independent uniform bases in [2, n-1) from rnd.
//
// Draws use the bit length of n-1 and rejection sampling. Values below 2
// can never witness, so they are resampled rather than wasted.
func randomBases(rnd io.Reader, nMinusOne *big.Int, k int) ([]*big.Int, error) {
	bits := uint(nMinusOne.BitLen())
	bases := make([]*big.Int, 0, k)
	for len(bases) < k {
		a, err := utils.RandomBits(rnd, bits)
		if err != nil {
			return nil, err
		}
		if a.Cmp(two) < 0 || a.Cmp(nMinusOne) >= 0 {
			continue
		}
		bases = append(bases, a)
	}
	return bases, nil
}
