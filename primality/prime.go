package primality

import (
	"context"
	"io"
	"math/big"
	"runtime"
	"sync"

	millerrabin "github.com/picoHz/miller-rabin"
	"github.com/picoHz/miller-rabin/utils"
)

// IsPrime reports whether n is prime.
//
// The verdict is exact for n < 2^64. Above that bound it is probabilistic:
// k random bases are tried and the false-positive probability for a
// composite n is at most 4^-k. With k = 0 no bases are tried and large
// inputs are vacuously reported prime; callers wanting a meaningful verdict
// must pass k >= 1. Inputs 0 and 1 report false.
func IsPrime(n *big.Int, k int) bool {
	return IsPrimeRand(utils.RandReader, n, k, 0)
}

// IsPrimeParams tests n using a named parameter set from the core package.
func IsPrimeParams(n *big.Int, params millerrabin.TestParams) bool {
	return IsPrimeRand(utils.RandReader, n, params.Rounds, params.Workers)
}

// IsPrimeUint64 reports whether n is prime. Machine-word inputs always fall
// in the deterministic band, so the verdict is exact and needs no rounds.
func IsPrimeUint64(n uint64) bool {
	return IsPrime(new(big.Int).SetUint64(n), 0)
}

// IsPrimeRand is like IsPrime but draws random bases from rnd and spreads
// the witness search over the given number of goroutines (zero means one
// per CPU). Supplying a deterministic rnd, such as utils.SeededReader,
// makes the probabilistic-band verdict reproducible.
//
// Panics if rnd fails, consistent with the fatal-error semantics of the
// underlying arithmetic.
func IsPrimeRand(rnd io.Reader, n *big.Int, k, workers int) bool {
	if n == nil || n.Cmp(one) <= 0 {
		return false
	}
	if n.Cmp(three) <= 0 {
		return true
	}
	if n.Bit(0) == 0 {
		return false
	}

	nMinusOne := new(big.Int).Sub(n, one)
	dec := Decompose(n)

	var bases []*big.Int
	if n.Cmp(deterministicBound) <= 0 {
		bases = deterministicBases(nMinusOne)
	} else {
		if k <= 0 {
			return true
		}
		var err error
		bases, err = randomBases(rnd, nMinusOne, k)
		if err != nil {
			panic("primality: randomness source failed: " + err.Error())
		}
	}

	return !anyWitness(n, nMinusOne, dec, bases, workers)
}

// anyWitness reports whether any base in bases witnesses the compositeness
// of n. Bases are distributed over a worker pool; the first witness cancels
// the remaining work.
func anyWitness(n, nMinusOne *big.Int, dec millerrabin.Decomposition, bases []*big.Int, workers int) bool {
	if len(bases) == 0 {
		return false
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	if workers > len(bases) {
		workers = len(bases)
	}

	if workers == 1 {
		for _, a := range bases {
			if isWitness(a, n, nMinusOne, dec) {
				return true
			}
		}
		return false
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	work := make(chan *big.Int)
	found := make(chan struct{}, 1)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case a, ok := <-work:
					if !ok {
						return
					}
					if isWitness(a, n, nMinusOne, dec) {
						select {
						case found <- struct{}{}:
						default:
						}
						cancel()
						return
					}
				}
			}
		}()
	}

	// Feed bases until they run out or a witness cancels the search.
	go func() {
		defer close(work)
		for _, a := range bases {
			select {
			case <-ctx.Done():
				return
			case work <- a:
			}
		}
	}()

	wg.Wait()

	select {
	case <-found:
		return true
	default:
		return false
	}
}
