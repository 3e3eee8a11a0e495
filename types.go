package millerrabin

import "math/big"

// CertaintyLevel names a bound on the false-positive probability of the
// probabilistic band. It has no effect below 2^64, where the verdict is
// exact regardless of the level.
type CertaintyLevel string

const (
	// MR64 bounds the false-positive probability by 2^-64.
	MR64 CertaintyLevel = "MR-64"
	// MR128 bounds the false-positive probability by 2^-128.
	MR128 CertaintyLevel = "MR-128"
	// Aliases with underscore for convenience
	MR_64  CertaintyLevel = MR64
	MR_128 CertaintyLevel = MR128
)

// TestParams contains the tunable parameters for a primality test run.
type TestParams struct {
	Level CertaintyLevel `json:"level"`
	// Rounds is the number of random bases sampled above 2^64.
	// The false-positive bound for a composite input is 4^-Rounds.
	Rounds int `json:"rounds"`
	// Workers is the number of goroutines testing bases.
	// Zero means one worker per CPU.
	Workers int `json:"workers"`
}

// Decomposition is the Miller-Rabin canonical form of an odd integer n >= 3:
// n - 1 = D * 2^R with D odd and R >= 1.
type Decomposition struct {
	D *big.Int
	R uint
}
