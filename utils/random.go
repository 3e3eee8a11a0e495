package utils

import (
	"crypto/rand"
	"errors"
	"io"
	"math/big"
)

var RandReader io.Reader = rand.Reader

// SecureRandomBytes generates n cryptographically secure random bytes.
// It uses crypto/rand, which relies on the operating system's CSPRNG.
func SecureRandomBytes(n int) ([]byte, error) {
	buf := make([]byte, n)
	_, err := RandReader.Read(buf)
	if err != nil {
		return nil, err
	}
	return buf, nil
}

// RandomBits reads a uniform random integer in [0, 2^bits) from rnd.
func RandomBits(rnd io.Reader, bits uint) (*big.Int, error) {
	if bits == 0 {
		return nil, errors.New("bits must be positive")
	}

	buf := make([]byte, (bits+7)/8)
	if _, err := io.ReadFull(rnd, buf); err != nil {
		return nil, err
	}

	// Mask excess high bits so the value stays below 2^bits.
	if rem := bits % 8; rem != 0 {
		buf[0] &= byte(1<<rem) - 1
	}

	return new(big.Int).SetBytes(buf), nil
}

// RandomBelow reads a uniform random integer in [0, max) from rnd.
// It uses rejection sampling to ensure a uniform distribution.
func RandomBelow(rnd io.Reader, max *big.Int) (*big.Int, error) {
	if max == nil || max.Sign() <= 0 {
		return nil, errors.New("max must be positive")
	}

	bits := uint(max.BitLen())
	for {
		v, err := RandomBits(rnd, bits)
		if err != nil {
			return nil, err
		}
		if v.Cmp(max) < 0 {
			return v, nil
		}
	}
}
