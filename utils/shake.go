package utils

import (
	"io"

	"golang.org/x/crypto/sha3"
)

// BaseSamplingDomain is the domain string used when deriving random bases
// for primality testing from a caller-provided seed.
const BaseSamplingDomain = "miller-rabin/bases"

// SeededReader returns an unbounded pseudo-random byte stream derived from
// seed via SHAKE256. The seed is prefixed with the length of the domain
// string and the domain string itself, preventing collisions between
// different uses of the same seed.
//
// Feeding the returned reader to a primality test makes the verdict in the
// probabilistic band reproducible for a given seed.
// Panics if domain is longer than 255 bytes.
func SeededReader(domain string, seed []byte) io.Reader {
	domainBytes := []byte(domain)
	if len(domainBytes) > 255 {
		panic("domain string must be at most 255 bytes")
	}

	h := sha3.NewShake256()
	h.Write([]byte{byte(len(domainBytes))})
	h.Write(domainBytes)
	h.Write(seed)
	return h
}

// Shake256 computes the SHAKE256 extendable output function (XOF).
// It takes an input byte slice and generates an output of the specified length.
func Shake256(input []byte, outputLen int) []byte {
	h := sha3.NewShake256()
	h.Write(input)
	output := make([]byte, outputLen)
	_, _ = h.Read(output)
	return output
}
