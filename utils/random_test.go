package utils

import (
	"bytes"
	"math/big"
	"testing"
)

func TestSecureRandomBytes(t *testing.T) {
	b, err := SecureRandomBytes(32)
	if err != nil {
		t.Fatalf("SecureRandomBytes failed: %v", err)
	}
	if len(b) != 32 {
		t.Errorf("Expected 32 bytes, got %d", len(b))
	}

	b2, _ := SecureRandomBytes(32)
	if bytes.Equal(b, b2) {
		t.Error("SecureRandomBytes returned duplicate values")
	}
}

func TestRandomBits(t *testing.T) {
	_, err := RandomBits(RandReader, 0)
	if err == nil {
		t.Error("RandomBits(0) should fail")
	}

	for _, bits := range []uint{1, 7, 8, 9, 64, 127, 256} {
		limit := new(big.Int).Lsh(big.NewInt(1), bits)
		for i := 0; i < 100; i++ {
			v, err := RandomBits(RandReader, bits)
			if err != nil {
				t.Fatalf("RandomBits(%d) failed: %v", bits, err)
			}
			if v.Sign() < 0 || v.Cmp(limit) >= 0 {
				t.Fatalf("RandomBits(%d) = %s out of range", bits, v)
			}
		}
	}
}

func TestRandomBelow(t *testing.T) {
	_, err := RandomBelow(RandReader, big.NewInt(0))
	if err == nil {
		t.Error("RandomBelow(0) should fail")
	}
	_, err = RandomBelow(RandReader, nil)
	if err == nil {
		t.Error("RandomBelow(nil) should fail")
	}

	one := big.NewInt(1)
	v, err := RandomBelow(RandReader, one)
	if err != nil {
		t.Fatalf("RandomBelow(1) failed: %v", err)
	}
	if v.Sign() != 0 {
		t.Errorf("RandomBelow(1) = %s, want 0", v)
	}

	max := big.NewInt(100)
	seen := make(map[int64]bool)
	for i := 0; i < 1000; i++ {
		v, err := RandomBelow(RandReader, max)
		if err != nil {
			t.Fatalf("RandomBelow failed: %v", err)
		}
		if v.Sign() < 0 || v.Cmp(max) >= 0 {
			t.Fatalf("RandomBelow returned value out of range: %s", v)
		}
		seen[v.Int64()] = true
	}
	// 1000 draws over 100 values should cover a wide spread.
	if len(seen) < 50 {
		t.Errorf("RandomBelow covered only %d of 100 values", len(seen))
	}
}
