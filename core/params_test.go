package core

import (
	"testing"

	millerrabin "github.com/picoHz/miller-rabin"
)

func TestGetParams(t *testing.T) {
	p, err := GetParams(millerrabin.MR64)
	if err != nil {
		t.Fatalf("GetParams(MR64) failed: %v", err)
	}
	if p.Rounds != 32 {
		t.Errorf("MR64 rounds = %d, want 32", p.Rounds)
	}

	p, err = GetParams(millerrabin.MR128)
	if err != nil {
		t.Fatalf("GetParams(MR128) failed: %v", err)
	}
	if p.Rounds != 64 {
		t.Errorf("MR128 rounds = %d, want 64", p.Rounds)
	}

	_, err = GetParams("MR-512")
	if err == nil {
		t.Error("GetParams should reject unknown levels")
	}
}

func TestGetParamsAliases(t *testing.T) {
	a, err := GetParams(millerrabin.MR_64)
	if err != nil {
		t.Fatalf("GetParams(MR_64) failed: %v", err)
	}
	b, _ := GetParams(millerrabin.MR64)
	if a != b {
		t.Error("underscore alias should resolve to the same parameter set")
	}
}

func TestValidateParams(t *testing.T) {
	if err := ValidateParams(MR64Params); err != nil {
		t.Errorf("ValidateParams(MR64Params) failed: %v", err)
	}

	bad := millerrabin.TestParams{Rounds: -1}
	if err := ValidateParams(bad); err == nil {
		t.Error("ValidateParams should reject negative rounds")
	}

	bad = millerrabin.TestParams{Rounds: 16, Workers: -2}
	if err := ValidateParams(bad); err == nil {
		t.Error("ValidateParams should reject negative workers")
	}
}
