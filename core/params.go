// Package core provides parameter sets and validation for miller-rabin.
package core

import (
	"errors"
	"fmt"

	millerrabin "github.com/picoHz/miller-rabin"
)

// MR64Params is the parameter set bounding the false-positive
// probability by 4^-32 = 2^-64.
var MR64Params = millerrabin.TestParams{
	Level:   millerrabin.MR64,
	Rounds:  32,
	Workers: 0,
}

// MR128Params is the parameter set bounding the false-positive
// probability by 4^-64 = 2^-128.
var MR128Params = millerrabin.TestParams{
	Level:   millerrabin.MR128,
	Rounds:  64,
	Workers: 0,
}

// GetParams returns the parameter set for the given certainty level.
func GetParams(level millerrabin.CertaintyLevel) (millerrabin.TestParams, error) {
	switch level {
	case millerrabin.MR64:
		return MR64Params, nil
	case millerrabin.MR128:
		return MR128Params, nil
	default:
		return millerrabin.TestParams{}, fmt.Errorf("unknown certainty level: %s", level)
	}
}

// ValidateParams checks that a parameter set is usable.
func ValidateParams(p millerrabin.TestParams) error {
	if p.Rounds < 0 {
		return errors.New("rounds must be non-negative")
	}
	if p.Workers < 0 {
		return errors.New("workers must be non-negative")
	}
	return nil
}
