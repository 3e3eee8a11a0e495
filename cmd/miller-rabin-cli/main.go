// Package main provides the miller-rabin-cli command line interface for
// primality testing.
package main

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"os"
	"strconv"
	"time"

	millerrabin "github.com/picoHz/miller-rabin"
	"github.com/picoHz/miller-rabin/core"
	"github.com/picoHz/miller-rabin/primality"
	"github.com/picoHz/miller-rabin/utils"
)

const (
	version = "1.0.0"
	appName = "miller-rabin-cli"
)

// testConfig holds the options for the test command.
type testConfig struct {
	rounds  int
	workers int
	seed    []byte
	timing  bool
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(2)
	}

	command := os.Args[1]

	switch command {
	case "help", "--help", "-h":
		printUsage()
	case "version", "--version", "-v":
		fmt.Printf("%s version %s\n", appName, version)
		fmt.Printf("miller-rabin library version %s\n", millerrabin.Version)
	case "test":
		handleTest(os.Args[2:])
	case "witness":
		handleWitness(os.Args[2:])
	case "benchmark":
		handleBenchmark()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(2)
	}
}

func printUsage() {
	fmt.Printf(`%s - Miller-Rabin primality testing CLI

USAGE:
    %s <COMMAND> [OPTIONS]

COMMANDS:
    test <n>          Test whether n is prime
    witness <a> <n>   Check whether base a proves n composite
    benchmark         Time the test on a corpus of known primes and composites
    version           Show version information
    help              Show this help message

TEST OPTIONS:
    --rounds <k>      Random bases to try for n >= 2^64 (default 16)
    --level <name>    Named certainty level: MR-64 or MR-128 (overrides --rounds)
    --workers <w>     Worker goroutines (default: one per CPU)
    --seed <hex>      Derive random bases from a seed for reproducible runs
    --timing          Print elapsed time

Integers are accepted in decimal or with a 0x prefix in hexadecimal.

EXIT CODES:
    test:    0 = probably prime, 1 = composite
    witness: 0 = witness, 1 = non-witness
    2 on invalid input or usage errors

EXAMPLES:
    %s test 170141183460469231731687303715884105727 --rounds 32
    %s test 0xFFFFFFFFFFFFFFFF
    %s test 56713727820156410577229101238628035243 --level MR-128 --seed c0ffee
    %s witness 2 27
`, appName, appName, appName, appName, appName, appName)
}

func parseBig(s string) (*big.Int, error) {
	n, ok := new(big.Int).SetString(s, 0)
	if !ok {
		return nil, fmt.Errorf("invalid integer: %q", s)
	}
	if n.Sign() < 0 {
		return nil, fmt.Errorf("integer must be non-negative: %q", s)
	}
	return n, nil
}

func parseTestFlags(args []string) (string, testConfig, error) {
	cfg := testConfig{rounds: 16}
	var input string

	for i := 0; i < len(args); i++ {
		switch args[i] {
		case "--rounds":
			if i+1 >= len(args) {
				return "", cfg, fmt.Errorf("--rounds requires a value")
			}
			i++
			k, err := strconv.Atoi(args[i])
			if err != nil || k < 0 {
				return "", cfg, fmt.Errorf("invalid rounds: %q", args[i])
			}
			cfg.rounds = k
		case "--level":
			if i+1 >= len(args) {
				return "", cfg, fmt.Errorf("--level requires a value")
			}
			i++
			params, err := core.GetParams(millerrabin.CertaintyLevel(args[i]))
			if err != nil {
				return "", cfg, err
			}
			cfg.rounds = params.Rounds
		case "--workers":
			if i+1 >= len(args) {
				return "", cfg, fmt.Errorf("--workers requires a value")
			}
			i++
			w, err := strconv.Atoi(args[i])
			if err != nil || w < 0 {
				return "", cfg, fmt.Errorf("invalid workers: %q", args[i])
			}
			cfg.workers = w
		case "--seed":
			if i+1 >= len(args) {
				return "", cfg, fmt.Errorf("--seed requires a value")
			}
			i++
			seed, err := hex.DecodeString(args[i])
			if err != nil {
				return "", cfg, fmt.Errorf("invalid seed: %q", args[i])
			}
			cfg.seed = seed
		case "--timing":
			cfg.timing = true
		default:
			if input != "" {
				return "", cfg, fmt.Errorf("unexpected argument: %q", args[i])
			}
			input = args[i]
		}
	}

	if input == "" {
		return "", cfg, fmt.Errorf("test requires an integer argument")
	}
	return input, cfg, nil
}

func handleTest(args []string) {
	input, cfg, err := parseTestFlags(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	n, err := parseBig(input)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	rnd := utils.RandReader
	if cfg.seed != nil {
		rnd = utils.SeededReader(utils.BaseSamplingDomain, cfg.seed)
	}

	start := time.Now()
	prime := primality.IsPrimeRand(rnd, n, cfg.rounds, cfg.workers)
	elapsed := time.Since(start)

	deterministic := n.BitLen() <= 64
	switch {
	case prime && deterministic:
		fmt.Println("prime")
	case prime:
		fmt.Printf("probably prime (error bound 4^-%d)\n", cfg.rounds)
	default:
		fmt.Println("composite")
	}
	if cfg.timing {
		fmt.Printf("elapsed: %v\n", elapsed)
	}

	if !prime {
		os.Exit(1)
	}
}

func handleWitness(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(os.Stderr, "Error: witness requires exactly two integer arguments")
		os.Exit(2)
	}

	a, err := parseBig(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}
	n, err := parseBig(args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	w, err := primality.IsWitness(a, n)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	if w {
		fmt.Println("witness")
	} else {
		fmt.Println("non-witness")
		os.Exit(1)
	}
}

func handleBenchmark() {
	corpus := []struct {
		name  string
		value string
		prime bool
	}{
		{"mersenne-31 (2^31-1)", "2147483647", true},
		{"max-uint64 (2^64-1)", "18446744073709551615", false},
		{"mersenne-127 (2^127-1)", "170141183460469231731687303715884105727", true},
		{"wagstaff-129 ((2^129+1)/3)", "56713727820156410577229101238628035243", true},
		{"mersenne-127 - 2", "170141183460469231731687303715884105725", false},
	}

	fmt.Println("Miller-Rabin benchmark (16 rounds)")
	fmt.Println("----------------------------------")

	for _, entry := range corpus {
		n, err := parseBig(entry.value)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(2)
		}

		start := time.Now()
		prime := primality.IsPrime(n, 16)
		elapsed := time.Since(start)

		status := "ok"
		if prime != entry.prime {
			status = "MISMATCH"
		}
		fmt.Printf("%-28s %-14s %10v  %s\n", entry.name, verdict(prime), elapsed, status)
	}
}

func verdict(prime bool) string {
	if prime {
		return "probably prime"
	}
	return "composite"
}
