package algorithms

import (
	"crypto"
	"fmt"
)

// ordered and byName are built once at init and never mutated afterwards.
var (
	ordered = []Algorithm{
		NewHMACAlgorithm("HS256", crypto.SHA256),
		NewHMACAlgorithm("HS384", crypto.SHA384),
		NewHMACAlgorithm("HS512", crypto.SHA512),
		NewRSAAlgorithm("RS256", crypto.SHA256),
	}
	byName = index(ordered)
)

func index(algs []Algorithm) map[string]Algorithm {
	m := make(map[string]Algorithm, len(algs))
	for _, alg := range algs {
		m[alg.Name()] = alg
	}
	return m
}

// Get retrieves an algorithm from the registry by name.
// Names are matched exactly and case-sensitively.
// Returns ErrUnsupportedAlgorithm if algorithm not found; "none" is never registered.
func Get(name string) (Algorithm, error) {
	alg, exists := byName[name]
	if !exists {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlgorithm, name)
	}
	return alg, nil
}

// List returns all registered algorithm names in declaration order
func List() []string {
	names := make([]string, 0, len(ordered))
	for _, alg := range ordered {
		names = append(names, alg.Name())
	}
	return names
}
