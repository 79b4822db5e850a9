// Package util holds small shared helpers: shape parsing and
// deterministic seed derivation.
package util

import (
	"fmt"
	"hash/fnv"
)

// DeriveSeed derives a stable sub-seed from a base seed and a label,
// e.g. DeriveSeed(seed, "hint_3") for the third hint of a run. The same
// (base, label) pair always maps to the same seed.
func DeriveSeed(base uint64, label string) uint64 {
	h := fnv.New64a()
	_, _ = fmt.Fprintf(h, "%d_%s", base, label) // hash.Write never returns an error
	return h.Sum64()
}

// SeedFromName derives a base seed from a name, used when no explicit
// seed is given: the same output directory always yields the same run.
func SeedFromName(name string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(name))
	return h.Sum64()
}
