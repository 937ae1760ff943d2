// Package pathplan - RNG utilities shared by the generation pipeline.
//
// This file centralizes deterministic random generation for every
// randomized stage: planner jitter, water diffusion, supporting-material
// placement and entry-pair selection.
//
// Goals:
//   - Determinism: same seed ⇒ identical puzzles across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Independence: per-stage substreams so one stage consuming more draws
//     never shifts another stage's sequence.
//
// Concurrency:
//   - math/rand.Rand is NOT goroutine-safe. Do not share a *rand.Rand across
//     goroutines; derive one stream per concurrent generation instead.
package pathplan

import "math/rand"

// DefaultSeed is the fixed “zero” seed used when callers pass seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const DefaultSeed int64 = 1

// RNGFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use DefaultSeed; otherwise use the provided seed verbatim.
//
// Complexity: O(1).
func RNGFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = DefaultSeed
	}
	return rand.New(rand.NewSource(s))
}

// DeriveSeed mixes a parent seed and a stream identifier into a new 64-bit seed.
//
// Rationale:
//   - Each generation attempt, and each stage within an attempt, needs an
//     independent substream derived from the one caller-visible seed.
//   - A SplitMix64-style avalanche mix eliminates correlations between
//     adjacent stream ids.
//
// Notes:
//   - Constants are the canonical SplitMix64 multipliers/finalizer. They
//     provide strong bit diffusion; small input changes produce large,
//     well-distributed output changes.
//
// Complexity: O(1).
func DeriveSeed(parent int64, stream uint64) int64 {
	// SplitMix64-style finalizer; see Vigna 2014 for the constants and rationale.
	x := uint64(parent) ^ (stream + 0x9e3779b97f4a7c15)
	x += 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31
	return int64(x)
}

// DeriveRNG creates an independent deterministic RNG stream based on a base
// RNG and a stream identifier. If base==nil, DefaultSeed is used as the
// parent. Otherwise, base.Int63() is consumed once to decorrelate
// consecutive derivations, then mixed with the stream via DeriveSeed.
//
// Usage:
//   - Call during setup (not in hot loops) to create per-attempt or
//     per-stage RNGs.
//
// Complexity: O(1).
func DeriveRNG(base *rand.Rand, stream uint64) *rand.Rand {
	var parent int64
	if base == nil {
		parent = DefaultSeed
	} else {
		// Int63() advances base state; this is intentional to avoid identical
		// children when the same stream id is reused by mistake.
		parent = base.Int63()
	}
	return rand.New(rand.NewSource(DeriveSeed(parent, stream)))
}
