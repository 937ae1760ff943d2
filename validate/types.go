// Package validate result types and grading thresholds.
package validate

import (
	"github.com/lumivak/beamlab/trace"
)

// accuracyWarnThreshold is the reflection accuracy below which a warning
// must be surfaced.
const accuracyWarnThreshold = 0.9

// Confidence composite weights. Accuracy dominates; termination and
// continuity split the remainder.
const (
	weightAccuracy    = 50.0
	weightTermination = 30.0
	weightContinuity  = 20.0
)

// Result is the outcome of validating one candidate grid. It is created
// once per candidate and never updated; a new attempt produces a new Result.
type Result struct {
	// Valid is true iff no errors were raised.
	Valid bool
	// Confidence is the 0–100 composite of accuracy, termination and continuity.
	Confidence float64
	// ReflectionAccuracy averages per-strike rule agreement, in [0,1].
	ReflectionAccuracy float64
	// PathContinuity is true iff every segment starts where its predecessor ended.
	PathContinuity bool
	// TerminationCorrect is true iff the simulated exit equals the expected exit.
	TerminationCorrect bool
	// Errors and Warnings carry human-readable findings; errors invalidate.
	Errors   []string
	Warnings []string
	// Trace is the simulation the grading was computed from, kept so callers
	// can reuse the solution path without re-rolling the diffusion RNG.
	Trace trace.RayTrace
}
