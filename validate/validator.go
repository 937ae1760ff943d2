package validate

import (
	"fmt"

	"github.com/lumivak/beamlab/beamgrid"
	"github.com/lumivak/beamlab/trace"
)

// Validator grades candidate grids against the physics contract.
// It owns no state beyond the injected tracer; safe to reuse across puzzles.
type Validator struct {
	tracer *trace.Tracer
}

// NewValidator returns a Validator simulating with tr.
// A nil tr selects a tracer over the default property table.
func NewValidator(tr *trace.Tracer) *Validator {
	if tr == nil {
		tr = trace.NewTracer(nil)
	}
	return &Validator{tracer: tr}
}

// Validate forward-simulates (g, entry) and grades the trace against
// expectedExit. The beam's initial direction is the inward heading of the
// entry's boundary edge.
//
// Go errors are reserved for unusable input (nil grid, entry off the grid
// or off the boundary); every physical failure is reported inside Result.
func (v *Validator) Validate(g *beamgrid.Grid, entry, expectedExit beamgrid.Position, opts trace.Options) (Result, error) {
	if g == nil {
		return Result{}, trace.ErrNilGrid
	}
	dir, err := trace.EntryHeading(entry, g.Size())
	if err != nil {
		return Result{}, err
	}
	tr, err := v.tracer.Trace(g, entry, dir, opts)
	if err != nil {
		return Result{}, err
	}

	res := Result{Trace: tr}

	// Termination: exact position equality, and the trace must have ended
	// on its own terms rather than at the bounce bound.
	if !tr.Terminated {
		res.Errors = append(res.Errors, fmt.Sprintf("simulation: bounce bound reached after %d bounces", tr.Bounces))
	}
	switch {
	case tr.Exit == nil:
		res.Errors = append(res.Errors, fmt.Sprintf("termination: beam never exited (stop=%d)", tr.Stop))
	case *tr.Exit != expectedExit:
		res.Errors = append(res.Errors, fmt.Sprintf("termination: beam exited at %v, expected %v", *tr.Exit, expectedExit))
	default:
		res.TerminationCorrect = true
	}

	res.PathContinuity = true
	for i := 1; i < len(tr.Segments); i++ {
		if tr.Segments[i-1].End != tr.Segments[i].Start {
			res.PathContinuity = false
			res.Errors = append(res.Errors, fmt.Sprintf("continuity: segment %d starts at %v, previous ended at %v",
				i, tr.Segments[i].Start, tr.Segments[i-1].End))
		}
	}

	res.ReflectionAccuracy = reflectionAccuracy(tr)
	if res.ReflectionAccuracy < accuracyWarnThreshold {
		res.Warnings = append(res.Warnings, fmt.Sprintf("accuracy: reflection accuracy %.3f below %.2f",
			res.ReflectionAccuracy, accuracyWarnThreshold))
	}

	res.Valid = len(res.Errors) == 0
	res.Confidence = confidence(res)
	return res, nil
}

// reflectionAccuracy recomputes each struck material's expected outgoing
// direction and compares it with the actual next-segment direction:
// per strike, accuracy = 1 − Δ/180 for the minimal angular difference Δ,
// averaged over all redirecting strikes. A trace with no strikes is
// perfectly accurate by definition.
func reflectionAccuracy(tr trace.RayTrace) float64 {
	var sum float64
	var n int
	for i := 0; i+1 < len(tr.Segments); i++ {
		struck := tr.Segments[i].Struck
		if struck == nil {
			continue
		}
		expected := trace.ExpectedReflection(*struck, tr.Segments[i].DirectionDeg)
		actual := tr.Segments[i+1].DirectionDeg
		acc := 1 - trace.AngularDistance(expected, actual)/180
		if acc < 0 {
			acc = 0
		}
		sum += acc
		n++
	}
	if n == 0 {
		return 1
	}
	return sum / float64(n)
}

// confidence folds the three grading signals into one 0–100 score.
func confidence(res Result) float64 {
	c := weightAccuracy * res.ReflectionAccuracy
	if res.TerminationCorrect {
		c += weightTermination
	}
	if res.PathContinuity {
		c += weightContinuity
	}
	if c < 0 {
		return 0
	}
	if c > 100 {
		return 100
	}
	return c
}
