package trace

import (
	"fmt"
	"math/rand"

	"github.com/lumivak/beamlab/beamgrid"
)

// Tracer simulates beams against a static material property table.
// Construct once, reuse freely: Trace itself keeps no state between calls.
type Tracer struct {
	props beamgrid.PropertyTable
}

// NewTracer returns a Tracer reading physical properties from table.
// A nil table selects beamgrid.DefaultProperties.
func NewTracer(table beamgrid.PropertyTable) *Tracer {
	return &Tracer{props: table}
}

// Trace simulates one beam from entry travelling at directionDeg through g.
// It is a pure function of (grid, entry, direction) apart from water
// diffusion, which draws only from opts.Rand.
//
// The returned RayTrace lists straight-line segments in travel order; each
// segment ends where a material redirected (or terminated) the beam, and
// the final segment ends at the exit cell when the beam leaves the grid.
//
// Returns ErrNilGrid or ErrEntryOutOfBounds on bad input; every physical
// outcome (absorption, attenuation, bounce cap) is reported in the trace
// itself, not as an error.
func (t *Tracer) Trace(g *beamgrid.Grid, entry beamgrid.Position, directionDeg float64, opts Options) (RayTrace, error) {
	if g == nil {
		return RayTrace{}, ErrNilGrid
	}
	if !g.InBounds(entry) {
		return RayTrace{}, fmt.Errorf("%w: %v", ErrEntryOutOfBounds, entry)
	}
	opts = opts.normalize()

	var (
		segments  []Segment
		dir       = NormalizeDeg(directionDeg)
		cur       = entry
		segStart  = entry
		intensity = 1.0
		bounces   = 0
	)

	for {
		if m, ok := g.MaterialAt(cur); ok {
			props, err := beamgrid.PropertiesOf(m.Type, t.props)
			if err != nil {
				return RayTrace{}, err
			}
			struck := m
			if props.Absorbs {
				segments = append(segments, Segment{Start: segStart, End: cur, DirectionDeg: dir, Struck: &struck})
				return RayTrace{
					Segments:       segments,
					Stop:           StopAbsorbed,
					Terminated:     true,
					Bounces:        bounces,
					FinalIntensity: intensity,
				}, nil
			}

			next := t.interact(m, props, dir, opts.Rand)
			segments = append(segments, Segment{Start: segStart, End: cur, DirectionDeg: dir, Struck: &struck})
			dir = next
			segStart = cur
			intensity *= props.Reflectivity
			bounces++

			if bounces >= opts.MaxBounces {
				return RayTrace{
					Segments:       segments,
					Stop:           StopMaxBounces,
					Terminated:     false,
					Bounces:        bounces,
					FinalIntensity: intensity,
				}, nil
			}
			if intensity < opts.MinIntensity {
				return RayTrace{
					Segments:       segments,
					Stop:           StopAttenuated,
					Terminated:     true,
					Bounces:        bounces,
					FinalIntensity: intensity,
				}, nil
			}
		}

		dx, dy := StepFor(dir)
		next := beamgrid.Position{X: cur.X + dx, Y: cur.Y + dy}
		if !g.InBounds(next) {
			exit := cur
			segments = append(segments, Segment{Start: segStart, End: cur, DirectionDeg: dir})
			return RayTrace{
				Segments:       segments,
				Exit:           &exit,
				Stop:           StopExited,
				Terminated:     true,
				Bounces:        bounces,
				FinalIntensity: intensity,
			}, nil
		}
		cur = next
	}
}

// interact computes the outgoing direction after the beam strikes m.
// Absorbers never reach here; empty cells never hold a Material.
func (t *Tracer) interact(m beamgrid.Material, props beamgrid.Properties, thetaDeg float64, rng *rand.Rand) float64 {
	switch m.Type {
	case beamgrid.Mirror:
		return MirrorReflection(thetaDeg, m.AngleDeg)
	case beamgrid.Metal:
		return NormalizeDeg(thetaDeg + 180)
	case beamgrid.Water:
		jitter := (rng.Float64()*2 - 1) * props.Diffusion
		return NormalizeDeg(MirrorReflection(thetaDeg, surfaceAngleFixed) + jitter)
	case beamgrid.Glass:
		return MirrorReflection(thetaDeg, surfaceAngleFixed)
	default:
		return thetaDeg
	}
}

// ExpectedReflection returns the deterministic outgoing direction the
// material rule prescribes for a beam at thetaDeg striking m, the value
// the validator compares actual trace directions against. Water's random
// diffusion is excluded on purpose: the expectation is the rule's center.
// Absorbers and empty cells redirect nothing; the incoming direction is
// returned unchanged.
// Complexity: O(1).
func ExpectedReflection(m beamgrid.Material, thetaDeg float64) float64 {
	switch m.Type {
	case beamgrid.Mirror:
		return MirrorReflection(thetaDeg, m.AngleDeg)
	case beamgrid.Metal:
		return NormalizeDeg(thetaDeg + 180)
	case beamgrid.Water, beamgrid.Glass:
		return MirrorReflection(thetaDeg, surfaceAngleFixed)
	default:
		return NormalizeDeg(thetaDeg)
	}
}
