// Package trace types, options, and sentinel errors for the ray-trace engine.
package trace

import (
	"errors"
	"math/rand"

	"github.com/lumivak/beamlab/beamgrid"
)

// Sentinel errors for trace operations.
var (
	// ErrNilGrid indicates a nil grid argument.
	ErrNilGrid = errors.New("trace: grid must not be nil")
	// ErrEntryOutOfBounds indicates an entry cell outside the grid.
	ErrEntryOutOfBounds = errors.New("trace: entry position out of bounds")
	// ErrNotBoundary indicates EntryHeading was asked for an interior cell.
	ErrNotBoundary = errors.New("trace: position is not on the grid boundary")
)

// StopReason records why a trace ended.
type StopReason int

const (
	// StopExited: the beam left the grid; Exit holds the boundary cell.
	StopExited StopReason = iota
	// StopAbsorbed: the beam hit an absorber and terminated in place.
	StopAbsorbed
	// StopAttenuated: beam intensity fell below Options.MinIntensity.
	StopAttenuated
	// StopMaxBounces: the bounce bound was reached; the trace did not terminate.
	StopMaxBounces
)

// Segment is one straight-line leg of a trace. Struck is the material at
// End that changed (or ended) the beam, nil for the final free-flight leg.
type Segment struct {
	Start, End   beamgrid.Position
	DirectionDeg float64
	Struck       *beamgrid.Material
}

// RayTrace is the full forward-simulated trajectory of one beam. It is
// produced once per simulation and never mutated afterwards.
type RayTrace struct {
	// Segments, in travel order. Each segment's End equals the next
	// segment's Start.
	Segments []Segment
	// Exit is the boundary cell the beam left from, nil if the beam never
	// exited cleanly (absorbed, attenuated, or bounce-capped).
	Exit *beamgrid.Position
	// Stop records the termination condition that fired.
	Stop StopReason
	// Terminated is false only when the bounce bound cut the trace short.
	Terminated bool
	// Bounces counts material interactions that redirected the beam.
	Bounces int
	// FinalIntensity is the beam intensity when the trace ended, in [0,1].
	FinalIntensity float64
}

// Options configures a single trace run.
//   - MaxBounces: bounce bound guarding degenerate mirror cycles (default 100).
//   - MinIntensity: attenuation floor below which the beam dies (default 0.05).
//   - Rand: RNG for water diffusion; nil falls back to a fixed-seed stream.
type Options struct {
	MaxBounces   int
	MinIntensity float64
	Rand         *rand.Rand
}

// DefaultOptions returns the standard trace options.
func DefaultOptions() Options {
	return Options{
		MaxBounces:   100,
		MinIntensity: 0.05,
	}
}

// normalize fills zero-valued fields with their defaults.
func (o Options) normalize() Options {
	d := DefaultOptions()
	if o.MaxBounces <= 0 {
		o.MaxBounces = d.MaxBounces
	}
	if o.MinIntensity <= 0 {
		o.MinIntensity = d.MinIntensity
	}
	if o.Rand == nil {
		// Fixed seed on purpose: an unseeded trace must still replay.
		o.Rand = rand.New(rand.NewSource(1))
	}
	return o
}
