package trace

import (
	"math"

	"github.com/lumivak/beamlab/beamgrid"
)

// surfaceAngleFixed is the implied surface angle, in degrees, for materials
// without a configurable orientation (water, glass).
const surfaceAngleFixed = 45.0

// NormalizeDeg maps any angle in degrees onto [0, 360).
// Complexity: O(1).
func NormalizeDeg(deg float64) float64 {
	deg = math.Mod(deg, 360)
	if deg < 0 {
		deg += 360
	}
	return deg
}

// AngularDistance returns the minimal separation between two angles,
// in degrees, always in [0, 180].
// Complexity: O(1).
func AngularDistance(a, b float64) float64 {
	d := math.Abs(NormalizeDeg(a) - NormalizeDeg(b))
	if d > 180 {
		d = 360 - d
	}
	return d
}

// StepFor quantizes a direction in degrees to a single-cell grid step.
// The continuous heading collapses onto the eight grid directions:
// dx = round(cos θ), dy = round(sin θ). The pair is never (0, 0).
// Complexity: O(1).
func StepFor(deg float64) (dx, dy int) {
	rad := NormalizeDeg(deg) * math.Pi / 180
	return int(math.Round(math.Cos(rad))), int(math.Round(math.Sin(rad)))
}

// HeadingBetween returns the direction of travel from a to b in degrees,
// normalized to [0, 360). The eight step-aligned headings come back as
// exact multiples of 45 so that angle identities hold without tolerance.
// Undefined for a == b; callers guard that case.
// Complexity: O(1).
func HeadingBetween(a, b beamgrid.Position) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	adx, ady := dx, dy
	if adx < 0 {
		adx = -adx
	}
	if ady < 0 {
		ady = -ady
	}
	if dx == 0 || dy == 0 || adx == ady {
		// Exact grid headings: sx, sy ∈ {−1,0,1} index the 45° compass.
		switch sx, sy := signOf(dx), signOf(dy); {
		case sx == 1 && sy == 0:
			return 0
		case sx == 1 && sy == 1:
			return 45
		case sx == 0 && sy == 1:
			return 90
		case sx == -1 && sy == 1:
			return 135
		case sx == -1 && sy == 0:
			return 180
		case sx == -1 && sy == -1:
			return 225
		case sx == 0 && sy == -1:
			return 270
		case sx == 1 && sy == -1:
			return 315
		}
	}
	return NormalizeDeg(math.Atan2(float64(dy), float64(dx)) * 180 / math.Pi)
}

// signOf returns −1, 0 or 1 matching v's sign.
func signOf(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// MirrorReflection applies the reflection law for a mirror surface at
// angle m to a beam travelling at θ: θ' = 2·(m+90) − θ, normalized.
// The surface normal sits at m + 90°; incidence equals reflection about it.
// Complexity: O(1).
func MirrorReflection(thetaDeg, mirrorDeg float64) float64 {
	return NormalizeDeg(2*(mirrorDeg+90) - thetaDeg)
}

// EntryHeading returns the axis-aligned direction pointing from boundary
// cell p into the interior of a size×size grid. Corner cells resolve along
// the X edge first. Returns ErrNotBoundary for interior or out-of-range cells.
// Complexity: O(1).
func EntryHeading(p beamgrid.Position, size int) (float64, error) {
	if p.X < 0 || p.X >= size || p.Y < 0 || p.Y >= size {
		return 0, ErrNotBoundary
	}
	switch {
	case p.X == 0:
		return 0, nil // east
	case p.X == size-1:
		return 180, nil // west
	case p.Y == 0:
		return 90, nil // south (+Y)
	case p.Y == size-1:
		return 270, nil // north (−Y)
	}
	return 0, ErrNotBoundary
}
