package trace_test

import (
	"errors"
	"testing"

	"github.com/lumivak/beamlab/beamgrid"
	"github.com/lumivak/beamlab/trace"
)

// TestNormalizeDeg maps representative angles onto [0,360).
func TestNormalizeDeg(t *testing.T) {
	cases := []struct{ in, want float64 }{
		{0, 0}, {360, 0}, {720, 0}, {-90, 270}, {450, 90}, {-720, 0}, {359.5, 359.5},
	}
	for _, tc := range cases {
		if got := trace.NormalizeDeg(tc.in); got != tc.want {
			t.Errorf("NormalizeDeg(%v) = %v; want %v", tc.in, got, tc.want)
		}
	}
}

// TestAngularDistance verifies minimal separation, including the wrap case.
func TestAngularDistance(t *testing.T) {
	cases := []struct{ a, b, want float64 }{
		{0, 0, 0}, {0, 90, 90}, {350, 10, 20}, {180, 0, 180}, {270, 45, 135},
	}
	for _, tc := range cases {
		if got := trace.AngularDistance(tc.a, tc.b); got != tc.want {
			t.Errorf("AngularDistance(%v,%v) = %v; want %v", tc.a, tc.b, got, tc.want)
		}
	}
}

// TestStepFor quantizes each of the eight directions to its grid step.
func TestStepFor(t *testing.T) {
	cases := []struct {
		deg    float64
		dx, dy int
	}{
		{0, 1, 0}, {45, 1, 1}, {90, 0, 1}, {135, -1, 1},
		{180, -1, 0}, {225, -1, -1}, {270, 0, -1}, {315, 1, -1},
		{360, 1, 0},
	}
	for _, tc := range cases {
		dx, dy := trace.StepFor(tc.deg)
		if dx != tc.dx || dy != tc.dy {
			t.Errorf("StepFor(%v) = (%d,%d); want (%d,%d)", tc.deg, dx, dy, tc.dx, tc.dy)
		}
	}
}

// TestHeadingBetween requires exact multiples of 45 for aligned cell pairs.
func TestHeadingBetween(t *testing.T) {
	a := beamgrid.Position{X: 3, Y: 3}
	cases := []struct {
		b    beamgrid.Position
		want float64
	}{
		{beamgrid.Position{X: 5, Y: 3}, 0},
		{beamgrid.Position{X: 5, Y: 5}, 45},
		{beamgrid.Position{X: 3, Y: 5}, 90},
		{beamgrid.Position{X: 1, Y: 5}, 135},
		{beamgrid.Position{X: 0, Y: 3}, 180},
		{beamgrid.Position{X: 1, Y: 1}, 225},
		{beamgrid.Position{X: 3, Y: 0}, 270},
		{beamgrid.Position{X: 4, Y: 2}, 315},
	}
	for _, tc := range cases {
		if got := trace.HeadingBetween(a, tc.b); got != tc.want {
			t.Errorf("HeadingBetween(%v,%v) = %v; want exactly %v", a, tc.b, got, tc.want)
		}
	}
}

// TestMirrorReflection checks the reflection law θ' = 2·(m+90) − θ exactly.
func TestMirrorReflection(t *testing.T) {
	cases := []struct{ theta, mirror, want float64 }{
		{0, 45, 270},   // east beam, 45° mirror: turns north
		{270, 45, 0},   // the inverse bounce
		{180, 135, 270}, // west beam, 135° mirror: turns north
		{90, 0, 90},    // beam along the surface normal axis is unchanged
		{45, 90, 315},
	}
	for _, tc := range cases {
		if got := trace.MirrorReflection(tc.theta, tc.mirror); got != tc.want {
			t.Errorf("MirrorReflection(θ=%v, m=%v) = %v; want %v", tc.theta, tc.mirror, got, tc.want)
		}
	}
}

// TestEntryHeading covers all four edges, corner precedence, and errors.
func TestEntryHeading(t *testing.T) {
	cases := []struct {
		name string
		p    beamgrid.Position
		want float64
	}{
		{"LeftEdge", beamgrid.Position{X: 0, Y: 3}, 0},
		{"RightEdge", beamgrid.Position{X: 5, Y: 3}, 180},
		{"TopEdge", beamgrid.Position{X: 3, Y: 0}, 90},
		{"BottomEdge", beamgrid.Position{X: 3, Y: 5}, 270},
		{"CornerPrefersX", beamgrid.Position{X: 0, Y: 0}, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := trace.EntryHeading(tc.p, 6)
			if err != nil {
				t.Fatalf("EntryHeading error: %v", err)
			}
			if got != tc.want {
				t.Errorf("EntryHeading(%v) = %v; want %v", tc.p, got, tc.want)
			}
		})
	}

	for _, p := range []beamgrid.Position{{X: 2, Y: 2}, {X: -1, Y: 0}, {X: 6, Y: 3}} {
		if _, err := trace.EntryHeading(p, 6); !errors.Is(err, trace.ErrNotBoundary) {
			t.Errorf("EntryHeading(%v) error = %v; want ErrNotBoundary", p, err)
		}
	}
}
