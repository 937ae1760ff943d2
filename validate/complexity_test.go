package validate_test

import (
	"testing"

	"github.com/lumivak/beamlab/beamgrid"
	"github.com/lumivak/beamlab/trace"
	"github.com/lumivak/beamlab/validate"
)

// TestComplexity_Normalization checks the 1–10 scale and its clamps.
func TestComplexity_Normalization(t *testing.T) {
	cases := []struct {
		name                           string
		reflections, diversity, length int
		want                           float64
	}{
		{"Floor", 0, 0, 0, 1},
		{"SingleBend", 1, 1, 6, 2.9},
		{"MediumPath", 3, 2, 14, 5.8},
		{"CeilClamp", 10, 5, 60, 10},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := validate.Complexity(tc.reflections, tc.diversity, tc.length)
			if diff := got - tc.want; diff > 1e-9 || diff < -1e-9 {
				t.Errorf("Complexity(%d,%d,%d) = %v; want %v",
					tc.reflections, tc.diversity, tc.length, got, tc.want)
			}
		})
	}
}

// TestComplexityOf_Trace scores a real single-mirror simulation.
func TestComplexityOf_Trace(t *testing.T) {
	g, err := beamgrid.NewGrid(6)
	if err != nil {
		t.Fatalf("NewGrid error: %v", err)
	}
	if err = g.Place(beamgrid.Material{
		Type: beamgrid.Mirror, Pos: beamgrid.Position{X: 3, Y: 3}, AngleDeg: 45,
	}); err != nil {
		t.Fatalf("Place error: %v", err)
	}
	tr, err := trace.NewTracer(nil).Trace(g, beamgrid.Position{X: 0, Y: 3}, 0, trace.DefaultOptions())
	if err != nil {
		t.Fatalf("Trace error: %v", err)
	}

	// One bounce, one material kind, path length 3+3.
	want := validate.Complexity(1, 1, 6)
	if got := validate.ComplexityOf(tr); got != want {
		t.Errorf("ComplexityOf = %v; want %v", got, want)
	}
}

// TestInBand checks band membership against the static difficulty table.
func TestInBand(t *testing.T) {
	cfg, err := beamgrid.ConfigFor(beamgrid.Easy)
	if err != nil {
		t.Fatalf("ConfigFor error: %v", err)
	}
	if !validate.InBand(cfg.MinComplexity, cfg) {
		t.Error("band minimum excluded; want inclusive")
	}
	if !validate.InBand(cfg.MaxComplexity, cfg) {
		t.Error("band maximum excluded; want inclusive")
	}
	if validate.InBand(cfg.MaxComplexity+0.1, cfg) {
		t.Error("score above band accepted")
	}
}
