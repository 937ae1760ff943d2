package placement

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lumivak/beamlab/beamgrid"
	"github.com/lumivak/beamlab/pathplan"
)

// Optimizer lays materials onto a grid for a given plan. It is stateless:
// all randomness comes from the *rand.Rand passed per call, so one
// Optimizer serves any number of concurrent generations as long as each
// brings its own stream.
type Optimizer struct{}

// NewOptimizer returns a ready Optimizer.
func NewOptimizer() *Optimizer { return &Optimizer{} }

// Place materializes plan into a full material layout for a gridSize×
// gridSize board: first the plan's requirements verbatim (the critical
// path), then supporting materials at random admissible cells until
// floor(gridSize²·density) cells hold something.
//
// The returned shortfall counts supporting slots abandoned after the
// attempt budget ran dry; a non-zero shortfall is a soft warning, the
// layout is still solvable. A nil rng falls back to the fixed default
// stream (seed-zero policy).
// Complexity: O(target·slotAttempts).
func (o *Optimizer) Place(plan *pathplan.PathPlan, gridSize int, rng *rand.Rand) ([]beamgrid.Material, int, error) {
	if plan == nil {
		return nil, 0, ErrNilPlan
	}
	cfg, err := beamgrid.ConfigFor(plan.Difficulty)
	if err != nil {
		return nil, 0, err
	}
	if gridSize != cfg.GridSize {
		return nil, 0, beamgrid.ErrBadGridSize
	}
	if err = checkRequirements(plan, gridSize); err != nil {
		return nil, 0, err
	}
	if rng == nil {
		rng = pathplan.RNGFromSeed(0)
	}

	materials := make([]beamgrid.Material, 0, len(plan.Requirements))
	occupied := make(map[beamgrid.Position]bool, len(plan.Requirements))
	for _, req := range plan.Requirements {
		materials = append(materials, beamgrid.Material{
			Type:     req.Type,
			Pos:      req.Pos,
			AngleDeg: req.AngleDeg,
		})
		occupied[req.Pos] = true
	}

	target := int(math.Floor(float64(gridSize*gridSize) * cfg.MaterialDensity))
	materials, shortfall := o.fill(materials, target, gridSize, blockedCells(plan), occupied, cfg.AllowedMaterials, rng)
	return materials, shortfall, nil
}

// OptimizeDensity re-targets an existing layout to exactly target
// occupied cells. Over-dense layouts shed randomly chosen supporting
// materials; the plan's critical cells are never touched, so the result
// may still exceed target when criticals alone do. Under-dense layouts
// are filled the same way Place fills, with the same soft shortfall.
// Complexity: O(len(materials) + |delta|·slotAttempts).
func (o *Optimizer) OptimizeDensity(materials []beamgrid.Material, target, gridSize int, plan *pathplan.PathPlan, rng *rand.Rand) ([]beamgrid.Material, int, error) {
	if plan == nil {
		return nil, 0, ErrNilPlan
	}
	cfg, err := beamgrid.ConfigFor(plan.Difficulty)
	if err != nil {
		return nil, 0, err
	}
	if gridSize != cfg.GridSize {
		return nil, 0, beamgrid.ErrBadGridSize
	}
	if rng == nil {
		rng = pathplan.RNGFromSeed(0)
	}

	critical := make(map[beamgrid.Position]bool, len(plan.Requirements))
	for _, req := range plan.Requirements {
		critical[req.Pos] = true
	}

	if len(materials) > target {
		return shedSupporting(materials, target, critical, rng), 0, nil
	}

	occupied := make(map[beamgrid.Position]bool, len(materials))
	for _, m := range materials {
		occupied[m.Pos] = true
	}
	out, shortfall := o.fill(materials, target, gridSize, blockedCells(plan), occupied, cfg.AllowedMaterials, rng)
	return out, shortfall, nil
}

// fill appends supporting materials until target cells are occupied or a
// slot exhausts its attempt budget. occupied is mutated as cells are taken.
func (o *Optimizer) fill(materials []beamgrid.Material, target, size int, blocked, occupied map[beamgrid.Position]bool, allowed []beamgrid.MaterialType, rng *rand.Rand) ([]beamgrid.Material, int) {
	for len(materials) < target {
		placed := false
		for a := 0; a < slotAttempts; a++ {
			pos := beamgrid.Position{X: rng.Intn(size), Y: rng.Intn(size)}
			if blocked[pos] || occupied[pos] {
				continue
			}
			t := pickType(allowed, rng)
			materials = append(materials, beamgrid.Material{
				Type:     t,
				Pos:      pos,
				AngleDeg: supportingAngle(t, rng),
			})
			occupied[pos] = true
			placed = true
			break
		}
		if !placed {
			return materials, target - len(materials)
		}
	}
	return materials, 0
}

// shedSupporting removes randomly chosen non-critical materials until the
// layout holds target cells or only criticals remain.
func shedSupporting(materials []beamgrid.Material, target int, critical map[beamgrid.Position]bool, rng *rand.Rand) []beamgrid.Material {
	out := make([]beamgrid.Material, len(materials))
	copy(out, materials)

	for len(out) > target {
		var removable []int
		for i, m := range out {
			if !critical[m.Pos] {
				removable = append(removable, i)
			}
		}
		if len(removable) == 0 {
			break
		}
		i := removable[rng.Intn(len(removable))]
		out = append(out[:i], out[i+1:]...)
	}
	return out
}

// checkRequirements rejects plans whose requirements cannot coexist on
// the board: out of bounds, stacked on one cell, or on entry/exit.
func checkRequirements(plan *pathplan.PathPlan, size int) error {
	seen := make(map[beamgrid.Position]bool, len(plan.Requirements))
	for _, req := range plan.Requirements {
		p := req.Pos
		switch {
		case p.X < 0 || p.X >= size || p.Y < 0 || p.Y >= size:
			return fmt.Errorf("%w: %s out of %d×%d grid", ErrRequirementConflict, p, size, size)
		case p == plan.Entry || p == plan.Exit:
			return fmt.Errorf("%w: %s overlaps entry/exit", ErrRequirementConflict, p)
		case seen[p]:
			return fmt.Errorf("%w: duplicate cell %s", ErrRequirementConflict, p)
		}
		seen[p] = true
	}
	return nil
}

// blockedCells marks every cell supporting materials must avoid: entry,
// exit, the planned beam route, and the clearance zone around each
// critical reflection point.
func blockedCells(plan *pathplan.PathPlan) map[beamgrid.Position]bool {
	blocked := map[beamgrid.Position]bool{plan.Entry: true, plan.Exit: true}
	for _, c := range plan.PathCells() {
		blocked[c] = true
	}
	for _, req := range plan.Requirements {
		for dx := -criticalClearance; dx <= criticalClearance; dx++ {
			for dy := -criticalClearance; dy <= criticalClearance; dy++ {
				blocked[beamgrid.Position{X: req.Pos.X + dx, Y: req.Pos.Y + dy}] = true
			}
		}
	}
	return blocked
}

// pickType draws one material type from allowed, weighted by typeWeights.
func pickType(allowed []beamgrid.MaterialType, rng *rand.Rand) beamgrid.MaterialType {
	total := 0
	for _, t := range allowed {
		total += typeWeights[t]
	}
	if total == 0 {
		return beamgrid.Mirror
	}
	n := rng.Intn(total)
	for _, t := range allowed {
		n -= typeWeights[t]
		if n < 0 {
			return t
		}
	}
	return allowed[len(allowed)-1]
}

// supportingAngle rolls a quantized mirror angle; other types carry none.
func supportingAngle(t beamgrid.MaterialType, rng *rand.Rand) float64 {
	if t != beamgrid.Mirror {
		return 0
	}
	return float64(rng.Intn(360/mirrorAngleStep) * mirrorAngleStep)
}
