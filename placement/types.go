// Package placement sentinel errors and tuning constants.
package placement

import (
	"errors"

	"github.com/lumivak/beamlab/beamgrid"
)

// Sentinel errors for placement operations.
var (
	// ErrNilPlan indicates Place was called without a plan.
	ErrNilPlan = errors.New("placement: nil path plan")
	// ErrRequirementConflict indicates the plan's material requirements are
	// unplaceable: out of grid, stacked on one cell, or on entry/exit.
	ErrRequirementConflict = errors.New("placement: conflicting material requirement")
)

const (
	// slotAttempts bounds random cell draws per supporting slot. Density is
	// a soft target, so an exhausted slot is skipped, not retried forever.
	slotAttempts = 16
	// criticalClearance keeps supporting materials this many cells
	// (Chebyshev) away from every critical reflection point.
	criticalClearance = 1
	// mirrorAngleStep quantizes supporting mirror angles.
	mirrorAngleStep = 15
)

// typeWeights biases the supporting-material draw. The difficulty's
// allowed set filters this table, so easier boards see only the simple
// reflectives while harder ones mix in glass, water and absorbers.
var typeWeights = map[beamgrid.MaterialType]int{
	beamgrid.Mirror:   4,
	beamgrid.Glass:    3,
	beamgrid.Metal:    2,
	beamgrid.Water:    2,
	beamgrid.Absorber: 1,
}
