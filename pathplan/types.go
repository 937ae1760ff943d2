// Package pathplan plan types and sentinel errors.
package pathplan

import (
	"errors"

	"github.com/lumivak/beamlab/beamgrid"
)

// Sentinel errors for planning operations.
var (
	// ErrSamePosition indicates entry and exit coincide.
	ErrSamePosition = errors.New("pathplan: entry and exit must differ")
	// ErrExitOutOfGrid indicates the exit lies outside the difficulty's grid.
	ErrExitOutOfGrid = errors.New("pathplan: exit position out of grid")
	// ErrNoReflectionPoint indicates no admissible candidate was found for a
	// reflection index after exhausting jitter retries and neighbor fallback.
	ErrNoReflectionPoint = errors.New("pathplan: no valid reflection point found")
)

// Priority distinguishes plan-mandated materials from decorative fill.
type Priority int

const (
	// Critical materials realize the planned path; never removed.
	Critical Priority = iota
	// Supporting materials only serve the density target; freely removable.
	Supporting
)

// MaterialRequirement prescribes one material the grid must hold for the
// planned path to work. AngleDeg is meaningful only for mirrors.
type MaterialRequirement struct {
	Pos      beamgrid.Position
	Type     beamgrid.MaterialType
	AngleDeg float64
	Priority Priority
}

// PathPlan is the planner's output: one intended beam route at a target
// difficulty. A plan is created fresh per generation attempt, immutable
// once produced, consumed by the placement optimizer, then discarded.
type PathPlan struct {
	Entry, Exit beamgrid.Position
	// EntryHeadingDeg is the inward direction the beam enters with.
	EntryHeadingDeg float64
	// Reflections is the planned bend count, len(Points).
	Reflections int
	// Points lists the key reflection cells in travel order (entry side first).
	Points []beamgrid.Position
	// Requirements lists one critical material per reflection point, in the
	// same order as Points.
	Requirements []MaterialRequirement
	// Complexity is the plan's score on the shared 1–10 scale.
	Complexity float64
	// Difficulty is the band the plan was sized for.
	Difficulty beamgrid.Difficulty
}

// PathCells returns every grid cell on the intended beam route, in travel
// order from entry to exit, without duplicates at the waypoint joints.
// Consecutive waypoints are step-aligned by construction, so the walk
// advances one signed unit step per cell.
// Complexity: O(L) over the route length.
func (p *PathPlan) PathCells() []beamgrid.Position {
	route := make([]beamgrid.Position, 0, len(p.Points)+2)
	route = append(route, p.Entry)
	route = append(route, p.Points...)
	route = append(route, p.Exit)

	cells := []beamgrid.Position{p.Entry}
	for i := 1; i < len(route); i++ {
		cells = append(cells, cellsBetween(route[i-1], route[i])...)
	}
	return cells
}

// cellsBetween walks from a (exclusive) to b (inclusive) in unit steps of
// sign(b−a) per axis. If a and b are not step-aligned the walk still
// terminates: each step strictly reduces the remaining Chebyshev distance.
func cellsBetween(a, b beamgrid.Position) []beamgrid.Position {
	var out []beamgrid.Position
	cur := a
	for cur != b {
		cur.X += sign(b.X - cur.X)
		cur.Y += sign(b.Y - cur.Y)
		out = append(out, cur)
	}
	return out
}

// sign returns −1, 0 or 1 matching v's sign.
func sign(v int) int {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}
