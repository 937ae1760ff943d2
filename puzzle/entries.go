package puzzle

import (
	"github.com/lumivak/beamlab/beamgrid"
)

// BoundaryPairs is the default EntrySource: a deterministic table of
// boundary entry/exit pairs scaled to the difficulty's grid. Pairs keep
// entry and exit on different edges with enough span for the planner's
// per-distance reflection sizing.
type BoundaryPairs struct{}

// Pairs returns the admissible pairs for diff.
// Returns beamgrid.ErrUnknownDifficulty for values outside the enumeration.
func (BoundaryPairs) Pairs(diff beamgrid.Difficulty) ([]EntryPair, error) {
	cfg, err := beamgrid.ConfigFor(diff)
	if err != nil {
		return nil, err
	}
	n := cfg.GridSize
	return []EntryPair{
		{Entry: beamgrid.Position{X: 0, Y: n / 2}, Exit: beamgrid.Position{X: n - 2, Y: 0}},
		{Entry: beamgrid.Position{X: 0, Y: n/2 - 1}, Exit: beamgrid.Position{X: n - 1, Y: n/2 + 1}},
		{Entry: beamgrid.Position{X: n / 2, Y: 0}, Exit: beamgrid.Position{X: 0, Y: n - 2}},
		{Entry: beamgrid.Position{X: n/2 - 1, Y: n - 1}, Exit: beamgrid.Position{X: n - 1, Y: n/2 - 1}},
		{Entry: beamgrid.Position{X: 0, Y: 1}, Exit: beamgrid.Position{X: n - 1, Y: n - 2}},
		{Entry: beamgrid.Position{X: n - 1, Y: n / 2}, Exit: beamgrid.Position{X: 1, Y: 0}},
	}, nil
}
