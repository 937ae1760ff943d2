package puzzle

import (
	"time"

	"github.com/google/uuid"

	"github.com/lumivak/beamlab/beamgrid"
	"github.com/lumivak/beamlab/trace"
	"github.com/lumivak/beamlab/validate"
)

// fallbackMirrorAngle bends the fallback beam 90° upward.
const fallbackMirrorAngle = 45.0

// fallbackPuzzle builds the known-good last-resort board: entry mid left
// edge, one 45° mirror at the grid center, exit straight up from it. No
// randomness, no supporting materials; same board for a given difficulty
// every time. Still validated before shipping, so a failure here means a
// broken collaborator rather than bad luck.
func (g *Generator) fallbackPuzzle(diff beamgrid.Difficulty, cfg beamgrid.Config, start time.Time) (*Puzzle, error) {
	n := cfg.GridSize
	entry := beamgrid.Position{X: 0, Y: n / 2}
	exit := beamgrid.Position{X: n / 2, Y: 0}

	grid, err := beamgrid.NewGrid(n)
	if err != nil {
		return nil, err
	}
	if err = grid.Place(beamgrid.Material{
		Type:     beamgrid.Mirror,
		Pos:      beamgrid.Position{X: n / 2, Y: n / 2},
		AngleDeg: fallbackMirrorAngle,
	}); err != nil {
		return nil, err
	}

	res, err := g.validator.Validate(grid, entry, exit, trace.DefaultOptions())
	if err != nil {
		return nil, err
	}
	if !res.Valid {
		return nil, ErrExhausted
	}

	heading, err := trace.EntryHeading(entry, n)
	if err != nil {
		return nil, err
	}

	return &Puzzle{
		ID:           uuid.New(),
		Difficulty:   diff,
		Grid:         grid,
		Entry:        entry,
		Exit:         exit,
		DirectionDeg: heading,
		Solution:     res.Trace,
		Complexity:   validate.ComplexityOf(res.Trace),
		BaseScore:    cfg.BaseScore,
		Metadata: Metadata{
			Attempts:   g.attempts + 1,
			Duration:   time.Since(start),
			Confidence: res.Confidence,
			Fallback:   true,
		},
	}, nil
}
