package validate_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lumivak/beamlab/beamgrid"
	"github.com/lumivak/beamlab/trace"
	"github.com/lumivak/beamlab/validate"
)

// ValidatorSuite exercises physics grading on hand-built grids.
type ValidatorSuite struct {
	suite.Suite
	v *validate.Validator
}

func (s *ValidatorSuite) SetupTest() {
	s.v = validate.NewValidator(nil)
}

// singleMirrorGrid is the reference 6×6 scenario: one 45° mirror at (3,3),
// entry (0,3) heading east, true exit (3,0).
func (s *ValidatorSuite) singleMirrorGrid() *beamgrid.Grid {
	g, err := beamgrid.NewGrid(6)
	require.NoError(s.T(), err)
	require.NoError(s.T(), g.Place(beamgrid.Material{
		Type: beamgrid.Mirror, Pos: beamgrid.Position{X: 3, Y: 3}, AngleDeg: 45,
	}))
	return g
}

// TestValidate_AcceptsTruePath grades the reference grid against its true exit.
func (s *ValidatorSuite) TestValidate_AcceptsTruePath() {
	res, err := s.v.Validate(s.singleMirrorGrid(),
		beamgrid.Position{X: 0, Y: 3}, beamgrid.Position{X: 3, Y: 0}, trace.DefaultOptions())
	require.NoError(s.T(), err)
	require.True(s.T(), res.Valid)
	require.True(s.T(), res.TerminationCorrect)
	require.True(s.T(), res.PathContinuity)
	require.Equal(s.T(), 1.0, res.ReflectionAccuracy, "mirror is deterministic; accuracy must be exact")
	require.Equal(s.T(), 100.0, res.Confidence)
	require.Empty(s.T(), res.Errors)
	require.Empty(s.T(), res.Warnings)
	require.NotEmpty(s.T(), res.Trace.Segments)
}

// TestValidate_WrongExitIsError grades against a deliberately wrong exit.
func (s *ValidatorSuite) TestValidate_WrongExitIsError() {
	res, err := s.v.Validate(s.singleMirrorGrid(),
		beamgrid.Position{X: 0, Y: 3}, beamgrid.Position{X: 5, Y: 5}, trace.DefaultOptions())
	require.NoError(s.T(), err)
	require.False(s.T(), res.Valid)
	require.False(s.T(), res.TerminationCorrect)
	require.NotEmpty(s.T(), res.Errors)
	// Accuracy and continuity still hold, so confidence loses only the
	// termination weight.
	require.Equal(s.T(), 70.0, res.Confidence)
}

// TestValidate_AbsorbedBeamIsError expects a nil exit to invalidate the grid.
func (s *ValidatorSuite) TestValidate_AbsorbedBeamIsError() {
	g := s.singleMirrorGrid()
	require.NoError(s.T(), g.Place(beamgrid.Material{
		Type: beamgrid.Absorber, Pos: beamgrid.Position{X: 1, Y: 3},
	}))
	res, err := s.v.Validate(g,
		beamgrid.Position{X: 0, Y: 3}, beamgrid.Position{X: 3, Y: 0}, trace.DefaultOptions())
	require.NoError(s.T(), err)
	require.False(s.T(), res.Valid)
	require.False(s.T(), res.TerminationCorrect)
}

// TestValidate_BounceCapIsErrorNotCrash validates a four-bounce mirror
// staircase under a three-bounce bound: a failed result, not a Go error.
func (s *ValidatorSuite) TestValidate_BounceCapIsErrorNotCrash() {
	g, err := beamgrid.NewGrid(6)
	require.NoError(s.T(), err)
	// 135° mirrors alternate east→south→east down a staircase.
	for _, p := range []beamgrid.Position{{X: 2, Y: 0}, {X: 2, Y: 2}, {X: 4, Y: 2}, {X: 4, Y: 4}} {
		require.NoError(s.T(), g.Place(beamgrid.Material{Type: beamgrid.Mirror, Pos: p, AngleDeg: 135}))
	}
	entry := beamgrid.Position{X: 0, Y: 0}
	exit := beamgrid.Position{X: 5, Y: 4}

	// Sanity: with the default bounce budget the staircase is a valid puzzle.
	res, err := s.v.Validate(g, entry, exit, trace.DefaultOptions())
	require.NoError(s.T(), err)
	require.True(s.T(), res.Valid)
	require.Equal(s.T(), 4, res.Trace.Bounces)

	opts := trace.DefaultOptions()
	opts.MaxBounces = 3
	res, err = s.v.Validate(g, entry, exit, opts)
	require.NoError(s.T(), err)
	require.False(s.T(), res.Valid)
	require.False(s.T(), res.Trace.Terminated)
}

// TestValidate_WaterAccuracyStaysAboveThreshold checks that bounded water
// diffusion cannot push accuracy below the warning threshold on one strike.
func (s *ValidatorSuite) TestValidate_WaterAccuracyStaysAboveThreshold() {
	g, err := beamgrid.NewGrid(8)
	require.NoError(s.T(), err)
	require.NoError(s.T(), g.Place(beamgrid.Material{
		Type: beamgrid.Water, Pos: beamgrid.Position{X: 3, Y: 3},
	}))

	res, err := s.v.Validate(g,
		beamgrid.Position{X: 0, Y: 3}, beamgrid.Position{X: 3, Y: 0}, trace.DefaultOptions())
	require.NoError(s.T(), err)
	require.GreaterOrEqual(s.T(), res.ReflectionAccuracy, 0.9,
		"±15° diffusion bounds accuracy at 1−15/180")
}

// TestValidate_InputErrors covers nil grid and off-boundary entries.
func (s *ValidatorSuite) TestValidate_InputErrors() {
	_, err := s.v.Validate(nil, beamgrid.Position{}, beamgrid.Position{}, trace.DefaultOptions())
	require.ErrorIs(s.T(), err, trace.ErrNilGrid)

	g, _ := beamgrid.NewGrid(6)
	_, err = s.v.Validate(g, beamgrid.Position{X: 2, Y: 2}, beamgrid.Position{X: 5, Y: 2}, trace.DefaultOptions())
	require.ErrorIs(s.T(), err, trace.ErrNotBoundary)
}

func TestValidatorSuite(t *testing.T) {
	suite.Run(t, new(ValidatorSuite))
}
