package pathplan_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/lumivak/beamlab/beamgrid"
	"github.com/lumivak/beamlab/pathplan"
	"github.com/lumivak/beamlab/trace"
	"github.com/lumivak/beamlab/validate"
)

// PlannerSuite exercises backward path synthesis across difficulties.
type PlannerSuite struct {
	suite.Suite
	planner *pathplan.Planner
}

func (s *PlannerSuite) SetupTest() {
	s.planner = pathplan.NewPlanner()
}

// planPair returns a workable entry/exit pair for the difficulty's grid.
func planPair(cfg beamgrid.Config) (entry, exit beamgrid.Position) {
	entry = beamgrid.Position{X: 0, Y: cfg.GridSize / 2}
	exit = beamgrid.Position{X: cfg.GridSize - 2, Y: 0}
	return entry, exit
}

// TestPlan_InputErrors covers the argument contract.
func (s *PlannerSuite) TestPlan_InputErrors() {
	rng := pathplan.RNGFromSeed(1)

	_, err := s.planner.Plan(beamgrid.Position{X: 0, Y: 3}, beamgrid.Position{X: 0, Y: 3}, beamgrid.Easy, rng)
	require.ErrorIs(s.T(), err, pathplan.ErrSamePosition)

	_, err = s.planner.Plan(beamgrid.Position{X: 0, Y: 3}, beamgrid.Position{X: 99, Y: 0}, beamgrid.Easy, rng)
	require.ErrorIs(s.T(), err, pathplan.ErrExitOutOfGrid)

	_, err = s.planner.Plan(beamgrid.Position{X: 2, Y: 2}, beamgrid.Position{X: 5, Y: 0}, beamgrid.Easy, rng)
	require.ErrorIs(s.T(), err, trace.ErrNotBoundary)

	_, err = s.planner.Plan(beamgrid.Position{X: 0, Y: 3}, beamgrid.Position{X: 5, Y: 0}, beamgrid.Difficulty(9), rng)
	require.ErrorIs(s.T(), err, beamgrid.ErrUnknownDifficulty)
}

// TestPlan_Determinism requires identical plans for identical seeds.
func (s *PlannerSuite) TestPlan_Determinism() {
	cfg, _ := beamgrid.ConfigFor(beamgrid.Medium)
	entry, exit := planPair(cfg)

	a, errA := s.planner.Plan(entry, exit, beamgrid.Medium, pathplan.RNGFromSeed(42))
	b, errB := s.planner.Plan(entry, exit, beamgrid.Medium, pathplan.RNGFromSeed(42))
	require.Equal(s.T(), errA == nil, errB == nil)
	if errA != nil {
		require.ErrorIs(s.T(), errA, pathplan.ErrNoReflectionPoint)
		return
	}
	require.Equal(s.T(), a, b, "same seed must reproduce the identical plan")
}

// TestPlan_StructuralInvariants checks every promise the plan makes:
// reflection bounds, point admissibility, spacing, alignment, entry ray
// and critical mirror requirements.
func (s *PlannerSuite) TestPlan_StructuralInvariants() {
	for _, diff := range []beamgrid.Difficulty{beamgrid.Easy, beamgrid.Medium, beamgrid.Hard} {
		cfg, err := beamgrid.ConfigFor(diff)
		require.NoError(s.T(), err)
		entry, exit := planPair(cfg)

		planned := 0
		for seed := int64(1); seed <= 30; seed++ {
			plan, perr := s.planner.Plan(entry, exit, diff, pathplan.RNGFromSeed(seed))
			if perr != nil {
				require.ErrorIs(s.T(), perr, pathplan.ErrNoReflectionPoint,
					"geometry exhaustion is the only admissible planning failure")
				continue
			}
			planned++
			s.checkPlan(plan, cfg, entry, exit)
		}
		require.Greater(s.T(), planned, 10, "difficulty %v: planner should mostly succeed", diff)
	}
}

// checkPlan asserts the structural invariants of one successful plan.
func (s *PlannerSuite) checkPlan(plan *pathplan.PathPlan, cfg beamgrid.Config, entry, exit beamgrid.Position) {
	require.Equal(s.T(), entry, plan.Entry)
	require.Equal(s.T(), exit, plan.Exit)
	require.GreaterOrEqual(s.T(), plan.Reflections, cfg.MinReflections)
	require.LessOrEqual(s.T(), plan.Reflections, cfg.MaxReflections)
	require.Len(s.T(), plan.Points, plan.Reflections)
	require.Len(s.T(), plan.Requirements, plan.Reflections)

	for i, pt := range plan.Points {
		require.True(s.T(), pt.X >= 0 && pt.X < cfg.GridSize && pt.Y >= 0 && pt.Y < cfg.GridSize,
			"point %v outside the grid", pt)
		require.NotEqual(s.T(), entry, pt)
		require.NotEqual(s.T(), exit, pt)
		for j := i + 1; j < len(plan.Points); j++ {
			require.GreaterOrEqual(s.T(), pt.Manhattan(plan.Points[j]), 2,
				"points %v and %v too close", pt, plan.Points[j])
		}
	}

	// Consecutive waypoints must lie on one of the eight beam headings.
	route := append(append([]beamgrid.Position{entry}, plan.Points...), exit)
	for i := 1; i < len(route); i++ {
		dx := route[i].X - route[i-1].X
		dy := route[i].Y - route[i-1].Y
		adx, ady := dx, dy
		if adx < 0 {
			adx = -adx
		}
		if ady < 0 {
			ady = -ady
		}
		require.True(s.T(), dx == 0 || dy == 0 || adx == ady,
			"leg %v→%v not beam-reachable", route[i-1], route[i])
	}

	// First leg rides the entry ray.
	require.Equal(s.T(), plan.EntryHeadingDeg, trace.HeadingBetween(entry, plan.Points[0]))

	// Critical mirrors with normalized angles.
	for _, req := range plan.Requirements {
		require.Equal(s.T(), pathplan.Critical, req.Priority)
		require.Equal(s.T(), beamgrid.Mirror, req.Type, "mirror is preferred whenever allowed")
		require.GreaterOrEqual(s.T(), req.AngleDeg, 0.0)
		require.Less(s.T(), req.AngleDeg, 360.0)
	}

	require.True(s.T(), plan.Complexity >= 1 && plan.Complexity <= 10)
}

// TestPlan_TracesToPlannedExit is the planner's core promise: a grid
// holding nothing but the plan's critical materials forward-simulates
// exactly onto the planned exit.
func (s *PlannerSuite) TestPlan_TracesToPlannedExit() {
	tracer := trace.NewTracer(nil)
	for _, diff := range []beamgrid.Difficulty{beamgrid.Easy, beamgrid.Medium, beamgrid.Hard} {
		cfg, err := beamgrid.ConfigFor(diff)
		require.NoError(s.T(), err)
		entry, exit := planPair(cfg)

		for seed := int64(1); seed <= 20; seed++ {
			plan, perr := s.planner.Plan(entry, exit, diff, pathplan.RNGFromSeed(seed))
			if perr != nil {
				continue
			}

			g, gerr := beamgrid.NewGrid(cfg.GridSize)
			require.NoError(s.T(), gerr)
			for _, req := range plan.Requirements {
				require.NoError(s.T(), g.Place(beamgrid.Material{
					Type: req.Type, Pos: req.Pos, AngleDeg: req.AngleDeg,
				}))
			}

			tr, terr := tracer.Trace(g, entry, plan.EntryHeadingDeg, trace.DefaultOptions())
			require.NoError(s.T(), terr)
			require.NotNil(s.T(), tr.Exit, "difficulty %v seed %d: beam never exited", diff, seed)
			require.Equal(s.T(), exit, *tr.Exit, "difficulty %v seed %d: wrong exit", diff, seed)
			require.Equal(s.T(), plan.Reflections, tr.Bounces,
				"difficulty %v seed %d: bounce count drifted from plan", diff, seed)
		}
	}
}

// TestPlan_ComplexityMatchesSharedScale recomputes the plan score through
// the validator's normalization.
func (s *PlannerSuite) TestPlan_ComplexityMatchesSharedScale() {
	cfg, _ := beamgrid.ConfigFor(beamgrid.Easy)
	entry, exit := planPair(cfg)

	for seed := int64(1); seed <= 10; seed++ {
		plan, err := s.planner.Plan(entry, exit, beamgrid.Easy, pathplan.RNGFromSeed(seed))
		if err != nil {
			continue
		}
		route := append(append([]beamgrid.Position{entry}, plan.Points...), exit)
		length := 0
		for i := 1; i < len(route); i++ {
			length += route[i-1].Manhattan(route[i])
		}
		require.Equal(s.T(), validate.Complexity(plan.Reflections, 1, length), plan.Complexity)
	}
}

// TestPathCells_CoversRoute checks the reserved-cell walk along a plan.
func (s *PlannerSuite) TestPathCells_CoversRoute() {
	plan := &pathplan.PathPlan{
		Entry:  beamgrid.Position{X: 0, Y: 3},
		Exit:   beamgrid.Position{X: 4, Y: 0},
		Points: []beamgrid.Position{{X: 4, Y: 3}},
	}
	cells := plan.PathCells()
	require.Equal(s.T(), []beamgrid.Position{
		{X: 0, Y: 3}, {X: 1, Y: 3}, {X: 2, Y: 3}, {X: 3, Y: 3}, {X: 4, Y: 3},
		{X: 4, Y: 2}, {X: 4, Y: 1}, {X: 4, Y: 0},
	}, cells)
}

func TestPlannerSuite(t *testing.T) {
	suite.Run(t, new(PlannerSuite))
}

// TestErrNoReflectionPointWrapping ensures planning failures stay matchable.
func TestErrNoReflectionPointWrapping(t *testing.T) {
	wrapped := pathplan.ErrNoReflectionPoint
	if !errors.Is(wrapped, pathplan.ErrNoReflectionPoint) {
		t.Fatal("sentinel identity lost")
	}
}
