package pathplan

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/lumivak/beamlab/beamgrid"
	"github.com/lumivak/beamlab/trace"
	"github.com/lumivak/beamlab/validate"
)

// Planning constants.
const (
	// jitterFraction scales the random offset applied to each interpolated
	// reflection point, as a fraction of the grid edge.
	jitterFraction = 0.2
	// minPointSpacing is the minimum Manhattan distance between two chosen
	// reflection points.
	minPointSpacing = 2
	// jitterAttempts bounds fresh-jitter retries per reflection index before
	// the neighbor fallback kicks in.
	jitterAttempts = 12
	// reflectionsPerSpan adds one required reflection per this many cells of
	// entry–exit Manhattan distance.
	reflectionsPerSpan = 3
)

// neighborOffsets enumerates the eight neighbors for the fallback search.
var neighborOffsets = [8][2]int{
	{0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0}, {-1, -1},
}

// materialPreference orders critical-material fallbacks: mirror first
// (deterministic, easiest to guarantee), then the other reflectives.
var materialPreference = []beamgrid.MaterialType{
	beamgrid.Mirror, beamgrid.Glass, beamgrid.Water, beamgrid.Metal,
}

// Planner synthesizes PathPlans. It is stateless: all randomness comes
// from the *rand.Rand passed per call, so one Planner serves any number
// of concurrent generations as long as each brings its own stream.
type Planner struct{}

// NewPlanner returns a ready Planner.
func NewPlanner() *Planner { return &Planner{} }

// Plan builds a reflection path from entry to exit sized for diff.
//
// Points are computed backward from the exit: each index interpolates
// toward the entry, jitters for variety, and snaps so the previous
// waypoint stays reachable along one of the eight beam headings. The
// final (entry-side) point additionally lands on the entry's inward ray,
// guaranteeing the first traced segment meets the plan.
//
// A nil rng falls back to the fixed default stream (seed-zero policy).
// Returns ErrNoReflectionPoint when candidate search is exhausted for
// some index; callers retry with fresh randomness.
func (pl *Planner) Plan(entry, exit beamgrid.Position, diff beamgrid.Difficulty, rng *rand.Rand) (*PathPlan, error) {
	cfg, err := beamgrid.ConfigFor(diff)
	if err != nil {
		return nil, err
	}
	if entry == exit {
		return nil, ErrSamePosition
	}
	if exit.X < 0 || exit.X >= cfg.GridSize || exit.Y < 0 || exit.Y >= cfg.GridSize {
		return nil, ErrExitOutOfGrid
	}
	heading, err := trace.EntryHeading(entry, cfg.GridSize)
	if err != nil {
		return nil, err
	}
	if rng == nil {
		rng = RNGFromSeed(0)
	}

	k := cfg.MinReflections + entry.Manhattan(exit)/reflectionsPerSpan
	if k > cfg.MaxReflections {
		k = cfg.MaxReflections
	}

	// Backward synthesis, exit-side point first. beyond is the waypoint
	// after cur in travel order; it lets candidate selection reject bends
	// that would go straight through cur or reverse onto the previous leg.
	backward := make([]beamgrid.Position, 0, k)
	cur := exit
	for i := 0; i < k; i++ {
		var beyond beamgrid.Position
		haveBeyond := i >= 1
		switch {
		case i == 1:
			beyond = exit
		case i >= 2:
			beyond = backward[i-2]
		}
		pt, ok := pl.choosePoint(cur, entry, exit, heading, backward, beyond, haveBeyond, cfg.GridSize, i, k, rng)
		if !ok {
			return nil, fmt.Errorf("%w (reflection %d of %d)", ErrNoReflectionPoint, i+1, k)
		}
		backward = append(backward, pt)
		cur = pt
	}

	// Reverse into travel order: entry-side point first.
	points := make([]beamgrid.Position, k)
	for i, pt := range backward {
		points[k-1-i] = pt
	}

	reqs, err := pl.requirements(points, entry, exit, heading, cfg)
	if err != nil {
		return nil, err
	}

	plan := &PathPlan{
		Entry:           entry,
		Exit:            exit,
		EntryHeadingDeg: heading,
		Reflections:     k,
		Points:          points,
		Requirements:    reqs,
		Difficulty:      diff,
	}
	if err = routeConsistent(plan); err != nil {
		return nil, err
	}
	plan.Complexity = validate.Complexity(k, distinctKinds(reqs), routeLength(plan))
	return plan, nil
}

// choosePoint picks the reflection point for backward index i: interpolate
// between cur and entry at progress (i+1)/(k+1), jitter, snap, validate;
// after jitterAttempts rejections, search the eight neighbors of the plain
// interpolated point before giving up.
func (pl *Planner) choosePoint(cur, entry, exit beamgrid.Position, heading float64, chosen []beamgrid.Position, beyond beamgrid.Position, haveBeyond bool, size, i, k int, rng *rand.Rand) (beamgrid.Position, bool) {
	first, last := i == 0, i == k-1
	prog := float64(i+1) / float64(k+1)
	bx := float64(cur.X) + (float64(entry.X)-float64(cur.X))*prog
	by := float64(cur.Y) + (float64(entry.Y)-float64(cur.Y))*prog
	maxJit := jitterFraction * float64(size)

	for a := 0; a < jitterAttempts; a++ {
		cand := beamgrid.Position{
			X: int(math.Round(bx + (rng.Float64()*2-1)*maxJit)),
			Y: int(math.Round(by + (rng.Float64()*2-1)*maxJit)),
		}
		if pt, ok := pl.fit(cand, cur, entry, exit, heading, chosen, beyond, haveBeyond, size, first, last); ok {
			return pt, true
		}
	}

	base := beamgrid.Position{X: int(math.Round(bx)), Y: int(math.Round(by))}
	for _, off := range neighborOffsets {
		cand := beamgrid.Position{X: base.X + off[0], Y: base.Y + off[1]}
		if pt, ok := pl.fit(cand, cur, entry, exit, heading, chosen, beyond, haveBeyond, size, first, last); ok {
			return pt, true
		}
	}
	return beamgrid.Position{}, false
}

// fit snaps cand into beam reach of cur (and, for the entry-side point,
// onto the entry ray), then applies the rejection rules. The exit-side
// point must additionally send the beam off the grid at the exit cell.
func (pl *Planner) fit(cand, cur, entry, exit beamgrid.Position, heading float64, chosen []beamgrid.Position, beyond beamgrid.Position, haveBeyond bool, size int, first, last bool) (beamgrid.Position, bool) {
	if last {
		for _, pt := range entryRayCandidates(cand, cur, entry, heading) {
			if pl.usable(pt, cur, entry, exit, heading, chosen, beyond, haveBeyond, size, first, last) {
				return pt, true
			}
		}
		return beamgrid.Position{}, false
	}
	pt := snapAligned(cand, cur)
	if pl.usable(pt, cur, entry, exit, heading, chosen, beyond, haveBeyond, size, first, last) {
		return pt, true
	}
	return beamgrid.Position{}, false
}

// usable bundles the full per-candidate rule set: the geometric rejection
// rules, the outward exit step for the exit-side point, and bend sanity at
// each waypoint whose two legs the candidate completes. A bend is rejected
// when the beam would pass straight through the waypoint or fold back onto
// the leg it arrived on, since neither can be produced by a reflection.
func (pl *Planner) usable(pt, cur, entry, exit beamgrid.Position, heading float64, chosen []beamgrid.Position, beyond beamgrid.Position, haveBeyond bool, size int, first, last bool) bool {
	if !pl.acceptable(pt, cur, entry, exit, chosen, size) {
		return false
	}
	if first && !exitsOutward(pt, exit, size) {
		return false
	}
	if haveBeyond && degenerateBend(trace.HeadingBetween(pt, cur), trace.HeadingBetween(cur, beyond)) {
		return false
	}
	if last && degenerateBend(heading, trace.HeadingBetween(pt, cur)) {
		return false
	}
	return true
}

// degenerateBend reports whether two consecutive leg headings describe a
// straight pass-through or a reversal.
func degenerateBend(in, out float64) bool {
	sep := trace.AngularDistance(in, out)
	return sep == 0 || sep == 180
}

// exitsOutward reports whether a beam travelling from pt through exit
// leaves the grid at the exit cell: its next unit step is out of bounds.
func exitsOutward(pt, exit beamgrid.Position, size int) bool {
	nx := exit.X + sign(exit.X-pt.X)
	ny := exit.Y + sign(exit.Y-pt.Y)
	return nx < 0 || nx >= size || ny < 0 || ny >= size
}

// acceptable applies the candidate rejection rules: inside the grid, not
// on entry/exit, at least minPointSpacing from every chosen point, and the
// leg toward cur must not run over entry, exit or a chosen point.
func (pl *Planner) acceptable(pt, cur, entry, exit beamgrid.Position, chosen []beamgrid.Position, size int) bool {
	if pt.X < 0 || pt.X >= size || pt.Y < 0 || pt.Y >= size {
		return false
	}
	if pt == entry || pt == exit || pt == cur {
		return false
	}
	for _, c := range chosen {
		if pt.Manhattan(c) < minPointSpacing {
			return false
		}
	}
	// Leg interior: everything strictly between pt and cur.
	for _, cell := range cellsBetween(pt, cur) {
		if cell == cur {
			continue
		}
		if cell == entry || cell == exit {
			return false
		}
		for _, c := range chosen {
			if cell == c {
				return false
			}
		}
	}
	return true
}

// snapAligned moves cand the cheapest distance onto one of the eight beam
// headings through cur. Already-aligned candidates pass unchanged.
func snapAligned(cand, cur beamgrid.Position) beamgrid.Position {
	dx, dy := cand.X-cur.X, cand.Y-cur.Y
	adx, ady := absInt(dx), absInt(dy)
	if dx == 0 || dy == 0 || adx == ady {
		return cand
	}

	m := adx
	if ady < m {
		m = ady
	}
	diag := beamgrid.Position{X: cur.X + sign(dx)*m, Y: cur.Y + sign(dy)*m}
	horiz := beamgrid.Position{X: cand.X, Y: cur.Y}
	vert := beamgrid.Position{X: cur.X, Y: cand.Y}

	diagCost := adx + ady - 2*m
	best, bestCost := diag, diagCost
	if ady < bestCost {
		best, bestCost = horiz, ady
	}
	if adx < bestCost {
		best = vert
	}
	return best
}

// entryRayCandidates intersects the entry's inward ray with the eight
// headings through cur and returns admissible intersections ordered by
// closeness to the jittered target.
func entryRayCandidates(target, cur, entry beamgrid.Position, heading float64) []beamgrid.Position {
	var cands []beamgrid.Position
	switch heading {
	case 0, 180:
		ey := entry.Y
		if cur.Y == ey {
			cands = append(cands, beamgrid.Position{X: target.X, Y: ey})
		}
		d := ey - cur.Y
		cands = append(cands,
			beamgrid.Position{X: cur.X, Y: ey},
			beamgrid.Position{X: cur.X + d, Y: ey},
			beamgrid.Position{X: cur.X - d, Y: ey},
		)
	default: // 90, 270
		ex := entry.X
		if cur.X == ex {
			cands = append(cands, beamgrid.Position{X: ex, Y: target.Y})
		}
		d := ex - cur.X
		cands = append(cands,
			beamgrid.Position{X: ex, Y: cur.Y},
			beamgrid.Position{X: ex, Y: cur.Y + d},
			beamgrid.Position{X: ex, Y: cur.Y - d},
		)
	}

	// Keep only points strictly on the inward side of the entry.
	var onRay []beamgrid.Position
	for _, c := range cands {
		switch heading {
		case 0:
			if c.X > entry.X {
				onRay = append(onRay, c)
			}
		case 180:
			if c.X < entry.X {
				onRay = append(onRay, c)
			}
		case 90:
			if c.Y > entry.Y {
				onRay = append(onRay, c)
			}
		default:
			if c.Y < entry.Y {
				onRay = append(onRay, c)
			}
		}
	}

	// Nearest-to-target first; stable insertion sort, the list is tiny.
	for i := 1; i < len(onRay); i++ {
		for j := i; j > 0 && onRay[j].Manhattan(target) < onRay[j-1].Manhattan(target); j-- {
			onRay[j], onRay[j-1] = onRay[j-1], onRay[j]
		}
	}
	return onRay
}

// requirements assigns one critical material per reflection point and, for
// mirrors, derives the surface angle as the bisector of the incoming and
// outgoing headings.
func (pl *Planner) requirements(points []beamgrid.Position, entry, exit beamgrid.Position, heading float64, cfg beamgrid.Config) ([]MaterialRequirement, error) {
	mt := preferredMaterial(cfg)
	route := make([]beamgrid.Position, 0, len(points)+2)
	route = append(route, entry)
	route = append(route, points...)
	route = append(route, exit)

	reqs := make([]MaterialRequirement, 0, len(points))
	for j, pt := range points {
		thIn := trace.HeadingBetween(route[j], pt)
		thOut := trace.HeadingBetween(pt, route[j+2])
		if j == 0 && thIn != heading {
			// First leg drifted off the entry ray; the plan cannot trace.
			return nil, fmt.Errorf("%w (entry leg heading %v)", ErrNoReflectionPoint, thIn)
		}
		sep := trace.AngularDistance(thIn, thOut)
		if sep == 0 || sep == 180 {
			// A bend that goes straight, or reverses onto its own leg,
			// produces a degenerate puzzle; abandon the plan.
			return nil, fmt.Errorf("%w (degenerate bend at %v)", ErrNoReflectionPoint, pt)
		}
		req := MaterialRequirement{Pos: pt, Type: mt, Priority: Critical}
		if mt == beamgrid.Mirror {
			req.AngleDeg = trace.NormalizeDeg((thIn+thOut)/2 - 90)
		}
		reqs = append(reqs, req)
	}
	return reqs, nil
}

// preferredMaterial walks the preference order and returns the first type
// the difficulty allows. Mirror is always allowed in the static table, so
// the final fallback is unreachable in practice.
func preferredMaterial(cfg beamgrid.Config) beamgrid.MaterialType {
	for _, mt := range materialPreference {
		if cfg.Allows(mt) {
			return mt
		}
	}
	return beamgrid.Mirror
}

// routeConsistent rejects plans whose beam would strike a reflection point
// in the middle of an earlier leg: the trace would bend where no bend is
// planned.
func routeConsistent(plan *PathPlan) error {
	onPoint := make(map[beamgrid.Position]bool, len(plan.Points))
	for _, pt := range plan.Points {
		onPoint[pt] = true
	}
	route := make([]beamgrid.Position, 0, len(plan.Points)+2)
	route = append(route, plan.Entry)
	route = append(route, plan.Points...)
	route = append(route, plan.Exit)

	for i := 1; i < len(route); i++ {
		for _, cell := range cellsBetween(route[i-1], route[i]) {
			if cell == route[i] {
				continue
			}
			if onPoint[cell] {
				return fmt.Errorf("%w (leg %d crosses point %v)", ErrNoReflectionPoint, i, cell)
			}
			if cell == plan.Exit {
				// A mid-route pass over the exit cell risks an early exit.
				return fmt.Errorf("%w (leg %d crosses the exit)", ErrNoReflectionPoint, i)
			}
		}
	}
	return nil
}

// routeLength sums the Manhattan lengths of all legs.
func routeLength(plan *PathPlan) int {
	route := make([]beamgrid.Position, 0, len(plan.Points)+2)
	route = append(route, plan.Entry)
	route = append(route, plan.Points...)
	route = append(route, plan.Exit)
	total := 0
	for i := 1; i < len(route); i++ {
		total += route[i-1].Manhattan(route[i])
	}
	return total
}

// distinctKinds counts the distinct material types across requirements.
func distinctKinds(reqs []MaterialRequirement) int {
	kinds := make(map[beamgrid.MaterialType]bool, len(reqs))
	for _, r := range reqs {
		kinds[r.Type] = true
	}
	return len(kinds)
}

// absInt returns |v|.
func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
