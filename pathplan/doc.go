// Package pathplan synthesizes laser puzzle paths backward: from a desired
// exit toward an entry, choosing reflection points and the material each
// one requires, sized to a target difficulty.
//
// What:
//
//   - Planner.Plan produces an immutable PathPlan: entry, exit, the ordered
//     reflection points, one MaterialRequirement per point (type, mirror
//     angle, critical priority), and a complexity score on the shared
//     1–10 scale.
//   - Reflection count = difficulty minimum + manhattan(entry, exit)/3,
//     clamped to the difficulty's [min, max]. Longer spans need more bends
//     to stay interesting without leaving the complexity band.
//   - Points are interpolated exit→entry at progress (i+1)/(k+1), jittered
//     by a bounded random offset (20% of grid size) for variety, then
//     snapped so consecutive waypoints stay beam-reachable (grid headings
//     are the eight step directions). Candidates outside the grid, on
//     entry/exit, or closer than two cells to a chosen point are rejected;
//     after repeated rejection the eight neighbors of the interpolated
//     point are searched before the plan is abandoned.
//   - Mirror angles derive from the bisector of the incoming and outgoing
//     segment headings, normalized to [0,360).
//   - RNGFromSeed / DeriveSeed / DeriveRNG centralize deterministic random
//     generation for the whole pipeline: planner jitter, water diffusion
//     and placement each get an independent stream mixed from one seed.
//
// Why:
//
//   - Planning backward from the exit is what makes generation guaranteed:
//     the forward simulation only confirms what the plan constructed.
//
// Complexity:
//
//   - Plan: O(k·A) for k reflections and a constant attempt budget A.
//
// Errors:
//
//   - ErrSamePosition: entry and exit coincide.
//   - ErrExitOutOfGrid: exit lies outside the difficulty's grid.
//   - ErrNoReflectionPoint: no admissible point for some reflection index;
//     callers abandon the plan and retry with fresh randomness.
package pathplan
