// Package placement turns a PathPlan's critical materials into a full
// grid layout: it instantiates every planned requirement, then fills the
// board toward the difficulty's density target with supporting materials
// that cannot disturb the planned beam.
//
// What:
//
//   - Optimizer.Place materializes the plan's MaterialRequirements (the
//     critical path, never removable) and adds supporting materials at
//     random free cells until floor(size²·density) cells are occupied.
//   - Supporting cells are drawn away from the planned route: never on a
//     path cell, never on entry or exit, and never within one cell of a
//     critical reflection point. Types follow a difficulty-weighted
//     distribution over the allowed set; supporting mirror angles are
//     quantized to 15° steps.
//   - Optimizer.OptimizeDensity re-targets an existing layout: removes
//     supporting materials (critical ones are untouchable) when over the
//     target, fills like Place when under.
//
// Why:
//
//   - Density is cosmetic, solvability is not. Every rule here exists to
//     keep the forward simulation on the planned path, so generation
//     stays guaranteed rather than probabilistic.
//
// Complexity:
//
//   - Place / OptimizeDensity: O(n·A) for n supporting slots and a
//     constant per-slot attempt budget A.
//
// Errors:
//
//   - ErrNilPlan: no plan supplied.
//   - ErrRequirementConflict: the plan's requirements collide with each
//     other or with entry/exit, or fall outside the grid.
//
// Density shortfall is not an error: when the attempt budget runs out the
// layout ships with fewer supporting materials and reports the gap as a
// warning count.
package placement
