// Package trace implements the laser ray-trace engine: it simulates one
// beam from an entry cell through a beamgrid.Grid, applying per-material
// interaction rules until the beam terminates.
//
// What:
//
//   - Tracer.Trace advances the beam one grid cell at a time along its
//     current direction (degrees; 0° = +X, 90° = +Y) and applies the struck
//     material's rule at every occupied cell.
//   - Material rules, for incidence direction θ and mirror angle m:
//     mirror    reflects about the surface at m: θ' = 2·(m+90) − θ (mod 360)
//     metal     reverses the beam: θ' = θ + 180
//     water     reflects like a fixed 45° mirror plus a bounded random
//     diffusion drawn from the injected RNG
//     glass     reflects like a fixed 45° mirror, deterministically, with
//     transparency-scaled intensity loss
//     absorber  terminates the trace at the cell
//     empty     passes the beam through unaffected
//   - Termination, in priority order: absorbed; beam leaves the grid (exit
//     recorded); bounce count reaches MaxBounces (trace marked
//     non-terminated); intensity falls below MinIntensity.
//
// Why:
//
//   - The engine is the single source of physical truth: generation,
//     validation and scoring all consume its RayTrace output.
//
// Determinism:
//
//   - Water diffusion is the only randomized rule; it draws exclusively from
//     Options.Rand, so a fixed seed replays bounce-for-bounce identical traces.
//
// Complexity:
//
//   - Trace: O(N·B) for grid edge N and bounce bound B; memory O(B).
//
// Errors:
//
//   - ErrNilGrid: grid argument is nil.
//   - ErrEntryOutOfBounds: entry cell lies outside the grid.
//   - ErrNotBoundary: EntryHeading called for an interior cell.
package trace
