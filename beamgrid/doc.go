// Package beamgrid defines the shared data model for laser puzzles: cell
// positions, optical materials, the square puzzle grid, and per-difficulty
// configuration.
//
// What:
//
//   - Position is an (x, y) integer pair with value equality.
//   - MaterialType is the closed set {Mirror, Water, Glass, Metal, Absorber, Empty}.
//   - Material binds a MaterialType to a Position, with an angle for mirrors.
//   - Grid is a square N×N arrangement holding at most one Material per cell;
//     it deep-copies on Clone and owns no external state.
//   - Difficulty (Easy, Medium, Hard) maps to a Config: grid size, base score,
//     allowed materials, density target, reflection and complexity bands.
//   - PropertyTable supplies static physical properties (reflectivity,
//     transparency, diffusion, absorption) per material type; the table is
//     injected data, never computed.
//
// Why:
//
//   - Every other package (trace, validate, pathplan, placement, puzzle)
//     speaks in these types; keeping them dependency-free avoids cycles.
//
// Complexity:
//
//   - Grid.Place / Remove / MaterialAt / InBounds: O(1).
//   - Grid.Clone: O(N²).
//
// Errors:
//
//   - ErrBadGridSize: requested size is not one of the supported sizes.
//   - ErrOutOfBounds: a position lies outside the grid.
//   - ErrCellOccupied: a cell already holds a material.
//   - ErrUnknownMaterial: a material type outside the closed set.
//   - ErrUnknownDifficulty: a difficulty outside {Easy, Medium, Hard}.
package beamgrid
