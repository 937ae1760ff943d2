// Package puzzle orchestrates laser puzzle generation: it drives the
// planner, placement optimizer, ray tracer and validator through an
// attempt loop until a guaranteed-solvable puzzle comes out.
//
// What:
//
//   - Generator.Generate runs Planning → Placing → Simulating → Validating
//     per attempt: plan a reflection path, dress the grid to density,
//     forward-simulate, and grade. An attempt is accepted when the
//     simulated exit equals the planned exit, the validation result is
//     valid, and the realized complexity sits inside the difficulty band.
//   - Failed attempts retry with a fresh plan, up to MaxAttempts. On
//     exhaustion a deterministic single-mirror fallback puzzle ships
//     instead, flagged in Metadata.Fallback; the caller never receives an
//     unsolvable board.
//   - Every random draw derives from one caller-visible seed through
//     per-attempt, per-stage substreams, so a fixed seed reproduces the
//     identical puzzle, water diffusion included.
//   - Entry/exit pairs come from an injected EntrySource (a deterministic
//     boundary table by default). Cache and Recorder are advisory
//     collaborators: generation works identically with both absent.
//   - Score turns a solved puzzle plus solve time and hint count into the
//     play score.
//
// Why:
//
//   - All services are constructor-injected, no package-level singletons:
//     two generations on separate goroutines share nothing, and tests
//     seed every stage.
//
// Errors:
//
//   - ErrBadDifficulty: difficulty outside the enumeration.
//   - ErrNoEntryPairs: the entry source produced nothing usable.
//   - ErrExhausted: even the fallback could not produce a puzzle; with the
//     built-in fallback this indicates a broken collaborator, not bad luck.
package puzzle
