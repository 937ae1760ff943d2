// Package validate checks that a realized puzzle grid obeys its physics
// contract and scores puzzle complexity for difficulty matching.
//
// What:
//
//   - Validator.Validate forward-simulates (grid, entry) with the trace
//     engine and grades the result: exact termination at the expected exit,
//     per-strike reflection accuracy against each material's rule, and
//     segment-chain continuity, folded into a 0–100 confidence score.
//   - Complexity normalizes (reflection count, material diversity, path
//     length) onto a 1–10 scale; InBand checks it against a difficulty's
//     configured band. The planner uses the same normalization so planned
//     and realized scores are comparable.
//
// Why:
//
//   - The generation pipeline promises exactly one correct exit; validation
//     is the gate that turns "planned" into "guaranteed".
//
// Grading rules:
//
//   - A wrong or missing exit is always an error (result invalid).
//   - A bounce-capped simulation is an error, never a crash.
//   - ReflectionAccuracy below 0.9 is surfaced as a warning at minimum.
//   - Warnings never invalidate a result by themselves.
//
// Complexity:
//
//   - Validate: O(S) over trace segments after an O(N·B) simulation.
//
// Errors:
//
//   - Input errors (nil grid, bad entry) propagate from the trace engine;
//     physical failures are reported inside Result, not as Go errors.
package validate
