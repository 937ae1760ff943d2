// Package puzzle output types, collaborator interfaces and sentinel errors.
package puzzle

import (
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/lumivak/beamlab/beamgrid"
	"github.com/lumivak/beamlab/trace"
)

// Sentinel errors for generation.
var (
	// ErrBadDifficulty indicates a difficulty outside the enumeration.
	ErrBadDifficulty = errors.New("puzzle: unknown difficulty")
	// ErrNoEntryPairs indicates the entry source yielded no usable pairs.
	ErrNoEntryPairs = errors.New("puzzle: entry source produced no pairs")
	// ErrExhausted indicates every strategy failed, fallback included.
	ErrExhausted = errors.New("puzzle: all generation strategies exhausted")
)

// Puzzle is one finished, guaranteed-solvable board. Immutable once
// produced; solving state lives with the caller.
type Puzzle struct {
	// ID uniquely identifies this puzzle instance.
	ID uuid.UUID
	// Difficulty the puzzle was generated for.
	Difficulty beamgrid.Difficulty
	// Grid holds the full material layout.
	Grid *beamgrid.Grid
	// Entry and Exit are the boundary cells of the intended path.
	Entry, Exit beamgrid.Position
	// DirectionDeg is the beam's inward heading at Entry.
	DirectionDeg float64
	// Solution is the validated forward simulation from Entry to Exit.
	Solution trace.RayTrace
	// Complexity is the realized score on the shared 1–10 scale.
	Complexity float64
	// BaseScore is the difficulty's pre-multiplier score.
	BaseScore int
	// Metadata carries generation bookkeeping.
	Metadata Metadata
}

// Metadata is generation bookkeeping, an output artifact for analytics.
// Not part of the physics core.
type Metadata struct {
	// Attempts counts generation attempts consumed, fallback included.
	Attempts int
	// Duration is wall-clock generation time.
	Duration time.Duration
	// Confidence is the accepted validation confidence, 0–100.
	Confidence float64
	// Fallback is true when the attempt budget ran out and the
	// known-good generator produced this puzzle instead.
	Fallback bool
	// Warnings counts soft defects, currently the supporting-material
	// density shortfall.
	Warnings int
}

// EntryPair is one admissible boundary entry/exit combination.
type EntryPair struct {
	Entry, Exit beamgrid.Position
}

// EntrySource supplies admissible entry/exit pairs per difficulty. The
// policy of which boundary cells make legal entries lives behind this
// interface, not in the core.
type EntrySource interface {
	Pairs(diff beamgrid.Difficulty) ([]EntryPair, error)
}

// Cache is an optional advisory store of previously validated pairs.
// The generator consults it as a hint and works identically without it;
// correctness never depends on a hit.
type Cache interface {
	// Lookup returns a known-good pair for diff, if any.
	Lookup(diff beamgrid.Difficulty) (EntryPair, bool)
	// Store records a pair that just produced an accepted puzzle.
	Store(diff beamgrid.Difficulty, pair EntryPair)
}

// Recorder is an optional metrics sink for generation outcomes.
type Recorder interface {
	Record(diff beamgrid.Difficulty, meta Metadata)
}
