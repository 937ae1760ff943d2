package puzzle

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/lumivak/beamlab/beamgrid"
	"github.com/lumivak/beamlab/pathplan"
	"github.com/lumivak/beamlab/placement"
	"github.com/lumivak/beamlab/trace"
	"github.com/lumivak/beamlab/validate"
)

// Per-attempt substream identifiers. Each stage draws from its own RNG
// derived from (seed, attempt, stream), so one stage consuming more
// randomness never shifts another stage's sequence.
const (
	streamPair uint64 = iota + 1
	streamPlan
	streamPlace
	streamTrace
)

// defaultMaxAttempts bounds the generate-validate-retry loop.
const defaultMaxAttempts = 10

// Options configures a Generator. The zero value is usable: default
// tracer and entry source, no cache, no recorder, time-based seed.
type Options struct {
	// Tracer simulates beams; nil selects the default property table.
	Tracer *trace.Tracer
	// Entries supplies entry/exit pairs; nil selects BoundaryPairs.
	Entries EntrySource
	// Cache and Recorder are advisory collaborators; nil disables them.
	Cache    Cache
	Recorder Recorder
	// MaxAttempts bounds the retry loop; values < 1 select the default.
	MaxAttempts int
	// Seed drives every random draw. Zero selects a time-based seed, so
	// explicit seeding is what makes generation reproducible.
	Seed int64
}

// DefaultOptions returns the standard generator options.
func DefaultOptions() Options {
	return Options{MaxAttempts: defaultMaxAttempts}
}

// Generator drives the full pipeline. All services are injected at
// construction; a Generator holds no mutable state, so concurrent
// Generate calls need no coordination.
type Generator struct {
	planner   *pathplan.Planner
	optimizer *placement.Optimizer
	validator *validate.Validator
	entries   EntrySource
	cache     Cache
	recorder  Recorder
	attempts  int
	seed      int64
}

// NewGenerator wires a Generator from opts.
func NewGenerator(opts Options) *Generator {
	if opts.Tracer == nil {
		opts.Tracer = trace.NewTracer(nil)
	}
	if opts.Entries == nil {
		opts.Entries = BoundaryPairs{}
	}
	if opts.MaxAttempts < 1 {
		opts.MaxAttempts = defaultMaxAttempts
	}
	return &Generator{
		planner:   pathplan.NewPlanner(),
		optimizer: placement.NewOptimizer(),
		validator: validate.NewValidator(opts.Tracer),
		entries:   opts.Entries,
		cache:     opts.Cache,
		recorder:  opts.Recorder,
		attempts:  opts.MaxAttempts,
		seed:      opts.Seed,
	}
}

// Generate produces one guaranteed-solvable puzzle for diff.
//
// Each attempt runs Planning, Placing, Simulating and Validating with
// fresh substreams; an attempt is accepted when the simulation is valid,
// exits at the planned cell, and scores inside the difficulty's
// complexity band. Any failure along the way abandons the attempt and
// retries with a new plan. When the attempt budget runs out, the
// deterministic fallback puzzle ships instead, flagged in metadata.
func (g *Generator) Generate(diff beamgrid.Difficulty) (*Puzzle, error) {
	cfg, err := beamgrid.ConfigFor(diff)
	if err != nil {
		return nil, fmt.Errorf("%w: %d", ErrBadDifficulty, diff)
	}
	start := time.Now()

	pairs, err := g.entries.Pairs(diff)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoEntryPairs, err)
	}
	if len(pairs) == 0 {
		return nil, ErrNoEntryPairs
	}
	if g.cache != nil {
		// A cache hit is only a hint: prepend it so the pair draw can
		// still land anywhere in the table.
		if hit, ok := g.cache.Lookup(diff); ok {
			pairs = append([]EntryPair{hit}, pairs...)
		}
	}

	seed := g.seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	for attempt := 1; attempt <= g.attempts; attempt++ {
		aseed := pathplan.DeriveSeed(seed, uint64(attempt))
		if p := g.tryOnce(diff, cfg, pairs, aseed, attempt, start); p != nil {
			if g.cache != nil {
				g.cache.Store(diff, EntryPair{Entry: p.Entry, Exit: p.Exit})
			}
			if g.recorder != nil {
				g.recorder.Record(diff, p.Metadata)
			}
			return p, nil
		}
	}

	p, ferr := g.fallbackPuzzle(diff, cfg, start)
	if ferr != nil {
		return nil, fmt.Errorf("%w: %v", ErrExhausted, ferr)
	}
	if g.recorder != nil {
		g.recorder.Record(diff, p.Metadata)
	}
	return p, nil
}

// tryOnce runs a single generation attempt; nil means retry.
func (g *Generator) tryOnce(diff beamgrid.Difficulty, cfg beamgrid.Config, pairs []EntryPair, aseed int64, attempt int, start time.Time) *Puzzle {
	pairRNG := pathplan.RNGFromSeed(pathplan.DeriveSeed(aseed, streamPair))
	pair := pairs[pairRNG.Intn(len(pairs))]

	plan, err := g.planner.Plan(pair.Entry, pair.Exit, diff,
		pathplan.RNGFromSeed(pathplan.DeriveSeed(aseed, streamPlan)))
	if err != nil {
		return nil
	}

	materials, shortfall, err := g.optimizer.Place(plan, cfg.GridSize,
		pathplan.RNGFromSeed(pathplan.DeriveSeed(aseed, streamPlace)))
	if err != nil {
		return nil
	}

	grid, err := beamgrid.NewGrid(cfg.GridSize)
	if err != nil {
		return nil
	}
	for _, m := range materials {
		if err = grid.Place(m); err != nil {
			return nil
		}
	}

	res, err := g.validator.Validate(grid, pair.Entry, pair.Exit, trace.Options{
		Rand: pathplan.RNGFromSeed(pathplan.DeriveSeed(aseed, streamTrace)),
	})
	if err != nil || !res.Valid {
		return nil
	}
	cx := validate.ComplexityOf(res.Trace)
	if !validate.InBand(cx, cfg) {
		return nil
	}

	return &Puzzle{
		ID:           uuid.New(),
		Difficulty:   diff,
		Grid:         grid,
		Entry:        pair.Entry,
		Exit:         pair.Exit,
		DirectionDeg: plan.EntryHeadingDeg,
		Solution:     res.Trace,
		Complexity:   cx,
		BaseScore:    cfg.BaseScore,
		Metadata: Metadata{
			Attempts:   attempt,
			Duration:   time.Since(start),
			Confidence: res.Confidence,
			Warnings:   shortfall,
		},
	}
}
