package beamgrid

// Difficulty labels the target puzzle generation and grading tier.
type Difficulty int

const (
	// Easy produces 6×6 grids with mirrors and metal only.
	Easy Difficulty = iota
	// Medium produces 8×8 grids adding glass.
	Medium
	// Hard produces 10×10 grids with the full material set.
	Hard
)

// difficultyNames maps Difficulty to its canonical name.
var difficultyNames = map[Difficulty]string{
	Easy:   "easy",
	Medium: "medium",
	Hard:   "hard",
}

// String returns the canonical lowercase name of the difficulty.
func (d Difficulty) String() string {
	if s, ok := difficultyNames[d]; ok {
		return s
	}
	return "unknown"
}

// Valid reports whether d belongs to {Easy, Medium, Hard}.
func (d Difficulty) Valid() bool {
	_, ok := difficultyNames[d]
	return ok
}

// Config is the static per-difficulty generation configuration: supplied
// data the pipeline consumes, never derived by the core itself.
type Config struct {
	// GridSize is the edge length N of the square grid.
	GridSize int
	// BaseScore is the pre-multiplier score awarded for solving the puzzle.
	BaseScore int
	// AllowedMaterials is the subset placeable at this difficulty.
	AllowedMaterials []MaterialType
	// MaterialDensity is the target fraction of occupied cells, in (0,1).
	MaterialDensity float64
	// MinReflections / MaxReflections bound the planned reflection count.
	MinReflections int
	MaxReflections int
	// MinComplexity / MaxComplexity bound accepted puzzle complexity (1–10 scale).
	MinComplexity float64
	MaxComplexity float64
}

// Allows reports whether t may be placed at this difficulty.
// Complexity: O(len(AllowedMaterials)).
func (c Config) Allows(t MaterialType) bool {
	for _, a := range c.AllowedMaterials {
		if a == t {
			return true
		}
	}
	return false
}

// configs is the static difficulty table. Densities and bands follow the
// grid sizes: larger grids carry proportionally more material and wider
// complexity headroom.
var configs = map[Difficulty]Config{
	Easy: {
		GridSize:         6,
		BaseScore:        100,
		AllowedMaterials: []MaterialType{Mirror, Metal},
		MaterialDensity:  0.15,
		MinReflections:   1,
		MaxReflections:   3,
		MinComplexity:    1,
		MaxComplexity:    6,
	},
	Medium: {
		GridSize:         8,
		BaseScore:        250,
		AllowedMaterials: []MaterialType{Mirror, Glass, Metal},
		MaterialDensity:  0.20,
		MinReflections:   2,
		MaxReflections:   4,
		MinComplexity:    3,
		MaxComplexity:    8,
	},
	Hard: {
		GridSize:         10,
		BaseScore:        500,
		AllowedMaterials: []MaterialType{Mirror, Water, Glass, Metal, Absorber},
		MaterialDensity:  0.25,
		MinReflections:   3,
		MaxReflections:   6,
		MinComplexity:    5,
		MaxComplexity:    10,
	},
}

// ConfigFor returns the static configuration for d.
// Returns ErrUnknownDifficulty for values outside the enumeration.
// The returned Config is a value copy; AllowedMaterials is re-sliced fresh
// so callers cannot mutate the shared table.
// Complexity: O(1).
func ConfigFor(d Difficulty) (Config, error) {
	c, ok := configs[d]
	if !ok {
		return Config{}, ErrUnknownDifficulty
	}
	allowed := make([]MaterialType, len(c.AllowedMaterials))
	copy(allowed, c.AllowedMaterials)
	c.AllowedMaterials = allowed
	return c, nil
}
