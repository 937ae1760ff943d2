package puzzle

import (
	"math"
	"time"
)

// timeBands maps solve time to the score multiplier, fastest first.
// Slower than the last band earns slowMultiplier.
var timeBands = []struct {
	limit time.Duration
	mult  float64
}{
	{30 * time.Second, 1.5},
	{60 * time.Second, 1.25},
	{2 * time.Minute, 1.0},
}

const (
	slowMultiplier = 0.75
	// hintPenalty compounds per hint consumed.
	hintPenalty = 0.8
)

// Score computes the play score for a solved puzzle: the difficulty's
// base score scaled by the solve-time multiplier and a compounding
// per-hint penalty, rounded to the nearest point.
// Complexity: O(1).
func Score(p *Puzzle, elapsed time.Duration, hints int) int {
	if p == nil {
		return 0
	}
	mult := slowMultiplier
	for _, b := range timeBands {
		if elapsed <= b.limit {
			mult = b.mult
			break
		}
	}
	if hints < 0 {
		hints = 0
	}
	return int(math.Round(float64(p.BaseScore) * mult * math.Pow(hintPenalty, float64(hints))))
}
