package puzzle_test

import (
	"testing"
	"time"

	"github.com/lumivak/beamlab/puzzle"
)

func TestScore(t *testing.T) {
	p := &puzzle.Puzzle{BaseScore: 100}

	tests := []struct {
		name    string
		p       *puzzle.Puzzle
		elapsed time.Duration
		hints   int
		want    int
	}{
		{"fast solve", p, 20 * time.Second, 0, 150},
		{"band edge inclusive", p, 30 * time.Second, 0, 150},
		{"brisk solve", p, 45 * time.Second, 0, 125},
		{"steady solve", p, 90 * time.Second, 0, 100},
		{"slow solve", p, 10 * time.Minute, 0, 75},
		{"one hint", p, 20 * time.Second, 1, 120},
		{"two hints compound", p, 20 * time.Second, 2, 96},
		{"negative hints ignored", p, 20 * time.Second, -3, 150},
		{"nil puzzle", nil, time.Second, 0, 0},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := puzzle.Score(tc.p, tc.elapsed, tc.hints); got != tc.want {
				t.Errorf("Score(%v, %d) = %d; want %d", tc.elapsed, tc.hints, got, tc.want)
			}
		})
	}
}
