package validate

import (
	"github.com/lumivak/beamlab/beamgrid"
	"github.com/lumivak/beamlab/trace"
)

// Complexity normalization weights. Reflections dominate; diversity and
// raw path length refine the score.
const (
	complexityBase       = 1.0
	weightReflections    = 0.8
	weightDiversity      = 0.5
	weightPathLength     = 0.1
	complexityScaleFloor = 1.0
	complexityScaleCeil  = 10.0
)

// Complexity normalizes a puzzle's structural features onto the shared
// 1–10 scale: reflection count, distinct material kinds along the path,
// and total Manhattan path length.
// Complexity: O(1).
func Complexity(reflections, diversity, pathLen int) float64 {
	score := complexityBase +
		weightReflections*float64(reflections) +
		weightDiversity*float64(diversity) +
		weightPathLength*float64(pathLen)
	if score < complexityScaleFloor {
		return complexityScaleFloor
	}
	if score > complexityScaleCeil {
		return complexityScaleCeil
	}
	return score
}

// ComplexityOf scores an actual simulated trace: bounces as reflections,
// distinct struck material types as diversity, and the summed Manhattan
// length of all segments as path length.
// Complexity: O(S) over segments.
func ComplexityOf(tr trace.RayTrace) float64 {
	kinds := make(map[beamgrid.MaterialType]bool)
	pathLen := 0
	for _, seg := range tr.Segments {
		pathLen += seg.Start.Manhattan(seg.End)
		if seg.Struck != nil {
			kinds[seg.Struck.Type] = true
		}
	}
	return Complexity(tr.Bounces, len(kinds), pathLen)
}

// InBand reports whether score falls inside the difficulty's configured
// [MinComplexity, MaxComplexity] band, inclusive.
// Complexity: O(1).
func InBand(score float64, cfg beamgrid.Config) bool {
	return score >= cfg.MinComplexity && score <= cfg.MaxComplexity
}
