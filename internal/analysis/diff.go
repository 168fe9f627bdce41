// Package analysis builds difference curves and band metrics from a pair of
// frequency-response measurements.
package analysis

import (
	"math"

	"github.com/dsheridan/abate/pkg/models"
)

// DefaultToleranceRatio is the relative frequency tolerance used for
// nearest-neighbor matching when no override is configured.
const DefaultToleranceRatio = 0.05

// BuildDifference aligns two independently sampled series by nearest-neighbor
// frequency matching and returns the after-minus-before difference curve.
//
// Both inputs must be sorted ascending by frequency (the parser guarantees
// this); the cursor into after never moves backward, so the walk is O(n+m).
// The tolerance is relative to frequency because log-spaced sweeps have wider
// absolute gaps at the high end. A before-sample whose nearest after-sample
// falls outside the tolerance is dropped rather than interpolated.
func BuildDifference(before, after models.Series, toleranceRatio float64) []models.DifferenceSample {
	if len(before) == 0 || len(after) == 0 {
		return nil
	}

	var out []models.DifferenceSample
	j := 0
	for _, b := range before {
		for j+1 < len(after) &&
			math.Abs(after[j+1].Frequency-b.Frequency) < math.Abs(after[j].Frequency-b.Frequency) {
			j++
		}
		if math.Abs(after[j].Frequency-b.Frequency) < b.Frequency*toleranceRatio {
			out = append(out, models.DifferenceSample{
				Frequency: b.Frequency,
				Diff:      after[j].Level - b.Level,
			})
		}
	}
	return out
}
