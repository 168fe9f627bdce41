package analysis

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/dsheridan/abate/pkg/models"
)

// Analyze computes band metrics for the selected range. A nil result means at
// least one series has no samples inside the band; callers must treat that as
// "no data in band", never as zero. Out-of-domain ranges simply yield nil.
//
// Levels are averaged arithmetically rather than power-summed: the number
// shown should mirror the visual level on the chart, trading strict energy
// accuracy for interpretability.
func Analyze(before, after models.Series, rng models.FrequencyRange) *models.BandMetrics {
	b := before.Band(rng.Start, rng.End)
	a := after.Band(rng.Start, rng.End)
	if len(b) == 0 || len(a) == 0 {
		return nil
	}

	avgBefore := stat.Mean(b.Levels(), nil)
	avgAfter := stat.Mean(a.Levels(), nil)
	delta := avgAfter - avgBefore

	// 10*log10(powerRatio) = deltaDb. A positive delta means the level went
	// up and the reduction comes out negative; the sign is preserved.
	powerRatio := math.Pow(10, delta/10)

	return &models.BandMetrics{
		AvgBefore:        avgBefore,
		AvgAfter:         avgAfter,
		DeltaDB:          delta,
		ReductionPercent: (1 - powerRatio) * 100,
	}
}
