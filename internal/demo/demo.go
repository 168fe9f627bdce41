// Package demo produces synthetic before/after sweeps for sessions that have
// no measurement data loaded. The output honors the same Series contract as
// the parser: positive frequencies, sorted ascending.
package demo

import (
	"math"

	"github.com/dsheridan/abate/pkg/models"
)

const points = 240

// Generate returns a synthetic measurement pair: a gently tilted room
// response with some ripple, and the same response with a treatment notch
// around 500 Hz. Deterministic, so snapshots and tests are stable.
func Generate() (before, after models.Series) {
	logMin := math.Log10(20.0)
	logMax := math.Log10(20000.0)

	before = make(models.Series, 0, points)
	after = make(models.Series, 0, points)

	for i := 0; i < points; i++ {
		f := math.Pow(10, logMin+(logMax-logMin)*float64(i)/float64(points-1))

		// Downward tilt with mild periodic ripple, roughly what an untreated
		// small room measures.
		level := 78 - 6*math.Log10(f/20) + 2.5*math.Sin(5*math.Log10(f))

		// Treatment dip: ~12 dB deep, centered at 500 Hz, Gaussian in
		// log-frequency.
		lf := math.Log10(f / 500)
		atten := 12 * math.Exp(-lf*lf/0.08)

		before = append(before, models.Sample{Frequency: f, Level: level})
		after = append(after, models.Sample{Frequency: f, Level: level - atten})
	}
	return before, after
}
