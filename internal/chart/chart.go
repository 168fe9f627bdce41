// Package chart maps domain values (Hz, dB) onto a plotting surface.
//
// The frequency axis is logarithmic over the fixed audible domain
// [FreqMin, FreqMax]; the level axis is linear over a caller-supplied dB
// window. All transforms are pure and each pair is an exact inverse up to
// floating-point rounding. Degenerate geometry (width <= 0, maxDB <= minDB)
// is a configuration error on the caller's side, not a runtime contract here.
package chart

import (
	"math"

	"github.com/dsheridan/abate/pkg/models"
)

// Supported plotting domain in Hz.
const (
	FreqMin = 20.0
	FreqMax = 20000.0
)

// FreqToX maps a frequency onto [0, width]. Input below FreqMin is clamped
// up; the reverse transform does no clamping.
func FreqToX(f, width float64) float64 {
	if f < FreqMin {
		f = FreqMin
	}
	return (math.Log10(f) - math.Log10(FreqMin)) /
		(math.Log10(FreqMax) - math.Log10(FreqMin)) * width
}

// XToFreq is the exact inverse of FreqToX. Callers clamp x into [0, width]
// first when they need a domain-safe frequency.
func XToFreq(x, width float64) float64 {
	span := math.Log10(FreqMax) - math.Log10(FreqMin)
	return math.Pow(10, x/width*span+math.Log10(FreqMin))
}

// DBToY maps a level onto [0, height] with the top edge at maxDB.
func DBToY(v, height, minDB, maxDB float64) float64 {
	return height - (v-minDB)/(maxDB-minDB)*height
}

// YToDB is the exact inverse of DBToY.
func YToDB(y, height, minDB, maxDB float64) float64 {
	return (height-y)/height*(maxDB-minDB) + minDB
}

// BuildPath projects a series into pixel space for the rendering surface.
func BuildPath(s models.Series, width, height, minDB, maxDB float64) []models.PathPoint {
	if len(s) == 0 {
		return nil
	}
	path := make([]models.PathPoint, len(s))
	for i, p := range s {
		path[i] = models.PathPoint{
			X: FreqToX(p.Frequency, width),
			Y: DBToY(p.Level, height, minDB, maxDB),
		}
	}
	return path
}

// DifferencePath projects a difference curve into pixel space using the same
// dB window as the level paths.
func DifferencePath(d []models.DifferenceSample, width, height, minDB, maxDB float64) []models.PathPoint {
	if len(d) == 0 {
		return nil
	}
	path := make([]models.PathPoint, len(d))
	for i, p := range d {
		path[i] = models.PathPoint{
			X: FreqToX(p.Frequency, width),
			Y: DBToY(p.Diff, height, minDB, maxDB),
		}
	}
	return path
}
