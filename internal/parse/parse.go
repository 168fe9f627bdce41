// Package parse turns raw measurement exports into ordered sample series.
//
// The export format is loosely specified: one sample per line, fields
// separated by runs of commas and/or whitespace, at least two numeric fields
// (frequency in Hz, level in dB; a trailing phase field is tolerated and
// ignored), comment lines beginning with '*' or '#'.
package parse

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"github.com/dsheridan/abate/pkg/models"
)

// Parse converts a raw export into a Series. Malformed lines are skipped
// silently; Parse never fails, a file with no usable lines yields an empty
// series. The result is sorted ascending by frequency (stable on ties).
func Parse(text string) models.Series {
	var samples models.Series
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		c := line[0]
		if c == '*' || c == '#' {
			continue
		}
		// Measurement lines start with a number; anything else is a header.
		// A header row that itself starts with a digit is misparsed, which is
		// a known limitation of the format.
		if !numericStart(c) {
			continue
		}
		fields := strings.FieldsFunc(line, func(r rune) bool {
			return r == ',' || unicode.IsSpace(r)
		})
		if len(fields) < 2 {
			continue
		}
		freq, err := strconv.ParseFloat(fields[0], 64)
		if err != nil || !finite(freq) || freq <= 0 {
			continue
		}
		level, err := strconv.ParseFloat(fields[1], 64)
		if err != nil || !finite(level) {
			continue
		}
		samples = append(samples, models.Sample{Frequency: freq, Level: level})
	}

	sort.SliceStable(samples, func(i, j int) bool {
		return samples[i].Frequency < samples[j].Frequency
	})

	return samples
}

func numericStart(c byte) bool {
	return (c >= '0' && c <= '9') || c == '-' || c == '+' || c == '.'
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
