package models

import (
	"math"
	"sort"
	"time"
)

// Sample is a single point of a frequency-response measurement.
type Sample struct {
	Frequency float64 `json:"frequency" doc:"Frequency in Hz"`
	Level     float64 `json:"level" doc:"Sound pressure level in dB"`
}

// Series is an ordered frequency-response measurement, sorted ascending by
// frequency (ties allowed). Produced by the parser or the demo generator and
// treated as immutable afterwards; loading a new export replaces the whole
// value.
type Series []Sample

// Band returns the samples with start <= frequency <= end, both inclusive.
func (s Series) Band(start, end float64) Series {
	lo := sort.Search(len(s), func(i int) bool { return s[i].Frequency >= start })
	hi := sort.Search(len(s), func(i int) bool { return s[i].Frequency > end })
	if lo >= hi {
		return nil
	}
	return s[lo:hi]
}

// Nearest returns the sample closest in frequency to f. ok is false for an
// empty series.
func (s Series) Nearest(f float64) (Sample, bool) {
	if len(s) == 0 {
		return Sample{}, false
	}
	i := sort.Search(len(s), func(i int) bool { return s[i].Frequency >= f })
	if i == len(s) {
		return s[len(s)-1], true
	}
	if i > 0 && math.Abs(s[i-1].Frequency-f) <= math.Abs(s[i].Frequency-f) {
		return s[i-1], true
	}
	return s[i], true
}

// Levels returns the level values in series order.
func (s Series) Levels() []float64 {
	out := make([]float64, len(s))
	for i, p := range s {
		out[i] = p.Level
	}
	return out
}

// FrequencyRange is the user-selected analysis band. Start < End holds at
// every observable instant; all mutation goes through the selection
// controller or its equivalent validated setter.
type FrequencyRange struct {
	Start float64 `json:"start" doc:"Band start in Hz"`
	End   float64 `json:"end" doc:"Band end in Hz"`
}

// Contains reports whether f lies inside the band, inclusive on both ends.
func (r FrequencyRange) Contains(f float64) bool {
	return f >= r.Start && f <= r.End
}

// DifferenceSample is one point of the after-minus-before difference curve.
type DifferenceSample struct {
	Frequency float64 `json:"frequency" doc:"Frequency in Hz"`
	Diff      float64 `json:"diff" doc:"After level minus before level in dB"`
}

// BandMetrics is the outcome of analyzing the selected band. A nil
// *BandMetrics means "no data in band", which callers must keep distinct from
// zero-valued metrics.
type BandMetrics struct {
	AvgBefore        float64 `json:"avg_before" doc:"Mean before-level in the band, dB"`
	AvgAfter         float64 `json:"avg_after" doc:"Mean after-level in the band, dB"`
	DeltaDB          float64 `json:"delta_db" doc:"AvgAfter minus AvgBefore, dB"`
	ReductionPercent float64 `json:"reduction_percent" doc:"Implied acoustic power reduction, percent; negative when the level increased"`
}

// Slot identifies which measurement a series fills.
type Slot string

const (
	SlotBefore Slot = "before"
	SlotAfter  Slot = "after"
)

// Valid reports whether the slot names one of the two measurement positions.
func (s Slot) Valid() bool {
	return s == SlotBefore || s == SlotAfter
}

// Measurement statuses.
const (
	MeasurementPending = "pending"
	MeasurementLoaded  = "loaded"
	MeasurementFailed  = "failed"
)

// Measurement is the persisted record of an uploaded export (internal use).
// Only metadata is persisted; the parsed series lives in the session.
type Measurement struct {
	ID          string     `json:"id"`
	SessionID   string     `json:"session_id"`
	Slot        string     `json:"slot"`
	Status      string     `json:"status"`
	S3Key       *string    `json:"s3_key,omitempty"`
	SampleCount int        `json:"sample_count"`
	FreqMin     *float64   `json:"freq_min,omitempty"`
	FreqMax     *float64   `json:"freq_max,omitempty"`
	ErrorMsg    *string    `json:"error_message,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	LoadedAt    *time.Time `json:"loaded_at,omitempty"`
}
