// Package session owns the per-session analysis state: the before/after
// series slots, the selection controller, and the derived difference curve
// and band metrics.
//
// Each series slot and the range have a single owner; everything downstream
// only reads. Any mutation (series replaced, range moved) triggers a full
// synchronous recomputation from the latest values, so no result is ever
// derived from a stale series/range combination.
package session

import (
	"sync"

	"github.com/google/uuid"

	"github.com/dsheridan/abate/internal/analysis"
	"github.com/dsheridan/abate/internal/chart"
	"github.com/dsheridan/abate/internal/demo"
	"github.com/dsheridan/abate/internal/metrics"
	"github.com/dsheridan/abate/internal/selection"
	"github.com/dsheridan/abate/pkg/models"
)

// Series sources.
const (
	SourceUpload = "upload"
	SourceDemo   = "demo"
)

// DefaultRange is the band a fresh session starts with.
var DefaultRange = models.FrequencyRange{Start: 100, End: 1000}

// DefaultSurfaceWidth is used for pixel conversions until the rendering
// surface reports its real width over the event stream.
const DefaultSurfaceWidth = 800.0

type slotData struct {
	series models.Series
	source string
}

// Session is one analysis workspace. All methods are safe for concurrent use;
// operations on a session serialize on its mutex, which gives the
// single-logical-thread event ordering the interaction model assumes.
type Session struct {
	ID uuid.UUID

	mu        sync.Mutex
	before    slotData
	after     slotData
	ctrl      *selection.Controller
	tolerance float64

	diff    []models.DifferenceSample
	metrics *models.BandMetrics
}

func newSession(toleranceRatio, minSeparationHz float64) *Session {
	return &Session{
		ID:        uuid.New(),
		ctrl:      selection.NewController(DefaultRange, minSeparationHz, DefaultSurfaceWidth),
		tolerance: toleranceRatio,
	}
}

// recompute rebuilds the derived state from the latest series and range.
// Called with the mutex held after every mutation; the difference curve does
// not depend on the range but is rebuilt anyway to keep the rule simple.
func (s *Session) recompute() {
	s.diff = analysis.BuildDifference(s.before.series, s.after.series, s.tolerance)
	s.metrics = analysis.Analyze(s.before.series, s.after.series, s.ctrl.Range())
	metrics.AnalysesComputed.Inc()
}

// SetSeries replaces a slot's series wholesale. An in-flight drag is
// unaffected; it only concerns the range.
func (s *Session) SetSeries(slot models.Slot, series models.Series, source string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := slotData{series: series, source: source}
	if slot == models.SlotAfter {
		s.after = d
	} else {
		s.before = d
	}
	s.recompute()
}

// LoadDemo fills both slots with the synthetic sweep pair.
func (s *Session) LoadDemo() {
	before, after := demo.Generate()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.before = slotData{series: before, source: SourceDemo}
	s.after = slotData{series: after, source: SourceDemo}
	s.recompute()
}

// SetRange commits a direct numeric band entry through the controller's
// validated setter and returns the corrected range with fresh metrics.
func (s *Session) SetRange(start, end float64) (models.FrequencyRange, *models.BandMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	rng := s.ctrl.SetRange(start, end)
	s.recompute()
	return rng, s.metrics
}

// Pointer feeds one pointer or resize event through the selection controller
// and returns the resulting state. Hover readout is only produced for moves
// with no drag active.
func (s *Session) Pointer(ev models.PointerEvent) models.PointerUpdate {
	s.mu.Lock()
	defer s.mu.Unlock()

	var hover *models.HoverReadout
	switch ev.Type {
	case "down":
		s.ctrl.PointerDown(ev.X)
	case "move":
		freq, changed := s.ctrl.PointerMove(ev.X)
		if changed {
			s.recompute()
		}
		if s.ctrl.State() == selection.DragNone {
			hover = s.hoverReadout(freq)
		}
	case "up":
		s.ctrl.PointerUp()
	case "leave":
		s.ctrl.PointerLeave()
	case "resize":
		s.ctrl.Resize(ev.Width)
	}

	return models.PointerUpdate{
		Range:   s.ctrl.Range(),
		Drag:    s.ctrl.State().String(),
		Hover:   hover,
		Metrics: s.metrics,
	}
}

// hoverReadout finds the nearest sample to freq in each loaded series.
// Called with the mutex held.
func (s *Session) hoverReadout(freq float64) *models.HoverReadout {
	h := &models.HoverReadout{Frequency: freq}
	if p, ok := s.before.series.Nearest(freq); ok {
		h.Before = &p
	}
	if p, ok := s.after.series.Nearest(freq); ok {
		h.After = &p
	}
	return h
}

// Snapshot returns a consistent view of the session.
func (s *Session) Snapshot() models.SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return models.SessionState{
		ID:               s.ID.String(),
		Range:            s.ctrl.Range(),
		Drag:             s.ctrl.State().String(),
		Before:           slotInfo(s.before),
		After:            slotInfo(s.after),
		Metrics:          s.metrics,
		DifferencePoints: len(s.diff),
	}
}

// Difference returns the current difference curve.
func (s *Session) Difference() []models.DifferenceSample {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.diff
}

// Metrics returns the current band metrics along with the range they were
// computed for. A nil metrics value means no data in band.
func (s *Session) Metrics() (models.FrequencyRange, *models.BandMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ctrl.Range(), s.metrics
}

// Paths projects the current series and difference curve into pixel space
// for the given surface geometry.
func (s *Session) Paths(width, height, minDB, maxDB float64) models.ChartPaths {
	s.mu.Lock()
	defer s.mu.Unlock()
	rng := s.ctrl.Range()
	return models.ChartPaths{
		Before:     chart.BuildPath(s.before.series, width, height, minDB, maxDB),
		After:      chart.BuildPath(s.after.series, width, height, minDB, maxDB),
		Difference: chart.DifferencePath(s.diff, width, height, minDB, maxDB),
		BandStartX: chart.FreqToX(rng.Start, width),
		BandEndX:   chart.FreqToX(rng.End, width),
	}
}

func slotInfo(d slotData) *models.SlotInfo {
	if len(d.series) == 0 {
		return nil
	}
	return &models.SlotInfo{
		SampleCount: len(d.series),
		FreqMin:     d.series[0].Frequency,
		FreqMax:     d.series[len(d.series)-1].Frequency,
		Source:      d.source,
	}
}
