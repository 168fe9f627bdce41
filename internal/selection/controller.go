// Package selection implements the band-edge drag state machine.
//
// A controller owns the analysis FrequencyRange and the transient drag state.
// Pointer events arrive in surface pixels; the controller converts them to
// frequencies through the chart mapper and enforces the ordering invariant:
// range.Start < range.End at every observable instant, with a minimum
// separation so the handles can never cross or coincide.
package selection

import (
	"math"

	"github.com/dsheridan/abate/internal/chart"
	"github.com/dsheridan/abate/pkg/models"
)

// DragState is the controller's interaction state.
type DragState int

const (
	DragNone DragState = iota
	DraggingStart
	DraggingEnd
)

func (d DragState) String() string {
	switch d {
	case DraggingStart:
		return "dragging_start"
	case DraggingEnd:
		return "dragging_end"
	default:
		return "none"
	}
}

// DefaultMinSeparationHz keeps the two handles a small fixed distance apart.
const DefaultMinSeparationHz = 5.0

// handleHitSlop is the pixel distance within which a pointer-down grabs a
// handle.
const handleHitSlop = 8.0

// Controller tracks the selected band and the active drag, if any.
type Controller struct {
	rng    models.FrequencyRange
	state  DragState
	width  float64
	minSep float64
}

// NewController builds a controller with the surface width in pixels. The
// initial range passes through the same correction as SetRange.
func NewController(initial models.FrequencyRange, minSeparationHz, width float64) *Controller {
	if minSeparationHz <= 0 {
		minSeparationHz = DefaultMinSeparationHz
	}
	c := &Controller{minSep: minSeparationHz, width: width}
	c.SetRange(initial.Start, initial.End)
	return c
}

// Range returns the committed band.
func (c *Controller) Range() models.FrequencyRange { return c.rng }

// State returns the current drag state.
func (c *Controller) State() DragState { return c.state }

// Resize updates the surface width used for pixel conversions. An in-flight
// drag keeps going; only the mapping changes.
func (c *Controller) Resize(width float64) {
	if width > 0 {
		c.width = width
	}
}

// PointerDown grabs the start or end handle when x falls within the hit slop.
// When both handles are in reach the nearer one wins. Returns the resulting
// drag state.
func (c *Controller) PointerDown(x float64) DragState {
	sx := chart.FreqToX(c.rng.Start, c.width)
	ex := chart.FreqToX(c.rng.End, c.width)
	ds := math.Abs(x - sx)
	de := math.Abs(x - ex)
	switch {
	case ds <= handleHitSlop && ds <= de:
		c.state = DraggingStart
	case de <= handleHitSlop:
		c.state = DraggingEnd
	}
	return c.state
}

// PointerMove advances an active drag, clamping the dragged edge against the
// opposite one so the handles keep their minimum separation. With no drag
// active the range is untouched. The returned frequency is the pointer
// position in Hz (the hover side channel) and reports whether the range
// changed.
func (c *Controller) PointerMove(x float64) (freq float64, changed bool) {
	if x < 0 {
		x = 0
	}
	if x > c.width {
		x = c.width
	}
	freq = chart.XToFreq(x, c.width)

	switch c.state {
	case DraggingStart:
		start := math.Min(freq, c.rng.End-c.minSep)
		changed = start != c.rng.Start
		c.rng.Start = start
	case DraggingEnd:
		end := math.Max(freq, c.rng.Start+c.minSep)
		changed = end != c.rng.End
		c.rng.End = end
	}
	return freq, changed
}

// PointerUp ends any active drag.
func (c *Controller) PointerUp() { c.state = DragNone }

// PointerLeave ends any active drag when the pointer leaves the surface.
func (c *Controller) PointerLeave() { c.state = DragNone }

// SetRange commits a direct numeric entry. It bypasses the drag states but
// applies the same ordering and separation invariant before committing: the
// edges are reordered if needed, and a window narrower than the minimum
// separation is widened by pushing the end up, or the start down at the top
// of the plot domain.
func (c *Controller) SetRange(start, end float64) models.FrequencyRange {
	if start > end {
		start, end = end, start
	}
	if end-start < c.minSep {
		end = start + c.minSep
		if end > chart.FreqMax {
			end = chart.FreqMax
			start = end - c.minSep
		}
	}
	c.rng = models.FrequencyRange{Start: start, End: end}
	return c.rng
}
