package selection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsheridan/abate/internal/chart"
	"github.com/dsheridan/abate/pkg/models"
)

const width = 800.0

func newTestController() *Controller {
	return NewController(models.FrequencyRange{Start: 100, End: 1000}, 5, width)
}

func TestPointerDownGrabsHandles(t *testing.T) {
	c := newTestController()

	startX := chart.FreqToX(100, width)
	endX := chart.FreqToX(1000, width)

	assert.Equal(t, DraggingStart, c.PointerDown(startX))
	c.PointerUp()
	assert.Equal(t, DraggingEnd, c.PointerDown(endX))
	c.PointerUp()

	// Inside the hit slop still grabs.
	assert.Equal(t, DraggingStart, c.PointerDown(startX+handleHitSlop))
	c.PointerUp()

	// Outside the slop grabs nothing.
	assert.Equal(t, DragNone, c.PointerDown(startX+handleHitSlop+1))
}

func TestDragStartClampsAgainstEnd(t *testing.T) {
	c := newTestController()
	c.PointerDown(chart.FreqToX(100, width))
	require.Equal(t, DraggingStart, c.State())

	// Drag far past the end handle: start pins to exactly end - minSep.
	c.PointerMove(chart.FreqToX(5000, width))

	rng := c.Range()
	assert.Equal(t, 995.0, rng.Start)
	assert.Equal(t, 1000.0, rng.End)
	assert.Less(t, rng.Start, rng.End)
}

func TestDragEndClampsAgainstStart(t *testing.T) {
	c := newTestController()
	c.PointerDown(chart.FreqToX(1000, width))
	require.Equal(t, DraggingEnd, c.State())

	c.PointerMove(chart.FreqToX(30, width))

	rng := c.Range()
	assert.Equal(t, 105.0, rng.End)
	assert.Equal(t, 100.0, rng.Start)
}

func TestDragMovesFreely(t *testing.T) {
	c := newTestController()
	c.PointerDown(chart.FreqToX(1000, width))

	c.PointerMove(chart.FreqToX(4000, width))

	assert.InEpsilon(t, 4000, c.Range().End, 1e-6)
}

func TestPointerUpAndLeaveEndDrag(t *testing.T) {
	c := newTestController()

	c.PointerDown(chart.FreqToX(100, width))
	c.PointerUp()
	assert.Equal(t, DragNone, c.State())

	c.PointerDown(chart.FreqToX(100, width))
	c.PointerLeave()
	assert.Equal(t, DragNone, c.State())
}

func TestMoveWithoutDragLeavesRangeAlone(t *testing.T) {
	c := newTestController()
	before := c.Range()

	freq, changed := c.PointerMove(width / 2)

	assert.False(t, changed)
	assert.Equal(t, before, c.Range())
	assert.InEpsilon(t, chart.XToFreq(width/2, width), freq, 1e-12)
}

func TestPointerMoveClampsSurfaceInput(t *testing.T) {
	c := newTestController()

	freq, _ := c.PointerMove(-50)
	assert.InEpsilon(t, chart.FreqMin, freq, 1e-9)

	freq, _ = c.PointerMove(width + 50)
	assert.InEpsilon(t, chart.FreqMax, freq, 1e-9)
}

func TestAdversarialDragSequencesKeepInvariant(t *testing.T) {
	c := newTestController()

	// Repeatedly grab each handle and shove it across the other.
	sequences := [][]float64{
		{0, width, width / 2, width, 0},
		{width, 0, width, 0, width / 2},
		{width / 2, width/2 + 1, width/2 - 1, width, width},
	}

	for _, seq := range sequences {
		for _, grab := range []float64{chart.FreqToX(c.Range().Start, width), chart.FreqToX(c.Range().End, width)} {
			c.PointerDown(grab)
			for _, x := range seq {
				c.PointerMove(x)
				rng := c.Range()
				require.Less(t, rng.Start, rng.End, "invariant violated at x=%v", x)
			}
			c.PointerUp()
		}
	}
}

func TestSetRangeReordersAndSeparates(t *testing.T) {
	c := newTestController()

	// Swapped edges come back ordered.
	rng := c.SetRange(2000, 100)
	assert.Equal(t, models.FrequencyRange{Start: 100, End: 2000}, rng)

	// A too-narrow window widens by pushing the end up.
	rng = c.SetRange(500, 502)
	assert.Equal(t, models.FrequencyRange{Start: 500, End: 505}, rng)

	// At the top of the domain the start is pulled down instead.
	rng = c.SetRange(19999, 20000)
	assert.Equal(t, models.FrequencyRange{Start: 19995, End: 20000}, rng)

	// Equal edges are a degenerate window, same correction applies.
	rng = c.SetRange(440, 440)
	assert.Equal(t, models.FrequencyRange{Start: 440, End: 445}, rng)
}

func TestSetRangeDuringDragKeepsInvariant(t *testing.T) {
	c := newTestController()
	c.PointerDown(chart.FreqToX(100, width))

	c.SetRange(300, 200)
	rng := c.Range()
	assert.Less(t, rng.Start, rng.End)

	// The drag is still live and still clamps against the new opposite edge.
	c.PointerMove(width)
	rng = c.Range()
	assert.Equal(t, rng.End-5, rng.Start)
}

func TestResizeIgnoresDegenerateWidth(t *testing.T) {
	c := newTestController()
	c.Resize(0)
	c.Resize(-10)

	// Mapping still works against the original width.
	assert.Equal(t, DraggingStart, c.PointerDown(chart.FreqToX(100, width)))
}

func TestDragStateStrings(t *testing.T) {
	assert.Equal(t, "none", DragNone.String())
	assert.Equal(t, "dragging_start", DraggingStart.String())
	assert.Equal(t, "dragging_end", DraggingEnd.String())
}
