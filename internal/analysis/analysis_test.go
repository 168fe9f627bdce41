package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsheridan/abate/pkg/models"
)

func TestBuildDifferenceIdenticalGrids(t *testing.T) {
	before := models.Series{
		{Frequency: 100, Level: 70},
		{Frequency: 200, Level: 68},
		{Frequency: 400, Level: 60},
	}
	after := models.Series{
		{Frequency: 100, Level: 70},
		{Frequency: 200, Level: 55},
		{Frequency: 400, Level: 60},
	}

	diff := BuildDifference(before, after, DefaultToleranceRatio)

	require.Len(t, diff, 3)
	assert.Equal(t, models.DifferenceSample{Frequency: 100, Diff: 0}, diff[0])
	assert.Equal(t, models.DifferenceSample{Frequency: 200, Diff: -13}, diff[1])
	assert.Equal(t, models.DifferenceSample{Frequency: 400, Diff: 0}, diff[2])
}

func TestBuildDifferenceRelativeTolerance(t *testing.T) {
	before := models.Series{{Frequency: 1000, Level: 70}}

	// 5% of 1000 Hz is 50 Hz: 1040 is inside, 1060 is not.
	within := models.Series{{Frequency: 1040, Level: 65}}
	outside := models.Series{{Frequency: 1060, Level: 65}}

	diff := BuildDifference(before, within, 0.05)
	require.Len(t, diff, 1)
	assert.Equal(t, 1000.0, diff[0].Frequency)
	assert.Equal(t, -5.0, diff[0].Diff)

	assert.Empty(t, BuildDifference(before, outside, 0.05))
}

func TestBuildDifferenceToleranceIsExclusive(t *testing.T) {
	before := models.Series{{Frequency: 1000, Level: 70}}
	// Exactly at the tolerance boundary: |1050-1000| == 1000*0.05, excluded.
	boundary := models.Series{{Frequency: 1050, Level: 65}}

	assert.Empty(t, BuildDifference(before, boundary, 0.05))
}

func TestBuildDifferencePicksNearestNeighbor(t *testing.T) {
	before := models.Series{{Frequency: 300, Level: 70}}
	after := models.Series{
		{Frequency: 100, Level: 1},
		{Frequency: 290, Level: 2},
		{Frequency: 500, Level: 3},
	}

	diff := BuildDifference(before, after, 0.1)

	require.Len(t, diff, 1)
	assert.Equal(t, -68.0, diff[0].Diff) // matched against the 290 Hz sample
}

func TestBuildDifferenceCursorNeverBacktracks(t *testing.T) {
	// Interleaved grids: every before sample matches its own neighbor even
	// though the two series never share a frequency.
	before := models.Series{
		{Frequency: 100, Level: 10},
		{Frequency: 200, Level: 20},
		{Frequency: 400, Level: 40},
	}
	after := models.Series{
		{Frequency: 101, Level: 11},
		{Frequency: 198, Level: 19},
		{Frequency: 405, Level: 44},
	}

	diff := BuildDifference(before, after, 0.05)

	require.Len(t, diff, 3)
	assert.Equal(t, 1.0, diff[0].Diff)
	assert.Equal(t, -1.0, diff[1].Diff)
	assert.Equal(t, 4.0, diff[2].Diff)
}

func TestBuildDifferenceEmptyInputs(t *testing.T) {
	s := models.Series{{Frequency: 100, Level: 70}}
	assert.Nil(t, BuildDifference(nil, s, 0.05))
	assert.Nil(t, BuildDifference(s, nil, 0.05))
}

func TestAnalyzeKnownReduction(t *testing.T) {
	before := models.Series{
		{Frequency: 100, Level: 70},
		{Frequency: 200, Level: 70},
	}
	after := models.Series{
		{Frequency: 100, Level: 55},
		{Frequency: 200, Level: 55},
	}

	m := Analyze(before, after, models.FrequencyRange{Start: 50, End: 300})

	require.NotNil(t, m)
	assert.Equal(t, 70.0, m.AvgBefore)
	assert.Equal(t, 55.0, m.AvgAfter)
	assert.Equal(t, -15.0, m.DeltaDB)
	// 10^(-1.5) ~= 0.0316 power ratio.
	assert.InDelta(t, 96.8377, m.ReductionPercent, 1e-3)
}

func TestAnalyzeBandFilterIsInclusive(t *testing.T) {
	before := models.Series{
		{Frequency: 100, Level: 70},
		{Frequency: 200, Level: 68},
		{Frequency: 400, Level: 60},
	}
	after := models.Series{
		{Frequency: 100, Level: 70},
		{Frequency: 200, Level: 55},
		{Frequency: 400, Level: 60},
	}

	// Band edges land exactly on samples; both must be included.
	m := Analyze(before, after, models.FrequencyRange{Start: 200, End: 400})

	require.NotNil(t, m)
	assert.Equal(t, 64.0, m.AvgBefore)
	assert.Equal(t, 57.5, m.AvgAfter)
}

func TestAnalyzeEndToEndScenario(t *testing.T) {
	before := models.Series{
		{Frequency: 100, Level: 70},
		{Frequency: 200, Level: 68},
		{Frequency: 400, Level: 60},
	}
	after := models.Series{
		{Frequency: 100, Level: 70},
		{Frequency: 200, Level: 55},
		{Frequency: 400, Level: 60},
	}

	m := Analyze(before, after, models.FrequencyRange{Start: 150, End: 450})

	require.NotNil(t, m)
	assert.Equal(t, 64.0, m.AvgBefore)
	assert.Equal(t, 57.5, m.AvgAfter)
	assert.Equal(t, -6.5, m.DeltaDB)
	assert.InDelta(t, 77.61, m.ReductionPercent, 1e-2)
}

func TestAnalyzeEmptyBandIsUndefined(t *testing.T) {
	before := models.Series{{Frequency: 100, Level: 70}}
	after := models.Series{{Frequency: 100, Level: 55}}

	// No samples above 5 kHz: undefined, not zero metrics.
	assert.Nil(t, Analyze(before, after, models.FrequencyRange{Start: 5000, End: 10000}))

	// One side empty is just as undefined.
	assert.Nil(t, Analyze(nil, after, models.FrequencyRange{Start: 50, End: 200}))
	assert.Nil(t, Analyze(before, nil, models.FrequencyRange{Start: 50, End: 200}))
}

func TestAnalyzeOutOfDomainRangeYieldsNoMatches(t *testing.T) {
	before := models.Series{{Frequency: 100, Level: 70}}
	after := models.Series{{Frequency: 100, Level: 55}}

	assert.Nil(t, Analyze(before, after, models.FrequencyRange{Start: 30000, End: 40000}))
}

func TestAnalyzeLevelIncreaseGivesNegativeReduction(t *testing.T) {
	before := models.Series{{Frequency: 100, Level: 60}}
	after := models.Series{{Frequency: 100, Level: 63}}

	m := Analyze(before, after, models.FrequencyRange{Start: 50, End: 200})

	require.NotNil(t, m)
	assert.Equal(t, 3.0, m.DeltaDB)
	// Power nearly doubled; the sign must survive, no clamping to zero.
	assert.InDelta(t, -99.526, m.ReductionPercent, 1e-2)
}
