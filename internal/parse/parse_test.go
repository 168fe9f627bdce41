package parse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dsheridan/abate/pkg/models"
)

func TestParseBasicLine(t *testing.T) {
	series := Parse("* header\n20.00, 65.4, 0.0\n")

	require.Len(t, series, 1)
	assert.Equal(t, 20.0, series[0].Frequency)
	assert.Equal(t, 65.4, series[0].Level)
}

func TestParseSkipsMalformedLines(t *testing.T) {
	tests := []struct {
		name string
		text string
		want int
	}{
		{"non-numeric frequency", "abc, 65.4", 0},
		{"non-numeric level", "20.00 xyz", 0},
		{"single field", "20.00", 0},
		{"zero frequency", "0, 65.4", 0},
		{"negative frequency", "-100, 65.4", 0},
		{"comment star", "* Frequency Level", 0},
		{"comment hash", "# exported by measurement rig", 0},
		{"blank lines only", "\n\n   \n", 0},
		{"header without comment marker", "Freq(Hz)\tSPL(dB)", 0},
		{"good line among bad", "junk\n100 70.5\nmore junk", 1},
		{"negative level accepted", "100, -12.5", 1},
		{"trailing phase field ignored", "100, 70.5, 174.2", 1},
		{"infinite level rejected", "100, inf", 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Len(t, Parse(tt.text), tt.want)
		})
	}
}

func TestParseCommentOnlyFileIsEmptyNotError(t *testing.T) {
	series := Parse("* one\n* two\n# three\n")
	assert.Empty(t, series)
}

func TestParseMixedDelimiters(t *testing.T) {
	// Commas, tabs, spaces and runs of both all delimit fields.
	series := Parse("20,65.4\n25\t66.0\n31.5   66.6\n40 ,\t 67.1\n")

	require.Len(t, series, 4)
	assert.Equal(t, 25.0, series[1].Frequency)
	assert.Equal(t, 67.1, series[3].Level)
}

func TestParseSortsByFrequency(t *testing.T) {
	series := Parse("400 60\n100 70\n200 68\n")

	require.Len(t, series, 3)
	want := models.Series{
		{Frequency: 100, Level: 70},
		{Frequency: 200, Level: 68},
		{Frequency: 400, Level: 60},
	}
	assert.Equal(t, want, series)
}

func TestParseStableOnTies(t *testing.T) {
	series := Parse("100 1\n100 2\n50 0\n100 3\n")

	require.Len(t, series, 4)
	assert.Equal(t, 50.0, series[0].Frequency)
	// Equal frequencies keep their input order.
	assert.Equal(t, []float64{0, 1, 2, 3}, series.Levels())
}

func TestParseCRLFInput(t *testing.T) {
	series := Parse("100 70\r\n200 68\r\n")

	require.Len(t, series, 2)
	assert.Equal(t, 200.0, series[1].Frequency)
}
