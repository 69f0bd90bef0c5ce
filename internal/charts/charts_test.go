package charts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/go-gota/gota/series"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/plot/vg"

	"berkotech.co/loaneda/internal/dataset"
)

var pngMagic = []byte("\x89PNG\r\n\x1a\n")

var smallSize = Size{Width: 8 * vg.Centimeter, Height: 6 * vg.Centimeter}

func gender() dataset.ColumnSummary {
	return dataset.ColumnSummary{
		Column: "Gender",
		Entries: []dataset.Entry{
			{Value: "Male", Count: 4},
			{Value: "Female", Count: 2},
			{Value: dataset.MissingLabel, Count: 1, Missing: true},
		},
	}
}

func assertPNG(t *testing.T, path string) {
	t.Helper()
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Greater(t, len(b), len(pngMagic))
	assert.True(t, bytes.HasPrefix(b, pngMagic), "%s is not a PNG", path)
}

func TestFileRenderer_WritesInOrder(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	r, err := NewFileRenderer(dir, "", smallSize)
	require.NoError(t, err)
	assert.Equal(t, "png", r.Format)

	bar, err := r.Bar(gender())
	require.NoError(t, err)
	pie, err := r.Pie(gender(), "Marital Status Distribution")
	require.NoError(t, err)
	thr, err := r.Threshold(dataset.ThresholdSplit{Column: "ApplicantIncome", Mean: 10, Above: 4, BelowOrEqual: 3}, "Income")
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "01_Gender_bar.png"), bar)
	assert.Equal(t, filepath.Join(dir, "02_Gender_pie.png"), pie)
	assert.Equal(t, filepath.Join(dir, "03_ApplicantIncome_threshold.png"), thr)
	for _, p := range []string{bar, pie, thr} {
		assertPNG(t, p)
	}
}

func TestFileRenderer_SVG(t *testing.T) {
	r, err := NewFileRenderer(t.TempDir(), "svg", smallSize)
	require.NoError(t, err)

	path, err := r.Pie(gender(), "Gender")
	require.NoError(t, err)
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")
}

func TestFileRenderer_Empty(t *testing.T) {
	r, err := NewFileRenderer(t.TempDir(), "png", smallSize)
	require.NoError(t, err)

	empty := dataset.ColumnSummary{Column: "Gender"}
	_, err = r.Bar(empty)
	assert.ErrorIs(t, err, ErrNoData)
	_, err = r.Pie(empty, "x")
	assert.ErrorIs(t, err, ErrNoData)
	_, err = r.Threshold(dataset.ThresholdSplit{Column: "ApplicantIncome"}, "x")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestPieChart_Labels(t *testing.T) {
	pie, err := PieChart(gender(), "Gender", DefaultSize)
	require.NoError(t, err)

	require.Len(t, pie.Values, 3)
	assert.Equal(t, "Male 57.1%", pie.Values[0].Label)
	assert.Equal(t, "Female 28.6%", pie.Values[1].Label)
	assert.Equal(t, "NaN 14.3%", pie.Values[2].Label)
	assert.Equal(t, 960, pie.Width)
	assert.Equal(t, 480, pie.Height)
}

func TestCountPlot(t *testing.T) {
	p, err := CountPlot(gender())
	require.NoError(t, err)
	assert.Equal(t, "Gender", p.Title.Text)
	assert.Equal(t, "count", p.Y.Label.Text)
}

func TestHistogram(t *testing.T) {
	s := series.New([]string{"1", "2", "NaN", "2", "3", "9"}, series.Float, "x")
	v := SeriesToPlotValues(s)
	assert.Len(t, v, 5)

	data, err := HistogramData(v, "x Histogram", smallSize, "png")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(data, pngMagic))

	r, err := NewFileRenderer(t.TempDir(), "png", smallSize)
	require.NoError(t, err)
	path, err := r.Histogram("x", v)
	require.NoError(t, err)
	assert.Equal(t, "01_x_hist.png", filepath.Base(path))

	_, err = HistogramData(nil, "empty", smallSize, "png")
	assert.ErrorIs(t, err, ErrNoData)
}

func TestDiscard(t *testing.T) {
	var r Renderer = Discard{}
	path, err := r.Bar(gender())
	assert.NoError(t, err)
	assert.Empty(t, path)
}
