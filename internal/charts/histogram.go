package charts

import (
	"bytes"
	"fmt"

	"github.com/go-gota/gota/series"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
)

// HistogramBins is the bin count used for every histogram.
const HistogramBins = 10

// SeriesToPlotValues copies the non-missing cells of s into plot values.
func SeriesToPlotValues(s series.Series) plotter.Values {
	v := make(plotter.Values, 0, s.Len())
	for i := 0; i < s.Len(); i++ {
		e := s.Elem(i)
		if e.IsNA() {
			continue
		}
		v = append(v, e.Float())
	}
	return v
}

// HistogramPlot builds a histogram of v. When normalize is set the area under
// the bars sums to one.
func HistogramPlot(v plotter.Values, title string, normalize bool) (*plot.Plot, error) {
	if len(v) == 0 {
		return nil, ErrNoData
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	h, err := plotter.NewHist(v, HistogramBins)
	if err != nil {
		return nil, fmt.Errorf("histogram %q: %w", title, err)
	}
	h.FillColor = paletteColor(2)
	if normalize {
		h.Normalize(1)
	}
	p.Add(h)
	return p, nil
}

// HistogramData renders the histogram of v to an encoded image.
func HistogramData(v plotter.Values, title string, size Size, format string) ([]byte, error) {
	p, err := HistogramPlot(v, title, false)
	if err != nil {
		return nil, err
	}
	var b bytes.Buffer
	if err := writePlot(&b, p, size, format); err != nil {
		return nil, err
	}
	return b.Bytes(), nil
}
