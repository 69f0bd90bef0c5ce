package charts

import (
	"errors"
	"io"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"berkotech.co/loaneda/internal/dataset"
)

// ErrNoData is returned when a chart would have nothing to draw.
var ErrNoData = errors.New("charts: no data to plot")

// ThresholdLabels name the two bars of a threshold chart.
var ThresholdLabels = []string{"Above Average", "Below Average"}

// barPlot draws one bar per label, each bar in its own palette color.
func barPlot(title, xLabel, yLabel string, labels []string, counts []float64) (*plot.Plot, error) {
	if len(counts) == 0 {
		return nil, ErrNoData
	}
	p, err := plot.New()
	if err != nil {
		return nil, err
	}
	p.Title.Text = title
	p.X.Label.Text = xLabel
	p.Y.Label.Text = yLabel
	p.Add(plotter.NewGrid())

	for i := range counts {
		v := make(plotter.Values, len(counts))
		v[i] = counts[i]
		b, err := plotter.NewBarChart(v, vg.Points(28))
		if err != nil {
			return nil, err
		}
		b.Color = paletteColor(i)
		b.LineStyle.Width = vg.Length(0)
		p.Add(b)
	}
	p.NominalX(labels...)
	return p, nil
}

// CountPlot is a bar chart of a column summary, one bar per distinct value.
func CountPlot(s dataset.ColumnSummary) (*plot.Plot, error) {
	return barPlot(s.Column, s.Column, "count", s.Labels(), s.Counts())
}

// ThresholdPlot compares the sizes of the above-mean and at-or-below-mean groups.
func ThresholdPlot(sp dataset.ThresholdSplit, title string) (*plot.Plot, error) {
	counts := []float64{float64(sp.Above), float64(sp.BelowOrEqual)}
	if sp.Above+sp.BelowOrEqual == 0 {
		return nil, ErrNoData
	}
	return barPlot(title, sp.Column, "Count", ThresholdLabels, counts)
}

// writePlot encodes p in the given format ("png", "svg", ...).
func writePlot(w io.Writer, p *plot.Plot, size Size, format string) error {
	wt, err := p.WriterTo(size.Width, size.Height, format)
	if err != nil {
		return err
	}
	_, err = wt.WriteTo(w)
	return err
}
