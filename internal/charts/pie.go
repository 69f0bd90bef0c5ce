package charts

import (
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"

	"berkotech.co/loaneda/internal/dataset"
)

// PieChart builds a pie of a column summary. Each slice is labelled with its
// value and share of the total.
func PieChart(s dataset.ColumnSummary, title string, size Size) (chart.PieChart, error) {
	total := s.Total()
	if total == 0 {
		return chart.PieChart{}, ErrNoData
	}
	values := make([]chart.Value, len(s.Entries))
	for i, e := range s.Entries {
		share := 100 * float64(e.Count) / float64(total)
		values[i] = chart.Value{
			Value: float64(e.Count),
			Label: fmt.Sprintf("%s %.1f%%", e.Value, share),
			Style: chart.Style{
				FillColor:   drawingColor(i),
				StrokeColor: drawingColor(i),
			},
		}
	}
	return chart.PieChart{
		Title:  title,
		Width:  size.Pixels(size.Width),
		Height: size.Pixels(size.Height),
		Values: values,
	}, nil
}

func writePie(w io.Writer, pie chart.PieChart, format string) error {
	switch format {
	case "png":
		return pie.Render(chart.PNG, w)
	case "svg":
		return pie.Render(chart.SVG, w)
	default:
		return fmt.Errorf("pie chart: unsupported format %q", format)
	}
}
