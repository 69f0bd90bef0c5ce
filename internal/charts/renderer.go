// Package charts draws the report's figures: per-column count bars, the
// marital status pie, the above/below mean comparison and histograms.
// Figures are written to files so the report can run headless.
package charts

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"

	"berkotech.co/loaneda/internal/dataset"
)

// Size is the figure size.
type Size struct {
	Width  vg.Length
	Height vg.Length
}

// DefaultSize matches a 10 by 5 inch figure.
var DefaultSize = Size{Width: 10 * vg.Inch, Height: 5 * vg.Inch}

// Pixels converts l to pixels at 96 dpi, the resolution go-chart draws at.
func (s Size) Pixels(l vg.Length) int {
	return int(l.Dots(96))
}

// Renderer draws one figure per call and reports where it went.
type Renderer interface {
	Bar(s dataset.ColumnSummary) (string, error)
	Pie(s dataset.ColumnSummary, title string) (string, error)
	Threshold(sp dataset.ThresholdSplit, title string) (string, error)
}

// FileRenderer writes figures into Dir. Files are numbered in call order so
// a directory listing follows the report.
type FileRenderer struct {
	Dir    string
	Format string
	Size   Size

	seq int
}

// NewFileRenderer creates dir if needed.
func NewFileRenderer(dir, format string, size Size) (*FileRenderer, error) {
	if format == "" {
		format = "png"
	}
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create chart directory: %w", err)
	}
	return &FileRenderer{Dir: dir, Format: format, Size: size}, nil
}

// Bar implements Renderer.
func (r *FileRenderer) Bar(s dataset.ColumnSummary) (string, error) {
	p, err := CountPlot(s)
	if err != nil {
		return "", fmt.Errorf("bar chart %s: %w", s.Column, err)
	}
	return r.savePlot(p, s.Column, "bar")
}

// Pie implements Renderer.
func (r *FileRenderer) Pie(s dataset.ColumnSummary, title string) (string, error) {
	pie, err := PieChart(s, title, r.Size)
	if err != nil {
		return "", fmt.Errorf("pie chart %s: %w", s.Column, err)
	}
	var b bytes.Buffer
	if err := writePie(&b, pie, r.Format); err != nil {
		return "", err
	}
	return r.write(&b, s.Column, "pie")
}

// Threshold implements Renderer.
func (r *FileRenderer) Threshold(sp dataset.ThresholdSplit, title string) (string, error) {
	p, err := ThresholdPlot(sp, title)
	if err != nil {
		return "", fmt.Errorf("threshold chart %s: %w", sp.Column, err)
	}
	return r.savePlot(p, sp.Column, "threshold")
}

// Histogram writes a histogram of a numeric column.
func (r *FileRenderer) Histogram(column string, values []float64) (string, error) {
	data, err := HistogramData(values, column+" Histogram", r.Size, r.Format)
	if err != nil {
		return "", err
	}
	return r.write(bytes.NewBuffer(data), column, "hist")
}

func (r *FileRenderer) savePlot(p *plot.Plot, column, kind string) (string, error) {
	var b bytes.Buffer
	if err := writePlot(&b, p, r.Size, r.Format); err != nil {
		return "", fmt.Errorf("encode %s chart %s: %w", kind, column, err)
	}
	return r.write(&b, column, kind)
}

func (r *FileRenderer) write(b *bytes.Buffer, column, kind string) (string, error) {
	r.seq++
	name := fmt.Sprintf("%02d_%s_%s.%s", r.seq, fileSafe(column), kind, r.Format)
	path := filepath.Join(r.Dir, name)
	if err := os.WriteFile(path, b.Bytes(), 0o644); err != nil {
		return "", fmt.Errorf("write chart: %w", err)
	}
	return path, nil
}

func fileSafe(s string) string {
	return strings.Map(func(r rune) rune {
		switch r {
		case '/', '\\', ' ', ':':
			return '_'
		}
		return r
	}, s)
}

// Discard draws nothing.
type Discard struct{}

func (Discard) Bar(dataset.ColumnSummary) (string, error)                { return "", nil }
func (Discard) Pie(dataset.ColumnSummary, string) (string, error)        { return "", nil }
func (Discard) Threshold(dataset.ThresholdSplit, string) (string, error) { return "", nil }
