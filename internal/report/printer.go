package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/muesli/termenv"

	"berkotech.co/loaneda/internal/dataset"
)

const separator = "--------------------------------------"

// Styles are the status line styles.
type Styles struct {
	Success lipgloss.Style
	Failure lipgloss.Style
	Label   lipgloss.Style
}

func newStyles(r *lipgloss.Renderer) Styles {
	return Styles{
		Success: r.NewStyle().Reverse(true).Foreground(lipgloss.Color("2")),
		Failure: r.NewStyle().Reverse(true).Foreground(lipgloss.Color("1")),
		Label:   r.NewStyle().Reverse(true).Foreground(lipgloss.Color("7")),
	}
}

// Printer writes the report's console text.
type Printer struct {
	w      io.Writer
	styles Styles
}

// NewPrinter returns a printer on w. With color off every line is plain text.
func NewPrinter(w io.Writer, color bool) *Printer {
	r := lipgloss.NewRenderer(w)
	if !color {
		r.SetColorProfile(termenv.Ascii)
	}
	return &Printer{w: w, styles: newStyles(r)}
}

// Success prints a highlighted status line.
func (p *Printer) Success(msg string) {
	fmt.Fprintln(p.w, p.styles.Success.Render(msg))
}

// Failure prints a highlighted error line.
func (p *Printer) Failure(msg string) {
	fmt.Fprintln(p.w, p.styles.Failure.Render(msg))
}

// Sample prints rows one field per line, labelled from 1.
func (p *Printer) Sample(names []string, rows [][]string) {
	p.Success(fmt.Sprintf("As you can see, the first %d rows in the dataset:", len(rows)))
	fmt.Fprintln(p.w)
	width := 0
	for _, n := range names {
		width = max(width, len(n))
	}
	for i, row := range rows {
		fmt.Fprintln(p.w, p.styles.Label.Render(fmt.Sprintf("Row %d:", i+1)))
		for j, v := range row {
			fmt.Fprintf(p.w, "%-*s  %s\n", width, names[j], v)
		}
		fmt.Fprintln(p.w, separator)
	}
}

// Shape prints the table dimensions.
func (p *Printer) Shape(s dataset.Shape) {
	fmt.Fprintf(p.w, "The shape = (%d, %d)\n", s.Rows, s.Columns)
	fmt.Fprintf(p.w, "Number of Rows: %d\n", s.Rows)
	fmt.Fprintf(p.w, "Number of Columns: %d\n", s.Columns)
	fmt.Fprintf(p.w, "Number of Features: %d\n", s.Features)
	fmt.Fprintf(p.w, "Number of All Data: %d\n", s.Cells)
}

func (p *Printer) newTable() table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(p.w)
	t.SetStyle(table.StyleLight)
	return t
}

// Schema prints one row per column with its non-missing count and type.
func (p *Printer) Schema(shape dataset.Shape, cols []dataset.ColumnInfo) {
	fmt.Fprintf(p.w, "RangeIndex: %d entries, 0 to %d\n", shape.Rows, max(shape.Rows-1, 0))
	fmt.Fprintf(p.w, "Data columns (total %d columns):\n", shape.Columns)
	t := p.newTable()
	t.AppendHeader(table.Row{"#", "Column", "Non-Null Count", "Dtype"})
	for i, c := range cols {
		t.AppendRow(table.Row{i, c.Name, fmt.Sprintf("%d non-null", c.NonMissing), string(c.Type)})
	}
	t.Render()
}

// Numeric prints the numeric describe table transposed, one column per row,
// every figure rounded to 2 decimals.
func (p *Printer) Numeric(stats []dataset.NumericStats) {
	if len(stats) == 0 {
		fmt.Fprintln(p.w, "(no numeric columns)")
		return
	}
	t := p.newTable()
	t.AppendHeader(table.Row{"", "count", "mean", "std", "min", "25%", "50%", "75%", "max"})
	for _, s := range stats {
		t.AppendRow(table.Row{
			s.Column, round2(float64(s.Count)), round2(s.Mean), round2(s.Std), round2(s.Min),
			round2(s.Q25), round2(s.Q50), round2(s.Q75), round2(s.Max),
		})
	}
	t.SetColumnConfigs([]table.ColumnConfig{{Number: 1, Align: text.AlignLeft}})
	t.Render()
}

// Categorical prints the categorical describe table, one column per row.
func (p *Printer) Categorical(stats []dataset.CategoricalStats) {
	if len(stats) == 0 {
		fmt.Fprintln(p.w, "(no categorical columns)")
		return
	}
	t := p.newTable()
	t.AppendHeader(table.Row{"", "count", "unique", "top", "freq"})
	for _, s := range stats {
		t.AppendRow(table.Row{s.Column, s.Count, s.Unique, s.Top, s.Freq})
	}
	t.Render()
}

// Summary prints a column's value counts.
func (p *Printer) Summary(s dataset.ColumnSummary) {
	t := p.newTable()
	t.AppendHeader(table.Row{s.Column, "count"})
	for _, e := range s.Entries {
		t.AppendRow(table.Row{e.Value, e.Count})
	}
	t.AppendFooter(table.Row{"total", s.Total()})
	t.Render()
}

// Split prints the mean, the above/below ratio as a percentage and both counts.
func (p *Printer) Split(sp dataset.ThresholdSplit, ratio float64) {
	label := humanize(sp.Column)
	fmt.Fprintf(p.w, "The Average %s: %.2f\n", label, sp.Mean)
	fmt.Fprintf(p.w, "The ratio of %s above average to below average: %.2f\n", label, ratio*100)
	fmt.Fprintf(p.w, "Number above the average: %d\n", sp.Above)
	fmt.Fprintf(p.w, "Number below the average: %d\n", sp.BelowOrEqual)
}

// Chart notes where a figure was written.
func (p *Printer) Chart(path string) {
	if path == "" {
		return
	}
	fmt.Fprintf(p.w, "chart: %s\n", path)
}

func round2(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

// humanize turns ApplicantIncome or Loan_Status into "Applicant Income" / "Loan Status".
func humanize(col string) string {
	var b strings.Builder
	prev := rune(0)
	for i, r := range col {
		switch {
		case r == '_':
			b.WriteRune(' ')
		case i > 0 && r >= 'A' && r <= 'Z' && prev >= 'a' && prev <= 'z':
			b.WriteRune(' ')
			b.WriteRune(r)
		default:
			b.WriteRune(r)
		}
		prev = r
	}
	return b.String()
}
