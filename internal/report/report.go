// Package report runs the loan dataset walk-through: status banner, sample
// rows, shape, schema, describe tables, then one summary and chart per step.
package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"berkotech.co/loaneda/internal/charts"
	"berkotech.co/loaneda/internal/dataset"
)

// DefaultSampleRows is how many rows the sample shows.
const DefaultSampleRows = 7

const doneMessage = "The task has been completed without any errors...."

// Report holds everything a run needs. The table is only read.
type Report struct {
	table      *dataset.Table
	charts     charts.Renderer
	out        *Printer
	logger     *slog.Logger
	sampleRows int
	steps      []Step
}

// Option configures a Report.
type Option func(*Report)

// WithSteps replaces the default step list.
func WithSteps(steps []Step) Option {
	return func(r *Report) { r.steps = steps }
}

// WithSampleRows sets how many rows ShowSample prints.
func WithSampleRows(n int) Option {
	return func(r *Report) { r.sampleRows = n }
}

// WithLogger sets the logger.
func WithLogger(l *slog.Logger) Option {
	return func(r *Report) { r.logger = l }
}

// New creates a report over t.
func New(t *dataset.Table, renderer charts.Renderer, out *Printer, opts ...Option) *Report {
	r := &Report{
		table:      t,
		charts:     renderer,
		out:        out,
		logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		sampleRows: DefaultSampleRows,
		steps:      DefaultSteps(),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.charts == nil {
		r.charts = charts.Discard{}
	}
	return r
}

// Load reads the dataset and prints the outcome as a status line.
func Load(out *Printer, path string) (*dataset.Table, error) {
	t, err := dataset.Load(path)
	if err != nil {
		if errors.Is(err, dataset.ErrFileNotFound) {
			out.Failure("ERROR: File not found!")
		} else {
			out.Failure(fmt.Sprintf("ERROR: %v", err))
		}
		return nil, err
	}
	out.Success("THE DATASET LOADED SUCCESSFULLY...")
	return t, nil
}

// Run prints the overview and then runs every step in order. The first
// failing step stops the run.
func (r *Report) Run(ctx context.Context) error {
	r.Overview()
	for i, s := range r.steps {
		if err := ctx.Err(); err != nil {
			return err
		}
		r.logger.Debug("running step", "index", i, "column", s.Column, "kind", string(s.Kind))
		if err := r.RunStep(s); err != nil {
			return fmt.Errorf("step %d (%s %s): %w", i+1, s.Column, s.Kind, err)
		}
	}
	return nil
}

// Overview prints the sample, shape, schema and describe tables.
func (r *Report) Overview() {
	r.ShowSample(r.sampleRows)
	r.ShowShape()
	r.out.Success(doneMessage)
	r.ShowSchema()
	r.out.Success(doneMessage)
	r.ShowNumericStats()
	r.ShowCategoricalStats()
}

// ShowSample prints the first n rows.
func (r *Report) ShowSample(n int) {
	r.out.Sample(r.table.Names(), r.table.Head(n))
}

// ShowShape prints the table dimensions.
func (r *Report) ShowShape() {
	r.out.Shape(r.table.Shape())
}

// ShowSchema prints column names, types and non-missing counts.
func (r *Report) ShowSchema() {
	r.out.Schema(r.table.Shape(), r.table.Schema())
}

// ShowNumericStats prints the numeric describe table.
func (r *Report) ShowNumericStats() {
	r.out.Numeric(r.table.DescribeNumeric())
}

// ShowCategoricalStats prints the categorical describe table.
func (r *Report) ShowCategoricalStats() {
	r.out.Categorical(r.table.DescribeCategorical())
}

// RunStep summarizes one column and renders its chart.
func (r *Report) RunStep(s Step) error {
	switch s.Kind {
	case Bar, Pie:
		sum, err := r.table.SummarizeColumn(s.Column)
		if err != nil {
			return err
		}
		r.out.Summary(sum)
		return r.renderCategorical(sum, s)
	case Threshold:
		sp, err := r.table.ComputeThresholdSplit(s.Column)
		if err != nil {
			return err
		}
		ratio, err := sp.Ratio()
		if err != nil {
			return err
		}
		r.out.Split(sp, ratio)
		path, err := r.charts.Threshold(sp, title(s))
		if err != nil {
			return err
		}
		r.chartWritten(s, path)
		return nil
	default:
		return fmt.Errorf("unknown step kind %q", s.Kind)
	}
}

func (r *Report) renderCategorical(sum dataset.ColumnSummary, s Step) error {
	var (
		path string
		err  error
	)
	if s.Kind == Pie {
		path, err = r.charts.Pie(sum, title(s))
	} else {
		path, err = r.charts.Bar(sum)
	}
	if err != nil {
		return err
	}
	r.chartWritten(s, path)
	return nil
}

func (r *Report) chartWritten(s Step, path string) {
	if path == "" {
		return
	}
	r.logger.Info("chart written", "column", s.Column, "kind", string(s.Kind), "path", path)
	r.out.Chart(path)
}

func title(s Step) string {
	if s.Title != "" {
		return s.Title
	}
	return s.Column
}
