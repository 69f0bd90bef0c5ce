package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"berkotech.co/loaneda/internal/charts"
	"berkotech.co/loaneda/internal/logging"
	"berkotech.co/loaneda/internal/report"
)

// NewReportCommand runs the full walk-through.
func NewReportCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "report",
		Short: "Print dataset statistics and chart every configured column",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			e, t, err := loadTable(cmd)
			if err != nil {
				return err
			}

			var renderer charts.Renderer = charts.Discard{}
			if e.cfg.Charts {
				fr, err := newRenderer(e.cfg)
				if err != nil {
					return err
				}
				renderer = fr
			}

			r := report.New(t, renderer, e.printer,
				report.WithSampleRows(e.cfg.SampleRows),
				report.WithSteps(report.StepsFromConfig(e.cfg.Report.Steps)),
				report.WithLogger(logging.FromContext(cmd.Context())),
			)
			return r.Run(cmd.Context())
		},
	}
	cmd.Flags().Int("sample-rows", report.DefaultSampleRows, "Number of sample rows to print")
	cmd.Flags().Bool("no-charts", false, "Skip writing chart images")
	return cmd
}

// NewSummarizeCommand prints the value counts of one column.
func NewSummarizeCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "summarize <column>",
		Short: "Print value counts of a column, missing values included",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, t, err := loadTable(cmd)
			if err != nil {
				return err
			}
			sum, err := t.SummarizeColumn(args[0])
			if err != nil {
				return err
			}
			e.printer.Summary(sum)
			return nil
		},
	}
}

// NewSplitCommand prints how a numeric column splits around its mean.
func NewSplitCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "split [column]",
		Short: "Count values above and at-or-below the column mean",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			column := "ApplicantIncome"
			if len(args) == 1 {
				column = args[0]
			}
			e, t, err := loadTable(cmd)
			if err != nil {
				return err
			}
			sp, err := t.ComputeThresholdSplit(column)
			if err != nil {
				return err
			}
			ratio, err := sp.Ratio()
			if err != nil {
				return err
			}
			e.printer.Split(sp, ratio)
			return nil
		},
	}
}

// NewHistogramCommand writes a histogram of a numeric column.
func NewHistogramCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "histogram <column>",
		Short: "Write a histogram image of a numeric column",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, t, err := loadTable(cmd)
			if err != nil {
				return err
			}
			values, err := t.NumericValues(args[0])
			if err != nil {
				return err
			}
			fr, err := newRenderer(e.cfg)
			if err != nil {
				return err
			}
			path, err := fr.Histogram(args[0], values)
			if err != nil {
				return err
			}
			e.printer.Chart(path)
			return nil
		},
	}
}

// NewVersionCommand prints the version.
func NewVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "loaneda v%s\n", Version)
		},
	}
}
