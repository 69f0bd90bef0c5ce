// Package cli provides the command-line interface for loaneda.
package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gonum.org/v1/plot/vg"

	"berkotech.co/loaneda/internal/charts"
	"berkotech.co/loaneda/internal/config"
	"berkotech.co/loaneda/internal/dataset"
	"berkotech.co/loaneda/internal/logging"
	"berkotech.co/loaneda/internal/report"
)

// Version is set at build time.
var Version = "0.1.0"

type envKey struct{}

// env is what every command gets after config is loaded.
type env struct {
	cfg     *config.Config
	printer *report.Printer
	cleanup func()
}

func getEnv(ctx context.Context) *env {
	if e, ok := ctx.Value(envKey{}).(*env); ok {
		return e
	}
	return nil
}

// NewRootCmd creates and returns the root command.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "loaneda",
		Short: "Exploratory report for the loan approval dataset",
		Long: `loaneda loads the loan approval CSV, prints its shape, schema and
descriptive statistics, then summarizes and charts each column of interest.`,
		Version: Version,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "version" {
				return nil
			}
			cfg, used, err := config.Load(cfgFile, cmd.Flags())
			if err != nil {
				return err
			}
			level, _ := config.ParseLevel(cfg.Log.Level)
			logger, cleanup := logging.New(cmd.ErrOrStderr(), logging.Options{Level: level, SeqURL: cfg.Log.SeqURL})
			if used != "" {
				logger.Debug("using config file", "path", used)
			}

			e := &env{
				cfg:     cfg,
				printer: report.NewPrinter(cmd.OutOrStdout(), !cfg.NoColor),
				cleanup: cleanup,
			}
			ctx := logging.WithLogger(cmd.Context(), logger)
			cmd.SetContext(context.WithValue(ctx, envKey{}, e))
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, _ []string) {
			if e := getEnv(cmd.Context()); e != nil {
				e.cleanup()
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default: ./loaneda.yaml)")
	pf.String("data", "", "Path to the loan CSV file")
	pf.String("output-dir", "", "Directory for chart images")
	pf.Bool("no-color", false, "Disable colored status lines")
	pf.String("format", "", "Chart image format (png|svg)")
	pf.String("log-level", "", "Log level (debug|info|warn|error)")
	pf.String("seq-url", "", "Also ship logs to this Seq server")

	_ = rootCmd.RegisterFlagCompletionFunc("format", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return []string{"png", "svg"}, cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(NewReportCommand())
	rootCmd.AddCommand(NewSummarizeCommand())
	rootCmd.AddCommand(NewSplitCommand())
	rootCmd.AddCommand(NewHistogramCommand())
	rootCmd.AddCommand(NewVersionCommand())

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

// loadTable loads the configured dataset, printing the status line.
func loadTable(cmd *cobra.Command) (*env, *dataset.Table, error) {
	e := getEnv(cmd.Context())
	if e == nil {
		return nil, nil, fmt.Errorf("configuration not loaded")
	}
	logger := logging.FromContext(cmd.Context())
	logger.Debug("loading dataset", "path", e.cfg.DataPath)
	t, err := report.Load(e.printer, e.cfg.DataPath)
	if err != nil {
		return nil, nil, err
	}
	shape := t.Shape()
	logger.Info("dataset loaded", "path", e.cfg.DataPath, "rows", shape.Rows, "columns", shape.Columns)
	return e, t, nil
}

// newRenderer builds the chart renderer for the configured output.
func newRenderer(cfg *config.Config) (*charts.FileRenderer, error) {
	size := charts.Size{
		Width:  vg.Length(cfg.Chart.WidthCM) * vg.Centimeter,
		Height: vg.Length(cfg.Chart.HeightCM) * vg.Centimeter,
	}
	return charts.NewFileRenderer(cfg.OutputDir, cfg.Chart.Format, size)
}
