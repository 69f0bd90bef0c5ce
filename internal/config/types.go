// Package config provides layered configuration for the loaneda CLI.
package config

// Step kinds.
const (
	KindBar       = "bar"
	KindPie       = "pie"
	KindThreshold = "threshold"
)

// Default configuration values.
const (
	DefaultConfigFile = "loaneda.yaml"
	DefaultDataPath   = "data/train.csv"
	DefaultOutputDir  = "output"
	DefaultSampleRows = 7
	DefaultFormat     = "png"
	DefaultWidthCM    = 25.4
	DefaultHeightCM   = 12.7
	DefaultLogLevel   = "info"
	EnvPrefix         = "LOANEDA_"
)

// Config holds all CLI configuration options.
type Config struct {
	DataPath   string       `koanf:"data_path"`
	OutputDir  string       `koanf:"output_dir"`
	SampleRows int          `koanf:"sample_rows"`
	Charts     bool         `koanf:"charts"`
	NoColor    bool         `koanf:"no_color"`
	Chart      ChartConfig  `koanf:"chart"`
	Log        LogConfig    `koanf:"log"`
	Report     ReportConfig `koanf:"report"`
}

// ChartConfig controls figure output.
type ChartConfig struct {
	Format   string  `koanf:"format"`
	WidthCM  float64 `koanf:"width_cm"`
	HeightCM float64 `koanf:"height_cm"`
}

// LogConfig controls the slog logger.
type LogConfig struct {
	Level  string `koanf:"level"`
	SeqURL string `koanf:"seq_url"`
}

// ReportConfig overrides the report step list. Empty means the built-in list.
type ReportConfig struct {
	Steps []StepConfig `koanf:"steps"`
}

// StepConfig is one report step: a column and how to chart it.
type StepConfig struct {
	Column string `koanf:"column"`
	Kind   string `koanf:"kind"`
	Title  string `koanf:"title"`
}
