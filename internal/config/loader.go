package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// flagKeys maps CLI flag names to config keys where they differ.
var flagKeys = map[string]string{
	"data":       "data_path",
	"no-charts":  "charts",
	"log-level":  "log.level",
	"seq-url":    "log.seq_url",
	"format":     "chart.format",
	"width-cm":   "chart.width_cm",
	"height-cm":  "chart.height_cm",
	"output-dir": "output_dir",
}

// Defaults returns the default values as a flat koanf map.
func Defaults() map[string]interface{} {
	return map[string]interface{}{
		"data_path":       DefaultDataPath,
		"output_dir":      DefaultOutputDir,
		"sample_rows":     DefaultSampleRows,
		"charts":          true,
		"no_color":        false,
		"chart.format":    DefaultFormat,
		"chart.width_cm":  DefaultWidthCM,
		"chart.height_cm": DefaultHeightCM,
		"log.level":       DefaultLogLevel,
		"log.seq_url":     "",
	}
}

// findConfigFile returns the explicit path, or ./loaneda.yaml when present.
func findConfigFile(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(DefaultConfigFile); err == nil {
		return DefaultConfigFile
	}
	return ""
}

// Load reads configuration from defaults, file, environment and flags.
// Precedence (highest to lowest): flags > env vars > config file > defaults.
// It returns the config and the config file used, if any.
func Load(cfgFile string, flags *pflag.FlagSet) (*Config, string, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(Defaults(), "."), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load defaults: %w", err)
	}

	used := findConfigFile(cfgFile)
	if used != "" {
		if err := k.Load(file.Provider(used), yaml.Parser()); err != nil {
			return nil, "", fmt.Errorf("error reading config file %s: %w", used, err)
		}
	}

	// LOANEDA_LOG__LEVEL -> log.level, LOANEDA_DATA_PATH -> data_path
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, "", fmt.Errorf("failed to load env vars: %w", err)
	}

	if flags != nil {
		if err := k.Load(posflag.ProviderWithFlag(flags, ".", k, func(f *pflag.Flag) (string, interface{}) {
			if !f.Changed {
				return "", nil
			}
			key, ok := flagKeys[f.Name]
			if !ok {
				key = strings.ReplaceAll(f.Name, "-", "_")
			}
			val := posflag.FlagVal(flags, f)
			if f.Name == "no-charts" {
				b, _ := val.(bool)
				return key, !b
			}
			return key, val
		}), nil); err != nil {
			return nil, "", fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, "", fmt.Errorf("unable to decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, "", err
	}
	return &cfg, used, nil
}
