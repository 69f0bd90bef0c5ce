package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
)

// Validate checks values that cannot be defaulted.
func (c *Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.DataPath) == "" {
		errs = append(errs, errors.New("data_path is required"))
	}
	if c.SampleRows < 0 {
		errs = append(errs, fmt.Errorf("sample_rows must not be negative, got %d", c.SampleRows))
	}
	switch c.Chart.Format {
	case "png", "svg":
	default:
		errs = append(errs, fmt.Errorf("chart.format must be png or svg, got %q", c.Chart.Format))
	}
	if c.Chart.WidthCM <= 0 || c.Chart.HeightCM <= 0 {
		errs = append(errs, errors.New("chart size must be positive"))
	}
	if _, err := ParseLevel(c.Log.Level); err != nil {
		errs = append(errs, err)
	}
	for i, s := range c.Report.Steps {
		if s.Column == "" {
			errs = append(errs, fmt.Errorf("report.steps[%d]: column is required", i))
		}
		switch s.Kind {
		case KindBar, KindPie, KindThreshold:
		default:
			errs = append(errs, fmt.Errorf("report.steps[%d]: unknown kind %q", i, s.Kind))
		}
	}
	return errors.Join(errs...)
}

// ParseLevel maps a level name to a slog level.
func ParseLevel(s string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return l, nil
}
