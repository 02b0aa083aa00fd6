// Package config loads run parameters from YAML.
package config

import (
	"errors"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/PhilippHaizmann/SatSub/dsp/satsub"
)

// SatelliteConf configures one satellite line.
type SatelliteConf struct {
	Offset   float64 `yaml:"offset"`
	Fraction float64 `yaml:"fraction"`
}

// PlotConf configures the inspection plot of single-file runs.
type PlotConf struct {
	Path string `yaml:"path"`
	View bool   `yaml:"view"`
	// Viewer is the command that shows the image; the image path is appended
	// as its last argument. Empty selects the platform default, which may
	// return before the image is closed (xdg-open on Linux).
	Viewer []string `yaml:"viewer"`
}

// Config holds every parameter of a run.
type Config struct {
	Offset      float64       `yaml:"offset"`
	Beta        SatelliteConf `yaml:"beta"`
	Gamma       SatelliteConf `yaml:"gamma"`
	ExtraPoints int           `yaml:"extra_points"`
	SkipRows    int           `yaml:"skip_rows"`
	Delimiter   string        `yaml:"delimiter"`
	OutputDir   string        `yaml:"output_dir"`
	Plot        PlotConf      `yaml:"plot"`
}

// Default returns the He I parameters of the reference single-file run.
func Default() Config {
	p := satsub.HeIParams()
	return Config{
		Offset:      p.GlobalOffset,
		Beta:        SatelliteConf{Offset: p.Beta.Offset, Fraction: p.Beta.Fraction},
		Gamma:       SatelliteConf{Offset: p.Gamma.Offset, Fraction: p.Gamma.Fraction},
		ExtraPoints: p.ExtraPoints,
		SkipRows:    4,
		Delimiter:   ",",
		Plot:        PlotConf{Path: "satsub.png"},
	}
}

// Load reads a YAML file on top of Default. Keys missing from the file keep
// their default value.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("cannot read config file: %w", err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("cannot parse YAML: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config validation: %w", err)
	}
	return cfg, nil
}

// Validate checks values that cannot be caught by the engine.
func (c Config) Validate() error {
	var errs []error
	if c.SkipRows < 0 {
		errs = append(errs, fmt.Errorf("skip_rows must be >= 0: %d", c.SkipRows))
	}
	if c.ExtraPoints < 0 {
		errs = append(errs, fmt.Errorf("extra_points must be >= 0: %d", c.ExtraPoints))
	}
	if utf8.RuneCountInString(c.Delimiter) != 1 {
		errs = append(errs, fmt.Errorf("delimiter must be a single character: %q", c.Delimiter))
	} else if r, _ := utf8.DecodeRuneInString(c.Delimiter); r == '"' || r == '\r' || r == '\n' || r == utf8.RuneError {
		errs = append(errs, fmt.Errorf("delimiter cannot be %q", c.Delimiter))
	}
	if err := c.Params().Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// Params converts c to engine parameters.
func (c Config) Params() satsub.Params {
	return satsub.Params{
		GlobalOffset: c.Offset,
		Beta:         satsub.Satellite{Offset: c.Beta.Offset, Fraction: c.Beta.Fraction},
		Gamma:        satsub.Satellite{Offset: c.Gamma.Offset, Fraction: c.Gamma.Fraction},
		ExtraPoints:  c.ExtraPoints,
	}
}

// Comma returns the delimiter as a rune, ',' when unset.
func (c Config) Comma() rune {
	r, _ := utf8.DecodeRuneInString(c.Delimiter)
	if r == utf8.RuneError {
		return ','
	}
	return r
}
