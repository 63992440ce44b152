// seehuhn.de/go/pathnorm - normalize vector paths to a target size
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package config loads settings for the pathnorm and pathtamer commands.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"seehuhn.de/go/pathnorm"
)

// Config holds all application configuration.
type Config struct {
	Size         float64 `mapstructure:"size"`
	Subdivisions int     `mapstructure:"subdivisions"`
	Threshold    float64 `mapstructure:"threshold"`
	Accuracy     float64 `mapstructure:"accuracy"`
	StrokeWidth  float64 `mapstructure:"stroke_width"`
	Flatness     float64 `mapstructure:"flatness"`

	Log LogConfig `mapstructure:"log"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
	File   string `mapstructure:"file"`
}

// flags maps command line flags to configuration keys.
var flags = map[string]string{
	"size":         "size",
	"subdivisions": "subdivisions",
	"threshold":    "threshold",
	"accuracy":     "accuracy",
	"stroke-width": "stroke_width",
	"flatness":     "flatness",
	"log-level":    "log.level",
	"log-format":   "log.format",
	"log-file":     "log.file",
}

// AddFlags registers the command line flags understood by [Load].
func AddFlags(fs *pflag.FlagSet) {
	fs.String("config", "", "configuration file")
	fs.Float64("size", pathnorm.DefaultSize, "target height of the normalized path")
	fs.Int("subdivisions", pathnorm.DefaultSubdivisions, "samples per path segment")
	fs.Float64("threshold", pathnorm.DefaultThreshold, "minimal distance between sampled points")
	fs.Float64("accuracy", pathnorm.DefaultAccuracy, "arc length accuracy")
	fs.Float64("stroke-width", 1, "stroke width for previews and PDF output")
	fs.Float64("flatness", 0.25, "curve flattening tolerance of the preview, in pixels")
	fs.String("log-level", "info", "log level (debug, info, warn, error)")
	fs.String("log-format", "text", "log format (text, json)")
	fs.String("log-file", "", "log file")
}

// Load reads configuration from defaults, an optional file, environment
// variables and the command line, in increasing order of precedence.
// fs may be nil, otherwise it must have been set up using [AddFlags].
func Load(fs *pflag.FlagSet) (*Config, error) {
	v := viper.New()

	// Defaults
	v.SetDefault("size", pathnorm.DefaultSize)
	v.SetDefault("subdivisions", pathnorm.DefaultSubdivisions)
	v.SetDefault("threshold", pathnorm.DefaultThreshold)
	v.SetDefault("accuracy", pathnorm.DefaultAccuracy)
	v.SetDefault("stroke_width", 1)
	v.SetDefault("flatness", 0.25)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("log.file", "")

	// Config file (optional)
	configFile := ""
	if fs != nil {
		configFile, _ = fs.GetString("config")
	}
	if configFile != "" {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
	} else {
		v.SetConfigName("pathtamer")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("$HOME/.config/pathtamer")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	// Environment variables: PATHTAMER_LOG_LEVEL → log.level
	v.SetEnvPrefix("PATHTAMER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if fs != nil {
		for name, key := range flags {
			if f := fs.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %q: %w", name, err)
				}
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks that all values are in range.
func (c *Config) Validate() error {
	var errs []string

	if !(c.Size > 0) {
		errs = append(errs, fmt.Sprintf("size must be positive, got %g", c.Size))
	}
	if c.Subdivisions < 1 {
		errs = append(errs, fmt.Sprintf("subdivisions must be at least 1, got %d", c.Subdivisions))
	}
	if !(c.Threshold >= 0) {
		errs = append(errs, fmt.Sprintf("threshold must not be negative, got %g", c.Threshold))
	}
	if !(c.Accuracy > 0) {
		errs = append(errs, fmt.Sprintf("accuracy must be positive, got %g", c.Accuracy))
	}
	if !(c.StrokeWidth >= 0) {
		errs = append(errs, fmt.Sprintf("stroke_width must not be negative, got %g", c.StrokeWidth))
	}
	if !(c.Flatness > 0) {
		errs = append(errs, fmt.Sprintf("flatness must be positive, got %g", c.Flatness))
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		errs = append(errs, fmt.Sprintf("log.format must be text or json, got %q", c.Log.Format))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Options returns the normalization settings.
func (c *Config) Options() *pathnorm.Options {
	return &pathnorm.Options{
		Subdivisions: c.Subdivisions,
		Threshold:    c.Threshold,
		Size:         c.Size,
		Accuracy:     c.Accuracy,
	}
}
