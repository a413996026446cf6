// Package config loads viterbiplot settings from defaults, an optional YAML
// file and VITERBIPLOT_ prefixed environment variables, in that order.
package config

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"github.com/uyouii/viterbi-plots/common"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Bins        int     `yaml:"bins,omitempty" env:"BINS, overwrite"`
	Width       float64 `yaml:"width,omitempty" env:"WIDTH, overwrite"`
	Height      float64 `yaml:"height,omitempty" env:"HEIGHT, overwrite"`
	ImageFormat string  `yaml:"image_format,omitempty" env:"IMAGE_FORMAT, overwrite"`
	// OutputDir defaults to the directory of the input file when empty.
	OutputDir string `yaml:"output_dir,omitempty" env:"OUTPUT_DIR, overwrite"`
	KDE       bool   `yaml:"kde,omitempty" env:"KDE, overwrite"`
	Transform string `yaml:"transform,omitempty" env:"TRANSFORM, overwrite"`
	LogLevel  string `yaml:"log_level,omitempty" env:"LOG_LEVEL, overwrite"`
	LogFormat string `yaml:"log_format,omitempty" env:"LOG_FORMAT, overwrite"`
}

func New() *Config {
	return &Config{
		Bins:        DefaultBins,
		Width:       DefaultWidth,
		Height:      DefaultHeight,
		ImageFormat: DefaultImageFormat,
		Transform:   DefaultTransform,
		LogLevel:    DefaultLogLevel,
		LogFormat:   DefaultLogFormat,
	}
}

// Load reads path, or DefaultConfigFile when path is empty and the file
// exists, then applies the process environment. A .env file in the working
// directory is loaded into the environment first.
func Load(ctx context.Context, path string) (*Config, error) {
	if _, err := os.Stat(DefaultEnvFile); err == nil {
		if err := godotenv.Load(DefaultEnvFile); err != nil {
			return nil, fmt.Errorf("%w: load %s: %w", common.ErrorInvalidValue, DefaultEnvFile, err)
		}
	}
	return LoadWithLookuper(ctx, path, envconfig.OsLookuper())
}

func LoadWithLookuper(ctx context.Context, path string, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := New()

	if path == "" {
		if _, err := os.Stat(DefaultConfigFile); err == nil {
			path = DefaultConfigFile
		}
	}
	if path != "" {
		if err := cfg.readFile(path); err != nil {
			return nil, err
		}
	}

	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: envconfig.PrefixLookuper(EnvPrefix, lookuper),
	}); err != nil {
		return nil, fmt.Errorf("%w: environment: %w", common.ErrorInvalidValue, err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) readFile(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %w", common.ErrorFileAccess, err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: config %s: %w", common.ErrorInvalidValue, path, err)
	}
	return nil
}

func (c *Config) Validate() error {
	if c.Bins < 0 {
		return fmt.Errorf("%w: bins must not be negative, got %d", common.ErrorInvalidValue, c.Bins)
	}
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: image size must be positive, got %vx%v", common.ErrorInvalidValue, c.Width, c.Height)
	}
	if c.ImageFormat == "" {
		return fmt.Errorf("%w: image format is empty", common.ErrorInvalidValue)
	}
	return nil
}
