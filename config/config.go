// SPDX-License-Identifier: MIT

// Package config loads walkview settings: deterministic defaults, then an
// optional YAML file, then WALKVIEW_* variables from an optional .env file,
// then the process environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/walkview/layout"
	"github.com/katalvlaran/walkview/playback"
)

// ErrInvalidConfig is returned by Validate and Load for unusable settings.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Environment overrides.
const (
	EnvAddr         = "WALKVIEW_ADDR"
	EnvStepInterval = "WALKVIEW_STEP_INTERVAL"
	EnvLogLevel     = "WALKVIEW_LOG_LEVEL"
	EnvLogFormat    = "WALKVIEW_LOG_FORMAT"
	EnvLayout       = "WALKVIEW_LAYOUT"
)

// Config is the full walkview configuration.
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Playback PlaybackConfig `yaml:"playback"`
	Layout   LayoutConfig   `yaml:"layout"`
	Log      LogConfig      `yaml:"log"`
}

// ServerConfig configures the HTTP listener.
type ServerConfig struct {
	Addr string `yaml:"addr"` // WALKVIEW_ADDR (default ":8080")
}

// PlaybackConfig configures animation pacing.
type PlaybackConfig struct {
	Interval time.Duration `yaml:"interval"` // WALKVIEW_STEP_INTERVAL (default 450ms)
}

// LayoutConfig selects and tunes the surface layout.
type LayoutConfig struct {
	Name       string  `yaml:"name"` // WALKVIEW_LAYOUT (default "force")
	Iterations int     `yaml:"iterations"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
	Seed       int64   `yaml:"seed"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `yaml:"level"`  // WALKVIEW_LOG_LEVEL: debug|info|warn|error
	Format string `yaml:"format"` // WALKVIEW_LOG_FORMAT: text|json
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Server:   ServerConfig{Addr: ":8080"},
		Playback: PlaybackConfig{Interval: playback.DefaultInterval},
		Layout: LayoutConfig{
			Name:       layout.NameForce,
			Iterations: layout.DefaultIterations,
			Width:      layout.DefaultWidth,
			Height:     layout.DefaultHeight,
			Seed:       layout.DefaultSeed,
		},
		Log: LogConfig{Level: "info", Format: "text"},
	}
}

// DefaultEnvFile is the dotenv file read when it exists.
const DefaultEnvFile = ".env"

// Load reads path (skipped when empty) over Default, applies environment
// overrides and validates the result.
func Load(path string) (*Config, error) {
	return LoadWithEnvFile(path, "")
}

// LoadWithEnvFile is Load with envFile as a dotenv layer below the process
// environment. An empty envFile is skipped, as is a missing DefaultEnvFile.
// The process environment is never modified.
func LoadWithEnvFile(path, envFile string) (*Config, error) {
	dotenv, err := readEnvFile(envFile)
	if err != nil {
		return nil, err
	}
	env := func(key, fallback string) string {
		if v := os.Getenv(key); v != "" {
			return v
		}
		return envOrDefault(dotenv, key, fallback)
	}

	c := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, c); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	c.Server.Addr = env(EnvAddr, c.Server.Addr)
	c.Layout.Name = env(EnvLayout, c.Layout.Name)
	c.Log.Level = env(EnvLogLevel, c.Log.Level)
	c.Log.Format = env(EnvLogFormat, c.Log.Format)
	if v := env(EnvStepInterval, ""); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", EnvStepInterval, err)
		}
		c.Playback.Interval = d
	}

	if err := c.Validate(); err != nil {
		return nil, err
	}

	return c, nil
}

// Validate reports the first unusable setting.
func (c *Config) Validate() error {
	switch {
	case c.Server.Addr == "":
		return fmt.Errorf("%w: server.addr is empty", ErrInvalidConfig)
	case c.Playback.Interval <= 0:
		return fmt.Errorf("%w: playback.interval must be positive, got %s", ErrInvalidConfig, c.Playback.Interval)
	case c.Layout.Iterations < 0:
		return fmt.Errorf("%w: layout.iterations must be ≥ 0, got %d", ErrInvalidConfig, c.Layout.Iterations)
	case c.Layout.Width < 0 || c.Layout.Height < 0:
		return fmt.Errorf("%w: layout size must be ≥ 0", ErrInvalidConfig)
	}
	if _, err := c.Layout.Build(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if _, err := parseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	switch strings.ToLower(c.Log.Format) {
	case "text", "json":
	default:
		return fmt.Errorf("%w: log.format %q (want text or json)", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// Build returns the configured layout.
func (lc LayoutConfig) Build() (layout.Layout, error) {
	return layout.New(lc.Name, layout.Config{
		Width:      lc.Width,
		Height:     lc.Height,
		Iterations: lc.Iterations,
		Padding:    layout.DefaultPadding,
		Seed:       lc.Seed,
	})
}

func readEnvFile(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}
	vars, err := godotenv.Read(path)
	switch {
	case err == nil:
		return vars, nil
	case path == DefaultEnvFile && errors.Is(err, fs.ErrNotExist):
		return nil, nil
	default:
		return nil, fmt.Errorf("config: env file %s: %w", path, err)
	}
}

func envOrDefault(vars map[string]string, key, fallback string) string {
	if v := vars[key]; v != "" {
		return v
	}
	return fallback
}
