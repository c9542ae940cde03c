// ============================================================================
// kobraille - Korean mathematical braille transcription
// ============================================================================
//
// Package:     config
// Description: Application configuration loaded from TOML or YAML files
// Author:      Mike Stoffels
// Created:     2026-10-16
// License:     MIT
// ============================================================================

package config

import (
	"bytes"
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	kberrors "github.com/msto63/kobraille/pkg/core/errors"
	kblog "github.com/msto63/kobraille/pkg/core/log"
)

// EnvConfig names the environment variable holding the config file path
const EnvConfig = "KOBRAILLE_CONFIG"

// Output modes
const (
	OutputUnicode = "unicode"
	OutputDots    = "dots"
	OutputBoth    = "both"
)

// Config holds the complete application configuration
type Config struct {
	General   GeneralConfig   `toml:"general" yaml:"general"`
	Converter ConverterConfig `toml:"converter" yaml:"converter"`
	Output    OutputConfig    `toml:"output" yaml:"output"`
	Demo      DemoConfig      `toml:"demo" yaml:"demo"`
	TUI       TUIConfig       `toml:"tui" yaml:"tui"`
}

// GeneralConfig holds general application settings
type GeneralConfig struct {
	Name      string `toml:"name" yaml:"name"`
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ConverterConfig holds conversion engine settings
type ConverterConfig struct {
	MaxInputLength int `toml:"max_input_length" yaml:"max_input_length"`
}

// OutputConfig controls how transcriptions are printed
type OutputConfig struct {
	Mode          string `toml:"mode" yaml:"mode"`
	ShowStructure bool   `toml:"show_structure" yaml:"show_structure"`
}

// DemoConfig holds demo runner settings
type DemoConfig struct {
	SamplesFile string `toml:"samples_file" yaml:"samples_file"`
}

// TUIConfig holds interactive converter settings
type TUIConfig struct {
	HistorySize int `toml:"history_size" yaml:"history_size"`
}

// Default returns a configuration with all defaults applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file. Files ending in .yaml
// or .yml are read as YAML, everything else as TOML.
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, kberrors.Newf("config file not found: %s", path).
				WithCode(kberrors.CodeMissingConfig).
				WithDetail("path", path)
		}
		return nil, kberrors.Wrap(err, "failed to read config").
			WithCode(kberrors.CodeConfigError).
			WithDetail("path", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
			return nil, kberrors.Wrap(err, "failed to parse config").
				WithCode(kberrors.CodeInvalidConfig).
				WithDetail("path", path)
		}
	default:
		md, err := toml.Decode(string(data), &cfg)
		if err != nil {
			return nil, kberrors.Wrap(err, "failed to parse config").
				WithCode(kberrors.CodeInvalidConfig).
				WithDetail("path", path)
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return nil, kberrors.Newf("unknown config key %q", undecoded[0].String()).
				WithCode(kberrors.CodeInvalidConfig).
				WithDetail("path", path)
		}
	}

	// Apply defaults
	cfg.applyDefaults()

	// Expand environment variables in paths
	cfg.expandEnvVars()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// SearchPaths returns the default config locations in lookup order
func SearchPaths() []string {
	paths := []string{
		"./configs/config.toml",
		"./config.toml",
	}
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, ".config", "kobraille", "config.toml"))
	}
	return paths
}

// LoadFromEnv loads configuration from the KOBRAILLE_CONFIG environment
// variable or the first existing default location.
func LoadFromEnv() (*Config, error) {
	path := os.Getenv(EnvConfig)
	if path == "" {
		for _, p := range SearchPaths() {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return nil, kberrors.Newf("no config file found, set %s or create configs/config.toml", EnvConfig).
			WithCode(kberrors.CodeMissingConfig)
	}

	return Load(path)
}

// Resolve loads path when given and otherwise searches the environment and
// default locations, falling back to Default when no file exists.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	cfg, err := LoadFromEnv()
	if kberrors.HasCode(err, kberrors.CodeMissingConfig) && os.Getenv(EnvConfig) == "" {
		return Default(), nil
	}
	return cfg, err
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	// General
	if c.General.Name == "" {
		c.General.Name = "kobraille"
	}
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "console"
	}

	// Converter
	if c.Converter.MaxInputLength == 0 {
		c.Converter.MaxInputLength = 4096
	}

	// Output
	if c.Output.Mode == "" {
		c.Output.Mode = OutputUnicode
	}

	// TUI
	if c.TUI.HistorySize == 0 {
		c.TUI.HistorySize = 50
	}
}

// expandEnvVars expands environment variables in configuration values
func (c *Config) expandEnvVars() {
	c.Demo.SamplesFile = os.ExpandEnv(c.Demo.SamplesFile)
}

// Validate checks the configuration values
func (c *Config) Validate() error {
	invalid := func(key string, value interface{}, msg string) error {
		return kberrors.Newf("invalid %s: %s", key, msg).
			WithCode(kberrors.CodeInvalidConfig).
			WithDetail("key", key).
			WithDetail("value", value)
	}

	if _, err := kblog.ParseLevel(c.General.LogLevel); err != nil {
		return invalid("general.log_level", c.General.LogLevel, err.Error())
	}
	if _, err := kblog.ParseFormat(c.General.LogFormat); err != nil {
		return invalid("general.log_format", c.General.LogFormat, err.Error())
	}
	if c.Converter.MaxInputLength < 0 {
		return invalid("converter.max_input_length", c.Converter.MaxInputLength, "must not be negative")
	}
	switch c.Output.Mode {
	case OutputUnicode, OutputDots, OutputBoth:
	default:
		return invalid("output.mode", c.Output.Mode, "must be unicode, dots or both")
	}
	if c.TUI.HistorySize < 0 {
		return invalid("tui.history_size", c.TUI.HistorySize, "must not be negative")
	}
	return nil
}

// Logger builds a logger writing to output from the general settings
func (c *Config) Logger(output io.Writer) (*kblog.Logger, error) {
	level, err := kblog.ParseLevel(c.General.LogLevel)
	if err != nil {
		return nil, err
	}
	format, err := kblog.ParseFormat(c.General.LogFormat)
	if err != nil {
		return nil, err
	}
	return kblog.NewWithConfig(kblog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   c.General.Name,
	}), nil
}
