package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the command line settings. Fields missing from the config
// file keep their defaults.
type Config struct {
	Prompt             string `toml:"prompt" yaml:"prompt"`
	ContinuationPrompt string `toml:"continuation_prompt" yaml:"continuation_prompt"`
	HistoryFile        string `toml:"history_file" yaml:"history_file"`
	Color              bool   `toml:"color" yaml:"color"`

	// Evaluation timeout for run, eg. "5s". Empty means no timeout.
	Timeout string `toml:"timeout" yaml:"timeout"`
}

func DefaultConfig() *Config {
	return &Config{
		Prompt:             ">> ",
		ContinuationPrompt: ".. ",
		HistoryFile:        filepath.Join(wocDir(), "history"),
		Color:              true,
	}
}

func wocDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".woc"
	}
	return filepath.Join(home, ".woc")
}

// LoadConfig reads the config file at path. An empty path means the default
// location, which is allowed to not exist. The format is YAML for .yaml and
// .yml files and TOML otherwise.
func LoadConfig(path string) (*Config, error) {
	cfg := DefaultConfig()

	explicit := path != ""
	if !explicit {
		path = filepath.Join(wocDir(), "config.toml")
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	if err := parseConfig(content, configFormat(path), cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}

	if _, err := cfg.TimeoutDuration(); err != nil {
		return nil, err
	}

	cfg.HistoryFile = expandHome(cfg.HistoryFile)
	return cfg, nil
}

type format int

const (
	formatTOML format = iota
	formatYAML
)

func configFormat(path string) format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML
	}
	return formatTOML
}

func parseConfig(content []byte, f format, cfg *Config) error {
	switch f {
	case formatYAML:
		return yaml.Unmarshal(content, cfg)
	default:
		_, err := toml.Decode(string(content), cfg)
		return err
	}
}

// TimeoutDuration parses Timeout. Zero means no timeout.
func (c *Config) TimeoutDuration() (time.Duration, error) {
	if c.Timeout == "" {
		return 0, nil
	}

	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid timeout %q: must not be negative", c.Timeout)
	}
	return d, nil
}

func expandHome(path string) string {
	if path == "~" || strings.HasPrefix(path, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}
