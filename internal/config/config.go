// SPDX-License-Identifier: MIT

// Package config holds the lvsearch run configuration: a YAML file provides
// the base values and command-line flags overlay them.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

var (
	// ErrRead is returned when the configuration file cannot be read.
	ErrRead = errors.New("config: cannot read file")

	// ErrDecode is returned for malformed YAML or unknown keys.
	ErrDecode = errors.New("config: cannot decode")

	// ErrInvalid is returned by Validate.
	ErrInvalid = errors.New("config: invalid")
)

// Config is one lvsearch invocation.
type Config struct {
	Algorithm       string `yaml:"algorithm"`
	States          string `yaml:"states"`
	Grid            string `yaml:"grid"`
	Conn            int    `yaml:"conn"`
	Heuristics      string `yaml:"heuristics"`
	CheckOptimistic bool   `yaml:"check_optimistic"`
	CheckConsistent bool   `yaml:"check_consistent"`
	Workers         int    `yaml:"workers"`
	LogLevel        string `yaml:"log_level"`
	LogJSON         bool   `yaml:"log_json"`
	MetricsFile     string `yaml:"metrics_file"`
}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		Conn:     4,
		Workers:  1,
		LogLevel: "info",
	}
}

// Load reads path over Default. An empty path yields Default unchanged.
func Load(path string) (Config, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("%w: %v", ErrRead, err)
	}

	return Decode(data)
}

// Decode parses YAML over Default. Unknown keys are rejected.
func Decode(data []byte) (Config, error) {
	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, fmt.Errorf("%w: %v", ErrDecode, err)
	}

	return cfg, nil
}

// Validate checks the fields a run needs.
func (c Config) Validate() error {
	if (c.States == "") == (c.Grid == "") {
		return fmt.Errorf("%w: exactly one of state space or grid map is required", ErrInvalid)
	}
	if c.Conn != 4 && c.Conn != 8 {
		return fmt.Errorf("%w: conn must be 4 or 8, got %d", ErrInvalid, c.Conn)
	}
	if c.Workers < 1 {
		return fmt.Errorf("%w: workers must be >= 1, got %d", ErrInvalid, c.Workers)
	}
	if (c.CheckOptimistic || c.CheckConsistent) && c.Heuristics == "" && c.Grid == "" {
		return fmt.Errorf("%w: heuristic checks need a heuristic file or a grid map", ErrInvalid)
	}

	return nil
}

// NeedsHeuristics reports whether a heuristic file must be loaded. Grid maps
// carry their own estimate, which a heuristic file overrides.
func (c Config) NeedsHeuristics() bool {
	return c.Heuristics != ""
}
