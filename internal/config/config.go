// Package config loads the optional .kompilator.yaml project file
// (SPEC_FULL.md's AMBIENT STACK section) using github.com/goccy/go-yaml,
// the same YAML library the teacher's dependency graph already pulls in.
// Absent a config file, Default() applies.
package config

import (
	"fmt"
	"os"

	"github.com/goccy/go-yaml"
)

// DumpFormat is the default rendering internal/dump's CLI wiring falls
// back to when --format is not given.
type DumpFormat string

const (
	FormatText DumpFormat = "text"
	FormatJSON DumpFormat = "json"
	FormatYAML DumpFormat = "yaml"
)

// BooleanContextPolicy controls whether a non-boolean if/while/repeat
// condition (spec §7's NonBooleanConditionError) is a hard error or a
// warning that still lets analysis continue.
type BooleanContextPolicy string

const (
	PolicyError   BooleanContextPolicy = "error"
	PolicyWarning BooleanContextPolicy = "warning"
)

// Config is the decoded shape of .kompilator.yaml.
type Config struct {
	Verbose              bool                 `yaml:"verbose"`
	DumpFormat           DumpFormat           `yaml:"dump_format"`
	BooleanContextPolicy BooleanContextPolicy `yaml:"boolean_context_policy"`
}

// Default returns the built-in configuration used when no project file
// is present: quiet, text dumps, non-boolean conditions are hard errors
// (spec §7's literal behavior).
func Default() *Config {
	return &Config{
		Verbose:              false,
		DumpFormat:           FormatText,
		BooleanContextPolicy: PolicyError,
	}
}

// Load reads and decodes a .kompilator.yaml file at path, layering it
// over Default() so a partial file only overrides the keys it sets.
func Load(path string) (*Config, error) {
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(raw, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}
