// Package config provides layered configuration loading for convlint:
// defaults, then the user file, then the project file, each overriding the
// previous layer field-wise.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sirkon/convlint/internal/convrules"
	"github.com/sirkon/convlint/internal/report"
)

// ProjectConfigFile is the name of the project-level config file, looked up
// in the working directory and its ancestors.
const ProjectConfigFile = "convlint.yaml"

// UserConfigPath is the user-level config location under the home directory.
const UserConfigPath = ".config/convlint/config.yaml"

// Config is the complete convlint configuration.
type Config struct {
	// Rules lists paths of rule documents to load, in order.
	Rules []string `yaml:"rules"`
	// Builtin toggles the embedded starter catalog. Defaults to true.
	Builtin *bool `yaml:"builtin"`
	// MinSeverity excludes violations below it from the report.
	MinSeverity convrules.Severity `yaml:"min_severity"`
	// FailOn is the severity at which findings flip the exit code.
	FailOn convrules.Severity `yaml:"fail_on"`
	// Format selects the report rendering.
	Format report.Format `yaml:"format"`
	// Jobs bounds the scan worker pool. 0 means all CPUs.
	Jobs int `yaml:"jobs"`
	// Exclude lists glob patterns of paths to skip.
	Exclude []string `yaml:"exclude"`
}

// Default returns the base configuration layer.
func Default() *Config {
	builtin := true
	return &Config{
		Builtin:     &builtin,
		MinSeverity: convrules.SeverityInfo,
		FailOn:      convrules.SeverityError,
		Format:      report.FormatText,
	}
}

// UseBuiltin resolves the builtin toggle with its default.
func (c *Config) UseBuiltin() bool {
	if c.Builtin == nil {
		return true
	}

	return *c.Builtin
}

// Merge overlays non-zero fields of other on top of c.
func (c *Config) Merge(other *Config) {
	if other == nil {
		return
	}
	if len(other.Rules) > 0 {
		c.Rules = other.Rules
	}
	if other.Builtin != nil {
		c.Builtin = other.Builtin
	}
	if other.MinSeverity != 0 {
		c.MinSeverity = other.MinSeverity
	}
	if other.FailOn != 0 {
		c.FailOn = other.FailOn
	}
	if other.Format != 0 {
		c.Format = other.Format
	}
	if other.Jobs != 0 {
		c.Jobs = other.Jobs
	}
	if len(other.Exclude) > 0 {
		c.Exclude = other.Exclude
	}
}

// Validate checks the merged configuration.
func (c *Config) Validate() error {
	if !c.MinSeverity.Valid() {
		return fmt.Errorf("invalid min_severity")
	}
	if !c.FailOn.Valid() {
		return fmt.Errorf("invalid fail_on")
	}
	if c.Jobs < 0 {
		return fmt.Errorf("jobs cannot be negative, got %d", c.Jobs)
	}

	return nil
}

// LoadFromFile reads one configuration layer.
func LoadFromFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var c Config
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return &c, nil
}
