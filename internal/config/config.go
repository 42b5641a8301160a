package config

import (
	"fmt"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"
)

// Reject policies for malformed lines.
const (
	MalformedSkip  = "skip"  // count and drop the line
	MalformedAbort = "abort" // fail the whole batch
)

var quarterPattern = regexp.MustCompile(`^\d{4}Q[1-4]$`)

// Config holds all runtime configuration for an rxload run.
type Config struct {
	DSN         string
	FilePath    string
	OutPath     string
	Quarter     string `yaml:"quarter"`      // e.g. "2025Q1"
	OnMalformed string `yaml:"on_malformed"` // "skip" or "abort"
	LogFormat   string // "text" or "json"
	Force       bool
	KeepStaging bool
}

// yamlConfig is the on-disk YAML structure.
type yamlConfig struct {
	Quarter     string `yaml:"quarter"`
	OnMalformed string `yaml:"on_malformed"`
}

// LoadFromFile reads a YAML config file and merges its values into Config.
// Values already set (by flags) win over file values.
func (c *Config) LoadFromFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config file: %w", err)
	}
	var yc yamlConfig
	if err := yaml.Unmarshal(data, &yc); err != nil {
		return fmt.Errorf("parse config file: %w", err)
	}
	if c.Quarter == "" {
		c.Quarter = yc.Quarter
	}
	if c.OnMalformed == "" {
		c.OnMalformed = yc.OnMalformed
	}
	return nil
}

// Validate checks required fields, defaults the malformed-line policy to
// skip, and verifies the quarter label when present.
func (c *Config) Validate() error {
	if c.FilePath == "" {
		return fmt.Errorf("--file is required")
	}
	if _, err := os.Stat(c.FilePath); err != nil {
		return fmt.Errorf("file not accessible: %w", err)
	}
	if c.OnMalformed == "" {
		c.OnMalformed = MalformedSkip
	}
	if c.OnMalformed != MalformedSkip && c.OnMalformed != MalformedAbort {
		return fmt.Errorf("on_malformed must be %q or %q, got %q", MalformedSkip, MalformedAbort, c.OnMalformed)
	}
	if c.Quarter != "" && !quarterPattern.MatchString(c.Quarter) {
		return fmt.Errorf("quarter %q does not match YYYYQn", c.Quarter)
	}
	return nil
}

// ValidateWithDSN checks both file and DSN fields.
func (c *Config) ValidateWithDSN() error {
	if err := c.Validate(); err != nil {
		return err
	}
	if c.DSN == "" {
		return fmt.Errorf("--dsn or RXREIMB_DB_URL is required")
	}
	return nil
}
