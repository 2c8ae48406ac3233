package config

import (
	"fmt"

	"github.com/kbukum/pipekit/logger"
)

// ExecSettings holds defaults for the exec subcommand. Command-line
// flags override these.
type ExecSettings struct {
	// Prefix is prepended to dry-run output lines.
	Prefix string `yaml:"prefix" mapstructure:"prefix"`

	// Format is the default pipeline template format (cmdline or file).
	Format string `yaml:"format" mapstructure:"format"`

	// Placeholders is the default key=value placeholder file.
	Placeholders string `yaml:"placeholders" mapstructure:"placeholders"`
}

// Settings contains the tool-level configuration.
type Settings struct {
	Logging logger.Config `yaml:"logging" mapstructure:"logging"`
	Exec    ExecSettings  `yaml:"exec" mapstructure:"exec"`
}

// ApplyDefaults fills in default values where none were configured.
func (s *Settings) ApplyDefaults() {
	s.Logging.ApplyDefaults()
	if s.Exec.Format == "" {
		s.Exec.Format = "cmdline"
	}
}

// Validate checks the settings for consistency.
func (s *Settings) Validate() error {
	if err := s.Logging.Validate(); err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	if s.Exec.Format != "cmdline" && s.Exec.Format != "file" {
		return fmt.Errorf("exec.format must be one of [cmdline, file] (got: %s)", s.Exec.Format)
	}
	return nil
}
