// Package config provides configuration for chess matches and the console front end.
package config

import (
	"io"
	"os"
)

// Config holds all program configuration.
type Config struct {
	// Rule variations applied by the match controller
	Rules RulesConfig

	// Board rendering
	Display DisplayConfig

	// Verbosity: 0=nothing, 1=game events, 2=every move
	Verbosity int

	// Input source for console commands
	InputFile io.Reader

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Rules:      *NewRulesConfig(),
		Display:    *NewDisplayConfig(),
		Verbosity:  1,
		InputFile:  os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	return c.Rules.Validate()
}
