// Package config provides configuration for the chessmoves driver.
package config

import (
	"io"
	"os"

	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/notation"
)

// Config holds all program configuration.
type Config struct {
	Verbosity int // 0=nothing, 1=per-ply summary, 2=running commentary

	// Position the interactive loop starts from
	StartFEN string

	// Moves played from StartFEN before the first prompt, space separated
	StartLine string

	// LogPath names the log file; empty means LogFile stays as set.
	LogPath string

	// Sub-configurations
	Output *OutputConfig
	Batch  *BatchConfig

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Verbosity:  1,
		StartFEN:   notation.InitialFEN,
		Output:     NewOutputConfig(),
		Batch:      NewBatchConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// SetOutput sets the output writer.
func (c *Config) SetOutput(w io.Writer) {
	c.OutputFile = w
}

// Validate checks that the configuration can be run. Errors wrap
// ErrInvalidConfig and name the offending field.
func (c *Config) Validate() error {
	if c.Verbosity < 0 || c.Verbosity > 2 {
		return errors.Wrapf(errors.ErrInvalidConfig, "verbosity %d out of range 0..2", c.Verbosity)
	}
	if _, err := notation.DecodeFEN(c.StartFEN); err != nil {
		return errors.Wrapf(errors.ErrInvalidConfig, "start fen: %v", err)
	}
	if c.Batch.Workers < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "workers %d must not be negative", c.Batch.Workers)
	}
	if c.Output.MaxLineLength < 0 {
		return errors.Wrapf(errors.ErrInvalidConfig, "max line length %d must not be negative", c.Output.MaxLineLength)
	}
	return nil
}
