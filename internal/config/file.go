package config

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/lgbarn/chessmoves-go/internal/errors"
)

// fileConfig mirrors the YAML layout. Pointer fields distinguish "absent"
// from a zero value so only the keys present override the defaults.
type fileConfig struct {
	Verbosity *int    `yaml:"verbosity"`
	StartFEN  *string `yaml:"fen"`
	StartLine *string `yaml:"line"`
	LogFile   *string `yaml:"log_file"`

	Output struct {
		Board         *bool `yaml:"board"`
		Moves         *bool `yaml:"moves"`
		Pins          *bool `yaml:"pins"`
		MaxLineLength *int  `yaml:"max_line_length"`
		JSON          *bool `yaml:"json"`
	} `yaml:"output"`

	Batch struct {
		Path               *string `yaml:"path"`
		Workers            *int    `yaml:"workers"`
		SuppressDuplicates *bool   `yaml:"suppress_duplicates"`
	} `yaml:"batch"`
}

// LoadFile reads a YAML configuration file and applies it on top of cfg.
func LoadFile(cfg *Config, filename string) error {
	b, err := os.ReadFile(filename)
	if err != nil {
		return fmt.Errorf("'%s': %w", filename, err)
	}
	return Apply(cfg, b)
}

// Apply decodes YAML and overrides the fields of cfg that it sets.
// Unknown keys are rejected.
func Apply(cfg *Config, data []byte) error {
	var fc fileConfig
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && err != io.EOF {
		return errors.Wrapf(errors.ErrInvalidConfig, "yaml: %v", err)
	}

	setInt(&cfg.Verbosity, fc.Verbosity)
	setString(&cfg.StartFEN, fc.StartFEN)
	setString(&cfg.StartLine, fc.StartLine)
	setString(&cfg.LogPath, fc.LogFile)

	setBool(&cfg.Output.ShowBoard, fc.Output.Board)
	setBool(&cfg.Output.ShowMoves, fc.Output.Moves)
	setBool(&cfg.Output.ShowPins, fc.Output.Pins)
	setInt(&cfg.Output.MaxLineLength, fc.Output.MaxLineLength)
	setBool(&cfg.Output.JSONFormat, fc.Output.JSON)

	setString(&cfg.Batch.Path, fc.Batch.Path)
	setInt(&cfg.Batch.Workers, fc.Batch.Workers)
	setBool(&cfg.Batch.SuppressDuplicates, fc.Batch.SuppressDuplicates)
	return nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setString(dst *string, v *string) {
	if v != nil {
		*dst = *v
	}
}

func setBool(dst *bool, v *bool) {
	if v != nil {
		*dst = *v
	}
}
