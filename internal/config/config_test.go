package config

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/lgbarn/chessmoves-go/internal/errors"
	"github.com/lgbarn/chessmoves-go/internal/notation"
	"github.com/lgbarn/chessmoves-go/internal/testutil"
)

// TestNewConfig_Defaults verifies Config has sensible defaults
func TestNewConfig_Defaults(t *testing.T) {
	cfg := NewConfig()

	if cfg.Verbosity != 1 {
		t.Errorf("Verbosity = %d, want 1", cfg.Verbosity)
	}
	if cfg.StartFEN != notation.InitialFEN {
		t.Errorf("StartFEN = %q, want the initial position", cfg.StartFEN)
	}
	if !cfg.Output.ShowBoard {
		t.Error("ShowBoard should be true by default")
	}
	if cfg.Output.ShowMoves || cfg.Output.ShowPins {
		t.Error("move and pin listings should be off by default")
	}
	if cfg.Output.MaxLineLength != 80 {
		t.Errorf("MaxLineLength = %d, want 80", cfg.Output.MaxLineLength)
	}
	if cfg.Batch.Path != "" || cfg.Batch.Workers != 0 {
		t.Errorf("Batch = %+v, want zero value", *cfg.Batch)
	}
	if cfg.OutputFile != os.Stdout || cfg.LogFile != os.Stderr {
		t.Error("default streams should be stdout and stderr")
	}
	testutil.AssertNoError(t, cfg.Validate())
}

// TestConfig_SetOutput verifies output stream setting
func TestConfig_SetOutput(t *testing.T) {
	cfg := NewConfig()
	buf := &bytes.Buffer{}

	cfg.SetOutput(buf)

	if cfg.OutputFile != buf {
		t.Error("SetOutput did not set OutputFile")
	}
}

// TestConfigBuilder verifies the builder pattern works correctly
func TestConfigBuilder(t *testing.T) {
	out, log := &bytes.Buffer{}, &bytes.Buffer{}
	cfg := NewConfigBuilder().
		WithStartFEN("4k3/8/8/8/8/8/8/4K3 w - - 0 1").
		WithStartLine("e1e2").
		WithMaxLineLength(120).
		WithJSONOutput(true).
		WithBoard(false).
		WithMoves(true).
		WithPins(true).
		WithBatch("positions.txt", 4).
		WithDuplicateSuppression(true).
		WithOutput(out).
		WithLog(log).
		WithVerbosity(2).
		Build()

	testutil.AssertEqual(t, cfg.StartFEN, "4k3/8/8/8/8/8/8/4K3 w - - 0 1")
	testutil.AssertEqual(t, cfg.StartLine, "e1e2")
	testutil.AssertEqual(t, *cfg.Output, OutputConfig{
		ShowMoves:     true,
		ShowPins:      true,
		MaxLineLength: 120,
		JSONFormat:    true,
	})
	testutil.AssertEqual(t, *cfg.Batch, BatchConfig{Path: "positions.txt", Workers: 4, SuppressDuplicates: true})
	testutil.AssertEqual(t, cfg.Verbosity, 2)
	if cfg.OutputFile != out || cfg.LogFile != log {
		t.Error("builder did not set the streams")
	}
}

func TestConfig_Validate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"verbosity too high", func(c *Config) { c.Verbosity = 3 }},
		{"negative verbosity", func(c *Config) { c.Verbosity = -1 }},
		{"bad start fen", func(c *Config) { c.StartFEN = "4k3/8 w" }},
		{"negative workers", func(c *Config) { c.Batch.Workers = -2 }},
		{"negative line length", func(c *Config) { c.Output.MaxLineLength = -1 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := NewConfig()
			tt.modify(cfg)
			testutil.AssertErrorIs(t, cfg.Validate(), errors.ErrInvalidConfig)
		})
	}
}

func TestApply(t *testing.T) {
	cfg := NewConfig()
	data := []byte(`
verbosity: 2
fen: "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
line: "h8h7"
log_file: chessmoves.log
output:
  board: false
  pins: true
  max_line_length: 60
batch:
  workers: 3
  suppress_duplicates: true
`)

	testutil.AssertNoError(t, Apply(cfg, data))
	testutil.AssertEqual(t, cfg.Verbosity, 2)
	testutil.AssertEqual(t, cfg.StartFEN, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	testutil.AssertEqual(t, cfg.StartLine, "h8h7")
	testutil.AssertEqual(t, cfg.LogPath, "chessmoves.log")
	testutil.AssertEqual(t, *cfg.Output, OutputConfig{ShowPins: true, MaxLineLength: 60})
	testutil.AssertEqual(t, *cfg.Batch, BatchConfig{Workers: 3, SuppressDuplicates: true})
}

func TestApply_KeepsDefaultsForMissingKeys(t *testing.T) {
	cfg := NewConfig()
	testutil.AssertNoError(t, Apply(cfg, []byte("output:\n  moves: true\n")))

	want := NewConfig()
	want.Output.ShowMoves = true
	testutil.AssertEqual(t, *cfg.Output, *want.Output)
	testutil.AssertEqual(t, cfg.Verbosity, want.Verbosity)
	testutil.AssertEqual(t, cfg.StartFEN, want.StartFEN)

	testutil.AssertNoError(t, Apply(cfg, nil), "empty document")
}

func TestApply_Errors(t *testing.T) {
	tests := []struct {
		name string
		data string
	}{
		{"unknown key", "colour: blue\n"},
		{"wrong type", "verbosity: loud\n"},
		{"malformed", "output: [\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Apply(NewConfig(), []byte(tt.data))
			testutil.AssertErrorIs(t, err, errors.ErrInvalidConfig)
		})
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "chessmoves.yaml")
	if err := os.WriteFile(path, []byte("output:\n  json: true\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg := NewConfig()
	testutil.AssertNoError(t, LoadFile(cfg, path))
	testutil.AssertTrue(t, cfg.Output.JSONFormat)

	err := LoadFile(cfg, filepath.Join(dir, "missing.yaml"))
	testutil.AssertError(t, err)
	testutil.AssertTrue(t, errors.Is(err, os.ErrNotExist))
}
