package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithStartLine sets the moves played before the first prompt.
func (b *ConfigBuilder) WithStartLine(line string) *ConfigBuilder {
	b.cfg.StartLine = line
	return b
}

// WithMaxLineLength sets the maximum line length.
func (b *ConfigBuilder) WithMaxLineLength(length int) *ConfigBuilder {
	b.cfg.Output.MaxLineLength = length
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithBoard controls whether the board is printed each ply.
func (b *ConfigBuilder) WithBoard(show bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = show
	return b
}

// WithMoves controls whether the move list is printed each ply.
func (b *ConfigBuilder) WithMoves(show bool) *ConfigBuilder {
	b.cfg.Output.ShowMoves = show
	return b
}

// WithPins controls whether pins are printed each ply.
func (b *ConfigBuilder) WithPins(show bool) *ConfigBuilder {
	b.cfg.Output.ShowPins = show
	return b
}

// WithBatch sets the batch input file and worker count.
func (b *ConfigBuilder) WithBatch(path string, workers int) *ConfigBuilder {
	b.cfg.Batch.Path = path
	b.cfg.Batch.Workers = workers
	return b
}

// WithDuplicateSuppression drops repeated positions from batch input.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled bool) *ConfigBuilder {
	b.cfg.Batch.SuppressDuplicates = enabled
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
