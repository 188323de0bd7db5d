// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"

	"github.com/lgbarn/chessmoves-go/internal/config"
)

var (
	// Input options
	startFEN           = flag.String("fen", "", "Start from this FEN position (default: initial position)")
	startLine          = flag.String("line", "", "Moves to play from the start position before the first prompt, e.g. \"e2e4 e7e5\"")
	configFile         = flag.String("config", "", "YAML configuration file")
	batchFile          = flag.String("batch", "", "Classify the FEN positions in this file, one per line")
	numWorkers         = flag.Int("workers", 0, "Number of batch workers (0 = number of CPUs)")
	suppressDuplicates = flag.Bool("D", false, "Drop batch positions that repeat an earlier one")

	// Output options
	verbosity  = flag.Int("v", -1, "Verbosity: 0 silent, 1 per-ply summary, 2 running commentary")
	logFile    = flag.String("l", "", "Write the log to this file (default: stderr)")
	showMoves  = flag.Bool("moves", false, "List the pseudo-legal moves each ply")
	showPins   = flag.Bool("pins", false, "List the pinned pieces of the side to move each ply")
	noBoard    = flag.Bool("noboard", false, "Don't print the board each ply")
	jsonOutput = flag.Bool("json", false, "Write batch results in JSON format")
	lineLength = flag.Int("w", 0, "Maximum line length for move lists (0 = keep configured)")

	// Information
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration. Flags left at
// their defaults keep the values from NewConfig or the config file.
func applyFlags(cfg *config.Config) {
	applyInputFlags(cfg)
	applyOutputFlags(cfg)

	if *verbosity >= 0 {
		cfg.Verbosity = *verbosity
	}
	if *logFile != "" {
		cfg.LogPath = *logFile
	}
}

// applyInputFlags configures the start position and batch settings.
func applyInputFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
	if *startLine != "" {
		cfg.StartLine = *startLine
	}
	if *batchFile != "" {
		cfg.Batch.Path = *batchFile
	}
	if *numWorkers > 0 {
		cfg.Batch.Workers = *numWorkers
	}
	if *suppressDuplicates {
		cfg.Batch.SuppressDuplicates = true
	}
}

// applyOutputFlags configures what is printed each ply.
func applyOutputFlags(cfg *config.Config) {
	if *showMoves {
		cfg.Output.ShowMoves = true
	}
	if *showPins {
		cfg.Output.ShowPins = true
	}
	if *noBoard {
		cfg.Output.ShowBoard = false
	}
	if *jsonOutput {
		cfg.Output.JSONFormat = true
	}
	if *lineLength > 0 {
		cfg.Output.MaxLineLength = *lineLength
	}
}
