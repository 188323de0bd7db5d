// chessmoves plays through chess positions, listing pseudo-legal moves,
// checks and pins, and reports checkmate and stalemate.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/lgbarn/chessmoves-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessmoves-go version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	if *configFile != "" {
		if err := config.LoadFile(cfg, *configFile); err != nil {
			fmt.Fprintf(os.Stderr, "Error loading config file %s: %v\n", *configFile, err)
			os.Exit(1)
		}
	}
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	setupLogFile(cfg)

	if cfg.Batch.Path != "" {
		if err := runBatchFile(cfg); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	session, err := NewSession(cfg, os.Stdin)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if _, err := session.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error reading input: %v\n", err)
		os.Exit(1)
	}
}

// setupLogFile opens the configured log file, if any.
func setupLogFile(cfg *config.Config) {
	if cfg.LogPath == "" {
		return
	}
	file, err := os.Create(cfg.LogPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", cfg.LogPath, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessmoves [options]\n\n")
	fmt.Fprintf(os.Stderr, "Play moves in long algebraic notation (e2e4) from a position,\n")
	fmt.Fprintf(os.Stderr, "or classify a file of FEN positions with -batch.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nInteractive commands:\n")
	fmt.Fprintf(os.Stderr, "  e2e4   Play a move (promotion letters are accepted and ignored)\n")
	fmt.Fprintf(os.Stderr, "  quit   Leave the game\n")
}
