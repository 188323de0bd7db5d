package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"

	"github.com/lgbarn/chessmoves-go/internal/config"
	"github.com/lgbarn/chessmoves-go/internal/hashing"
	"github.com/lgbarn/chessmoves-go/internal/notation"
	"github.com/lgbarn/chessmoves-go/internal/output"
	"github.com/lgbarn/chessmoves-go/internal/worker"
)

// runBatchFile classifies the positions in cfg.Batch.Path.
func runBatchFile(cfg *config.Config) error {
	file, err := os.Open(cfg.Batch.Path)
	if err != nil {
		return err
	}
	defer file.Close() //nolint:errcheck // read-only

	return runBatch(cfg, file)
}

// runBatch reads one FEN per line from r, classifies them concurrently and
// writes the results in input order. Blank lines and lines starting with
// '#' are skipped; the index of a result is its 1-based line number.
// With duplicate suppression a position seen on an earlier line is
// dropped, comparing everything but the clocks.
//
// Results are consumed by this goroutine alone, so the result writer
// needs no locking.
func runBatch(cfg *config.Config, r io.Reader) error {
	var items []worker.WorkItem
	var detector *hashing.DuplicateDetector
	if cfg.Batch.SuppressDuplicates {
		detector = hashing.NewDuplicateDetector(false)
	}

	scanner := bufio.NewScanner(r)
	for line := 1; scanner.Scan(); line++ {
		text := strings.TrimSpace(scanner.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		if detector != nil {
			// Undecodable lines are left for the workers to report.
			if pos, err := notation.DecodeFEN(text); err == nil && detector.CheckAndAdd(&pos) {
				continue
			}
		}
		items = append(items, worker.WorkItem{FEN: text, Index: line})
	}
	if err := scanner.Err(); err != nil {
		return err
	}

	numWorkers := cfg.Batch.Workers
	if numWorkers == 0 {
		numWorkers = runtime.NumCPU()
	}
	bufferSize := len(items)
	if bufferSize > 100 {
		bufferSize = 100
	}

	pool := worker.NewPoolWithOptions(worker.Classify,
		worker.WithWorkers(numWorkers),
		worker.WithBufferSize(bufferSize))
	results := pool.Run(context.Background(), items)

	var writer output.ResultWriter = output.NewTextWriter(cfg.OutputFile)
	if cfg.Output.JSONFormat {
		writer = output.NewJSONWriter(cfg.OutputFile)
	}

	for _, res := range results {
		out := output.Result{
			Index:     res.Index,
			FEN:       res.FEN,
			InCheck:   res.InCheck,
			MoveCount: res.MoveCount,
		}
		if res.Error != nil {
			out.Error = res.Error.Error()
		} else {
			out.Outcome = res.Outcome.String()
		}
		if err := writer.WriteResult(out); err != nil {
			return err
		}
	}
	if err := writer.Close(); err != nil {
		return err
	}

	if cfg.Verbosity > 0 {
		classified, rejected := pool.Stats()
		fmt.Fprintf(cfg.LogFile, "%d position(s) classified, %d rejected.\n", classified, rejected)
		if detector != nil {
			fmt.Fprintf(cfg.LogFile, "%d duplicate(s) suppressed.\n", detector.DuplicateCount())
		}
	}
	return nil
}
