// Package worker classifies positions on a fixed set of goroutines.
package worker

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessmoves-go/internal/engine"
)

// WorkItem represents a position to be classified.
type WorkItem struct {
	FEN   string
	Index int // Position in the input, used to restore order
}

// ProcessResult represents the result of classifying a position.
type ProcessResult struct {
	FEN       string
	Index     int
	Outcome   engine.Outcome
	InCheck   bool // Side to move is in check
	MoveCount int  // Moves that do not leave the mover's king attacked
	Error     error
}

// ProcessFunc classifies one item. All workers of a pool share edges,
// which is never written after construction.
type ProcessFunc func(item WorkItem, edges *engine.EdgeTable) ProcessResult

// Pool runs a ProcessFunc over submitted positions.
type Pool struct {
	numWorkers  int
	bufferSize  int
	edges       *engine.EdgeTable
	workChan    chan WorkItem
	resultChan  chan ProcessResult
	processFunc ProcessFunc
	wg          sync.WaitGroup
	stopped     atomic.Bool

	classified atomic.Int64
	rejected   atomic.Int64
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the channel buffer size.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// WithEdges sets the edge table handed to the ProcessFunc.
func WithEdges(edges *engine.EdgeTable) PoolOption {
	return func(p *Pool) {
		if edges != nil {
			p.edges = edges
		}
	}
}

// NewPoolWithOptions creates a new worker pool using functional options.
// Default: 1 worker, buffer size of 10, the shared edge table.
func NewPoolWithOptions(processFunc ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		numWorkers:  1,
		bufferSize:  10,
		edges:       engine.Edges(),
		processFunc: processFunc,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.workChan = make(chan WorkItem, p.bufferSize)
	p.resultChan = make(chan ProcessResult, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.worker()
	}
}

// worker processes items from the work channel until it is closed.
func (p *Pool) worker() {
	defer p.wg.Done()

	for item := range p.workChan {
		if p.IsStopped() {
			continue // drain
		}
		res := p.processFunc(item, p.edges)
		if res.Error != nil {
			p.rejected.Add(1)
		} else {
			p.classified.Add(1)
		}
		p.resultChan <- res
	}
}

// Submit queues item, blocking while the buffer is full. It gives up with
// ctx's error once ctx is done.
func (p *Pool) Submit(ctx context.Context, item WorkItem) error {
	select {
	case p.workChan <- item:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Stop makes the workers discard the items still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped returns true if the pool has been stopped.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close closes the work channel and waits for all workers to finish.
// The result channel is closed when Close returns.
func (p *Pool) Close() {
	close(p.workChan)
	p.wg.Wait()
	close(p.resultChan)
}

// Results returns the result channel for reading processed results.
func (p *Pool) Results() <-chan ProcessResult {
	return p.resultChan
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Stats returns how many positions were classified and how many were
// rejected with an error so far.
func (p *Pool) Stats() (classified, rejected int) {
	return int(p.classified.Load()), int(p.rejected.Load())
}

// Run starts the pool, feeds it items, closes it and returns the results
// sorted by index. When ctx is cancelled the pool is stopped and the
// positions not yet classified are missing from the results.
func (p *Pool) Run(ctx context.Context, items []WorkItem) []ProcessResult {
	p.Start()
	go func() {
		defer p.Close()
		for _, item := range items {
			if err := p.Submit(ctx, item); err != nil {
				p.Stop()
				return
			}
		}
	}()
	return CollectOrdered(p)
}
