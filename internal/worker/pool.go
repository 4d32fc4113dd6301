// Package worker analyses FEN positions on a pool of goroutines.
package worker

import (
	stderrors "errors"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chesscore-go/internal/analysis"
	"github.com/lgbarn/chesscore-go/internal/engine"
	chesserrors "github.com/lgbarn/chesscore-go/internal/errors"
)

// WorkItem is one position read from the input.
type WorkItem struct {
	FEN   string
	Line  int // Source line, 1-based; 0 when unknown
	Index int // Position in submission order
}

// ProcessResult is the outcome of analysing one WorkItem.
type ProcessResult struct {
	Index  int
	Line   int
	Report *analysis.Report // nil when Error is set
	Error  error
}

// ProcessFunc analyses a single item.
type ProcessFunc func(item WorkItem) ProcessResult

// AnalyzeFunc returns a ProcessFunc that loads each item's FEN into a fresh
// board built with opts. Invalid positions are reported through
// ProcessResult.Error with the source line attached.
func AnalyzeFunc(opts ...engine.Option) ProcessFunc {
	return func(item WorkItem) ProcessResult {
		result := ProcessResult{Index: item.Index, Line: item.Line}
		report, err := analysis.AnalyzeFEN(item.FEN, opts...)
		if err != nil {
			var posErr *chesserrors.PositionError
			if stderrors.As(err, &posErr) {
				posErr.Line = item.Line
			}
			result.Error = err
			return result
		}
		result.Report = report
		return result
	}
}

// Pool runs a ProcessFunc over submitted items on a fixed number of
// goroutines. Results come back through Collect in submission order.
type Pool struct {
	workers int
	buffer  int
	process ProcessFunc

	items   chan WorkItem
	results chan ProcessResult
	wg      sync.WaitGroup
	stopped atomic.Bool
}

// PoolOption configures a Pool.
type PoolOption func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are
// ignored.
func WithWorkers(n int) PoolOption {
	return func(p *Pool) {
		if n >= 1 {
			p.workers = n
		}
	}
}

// WithBufferSize sets the capacity of the item and result channels. Values
// below 1 are ignored.
func WithBufferSize(size int) PoolOption {
	return func(p *Pool) {
		if size >= 1 {
			p.buffer = size
		}
	}
}

// NewPoolWithOptions creates a pool running process. It defaults to one
// worker and a buffer of 10.
func NewPoolWithOptions(process ProcessFunc, opts ...PoolOption) *Pool {
	p := &Pool{
		workers: 1,
		buffer:  10,
		process: process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.buffer)
	p.results = make(chan ProcessResult, p.buffer)
	return p
}

// Start launches the workers.
func (p *Pool) Start() {
	p.wg.Add(p.workers)
	for i := 0; i < p.workers; i++ {
		go p.run()
	}
}

func (p *Pool) run() {
	defer p.wg.Done()
	for item := range p.items {
		// Items queued before Stop are drained unprocessed.
		if p.stopped.Load() {
			continue
		}
		p.results <- p.process(item)
	}
}

// Submit queues an item, blocking while the buffer is full. It returns
// false without queuing once the pool is stopped.
func (p *Pool) Submit(item WorkItem) bool {
	if p.stopped.Load() {
		return false
	}
	p.items <- item
	return true
}

// Stop abandons the batch: queued items are skipped and Submit refuses new
// ones. Results already produced are still returned by Collect.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// IsStopped reports whether Stop has been called.
func (p *Pool) IsStopped() bool {
	return p.stopped.Load()
}

// Close signals that no more items will be submitted. The result channel is
// closed once every worker has finished.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Collect waits for the pool to be closed and returns every result ordered
// by Index.
func (p *Pool) Collect() []ProcessResult {
	var results []ProcessResult
	for result := range p.results {
		results = append(results, result)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results
}
