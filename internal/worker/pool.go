// Package worker spreads perft root moves across goroutines.
package worker

import (
	"context"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// WorkItem is one root move to count below. Each item carries its own
// position copy, so workers never share mutable board state.
type WorkItem struct {
	Position *chess.Position
	Move     chess.Move
	Depth    int
	Index    int
}

// Result is the node count for one root move.
type Result struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Err   error
}

// ProcessFunc counts the nodes below one work item.
type ProcessFunc func(ctx context.Context, item WorkItem) Result

// Pool runs a ProcessFunc over submitted items on a fixed set of goroutines.
type Pool struct {
	numWorkers int
	bufferSize int
	process    ProcessFunc
	items      chan WorkItem
	results    chan Result
	wg         sync.WaitGroup
	skipped    atomic.Int64
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the item and result channel buffer size.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// NewPool creates a pool with one worker and a buffer of 10 unless options
// say otherwise.
func NewPool(process ProcessFunc, opts ...Option) *Pool {
	p := &Pool{
		numWorkers: 1,
		bufferSize: 10,
		process:    process,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.items = make(chan WorkItem, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start launches the workers. Once ctx is done, workers drain the remaining
// items without processing them.
func (p *Pool) Start(ctx context.Context) {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.work(ctx)
	}
}

func (p *Pool) work(ctx context.Context) {
	defer p.wg.Done()
	for item := range p.items {
		if ctx.Err() != nil {
			p.skipped.Add(1)
			continue
		}
		p.results <- p.process(ctx, item)
	}
}

// Submit queues an item. It blocks while the buffer is full.
func (p *Pool) Submit(item WorkItem) {
	p.items <- item
}

// Close stops accepting items, waits for the workers and then closes the
// result channel.
func (p *Pool) Close() {
	close(p.items)
	p.wg.Wait()
	close(p.results)
}

// Results returns the channel results are delivered on, in completion order.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// Skipped returns the number of items drained after cancellation.
func (p *Pool) Skipped() int64 {
	return p.skipped.Load()
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// Run processes every item and returns the results ordered by Index. It
// fails with the first item error, or with ctx.Err() when cancellation
// left items unprocessed.
func Run(ctx context.Context, items []WorkItem, process ProcessFunc, opts ...Option) ([]Result, error) {
	opts = append([]Option{WithBufferSize(len(items) + 1)}, opts...)
	pool := NewPool(process, opts...)
	pool.Start(ctx)

	go func() {
		for _, item := range items {
			pool.Submit(item)
		}
		pool.Close()
	}()

	results := make([]Result, 0, len(items))
	var firstErr error
	for res := range pool.Results() {
		if res.Err != nil {
			if firstErr == nil {
				firstErr = res.Err
			}
			continue
		}
		results = append(results, res)
	}
	if firstErr == nil && pool.Skipped() > 0 {
		firstErr = ctx.Err()
	}
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(results, func(i, j int) bool {
		return results[i].Index < results[j].Index
	})
	return results, nil
}
