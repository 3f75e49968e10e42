// Package worker fans the root moves of a position out to a fixed set of
// goroutines. Each job is played on a private clone of the root match, so
// workers never share mutable state.
package worker

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/lgbarn/chessmatch-go/internal/chess"
	"github.com/lgbarn/chessmatch-go/internal/engine"
)

// SearchFunc searches depth plies below m and returns a node total.
// m belongs to the caller for the duration of the call.
type SearchFunc func(m *engine.Match, depth int) (uint64, error)

// Job is one root move to search.
type Job struct {
	Move  chess.Move
	Index int // Position in the root move list
}

// Result is the outcome of one Job.
type Result struct {
	Move  chess.Move
	Index int
	Nodes uint64
	Err   error
}

// Pool searches root moves of one match in parallel.
type Pool struct {
	root       *engine.Match
	depth      int
	search     SearchFunc
	numWorkers int
	bufferSize int
	jobs       chan Job
	results    chan Result
	wg         sync.WaitGroup
	stopped    atomic.Bool
}

// Option configures a Pool.
type Option func(*Pool)

// WithWorkers sets the number of worker goroutines. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(p *Pool) {
		if n >= 1 {
			p.numWorkers = n
		}
	}
}

// WithBufferSize sets the job and result channel capacity. Values below 1 are ignored.
func WithBufferSize(size int) Option {
	return func(p *Pool) {
		if size >= 1 {
			p.bufferSize = size
		}
	}
}

// New creates a pool that searches depth plies from root, so each job's
// subtree is searched to depth-1 after its move. root is cloned; later
// changes to it are not seen by the pool. Default: 1 worker, buffer size 10.
func New(root *engine.Match, depth int, search SearchFunc, opts ...Option) *Pool {
	p := &Pool{
		root:       root.Clone(),
		depth:      depth,
		search:     search,
		numWorkers: 1,
		bufferSize: 10,
	}
	for _, opt := range opts {
		opt(p)
	}
	p.jobs = make(chan Job, p.bufferSize)
	p.results = make(chan Result, p.bufferSize)
	return p
}

// Start starts the worker goroutines.
func (p *Pool) Start() {
	for i := 0; i < p.numWorkers; i++ {
		p.wg.Add(1)
		go p.work()
	}
}

func (p *Pool) work() {
	defer p.wg.Done()
	for job := range p.jobs {
		if p.Stopped() {
			continue // Drain without searching
		}
		p.results <- p.run(job)
	}
}

// run plays the job's move on a fresh clone and searches below it.
func (p *Pool) run(job Job) Result {
	res := Result{Move: job.Move, Index: job.Index}
	m := p.root.Clone()
	if _, err := m.PerformMove(job.Move.From, job.Move.To); err != nil {
		res.Err = fmt.Errorf("root move %v: %w", job.Move, err)
		return res
	}
	res.Nodes, res.Err = p.search(m, p.depth-1)
	return res
}

// Submit queues a job. It blocks while the job buffer is full.
func (p *Pool) Submit(job Job) {
	p.jobs <- job
}

// Stop makes workers skip the jobs still queued.
func (p *Pool) Stop() {
	p.stopped.Store(true)
}

// Stopped reports whether Stop has been called.
func (p *Pool) Stopped() bool {
	return p.stopped.Load()
}

// Close closes the job queue and waits for the workers, then closes Results.
func (p *Pool) Close() {
	close(p.jobs)
	p.wg.Wait()
	close(p.results)
}

// Results returns the result channel.
func (p *Pool) Results() <-chan Result {
	return p.results
}

// NumWorkers returns the number of workers in the pool.
func (p *Pool) NumWorkers() int {
	return p.numWorkers
}

// SearchAll starts the pool, submits every legal move of the side to move
// and returns the results in root move order. The first search error or
// the cancellation of ctx stops the remaining jobs and is returned.
func (p *Pool) SearchAll(ctx context.Context) ([]Result, error) {
	moves := p.root.AllLegalMoves(p.root.CurrentPlayer())
	p.Start()

	go func() {
		defer p.Close()
		for i, mv := range moves {
			select {
			case <-ctx.Done():
				p.Stop()
				return
			case p.jobs <- Job{Move: mv, Index: i}:
			}
		}
	}()

	results := make([]Result, len(moves))
	var firstErr error
	for r := range p.results {
		if r.Err != nil && firstErr == nil {
			firstErr = r.Err
			p.Stop()
		}
		results[r.Index] = r
	}

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}
