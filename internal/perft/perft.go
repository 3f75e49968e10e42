// Package perft counts the leaf nodes of a match's legal move tree, the
// standard way to check a move generator against published totals.
package perft

import (
	"context"
	"fmt"
	"runtime"
	"sort"

	"github.com/lgbarn/chessmatch-go/internal/engine"
	"github.com/lgbarn/chessmatch-go/internal/hashing"
	"github.com/lgbarn/chessmatch-go/internal/worker"
)

// Result holds a perft total and its per-root-move breakdown.
type Result struct {
	Depth  int
	Nodes  uint64
	Divide map[string]uint64 // keyed by coordinate notation, e.g. "e2e4"
}

// Moves returns the root moves of the breakdown in sorted order.
func (r Result) Moves() []string {
	keys := make([]string, 0, len(r.Divide))
	for k := range r.Divide {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Count returns the number of leaf nodes depth plies below m.
// Promotions count once, as the default promotion piece.
func Count(m *engine.Match, depth int) (uint64, error) {
	return CountCached(m, depth, nil)
}

// CountCached is Count with subtree totals shared through table.
// A nil table disables caching.
func CountCached(m *engine.Match, depth int, table *hashing.Table) (uint64, error) {
	if depth <= 0 {
		return 1, nil
	}

	var key uint64
	cached := table != nil
	if cached {
		key = hashing.Hash(m)
		if nodes, ok := table.Lookup(key, depth); ok {
			return nodes, nil
		}
	}

	var nodes uint64
	for _, mv := range m.AllLegalMoves(m.CurrentPlayer()) {
		next := m.Clone()
		if _, err := next.PerformMove(mv.From, mv.To); err != nil {
			return 0, fmt.Errorf("perft move %v: %w", mv, err)
		}
		n, err := CountCached(next, depth-1, table)
		if err != nil {
			return 0, err
		}
		nodes += n
	}

	if cached {
		table.Store(key, depth, nodes)
	}
	return nodes, nil
}

// Parallel computes perft by searching each root move on its own clone of m
// across a worker pool. workers <= 0 uses one worker per CPU. table may be
// nil; when set it is shared by all workers. Cancelling ctx abandons the
// root moves not yet searched.
func Parallel(ctx context.Context, m *engine.Match, depth, workers int, table *hashing.Table) (Result, error) {
	result := Result{Depth: depth, Divide: make(map[string]uint64)}
	if depth <= 0 {
		result.Nodes = 1
		return result, nil
	}
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	search := func(m *engine.Match, depth int) (uint64, error) {
		return CountCached(m, depth, table)
	}
	pool := worker.New(m, depth, search,
		worker.WithWorkers(workers),
		worker.WithBufferSize(2*workers))

	roots, err := pool.SearchAll(ctx)
	if err != nil {
		return result, fmt.Errorf("perft depth %d: %w", depth, err)
	}
	for _, r := range roots {
		result.Divide[r.Move.String()] = r.Nodes
		result.Nodes += r.Nodes
	}
	return result, nil
}
