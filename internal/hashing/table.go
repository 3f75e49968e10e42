package hashing

import "sync"

// entryKey identifies a perft result: the same position searched to a
// different depth is a different entry.
type entryKey struct {
	hash  uint64
	depth int
}

// Table caches perft node counts. It is safe for concurrent use.
type Table struct {
	mu          sync.RWMutex
	entries     map[entryKey]uint64
	maxCapacity int // 0 = unlimited
	hits        int64
	misses      int64
}

// NewTable creates a table. maxCapacity of 0 means unlimited capacity;
// once full, new entries are dropped and existing ones are still served.
func NewTable(maxCapacity int) *Table {
	if maxCapacity < 0 {
		maxCapacity = 0
	}
	return &Table{
		entries:     make(map[entryKey]uint64),
		maxCapacity: maxCapacity,
	}
}

// Lookup returns the cached node count for hash at depth.
func (t *Table) Lookup(hash uint64, depth int) (uint64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	nodes, ok := t.entries[entryKey{hash, depth}]
	if ok {
		t.hits++
	} else {
		t.misses++
	}
	return nodes, ok
}

// Store records the node count for hash at depth.
func (t *Table) Store(hash uint64, depth int, nodes uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.isFullLocked() {
		return
	}
	t.entries[entryKey{hash, depth}] = nodes
}

// Len returns the number of cached entries.
func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

// Stats returns the lookup hit and miss counts.
func (t *Table) Stats() (hits, misses int64) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.hits, t.misses
}

// IsFull returns true if the table has reached its capacity limit.
// Always returns false for unlimited capacity (maxCapacity = 0).
func (t *Table) IsFull() bool {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.isFullLocked()
}

func (t *Table) isFullLocked() bool {
	return t.maxCapacity > 0 && len(t.entries) >= t.maxCapacity
}

// Reset clears the table and its statistics.
func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[entryKey]uint64)
	t.hits, t.misses = 0, 0
}
