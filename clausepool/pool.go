// Package clausepool implements the per-worker inbox/outbox used to
// exchange learned clauses during a sharing round (spec.md §4.2).
//
// A Pool is written by exactly one worker during the barrier's publish
// phase, read by every other worker during the consume phase, and
// reset by the coordinator (or the last arrival of the reset phase)
// before the next round. Safety comes from the three-phase barrier in
// package barrier, not from any locking here — concurrent readers and
// a single writer never overlap in time.
package clausepool

import "github.com/parsat-project/parsat/lit"

// Entry is one shared clause plus the glue (LBD) value it was
// published with.
type Entry struct {
	Lits []lit.Lit
	Glue int
}

// Pool is an append-only arena of shared clauses for one worker, one
// round.
type Pool struct {
	entries []Entry
}

// New returns an empty Pool with room for capHint clauses before it
// grows.
func New(capHint int) *Pool {
	return &Pool{entries: make([]Entry, 0, capHint)}
}

// Add appends a clause to the pool. literals are copied so the caller
// may reuse its backing array.
func (p *Pool) Add(lits []lit.Lit, glue int) {
	cp := make([]lit.Lit, len(lits))
	copy(cp, lits)
	p.entries = append(p.entries, Entry{Lits: cp, Glue: glue})
}

// Size returns the number of clauses currently in the pool.
func (p *Pool) Size() int {
	return len(p.entries)
}

// Get returns the i-th clause in the pool.
func (p *Pool) Get(i int) Entry {
	return p.entries[i]
}

// Reset empties the pool. Must only be called once every reader has
// drained it (the barrier's reset phase guarantees this).
func (p *Pool) Reset() {
	p.entries = p.entries[:0]
}
