package engine

import "github.com/parsat-project/parsat/lit"

// engineClause is the internal, watch-list-attached clause the search
// loop propagates over. It is distinct from clause.Clause, the thin
// external representation used to move clauses across the worker
// boundary (spec.md explicitly places the clause arena out of scope;
// Go's GC makes a MiniSat-style ClauseAllocator/ClauseReference
// indirection unnecessary here — engineClause pointers are stable for
// their lifetime).
type engineClause struct {
	lits     []lit.Lit
	learnt   bool
	activity float64
	lbd      int
	mark     uint8
}

func newEngineClause(lits []lit.Lit, learnt bool) *engineClause {
	c := &engineClause{lits: append([]lit.Lit(nil), lits...), learnt: learnt}
	return c
}

// watcher pairs a watched clause with a blocking literal, grounded on
// other_examples/togatoga-gatosat__watcher.go's Watcher: checking the
// blocker first lets propagate skip re-deriving the clause's satisfied
// status when possible.
type watcher struct {
	c       *engineClause
	blocker lit.Lit
}

func (e *Engine) registerWatch(c *engineClause, watched, blocker lit.Lit) {
	key := watched.Not()
	e.watches[key] = append(e.watches[key], watcher{c: c, blocker: blocker})
}

func (e *Engine) attachClause(c *engineClause) {
	if len(c.lits) < 2 {
		return
	}
	e.registerWatch(c, c.lits[0], c.lits[1])
	e.registerWatch(c, c.lits[1], c.lits[0])
}
