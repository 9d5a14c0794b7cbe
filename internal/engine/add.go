package engine

import (
	"github.com/parsat-project/parsat/clause"
	"github.com/parsat-project/parsat/lit"
)

// AddClause adds an original clause. It returns false iff the clause
// makes the formula trivially unsat, mirroring
// other_examples/togatoga-gatosat__solver.go's addClause simplification
// (drop satisfied/tautological, dedupe, detect the empty clause).
func (e *Engine) AddClause(lits []lit.Lit) bool {
	e.lock()
	defer e.unlock()
	if !e.ok {
		return false
	}
	e.backtrackLocked(0)
	ls := e.simplifyNewClause(lits)
	if ls == nil {
		return true // satisfied or tautological
	}
	switch len(ls) {
	case 0:
		e.ok = false
	case 1:
		e.origUnits = append(e.origUnits, ls[0])
		e.uncheckedEnqueue(ls[0], nil)
		if conf := e.propagate(); conf != nil {
			e.ok = false
		}
	default:
		c := newEngineClause(ls, false)
		e.origClauses = append(e.origClauses, c)
		e.attachClause(c)
	}
	return e.ok
}

// simplifyNewClause removes duplicates and already-false literals and
// reports whether the clause is trivially satisfied (nil, true-like
// return handled by caller returning true) via a nil slice with no
// literals removed meaning "drop it". A genuinely empty (unsat)
// clause is returned as a non-nil, zero-length slice.
func (e *Engine) simplifyNewClause(lits []lit.Lit) []lit.Lit {
	out := make([]lit.Lit, 0, len(lits))
	seen := make(map[lit.Lit]bool, len(lits))
	for _, m := range lits {
		if e.decisionLevel() == 0 {
			if v := e.value(m); v == lit.LTrue {
				return nil
			} else if v == lit.LFalse {
				continue
			}
		}
		if seen[m.Not()] {
			return nil // tautology
		}
		if !seen[m] {
			seen[m] = true
			out = append(out, m)
		}
	}
	return out
}

// ImportClause adds a clause already in internal form (a primary's
// original clause during sync, or a peer's learned clause during
// in-search exchange). Returns false iff the import made or found the
// formula unsat; per spec.md §4.5.7, callers treat a false return from
// clause exchange as non-fatal for that one clause.
func (e *Engine) ImportClause(c clause.Clause) bool {
	if c.Satisfied() {
		return true
	}
	if c.Learnt {
		return e.importLearnt(c.Lits, c.LBD)
	}
	return e.AddClause(c.Lits)
}

func (e *Engine) importLearnt(lits []lit.Lit, lbd int) bool {
	e.lock()
	defer e.unlock()
	if !e.ok {
		return false
	}
	ls := make([]lit.Lit, 0, len(lits))
	falseCount := 0
	for _, m := range lits {
		v := e.value(m)
		if v == lit.LTrue {
			return true // already satisfied, nothing to do
		}
		if v == lit.LFalse {
			falseCount++
		}
		ls = append(ls, m)
	}
	if len(ls) == 0 {
		return true
	}
	if len(ls) == 1 {
		if e.value(ls[0]) == lit.LUndef {
			e.backtrackLocked(0)
			e.uncheckedEnqueue(ls[0], nil)
			if conf := e.propagate(); conf != nil {
				e.ok = false
				return false
			}
		}
		return true
	}
	e.orderWatchCandidates(ls)
	c := newEngineClause(ls, true)
	c.lbd = lbd
	e.learnts = append(e.learnts, c)
	if falseCount < len(ls) {
		e.attachClause(c)
		if e.value(ls[1]) == lit.LFalse && e.value(ls[0]) == lit.LUndef {
			// only one non-false literal: the clause is unit right now.
			e.uncheckedEnqueue(ls[0], c)
			if conf := e.propagate(); conf != nil {
				e.ok = false
				return false
			}
		}
	}
	return true
}

// orderWatchCandidates moves the two literals best suited to be
// watches (unassigned, else true, else false at the highest decision
// level) to positions 0 and 1, so a clause imported mid-search doesn't
// immediately need a conflict check just to establish valid watches.
func (e *Engine) orderWatchCandidates(ls []lit.Lit) {
	rank := func(m lit.Lit) int {
		switch e.value(m) {
		case lit.LUndef:
			return 2
		case lit.LTrue:
			return 1
		default:
			return 0
		}
	}
	best := 0
	for i := 1; i < len(ls); i++ {
		if rank(ls[i]) > rank(ls[best]) || (rank(ls[i]) == rank(ls[best]) && e.vdata[ls[i].Var()].level > e.vdata[ls[best].Var()].level) {
			best = i
		}
	}
	ls[0], ls[best] = ls[best], ls[0]
	second := 1
	for i := 2; i < len(ls); i++ {
		if rank(ls[i]) > rank(ls[second]) || (rank(ls[i]) == rank(ls[second]) && e.vdata[ls[i].Var()].level > e.vdata[ls[second].Var()].level) {
			second = i
		}
	}
	ls[1], ls[second] = ls[second], ls[1]
}
