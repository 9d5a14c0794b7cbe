package engine

import (
	"github.com/parsat-project/parsat/clause"
	"github.com/parsat-project/parsat/lit"
)

// Eliminate runs this engine's preprocessing pass. Per SPEC_FULL.md,
// this reference engine does not implement bounded variable
// elimination (§1's Non-goals place the clause arena and elimination
// heuristics out of scope for the coordination core, and a toy BVE
// would only mislead a reader about what's load-bearing here) — it
// instead does the cheap, always-sound part of MiniSat's
// SimpSolver::eliminate: propagate any pending level-0 units to
// fixpoint and flag clauses already satisfied at level 0, which other
// solvers' preprocessing treats as a precondition for the expensive
// resolution step proper. Satisfied clauses are marked, not removed —
// their watches stay valid, and a satisfied clause can never itself
// cause a conflict, so leaving it attached costs nothing but a skipped
// blocker check. turnOff disables the pass for every future call after
// this one runs; nothing is ever removed from the variable space, so
// ExtendModel has nothing to undo.
func (e *Engine) Eliminate(turnOff bool) bool {
	e.lock()
	defer e.unlock()
	if e.eliminationOff {
		return e.ok
	}
	if turnOff {
		defer func() { e.eliminationOff = true }()
	}
	if !e.ok {
		return e.ok
	}
	if conf := e.propagate(); conf != nil {
		e.ok = false
		return false
	}
	if e.decisionLevel() != 0 {
		return e.ok
	}
	for _, c := range e.origClauses {
		if c.mark == clause.MarkNone && e.clauseSatisfiedLocked(c) {
			c.mark = clause.MarkSatisfied
		}
	}
	return e.ok
}

func (e *Engine) clauseSatisfiedLocked(c *engineClause) bool {
	for _, m := range c.lits {
		if e.value(m) == lit.LTrue {
			return true
		}
	}
	return false
}
