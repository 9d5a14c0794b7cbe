package engine

import (
	"sync/atomic"

	"github.com/parsat-project/parsat/clause"
	"github.com/parsat-project/parsat/lit"
)

// SolveLimited runs the main search under assumps. It respects the
// engine's own resource limits: Interrupt(), called before or during
// this call, causes it to return LUndef before its next decision or
// restart, and a sync callback registered via InitializeParallel that
// reports "stop" has the same effect. The interrupt request is cleared
// when the call returns.
func (e *Engine) SolveLimited(assumps []lit.Lit) lit.LBool {
	e.lock()
	defer e.unlock()

	defer atomic.StoreInt32(&e.interrupted, 0)
	e.model = nil
	e.conflictOut = nil
	e.backtrackLocked(0)

	if !e.ok {
		return lit.LFalse
	}

	e.assumps = assumps
	if r := e.assumeAll(); r != lit.LUndef {
		return r
	}
	e.assumpLevel = e.decisionLevel()

	status := lit.LUndef
	for status == lit.LUndef {
		if e.checkInterrupted() {
			e.backtrackLocked(e.assumpLevel)
			return lit.LUndef
		}
		conflictBudget := e.restartScale * e.lb.next()
		status = e.search(conflictBudget)
		e.stRestarts++
	}
	if status == lit.LTrue {
		e.model = make([]lit.LBool, len(e.assigns))
		copy(e.model, e.assigns)
	}
	return status
}

// assumeAll pushes every assumption literal as its own decision
// level, so a later failed assumption's implication chain can be
// isolated by decision level in analyzeFinal. Returns LFalse if the
// assumptions are trivially inconsistent under unit propagation,
// LUndef otherwise (meaning "keep going").
func (e *Engine) assumeAll() lit.LBool {
	for _, a := range e.assumps {
		v := e.value(a)
		if v == lit.LFalse {
			e.analyzeFinal(a)
			e.backtrackLocked(0)
			return lit.LFalse
		}
		if v == lit.LUndef {
			e.newDecisionLevel()
			e.uncheckedEnqueue(a, nil)
			if conf := e.propagate(); conf != nil {
				e.analyzeConflictUnderAssumption(conf)
				e.backtrackLocked(0)
				return lit.LFalse
			}
		}
	}
	return lit.LUndef
}

// analyzeFinal records a is a directly-falsified assumption as the
// (minimal) conflict.
func (e *Engine) analyzeFinal(a lit.Lit) {
	e.conflictOut = []lit.Lit{a}
}

// analyzeConflictUnderAssumption walks the conflict clause and
// collects whichever assumptions are implicated, a simplified stand-in
// for MiniSat's analyzeFinal over the full implication graph — correct
// but not always minimal, which spec.md does not require (§4.1 only
// requires Conflict() to name a sufficient set of failed assumptions).
func (e *Engine) analyzeConflictUnderAssumption(confl *engineClause) {
	assumpSet := make(map[lit.Lit]bool, len(e.assumps))
	for _, a := range e.assumps {
		assumpSet[a] = true
	}
	seen := make(map[lit.Lit]bool)
	var out []lit.Lit
	queue := append([]lit.Lit(nil), confl.lits...)
	visited := make(map[lit.Var]bool)
	for len(queue) > 0 {
		m := queue[0]
		queue = queue[1:]
		if visited[m.Var()] {
			continue
		}
		visited[m.Var()] = true
		if assumpSet[m.Not()] && !seen[m.Not()] {
			seen[m.Not()] = true
			out = append(out, m.Not())
			continue
		}
		if r := e.vdata[m.Var()].reason; r != nil {
			queue = append(queue, r.lits...)
		}
	}
	if len(out) == 0 {
		// fall back to naming every assumption; always sufficient.
		out = append([]lit.Lit(nil), e.assumps...)
	}
	e.conflictOut = out
}

// search runs propagate/analyze/decide until either a model is found,
// the formula is proven unsat, or maxConflicts is exceeded (a
// restart).
func (e *Engine) search(maxConflicts int) lit.LBool {
	conflicts := 0
	for {
		confl := e.propagate()
		if confl != nil {
			e.stConflicts++
			conflicts++
			if e.decisionLevel() <= e.assumpLevel {
				if e.assumpLevel > 0 {
					e.analyzeConflictUnderAssumption(confl)
				}
				return lit.LFalse
			}
			learnt, backLevel := e.analyze(confl)
			if backLevel < e.assumpLevel {
				backLevel = e.assumpLevel
			}
			e.backtrackLocked(backLevel)
			if len(learnt) == 1 {
				e.uncheckedEnqueue(learnt[0], nil)
				e.learnedLog = append(e.learnedLog, clause.Clause{Lits: []lit.Lit{learnt[0]}, Learnt: true, LBD: 1})
			} else {
				lc := newEngineClause(learnt, true)
				lc.lbd = e.computeLBD(learnt)
				e.learnts = append(e.learnts, lc)
				e.attachClause(lc)
				e.uncheckedEnqueue(learnt[0], lc)
				e.learnedLog = append(e.learnedLog, lc.toClause())
			}
			e.decayVarActivity()
			e.decayClauseActivity()
			continue
		}

		if e.checkInterrupted() {
			e.backtrackLocked(e.assumpLevel)
			return lit.LUndef
		}
		if e.syncCB != nil && conflicts > 0 && conflicts%64 == 0 {
			if e.syncCB(e.syncData) {
				atomic.StoreInt32(&e.interrupted, 1)
				e.backtrackLocked(e.assumpLevel)
				return lit.LUndef
			}
		}
		if maxConflicts >= 0 && conflicts > maxConflicts {
			e.backtrackLocked(e.assumpLevel)
			return lit.LUndef
		}

		next := e.pickBranchLit()
		if next == lit.LitNull {
			return lit.LTrue
		}
		e.stDecisions++
		e.newDecisionLevel()
		e.uncheckedEnqueue(next, nil)
	}
}

func (e *Engine) checkInterrupted() bool {
	return atomic.LoadInt32(&e.interrupted) != 0
}

// Interrupt asynchronously requests early termination. Idempotent:
// calling it any number of times has the same effect as calling it
// once.
func (e *Engine) Interrupt() {
	atomic.StoreInt32(&e.interrupted, 1)
}

// Model returns the last SolveLimited's satisfying assignment, or nil
// if the last result was not LTrue.
func (e *Engine) Model() []lit.LBool {
	e.lock()
	defer e.unlock()
	return e.model
}

// Conflict returns the failed assumptions from the last SolveLimited,
// or nil if the last result was not LFalse under assumptions.
func (e *Engine) Conflict() []lit.Lit {
	e.lock()
	defer e.unlock()
	return e.conflictOut
}

// AdoptModel replaces this engine's last recorded model outright,
// satisfying worker.ModelAdopter: used when a sibling portfolio member
// won and the primary must carry its assignment through ExtendModel.
func (e *Engine) AdoptModel(m []lit.LBool) {
	e.lock()
	defer e.unlock()
	e.model = append([]lit.LBool(nil), m...)
}

// ExtendModel undoes variable elimination's effect on Model. This
// reference engine's Eliminate is a light unit-propagation pass with
// no variable removal, so there is nothing to restore; a full
// bounded-variable-elimination engine would replay eliminated
// clauses' witness literals here.
func (e *Engine) ExtendModel() {}

func (c *engineClause) toClause() clause.Clause {
	return clause.Clause{Lits: append([]lit.Lit(nil), c.lits...), Learnt: true, LBD: c.lbd, Mark: c.mark}
}
