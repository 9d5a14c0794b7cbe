package engine

import "github.com/parsat-project/parsat/lit"

// analyze performs first-UIP conflict analysis, returning the learned
// clause (asserting literal at index 0) and the backtrack level.
// Grounded on other_examples/togatoga-gatosat__solver.go's Analyze:
// walk the trail backwards from the conflict, resolving in every
// reason clause for a variable at the current decision level until
// exactly one such variable (the UIP) remains.
func (e *Engine) analyze(confl *engineClause) (learnt []lit.Lit, backtrackLevel int) {
	pathC := 0
	p := lit.Lit(0)
	hasP := false
	learnt = append(learnt, lit.Lit(0)) // room for the asserting literal
	idx := len(e.trail) - 1

	for {
		for i, q := range confl.lits {
			if hasP && i == 0 {
				continue
			}
			v := q.Var()
			if e.seen[v] || e.vdata[v].level <= 0 {
				continue
			}
			e.seen[v] = true
			e.bumpVarActivity(v)
			if e.vdata[v].level >= e.decisionLevel() {
				pathC++
			} else {
				learnt = append(learnt, q)
			}
		}

		for {
			p = e.trail[idx]
			idx--
			if e.seen[p.Var()] {
				break
			}
		}
		hasP = true
		e.seen[p.Var()] = false
		pathC--
		if pathC <= 0 {
			break
		}
		confl = e.vdata[p.Var()].reason
	}
	learnt[0] = p.Not()

	for _, m := range learnt {
		e.seen[m.Var()] = false
	}

	if len(learnt) == 1 {
		backtrackLevel = 0
	} else {
		maxIdx := 1
		for i := 2; i < len(learnt); i++ {
			if e.vdata[learnt[i].Var()].level > e.vdata[learnt[maxIdx].Var()].level {
				maxIdx = i
			}
		}
		backtrackLevel = e.vdata[learnt[maxIdx].Var()].level
		learnt[1], learnt[maxIdx] = learnt[maxIdx], learnt[1]
	}
	return learnt, backtrackLevel
}

func (e *Engine) bumpVarActivity(v lit.Var) {
	e.heap.bump(v, e.varInc)
	if e.heap.activity[v] > 1e100 {
		e.heap.decay(1e-100)
		e.varInc *= 1e-100
	}
}

func (e *Engine) decayVarActivity() {
	e.varInc /= e.varDecay
}

func (e *Engine) decayClauseActivity() {
	e.claInc /= e.claDecay
}

// computeLBD computes the literal-block distance (glue) of a learned
// clause: the number of distinct decision levels among its literals.
func (e *Engine) computeLBD(lits []lit.Lit) int {
	levels := make(map[int]bool, len(lits))
	for _, m := range lits {
		levels[e.vdata[m.Var()].level] = true
	}
	return len(levels)
}
