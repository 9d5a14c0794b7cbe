package engine

import "github.com/parsat-project/parsat/lit"

// propagate runs unit propagation to fixpoint, returning the
// conflicting clause or nil. Grounded on
// other_examples/togatoga-gatosat__solver.go's Propagate: two-watched
// literals, a blocking literal to skip re-deriving satisfied clauses,
// and in-place compaction of each literal's watch list.
func (e *Engine) propagate() *engineClause {
	var confl *engineClause
	for e.qhead < len(e.trail) {
		p := e.trail[e.qhead]
		e.qhead++
		e.propCount++

		ws := e.watches[p]
		keep := ws[:0]
		for i := 0; i < len(ws); i++ {
			w := ws[i]
			if e.value(w.blocker) == lit.LTrue {
				keep = append(keep, w)
				continue
			}
			c := w.c
			falseLit := p.Not()
			if c.lits[0] == falseLit {
				c.lits[0], c.lits[1] = c.lits[1], c.lits[0]
			}
			other := c.lits[0]
			nw := watcher{c: c, blocker: other}
			if other != w.blocker && e.value(other) == lit.LTrue {
				keep = append(keep, nw)
				continue
			}
			foundNew := false
			for k := 2; k < len(c.lits); k++ {
				if e.value(c.lits[k]) != lit.LFalse {
					c.lits[1], c.lits[k] = c.lits[k], c.lits[1]
					e.registerWatch(c, c.lits[1], c.lits[0])
					foundNew = true
					break
				}
			}
			if foundNew {
				continue
			}
			keep = append(keep, nw)
			if e.value(other) == lit.LFalse {
				confl = c
				e.qhead = len(e.trail)
				for j := i + 1; j < len(ws); j++ {
					keep = append(keep, ws[j])
				}
				break
			}
			e.uncheckedEnqueue(other, c)
		}
		e.watches[p] = keep
		if confl != nil {
			break
		}
	}
	return confl
}

// backtrackLocked undoes trail entries back to level, restoring
// undefined assignments and pushing freed variables back onto the
// decision heap. Callers must already hold e.mu.
func (e *Engine) backtrackLocked(level int) {
	if e.decisionLevel() <= level {
		return
	}
	for i := len(e.trail) - 1; i >= e.trailLim[level]; i-- {
		v := e.trail[i].Var()
		e.assigns[v] = lit.LUndef
		e.polarity[v] = !e.trail[i].IsPos()
		if e.decision[v] {
			e.heap.push(v)
		}
	}
	e.qhead = e.trailLim[level]
	e.trail = e.trail[:e.qhead]
	e.trailLim = e.trailLim[:level]
}

func (e *Engine) pickBranchLit() lit.Lit {
	var v lit.Var = lit.VarUndef
	for {
		if e.heap.empty() {
			v = lit.VarUndef
			break
		}
		v = e.heap.removeMin()
		if e.assigns[v] == lit.LUndef && e.decision[v] && !e.eliminated[v] {
			break
		}
	}
	if v == lit.VarUndef {
		return lit.LitNull
	}
	if e.polarity[v] {
		return v.Neg()
	}
	return v.Pos()
}
