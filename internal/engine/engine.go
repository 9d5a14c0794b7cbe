// Package engine is the one concrete worker.Worker implementation in
// this repository: a small CDCL solver with two-watched-literal
// propagation, first-UIP clause learning, VSIDS decisions and Luby
// restarts.
//
// It exists because the coordination core needs at least one real
// engine to test against; per spec.md §1, the engine's internals
// (decision heuristics, propagation, conflict analysis, variable
// elimination) are explicitly out of scope and are not held to any of
// this repository's invariants. Grounded on
// other_examples/togatoga-gatosat__solver.go's overall CDCL loop
// (propagate/analyze/backtrack/decide) and on
// go-air-gini/internal/xo/s.go's Solve() shape (lock/unlock around
// Solve, a propagation tick used to poll for cancellation, a restart
// stopwatch).
package engine

import (
	"math/rand"
	"slices"
	"sync"

	"github.com/parsat-project/parsat/clause"
	"github.com/parsat-project/parsat/lit"
	"github.com/parsat-project/parsat/worker"
)

type varData struct {
	reason *engineClause
	level  int
}

// Engine is a sequential CDCL SAT solver implementing worker.Worker.
type Engine struct {
	mu sync.Mutex

	assigns  []lit.LBool
	polarity []bool // saved phase, used for decisions
	vdata    []varData
	decision []bool // eligible for branching (NewVar's decision flag)
	frozen   []bool
	eliminated []bool

	trail    []lit.Lit
	trailLim []int
	qhead    int

	watches map[lit.Lit][]watcher

	origClauses []*engineClause
	origUnits   []lit.Lit
	learnts     []*engineClause

	heap     *varHeap
	varInc   float64
	varDecay float64
	claInc   float64
	claDecay float64
	seen     []bool

	ok             bool
	model          []lit.LBool
	conflictOut    []lit.Lit
	eliminationOff bool

	assumps      []lit.Lit
	assumpLevel  int

	lb                *luby
	restartScale      int
	restartStopwatch  int

	propCount    int64
	nextPropTick int64
	interrupted  int32 // atomic

	stConflicts int64
	stDecisions int64
	stRestarts  int64

	rng           *rand.Rand
	restartOffset int

	syncData *worker.SyncData
	syncCB   worker.SyncCallback

	learnedLog []clause.Clause
}

const (
	propTick     int64 = 2000
	restartScale       = 100
	varDecayDefault  = 0.95
	claDecayDefault  = 0.999
)

// New returns a fresh Engine with no variables or clauses.
func New() *Engine {
	return &Engine{
		watches:      make(map[lit.Lit][]watcher),
		heap:         newVarHeap(),
		varInc:       1.0,
		varDecay:     varDecayDefault,
		claInc:       1.0,
		claDecay:     claDecayDefault,
		ok:           true,
		lb:           newLuby(),
		restartScale: restartScale,
		rng:          rand.New(rand.NewSource(1)),
	}
}

func (e *Engine) lock()   { e.mu.Lock() }
func (e *Engine) unlock() { e.mu.Unlock() }

// NVars returns the number of allocated variables.
func (e *Engine) NVars() int {
	e.lock()
	defer e.unlock()
	return len(e.assigns)
}

// NClauses returns the number of original (non-unit, non-learnt)
// clauses added so far.
func (e *Engine) NClauses() int {
	e.lock()
	defer e.unlock()
	return len(e.origClauses)
}

// NUnits returns the number of original unit clauses added so far.
func (e *Engine) NUnits() int {
	e.lock()
	defer e.unlock()
	return len(e.origUnits)
}

// NewVar allocates a fresh variable.
func (e *Engine) NewVar(pol lit.LBool, decision bool) lit.Var {
	e.lock()
	defer e.unlock()
	v := lit.Var(len(e.assigns))
	e.assigns = append(e.assigns, lit.LUndef)
	e.polarity = append(e.polarity, pol == lit.LFalse)
	e.vdata = append(e.vdata, varData{level: -1})
	e.decision = append(e.decision, decision)
	e.frozen = append(e.frozen, false)
	e.eliminated = append(e.eliminated, false)
	e.seen = append(e.seen, false)
	e.heap.ensure(v)
	if decision {
		e.heap.push(v)
	}
	return v
}

// ReserveVars pre-sizes internal arrays for n variables. It allocates
// no variables; NVars is unchanged.
func (e *Engine) ReserveVars(n int) {
	e.lock()
	defer e.unlock()
	if extra := n - len(e.assigns); extra > 0 {
		e.assigns = slices.Grow(e.assigns, extra)
		e.polarity = slices.Grow(e.polarity, extra)
		e.vdata = slices.Grow(e.vdata, extra)
		e.decision = slices.Grow(e.decision, extra)
		e.frozen = slices.Grow(e.frozen, extra)
		e.eliminated = slices.Grow(e.eliminated, extra)
		e.seen = slices.Grow(e.seen, extra)
		e.heap.activity = slices.Grow(e.heap.activity, extra)
	}
}

// SetFrozen marks v as ineligible for elimination.
func (e *Engine) SetFrozen(v lit.Var, frozen bool) {
	e.lock()
	defer e.unlock()
	e.frozen[v] = frozen
}

// IsEliminated reports whether v was removed by preprocessing.
func (e *Engine) IsEliminated(v lit.Var) bool {
	e.lock()
	defer e.unlock()
	return e.eliminated[v]
}

// Okay returns false iff the formula is known unsat.
func (e *Engine) Okay() bool {
	e.lock()
	defer e.unlock()
	return e.ok
}

// GetUnit returns the i-th original unit clause's literal.
func (e *Engine) GetUnit(i int) lit.Lit {
	e.lock()
	defer e.unlock()
	return e.origUnits[i]
}

// GetClause returns the i-th original (non-unit) clause.
func (e *Engine) GetClause(i int) clause.Clause {
	e.lock()
	defer e.unlock()
	c := e.origClauses[i]
	return clause.Clause{Lits: append([]lit.Lit(nil), c.lits...), Learnt: false, Mark: c.mark, LBD: c.lbd}
}

func (e *Engine) value(m lit.Lit) lit.LBool {
	a := e.assigns[m.Var()]
	if a == lit.LUndef {
		return lit.LUndef
	}
	if m.IsPos() {
		return a
	}
	if a == lit.LTrue {
		return lit.LFalse
	}
	return lit.LTrue
}

func (e *Engine) decisionLevel() int {
	return len(e.trailLim)
}

func (e *Engine) newDecisionLevel() {
	e.trailLim = append(e.trailLim, len(e.trail))
}

func (e *Engine) uncheckedEnqueue(m lit.Lit, reason *engineClause) {
	if m.IsPos() {
		e.assigns[m.Var()] = lit.LTrue
	} else {
		e.assigns[m.Var()] = lit.LFalse
	}
	e.vdata[m.Var()] = varData{reason: reason, level: e.decisionLevel()}
	e.trail = append(e.trail, m)
}
