// Package worker declares the narrow interface the coordinator uses
// to drive a single sequential CDCL+preprocessing SAT engine. The
// engine's internals (decision heuristics, propagation, conflict
// analysis, variable elimination) are deliberately out of scope for
// this module and are treated purely as an external collaborator; see
// internal/engine for the one concrete implementation used by tests
// and the cmd/parsat CLI.
package worker

import (
	"github.com/parsat-project/parsat/clause"
	"github.com/parsat-project/parsat/lit"
)

// SyncData is the per-worker record the coordinator threads through
// dispatch: a borrowed pointer identifying which worker a portfolio
// sync callback is running for.
type SyncData struct {
	// Index is the worker's slot, 0 for the primary.
	Index int
	// Stop, once true, tells the sync callback to report "stop now"
	// on its next invocation instead of continuing to search.
	Stop bool
}

// SyncCallback is invoked periodically by a worker (typically at
// every restart) to give the coordinator a chance to run one round of
// in-search clause exchange. It returns true if the worker should
// stop searching (a global stop has been signaled), false to
// continue.
type SyncCallback func(data *SyncData) bool

// Worker is the external contract a single portfolio member must
// satisfy. Worker 0 is always the primary (owns the authoritative
// formula and preprocessing); workers 1..N-1 are replicas kept in
// sync from the primary and used only for search.
type Worker interface {
	// NVars, NClauses, NUnits are read-only counts.
	NVars() int
	NClauses() int
	NUnits() int

	// NewVar allocates a variable. decision=false excludes it from
	// branching.
	NewVar(polarity lit.LBool, decision bool) lit.Var
	// ReserveVars pre-sizes internal arrays for n variables.
	ReserveVars(n int)

	// AddClause adds a clause given in DIMACS-oriented literal form.
	// It returns false iff the clause makes the formula trivially
	// unsat.
	AddClause(lits []lit.Lit) bool
	// ImportClause adds a clause already in internal form, used by
	// primary-to-replica sync and in-search clause exchange. Returns
	// false iff the import made (or found) the formula unsat.
	ImportClause(c clause.Clause) bool

	// GetUnit and GetClause read back the i-th original unit / clause.
	GetUnit(i int) lit.Lit
	GetClause(i int) clause.Clause

	// Eliminate runs variable elimination preprocessing. Returns
	// false iff the formula is found unsat.
	Eliminate(turnOff bool) bool
	// SetFrozen and IsEliminated are preprocessing controls.
	SetFrozen(v lit.Var, frozen bool)
	IsEliminated(v lit.Var) bool

	// SolveLimited runs the main search under assumps, respecting
	// the engine's own internal resource limits.
	SolveLimited(assumps []lit.Lit) lit.LBool
	// Interrupt asynchronously requests early termination: the
	// current or next SolveLimited returns LUndef. Idempotent.
	Interrupt()
	// Okay returns false iff the formula is known unsat.
	Okay() bool

	// Diversify perturbs heuristics (polarity, restart policy,
	// random seed) so that portfolio members follow different search
	// trajectories.
	Diversify(seed, span int)

	// InitializeParallel registers the per-round sync callback used
	// for in-search clause exchange (spec.md §4.5.7).
	InitializeParallel(data *SyncData, cb SyncCallback)
	// CounterAccess returns a monotonic scalar of internal work done,
	// used to pace sync rounds.
	CounterAccess() int64

	// Model and Conflict are outputs of the last SolveLimited call.
	Model() []lit.LBool
	Conflict() []lit.Lit
	// ExtendModel undoes variable elimination's effect on Model. The
	// coordinator calls it on the primary after the primary adopts a
	// winning replica's model; it is not called when the primary
	// itself wins.
	ExtendModel()

	// LearnedSince returns every clause learned since mark (an
	// opaque, worker-local high-water mark previously returned by
	// this same method) together with the new mark, for one round of
	// clause-pool publication.
	LearnedSince(mark int) (learned []clause.Clause, newMark int)
}

// Stats is a worker's cumulative search statistics, reported purely
// for the Coordinator's PrintStats/metrics output (spec.md §6.3's "SUM
// stats" lines) and never consulted for correctness.
type Stats struct {
	Conflicts int64
	Decisions int64
	Restarts  int64
}

// StatsReporter is an optional capability a Worker may implement to
// contribute to the Coordinator's aggregate conflict/decision/restart
// counts. Workers that don't implement it (e.g. a minimal test double)
// simply contribute zero.
type StatsReporter interface {
	Stats() Stats
}

// ModelAdopter is an optional capability the primary worker
// implements so the Coordinator can move a winning replica's raw
// model into the primary before ExtendModel undoes the primary's own
// preprocessing (spec.md §4.5.6). Workers that never preprocess don't
// need this method to win outright, but the primary must implement it
// since it is always the one asked to adopt a foreign model.
type ModelAdopter interface {
	AdoptModel(m []lit.LBool)
}
