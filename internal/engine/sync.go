package engine

import (
	"github.com/parsat-project/parsat/clause"
	"github.com/parsat-project/parsat/worker"
)

// InitializeParallel registers this engine as a portfolio member: cb
// is polled from inside the search loop (see search.go) so a
// coordinator can request an early stop without calling Interrupt,
// e.g. because a sibling worker already found the answer.
func (e *Engine) InitializeParallel(data *worker.SyncData, cb worker.SyncCallback) {
	e.lock()
	defer e.unlock()
	e.syncData = data
	e.syncCB = cb
}

// CounterAccess returns a monotonically increasing progress counter,
// used by a coordinator to pace sync rounds, never for correctness.
func (e *Engine) CounterAccess() int64 {
	e.lock()
	defer e.unlock()
	return e.propCount
}

// Stats reports cumulative search statistics, satisfying the optional
// worker.StatsReporter capability.
func (e *Engine) Stats() worker.Stats {
	e.lock()
	defer e.unlock()
	return worker.Stats{Conflicts: e.stConflicts, Decisions: e.stDecisions, Restarts: e.stRestarts}
}

// LearnedSince returns every clause this engine has learned at or
// after mark, plus the mark a caller should pass next time to resume
// from here. Grounded on spec.md §4.5.7's clause-exchange contract:
// each worker exposes an append-only log of its own learned clauses,
// the coordinator pulls from it into the worker's clause pool, and
// peers receive those clauses through ImportClause.
func (e *Engine) LearnedSince(mark int) ([]clause.Clause, int) {
	e.lock()
	defer e.unlock()
	if mark < 0 || mark > len(e.learnedLog) {
		mark = 0
	}
	out := append([]clause.Clause(nil), e.learnedLog[mark:]...)
	return out, len(e.learnedLog)
}
