package coordinator

import (
	"sync/atomic"
	"time"

	"github.com/parsat-project/parsat/jobqueue"
	"github.com/parsat-project/parsat/lit"
	"github.com/parsat-project/parsat/worker"
)

const syncDiffStart int64 = 10000

// SolveLimited runs the coordinator's incremental-solve protocol,
// spec.md §4.5.4: preprocess on the primary alone, sync replicas,
// dispatch the portfolio, and collect the winning result.
func (c *Coordinator) SolveLimited(assumps []lit.Lit) lit.LBool {
	c.mu.Lock()
	c.model = nil
	c.conflict = nil

	if c.useSimplification {
		start := time.Now()
		c.useSimplification = false
		primaryEngine := c.primary().w
		c.mu.Unlock()
		ok := primaryEngine.Eliminate(true)
		c.mu.Lock()
		c.simplificationSeconds += time.Since(start).Seconds()
		c.primary().nextSyncLimit = primaryEngine.CounterAccess()
		if !ok {
			c.mu.Unlock()
			c.log.Info("simplification solved formula as unsat")
			return lit.LFalse
		}
	}

	if c.cores == 1 {
		w := c.primary().w
		c.mu.Unlock()
		// Not held across the blocking call: Interrupt() must be able
		// to reach every worker while a solve is in flight.
		status := w.SolveLimited(assumps)
		c.mu.Lock()
		if status == lit.LTrue {
			c.model = w.Model()
		} else if status == lit.LFalse {
			c.conflict = w.Conflict()
		}
		c.mu.Unlock()
		return status
	}

	// cores > 1: full portfolio dispatch.
	c.bar.Grow(c.cores)
	c.assumptions = append([]lit.Lit(nil), assumps...)
	c.jobs.SetState(jobqueue.Sleeping)

	for t := 1; t < c.cores; t++ {
		if c.primaryModified {
			c.syncReplicaFromPrimary(t)
		}
		s := c.slots[t]
		s.syncDat = &worker.SyncData{Index: t}
		s.w.InitializeParallel(s.syncDat, c.makeSyncCallback(t))
		t := t
		c.jobs.AddJob(jobqueue.Job{Fn: func(interface{}) { c.threadRunSolve(t) }})
	}

	c.slots[0].syncDat = &worker.SyncData{Index: 0}
	c.primary().w.InitializeParallel(c.slots[0].syncDat, c.makeSyncCallback(0))
	c.jobs.SetState(jobqueue.Working)
	c.primaryModified = false

	// Dispatch is done; release the lock for the whole search so
	// Interrupt() and read-only accessors stay responsive while every
	// worker (including the primary, run inline below) is searching.
	c.mu.Unlock()
	c.threadRunSolve(0)
	c.mu.Lock()

	c.syncedClauses = c.primary().w.NClauses()
	c.syncedUnits = c.primary().w.NUnits()

	status := c.collectResults()
	c.mu.Unlock()
	return status
}

// threadRunSolve is one worker's job body, spec.md §4.5.5. It runs
// with the Coordinator's lock NOT held — a worker's own SolveLimited
// serializes internally, and slot fields written here are read back
// only after every worker has joined the terminal barrier.
func (c *Coordinator) threadRunSolve(t int) {
	s := c.slots[t]
	if !s.w.Okay() {
		s.status = lit.LFalse
		if c.bar != nil {
			c.bar.Wait()
		}
		return
	}
	s.status = lit.LUndef
	s.status = s.w.SolveLimited(c.assumptionsSnapshot())

	idleStart := time.Now()
	c.bar.Wait()
	elapsed := time.Since(idleStart).Seconds()
	c.mu.Lock()
	s.idleSeconds += elapsed
	c.mu.Unlock()
}

func (c *Coordinator) assumptionsSnapshot() []lit.Lit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.assumptions
}

// collectResults implements spec.md §4.5.6's winner selection. Caller
// must hold c.mu.
func (c *Coordinator) collectResults() lit.LBool {
	status := lit.LUndef
	smallestConflict := -1
	smallestConflictLen := -1
	satWinner := -1

	for t := 0; t < c.cores; t++ {
		r := c.slots[t].status
		if r == lit.LUndef {
			continue
		}
		if !status.Agrees(r) {
			err := soundnessFault(status, r)
			c.log.WithError(err).Fatal("detected unsound parallel behavior when collecting results, aborting")
		}
		if r == lit.LFalse {
			n := len(c.slots[t].w.Conflict())
			if smallestConflictLen == -1 || n < smallestConflictLen {
				smallestConflictLen = n
				smallestConflict = t
			}
		} else if r == lit.LTrue && satWinner < 0 {
			satWinner = t
		}
		status = r
	}

	switch status {
	case lit.LTrue:
		if satWinner > 0 {
			winnerModel := c.slots[satWinner].w.Model()
			c.copyModelIntoPrimary(winnerModel)
			c.primary().w.ExtendModel()
		}
		c.model = c.primary().w.Model()
	case lit.LFalse:
		if smallestConflict >= 0 {
			c.conflict = c.slots[smallestConflict].w.Conflict()
		}
	}
	return status
}

// copyModelIntoPrimary moves a winning replica's raw assignment into
// the primary so the primary's own ExtendModel can undo its
// preprocessing on it, per spec.md §4.5.6. Workers are distinct
// worker.Worker values rather than shared memory, so this is a
// data copy through the optional worker.ModelAdopter capability
// rather than a field move.
func (c *Coordinator) copyModelIntoPrimary(m []lit.LBool) {
	if adopter, ok := c.primary().w.(worker.ModelAdopter); ok {
		adopter.AdoptModel(m)
	}
}

// makeSyncCallback returns the portfolio sync callback registered on
// slot t's worker, spec.md §4.5.7.
func (c *Coordinator) makeSyncCallback(t int) worker.SyncCallback {
	return func(data *worker.SyncData) bool {
		if data != nil && data.Stop {
			return true
		}
		return c.portfolioSync(t)
	}
}

func (c *Coordinator) portfolioSync(t int) bool {
	s := c.slots[t]
	if s.w.CounterAccess() < s.nextSyncLimit {
		return false
	}

	atomic.AddInt64(&c.syncingSolvers, 1)
	c.bar.Wait() // Phase A: rendezvous

	learned, newMark := s.w.LearnedSince(s.learnedMark)
	s.learnedMark = newMark
	for _, cl := range learned {
		s.pool.Add(cl.Lits, cl.LBD)
	}

	c.bar.Wait() // Phase B: publication done

	for other := 0; other < c.cores; other++ {
		if other == t {
			continue
		}
		pool := c.slots[other].pool
		for i := 0; i < pool.Size(); i++ {
			e := pool.Get(i)
			cl := clauseFromEntry(e)
			s.w.ImportClause(cl) // best-effort; failures are non-fatal
		}
	}

	c.bar.Wait() // Phase C: consumption done
	if t == 0 {
		atomic.StoreInt64(&c.syncingSolvers, 0)
		for _, sl := range c.slots {
			sl.pool.Reset()
		}
	}

	s.nextSyncLimit = s.w.CounterAccess() + syncDiffStart
	return false
}
