// Package coordinator implements the parallel portfolio coordination
// core: it owns N diversified worker.Worker instances, dispatches
// replicas onto a jobqueue.Queue, synchronizes them through a
// barrier.Barrier, and exchanges learned clauses via clausepool.Pool.
//
// Grounded on original_source/minisat/parallel/ParSolver.{h,cc} (the
// distillation's own source of truth for this core), adapted from
// MergeSat's C++ ParSolver class into Go: a single owning goroutine
// drives construction and solveLimited, replicas run on jobqueue
// goroutines, and the barrier/pool primitives replace ParSolver's
// pthread mutex/condvar and Sharing.h's manual buffers.
package coordinator

import (
	"os"
	"runtime"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/sirupsen/logrus"

	"github.com/parsat-project/parsat/barrier"
	"github.com/parsat-project/parsat/clausepool"
	"github.com/parsat-project/parsat/jobqueue"
	"github.com/parsat-project/parsat/lit"
	"github.com/parsat-project/parsat/worker"
)

// slot is one portfolio member's Coordinator-owned bookkeeping,
// grounded on ParSolver.h's SolverData.
type slot struct {
	w       worker.Worker
	pool    *clausepool.Pool
	syncDat *worker.SyncData

	status        lit.LBool
	idleSeconds   float64
	nextSyncLimit int64
	learnedMark   int
}

// Coordinator is the parallel portfolio core: the "ParSolver" of
// spec.md §4.5.
type Coordinator struct {
	mu sync.Mutex // guards the fields below; held only outside of solveLimited's parallel phase

	cores int
	slots []*slot

	primaryModified   bool
	syncedUnits       int
	syncedClauses     int
	useSimplification bool
	initialized       bool

	jobs           *jobqueue.Queue
	bar            *barrier.Barrier
	syncingSolvers int64 // atomic, incremented inside portfolioSync

	assumptions []lit.Lit
	model       []lit.LBool
	conflict    []lit.Lit

	simplificationSeconds float64
	startedAt             time.Time

	log     *logrus.Logger
	metrics *metricsSet
}

// New builds a Coordinator and its worker portfolio, per spec.md
// §4.5.1's lifecycle: resolve cores, construct one worker per slot,
// diversify each, disable preprocessing on every replica, and (for
// cores > 1) allocate the jobqueue and a zero-capacity barrier to be
// grown before the first solve.
func New(cfg Config) *Coordinator {
	if cfg.NewWorker == nil {
		panic("coordinator: Config.NewWorker is required")
	}
	cores := resolveCores(cfg.Cores)

	log := logrus.New()
	log.SetFormatter(&cLineFormatter{})
	log.SetOutput(os.Stdout)

	c := &Coordinator{
		cores:             cores,
		useSimplification: true,
		log:               log,
		metrics:           newMetricsSet(),
		startedAt:         time.Now(),
	}
	c.metrics.cores.Set(float64(cores))

	c.slots = make([]*slot, cores)
	for i := 0; i < cores; i++ {
		w := cfg.NewWorker()
		w.Diversify(i, 32)
		if i > 0 {
			w.Eliminate(true) // only the primary ever preprocesses
		}
		c.slots[i] = &slot{w: w, status: lit.LUndef, pool: clausepool.New(64)}
	}

	if cores > 1 {
		c.jobs = jobqueue.New(cores - 1)
		c.jobs.SetState(jobqueue.Sleeping)
		c.bar = barrier.New(0)
	}

	c.log.Infof("initialize solver for %d cores", cores)
	c.initialized = true
	return c
}

func resolveCores(cores int) int {
	switch {
	case cores == 0:
		cores = runtime.NumCPU()
	case cores == -1:
		cores = (runtime.NumCPU() + 1) / 2
	}
	if cores < 1 {
		cores = 1
	}
	return cores
}

// TearDown stops the job pool and releases the portfolio. Per
// spec.md §4.5.1: signal TERMINATE, join every replica goroutine,
// then drop the workers.
func (c *Coordinator) TearDown() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if !c.initialized {
		return
	}
	if c.jobs != nil {
		c.jobs.SetState(jobqueue.Terminate)
		c.jobs.Wait()
	}
	c.slots = nil
	c.jobs = nil
	c.bar = nil
	c.initialized = false
}

func (c *Coordinator) primary() *slot { return c.slots[0] }

// --- 4.5.2 Formula construction (pass-through to primary) ---

// NVars returns the primary's variable count.
func (c *Coordinator) NVars() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.primary().w.NVars()
}

// NClauses returns the primary's original clause count.
func (c *Coordinator) NClauses() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.primary().w.NClauses()
}

// NewVar allocates a variable on the primary.
func (c *Coordinator) NewVar(pol lit.LBool, decision bool) lit.Var {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.primaryModified = true
	return c.primary().w.NewVar(pol, decision)
}

// ReserveVars pre-sizes the primary's internal arrays.
func (c *Coordinator) ReserveVars(n int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.primary().w.ReserveVars(n)
}

// AddClause adds a clause to the primary.
func (c *Coordinator) AddClause(lits []lit.Lit) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.primaryModified = true
	return c.primary().w.AddClause(lits)
}

// SetFrozen marks v ineligible for elimination on the primary.
// Replicas never preprocess, so they need no corresponding sync.
func (c *Coordinator) SetFrozen(v lit.Var, frozen bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.primary().w.SetFrozen(v, frozen)
}

// IsEliminated reads back the primary's elimination state for v.
func (c *Coordinator) IsEliminated(v lit.Var) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.primary().w.IsEliminated(v)
}

// Eliminate runs preprocessing on the primary only.
func (c *Coordinator) Eliminate(turnOff bool) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.log.Info("primary elimination")
	c.primaryModified = true
	return c.primary().w.Eliminate(turnOff)
}

// Okay returns false iff the primary's formula is known unsat.
func (c *Coordinator) Okay() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.primary().w.Okay()
}

// Interrupt forwards to every worker's Interrupt, per spec.md §4.5.8.
// Asynchronous and idempotent.
func (c *Coordinator) Interrupt() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, s := range c.slots {
		s.w.Interrupt()
	}
}

// Model returns the satisfying assignment from the last SolveLimited
// that returned LTrue.
func (c *Coordinator) Model() []lit.LBool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model
}

// Conflict returns the failed-assumption set from the last
// SolveLimited that returned LFalse under assumptions.
func (c *Coordinator) Conflict() []lit.Lit {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conflict
}

// PrintStats logs the spec.md §6.3 stdout lines (via logrus, prefixed
// "c ") and refreshes the parallel Prometheus gauges.
func (c *Coordinator) PrintStats() {
	c.mu.Lock()
	defer c.mu.Unlock()

	var idleSum float64
	var conflicts, decisions, restarts int64
	for _, s := range c.slots {
		idleSum += s.idleSeconds
		if sr, ok := s.w.(worker.StatsReporter); ok {
			st := sr.Stats()
			conflicts += st.Conflicts
			decisions += st.Decisions
			restarts += st.Restarts
		}
	}
	cpu := time.Since(c.startedAt).Seconds()
	theoreticalMax := (cpu-c.simplificationSeconds)*float64(c.cores) + c.simplificationSeconds

	c.log.Infof("used %d cores", c.cores)
	c.log.Infof("simplification wall time: %g s", c.simplificationSeconds)
	c.log.Infof("CPU time: %g s", cpu)
	c.log.Infof("theor. Max CPU time: %g s", theoreticalMax)
	c.log.Infof("idle wall search time (sum): %g s", idleSum)
	c.log.Infof("SUM stats conflicts: %d", conflicts)
	c.log.Infof("SUM stats decisions: %d", decisions)
	c.log.Infof("SUM stats restarts: %d", restarts)

	c.metrics.simplificationWallSecond.Set(c.simplificationSeconds)
	c.metrics.cpuSeconds.Set(cpu)
	c.metrics.idleWallSecondsSum.Set(idleSum)
	c.metrics.conflictsSum.Set(float64(conflicts))
	c.metrics.decisionsSum.Set(float64(decisions))
	c.metrics.restartsSum.Set(float64(restarts))
}

// Registry exposes the Coordinator's Prometheus registry for a caller
// that wants to scrape these numbers rather than read the log.
func (c *Coordinator) Registry() *prometheus.Registry {
	return c.metrics.registry
}

// soundnessFault is the fatal error raised when two workers return
// disagreeing definite answers — spec.md §7's error taxonomy item 4.
// It must never happen under correct workers; a correct portfolio
// never recovers from it.
func soundnessFault(a, b lit.LBool) error {
	return errors.Errorf("coordinator: portfolio disagreement, worker statuses %v and %v", a, b)
}

