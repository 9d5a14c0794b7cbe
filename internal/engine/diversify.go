package engine

import "math/rand"

// Diversify perturbs this engine's search so that seed-many replicas
// of the same formula explore different parts of the search space
// instead of retracing each other, per spec.md §4.5.1's
// InitializeParallel/Diversify(i, span) contract: worker i is seeded
// distinctly from worker i+1, and span bounds how many peers the
// caller expects to diversify against (used here only to scale the
// restart offset so a wide portfolio doesn't bunch restarts together).
func (e *Engine) Diversify(seed, span int) {
	e.lock()
	defer e.unlock()
	e.rng = rand.New(rand.NewSource(int64(seed) + 1))
	if span <= 0 {
		span = 1
	}
	e.restartOffset = seed % span
	e.lb = &luby{i: e.restartOffset}
	for v := range e.polarity {
		if e.rng.Intn(4) == 0 {
			e.polarity[v] = !e.polarity[v]
		}
	}
	e.varDecay = varDecayDefault + float64(seed%5)*0.002
}
