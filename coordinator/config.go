package coordinator

import "github.com/parsat-project/parsat/worker"

// Config configures a Coordinator. It is the programmatic surface of
// spec.md §6.2's single `cores` option, plus the worker factory that
// lets callers (cmd/parsat, or a test) choose which worker.Worker
// implementation a portfolio is built from.
type Config struct {
	// Cores mirrors the original `cores` option: 0 means "use all
	// detected hardware threads", -1 means "use half, rounded up", and
	// any k >= 1 means exactly k workers.
	Cores int

	// NewWorker constructs one fresh worker.Worker per portfolio slot.
	// Required; the Coordinator has no built-in engine so it can be
	// driven by a test double as easily as by internal/engine.
	NewWorker func() worker.Worker
}
