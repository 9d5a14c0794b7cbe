// Package barrier implements a reusable N-party rendezvous with
// dynamic capacity growth (spec.md §4.3).
//
// Grounded on other_examples/tchajed-sys-verif-fa24-proofs__barrier.go's
// mutex+sync.Cond shape, generalized from a one-shot Add/Done/Wait
// barrier into the alternating counting-down/counting-up cycle
// spec.md describes, which is what makes the barrier safe to reuse
// immediately without any "who resets?" coordination: the phase that
// releases one cycle is also the phase that counts the next cycle's
// arrivals in reverse.
package barrier

import (
	"sync"

	"github.com/pkg/errors"
)

type phase int

const (
	countingDown phase = iota
	countingUp
)

// Barrier blocks each of Capacity participants at Wait until all have
// arrived, then releases them all atomically. It is reusable across
// cycles without any explicit reset call.
type Barrier struct {
	mu    sync.Mutex
	cond  *sync.Cond
	cap   int
	rem   int
	ph    phase
}

// New returns a Barrier with the given initial capacity. A capacity
// of 0 is valid; spec.md's coordinator allocates one at capacity 0 and
// grows it to the portfolio size before the first solve call.
func New(capacity int) *Barrier {
	b := &Barrier{cap: capacity, rem: capacity, ph: countingDown}
	b.cond = sync.NewCond(&b.mu)
	return b
}

// Wait blocks until Capacity participants (including the caller) have
// called Wait since the last release, then returns. The caller that
// observes the last arrival releases every waiter atomically before
// returning itself.
func (b *Barrier) Wait() {
	b.mu.Lock()
	defer b.mu.Unlock()

	switch b.ph {
	case countingDown:
		b.rem--
		if b.rem == 0 {
			b.ph = countingUp
			b.rem = 0
			b.cond.Broadcast()
			return
		}
		for b.ph == countingDown {
			b.cond.Wait()
		}
	case countingUp:
		b.rem++
		if b.rem == b.cap {
			b.ph = countingDown
			b.rem = b.cap
			b.cond.Broadcast()
			return
		}
		for b.ph == countingUp {
			b.cond.Wait()
		}
	}
}

// Grow increases the barrier's capacity between cycles. If a
// counting_down cycle is in progress, the owed-arrivals count grows by
// the same delta so that cycle still completes correctly; shrinking is
// not supported.
func (b *Barrier) Grow(newCap int) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	if newCap < b.cap {
		return errors.Errorf("barrier: cannot shrink capacity %d to %d", b.cap, newCap)
	}
	delta := newCap - b.cap
	b.cap = newCap
	if b.ph == countingDown {
		b.rem += delta
	}
	return nil
}

// Capacity returns the barrier's current capacity.
func (b *Barrier) Capacity() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.cap
}

// Idle reports whether the current cycle has no pending arrivals: all
// arrivals for the cycle have completed, or none have started yet.
// It is a programming error to destroy a Barrier while Idle is false.
func (b *Barrier) Idle() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.idleLocked()
}

func (b *Barrier) idleLocked() bool {
	switch b.ph {
	case countingDown:
		return b.rem == b.cap
	default:
		return b.rem == 0
	}
}

// Close asserts the destruction contract: the current cycle must be
// empty. It panics if a participant is still blocked inside Wait,
// since that is a programming error rather than a recoverable one.
func (b *Barrier) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if !b.idleLocked() {
		panic("barrier: Close called with a cycle in progress")
	}
}
