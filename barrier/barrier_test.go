package barrier

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWaitReleasesAllAtomically(t *testing.T) {
	b := New(3)
	var wg sync.WaitGroup
	released := make([]bool, 3)
	wg.Add(3)
	for i := 0; i < 3; i++ {
		i := i
		go func() {
			defer wg.Done()
			b.Wait()
			released[i] = true
		}()
	}
	wg.Wait()
	for i, r := range released {
		assert.True(t, r, "participant %d never released", i)
	}
	assert.True(t, b.Idle())
}

func TestReusableWithoutExplicitReset(t *testing.T) {
	b := New(2)
	for cycle := 0; cycle < 5; cycle++ {
		var wg sync.WaitGroup
		wg.Add(2)
		for i := 0; i < 2; i++ {
			go func() {
				defer wg.Done()
				b.Wait()
			}()
		}
		done := make(chan struct{})
		go func() { wg.Wait(); close(done) }()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("cycle %d did not complete", cycle)
		}
	}
}

func TestGrowDuringInProgressCycle(t *testing.T) {
	b := New(2)
	var firstArrived sync.WaitGroup
	firstArrived.Add(1)
	released := make(chan struct{})

	go func() {
		firstArrived.Done()
		b.Wait()
		close(released)
	}()
	firstArrived.Wait()
	time.Sleep(10 * time.Millisecond) // let the goroutine block in Wait

	require.NoError(t, b.Grow(4))
	assert.Equal(t, 4, b.Capacity())

	select {
	case <-released:
		t.Fatal("barrier released before growth was satisfied")
	case <-time.After(20 * time.Millisecond):
	}

	var wg sync.WaitGroup
	wg.Add(3)
	for i := 0; i < 3; i++ {
		go func() { defer wg.Done(); b.Wait() }()
	}
	done := make(chan struct{})
	go func() { wg.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("barrier never completed after growth")
	}
	<-released
	assert.True(t, b.Idle())
}

func TestGrowRejectsShrink(t *testing.T) {
	b := New(4)
	err := b.Grow(2)
	assert.Error(t, err)
	assert.Equal(t, 4, b.Capacity())
}

func TestCloseWithCycleInProgressPanics(t *testing.T) {
	b := New(2)
	var arrived sync.WaitGroup
	arrived.Add(1)
	go func() {
		arrived.Done()
		b.Wait()
	}()
	arrived.Wait()
	time.Sleep(10 * time.Millisecond)

	assert.False(t, b.Idle())
	assert.Panics(t, func() { b.Close() })

	// release the blocked goroutine so the test process exits cleanly
	b.Wait()
}

func TestCloseWhenIdleIsSafe(t *testing.T) {
	b := New(1)
	b.Wait()
	assert.True(t, b.Idle())
	assert.NotPanics(t, func() { b.Close() })
}
