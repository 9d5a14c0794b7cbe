package jobqueue

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func waitFor(t *testing.T, cond func() bool, timeout time.Duration, msg string) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatal(msg)
}

func TestNewPoolStartsSleeping(t *testing.T) {
	q := New(3)
	defer func() { q.SetState(Terminate); q.Wait() }()
	assert.True(t, q.AllSleeping())
}

func TestSleepingToWorkingRunsQueuedJobs(t *testing.T) {
	q := New(2)
	defer func() { q.SetState(Terminate); q.Wait() }()

	var ran int32
	for i := 0; i < 4; i++ {
		q.AddJob(Job{Fn: func(interface{}) { atomic.AddInt32(&ran, 1) }})
	}
	q.SetState(Working)
	waitFor(t, func() bool { return atomic.LoadInt32(&ran) == 4 }, time.Second, "not all jobs ran")
}

func TestBackToSleepingAfterDrainingQueue(t *testing.T) {
	q := New(2)
	defer func() { q.SetState(Terminate); q.Wait() }()

	done := make(chan struct{})
	q.AddJob(Job{Fn: func(interface{}) { close(done) }})
	q.SetState(Working)
	<-done

	waitFor(t, q.AllSleeping, time.Second, "workers never returned to sleeping after draining the queue")
}

func TestTerminateJoinsEveryWorker(t *testing.T) {
	q := New(4)
	q.SetState(Terminate)

	done := make(chan struct{})
	go func() { q.Wait(); close(done) }()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Wait never returned after Terminate")
	}
}

// TestWriteStateBeforeWaking exercises the ordering SetState documents:
// a worker woken by SetState(Working) must never observe its own local
// state as still SLEEPING, which a lost-wakeup bug would expose as a
// job queued-but-never-run.
func TestWriteStateBeforeWaking(t *testing.T) {
	q := New(8)
	defer func() { q.SetState(Terminate); q.Wait() }()

	for cycle := 0; cycle < 50; cycle++ {
		var wg sync.WaitGroup
		n := 8
		wg.Add(n)
		for i := 0; i < n; i++ {
			q.AddJob(Job{Fn: func(interface{}) { wg.Done() }})
		}
		q.SetState(Working)

		done := make(chan struct{})
		go func() { wg.Wait(); close(done) }()
		select {
		case <-done:
		case <-time.After(time.Second):
			t.Fatalf("cycle %d: lost wakeup, not all jobs completed", cycle)
		}
		require.Eventually(t, q.AllSleeping, time.Second, time.Millisecond)
	}
}
