package worker

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

type stubResult struct {
	label string
	err   error
}

func (r *stubResult) GetError() error {
	return r.err
}

// stubJob optionally blocks for hold, honoring cancellation
type stubJob struct {
	label   string
	hold    time.Duration
	fail    bool
	onStart func()
	onEnd   func()
}

func (j *stubJob) Execute(ctx context.Context) Result {
	if j.onStart != nil {
		j.onStart()
	}
	if j.onEnd != nil {
		defer j.onEnd()
	}
	if j.hold > 0 {
		select {
		case <-time.After(j.hold):
		case <-ctx.Done():
			return &stubResult{label: j.label, err: ctx.Err()}
		}
	}
	if j.fail {
		return &stubResult{label: j.label, err: errors.New("case failed")}
	}
	return &stubResult{label: j.label}
}

func TestNewPool_WorkerFloor(t *testing.T) {
	tests := []struct {
		workers int
		want    int
	}{
		{workers: 4, want: 4},
		{workers: 0, want: 1},
		{workers: -3, want: 1},
	}

	for _, tt := range tests {
		if got := NewPool(context.Background(), tt.workers).workers; got != tt.want {
			t.Errorf("NewPool(%d): expected %d workers, got %d", tt.workers, tt.want, got)
		}
	}
}

func TestPool_CollectsEveryResult(t *testing.T) {
	pool := NewPool(context.Background(), 3)
	pool.Start()

	var failed int
	for i := 0; i < 12; i++ {
		fail := i%4 == 0
		if fail {
			failed++
		}
		if !pool.Submit(&stubJob{fail: fail}) {
			t.Fatalf("Expected job %d to be accepted", i)
		}
	}

	results := pool.Wait()
	if len(results) != 12 {
		t.Fatalf("Expected 12 results, got %d", len(results))
	}

	var gotFailed int
	for _, res := range results {
		if res.GetError() != nil {
			gotFailed++
		}
	}
	if gotFailed != failed {
		t.Errorf("Expected %d failed results, got %d", failed, gotFailed)
	}
}

func TestPool_NeverExceedsWorkerCount(t *testing.T) {
	const workers = 4
	pool := NewPool(context.Background(), workers)
	pool.Start()

	var running, peak int32
	var mu sync.Mutex
	for i := 0; i < 24; i++ {
		pool.Submit(&stubJob{
			hold: 5 * time.Millisecond,
			onStart: func() {
				n := atomic.AddInt32(&running, 1)
				mu.Lock()
				if n > peak {
					peak = n
				}
				mu.Unlock()
			},
			onEnd: func() { atomic.AddInt32(&running, -1) },
		})
	}
	pool.Wait()

	mu.Lock()
	defer mu.Unlock()
	if peak > workers {
		t.Errorf("Expected at most %d concurrent jobs, got %d", workers, peak)
	}
}

func TestPool_ManyJobsDoNotDeadlock(t *testing.T) {
	pool := NewPool(context.Background(), 1)
	pool.Start()

	done := make(chan int)
	go func() {
		for i := 0; i < 100; i++ {
			pool.Submit(&stubJob{})
		}
		done <- len(pool.Wait())
	}()

	select {
	case n := <-done:
		if n != 100 {
			t.Errorf("Expected 100 results, got %d", n)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Pool deadlocked with more jobs than buffer space")
	}
}

func TestPool_RejectsAfterParentCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	pool := NewPool(ctx, 1)
	pool.Start()
	cancel()

	if pool.Submit(&stubJob{}) {
		t.Error("Expected submit to be rejected after parent cancel")
	}
	pool.Shutdown()
}

func TestPool_RejectsAfterShutdown(t *testing.T) {
	pool := NewPool(context.Background(), 2)
	pool.Start()
	pool.Shutdown()

	done := make(chan bool)
	go func() { done <- pool.Submit(&stubJob{}) }()

	select {
	case accepted := <-done:
		if accepted {
			t.Error("Expected submit after shutdown to be rejected")
		}
	case <-time.After(time.Second):
		t.Fatal("Submit after shutdown blocked")
	}
}

func TestPool_ShutdownCancelsRunningJob(t *testing.T) {
	pool := NewPool(context.Background(), 1)
	pool.Start()

	started := make(chan struct{})
	pool.Submit(&stubJob{
		hold:    time.Minute,
		onStart: func() { close(started) },
	})
	<-started

	finished := make(chan struct{})
	go func() {
		pool.Shutdown()
		close(finished)
	}()

	select {
	case <-finished:
	case <-time.After(time.Second):
		t.Fatal("Shutdown did not cancel the running job")
	}
}
