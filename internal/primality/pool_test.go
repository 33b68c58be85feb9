package primality

import (
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	apperrors "github.com/agbru/primecheck/internal/errors"
)

func TestNewPoolRejectsInvalidSize(t *testing.T) {
	t.Parallel()
	for _, size := range []int{0, -3} {
		if _, err := NewPool(size); !errors.Is(err, ErrInvalidPoolSize) {
			t.Errorf("NewPool(%d): expected ErrInvalidPoolSize, got %v", size, err)
		}
	}
}

func TestPoolSubmitReturnsValues(t *testing.T) {
	t.Parallel()
	pool, err := NewPool(3)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	futures := make([]*Future, 10)
	for i := range futures {
		f, err := pool.Submit(i, func() bool { return i%2 == 0 })
		if err != nil {
			t.Fatalf("Submit(%d): %v", i, err)
		}
		futures[i] = f
	}

	for i, f := range futures {
		ok, err := f.Get()
		if err != nil {
			t.Fatalf("future %d: unexpected error %v", i, err)
		}
		if ok != (i%2 == 0) {
			t.Errorf("future %d: got %v", i, ok)
		}
		if f.ID() != i {
			t.Errorf("future %d: ID() = %d", i, f.ID())
		}
		if f.State() != TaskCompleted {
			t.Errorf("future %d: state %s, want completed", i, f.State())
		}
	}

	if err := pool.Shutdown(); err != nil {
		t.Errorf("Shutdown: %v", err)
	}
}

func TestPoolShutdownDrainsQueuedTasks(t *testing.T) {
	t.Parallel()
	pool, err := NewPool(2)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	var completed atomic.Int64
	const numTasks = 50
	for i := 0; i < numTasks; i++ {
		if err := pool.Execute(i, func() {
			time.Sleep(time.Millisecond)
			completed.Add(1)
		}); err != nil {
			t.Fatalf("Execute(%d): %v", i, err)
		}
	}

	if err := pool.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if completed.Load() != numTasks {
		t.Errorf("expected %d completed tasks after drain, got %d", numTasks, completed.Load())
	}
}

func TestPoolBoundsConcurrency(t *testing.T) {
	t.Parallel()
	const size = 3
	pool, err := NewPool(size)
	if err != nil {
		t.Fatalf("NewPool: %v", err)
	}

	var running, peak atomic.Int64
	for i := 0; i < 30; i++ {
		_ = pool.Execute(i, func() {
			n := running.Add(1)
			for {
				p := peak.Load()
				if n <= p || peak.CompareAndSwap(p, n) {
					break
				}
			}
			time.Sleep(2 * time.Millisecond)
			running.Add(-1)
		})
	}
	_ = pool.Shutdown()

	if peak.Load() > size {
		t.Errorf("observed %d concurrent tasks on a pool of %d", peak.Load(), size)
	}
}

func TestPoolRecoversPanics(t *testing.T) {
	t.Parallel()

	t.Run("future carries the failure", func(t *testing.T) {
		t.Parallel()
		pool, _ := NewPool(2)
		f, err := pool.Submit(4, func() bool { panic("scan exploded") })
		if err != nil {
			t.Fatalf("Submit: %v", err)
		}
		_, err = f.Get()
		var taskErr *apperrors.TaskFailure
		if !errors.As(err, &taskErr) {
			t.Fatalf("expected TaskFailure, got %v", err)
		}
		if taskErr.Segment != 4 {
			t.Errorf("expected segment 4, got %d", taskErr.Segment)
		}
		if f.State() != TaskFailed {
			t.Errorf("state %s, want failed", f.State())
		}
		if err := pool.Shutdown(); err != nil {
			t.Errorf("future failures should not be reported by Shutdown, got %v", err)
		}
	})

	t.Run("fire-and-forget failure surfaces on shutdown", func(t *testing.T) {
		t.Parallel()
		pool, _ := NewPool(2)
		_ = pool.Execute(0, func() {})
		_ = pool.Execute(1, func() { panic("boom") })
		_ = pool.Execute(2, func() {})

		err := pool.Shutdown()
		var taskErr *apperrors.TaskFailure
		if !errors.As(err, &taskErr) || taskErr.Segment != 1 {
			t.Fatalf("expected TaskFailure for segment 1, got %v", err)
		}
	})
}

func TestPoolRejectsSubmitAfterShutdown(t *testing.T) {
	t.Parallel()
	pool, _ := NewPool(1)
	if err := pool.Shutdown(); err != nil {
		t.Fatalf("Shutdown: %v", err)
	}
	if err := pool.Shutdown(); err != nil {
		t.Errorf("second Shutdown should be a no-op, got %v", err)
	}
	if err := pool.Execute(0, func() {}); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Execute after shutdown: expected ErrPoolClosed, got %v", err)
	}
	if _, err := pool.Submit(0, func() bool { return true }); !errors.Is(err, ErrPoolClosed) {
		t.Errorf("Submit after shutdown: expected ErrPoolClosed, got %v", err)
	}
}

// TestPoolConcurrentSubmitters checks that several goroutines can feed the
// same pool without losing tasks. Run with -race.
func TestPoolConcurrentSubmitters(t *testing.T) {
	t.Parallel()
	pool, _ := NewPool(4)
	var (
		wg        sync.WaitGroup
		completed atomic.Int64
	)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 25; i++ {
				_ = pool.Execute(g*25+i, func() { completed.Add(1) })
			}
		}(g)
	}
	wg.Wait()
	_ = pool.Shutdown()

	if completed.Load() != 200 {
		t.Errorf("expected 200 completed tasks, got %d", completed.Load())
	}
}

func TestTaskStateString(t *testing.T) {
	t.Parallel()
	want := map[TaskState]string{
		TaskSubmitted: "submitted",
		TaskRunning:   "running",
		TaskCompleted: "completed",
		TaskFailed:    "failed",
		TaskState(9):  "TaskState(9)",
	}
	for s, w := range want {
		if s.String() != w {
			t.Errorf("%d.String() = %q, want %q", int(s), s.String(), w)
		}
	}
}
