package primality

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/primecheck/internal/errors"
	"github.com/agbru/primecheck/internal/parallel"
)

// ErrPoolClosed is returned when a task is submitted after Shutdown.
var ErrPoolClosed = errors.New("worker pool is shut down")

// TaskState is the lifecycle stage of a task submitted to a Pool.
type TaskState int

const (
	// TaskSubmitted means the task is queued and no worker has taken it yet.
	TaskSubmitted TaskState = iota
	// TaskRunning means a worker is executing the task.
	TaskRunning
	// TaskCompleted means the task produced an outcome.
	TaskCompleted
	// TaskFailed means the task panicked and produced no outcome.
	TaskFailed
)

// String returns the lowercase state name.
func (s TaskState) String() string {
	switch s {
	case TaskSubmitted:
		return "submitted"
	case TaskRunning:
		return "running"
	case TaskCompleted:
		return "completed"
	case TaskFailed:
		return "failed"
	default:
		return fmt.Sprintf("TaskState(%d)", int(s))
	}
}

// Future is the handle of a value-returning task. Get blocks until the task
// has completed or failed.
type Future struct {
	id    int
	done  chan struct{}
	mu    sync.Mutex
	state TaskState
	value bool
	err   error
}

func newFuture(id int) *Future {
	return &Future{id: id, done: make(chan struct{})}
}

// ID returns the identifier given at submission.
func (f *Future) ID() int { return f.id }

// Done returns a channel closed once the task has finished.
func (f *Future) Done() <-chan struct{} { return f.done }

// State returns the current lifecycle stage of the task.
func (f *Future) State() TaskState {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state
}

// Get waits for the task and returns its outcome. If the task failed, the
// returned error is a *apperrors.TaskFailure and the boolean is meaningless.
func (f *Future) Get() (bool, error) {
	<-f.done
	return f.value, f.err
}

func (f *Future) setState(s TaskState) {
	f.mu.Lock()
	f.state = s
	f.mu.Unlock()
}

func (f *Future) complete(value bool, err error) {
	f.mu.Lock()
	f.value, f.err = value, err
	if err != nil {
		f.state = TaskFailed
	} else {
		f.state = TaskCompleted
	}
	f.mu.Unlock()
	close(f.done)
}

type task struct {
	id     int
	fn     func() bool
	future *Future
}

// Pool is a fixed set of workers consuming a shared task queue. A pool is
// owned by a single check invocation: it is created, fed, shut down and
// discarded.
type Pool struct {
	size     int
	tasks    chan task
	workers  errgroup.Group
	failures parallel.ErrorCollector

	mu     sync.Mutex
	closed bool
}

// NewPool starts size workers. size must be positive.
func NewPool(size int) (*Pool, error) {
	if size <= 0 {
		return nil, apperrors.ValidationError{
			Field:   "pool",
			Message: fmt.Sprintf("got %d, must be greater than zero", size),
			Err:     ErrInvalidPoolSize,
		}
	}
	p := &Pool{size: size, tasks: make(chan task, size)}
	for range size {
		p.workers.Go(p.work)
	}
	return p, nil
}

// Size returns the number of workers.
func (p *Pool) Size() int { return p.size }

// Execute queues a fire-and-forget task. A panic inside fn is recorded and
// returned by Shutdown.
func (p *Pool) Execute(id int, fn func()) error {
	return p.enqueue(task{id: id, fn: func() bool { fn(); return true }})
}

// Submit queues a value-returning task and returns its Future.
func (p *Pool) Submit(id int, fn func() bool) (*Future, error) {
	f := newFuture(id)
	if err := p.enqueue(task{id: id, fn: fn, future: f}); err != nil {
		return nil, err
	}
	return f, nil
}

func (p *Pool) enqueue(t task) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return ErrPoolClosed
	}
	p.tasks <- t
	return nil
}

// Shutdown stops accepting tasks and blocks until every queued task has
// run and every worker has exited. It returns the first failure among
// fire-and-forget tasks. Calling Shutdown more than once is safe.
func (p *Pool) Shutdown() error {
	p.mu.Lock()
	if !p.closed {
		p.closed = true
		close(p.tasks)
	}
	p.mu.Unlock()

	if err := p.workers.Wait(); err != nil {
		return err
	}
	return p.failures.Err()
}

func (p *Pool) work() error {
	for t := range p.tasks {
		if t.future != nil {
			t.future.setState(TaskRunning)
		}
		value, err := runTask(t)
		if t.future != nil {
			t.future.complete(value, err)
			continue
		}
		p.failures.SetError(err)
	}
	return nil
}

func runTask(t task) (value bool, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &apperrors.TaskFailure{Segment: t.id, Cause: fmt.Errorf("panic: %v", r)}
		}
	}()
	return t.fn(), nil
}
