package assistant

import (
	"context"
	"errors"
	"sync"
	"time"
)

type Kind string

const (
	KindOfficeLookup Kind = "office_lookup"
	KindAnalysis     Kind = "analysis"
)

var (
	ErrSuperseded = errors.New("assistant: superseded by a newer request")
	ErrClosed     = errors.New("assistant: runner closed")
)

type task struct {
	id     uint64
	cancel context.CancelFunc
}

// Runner owns the in-flight assistant requests. There is at most one
// current task per Kind: starting a new one cancels the previous one, and a
// task's result is only delivered if it is still current when it finishes.
type Runner struct {
	mu      sync.Mutex
	base    context.Context
	stop    context.CancelFunc
	timeout time.Duration
	seq     uint64
	tasks   map[Kind]*task
	closed  bool
}

// NewRunner returns a Runner. timeout bounds every task; zero means no
// timeout beyond the caller's context.
func NewRunner(timeout time.Duration) *Runner {
	base, stop := context.WithCancel(context.Background())
	return &Runner{
		base:    base,
		stop:    stop,
		timeout: timeout,
		tasks:   make(map[Kind]*task),
	}
}

// Run executes fn as the current task of kind. fn gets a context that is
// cancelled when the caller gives up, the timeout expires, a newer task of
// the same kind starts or the runner closes. Results of a task that is no
// longer current are dropped with ErrSuperseded or ErrClosed.
func Run[T any](ctx context.Context, r *Runner, kind Kind, fn func(ctx context.Context) (T, error)) (T, error) {
	var zero T

	taskCtx, id, release, err := r.begin(ctx, kind)
	if err != nil {
		return zero, err
	}
	defer release()

	v, err := fn(taskCtx)
	if finishErr := r.finish(kind, id); finishErr != nil {
		return zero, finishErr
	}
	return v, err
}

func (r *Runner) begin(ctx context.Context, kind Kind) (context.Context, uint64, func(), error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return nil, 0, nil, ErrClosed
	}

	var (
		taskCtx context.Context
		cancel  context.CancelFunc
	)
	if r.timeout > 0 {
		taskCtx, cancel = context.WithTimeout(ctx, r.timeout)
	} else {
		taskCtx, cancel = context.WithCancel(ctx)
	}
	unhook := context.AfterFunc(r.base, cancel)

	if prev, ok := r.tasks[kind]; ok {
		prev.cancel()
	}
	r.seq++
	r.tasks[kind] = &task{id: r.seq, cancel: cancel}

	release := func() {
		unhook()
		cancel()
	}
	return taskCtx, r.seq, release, nil
}

func (r *Runner) finish(kind Kind, id uint64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	current, ok := r.tasks[kind]
	if !ok || current.id != id {
		return ErrSuperseded
	}
	delete(r.tasks, kind)
	return nil
}

// Pending reports whether a task of kind is in flight.
func (r *Runner) Pending(kind Kind) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	_, ok := r.tasks[kind]
	return ok
}

// Close cancels every in-flight task. Later calls to Run fail with ErrClosed.
func (r *Runner) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return
	}
	r.closed = true
	r.stop()
	for kind := range r.tasks {
		delete(r.tasks, kind)
	}
}
