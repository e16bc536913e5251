package workers

import (
	"context"
	"sync"
)

// WorkerState is the lifecycle state of a worker
type WorkerState string

const (
	StateStopped WorkerState = "stopped"
	StateRunning WorkerState = "running"
)

// Worker interface defines the contract for all workers
type Worker interface {
	// Start schedules the worker and returns immediately. Starting a running worker is a no-op.
	Start(ctx context.Context) error

	// Stop halts the worker and waits for it to finish. Stopping a stopped worker is a no-op.
	Stop() error

	// GetWorkerID returns the unique identifier for this worker
	GetWorkerID() string

	// IsRunning checks if the worker is currently running
	IsRunning() bool
}

// BaseWorker provides the Stopped/Running state machine shared by all workers.
// At most one background loop exists per worker at any time.
type BaseWorker struct {
	WorkerID string

	mu     sync.Mutex
	state  WorkerState
	runCtx context.Context
	cancel context.CancelFunc
	done   chan struct{}
}

// NewBaseWorker creates a new base worker in the stopped state
func NewBaseWorker(workerID string) *BaseWorker {
	return &BaseWorker{
		WorkerID: workerID,
		state:    StateStopped,
	}
}

// GetWorkerID returns the worker's unique identifier
func (w *BaseWorker) GetWorkerID() string {
	return w.WorkerID
}

// State returns the current lifecycle state. A loop whose context has ended
// counts as stopped even before its goroutine has finished.
func (w *BaseWorker) State() WorkerState {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.state == StateRunning && w.runCtx != nil && w.runCtx.Err() != nil {
		return StateStopped
	}
	return w.state
}

// IsRunning checks if the worker is currently running
func (w *BaseWorker) IsRunning() bool {
	return w.State() == StateRunning
}

// run starts loop in a goroutine unless one is already active. It reports whether
// a new loop was started. The loop must return once ctx is done.
func (w *BaseWorker) run(ctx context.Context, loop func(ctx context.Context)) bool {
	w.mu.Lock()
	defer w.mu.Unlock()

	// a loop whose context was cancelled is on its way out; wait for it before starting anew
	for w.state == StateRunning {
		if w.runCtx.Err() == nil {
			return false
		}
		done := w.done
		w.mu.Unlock()
		<-done
		w.mu.Lock()
	}

	runCtx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	w.state = StateRunning
	w.runCtx = runCtx
	w.cancel = cancel
	w.done = done

	go func() {
		defer close(done)
		defer cancel()

		loop(runCtx)

		// the parent context ended the loop; Stop has not been called
		w.mu.Lock()
		if w.done == done {
			w.state = StateStopped
			w.runCtx = nil
			w.cancel = nil
			w.done = nil
		}
		w.mu.Unlock()
	}()

	return true
}

// Stop cancels the active loop and waits for it to exit
func (w *BaseWorker) Stop() error {
	w.mu.Lock()
	cancel, done := w.cancel, w.done
	w.state = StateStopped
	w.runCtx = nil
	w.cancel = nil
	w.done = nil
	w.mu.Unlock()

	if cancel == nil {
		return nil
	}
	cancel()
	<-done
	return nil
}
