package workers

import (
	"context"
	"sync"

	"github.com/alimgiray/tzroster/pkg/logger"
)

// WorkerManager owns the lifecycle of a set of workers
type WorkerManager struct {
	mu      sync.Mutex
	workers []Worker
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager(workers ...Worker) *WorkerManager {
	return &WorkerManager{
		workers: workers,
	}
}

// Register adds a worker. It is started on the next StartAll.
func (wm *WorkerManager) Register(worker Worker) {
	wm.mu.Lock()
	defer wm.mu.Unlock()
	wm.workers = append(wm.workers, worker)
}

// StartAll starts every registered worker under a shared cancellable context.
// Calling it again while running does not start duplicates.
func (wm *WorkerManager) StartAll() error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	if wm.ctx == nil {
		wm.ctx, wm.cancel = context.WithCancel(context.Background())
	}

	for _, worker := range wm.workers {
		if err := worker.Start(wm.ctx); err != nil {
			logger.WithError(err).WithField("worker_id", worker.GetWorkerID()).Error("Failed to start worker")
			return err
		}
	}

	logger.Infof("Started %d workers", len(wm.workers))
	return nil
}

// StopAll stops every worker and waits for them to finish
func (wm *WorkerManager) StopAll() error {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	if wm.cancel != nil {
		wm.cancel()
		wm.ctx, wm.cancel = nil, nil
	}

	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.WithError(err).WithField("worker_id", worker.GetWorkerID()).Error("Error stopping worker")
		}
	}

	logger.Info("All workers stopped")
	return nil
}

// GetWorkerStatus returns the running state of all workers
func (wm *WorkerManager) GetWorkerStatus() map[string]bool {
	wm.mu.Lock()
	defer wm.mu.Unlock()

	status := make(map[string]bool, len(wm.workers))
	for _, worker := range wm.workers {
		status[worker.GetWorkerID()] = worker.IsRunning()
	}
	return status
}
