package workers

import (
	"context"
	"errors"
	"sync"

	"github.com/alimgiray/gfolio/pkg/logger"
)

// WorkerManager starts, tracks and stops background workers
type WorkerManager struct {
	workers []Worker
	wg      sync.WaitGroup
	ctx     context.Context
	cancel  context.CancelFunc
}

// NewWorkerManager creates a new worker manager
func NewWorkerManager() *WorkerManager {
	ctx, cancel := context.WithCancel(context.Background())
	return &WorkerManager{
		workers: make([]Worker, 0),
		ctx:     ctx,
		cancel:  cancel,
	}
}

// Add registers a worker to be started by StartAll
func (wm *WorkerManager) Add(worker Worker) {
	wm.workers = append(wm.workers, worker)
}

// StartAll starts every registered worker
func (wm *WorkerManager) StartAll() error {
	for _, worker := range wm.workers {
		wm.startWorker(worker)
	}

	logger.Infof("Started %d total workers", len(wm.workers))
	return nil
}

// StopAll gracefully stops all workers
func (wm *WorkerManager) StopAll() error {
	logger.Info("Stopping all workers...")

	// Cancel the context to signal all workers to stop
	wm.cancel()

	for _, worker := range wm.workers {
		if err := worker.Stop(); err != nil {
			logger.WithError(err).WithField("worker", worker.GetWorkerID()).Warn("error stopping worker")
		}
	}

	wm.wg.Wait()

	logger.Info("All workers stopped")
	return nil
}

// startWorker starts a single worker in a goroutine
func (wm *WorkerManager) startWorker(worker Worker) {
	wm.wg.Add(1)
	go func() {
		defer wm.wg.Done()
		if err := worker.Start(wm.ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.WithError(err).WithField("worker", worker.GetWorkerID()).Error("worker stopped with error")
		}
	}()
}

// GetWorkerStatus returns the status of all workers
func (wm *WorkerManager) GetWorkerStatus() map[string]bool {
	status := make(map[string]bool)
	for _, worker := range wm.workers {
		if running, ok := worker.(interface{ IsRunning() bool }); ok {
			status[worker.GetWorkerID()] = running.IsRunning()
		} else {
			status[worker.GetWorkerID()] = false
		}
	}
	return status
}
