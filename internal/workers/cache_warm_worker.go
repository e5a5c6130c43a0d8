package workers

import (
	"context"
	"sync"
	"time"

	"github.com/alimgiray/gfolio/internal/services"
	"github.com/alimgiray/gfolio/pkg/logger"
)

// WarmInterval is how often to refresh a cache with the given TTL. Half
// the TTL keeps every entry younger than the TTL between passes.
func WarmInterval(ttl time.Duration) time.Duration {
	return ttl / 2
}

// CacheWarmWorker refreshes the portfolio on start and then once per
// interval, so the cache is fresh when visitors arrive. Each pass fetches
// upstream and restocks the cache; it never evicts anything.
type CacheWarmWorker struct {
	*BaseWorker
	portfolio *services.PortfolioService
	interval  time.Duration

	mu       sync.Mutex
	lastWarm time.Time
	warms    int
}

// NewCacheWarmWorker creates a new cache warm worker
func NewCacheWarmWorker(workerID string, portfolio *services.PortfolioService, interval time.Duration) *CacheWarmWorker {
	return &CacheWarmWorker{
		BaseWorker: NewBaseWorker(workerID),
		portfolio:  portfolio,
		interval:   interval,
	}
}

// Start begins the cache warm loop
func (w *CacheWarmWorker) Start(ctx context.Context) error {
	w.setRunning(true)
	defer w.setRunning(false)
	logger.WithField("worker", w.WorkerID).Infof("cache warm worker started, interval %s", w.interval)

	w.warm(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logger.WithField("worker", w.WorkerID).Info("cache warm worker stopping due to context cancellation")
			return ctx.Err()
		case <-w.StopChan:
			logger.WithField("worker", w.WorkerID).Info("cache warm worker stopping")
			return nil
		case <-ticker.C:
			w.warm(ctx)
		}
	}
}

func (w *CacheWarmWorker) warm(ctx context.Context) {
	start := time.Now()
	snapshot := w.portfolio.Refresh(ctx)

	w.mu.Lock()
	w.lastWarm = start
	w.warms++
	w.mu.Unlock()

	entry := logger.WithField("worker", w.WorkerID).
		WithField("username", snapshot.Username).
		WithField("duration", time.Since(start).String())
	if snapshot.ProfileErr != nil || snapshot.RepositoriesErr != nil {
		entry.Warn("cache warm incomplete")
		return
	}
	entry.WithField("repositories", len(snapshot.Repositories)).Debugf("cache warmed")
}

// Warms returns how many warm passes ran and when the last one started.
func (w *CacheWarmWorker) Warms() (int, time.Time) {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.warms, w.lastWarm
}
