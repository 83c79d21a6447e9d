package worker

import (
	"context"
	"log/slog"
	"sync"
	"time"
)

// StoreFacade exposes the subset of application functionality required by the worker.
type StoreFacade interface {
	ExpireStaleOrders(ctx context.Context, limit int) ([]int64, error)
}

// OrderExpirer periodically moves stale pending orders to expired so
// abandoned checkouts do not linger forever.
type OrderExpirer struct {
	facade        StoreFacade
	sweepInterval time.Duration
	batchSize     int
	logger        *slog.Logger

	wg     sync.WaitGroup
	cancel context.CancelFunc
	mu     sync.Mutex
}

// NewOrderExpirer constructs the expirer.
func NewOrderExpirer(facade StoreFacade, sweepInterval time.Duration, batchSize int, logger *slog.Logger) *OrderExpirer {
	if batchSize <= 0 {
		batchSize = 1
	}
	return &OrderExpirer{
		facade:        facade,
		sweepInterval: sweepInterval,
		batchSize:     batchSize,
		logger:        logger,
	}
}

// Start launches the background sweep loop.
func (e *OrderExpirer) Start(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	runCtx, cancel := context.WithCancel(ctx)
	e.cancel = cancel

	e.wg.Add(1)
	go e.run(runCtx)
}

// Stop waits for the sweep loop to finish.
func (e *OrderExpirer) Stop() {
	e.mu.Lock()
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.mu.Unlock()

	e.wg.Wait()
}

func (e *OrderExpirer) run(ctx context.Context) {
	defer e.wg.Done()
	ticker := time.NewTicker(e.sweepInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			e.sweep(ctx)
		}
	}
}

func (e *OrderExpirer) sweep(ctx context.Context) {
	for {
		ids, err := e.facade.ExpireStaleOrders(ctx, e.batchSize)
		if err != nil {
			e.logger.Error("expire stale orders failed", slog.String("error", err.Error()))
			return
		}
		if len(ids) > 0 {
			e.logger.Info("expired stale orders", slog.Int("count", len(ids)))
		}
		// a full batch means more may be waiting
		if len(ids) < e.batchSize {
			return
		}
		select {
		case <-ctx.Done():
			return
		default:
		}
	}
}
