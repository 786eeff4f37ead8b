package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/probeworks/diligent/ent"
	"github.com/probeworks/diligent/ent/scanrequest"
	"github.com/probeworks/diligent/pkg/config"
	"github.com/probeworks/diligent/pkg/database"
)

// WorkerPool runs workers for every registered queue plus the background
// orphan and retention loops.
type WorkerPool struct {
	podID    string
	client   *ent.Client
	db       *database.Client
	cfg      *config.QueueConfig
	service  *Service
	handlers map[string]Handler
	workers  []*Worker
	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup

	// Scan cancel registry: scan_id -> cancel function for scans being
	// orchestrated on this pod.
	mu          sync.RWMutex
	activeScans map[string]context.CancelFunc
	started     bool

	orphans orphanState
}

func NewWorkerPool(podID string, db *database.Client, cfg *config.QueueConfig, service *Service) *WorkerPool {
	return &WorkerPool{
		podID:       podID,
		client:      db.Client,
		db:          db,
		cfg:         cfg,
		service:     service,
		handlers:    make(map[string]Handler),
		activeScans: make(map[string]context.CancelFunc),
		stopCh:      make(chan struct{}),
	}
}

// Register binds a handler to a queue. Must be called before Start.
func (p *WorkerPool) Register(queueName string, handler Handler) {
	p.handlers[queueName] = handler
}

// Service exposes the underlying queue service.
func (p *WorkerPool) Service() *Service { return p.service }

// Start recovers jobs stranded by a previous run of this pod, then spawns
// the per-queue workers and background loops. Safe to call once; repeat
// calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	if err := p.recoverOwnJobs(ctx); err != nil {
		return fmt.Errorf("recovering jobs from previous run: %w", err)
	}

	total := 0
	for queueName, handler := range p.handlers {
		count := p.cfg.WorkersFor(queueName)
		for i := 0; i < count; i++ {
			workerID := fmt.Sprintf("%s-%s-%d", p.podID, queueName, i)
			var capacity capacityChecker
			if queueName == config.QueueOrchestrate {
				capacity = p
			}
			w := NewWorker(workerID, p.podID, queueName, p.service, p.cfg, handler, capacity)
			p.workers = append(p.workers, w)
			w.Start(ctx)
			total++
		}
	}

	p.wg.Add(2)
	go func() {
		defer p.wg.Done()
		p.runOrphanDetection(ctx)
	}()
	go func() {
		defer p.wg.Done()
		p.runRetention(ctx)
	}()

	slog.Info("Worker pool started",
		"pod_id", p.podID, "queues", len(p.handlers), "workers", total)
	return nil
}

// Stop drains the pool: workers finish or release their current jobs, then
// the background loops exit.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	if active := p.activeScanIDs(); len(active) > 0 {
		slog.Info("Interrupting active scans", "count", len(active), "scan_ids", active)
	}

	for _, w := range p.workers {
		w.Stop()
	}
	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// HasCapacity enforces the global concurrent scan limit for the
// orchestrate queue.
func (p *WorkerPool) HasCapacity(ctx context.Context, queueName string) (bool, error) {
	if queueName != config.QueueOrchestrate {
		return true, nil
	}
	active, err := p.client.ScanRequest.Query().
		Where(scanrequest.StatusEQ(scanrequest.StatusInProgress)).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("counting active scans: %w", err)
	}
	return active < p.cfg.MaxConcurrentScans, nil
}

// RegisterScan stores a cancel function for API-triggered cancellation.
func (p *WorkerPool) RegisterScan(scanID string, cancel context.CancelFunc) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.activeScans[scanID] = cancel
}

// UnregisterScan removes the cancel function when orchestration ends.
func (p *WorkerPool) UnregisterScan(scanID string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.activeScans, scanID)
}

// CancelScan cancels a scan being orchestrated on this pod. Returns false
// when the scan is not running here.
func (p *WorkerPool) CancelScan(scanID string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if cancel, ok := p.activeScans[scanID]; ok {
		cancel()
		return true
	}
	return false
}

func (p *WorkerPool) activeScanIDs() []string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	ids := make([]string, 0, len(p.activeScans))
	for id := range p.activeScans {
		ids = append(ids, id)
	}
	return ids
}

// Health reports pool health including per-queue depths.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	health := &PoolHealth{
		PodID:         p.podID,
		TotalWorkers:  len(p.workers),
		MaxConcurrent: p.cfg.MaxConcurrentScans,
		QueueDepths:   make(map[string]int, len(p.handlers)),
	}

	if _, err := database.Health(ctx, p.db.DB()); err != nil {
		health.DBError = err.Error()
	} else {
		health.DBReachable = true
	}

	for queueName := range p.handlers {
		depth, err := p.service.Depth(ctx, queueName)
		if err != nil {
			slog.Error("Failed to query queue depth", "queue", queueName, "error", err)
			continue
		}
		health.QueueDepths[queueName] = depth
	}

	active, err := p.client.ScanRequest.Query().
		Where(
			scanrequest.StatusEQ(scanrequest.StatusInProgress),
			scanrequest.PodIDEQ(p.podID),
		).
		Count(ctx)
	if err != nil {
		slog.Error("Failed to query active scans", "error", err)
	}
	health.ActiveScans = active

	health.WorkerStats = make([]WorkerHealth, len(p.workers))
	for i, w := range p.workers {
		stats := w.Health()
		health.WorkerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			health.ActiveWorkers++
		}
	}

	p.orphans.mu.Lock()
	health.LastOrphanScan = p.orphans.lastOrphanScan
	health.OrphansRecovered = p.orphans.orphansRecovered
	p.orphans.mu.Unlock()

	health.IsHealthy = health.DBReachable
	return health
}

// runRetention periodically purges terminal jobs past the retention
// window.
func (p *WorkerPool) runRetention(ctx context.Context) {
	interval := p.cfg.JobRetention / 4
	if interval <= 0 {
		interval = time.Hour
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			n, err := p.service.PurgeCompleted(ctx)
			if err != nil {
				slog.Error("Job retention purge failed", "error", err)
				continue
			}
			if n > 0 {
				slog.Info("Purged terminal jobs", "count", n)
			}
		}
	}
}
