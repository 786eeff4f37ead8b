package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/probeworks/diligent/ent/collectorjob"
	"github.com/probeworks/diligent/ent/scanrequest"
)

// orphanState tracks orphan detection metrics (thread-safe).
type orphanState struct {
	mu               sync.Mutex
	lastOrphanScan   time.Time
	orphansRecovered int
}

// runOrphanDetection periodically recovers jobs whose visibility deadline
// expired and scans whose orchestrator stopped heartbeating. All pods run
// this independently; the operations are idempotent.
func (p *WorkerPool) runOrphanDetection(ctx context.Context) {
	ticker := time.NewTicker(p.cfg.OrphanScanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			recovered := 0
			n, err := p.recoverExpiredJobs(ctx)
			if err != nil {
				slog.Error("Orphan job recovery failed", "error", err)
			}
			recovered += n

			n, err = p.recoverStalledScans(ctx)
			if err != nil {
				slog.Error("Orphan scan recovery failed", "error", err)
			}
			recovered += n

			p.orphans.mu.Lock()
			p.orphans.lastOrphanScan = time.Now()
			p.orphans.orphansRecovered += recovered
			p.orphans.mu.Unlock()
		}
	}
}

// recoverExpiredJobs returns running jobs with an expired visibility
// deadline to the queue via the normal nack path, so repeated crashes
// eventually dead-letter them.
func (p *WorkerPool) recoverExpiredJobs(ctx context.Context) (int, error) {
	expired, err := p.client.CollectorJob.Query().
		Where(
			collectorjob.StatusEQ(collectorjob.StatusRunning),
			collectorjob.VisibilityDeadlineLT(time.Now()),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("querying expired jobs: %w", err)
	}
	if len(expired) == 0 {
		return 0, nil
	}

	slog.Warn("Recovering jobs with expired visibility", "count", len(expired))
	recovered := 0
	for _, job := range expired {
		holder := "unknown"
		if job.ClaimedBy != nil {
			holder = *job.ClaimedBy
		}
		cause := fmt.Errorf("visibility deadline expired (claimed by %s)", holder)
		if err := p.service.Nack(ctx, job, cause); err != nil {
			slog.Error("Failed to recover expired job", "job_id", job.ID, "error", err)
			continue
		}
		recovered++
	}
	return recovered, nil
}

// recoverStalledScans marks in-progress scans without a recent heartbeat
// as failed. The visibility machinery covers their jobs; the scan row
// itself must not stay in_progress forever.
func (p *WorkerPool) recoverStalledScans(ctx context.Context) (int, error) {
	threshold := time.Now().Add(-3 * p.cfg.VisibilityTimeout)

	stalled, err := p.client.ScanRequest.Query().
		Where(
			scanrequest.StatusEQ(scanrequest.StatusInProgress),
			scanrequest.LastHeartbeatAtNotNil(),
			scanrequest.LastHeartbeatAtLT(threshold),
		).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("querying stalled scans: %w", err)
	}

	recovered := 0
	for _, scan := range stalled {
		podID := "unknown"
		if scan.PodID != nil {
			podID = *scan.PodID
		}
		lastBeat := "unknown"
		if scan.LastHeartbeatAt != nil {
			lastBeat = scan.LastHeartbeatAt.Format(time.RFC3339)
		}
		err := scan.Update().
			SetStatus(scanrequest.StatusFailed).
			SetStatusMessage(fmt.Sprintf("orphaned: no heartbeat from pod %s since %s",
				podID, lastBeat)).
			SetCompletedAt(time.Now()).
			Exec(ctx)
		if err != nil {
			slog.Error("Failed to fail stalled scan", "scan_id", scan.ID, "error", err)
			continue
		}
		slog.Warn("Stalled scan marked failed", "scan_id", scan.ID, "old_pod_id", podID)
		recovered++
	}
	return recovered, nil
}

// recoverOwnJobs releases jobs still claimed by a worker of this pod from
// a previous process. Runs once at startup, before workers spawn.
func (p *WorkerPool) recoverOwnJobs(ctx context.Context) error {
	stranded, err := p.client.CollectorJob.Query().
		Where(
			collectorjob.StatusEQ(collectorjob.StatusRunning),
			collectorjob.ClaimedByHasPrefix(p.podID+"-"),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("querying stranded jobs: %w", err)
	}
	for _, job := range stranded {
		if job.ClaimedBy == nil || !strings.HasPrefix(*job.ClaimedBy, p.podID+"-") {
			continue
		}
		if err := p.service.Release(ctx, job); err != nil {
			slog.Error("Failed to release stranded job", "job_id", job.ID, "error", err)
			continue
		}
		slog.Info("Released job stranded by previous run", "job_id", job.ID)
	}
	return nil
}
