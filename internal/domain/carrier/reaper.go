package carrier

import (
	"context"
	"log/slog"
	"time"
)

// ReaperConfig holds configuration for the stale batch reaper.
type ReaperConfig struct {
	// Interval is how often the reaper scans for stale batch jobs.
	Interval time.Duration

	// StaleThreshold is how long a job can stay in queued/processing
	// before the reaper considers it stale and re-enqueues it.
	StaleThreshold time.Duration

	// BatchSize is the maximum number of stale jobs to recover per cycle.
	BatchSize int
}

// Reaper periodically scans the batch store for jobs stuck in queued or
// processing and re-enqueues them. The store is the source of truth and the
// reaper reconciles it with the queue, so a wiped Redis or a crashed worker
// never permanently loses a batch.
type Reaper struct {
	store    BatchStore
	enqueuer Enqueuer
	config   ReaperConfig
}

// NewReaper creates a new stale batch reaper.
func NewReaper(store BatchStore, enqueuer Enqueuer, cfg ReaperConfig) *Reaper {
	if cfg.Interval <= 0 {
		cfg.Interval = 5 * time.Minute
	}
	if cfg.StaleThreshold <= 0 {
		cfg.StaleThreshold = 10 * time.Minute
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 50
	}
	return &Reaper{store: store, enqueuer: enqueuer, config: cfg}
}

// Run starts the reaper loop. It blocks until the context is cancelled.
func (r *Reaper) Run(ctx context.Context) {
	ticker := time.NewTicker(r.config.Interval)
	defer ticker.Stop()

	slog.Info("batch reaper started",
		"interval", r.config.Interval,
		"stale_threshold", r.config.StaleThreshold,
	)

	for {
		select {
		case <-ctx.Done():
			slog.Info("batch reaper stopped")
			return
		case <-ticker.C:
			r.ReapOnce(ctx)
		}
	}
}

// ReapOnce runs a single recovery cycle.
func (r *Reaper) ReapOnce(ctx context.Context) {
	cutoff := time.Now().Add(-r.config.StaleThreshold)

	stale, err := r.store.ListStale(ctx, cutoff, r.config.BatchSize)
	if err != nil {
		slog.Error("reaper failed to list stale batches", "error", err)
		return
	}
	if len(stale) == 0 {
		return
	}

	slog.Info("reaper found stale batches", "count", len(stale))

	for _, job := range stale {
		if err := r.enqueuer.EnqueueIdentifyBatch(job.ID); err != nil {
			slog.Error("reaper failed to re-enqueue batch", "batch_id", job.ID, "error", err)
			continue
		}
		slog.Info("reaper re-enqueued stale batch",
			"batch_id", job.ID,
			"status", job.Status,
			"age", time.Since(job.UpdatedAt),
		)
	}
}
