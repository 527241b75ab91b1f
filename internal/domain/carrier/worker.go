package carrier

import (
	"context"
	"fmt"
	"log/slog"
	"time"
)

// Worker processes batch identification tasks from the queue. It fetches
// the job from the store, runs every item through the registry and ranker,
// writes the results back, and drives the job status.
type Worker struct {
	store    BatchStore
	registry *Registry
}

// NewWorker creates a new batch identification worker.
func NewWorker(store BatchStore, registry *Registry) *Worker {
	return &Worker{store: store, registry: registry}
}

// ProcessBatch handles one batch identification task from the queue.
func (w *Worker) ProcessBatch(ctx context.Context, batchID string) error {
	start := time.Now()

	job, err := w.store.GetByID(ctx, batchID)
	if err != nil {
		return fmt.Errorf("fetching batch job %s: %w", batchID, err)
	}
	if job == nil {
		slog.Error("batch job not found", "batch_id", batchID)
		return fmt.Errorf("batch job not found: %s", batchID)
	}

	if err := w.store.UpdateStatus(ctx, batchID, BatchProcessing, ""); err != nil {
		slog.Error("failed to update status to processing", "batch_id", batchID, "error", err)
	}

	matched := 0
	for i := range job.Items {
		item := &job.Items[i]
		ranked := Rank(w.registry.MatchAll(item.TrackingNumber, item.ShippingFrom, item.ShippingTo))
		item.Candidates = ranked
		if len(ranked) > 0 {
			best := ranked[0]
			item.Best = &best
			matched++
		}
	}

	if err := w.store.UpdateResults(ctx, batchID, job.Items); err != nil {
		errMsg := fmt.Sprintf("writing results: %s", err.Error())
		_ = w.store.UpdateStatus(ctx, batchID, BatchFailed, errMsg)
		return fmt.Errorf("writing batch results %s: %w", batchID, err)
	}

	slog.Info("batch job processed",
		"batch_id", batchID,
		"items", len(job.Items),
		"matched", matched,
		"duration", time.Since(start),
	)

	return nil
}
