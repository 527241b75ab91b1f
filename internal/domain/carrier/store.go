package carrier

import (
	"context"
	"time"
)

// BatchStore defines the contract for persisting batch identification jobs.
// Implementations live in infra/store/. The identification engine itself
// persists nothing; only batch jobs are stored.
type BatchStore interface {
	// Create inserts a new batch job record.
	Create(ctx context.Context, job *BatchJob) error

	// GetByID retrieves a batch job by its ID. Returns nil, nil when no
	// record is found.
	GetByID(ctx context.Context, id string) (*BatchJob, error)

	// UpdateStatus updates the status of a batch job.
	UpdateStatus(ctx context.Context, id string, status BatchStatus, errMsg string) error

	// UpdateResults writes the processed items back and marks the job
	// completed.
	UpdateResults(ctx context.Context, id string, items []BatchItem) error

	// ListStale retrieves batch jobs stuck in queued/processing for longer
	// than the given threshold. Used by the reaper for reconciliation.
	ListStale(ctx context.Context, olderThan time.Time, limit int) ([]*BatchJob, error)
}
