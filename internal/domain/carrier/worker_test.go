package carrier_test

import (
	"context"
	"errors"
	"testing"

	"carrierid/internal/domain/carrier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWorkerProcessBatch(t *testing.T) {
	store := &mockBatchStore{
		job: &carrier.BatchJob{
			ID:     "batch-1",
			Status: carrier.BatchQueued,
			Items: []carrier.BatchItem{
				{TrackingNumber: "1Z999AA10123456784", ShippingFrom: "US", ShippingTo: "US"},
				{TrackingNumber: "NOT-A-TRACKING-NUMBER", ShippingFrom: "US", ShippingTo: "US"},
			},
		},
	}
	worker := carrier.NewWorker(store, carrier.NewDefaultRegistry())

	err := worker.ProcessBatch(context.Background(), "batch-1")
	require.NoError(t, err)

	require.Len(t, store.results, 2)
	require.NotNil(t, store.results[0].Best)
	assert.Equal(t, "ups", store.results[0].Best.ProviderKey)
	assert.Nil(t, store.results[1].Best)
	assert.Empty(t, store.results[1].Candidates)

	assert.Contains(t, store.statuses, carrier.BatchProcessing)
}

func TestWorkerProcessBatchMissingJob(t *testing.T) {
	worker := carrier.NewWorker(&mockBatchStore{}, carrier.NewDefaultRegistry())

	err := worker.ProcessBatch(context.Background(), "missing")
	assert.Error(t, err)
}

func TestWorkerProcessBatchResultWriteFailure(t *testing.T) {
	store := &mockBatchStore{
		job: &carrier.BatchJob{
			ID:     "batch-2",
			Status: carrier.BatchQueued,
			Items: []carrier.BatchItem{
				{TrackingNumber: "1Z999AA10123456784", ShippingFrom: "US", ShippingTo: "US"},
			},
		},
		resultsErr: errors.New("supabase down"),
	}
	worker := carrier.NewWorker(store, carrier.NewDefaultRegistry())

	err := worker.ProcessBatch(context.Background(), "batch-2")
	require.Error(t, err)
	assert.Contains(t, store.statuses, carrier.BatchFailed)
}

func TestReaperReenqueuesStale(t *testing.T) {
	store := &mockBatchStore{
		stale: []*carrier.BatchJob{
			{ID: "stale-1", Status: carrier.BatchQueued},
			{ID: "stale-2", Status: carrier.BatchProcessing},
		},
	}
	enq := &mockEnqueuer{}
	reaper := carrier.NewReaper(store, enq, carrier.ReaperConfig{})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	// Run returns immediately on a cancelled context; the recovery cycle
	// itself is exercised via ReapOnce.
	reaper.Run(ctx)

	reaper.ReapOnce(context.Background())
	assert.Equal(t, []string{"stale-1", "stale-2"}, enq.enqueued)
}
