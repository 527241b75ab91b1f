package carrier_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"carrierid/internal/common"
	"carrierid/internal/domain/carrier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- mock batch store ----

type mockBatchStore struct {
	created    *carrier.BatchJob
	createErr  error
	job        *carrier.BatchJob
	getErr     error
	statuses   []carrier.BatchStatus
	results    []carrier.BatchItem
	resultsErr error
	stale      []*carrier.BatchJob
}

func (m *mockBatchStore) Create(_ context.Context, job *carrier.BatchJob) error {
	m.created = job
	return m.createErr
}

func (m *mockBatchStore) GetByID(_ context.Context, _ string) (*carrier.BatchJob, error) {
	return m.job, m.getErr
}

func (m *mockBatchStore) UpdateStatus(_ context.Context, _ string, status carrier.BatchStatus, _ string) error {
	m.statuses = append(m.statuses, status)
	return nil
}

func (m *mockBatchStore) UpdateResults(_ context.Context, _ string, items []carrier.BatchItem) error {
	m.results = items
	return m.resultsErr
}

func (m *mockBatchStore) ListStale(_ context.Context, _ time.Time, _ int) ([]*carrier.BatchJob, error) {
	return m.stale, nil
}

// ---- mock enqueuer ----

type mockEnqueuer struct {
	enqueued []string
	err      error
}

func (m *mockEnqueuer) EnqueueIdentifyBatch(batchID string) error {
	if m.err != nil {
		return m.err
	}
	m.enqueued = append(m.enqueued, batchID)
	return nil
}

// ---- mock cache ----

type mockCache struct {
	hit    []carrier.Match
	found  bool
	getErr error
	stored []carrier.Match
	setErr error
}

func (m *mockCache) Get(_ context.Context, _, _, _ string) ([]carrier.Match, bool, error) {
	return m.hit, m.found, m.getErr
}

func (m *mockCache) Set(_ context.Context, _, _, _ string, matches []carrier.Match) error {
	m.stored = matches
	return m.setErr
}

// ---- mock quota ----

type mockQuota struct {
	allowed bool
	err     error
}

func (m *mockQuota) Allow(_ context.Context, _ string) (bool, error) {
	return m.allowed, m.err
}

func newTestService(store carrier.BatchStore, enq carrier.Enqueuer, cache carrier.MatchCache, quota carrier.ClientQuota) *carrier.Service {
	return carrier.NewService(carrier.NewDefaultRegistry(), store, enq, cache, quota, 10)
}

func TestServiceIdentify(t *testing.T) {
	svc := newTestService(&mockBatchStore{}, &mockEnqueuer{}, nil, nil)

	resp, err := svc.Identify(context.Background(), &carrier.IdentifyRequest{
		TrackingNumber: "1Z999AA10123456784",
		ShippingFrom:   "US",
		ShippingTo:     "US",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Best)
	assert.Equal(t, "ups", resp.Best.ProviderKey)
	assert.GreaterOrEqual(t, resp.Best.AmbiguityScore, 90)
}

func TestServiceIdentifyEmptyNumber(t *testing.T) {
	svc := newTestService(&mockBatchStore{}, &mockEnqueuer{}, nil, nil)

	resp, err := svc.Identify(context.Background(), &carrier.IdentifyRequest{
		TrackingNumber: "",
		ShippingFrom:   "US",
		ShippingTo:     "US",
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Best)
	assert.Empty(t, resp.Candidates)
}

func TestServiceIdentifyInvalidCountryCode(t *testing.T) {
	svc := newTestService(&mockBatchStore{}, &mockEnqueuer{}, nil, nil)

	_, err := svc.Identify(context.Background(), &carrier.IdentifyRequest{
		TrackingNumber: "1Z999AA10123456784",
		ShippingFrom:   "USA",
		ShippingTo:     "US",
	})
	var validation *common.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestServiceIdentifyCacheHit(t *testing.T) {
	cached := []carrier.Match{{ProviderKey: "cached-carrier", AmbiguityScore: 99}}
	cache := &mockCache{hit: cached, found: true}
	svc := newTestService(&mockBatchStore{}, &mockEnqueuer{}, cache, nil)

	resp, err := svc.Identify(context.Background(), &carrier.IdentifyRequest{
		TrackingNumber: "1Z999AA10123456784",
		ShippingFrom:   "US",
		ShippingTo:     "US",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Best)
	assert.Equal(t, "cached-carrier", resp.Best.ProviderKey)
	assert.Nil(t, cache.stored, "a hit must not be written back")
}

func TestServiceIdentifyCacheMissStoresResult(t *testing.T) {
	cache := &mockCache{}
	svc := newTestService(&mockBatchStore{}, &mockEnqueuer{}, cache, nil)

	resp, err := svc.Identify(context.Background(), &carrier.IdentifyRequest{
		TrackingNumber: "1Z999AA10123456784",
		ShippingFrom:   "US",
		ShippingTo:     "US",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Best)
	assert.Equal(t, resp.Candidates, cache.stored)
}

func TestServiceIdentifyCacheFailsOpen(t *testing.T) {
	cache := &mockCache{getErr: errors.New("redis down")}
	svc := newTestService(&mockBatchStore{}, &mockEnqueuer{}, cache, nil)

	resp, err := svc.Identify(context.Background(), &carrier.IdentifyRequest{
		TrackingNumber: "1Z999AA10123456784",
		ShippingFrom:   "US",
		ShippingTo:     "US",
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Best)
	assert.Equal(t, "ups", resp.Best.ProviderKey)
}

func TestServiceEnqueueBatch(t *testing.T) {
	store := &mockBatchStore{}
	enq := &mockEnqueuer{}
	svc := newTestService(store, enq, nil, nil)

	resp, err := svc.EnqueueBatch(context.Background(), "client-1", &carrier.BatchRequest{
		Items: []carrier.IdentifyRequest{
			{TrackingNumber: "1Z999AA10123456784", ShippingFrom: "us", ShippingTo: "us"},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, carrier.BatchQueued, resp.Status)
	assert.Equal(t, 1, resp.ItemCount)

	require.NotNil(t, store.created)
	assert.Equal(t, "US", store.created.Items[0].ShippingFrom, "items are normalized on intake")
	assert.Equal(t, []string{store.created.ID}, enq.enqueued)
}

func TestServiceEnqueueBatchValidation(t *testing.T) {
	svc := newTestService(&mockBatchStore{}, &mockEnqueuer{}, nil, nil)

	tests := []struct {
		name string
		req  *carrier.BatchRequest
	}{
		{"empty batch", &carrier.BatchRequest{}},
		{"oversized batch", &carrier.BatchRequest{Items: make([]carrier.IdentifyRequest, 11)}},
		{"bad country code", &carrier.BatchRequest{Items: []carrier.IdentifyRequest{
			{TrackingNumber: "123", ShippingFrom: "U", ShippingTo: "US"},
		}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.EnqueueBatch(context.Background(), "client-1", tt.req)
			var validation *common.ValidationError
			assert.ErrorAs(t, err, &validation)
		})
	}
}

func TestServiceEnqueueBatchQuotaExceeded(t *testing.T) {
	svc := newTestService(&mockBatchStore{}, &mockEnqueuer{}, nil, &mockQuota{allowed: false})

	_, err := svc.EnqueueBatch(context.Background(), "client-1", &carrier.BatchRequest{
		Items: []carrier.IdentifyRequest{
			{TrackingNumber: "123", ShippingFrom: "US", ShippingTo: "US"},
		},
	})
	var validation *common.ValidationError
	assert.ErrorAs(t, err, &validation)
}

func TestServiceEnqueueBatchQuotaFailsOpen(t *testing.T) {
	store := &mockBatchStore{}
	svc := newTestService(store, &mockEnqueuer{}, nil, &mockQuota{err: errors.New("redis down")})

	_, err := svc.EnqueueBatch(context.Background(), "client-1", &carrier.BatchRequest{
		Items: []carrier.IdentifyRequest{
			{TrackingNumber: "123", ShippingFrom: "US", ShippingTo: "US"},
		},
	})
	require.NoError(t, err)
	assert.NotNil(t, store.created)
}

func TestServiceEnqueueBatchEnqueueFailureMarksFailed(t *testing.T) {
	store := &mockBatchStore{}
	svc := newTestService(store, &mockEnqueuer{err: errors.New("queue down")}, nil, nil)

	_, err := svc.EnqueueBatch(context.Background(), "client-1", &carrier.BatchRequest{
		Items: []carrier.IdentifyRequest{
			{TrackingNumber: "123", ShippingFrom: "US", ShippingTo: "US"},
		},
	})
	require.Error(t, err)
	assert.Contains(t, store.statuses, carrier.BatchFailed)
}

func TestServiceGetBatchNotFound(t *testing.T) {
	svc := newTestService(&mockBatchStore{}, &mockEnqueuer{}, nil, nil)

	_, err := svc.GetBatch(context.Background(), "missing")
	var notFound *common.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}

func TestServiceCarriers(t *testing.T) {
	svc := newTestService(&mockBatchStore{}, &mockEnqueuer{}, nil, nil)

	infos := svc.Carriers()
	assert.GreaterOrEqual(t, len(infos), 20)

	info, err := svc.Carrier("ups")
	require.NoError(t, err)
	assert.Equal(t, "UPS", info.Name)
	assert.NotEmpty(t, info.FromCountries)

	_, err = svc.Carrier("carrier-pigeon")
	var notFound *common.NotFoundError
	assert.ErrorAs(t, err, &notFound)
}
