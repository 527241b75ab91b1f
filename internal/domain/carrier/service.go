package carrier

import (
	"context"
	"fmt"
	"log/slog"

	"carrierid/internal/common"
	"carrierid/internal/countries"

	"github.com/google/uuid"
)

// Enqueuer defines the contract for enqueuing batch identification tasks.
// This allows the service to be decoupled from the specific queue implementation.
type Enqueuer interface {
	EnqueueIdentifyBatch(batchID string) error
}

// Service orchestrates identification business logic around the registry:
// validate → check cache → match → rank, and for batches: validate → check
// quota → create job → enqueue.
type Service struct {
	registry     *Registry
	store        BatchStore
	enqueuer     Enqueuer
	cache        MatchCache
	quota        ClientQuota
	maxBatchSize int
}

// NewService creates a new identification service. cache and quota may be
// nil, in which case caching and client quotas are disabled.
func NewService(registry *Registry, store BatchStore, enqueuer Enqueuer, cache MatchCache, quota ClientQuota, maxBatchSize int) *Service {
	if maxBatchSize <= 0 {
		maxBatchSize = 500
	}
	return &Service{
		registry:     registry,
		store:        store,
		enqueuer:     enqueuer,
		cache:        cache,
		quota:        quota,
		maxBatchSize: maxBatchSize,
	}
}

// Identify runs one tracking number through every registered carrier and
// returns the ranked candidates. An unrecognized or empty number yields an
// empty candidate list, not an error.
func (s *Service) Identify(ctx context.Context, req *IdentifyRequest) (*IdentifyResponse, error) {
	if err := validateRoute(req.ShippingFrom, req.ShippingTo); err != nil {
		return nil, err
	}

	number := NormalizeNumber(req.TrackingNumber)
	from := countries.Normalize(req.ShippingFrom)
	to := countries.Normalize(req.ShippingTo)

	// Identification is deterministic, so a cache hit is always usable.
	if s.cache != nil && number != "" {
		cached, found, err := s.cache.Get(ctx, number, from, to)
		if err != nil {
			slog.Error("match cache read failed, falling through to engine", "error", err)
			// Fail open — the engine is cheap enough to run uncached.
		} else if found {
			return buildResponse(number, cached), nil
		}
	}

	ranked := Rank(s.registry.MatchAll(number, from, to))

	if s.cache != nil && number != "" {
		if err := s.cache.Set(ctx, number, from, to, ranked); err != nil {
			slog.Error("match cache write failed", "error", err)
		}
	}

	return buildResponse(number, ranked), nil
}

// EnqueueBatch validates a batch request, checks the client's quota, creates
// a job record, and enqueues the batch for async processing.
func (s *Service) EnqueueBatch(ctx context.Context, clientKey string, req *BatchRequest) (*BatchResponse, error) {
	if len(req.Items) == 0 {
		return nil, common.NewValidationError("batch must contain at least one item")
	}
	if len(req.Items) > s.maxBatchSize {
		return nil, common.NewValidationError(
			fmt.Sprintf("batch exceeds maximum size of %d items", s.maxBatchSize))
	}
	for i, item := range req.Items {
		if err := validateRoute(item.ShippingFrom, item.ShippingTo); err != nil {
			return nil, common.NewValidationError(fmt.Sprintf("item %d: %s", i, err.Error()))
		}
	}

	if s.quota != nil {
		allowed, err := s.quota.Allow(ctx, clientKey)
		if err != nil {
			slog.Error("quota check failed, proceeding without quota", "client", clientKey, "error", err)
			// Fail open — don't block the request when Redis is down.
		} else if !allowed {
			return nil, common.NewValidationError("batch quota exceeded for this client")
		}
	}

	items := make([]BatchItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = BatchItem{
			TrackingNumber: NormalizeNumber(item.TrackingNumber),
			ShippingFrom:   countries.Normalize(item.ShippingFrom),
			ShippingTo:     countries.Normalize(item.ShippingTo),
		}
	}

	job := &BatchJob{
		ID:     uuid.New().String(),
		Status: BatchQueued,
		Items:  items,
	}
	if err := s.store.Create(ctx, job); err != nil {
		return nil, fmt.Errorf("creating batch job: %w", err)
	}

	if err := s.enqueuer.EnqueueIdentifyBatch(job.ID); err != nil {
		_ = s.store.UpdateStatus(ctx, job.ID, BatchFailed, "failed to enqueue: "+err.Error())
		return nil, fmt.Errorf("enqueuing batch job: %w", err)
	}

	slog.Info("batch job enqueued", "id", job.ID, "items", len(items))

	return &BatchResponse{
		ID:        job.ID,
		Status:    BatchQueued,
		ItemCount: len(items),
	}, nil
}

// GetBatch retrieves a batch job by ID.
func (s *Service) GetBatch(ctx context.Context, id string) (*BatchJob, error) {
	job, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching batch job: %w", err)
	}
	if job == nil {
		return nil, common.NewNotFoundError("batch", id)
	}
	return job, nil
}

// Carriers returns registry introspection data for every provider, sorted
// by key.
func (s *Service) Carriers() []CarrierInfo {
	providers := s.registry.Providers()
	out := make([]CarrierInfo, 0, len(providers))
	for _, p := range providers {
		out = append(out, carrierInfo(p))
	}
	return out
}

// Carrier returns introspection data for a single provider.
func (s *Service) Carrier(key string) (*CarrierInfo, error) {
	p, ok := s.registry.Provider(key)
	if !ok {
		return nil, common.NewNotFoundError("carrier", key)
	}
	info := carrierInfo(p)
	return &info, nil
}

func carrierInfo(p *Provider) CarrierInfo {
	return CarrierInfo{
		Key:           p.Key(),
		Name:          p.Name(),
		Icon:          p.Icon(),
		FromCountries: sortedCodes(p.FromCountries()),
		ToCountries:   sortedCodes(p.ToCountries()),
	}
}

func buildResponse(number string, ranked []Match) *IdentifyResponse {
	resp := &IdentifyResponse{
		TrackingNumber: number,
		Candidates:     ranked,
	}
	if resp.Candidates == nil {
		resp.Candidates = []Match{}
	}
	if len(ranked) > 0 {
		best := ranked[0]
		resp.Best = &best
	}
	return resp
}

// validateRoute rejects country codes that are not two letters. Well-formed
// but unassigned codes are let through: they simply never match any
// carrier's coverage, which is a routine no-match, not an API misuse.
func validateRoute(from, to string) error {
	if !isAlpha2(countries.Normalize(from)) {
		return common.NewValidationError(fmt.Sprintf("shipping_from %q is not an ISO 3166-1 alpha-2 code", from))
	}
	if !isAlpha2(countries.Normalize(to)) {
		return common.NewValidationError(fmt.Sprintf("shipping_to %q is not an ISO 3166-1 alpha-2 code", to))
	}
	return nil
}

func isAlpha2(code string) bool {
	if len(code) != 2 {
		return false
	}
	for i := 0; i < 2; i++ {
		if code[i] < 'A' || code[i] > 'Z' {
			return false
		}
	}
	return true
}
