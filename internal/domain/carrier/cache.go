package carrier

import "context"

// MatchCache defines the contract for caching ranked identification results.
// Identification is deterministic for a fixed (number, from, to) triple, so
// results can be cached aggressively. Implementations live in infra/cache/.
type MatchCache interface {
	// Get returns the cached ranked matches for a query, or found=false on
	// a miss.
	Get(ctx context.Context, number, from, to string) (matches []Match, found bool, err error)

	// Set stores the ranked matches for a query.
	Set(ctx context.Context, number, from, to string, matches []Match) error
}

// ClientQuota defines the contract for per-client usage quotas on the
// batch endpoint. Implementations live in infra/ratelimit/.
type ClientQuota interface {
	// Allow checks whether the given API client may submit another batch.
	// Returns true if allowed, false if over quota.
	Allow(ctx context.Context, clientKey string) (bool, error)
}
