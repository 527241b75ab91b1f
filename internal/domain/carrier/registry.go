package carrier

import (
	"fmt"
	"sort"

	"carrierid/internal/countries"
)

// Registry holds the fixed set of carrier providers. It is built once at
// start-up and read-only afterwards, so it is safe for concurrent use.
type Registry struct {
	providers []*Provider
	byKey     map[string]*Provider
}

// NewRegistry builds a registry from the given providers. Duplicate keys are
// a programming error and panic.
func NewRegistry(providers ...*Provider) *Registry {
	r := &Registry{
		providers: providers,
		byKey:     make(map[string]*Provider, len(providers)),
	}
	for _, p := range providers {
		if _, dup := r.byKey[p.Key()]; dup {
			panic(fmt.Sprintf("carrier: duplicate provider key %q", p.Key()))
		}
		r.byKey[p.Key()] = p
	}
	return r
}

// NewDefaultRegistry builds a registry holding every built-in carrier.
func NewDefaultRegistry() *Registry {
	specs := builtinSpecs()
	providers := make([]*Provider, 0, len(specs))
	for _, spec := range specs {
		providers = append(providers, NewProvider(spec))
	}
	return NewRegistry(providers...)
}

// MatchAll queries every registered provider and returns all matches for
// the given tracking number and route. Zero matches is a routine outcome;
// several carriers legitimately matching the same ambiguous number is too.
// The result is unranked — callers pass it through Rank.
func (r *Registry) MatchAll(number, from, to string) []Match {
	var matches []Match
	for _, p := range r.providers {
		if m, ok := p.TryParse(number, from, to); ok {
			matches = append(matches, *m)
		}
	}
	return matches
}

// Provider looks up a provider by key.
func (r *Registry) Provider(key string) (*Provider, bool) {
	p, ok := r.byKey[key]
	return p, ok
}

// Providers returns all registered providers sorted by key.
func (r *Registry) Providers() []*Provider {
	out := make([]*Provider, len(r.providers))
	copy(out, r.providers)
	sort.Slice(out, func(i, j int) bool { return out[i].Key() < out[j].Key() })
	return out
}

// Len returns the number of registered providers.
func (r *Registry) Len() int {
	return len(r.providers)
}

// sortedCodes flattens a coverage set into a sorted slice for API output.
func sortedCodes(s countries.Set) []string {
	codes := s.Codes()
	sort.Strings(codes)
	return codes
}
