package carrier_test

import (
	"testing"

	"carrierid/internal/countries"
	"carrierid/internal/domain/carrier"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryFanOut(t *testing.T) {
	registry := carrier.NewDefaultRegistry()

	// A 22-digit numeric string is ambiguous: USPS claims it as an IMpb
	// and FedEx as a SmartPost number.
	matches := registry.MatchAll("9205500000000000000003", "US", "US")
	require.Greater(t, len(matches), 1)

	seen := make(map[string]bool)
	for _, m := range matches {
		assert.False(t, seen[m.ProviderKey], "provider %s matched twice", m.ProviderKey)
		seen[m.ProviderKey] = true
	}
	assert.True(t, seen["usps"])
	assert.True(t, seen["fedex"])
}

func TestRegistryMatchAllEmptyNumber(t *testing.T) {
	registry := carrier.NewDefaultRegistry()
	assert.Empty(t, registry.MatchAll("", "US", "US"))
}

func TestRegistryMatchAllGarbage(t *testing.T) {
	registry := carrier.NewDefaultRegistry()
	assert.Empty(t, registry.MatchAll("!!!not-a-tracking-number!!!", "US", "US"))
}

func TestRegistryProviderLookup(t *testing.T) {
	registry := carrier.NewDefaultRegistry()

	p, ok := registry.Provider("royal-mail")
	require.True(t, ok)
	assert.Equal(t, "Royal Mail", p.Name())

	_, ok = registry.Provider("carrier-pigeon")
	assert.False(t, ok)
}

func TestRegistryProvidersSortedByKey(t *testing.T) {
	providers := carrier.NewDefaultRegistry().Providers()
	require.NotEmpty(t, providers)
	for i := 1; i < len(providers); i++ {
		assert.Less(t, providers[i-1].Key(), providers[i].Key())
	}
}

func TestRegistryUniqueKeys(t *testing.T) {
	registry := carrier.NewDefaultRegistry()
	assert.GreaterOrEqual(t, registry.Len(), 20)
}

func TestRegistryDuplicateKeyPanics(t *testing.T) {
	spec := carrier.Spec{
		Key:         "dup",
		Name:        "Dup",
		From:        countries.NewSet("US"),
		To:          countries.NewSet("US"),
		TrackingURL: carrier.QueryURL("https://example.com/%s"),
		Patterns:    []carrier.Pattern{carrier.Pat(`^\d+$`, carrier.Fixed(50))},
	}
	assert.Panics(t, func() {
		carrier.NewRegistry(carrier.NewProvider(spec), carrier.NewProvider(spec))
	})
}
