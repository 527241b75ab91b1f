package countries_test

import (
	"testing"

	"carrierid/internal/countries"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "US", countries.Normalize("us"))
	assert.Equal(t, "GB", countries.Normalize(" gb "))
	assert.Equal(t, "DE", countries.Normalize("DE"))
	assert.Equal(t, "", countries.Normalize("  "))
}

func TestSetContains(t *testing.T) {
	s := countries.NewSet("US", "ca", "Mx")
	assert.True(t, s.Contains("US"))
	assert.True(t, s.Contains("ca"))
	assert.True(t, s.Contains("MX"))
	assert.False(t, s.Contains("GB"))
	assert.False(t, s.Contains(""))
}

func TestSetUnion(t *testing.T) {
	a := countries.NewSet("US")
	b := countries.NewSet("CA", "MX")
	u := a.Union(b)
	assert.True(t, u.Contains("US"))
	assert.True(t, u.Contains("CA"))
	// Union must not mutate its receiver.
	assert.False(t, a.Contains("CA"))
}

func TestAll(t *testing.T) {
	all := countries.All()
	for _, code := range []string{"US", "GB", "DE", "JP", "AU", "BR", "ZA"} {
		assert.True(t, all.Contains(code), code)
	}
	assert.False(t, all.Contains("XX"))
	assert.False(t, all.Contains("USA"))
}

func TestRegions(t *testing.T) {
	assert.True(t, countries.EU.Contains("DE"))
	assert.False(t, countries.EU.Contains("GB"))
	assert.True(t, countries.Europe.Contains("GB"))
	assert.True(t, countries.Europe.Contains("CH"))
	assert.True(t, countries.NorthAmerica.Contains("MX"))
	assert.True(t, countries.Oceania.Contains("NZ"))
}
