package carrier

import (
	"fmt"
	"net/url"
	"regexp"
	"strings"

	"carrierid/internal/countries"
)

// Route is the origin/destination country pair a tracking number was
// shipped on. Both codes are normalized ISO 3166-1 alpha-2.
type Route struct {
	From string
	To   string
}

// ScoreFunc computes the ambiguity score for a tracking number that has
// already structurally matched a pattern. Constant scores are expressed as
// constant functions; the engine clamps every result to [0,100].
type ScoreFunc func(number string, route Route) int

// Fixed returns a ScoreFunc that always yields n.
func Fixed(n int) ScoreFunc {
	return func(string, Route) int { return n }
}

// Checked returns a ScoreFunc that yields valid when the check-digit
// validator passes and invalid otherwise. A failing check digit lowers
// confidence but never disqualifies a structural match.
func Checked(validate func(string) bool, valid, invalid int) ScoreFunc {
	return func(number string, _ Route) int {
		if validate(number) {
			return valid
		}
		return invalid
	}
}

// BoostTo wraps a ScoreFunc, adding boost when the destination country is
// in the given set. Typically used for domestic or same-region shipments.
func BoostTo(inner ScoreFunc, boost int, to countries.Set) ScoreFunc {
	return func(number string, route Route) int {
		score := inner(number, route)
		if to.Contains(route.To) {
			score += boost
		}
		return score
	}
}

// Pattern is one entry in a carrier's ordered matching table: a structural
// matcher over the normalized tracking number, an optional origin-country
// restriction, and a score function. Tables are authored most-specific-first
// because the first matching pattern wins.
type Pattern struct {
	Match *regexp.Regexp

	// From, when non-nil, restricts this pattern to shipments originating
	// in the given countries. Carriers whose number shapes depend on the
	// issuing national operator key their tables this way.
	From countries.Set

	Score ScoreFunc
}

// Pat builds a Pattern from a regexp source and a score function.
func Pat(expr string, score ScoreFunc) Pattern {
	return Pattern{Match: regexp.MustCompile(expr), Score: score}
}

// PatFrom builds a Pattern restricted to the given origin countries.
func PatFrom(expr string, from countries.Set, score ScoreFunc) Pattern {
	return Pattern{Match: regexp.MustCompile(expr), From: from, Score: score}
}

// Spec is the full configuration for one carrier. Providers are built from
// Specs at registry start-up and never mutated afterwards.
type Spec struct {
	Key  string
	Name string
	Icon string

	// From and To declare the carrier's service coverage.
	From countries.Set
	To   countries.Set

	// Domestic lists countries where same-country shipments are served even
	// though the country is absent from the international coverage sets
	// (e.g. territories handled through a carrier's domestic network).
	Domestic countries.Set

	// TrackingURL builds the carrier tracking page URL for a normalized
	// tracking number. Use QueryURL for the common single-template case.
	TrackingURL func(number string) string

	Patterns []Pattern
}

// QueryURL returns a URL builder that substitutes the query-escaped
// tracking number into a printf-style template.
func QueryURL(template string) func(string) string {
	return func(number string) string {
		return fmt.Sprintf(template, url.QueryEscape(number))
	}
}

// Provider is a single carrier's compiled recognition logic. Providers are
// stateless and safe for concurrent use.
type Provider struct {
	spec Spec
}

// NewProvider validates a Spec and wraps it in a Provider. Spec mistakes are
// programming errors, so missing required fields panic at start-up.
func NewProvider(spec Spec) *Provider {
	if spec.Key == "" {
		panic("carrier: spec has no key")
	}
	if spec.TrackingURL == nil {
		panic(fmt.Sprintf("carrier: spec %q has no tracking URL builder", spec.Key))
	}
	if len(spec.Patterns) == 0 {
		panic(fmt.Sprintf("carrier: spec %q has no patterns", spec.Key))
	}
	return &Provider{spec: spec}
}

// Key returns the carrier's stable unique identifier.
func (p *Provider) Key() string { return p.spec.Key }

// Name returns the carrier's display name.
func (p *Provider) Name() string { return p.spec.Name }

// Icon returns the carrier's static icon path, opaque to this package.
func (p *Provider) Icon() string { return p.spec.Icon }

// FromCountries returns the carrier's origin coverage set.
func (p *Provider) FromCountries() countries.Set { return p.spec.From }

// ToCountries returns the carrier's destination coverage set.
func (p *Provider) ToCountries() countries.Set { return p.spec.To }

// CanShipFrom reports whether the carrier serves shipments originating in
// the given country.
func (p *Provider) CanShipFrom(from string) bool {
	return p.spec.From.Contains(from)
}

// CanShipTo reports whether the carrier serves shipments destined for the
// given country.
func (p *Provider) CanShipTo(to string) bool {
	return p.spec.To.Contains(to)
}

// CanShipFromTo reports whether the carrier serves the given route.
// Same-country shipments are additionally allowed when the country appears
// in the carrier's Domestic set.
func (p *Provider) CanShipFromTo(from, to string) bool {
	from = countries.Normalize(from)
	to = countries.Normalize(to)
	if from == to && p.spec.Domestic.Contains(from) {
		return true
	}
	return p.spec.From.Contains(from) && p.spec.To.Contains(to)
}

// TrackingURL builds the carrier's tracking page URL for the given number.
// The number is normalized first.
func (p *Provider) TrackingURL(number string) string {
	return p.spec.TrackingURL(NormalizeNumber(number))
}

// TryParse applies the carrier's pattern table to a tracking number and
// returns a Match when the carrier plausibly issued it. The second return
// is false when the number is empty, the route is outside the carrier's
// coverage, or no pattern matches.
func (p *Provider) TryParse(number, from, to string) (*Match, bool) {
	number = NormalizeNumber(number)
	if number == "" {
		return nil, false
	}
	from = countries.Normalize(from)
	to = countries.Normalize(to)
	if !p.CanShipFromTo(from, to) {
		return nil, false
	}

	route := Route{From: from, To: to}
	for _, pat := range p.spec.Patterns {
		if pat.From != nil && !pat.From.Contains(from) {
			continue
		}
		if !pat.Match.MatchString(number) {
			continue
		}
		return &Match{
			ProviderKey:    p.spec.Key,
			ProviderName:   p.spec.Name,
			TrackingURL:    p.spec.TrackingURL(number),
			AmbiguityScore: clampScore(pat.Score(number, route)),
		}, true
	}
	return nil, false
}

// NormalizeNumber strips all whitespace from a tracking number and
// uppercases it. Providers only ever see normalized numbers.
func NormalizeNumber(number string) string {
	return strings.ToUpper(strings.Join(strings.Fields(number), ""))
}

// clampScore saturates a score into [0,100]. Boosts saturate rather than
// overflow.
func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
