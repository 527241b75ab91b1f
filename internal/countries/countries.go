// Package countries provides ISO 3166-1 alpha-2 reference data shared by
// all carrier definitions, so that coverage lists are declared once instead
// of being re-derived per carrier.
package countries

import "strings"

// Set is an unordered collection of ISO 3166-1 alpha-2 country codes.
type Set map[string]struct{}

// NewSet builds a Set from the given codes. Codes are normalized on the way in.
func NewSet(codes ...string) Set {
	s := make(Set, len(codes))
	for _, c := range codes {
		s[Normalize(c)] = struct{}{}
	}
	return s
}

// Contains reports whether the set holds the given code.
// The code is normalized before the lookup.
func (s Set) Contains(code string) bool {
	_, ok := s[Normalize(code)]
	return ok
}

// Union returns a new Set holding every code from s and others.
func (s Set) Union(others ...Set) Set {
	out := make(Set, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	for _, o := range others {
		for c := range o {
			out[c] = struct{}{}
		}
	}
	return out
}

// Codes returns the members of the set. Order is unspecified.
func (s Set) Codes() []string {
	out := make([]string, 0, len(s))
	for c := range s {
		out = append(out, c)
	}
	return out
}

// Normalize uppercases and trims a country code. It does not validate it;
// unknown codes simply never match any carrier's coverage sets.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// IsValid reports whether the code is a known ISO 3166-1 alpha-2 code.
func IsValid(code string) bool {
	return All().Contains(code)
}

// allCodes is the full ISO 3166-1 alpha-2 assignment list.
var allCodes = []string{
	"AD", "AE", "AF", "AG", "AI", "AL", "AM", "AO", "AQ", "AR", "AS", "AT",
	"AU", "AW", "AX", "AZ", "BA", "BB", "BD", "BE", "BF", "BG", "BH", "BI",
	"BJ", "BL", "BM", "BN", "BO", "BQ", "BR", "BS", "BT", "BV", "BW", "BY",
	"BZ", "CA", "CC", "CD", "CF", "CG", "CH", "CI", "CK", "CL", "CM", "CN",
	"CO", "CR", "CU", "CV", "CW", "CX", "CY", "CZ", "DE", "DJ", "DK", "DM",
	"DO", "DZ", "EC", "EE", "EG", "EH", "ER", "ES", "ET", "FI", "FJ", "FK",
	"FM", "FO", "FR", "GA", "GB", "GD", "GE", "GF", "GG", "GH", "GI", "GL",
	"GM", "GN", "GP", "GQ", "GR", "GS", "GT", "GU", "GW", "GY", "HK", "HM",
	"HN", "HR", "HT", "HU", "ID", "IE", "IL", "IM", "IN", "IO", "IQ", "IR",
	"IS", "IT", "JE", "JM", "JO", "JP", "KE", "KG", "KH", "KI", "KM", "KN",
	"KP", "KR", "KW", "KY", "KZ", "LA", "LB", "LC", "LI", "LK", "LR", "LS",
	"LT", "LU", "LV", "LY", "MA", "MC", "MD", "ME", "MF", "MG", "MH", "MK",
	"ML", "MM", "MN", "MO", "MP", "MQ", "MR", "MS", "MT", "MU", "MV", "MW",
	"MX", "MY", "MZ", "NA", "NC", "NE", "NF", "NG", "NI", "NL", "NO", "NP",
	"NR", "NU", "NZ", "OM", "PA", "PE", "PF", "PG", "PH", "PK", "PL", "PM",
	"PN", "PR", "PS", "PT", "PW", "PY", "QA", "RE", "RO", "RS", "RU", "RW",
	"SA", "SB", "SC", "SD", "SE", "SG", "SH", "SI", "SJ", "SK", "SL", "SM",
	"SN", "SO", "SR", "SS", "ST", "SV", "SX", "SY", "SZ", "TC", "TD", "TF",
	"TG", "TH", "TJ", "TK", "TL", "TM", "TN", "TO", "TR", "TT", "TV", "TW",
	"TZ", "UA", "UG", "UM", "US", "UY", "UZ", "VA", "VC", "VE", "VG", "VI",
	"VN", "VU", "WF", "WS", "YE", "YT", "ZA", "ZM", "ZW",
}

var all Set

func init() {
	all = NewSet(allCodes...)
}

// All returns the set of every known country code. The returned set is shared
// and must not be mutated.
func All() Set {
	return all
}

// EU is the set of European Union member states.
var EU = NewSet(
	"AT", "BE", "BG", "HR", "CY", "CZ", "DK", "EE", "FI", "FR", "DE", "GR",
	"HU", "IE", "IT", "LV", "LT", "LU", "MT", "NL", "PL", "PT", "RO", "SK",
	"SI", "ES", "SE",
)

// Europe covers the EU plus the non-EU European postal markets carriers
// commonly group with it.
var Europe = EU.Union(NewSet(
	"AL", "AD", "BA", "BY", "CH", "FO", "GB", "GG", "GI", "IM", "IS", "JE",
	"LI", "MC", "MD", "ME", "MK", "NO", "RS", "SM", "UA", "VA",
))

// NorthAmerica is the continental North American trade area.
var NorthAmerica = NewSet("US", "CA", "MX")

// Oceania groups the Australia Post / NZ Post home region.
var Oceania = NewSet("AU", "NZ", "CK", "FJ", "NF", "NU", "PG", "SB", "TO", "VU", "WS")
