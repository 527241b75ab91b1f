package carrier

import (
	"carrierid/internal/checksum"
	"carrierid/internal/countries"
)

// expressCoverage is the service area the global express carriers (UPS,
// FedEx, DHL, TNT) share: the major markets where they run their own
// networks. Individual carriers extend or restrict it as needed.
var expressCoverage = countries.NorthAmerica.Union(countries.Europe, countries.NewSet(
	"AE", "AR", "AU", "BR", "CL", "CN", "CO", "HK", "ID", "IL", "IN", "JP",
	"KR", "MY", "NZ", "PE", "PH", "SA", "SG", "TH", "TR", "TW", "VN", "ZA",
))

// builtinSpecs returns the full carrier table. Pattern lists are ordered
// most-specific-first: the first structural match wins within a carrier, and
// cross-carrier disambiguation is left to the ranker.
func builtinSpecs() []Spec {
	var specs []Spec
	specs = append(specs, americasSpecs()...)
	specs = append(specs, europeSpecs()...)
	specs = append(specs, apacSpecs()...)
	return specs
}

func americasSpecs() []Spec {
	return []Spec{
		{
			Key:  "ups",
			Name: "UPS",
			Icon: "icons/ups.svg",
			From: expressCoverage,
			To:   expressCoverage,
			// US territories are served through the domestic network but
			// issue international-format tracking numbers.
			Domestic:    countries.NewSet("PR", "GU", "VI"),
			TrackingURL: QueryURL("https://www.ups.com/track?loc=en_US&tracknum=%s"),
			Patterns: []Pattern{
				Pat(`^1Z[A-Z0-9]{16}$`, Checked(checksum.UPS, 98, 88)),
				Pat(`^T\d{10}$`, Fixed(80)),
				Pat(`^\d{26}$`, Fixed(65)),
				Pat(`^\d{9}$`, Fixed(62)),
			},
		},
		{
			Key:         "usps",
			Name:        "USPS",
			Icon:        "icons/usps.svg",
			From:        countries.NewSet("US"),
			To:          countries.All(),
			TrackingURL: QueryURL("https://tools.usps.com/go/TrackConfirmAction?tLabels=%s"),
			Patterns: []Pattern{
				Pat(`^(92|93|94|95)\d{20}$`,
					BoostTo(Checked(checksum.Luhn, 93, 83), 3, countries.NewSet("US"))),
				Pat(`^[A-Z]{2}\d{9}US$`, Checked(checksum.S10, 92, 82)),
				Pat(`^420\d{5}(91|92|93|94)\d{20,22}$`, Fixed(85)),
				Pat(`^\d{20,22}$`, Checked(checksum.Luhn, 78, 68)),
				Pat(`^\d{26,34}$`, Fixed(60)),
			},
		},
		{
			Key:         "fedex",
			Name:        "FedEx",
			Icon:        "icons/fedex.svg",
			From:        expressCoverage,
			To:          expressCoverage,
			TrackingURL: QueryURL("https://www.fedex.com/fedextrack/?trknbr=%s"),
			Patterns: []Pattern{
				Pat(`^\d{12}$`, Checked(checksum.FedEx, 90, 80)),
				Pat(`^\d{15}$`, Checked(checksum.FedEx, 88, 78)),
				Pat(`^\d{14}$`, Fixed(75)),
				Pat(`^\d{20,22}$`, Fixed(62)),
			},
		},
		{
			Key:  "canada-post",
			Name: "Canada Post",
			Icon: "icons/canada-post.svg",
			From: countries.NewSet("CA"),
			To:   countries.All(),
			TrackingURL: QueryURL(
				"https://www.canadapost-postescanada.ca/track-reperage/en#/search?searchFor=%s"),
			Patterns: []Pattern{
				Pat(`^[A-Z]{2}\d{9}CA$`, Checked(checksum.S10, 93, 83)),
				Pat(`^\d{16}$`,
					BoostTo(Checked(checksum.Luhn, 88, 78), 5, countries.NewSet("CA"))),
				Pat(`^\d{13}$`, Fixed(72)),
				Pat(`^\d{11,12}$`, Fixed(58)),
			},
		},
		{
			Key:  "purolator",
			Name: "Purolator",
			Icon: "icons/purolator.svg",
			From: countries.NewSet("CA"),
			To:   countries.NorthAmerica,
			TrackingURL: QueryURL(
				"https://www.purolator.com/en/shipping/tracker?pin=%s"),
			Patterns: []Pattern{
				Pat(`^[A-Z]{3}\d{9}$`, Fixed(85)),
				Pat(`^\d{12}$`, Fixed(70)),
				Pat(`^\d{10}$`, Fixed(64)),
			},
		},
		{
			Key:  "amazon-logistics",
			Name: "Amazon Logistics",
			Icon: "icons/amazon.svg",
			From: countries.NewSet("US", "CA", "MX", "GB", "DE", "FR", "IT", "ES", "JP"),
			To:   countries.NewSet("US", "CA", "MX", "GB", "DE", "FR", "IT", "ES", "JP"),
			TrackingURL: QueryURL("https://track.amazon.com/tracking/%s"),
			// TBA/TBC/TBM encode the regional Amazon network that issued
			// the number, so the origin-restricted variants outrank the
			// generic TBx catch-all.
			Patterns: []Pattern{
				PatFrom(`^TBA\d{12}$`, countries.NewSet("US"), Fixed(95)),
				PatFrom(`^TBC\d{12}$`, countries.NewSet("CA"), Fixed(95)),
				PatFrom(`^TBM\d{12}$`, countries.NewSet("MX"), Fixed(95)),
				Pat(`^TB[A-Z]\d{12}$`, Fixed(85)),
			},
		},
		{
			Key:         "ontrac",
			Name:        "OnTrac",
			Icon:        "icons/ontrac.svg",
			From:        countries.NewSet("US"),
			To:          countries.NewSet("US"),
			TrackingURL: QueryURL("https://www.ontrac.com/tracking/?number=%s"),
			Patterns: []Pattern{
				Pat(`^[CD]\d{14}$`, Fixed(90)),
				Pat(`^D\d{9}$`, Fixed(70)),
			},
		},
	}
}
