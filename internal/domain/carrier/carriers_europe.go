package carrier

import (
	"fmt"
	"net/url"
	"strings"

	"carrierid/internal/checksum"
	"carrierid/internal/countries"
)

// dhlTrackingURL routes a tracking number to the sub-brand site that can
// actually display it: 10/11-digit air waybills belong to Express, leitcode
// and 00-prefixed numbers to Paket, and JJD/JVGL/GM numbers to eCommerce.
func dhlTrackingURL(number string) string {
	escaped := url.QueryEscape(number)
	switch {
	case strings.HasPrefix(number, "JJD"),
		strings.HasPrefix(number, "JVGL"),
		strings.HasPrefix(number, "GM"):
		return fmt.Sprintf(
			"https://www.dhl.com/global-en/home/tracking/tracking-ecommerce.html?tracking-id=%s", escaped)
	case strings.HasPrefix(number, "00"):
		return fmt.Sprintf(
			"https://www.dhl.de/en/privatkunden/pakete-empfangen/verfolgen.html?piececode=%s", escaped)
	default:
		return fmt.Sprintf(
			"https://www.dhl.com/global-en/home/tracking/tracking-express.html?tracking-id=%s", escaped)
	}
}

func europeSpecs() []Spec {
	return []Spec{
		{
			Key:  "dhl",
			Name: "DHL",
			Icon: "icons/dhl.svg",
			From: countries.Europe.Union(countries.NewSet(
				"US", "CA", "MX", "AE", "AU", "CN", "HK", "IN", "JP", "SG")),
			// DHL accepts shipments to effectively anywhere; the origin
			// list is the fixed set above while the destination list is
			// the full country table.
			To:          countries.All(),
			TrackingURL: dhlTrackingURL,
			Patterns: []Pattern{
				Pat(`^\d{10}$`, Checked(checksum.Mod11, 88, 78)),
				Pat(`^\d{11}$`, Checked(checksum.Mod11, 86, 76)),
				Pat(`^JJD\d{16,20}$`, Fixed(85)),
				Pat(`^JVGL\d{16,20}$`, Fixed(85)),
				Pat(`^GM\d{16,18}$`, Fixed(84)),
				Pat(`^00\d{18}$`, Fixed(80)),
				Pat(`^\d{20}$`, Fixed(60)),
			},
		},
		{
			Key:  "royal-mail",
			Name: "Royal Mail",
			Icon: "icons/royal-mail.svg",
			From: countries.NewSet("GB"),
			To:   countries.All(),
			TrackingURL: QueryURL(
				"https://www.royalmail.com/track-your-item#/tracking-results/%s"),
			Patterns: []Pattern{
				Pat(`^[A-Z]{2}\d{9}GB$`,
					BoostTo(Checked(checksum.S10, 94, 84), 4, countries.NewSet("GB"))),
				Pat(`^[A-Z]{2}\d{9}[A-Z]{2}$`, Checked(checksum.S10, 75, 65)),
				Pat(`^\d{13,21}$`, Fixed(55)),
			},
		},
		{
			Key:  "parcelforce",
			Name: "Parcelforce Worldwide",
			Icon: "icons/parcelforce.svg",
			From: countries.NewSet("GB"),
			To:   countries.All(),
			TrackingURL: QueryURL(
				"https://www.parcelforce.com/track-trace?trackNumber=%s"),
			Patterns: []Pattern{
				Pat(`^[A-Z]{2}\d{9}GB$`, Checked(checksum.S10, 88, 78)),
				Pat(`^[A-Z]{2}\d{7}$`, Fixed(78)),
				Pat(`^\d{12}$`, Fixed(64)),
			},
		},
		{
			Key:  "dpd",
			Name: "DPD",
			Icon: "icons/dpd.svg",
			From: countries.Europe,
			To:   countries.All(),
			TrackingURL: QueryURL(
				"https://tracking.dpd.de/status/en_US/parcel/%s"),
			// UK-issued DPD numbers carry a 15 prefix; the plain 14-digit
			// shape is the continental format.
			Patterns: []Pattern{
				PatFrom(`^15\d{12,14}$`, countries.NewSet("GB"), Fixed(85)),
				Pat(`^\d{14}$`, Fixed(82)),
				Pat(`^\d{12}[A-Z]\d{2}$`, Fixed(70)),
			},
		},
		{
			Key:  "gls",
			Name: "GLS",
			Icon: "icons/gls.svg",
			From: countries.Europe,
			To:   countries.Europe.Union(countries.NorthAmerica),
			TrackingURL: QueryURL(
				"https://gls-group.eu/EU/en/parcel-tracking?match=%s"),
			Patterns: []Pattern{
				Pat(`^\d{11}$`, Fixed(80)),
				Pat(`^[A-Z0-9]{8}$`, Fixed(58)),
			},
		},
		{
			Key:         "evri",
			Name:        "Evri",
			Icon:        "icons/evri.svg",
			From:        countries.NewSet("GB"),
			To:          countries.EU.Union(countries.NewSet("GB")),
			TrackingURL: QueryURL("https://www.evri.com/track/parcel/%s"),
			Patterns: []Pattern{
				Pat(`^\d{16}$`,
					BoostTo(Checked(checksum.Luhn, 85, 75), 4, countries.NewSet("GB"))),
				Pat(`^[A-Z]\d{9}[A-Z0-9]{6}$`, Fixed(65)),
			},
		},
		{
			Key:         "yodel",
			Name:        "Yodel",
			Icon:        "icons/yodel.svg",
			From:        countries.NewSet("GB"),
			To:          countries.NewSet("GB", "IE"),
			TrackingURL: QueryURL("https://www.yodel.co.uk/tracking/%s"),
			Patterns: []Pattern{
				Pat(`^JD\d{16}$`, Fixed(88)),
				Pat(`^\d{18}$`, Fixed(62)),
			},
		},
		{
			Key:  "tnt",
			Name: "TNT",
			Icon: "icons/tnt.svg",
			From: expressCoverage,
			To:   expressCoverage,
			TrackingURL: QueryURL(
				"https://www.tnt.com/express/en_us/site/tracking.html?searchType=con&cons=%s"),
			Patterns: []Pattern{
				Pat(`^GD\d{7}$`, Fixed(82)),
				Pat(`^\d{9}$`, Fixed(68)),
				Pat(`^\d{15}$`, Fixed(58)),
			},
		},
		{
			Key:         "postnl",
			Name:        "PostNL",
			Icon:        "icons/postnl.svg",
			From:        countries.NewSet("NL"),
			To:          countries.All(),
			TrackingURL: QueryURL("https://jouw.postnl.nl/track-and-trace/%s"),
			Patterns: []Pattern{
				Pat(`^3S[A-Z0-9]{11,13}$`, Fixed(90)),
				Pat(`^[A-Z]{2}\d{9}NL$`,
					BoostTo(Checked(checksum.S10, 92, 82), 4, countries.NewSet("NL"))),
				Pat(`^\d{13}$`, Fixed(56)),
			},
		},
		{
			Key:  "deutsche-post",
			Name: "Deutsche Post",
			Icon: "icons/deutsche-post.svg",
			From: countries.NewSet("DE"),
			To:   countries.All(),
			TrackingURL: QueryURL(
				"https://www.deutschepost.de/de/s/sendungsverfolgung.html?piececode=%s"),
			Patterns: []Pattern{
				Pat(`^[A-Z]{2}\d{9}DE$`,
					BoostTo(Checked(checksum.S10, 92, 82), 4, countries.NewSet("DE"))),
				Pat(`^\d{12,13}$`, Fixed(60)),
			},
		},
		{
			Key:  "la-poste",
			Name: "La Poste / Colissimo",
			Icon: "icons/la-poste.svg",
			From: countries.NewSet("FR", "MC"),
			To:   countries.All(),
			TrackingURL: QueryURL(
				"https://www.laposte.fr/outils/suivre-vos-envois?code=%s"),
			Patterns: []Pattern{
				Pat(`^(6A|6C|7A|8L|9L|9V)\d{11}$`, Fixed(88)),
				Pat(`^[A-Z]{2}\d{9}FR$`,
					BoostTo(Checked(checksum.S10, 92, 82), 4, countries.NewSet("FR"))),
				Pat(`^\d{11,13}$`, Fixed(56)),
			},
		},
		{
			Key:  "correos",
			Name: "Correos",
			Icon: "icons/correos.svg",
			From: countries.NewSet("ES"),
			To:   countries.All(),
			TrackingURL: QueryURL(
				"https://www.correos.es/es/es/herramientas/localizador/envios/detalle?tracking-number=%s"),
			Patterns: []Pattern{
				Pat(`^[A-Z]{2}\d{9}ES$`,
					BoostTo(Checked(checksum.S10, 92, 82), 4, countries.NewSet("ES"))),
				Pat(`^PK[A-Z0-9]{16,21}$`, Fixed(78)),
				Pat(`^\d{23}$`, Fixed(68)),
			},
		},
		{
			Key:  "poste-italiane",
			Name: "Poste Italiane",
			Icon: "icons/poste-italiane.svg",
			From: countries.NewSet("IT", "SM", "VA"),
			To:   countries.All(),
			TrackingURL: QueryURL(
				"https://www.poste.it/cerca/index.html#/risultati-spedizioni/%s"),
			Patterns: []Pattern{
				Pat(`^[A-Z]{2}\d{9}IT$`,
					BoostTo(Checked(checksum.S10, 92, 82), 4, countries.NewSet("IT"))),
				Pat(`^\d{12,14}$`, Fixed(58)),
			},
		},
	}
}
