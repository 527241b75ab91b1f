package carrier

import (
	"carrierid/internal/checksum"
	"carrierid/internal/countries"
)

func apacSpecs() []Spec {
	return []Spec{
		{
			Key:  "australia-post",
			Name: "Australia Post",
			Icon: "icons/australia-post.svg",
			From: countries.NewSet("AU"),
			To:   countries.All(),
			TrackingURL: QueryURL(
				"https://auspost.com.au/mypost/track/#/details/%s"),
			// EP and ST prefixes select the Express Post and StarTrack
			// sub-services ahead of the generic shapes.
			Patterns: []Pattern{
				Pat(`^EP\d{9}$`, Fixed(88)),
				Pat(`^ST[A-Z0-9]{10,12}$`, Fixed(86)),
				Pat(`^[A-Z]{2}\d{9}AU$`,
					BoostTo(Checked(checksum.S10, 92, 82), 4, countries.Oceania)),
				Pat(`^33\d{18}$`, Fixed(75)),
				Pat(`^\d{20,22}$`, Fixed(62)),
			},
		},
		{
			Key:  "new-zealand-post",
			Name: "New Zealand Post",
			Icon: "icons/nz-post.svg",
			From: countries.NewSet("NZ"),
			To:   countries.All(),
			TrackingURL: QueryURL(
				"https://www.nzpost.co.nz/tools/tracking/item/%s"),
			Patterns: []Pattern{
				Pat(`^[A-Z]{2}\d{9}NZ$`,
					BoostTo(Checked(checksum.S10, 92, 82), 4, countries.Oceania)),
				Pat(`^[A-Z]{4}\d{10}$`, Fixed(75)),
				Pat(`^\d{13}$`, Fixed(56)),
			},
		},
		{
			Key:  "japan-post",
			Name: "Japan Post",
			Icon: "icons/japan-post.svg",
			From: countries.NewSet("JP"),
			To:   countries.All(),
			TrackingURL: QueryURL(
				"https://trackings.post.japanpost.jp/services/srv/search/direct?searchKind=S002&locale=en&reqCodeNo1=%s"),
			Patterns: []Pattern{
				Pat(`^[A-Z]{2}\d{9}JP$`,
					BoostTo(Checked(checksum.S10, 92, 82), 4, countries.NewSet("JP"))),
				Pat(`^\d{11,13}$`, Fixed(60)),
			},
		},
		{
			Key:  "china-post",
			Name: "China Post",
			Icon: "icons/china-post.svg",
			From: countries.NewSet("CN"),
			To:   countries.All(),
			TrackingURL: QueryURL(
				"https://www.ems.com.cn/english/qps/yjcx?mailNum=%s"),
			Patterns: []Pattern{
				Pat(`^[A-Z]{2}\d{9}CN$`,
					BoostTo(Checked(checksum.S10, 92, 82), 4, countries.NewSet("CN", "HK", "MO"))),
				Pat(`^\d{13}$`, Fixed(56)),
			},
		},
		{
			Key:  "sf-express",
			Name: "SF Express",
			Icon: "icons/sf-express.svg",
			From: countries.NewSet("CN", "HK", "MO", "TW", "SG"),
			To:   countries.All(),
			TrackingURL: QueryURL(
				"https://www.sf-express.com/we/ow/chn/sc/waybill/waybill-detail/%s"),
			Patterns: []Pattern{
				Pat(`^SF\d{12,15}$`, Fixed(92)),
				Pat(`^\d{12}$`, Fixed(55)),
			},
		},
		{
			Key:  "aramex",
			Name: "Aramex",
			Icon: "icons/aramex.svg",
			From: countries.NewSet(
				"AE", "BH", "EG", "JO", "KW", "LB", "OM", "QA", "SA"),
			To: countries.All(),
			TrackingURL: QueryURL(
				"https://www.aramex.com/track/results?ShipmentNumber=%s"),
			Patterns: []Pattern{
				Pat(`^3\d{9}$`, Fixed(72)),
				Pat(`^\d{10,12}$`, Fixed(64)),
			},
		},
	}
}
