package domain

// Classification is the human-readable severity tier derived locally from
// magnitude, independent of the feed's own severity filter.
type Classification string

const (
	ClassMicro     Classification = "micro"
	ClassMinor     Classification = "minor"
	ClassLight     Classification = "light"
	ClassModerate  Classification = "moderate"
	ClassStrong    Classification = "strong"
	ClassMajor     Classification = "major"
	ClassEpic      Classification = "epic"
	ClassLegendary Classification = "legendary"
	ClassUnknown   Classification = "unknown"
)

// Classify maps a magnitude to its Richter classification tier:
//
//	m < 2      micro    | 5–5.9 moderate | 8–9.9  epic
//	2–3.9      minor    | 6–6.9 strong   | > 9.9  legendary
//	4–4.9      light    | 7–7.9 major    | nil    unknown
//
// Tiers meet at .9/next-integer boundaries with no gap: a value strictly
// between 3.9 and 4 takes the lower tier, while exactly 4.0 is light. The
// top boundary is different: epic ends exactly at 9.9, so anything above
// that is legendary.
func Classify(magnitude *float64) Classification {
	if magnitude == nil {
		return ClassUnknown
	}
	m := *magnitude

	switch {
	case m < 2:
		return ClassMicro
	case m < 4:
		return ClassMinor
	case m < 5:
		return ClassLight
	case m < 6:
		return ClassModerate
	case m < 7:
		return ClassStrong
	case m < 8:
		return ClassMajor
	case m <= 9.9:
		return ClassEpic
	default:
		return ClassLegendary
	}
}
