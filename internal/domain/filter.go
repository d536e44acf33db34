package domain

// BoundingBox is a latitude/longitude rectangle, inclusive on all four bounds.
type BoundingBox struct {
	LatMin float64
	LatMax float64
	LonMin float64
	LonMax float64
}

// Contains reports whether (lat, lon) falls inside the box, bounds included.
func (b BoundingBox) Contains(lat, lon float64) bool {
	return lat >= b.LatMin && lat <= b.LatMax &&
		lon >= b.LonMin && lon <= b.LonMax
}

// PuertoRicoBox approximates the Puerto Rico region, including Vieques,
// Culebra, and the surrounding seismically active waters.
var PuertoRicoBox = BoundingBox{
	LatMin: 17.6,
	LatMax: 18.7,
	LonMin: -67.8,
	LonMax: -64.8,
}

// FilterZone restricts events to the selected geographic zone. The world
// zone returns the set unchanged; the Puerto Rico zone keeps events inside
// PuertoRicoBox. An empty result is valid, not an error.
func FilterZone(events []Event, zone Zone) []Event {
	if zone != ZonePuertoRico {
		return events
	}
	filtered := make([]Event, 0, len(events))
	for _, e := range events {
		if PuertoRicoBox.Contains(e.Lat, e.Lon) {
			filtered = append(filtered, e)
		}
	}
	return filtered
}

// PinColors sets MagnitudeColor for the whole set. Under the reference
// configuration (Puerto Rico zone, "all" severity, "month" window) values
// are clamped into [PinnedColorMin, PinnedColorMax] so the color legend is
// stable across refreshes; otherwise the color equals the raw magnitude.
// Returns true when the range was pinned.
func PinColors(events []Event, sel Selectors) bool {
	pinned := sel.IsReferenceConfig()
	for i := range events {
		m := events[i].Magnitude
		if m == nil {
			events[i].MagnitudeColor = nil
			continue
		}
		v := *m
		if pinned {
			if v < PinnedColorMin {
				v = PinnedColorMin
			} else if v > PinnedColorMax {
				v = PinnedColorMax
			}
		}
		events[i].MagnitudeColor = &v
	}
	return pinned
}
