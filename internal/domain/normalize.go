package domain

import (
	"fmt"
	"sort"
	"time"
)

// spanishMonths maps month numbers to their Spanish names for display dates.
var spanishMonths = [13]string{
	"", "Enero", "Febrero", "Marzo", "Abril", "Mayo", "Junio",
	"Julio", "Agosto", "Septiembre", "Octubre", "Noviembre", "Diciembre",
}

// Normalize converts a raw feed snapshot into the ordered analysis-ready
// record set. The result has exactly one Event per RawEvent:
//
//   - event times are coerced to UTC; nil times stay nil and sort last
//   - magnitude is classified into a Richter tier (nil -> unknown)
//   - MagnitudeSize is the magnitude clamped to >= 0 (nil -> 0); if every
//     record would size to zero, all sizes become MinMarkerSize instead
//   - MagnitudeColor starts equal to the raw magnitude (see PinColors)
//   - records are stably sorted by TimeUTC descending, nils last
func Normalize(raws []RawEvent) []Event {
	events := make([]Event, 0, len(raws))
	allZeroSize := true

	for _, raw := range raws {
		e := Event{
			Lon:            raw.Lon,
			Lat:            raw.Lat,
			Place:          raw.Place,
			Magnitude:      raw.Magnitude,
			Depth:          raw.Depth,
			TimeUTC:        toUTC(raw.Time),
			Classification: Classify(raw.Magnitude),
			MagnitudeColor: raw.Magnitude,
		}
		e.DisplayDate = SpanishDate(e.TimeUTC)
		if raw.Magnitude != nil && *raw.Magnitude > 0 {
			e.MagnitudeSize = *raw.Magnitude
			allZeroSize = false
		}
		events = append(events, e)
	}

	// An all-zero (or all-nil) magnitude set would render invisibly.
	if allZeroSize {
		for i := range events {
			events[i].MagnitudeSize = MinMarkerSize
		}
	}

	sort.SliceStable(events, func(i, j int) bool {
		ti, tj := events[i].TimeUTC, events[j].TimeUTC
		if ti == nil {
			return false
		}
		if tj == nil {
			return true
		}
		return ti.After(*tj)
	})

	return events
}

// toUTC coerces a feed timestamp to UTC. Nil stays nil.
func toUTC(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	u := t.UTC()
	return &u
}

// SpanishDate renders a UTC time as a Spanish long date, e.g.
// "14 de Diciembre de 2025". Returns "" for nil.
func SpanishDate(t *time.Time) string {
	if t == nil {
		return ""
	}
	return fmt.Sprintf("%d de %s de %d", t.Day(), spanishMonths[t.Month()], t.Year())
}

// SpanishDateTime renders a time as a Spanish long date with a 12-hour
// clock, e.g. "14 de Diciembre de 2025 03:14:18 PM". Used for the
// request-date line, after conversion to Puerto Rico local time.
func SpanishDateTime(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d %s",
		t.Day(), spanishMonths[t.Month()], t.Year(), t.Format("03:04:05 PM"))
}
