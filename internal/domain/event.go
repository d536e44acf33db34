package domain

import "time"

// RawEvent is one seismic event as reported by the upstream feed, before
// normalization. Magnitude and Depth are nil when the feed omits them or
// reports a non-numeric value; Time is nil when the feed timestamp cannot
// be interpreted.
type RawEvent struct {
	Lon       float64
	Lat       float64
	Time      *time.Time
	Place     string
	Magnitude *float64
	Depth     *float64
}

// Event is the analysis-ready record derived one-to-one from a RawEvent.
type Event struct {
	Lon       float64    `json:"lon"`
	Lat       float64    `json:"lat"`
	Place     string     `json:"place"`
	Magnitude *float64   `json:"magnitude"`
	Depth     *float64   `json:"depth"`
	TimeUTC   *time.Time `json:"time_utc"`

	// DisplayDate is the Spanish long date of TimeUTC ("14 de Diciembre de
	// 2025"), empty when TimeUTC is nil.
	DisplayDate    string         `json:"display_date"`
	Classification Classification `json:"classification"`

	// MagnitudeSize is the magnitude clamped to >= 0 for marker sizing.
	// Never negative, never nil.
	MagnitudeSize float64 `json:"magnitude_size"`

	// MagnitudeColor drives the map color axis. Equal to Magnitude except
	// under the reference configuration, where it is clamped into
	// [PinnedColorMin, PinnedColorMax]. Nil when Magnitude is nil.
	MagnitudeColor *float64 `json:"magnitude_color"`
}

// MinMarkerSize replaces MagnitudeSize when every event in a set would
// otherwise size to zero, so markers stay visible on the map.
const MinMarkerSize = 0.1

// Pinned color range used under the reference configuration so the color
// legend stays comparable across refreshes.
const (
	PinnedColorMin = 1.8
	PinnedColorMax = 3.0
)

// PinnedColorTicks are the colorbar tick values shown when the color range
// is pinned.
var PinnedColorTicks = []float64{1.8, 2.0, 2.2, 2.4, 2.6, 2.8, 3.0}

// Float returns a pointer to v, for building nullable fields in literals.
func Float(v float64) *float64 { return &v }

// Timestamp returns a pointer to t.
func Timestamp(t time.Time) *time.Time { return &t }
