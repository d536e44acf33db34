package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFilterZone(t *testing.T) {
	inside := Event{Place: "in", Lat: 18.2, Lon: -66.5}
	outside := Event{Place: "out", Lat: 34.0, Lon: -118.2}
	onBound := Event{Place: "edge", Lat: 17.6, Lon: -64.8}

	t.Run("puerto rico keeps events inside the box", func(t *testing.T) {
		result := FilterZone([]Event{inside, outside}, ZonePuertoRico)

		require.Len(t, result, 1)
		assert.Equal(t, "in", result[0].Place)
	})

	t.Run("bounds are inclusive", func(t *testing.T) {
		result := FilterZone([]Event{onBound}, ZonePuertoRico)
		assert.Len(t, result, 1)
	})

	t.Run("world returns set unchanged", func(t *testing.T) {
		events := []Event{inside, outside}
		assert.Equal(t, events, FilterZone(events, ZoneWorld))
	})

	t.Run("no matches is empty, not an error", func(t *testing.T) {
		result := FilterZone([]Event{outside}, ZonePuertoRico)
		assert.Empty(t, result)
	})

	t.Run("idempotent", func(t *testing.T) {
		once := FilterZone([]Event{inside, outside, onBound}, ZonePuertoRico)
		twice := FilterZone(once, ZonePuertoRico)
		assert.Equal(t, once, twice)
	})
}

func TestPinColors(t *testing.T) {
	reference := Selectors{Severity: SeverityAll, Window: WindowMonth, Zone: ZonePuertoRico}

	t.Run("reference configuration clamps into pinned range", func(t *testing.T) {
		events := []Event{
			{Magnitude: Float(0.5)},
			{Magnitude: Float(2.4)},
			{Magnitude: Float(6.1)},
		}
		pinned := PinColors(events, reference)

		require.True(t, pinned)
		assert.Equal(t, PinnedColorMin, *events[0].MagnitudeColor)
		assert.Equal(t, 2.4, *events[1].MagnitudeColor)
		assert.Equal(t, PinnedColorMax, *events[2].MagnitudeColor)
	})

	t.Run("other configurations keep raw magnitude", func(t *testing.T) {
		tests := []struct {
			name string
			sel  Selectors
		}{
			{"world zone", Selectors{Severity: SeverityAll, Window: WindowMonth, Zone: ZoneWorld}},
			{"week window", Selectors{Severity: SeverityAll, Window: WindowWeek, Zone: ZonePuertoRico}},
			{"significant severity", Selectors{Severity: SeveritySignificant, Window: WindowMonth, Zone: ZonePuertoRico}},
		}
		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				events := []Event{{Magnitude: Float(6.1)}}
				pinned := PinColors(events, tt.sel)

				assert.False(t, pinned)
				assert.Equal(t, 6.1, *events[0].MagnitudeColor)
			})
		}
	})

	t.Run("nil magnitude stays uncolored", func(t *testing.T) {
		events := []Event{{Magnitude: nil}}
		PinColors(events, reference)
		assert.Nil(t, events[0].MagnitudeColor)
	})
}
