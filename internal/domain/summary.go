package domain

import (
	"fmt"
	"sort"
	"time"
)

// puertoRicoTZ is the display timezone for the request-date line. Puerto
// Rico observes AST (UTC-4) year-round, so a fixed zone avoids a tzdata
// dependency at runtime.
var puertoRicoTZ = time.FixedZone("AST", -4*60*60)

// Summary holds the headline statistics for one rendering pass. Mean values
// are nil when the set is empty; formatting renders them as "N/A".
type Summary struct {
	RequestDate   string   `json:"request_date"`
	Count         int      `json:"count"`
	MeanMagnitude *float64 `json:"mean_magnitude"`
	MeanDepth     *float64 `json:"mean_depth"`
}

// Summarize computes the summary line over the filtered set. Means are
// taken over non-nil values only; the request date is rendered in Puerto
// Rico local time.
func Summarize(events []Event) Summary {
	s := Summary{
		RequestDate: SpanishDateTime(clock.Now().In(puertoRicoTZ)),
		Count:       len(events),
	}
	if len(events) == 0 {
		return s
	}
	s.MeanMagnitude = meanOf(events, func(e Event) *float64 { return e.Magnitude })
	s.MeanDepth = meanOf(events, func(e Event) *float64 { return e.Depth })
	return s
}

// FormatMeanMagnitude renders the mean magnitude, or "N/A" when unavailable.
func (s Summary) FormatMeanMagnitude() string {
	if s.MeanMagnitude == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f", *s.MeanMagnitude)
}

// FormatMeanDepth renders the mean depth in km, or "N/A" when unavailable.
func (s Summary) FormatMeanDepth() string {
	if s.MeanDepth == nil {
		return "N/A"
	}
	return fmt.Sprintf("%.2f km", *s.MeanDepth)
}

func meanOf(events []Event, field func(Event) *float64) *float64 {
	var sum float64
	var n int
	for _, e := range events {
		if v := field(e); v != nil {
			sum += *v
			n++
		}
	}
	if n == 0 {
		return nil
	}
	m := sum / float64(n)
	return &m
}

// TableRow is one line of the top-N table.
type TableRow struct {
	Index          int            `json:"index"`
	DisplayDate    string         `json:"display_date"`
	Place          string         `json:"place"`
	Magnitude      *float64       `json:"magnitude"`
	Classification Classification `json:"classification"`
}

// TopN returns the n strongest events as display rows, sorted by magnitude
// descending with nil magnitudes last (stable), indexed from 1. The count
// is clamped to the table bounds and the input set is left untouched.
func TopN(events []Event, n int) []TableRow {
	n = ClampTableRows(n)

	byMagnitude := make([]Event, len(events))
	copy(byMagnitude, events)
	sort.SliceStable(byMagnitude, func(i, j int) bool {
		mi, mj := byMagnitude[i].Magnitude, byMagnitude[j].Magnitude
		if mi == nil {
			return false
		}
		if mj == nil {
			return true
		}
		return *mi > *mj
	})

	if n > len(byMagnitude) {
		n = len(byMagnitude)
	}
	rows := make([]TableRow, 0, n)
	for i := 0; i < n; i++ {
		e := byMagnitude[i]
		rows = append(rows, TableRow{
			Index:          i + 1,
			DisplayDate:    e.DisplayDate,
			Place:          e.Place,
			Magnitude:      e.Magnitude,
			Classification: e.Classification,
		})
	}
	return rows
}
