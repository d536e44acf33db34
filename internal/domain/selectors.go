package domain

import "fmt"

// Severity is the feed-side minimum-magnitude filter. The values mirror the
// USGS summary feed names exactly.
type Severity string

const (
	SeverityAll         Severity = "all"
	SeveritySignificant Severity = "significant"
	Severity45          Severity = "4.5"
	Severity25          Severity = "2.5"
	Severity10          Severity = "1.0"
)

// Window is the trailing time span of events requested from the feed.
type Window string

const (
	WindowMonth Window = "month"
	WindowWeek  Window = "week"
	WindowDay   Window = "day"
)

// Zone is the geographic restriction applied after retrieval.
type Zone string

const (
	ZonePuertoRico Zone = "puerto-rico"
	ZoneWorld      Zone = "world"
)

// Table row-count bounds for the top-N table.
const (
	TableRowsMin = 5
	TableRowsMax = 20
)

// Selectors holds the normalized user choices for one rendering pass. They
// are reconstructed from the request on every interaction and never persisted.
type Selectors struct {
	Severity  Severity
	Window    Window
	Zone      Zone
	ShowMap   bool
	ShowTable bool
	TableRows int
}

// DefaultSelectors returns the initial dashboard configuration: everything
// for the past month around Puerto Rico, map on, table off.
func DefaultSelectors() Selectors {
	return Selectors{
		Severity:  SeverityAll,
		Window:    WindowMonth,
		Zone:      ZonePuertoRico,
		ShowMap:   true,
		ShowTable: false,
		TableRows: TableRowsMin,
	}
}

// IsReferenceConfig reports whether the selectors match the reference
// configuration under which the map color range is pinned.
func (s Selectors) IsReferenceConfig() bool {
	return s.Zone == ZonePuertoRico && s.Severity == SeverityAll && s.Window == WindowMonth
}

// ParseSeverity validates a severity value from user input.
func ParseSeverity(v string) (Severity, error) {
	switch Severity(v) {
	case SeverityAll, SeveritySignificant, Severity45, Severity25, Severity10:
		return Severity(v), nil
	}
	return "", fmt.Errorf("invalid severity %q", v)
}

// ParseWindow validates a window value from user input.
func ParseWindow(v string) (Window, error) {
	switch Window(v) {
	case WindowMonth, WindowWeek, WindowDay:
		return Window(v), nil
	}
	return "", fmt.Errorf("invalid window %q", v)
}

// ParseZone validates a zone value from user input.
func ParseZone(v string) (Zone, error) {
	switch Zone(v) {
	case ZonePuertoRico, ZoneWorld:
		return Zone(v), nil
	}
	return "", fmt.Errorf("invalid zone %q", v)
}

// ClampTableRows bounds a requested table row count to [TableRowsMin, TableRowsMax].
func ClampTableRows(n int) int {
	if n < TableRowsMin {
		return TableRowsMin
	}
	if n > TableRowsMax {
		return TableRowsMax
	}
	return n
}
