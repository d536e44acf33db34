package domain

import "context"

// Feed retrieves the current snapshot of raw seismic events for a severity
// tier and time window. Implementations wrap the upstream USGS summary feed.
type Feed interface {
	Fetch(ctx context.Context, severity Severity, window Window) ([]RawEvent, error)
}
