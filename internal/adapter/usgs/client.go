// Package usgs wraps the USGS earthquake summary GeoJSON feeds.
package usgs

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/dereckcolon1-cell/terremoto-app/internal/domain"
	"github.com/dereckcolon1-cell/terremoto-app/internal/observability"
)

// Client implements domain.Feed against the USGS summary GeoJSON endpoint.
type Client struct {
	httpClient *http.Client
	baseURL    string
	metrics    *observability.Metrics
	logger     *slog.Logger
}

// NewClient creates a USGS feed client.
func NewClient(baseURL string, timeout time.Duration, metrics *observability.Metrics, logger *slog.Logger) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
		metrics: metrics,
		logger:  logger,
	}
}

// Fetch retrieves the summary document for the given severity and window,
// e.g. "all_month.geojson", and converts its features into raw events.
// Network, status, and decode failures all propagate to the caller; the
// rendering pass they belong to is aborted, never partially served.
func (c *Client) Fetch(ctx context.Context, severity domain.Severity, window domain.Window) ([]domain.RawEvent, error) {
	u := fmt.Sprintf("%s/%s_%s.geojson", c.baseURL, severity, window)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	c.metrics.FeedRequestDuration.Observe(time.Since(start).Seconds())
	if err != nil {
		c.metrics.FeedRequests.WithLabelValues(string(severity), string(window), "error").Inc()
		return nil, fmt.Errorf("feed request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.metrics.FeedRequests.WithLabelValues(string(severity), string(window), "error").Inc()
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("usgs feed error: status %d: %s", resp.StatusCode, body)
	}

	var doc feedDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		c.metrics.FeedRequests.WithLabelValues(string(severity), string(window), "error").Inc()
		return nil, fmt.Errorf("decode feed: %w", err)
	}

	c.metrics.FeedRequests.WithLabelValues(string(severity), string(window), "success").Inc()

	raws := make([]domain.RawEvent, 0, len(doc.Features))
	dropped := 0
	for _, f := range doc.Features {
		raw, ok := f.toRawEvent()
		if !ok {
			dropped++
			continue
		}
		raws = append(raws, raw)
	}
	if dropped > 0 {
		c.logger.Warn("dropped features without coordinates",
			"severity", severity, "window", window, "dropped", dropped)
	}
	c.logger.Debug("feed fetched", "severity", severity, "window", window, "events", len(raws))
	return raws, nil
}

// USGS GeoJSON summary feed types. Magnitude, depth, and time are nullable
// in the upstream documents.

type feedDocument struct {
	Features []feedFeature `json:"features"`
}

type feedFeature struct {
	Properties feedProperties `json:"properties"`
	Geometry   feedGeometry   `json:"geometry"`
}

type feedProperties struct {
	Mag   *float64 `json:"mag"`
	Place string   `json:"place"`
	Time  *int64   `json:"time"` // epoch milliseconds
}

type feedGeometry struct {
	Coordinates []*float64 `json:"coordinates"` // [lon, lat, depth-km]
}

// toRawEvent converts a feature, reporting false for features without a
// usable position. Defaulting a missing coordinate to 0 would place a
// phantom marker in the Gulf of Guinea, so such features are dropped.
func (f feedFeature) toRawEvent() (domain.RawEvent, bool) {
	if len(f.Geometry.Coordinates) < 2 ||
		f.Geometry.Coordinates[0] == nil || f.Geometry.Coordinates[1] == nil {
		return domain.RawEvent{}, false
	}

	raw := domain.RawEvent{
		Lon:       *f.Geometry.Coordinates[0],
		Lat:       *f.Geometry.Coordinates[1],
		Place:     f.Properties.Place,
		Magnitude: f.Properties.Mag,
	}
	if f.Properties.Time != nil {
		t := time.UnixMilli(*f.Properties.Time).UTC()
		raw.Time = &t
	}
	if len(f.Geometry.Coordinates) >= 3 {
		raw.Depth = f.Geometry.Coordinates[2]
	}
	return raw, true
}
