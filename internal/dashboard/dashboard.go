// Package dashboard derives the view artifacts served to the embedded page:
// summary line, top-N table, map figure, and the two histograms. All
// derivations are read-only over the filtered event set.
package dashboard

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync/atomic"

	"github.com/dereckcolon1-cell/terremoto-app/internal/domain"
	"github.com/dereckcolon1-cell/terremoto-app/internal/observability"
)

// Title is the dashboard headline.
const Title = "Datos en Tiempo Real de los Terremotos en Puerto Rico y en el Mundo"

// User-facing notices, in the dashboard's display language.
const (
	noticeNoEvents  = "No se encontraron eventos para los filtros seleccionados."
	noticeMapHidden = "Activa “Mostrar mapa” en la barra izquierda para ver el mapa."
)

// Dashboard is the full payload for one rendering pass.
type Dashboard struct {
	Title   string         `json:"title"`
	Summary domain.Summary `json:"summary"`

	// Formatted mean values, "N/A" when the set is empty.
	MeanMagnitudeText string `json:"mean_magnitude_text"`
	MeanDepthText     string `json:"mean_depth_text"`

	// Notice is set instead of any figure when the filtered set is empty.
	Notice string `json:"notice,omitempty"`

	Table []domain.TableRow `json:"table,omitempty"`

	MagnitudeHistogram *Figure `json:"magnitude_histogram,omitempty"`
	DepthHistogram     *Figure `json:"depth_histogram,omitempty"`
	Map                *Figure `json:"map,omitempty"`

	// MapNotice replaces the map when the map toggle is off.
	MapNotice string `json:"map_notice,omitempty"`
}

// Service runs the full pipeline for one interaction: fetch, normalize,
// filter, and derive the view artifacts.
type Service struct {
	feed    domain.Feed
	metrics *observability.Metrics
	logger  *slog.Logger
	ready   atomic.Bool
}

// NewService creates a dashboard service over a (typically cached) feed.
func NewService(feed domain.Feed, metrics *observability.Metrics, logger *slog.Logger) *Service {
	return &Service{
		feed:    feed,
		metrics: metrics,
		logger:  logger,
	}
}

// CheckReadiness returns nil once the service has completed at least one
// successful rendering pass.
func (s *Service) CheckReadiness(_ context.Context) error {
	if !s.ready.Load() {
		return errors.New("no dashboard has been rendered yet")
	}
	return nil
}

// Render executes one rendering pass for the given selectors. Feed failures
// propagate and abort the pass; an empty filtered set is a valid result
// carrying a notice instead of figures.
func (s *Service) Render(ctx context.Context, sel domain.Selectors) (*Dashboard, error) {
	raws, err := s.feed.Fetch(ctx, sel.Severity, sel.Window)
	if err != nil {
		s.metrics.DashboardRenders.WithLabelValues("feed_error").Inc()
		return nil, fmt.Errorf("fetch feed: %w", err)
	}

	events := domain.Normalize(raws)
	events = domain.FilterZone(events, sel.Zone)
	pinned := domain.PinColors(events, sel)

	summary := domain.Summarize(events)
	s.metrics.EventsReturned.Observe(float64(summary.Count))

	d := &Dashboard{
		Title:             Title,
		Summary:           summary,
		MeanMagnitudeText: summary.FormatMeanMagnitude(),
		MeanDepthText:     summary.FormatMeanDepth(),
	}

	if summary.Count == 0 {
		d.Notice = noticeNoEvents
		s.metrics.DashboardRenders.WithLabelValues("empty").Inc()
		s.ready.Store(true)
		s.logger.Info("dashboard rendered empty",
			"severity", sel.Severity, "window", sel.Window, "zone", sel.Zone)
		return d, nil
	}

	if sel.ShowTable {
		d.Table = domain.TopN(events, sel.TableRows)
	}

	d.MagnitudeHistogram = BuildMagnitudeHistogram(events)
	d.DepthHistogram = BuildDepthHistogram(events)

	if sel.ShowMap {
		d.Map = BuildMap(events, sel.Zone, pinned)
	} else {
		d.MapNotice = noticeMapHidden
	}

	s.metrics.DashboardRenders.WithLabelValues("ok").Inc()
	s.ready.Store(true)
	s.logger.Info("dashboard rendered",
		"severity", sel.Severity, "window", sel.Window, "zone", sel.Zone,
		"events", summary.Count, "pinned_colors", pinned)
	return d, nil
}
